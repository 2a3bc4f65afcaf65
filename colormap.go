package textplot

import (
	"image/color"

	"github.com/aclements/go-gg/palette"
)

// ColorMap is the color-scale legend attached to a plot: a vertical
// gradient strip sharing the canvas row count, framed by its own border
// style and labelled with the value range it spans.
type ColorMap struct {
	// Palette maps [0, 1] to colors. nil means the default gradient.
	Palette palette.Continuous

	// Border frames the gradient strip.
	Border Border

	// Visible controls whether the strip is rendered.
	Visible bool

	// Lim overrides the value range printed next to the strip. Auto
	// limits inherit the plot's z range, falling back to its y limits.
	Lim Limits
}

// defaultGradient is a viridis-like perceptually ordered gradient.
var defaultGradient = palette.RGBGradient{
	Colors: []color.RGBA{
		{R: 68, G: 1, B: 84, A: 255},
		{R: 59, G: 82, B: 139, A: 255},
		{R: 33, G: 145, B: 140, A: 255},
		{R: 94, G: 201, B: 98, A: 255},
		{R: 253, G: 231, B: 37, A: 255},
	},
}

// at returns the strip color for a normalized position t in [0, 1].
func (m *ColorMap) at(t float64) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	pal := m.Palette
	if pal == nil {
		pal = defaultGradient
	}
	return FromColor(pal.Map(t))
}

// tickLabels returns the value labels shown beside the strip, top to
// bottom, one slot per canvas row. Only rows carrying a tick get text.
func (m *ColorMap) tickLabels(rows int) []string {
	labels := make([]string, rows)
	if rows == 0 {
		return labels
	}
	labels[0] = formatValue(m.Lim.Max)
	labels[rows-1] = formatValue(m.Lim.Min)
	if rows >= 5 {
		ticks := axisTicks(m.Lim.Min, m.Lim.Max, 3)
		for _, v := range ticks {
			t := unit(v, m.Lim.Min, m.Lim.Max-m.Lim.Min, nil)
			row := int((1 - t) * float64(rows-1))
			if row > 0 && row < rows-1 && labels[row] == "" {
				labels[row] = formatValue(v)
			}
		}
	}
	return labels
}
