package textplot

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Color represents a drawing color with red, green and blue components.
// Each component is in the range [0, 1]. The zero Color is "unset": it
// marks empty canvas cells and makes drawing calls pick the next color
// from the plot's color cycle.
type Color struct {
	R, G, B float64
	Valid   bool
}

// NewColor creates a color from RGB components in [0, 1].
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, Valid: true}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{
		R:     float64(r) / 65535,
		G:     float64(g) / 65535,
		B:     float64(b) / 65535,
		Valid: true,
	}
}

// Blend returns the arithmetic mix of c and o. If either color is unset
// the other is returned unchanged, so blending into an empty cell behaves
// like an overwrite.
func (c Color) Blend(o Color) Color {
	if !c.Valid {
		return o
	}
	if !o.Valid {
		return c
	}
	return Color{
		R:     (c.R + o.R) / 2,
		G:     (c.G + o.G) / 2,
		B:     (c.B + o.B) / 2,
		Valid: true,
	}
}

// Color converts c to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: 255,
	}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// colorCycle is the fixed palette used for automatic series coloring.
// Each plot holds its own cursor into the cycle; the cycle itself is
// immutable after init.
var colorCycle = []Color{
	FromColor(colornames.Green),
	FromColor(colornames.Cornflowerblue),
	FromColor(colornames.Red),
	FromColor(colornames.Magenta),
	FromColor(colornames.Yellow),
	FromColor(colornames.Cyan),
}

// A Styler decides how a glyph and its color become output text. The
// core only decides which color applies to which character; encoding that
// decision (ANSI escapes, HTML spans, nothing at all) is the styler's
// job.
type Styler func(glyph string, c Color) string

// PlainStyler discards color information and returns the glyph unchanged.
func PlainStyler(glyph string, _ Color) string { return glyph }

// AnsiStyler wraps the glyph in a 24-bit ANSI foreground escape sequence.
// Unset colors pass through unstyled.
func AnsiStyler(glyph string, c Color) string {
	if !c.Valid {
		return glyph
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m",
		uint8(clamp255(c.R*255)), uint8(clamp255(c.G*255)), uint8(clamp255(c.B*255)), glyph)
}
