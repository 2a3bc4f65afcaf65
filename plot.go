package textplot

import (
	"fmt"
	"math"
)

// Location tags the decoration slots around the canvas frame. The
// corner and edge tags address fixed positions; LocLeft and LocRight
// address the per-row label gutters.
type Location int

const (
	LocTopLeft Location = iota
	LocTop
	LocTopRight
	LocBottomLeft
	LocBottom
	LocBottomRight
	LocLeft
	LocRight
)

// Plot wraps a canvas with borders, a title, axis labels, per-row side
// labels, corner decorations and an optional colorbar legend, and
// composes them into the final text block. A Plot exclusively owns its
// canvas and decoration maps; it is single-writer.
type Plot struct {
	canvas Canvas
	proj   Projection

	title  string
	xlabel string
	ylabel string
	zlabel string

	margin  int
	padding int
	border  Border
	compact bool
	labels  bool

	labelsLeft  map[int]string
	colorsLeft  map[int]Color
	labelsRight map[int]string
	colorsRight map[int]Color
	decorations map[Location]string
	decoColors  map[Location]Color

	cmap *ColorMap

	autocolor int
	series    int
}

// Wrap decorates a pre-built canvas with a plot frame. Only decoration
// options apply; canvas geometry options are ignored because the canvas
// already exists.
func Wrap(c Canvas, opts ...PlotOption) (*Plot, error) {
	o := defaultPlotOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newPlot(c, NoProjection(), &o)
}

func newPlot(c Canvas, proj Projection, o *plotOptions) (*Plot, error) {
	if o.margin < 0 {
		return nil, fmt.Errorf("%w: margin %d is negative", ErrInvalidArgument, o.margin)
	}
	if o.padding < 0 {
		return nil, fmt.Errorf("%w: padding %d is negative", ErrInvalidArgument, o.padding)
	}
	if o.proj != nil {
		proj = *o.proj
	}
	if proj.Enabled() && (o.xscale != nil || o.yscale != nil) {
		return nil, fmt.Errorf("%w: axis scales cannot be combined with a 3D projection", ErrInvalidArgument)
	}
	p := &Plot{
		canvas:      c,
		proj:        proj,
		title:       o.title,
		xlabel:      o.xlabel,
		ylabel:      o.ylabel,
		zlabel:      o.zlabel,
		margin:      o.margin,
		padding:     o.padding,
		border:      o.border,
		compact:     o.compact,
		labels:      o.labels && c.Visible(),
		labelsLeft:  make(map[int]string),
		colorsLeft:  make(map[int]Color),
		labelsRight: make(map[int]string),
		colorsRight: make(map[int]Color),
		decorations: make(map[Location]string),
		decoColors:  make(map[Location]Color),
	}
	if o.colorbar {
		p.cmap = &ColorMap{
			Palette: o.cmapPal,
			Border:  o.cmapBord,
			Visible: true,
			Lim:     o.cmapLim,
		}
	}
	return p, nil
}

// NewPlot builds a plot from a pair of 2D coordinate series. The series
// must have equal lengths; tuples containing a non-finite value are
// filtered out before the axis limits are derived. The constructor only
// sizes the canvas; call Lines, Points or Scatter-style helpers to draw
// the data.
func NewPlot(x, y []float64, opts ...PlotOption) (*Plot, error) {
	return buildPlot(x, y, nil, opts)
}

// NewPlot3D builds a plot from x, y and z coordinate series viewed
// through a 3D projection. When no explicit projection is configured a
// default perspective camera is used. Axis tick labels and scales are
// unavailable in 3D; a projected axis gizmo is drawn instead unless
// disabled with WithAxes3D(false).
func NewPlot3D(x, y, z []float64, opts ...PlotOption) (*Plot, error) {
	if z == nil {
		z = make([]float64, len(x))
	}
	return buildPlot(x, y, z, opts)
}

func buildPlot(x, y, z []float64, opts []PlotOption) (*Plot, error) {
	o := defaultPlotOptions()
	for _, opt := range opts {
		opt(&o)
	}

	x, y, z, err := validateInput(x, y, z)
	if err != nil {
		return nil, err
	}

	// A real projection is used when z data or an explicit camera is
	// supplied; everything else stays on the identity path.
	proj := NoProjection()
	if o.proj != nil {
		proj = *o.proj
		o.proj = nil
	} else if z != nil {
		proj = NewProjection(Camera{Elevation: 30, Azimuth: -37.5})
	}

	// Axis limits come from the coordinates the canvas will actually
	// see: the projected 2D positions when a projection is active, the
	// raw series otherwise.
	px, py := x, y
	if proj.Enabled() {
		px = make([]float64, len(x))
		py = make([]float64, len(y))
		for i := range x {
			zi := 0.0
			if z != nil {
				zi = z[i]
			}
			px[i], py[i] = proj.Apply(x[i], y[i], zi)
		}
	}
	xlim, err := ExtendLimits(px, o.xlim)
	if err != nil {
		return nil, err
	}
	ylim, err := ExtendLimits(py, o.ylim)
	if err != nil {
		return nil, err
	}

	width, height := o.width, o.height
	if width <= 0 || height <= 0 {
		dw, dh := DefaultSize()
		if width <= 0 {
			width = dw
		}
		if height <= 0 {
			height = dh
		}
	}

	cfg := CanvasConfig{
		Blend:   o.blend,
		XFlip:   o.xflip,
		YFlip:   o.yflip,
		OriginX: xlim.Min,
		OriginY: ylim.Min,
		Width:   xlim.Max - xlim.Min,
		Height:  ylim.Max - ylim.Min,
		XScale:  o.xscale,
		YScale:  o.yscale,
	}
	canvas, err := newCanvas(o.kind, height, width, cfg)
	if err != nil {
		return nil, err
	}

	p, err := newPlot(canvas, proj, &o)
	if err != nil {
		return nil, err
	}
	if p.cmap != nil && p.cmap.Lim.Auto() {
		if z != nil {
			zl, _ := ExtendLimits(z, Limits{})
			p.cmap.Lim = zl
		} else {
			p.cmap.Lim = ylim
		}
	}

	// Tick labels are only meaningful without a projection; 3D plots
	// get the axis gizmo instead.
	if p.labels && !proj.Enabled() {
		p.decorations[LocBottomLeft] = formatValue(xlim.Min)
		p.decorations[LocBottomRight] = formatValue(xlim.Max)
		if rows := canvas.Rows(); rows > 0 {
			p.labelsLeft[0] = formatValue(ylim.Max)
			p.labelsLeft[rows-1] = formatValue(ylim.Min)
		}
	}
	if proj.Enabled() && o.gizmo && z != nil {
		p.drawGizmo(x, y, z)
	}
	return p, nil
}

// validateInput checks that the series lengths match and strips every
// tuple containing a non-finite value, preserving the order of the
// rest.
func validateInput(x, y, z []float64) ([]float64, []float64, []float64, error) {
	if len(x) != len(y) || (z != nil && len(z) != len(x)) {
		return nil, nil, nil, fmt.Errorf("%w: mismatched series lengths x=%d y=%d z=%d",
			ErrInvalidArgument, len(x), len(y), len(z))
	}
	fx := make([]float64, 0, len(x))
	fy := make([]float64, 0, len(y))
	var fz []float64
	if z != nil {
		fz = make([]float64, 0, len(z))
	}
	dropped := 0
	for i := range x {
		if !finite(x[i]) || !finite(y[i]) || (z != nil && !finite(z[i])) {
			dropped++
			continue
		}
		fx = append(fx, x[i])
		fy = append(fy, y[i])
		if z != nil {
			fz = append(fz, z[i])
		}
	}
	if dropped > 0 {
		Logger().Warn("dropped non-finite samples", "count", dropped)
	}
	return fx, fy, fz, nil
}

// drawGizmo draws projected x/y/z axis lines from the low corner of the
// data range, each labelled at its tip.
func (p *Plot) drawGizmo(x, y, z []float64) {
	lo := [3]float64{seriesMin(x), seriesMin(y), seriesMin(z)}
	hi := [3]float64{seriesMax(x), seriesMax(y), seriesMax(z)}
	names := [3]string{"x", "y", "z"}
	for a := 0; a < 3; a++ {
		tip := lo
		tip[a] = hi[a]
		x1, y1 := p.proj.Apply(lo[0], lo[1], lo[2])
		x2, y2 := p.proj.Apply(tip[0], tip[1], tip[2])
		c := colorCycle[a%len(colorCycle)]
		p.canvas.Line(x1, y1, x2, y2, c)
		p.canvas.Text(x2, y2, names[a], c)
	}
}

func seriesMin(s []float64) float64 {
	m := math.Inf(1)
	for _, v := range s {
		if v < m {
			m = v
		}
	}
	if math.IsInf(m, 1) {
		return 0
	}
	return m
}

func seriesMax(s []float64) float64 {
	m := math.Inf(-1)
	for _, v := range s {
		if v > m {
			m = v
		}
	}
	if math.IsInf(m, -1) {
		return 0
	}
	return m
}

// Canvas returns the wrapped canvas.
func (p *Plot) Canvas() Canvas { return p.canvas }

// Projection returns the active projection.
func (p *Plot) Projection() Projection { return p.proj }

// SetTitle sets the plot title and returns the plot for chaining.
func (p *Plot) SetTitle(s string) *Plot { p.title = s; return p }

// SetXLabel sets the x-axis label and returns the plot for chaining.
func (p *Plot) SetXLabel(s string) *Plot { p.xlabel = s; return p }

// SetYLabel sets the y-axis label and returns the plot for chaining.
func (p *Plot) SetYLabel(s string) *Plot { p.ylabel = s; return p }

// SetZLabel sets the z-axis label and returns the plot for chaining.
func (p *Plot) SetZLabel(s string) *Plot { p.zlabel = s; return p }

// Title returns the current title.
func (p *Plot) Title() string { return p.title }

// Label places text at a decoration slot. For the corner and edge tags
// the text overwrites the slot. For LocLeft and LocRight the first row
// without a non-empty label on that side is claimed, top to bottom, so
// sequential calls label consecutive series; use LabelAt for an explicit
// row. Labels with an unset color render unstyled.
func (p *Plot) Label(loc Location, text string, c Color) error {
	switch loc {
	case LocTopLeft, LocTop, LocTopRight, LocBottomLeft, LocBottom, LocBottomRight:
		p.decorations[loc] = text
		p.decoColors[loc] = c
		return nil
	case LocLeft, LocRight:
		labels := p.labelsLeft
		if loc == LocRight {
			labels = p.labelsRight
		}
		for row := 0; row < p.canvas.Rows(); row++ {
			if labels[row] == "" {
				return p.LabelAt(loc, row, text, c)
			}
		}
		// Every row is claimed; the label is dropped.
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidLocation, loc)
	}
}

// LabelAt places a row label on the given side at an explicit row,
// overwriting any previous label there.
func (p *Plot) LabelAt(loc Location, row int, text string, c Color) error {
	if row < 0 || row >= p.canvas.Rows() {
		return fmt.Errorf("%w: row %d out of range", ErrInvalidArgument, row)
	}
	switch loc {
	case LocLeft:
		p.labelsLeft[row] = text
		p.colorsLeft[row] = c
	case LocRight:
		p.labelsRight[row] = text
		p.colorsRight[row] = c
	default:
		return fmt.Errorf("%w: %d is not a row location", ErrInvalidLocation, loc)
	}
	return nil
}

// Annotate places free-form text at a data-space position, projected
// like any series data. An unset color resolves through the plot's
// color cycle.
func (p *Plot) Annotate(x, y float64, text string, c Color) {
	px, py := p.proj.Apply(x, y, 0)
	p.canvas.Text(px, py, text, p.resolveColor(c))
}

// Lines draws connected segments between consecutive 2D points. All
// coordinates pass through the projection, so the same call works for
// wrapped 3D plots with z treated as 0.
func (p *Plot) Lines(x, y []float64, c Color) *Plot {
	return p.Lines3(x, y, nil, c)
}

// Lines3 draws connected segments between consecutive 3D points.
func (p *Plot) Lines3(x, y, z []float64, c Color) *Plot {
	c = p.resolveColor(c)
	n := min(len(x), len(y))
	for i := 1; i < n; i++ {
		x1, y1 := p.project(x, y, z, i-1)
		x2, y2 := p.project(x, y, z, i)
		p.canvas.Line(x1, y1, x2, y2, c)
	}
	p.series++
	return p
}

// Points draws individual 2D points.
func (p *Plot) Points(x, y []float64, c Color) *Plot {
	return p.Points3(x, y, nil, c)
}

// Points3 draws individual 3D points.
func (p *Plot) Points3(x, y, z []float64, c Color) *Plot {
	c = p.resolveColor(c)
	n := min(len(x), len(y))
	for i := 0; i < n; i++ {
		px, py := p.project(x, y, z, i)
		p.canvas.Point(px, py, c)
	}
	p.series++
	return p
}

// Pixel sets a single virtual pixel, bypassing the data transform and
// the projection.
func (p *Plot) Pixel(px, py float64, c Color) *Plot {
	p.canvas.Pixel(px, py, p.resolveColor(c))
	return p
}

// project is the single choke point through which series data reaches
// the canvas: every drawing primitive funnels its coordinates through
// the projection here.
func (p *Plot) project(x, y, z []float64, i int) (float64, float64) {
	zi := 0.0
	if z != nil && i < len(z) {
		zi = z[i]
	}
	return p.proj.Apply(x[i], y[i], zi)
}

// Series returns the number of data series drawn so far.
func (p *Plot) Series() int { return p.series }

// NextColor advances the plot's color cycle and returns the next color.
// The cursor is per-plot state, wrapping modulo the cycle length.
func (p *Plot) NextColor() Color {
	c := colorCycle[p.autocolor%len(colorCycle)]
	p.autocolor++
	return c
}

func (p *Plot) resolveColor(c Color) Color {
	if c.Valid {
		return c
	}
	return p.NextColor()
}
