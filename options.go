package textplot

import "github.com/aclements/go-gg/palette"

// PlotOption configures a Plot during creation. Use functional options
// to customize plot behavior.
//
// Example:
//
//	p, err := textplot.NewPlot(x, y,
//		textplot.WithTitle("latency"),
//		textplot.WithBorder(textplot.BorderRounded),
//		textplot.WithYScale(textplot.Log10Scale))
type PlotOption func(*plotOptions)

// plotOptions holds optional configuration for Plot creation.
type plotOptions struct {
	title  string
	xlabel string
	ylabel string
	zlabel string

	width  int
	height int
	kind   CanvasKind

	border  Border
	margin  int
	padding int
	compact bool
	labels  bool

	blend        bool
	xflip, yflip bool
	xlim, ylim   Limits
	// nil scale means identity; set scales are rejected for 3D plots.
	xscale, yscale ScaleFunc

	colorbar bool
	cmapLim  Limits
	cmapPal  palette.Continuous
	cmapBord Border

	proj  *Projection
	gizmo bool
}

// defaultPlotOptions returns the default plot options.
func defaultPlotOptions() plotOptions {
	return plotOptions{
		kind:     KindBraille,
		border:   BorderSolid,
		margin:   3,
		padding:  1,
		labels:   true,
		blend:    true,
		cmapBord: BorderSolid,
		gizmo:    true,
	}
}

// WithTitle sets the plot title, centered above the canvas.
func WithTitle(s string) PlotOption { return func(o *plotOptions) { o.title = s } }

// WithXLabel sets the x-axis label, centered below the canvas.
func WithXLabel(s string) PlotOption { return func(o *plotOptions) { o.xlabel = s } }

// WithYLabel sets the y-axis label, shown left of the canvas.
func WithYLabel(s string) PlotOption { return func(o *plotOptions) { o.ylabel = s } }

// WithZLabel sets the z-axis label, shown next to the colorbar.
func WithZLabel(s string) PlotOption { return func(o *plotOptions) { o.zlabel = s } }

// WithSize sets the canvas size in character cells. Zero values fall
// back to DefaultSize.
func WithSize(width, height int) PlotOption {
	return func(o *plotOptions) { o.width, o.height = width, height }
}

// WithCanvas selects the canvas glyph kind.
func WithCanvas(kind CanvasKind) PlotOption { return func(o *plotOptions) { o.kind = kind } }

// WithBorder selects the border style. BorderNone suppresses the border
// glyphs but preserves their spacing.
func WithBorder(b Border) PlotOption { return func(o *plotOptions) { o.border = b } }

// WithMargin sets the number of blank columns and rows around the plot.
// Negative margins fail construction.
func WithMargin(n int) PlotOption { return func(o *plotOptions) { o.margin = n } }

// WithPadding sets the spacing between labels and the frame. Negative
// padding fails construction.
func WithPadding(n int) PlotOption { return func(o *plotOptions) { o.padding = n } }

// WithCompact folds the axis labels into the border rows and the row
// label gutter instead of giving them dedicated rows and columns.
func WithCompact(on bool) PlotOption { return func(o *plotOptions) { o.compact = on } }

// WithLabels enables or disables all text decoration. Labels are forced
// off when the canvas is not visible.
func WithLabels(on bool) PlotOption { return func(o *plotOptions) { o.labels = on } }

// WithBlend controls whether overlapping draws blend colors or
// overwrite.
func WithBlend(on bool) PlotOption { return func(o *plotOptions) { o.blend = on } }

// WithXFlip inverts the x axis.
func WithXFlip(on bool) PlotOption { return func(o *plotOptions) { o.xflip = on } }

// WithYFlip inverts the y axis.
func WithYFlip(on bool) PlotOption { return func(o *plotOptions) { o.yflip = on } }

// WithXLim fixes the x-axis limits instead of deriving them from data.
func WithXLim(min, max float64) PlotOption {
	return func(o *plotOptions) { o.xlim = NewLimits(min, max) }
}

// WithYLim fixes the y-axis limits instead of deriving them from data.
func WithYLim(min, max float64) PlotOption {
	return func(o *plotOptions) { o.ylim = NewLimits(min, max) }
}

// WithXScale sets the monotonic x-axis scale.
func WithXScale(s ScaleFunc) PlotOption { return func(o *plotOptions) { o.xscale = s } }

// WithYScale sets the monotonic y-axis scale.
func WithYScale(s ScaleFunc) PlotOption { return func(o *plotOptions) { o.yscale = s } }

// WithColorbar attaches the color-scale legend to the right of the
// canvas.
func WithColorbar(on bool) PlotOption { return func(o *plotOptions) { o.colorbar = on } }

// WithColorbarLim overrides the value range printed beside the
// colorbar.
func WithColorbarLim(min, max float64) PlotOption {
	return func(o *plotOptions) { o.cmapLim = NewLimits(min, max) }
}

// WithColorMap sets the colorbar palette.
func WithColorMap(p palette.Continuous) PlotOption {
	return func(o *plotOptions) { o.cmapPal = p }
}

// WithColorbarBorder selects the border style of the colorbar strip.
func WithColorbarBorder(b Border) PlotOption { return func(o *plotOptions) { o.cmapBord = b } }

// WithProjection sets an explicit 3D camera. NewPlot3D supplies a
// default projection when none is given; setting one on a 2D plot
// projects its points as if z were 0.
func WithProjection(p Projection) PlotOption { return func(o *plotOptions) { o.proj = &p } }

// WithAxes3D controls whether a projected 3D plot draws axis gizmo
// lines through the origin of the data range.
func WithAxes3D(on bool) PlotOption { return func(o *plotOptions) { o.gizmo = on } }
