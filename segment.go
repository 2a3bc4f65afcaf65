package textplot

// SegmentCanvas rasterizes with boundary-segment glyphs at 2x2 virtual
// pixel positions per character cell. Unlike the additive kinds, its
// glyphs are directional line segments, so merging a new position into a
// cell consults a curated (previous code, position) table; any pair the
// table does not cover escalates the cell to the full block.
type SegmentCanvas struct {
	gridCanvas
}

// NewSegmentCanvas allocates a boundary-segment canvas of rows x cols
// character cells over the data rectangle in cfg.
func NewSegmentCanvas(rows, cols int, cfg CanvasConfig) (*SegmentCanvas, error) {
	g, err := newGridCanvas(rows, cols, segmentGlyphs, cfg)
	if err != nil {
		return nil, err
	}
	return &SegmentCanvas{g}, nil
}

// CanvasKind selects the glyph geometry of the canvas a plot constructor
// builds.
type CanvasKind int

const (
	KindBraille CanvasKind = iota
	KindBlock
	KindAscii
	KindDot
	KindSegment
)

// newCanvas builds the canvas variant for kind.
func newCanvas(kind CanvasKind, rows, cols int, cfg CanvasConfig) (Canvas, error) {
	switch kind {
	case KindBlock:
		return NewBlockCanvas(rows, cols, cfg)
	case KindAscii:
		return NewAsciiCanvas(rows, cols, cfg)
	case KindDot:
		return NewDotCanvas(rows, cols, cfg)
	case KindSegment:
		return NewSegmentCanvas(rows, cols, cfg)
	default:
		return NewBrailleCanvas(rows, cols, cfg)
	}
}
