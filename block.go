package textplot

// BlockCanvas rasterizes with quadrant block glyphs at 2x2 virtual
// pixels per character cell. Coarser than braille but the glyphs fill
// their cells completely, which reads better for filled shapes.
type BlockCanvas struct {
	gridCanvas
}

// NewBlockCanvas allocates a quadrant-block canvas of rows x cols
// character cells over the data rectangle in cfg.
func NewBlockCanvas(rows, cols int, cfg CanvasConfig) (*BlockCanvas, error) {
	g, err := newGridCanvas(rows, cols, blockGlyphs, cfg)
	if err != nil {
		return nil, err
	}
	return &BlockCanvas{g}, nil
}
