package textplot

// BrailleCanvas rasterizes with braille dot glyphs at 2x4 virtual pixels
// per character cell, the highest resolution of all canvas kinds.
type BrailleCanvas struct {
	gridCanvas
}

// NewBrailleCanvas allocates a braille canvas of rows x cols character
// cells over the data rectangle in cfg.
func NewBrailleCanvas(rows, cols int, cfg CanvasConfig) (*BrailleCanvas, error) {
	g, err := newGridCanvas(rows, cols, brailleGlyphs, cfg)
	if err != nil {
		return nil, err
	}
	return &BrailleCanvas{g}, nil
}
