package textplot

// AsciiCanvas rasterizes with plain ASCII characters at 3x3 virtual
// pixels per character cell: recognizable line patterns map to line
// characters, everything else to a density ramp. Useful where Unicode
// output is not available.
type AsciiCanvas struct {
	gridCanvas
}

// NewAsciiCanvas allocates an ASCII canvas of rows x cols character
// cells over the data rectangle in cfg.
func NewAsciiCanvas(rows, cols int, cfg CanvasConfig) (*AsciiCanvas, error) {
	g, err := newGridCanvas(rows, cols, asciiGlyphs, cfg)
	if err != nil {
		return nil, err
	}
	return &AsciiCanvas{g}, nil
}
