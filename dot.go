package textplot

// DotCanvas rasterizes with dot marks at 1x2 virtual pixels per
// character cell. The coarsest kind, matching the look of classic
// teletype scatter plots.
type DotCanvas struct {
	gridCanvas
}

// NewDotCanvas allocates a dot canvas of rows x cols character cells
// over the data rectangle in cfg.
func NewDotCanvas(rows, cols int, cfg CanvasConfig) (*DotCanvas, error) {
	g, err := newGridCanvas(rows, cols, dotGlyphs, cfg)
	if err != nil {
		return nil, err
	}
	return &DotCanvas{g}, nil
}
