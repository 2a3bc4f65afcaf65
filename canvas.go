package textplot

import (
	"fmt"
	"math"
	"strings"
)

// CanvasConfig carries the data-space bounding rectangle and the drawing
// behavior of a canvas. The zero value is not useful; start from
// DefaultCanvasConfig.
type CanvasConfig struct {
	// Blend controls whether overlapping draws mix colors arithmetically
	// or overwrite.
	Blend bool

	// XFlip and YFlip invert the respective axis.
	XFlip, YFlip bool

	// OriginX/OriginY and Width/Height define the data-space rectangle
	// this canvas represents. Width and Height are extents and must be
	// non-negative.
	OriginX, OriginY float64
	Width, Height    float64

	// XScale and YScale are monotonic transforms applied to data
	// coordinates before pixel mapping. nil means identity.
	XScale, YScale ScaleFunc
}

// DefaultCanvasConfig returns a unit-square data rectangle with blending
// enabled and identity scales.
func DefaultCanvasConfig() CanvasConfig {
	return CanvasConfig{
		Blend:  true,
		Width:  1,
		Height: 1,
		XScale: IdentityScale,
		YScale: IdentityScale,
	}
}

// Canvas is the capability contract shared by all glyph kinds. A canvas
// is selected at construction time and never switched at runtime.
//
// All drawing operations are total: non-finite coordinates and points
// outside the data rectangle are dropped silently.
type Canvas interface {
	// Rows and Cols report the size in character cells.
	Rows() int
	Cols() int

	// PixelWidth and PixelHeight report the size of the virtual pixel
	// grid.
	PixelWidth() int
	PixelHeight() int

	// Visible reports whether the canvas has a non-zero width. Invisible
	// canvases drop all draws and render empty rows.
	Visible() bool

	// Point rasterizes a single data-space coordinate.
	Point(x, y float64, c Color)

	// Line rasterizes a data-space segment with a Bresenham walk over
	// virtual pixels.
	Line(x1, y1, x2, y2 float64, c Color)

	// Pixel sets a virtual-pixel coordinate directly, bypassing the
	// data-space transform.
	Pixel(px, py float64, c Color)

	// Text overlays a string starting at the cell containing the
	// data-space coordinate, overriding cell occupancy for the covered
	// columns.
	Text(x, y float64, s string, c Color)

	// RenderRow renders one complete styled row. It is a pure function
	// of the canvas state, so rows may be re-rendered in any order.
	RenderRow(row int, st Styler) string

	// Render renders all rows top to bottom.
	Render(st Styler) []string
}

// gridCanvas is the shared cell-grid core behind every canvas kind: a
// grid of occupancy codes, a parallel grid of colors, and a rune overlay
// for text annotations. grid, colors and the overlay always share the
// same dimensions.
type gridCanvas struct {
	set     *glyphSet
	rows    int
	cols    int
	grid    []Code
	colors  []Color
	overlay []rune
	ocolors []Color
	cfg     CanvasConfig
	visible bool
}

func newGridCanvas(rows, cols int, set *glyphSet, cfg CanvasConfig) (gridCanvas, error) {
	if rows < 0 || cols < 0 {
		return gridCanvas{}, fmt.Errorf("%w: %dx%d cells", ErrInvalidDimension, rows, cols)
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return gridCanvas{}, fmt.Errorf("%w: negative data extent %gx%g", ErrInvalidArgument, cfg.Width, cfg.Height)
	}
	if cfg.XScale == nil {
		cfg.XScale = IdentityScale
	}
	if cfg.YScale == nil {
		cfg.YScale = IdentityScale
	}
	n := rows * cols
	g := gridCanvas{
		set:     set,
		rows:    rows,
		cols:    cols,
		grid:    make([]Code, n),
		colors:  make([]Color, n),
		overlay: make([]rune, n),
		ocolors: make([]Color, n),
		cfg:     cfg,
		visible: cols > 0,
	}
	Logger().Debug("canvas created",
		"rows", rows, "cols", cols,
		"pixelWidth", g.PixelWidth(), "pixelHeight", g.PixelHeight())
	return g, nil
}

func (g *gridCanvas) Rows() int        { return g.rows }
func (g *gridCanvas) Cols() int        { return g.cols }
func (g *gridCanvas) PixelWidth() int  { return g.cols * g.set.cellW }
func (g *gridCanvas) PixelHeight() int { return g.rows * g.set.cellH }
func (g *gridCanvas) Visible() bool    { return g.visible }

// pixelX maps a data-space x coordinate to a virtual pixel column.
func (g *gridCanvas) pixelX(x float64) float64 {
	t := unit(x, g.cfg.OriginX, g.cfg.Width, g.cfg.XScale)
	if g.cfg.XFlip {
		t = 1 - t
	}
	return t * float64(g.PixelWidth())
}

// pixelY maps a data-space y coordinate to a virtual pixel row. Pixel
// rows grow downward while data y grows upward, so the default mapping
// inverts; YFlip undoes the inversion.
func (g *gridCanvas) pixelY(y float64) float64 {
	t := unit(y, g.cfg.OriginY, g.cfg.Height, g.cfg.YScale)
	if !g.cfg.YFlip {
		t = 1 - t
	}
	return t * float64(g.PixelHeight())
}

func (g *gridCanvas) Point(x, y float64, c Color) {
	if !finite(x) || !finite(y) {
		return
	}
	g.Pixel(g.pixelX(x), g.pixelY(y), c)
}

func (g *gridCanvas) Pixel(px, py float64, c Color) {
	if !g.visible || !finite(px) || !finite(py) {
		return
	}
	pw, ph := g.PixelWidth(), g.PixelHeight()
	if px < 0 || px > float64(pw) || py < 0 || py > float64(ph) {
		return
	}
	// Truncate toward the cell boundary rather than rounding so adjacent
	// points never alias into a neighboring cell; the far edge belongs
	// to the last pixel.
	ix := min(int(px), pw-1)
	iy := min(int(py), ph-1)
	col := ix / g.set.cellW
	row := iy / g.set.cellH
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	i := row*g.cols + col
	g.grid[i] = g.set.encode(g.grid[i], ix%g.set.cellW, iy%g.set.cellH)
	if g.cfg.Blend && g.colors[i].Valid {
		g.colors[i] = g.colors[i].Blend(c)
	} else {
		g.colors[i] = c
	}
}

func (g *gridCanvas) Line(x1, y1, x2, y2 float64, c Color) {
	if !finite(x1) || !finite(y1) || !finite(x2) || !finite(y2) {
		return
	}
	g.pixelLine(g.pixelX(x1), g.pixelY(y1), g.pixelX(x2), g.pixelY(y2), c)
}

// pixelLine walks the segment in virtual pixel space with an integer
// Bresenham stepper, setting one pixel per sample. The segment is first
// clipped to the pixel grid's bounding box: endpoints far outside the
// grid would otherwise overflow the int conversion and the walk would
// never reach them.
func (g *gridCanvas) pixelLine(px1, py1, px2, py2 float64, c Color) {
	px1, py1, px2, py2, ok := clipSegment(px1, py1, px2, py2,
		float64(g.PixelWidth()), float64(g.PixelHeight()))
	if !ok {
		return
	}
	x1, y1 := int(math.Round(px1)), int(math.Round(py1))
	x2, y2 := int(math.Round(px2)), int(math.Round(py2))

	dx, sx := abs(x2-x1), 1
	if x1 > x2 {
		sx = -1
	}
	dy, sy := -abs(y2-y1), 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		g.Pixel(float64(x1), float64(y1), c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// clipSegment clips the segment to the box [0, w] x [0, h] with the
// Liang-Barsky parameter test. It reports false when the segment lies
// entirely outside the box.
func clipSegment(x1, y1, x2, y2, w, h float64) (float64, float64, float64, float64, bool) {
	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
			return true
		}
		if t < t0 {
			return false
		}
		if t < t1 {
			t1 = t
		}
		return true
	}
	if !clip(-dx, x1) || !clip(dx, w-x1) || !clip(-dy, y1) || !clip(dy, h-y1) {
		return 0, 0, 0, 0, false
	}
	cx1, cy1 := x1+t0*dx, y1+t0*dy
	cx2, cy2 := x1+t1*dx, y1+t1*dy
	return cx1, cy1, cx2, cy2, true
}

func (g *gridCanvas) Text(x, y float64, s string, c Color) {
	if !g.visible || !finite(x) || !finite(y) || s == "" {
		return
	}
	col := int(g.pixelX(x)) / g.set.cellW
	row := min(int(g.pixelY(y)), g.PixelHeight()-1) / g.set.cellH
	if row < 0 || row >= g.rows {
		return
	}
	for _, r := range s {
		if col >= g.cols {
			return
		}
		if col >= 0 {
			i := row*g.cols + col
			g.overlay[i] = r
			g.ocolors[i] = c
		}
		col++
	}
}

func (g *gridCanvas) RenderRow(row int, st Styler) string {
	if st == nil {
		st = PlainStyler
	}
	var b strings.Builder
	for col := 0; col < g.cols; col++ {
		i := row*g.cols + col
		if g.overlay[i] != 0 {
			b.WriteString(st(string(g.overlay[i]), g.ocolors[i]))
			continue
		}
		code := g.grid[i]
		glyph := string(g.set.glyph(code))
		if code == 0 {
			b.WriteString(glyph)
			continue
		}
		b.WriteString(st(glyph, g.colors[i]))
	}
	return b.String()
}

func (g *gridCanvas) Render(st Styler) []string {
	rows := make([]string, g.rows)
	for r := range rows {
		rows[r] = g.RenderRow(r, st)
	}
	return rows
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
