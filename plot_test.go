package textplot

import (
	"errors"
	"math"
	"testing"
)

func testCanvas(t *testing.T, rows, cols int) Canvas {
	t.Helper()
	c, err := NewBrailleCanvas(rows, cols, DefaultCanvasConfig())
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// TestValidateInputFiltersNonFinite verifies tuples containing a
// non-finite value are dropped while the rest keep their order.
func TestValidateInputFiltersNonFinite(t *testing.T) {
	x, y, z, err := validateInput([]float64{1, 2, math.NaN()}, []float64{1, 2, 3}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if z != nil {
		t.Errorf("z = %v, want nil", z)
	}
	if len(x) != 2 || len(y) != 2 || x[0] != 1 || x[1] != 2 || y[0] != 1 || y[1] != 2 {
		t.Errorf("got x=%v y=%v, want [1 2] [1 2]", x, y)
	}
}

// TestValidateInputLengthMismatch verifies mismatched series lengths
// fail with ErrInvalidArgument.
func TestValidateInputLengthMismatch(t *testing.T) {
	if _, _, _, err := validateInput([]float64{1, 2}, []float64{1}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
	if _, _, _, err := validateInput([]float64{1}, []float64{1}, []float64{1, 2}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("z mismatch: got %v, want ErrInvalidArgument", err)
	}
}

// TestNewPlotNegativeMargin verifies construction fails on a negative
// margin.
func TestNewPlotNegativeMargin(t *testing.T) {
	_, err := NewPlot([]float64{1, 2}, []float64{1, 2}, WithMargin(-1))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

// TestNewPlotScaleWithProjection verifies axis scales cannot be
// combined with a 3D projection.
func TestNewPlotScaleWithProjection(t *testing.T) {
	x := []float64{1, 2, 3}
	_, err := NewPlot3D(x, x, x, WithYScale(Log10Scale))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

// TestLabelFirstFit verifies sequential row labels claim distinct rows
// top to bottom.
func TestLabelFirstFit(t *testing.T) {
	p, err := Wrap(testCanvas(t, 3, 4))
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Label(LocLeft, "A", Color{}); err != nil {
		t.Fatal(err)
	}
	if err := p.Label(LocLeft, "B", Color{}); err != nil {
		t.Fatal(err)
	}
	if p.labelsLeft[0] != "A" || p.labelsLeft[1] != "B" {
		t.Errorf("labels = %v, want A in row 0 and B in row 1", p.labelsLeft)
	}
}

// TestLabelExplicitRowOverwrites verifies LabelAt is a direct overwrite
// separate from the first-fit policy.
func TestLabelExplicitRowOverwrites(t *testing.T) {
	p, err := Wrap(testCanvas(t, 3, 4))
	if err != nil {
		t.Fatal(err)
	}
	if err := p.LabelAt(LocRight, 2, "old", Color{}); err != nil {
		t.Fatal(err)
	}
	if err := p.LabelAt(LocRight, 2, "new", Color{}); err != nil {
		t.Fatal(err)
	}
	if p.labelsRight[2] != "new" {
		t.Errorf("row 2 = %q, want overwrite to %q", p.labelsRight[2], "new")
	}
	if err := p.LabelAt(LocRight, 9, "oob", Color{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("out-of-range row: got %v, want ErrInvalidArgument", err)
	}
}

// TestLabelUnknownLocation verifies unknown decoration tags fail with
// ErrInvalidLocation.
func TestLabelUnknownLocation(t *testing.T) {
	p, err := Wrap(testCanvas(t, 2, 2))
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Label(Location(99), "x", Color{}); !errors.Is(err, ErrInvalidLocation) {
		t.Errorf("got %v, want ErrInvalidLocation", err)
	}
	if err := p.LabelAt(LocTop, 0, "x", Color{}); !errors.Is(err, ErrInvalidLocation) {
		t.Errorf("LabelAt on edge tag: got %v, want ErrInvalidLocation", err)
	}
}

// TestNextColorCycles verifies the per-plot color cycle wraps modulo
// its length.
func TestNextColorCycles(t *testing.T) {
	p, err := Wrap(testCanvas(t, 2, 2))
	if err != nil {
		t.Fatal(err)
	}
	first := p.NextColor()
	for i := 1; i < len(colorCycle); i++ {
		p.NextColor()
	}
	if got := p.NextColor(); got != first {
		t.Errorf("cycle did not wrap: got %+v, want %+v", got, first)
	}
	q, err := Wrap(testCanvas(t, 2, 2))
	if err != nil {
		t.Fatal(err)
	}
	if got := q.NextColor(); got != first {
		t.Error("color cursor leaked between plots")
	}
}

// TestSettersChain verifies the mutable text fields chain and stick.
func TestSettersChain(t *testing.T) {
	p, err := Wrap(testCanvas(t, 2, 2))
	if err != nil {
		t.Fatal(err)
	}
	p.SetTitle("t").SetXLabel("x").SetYLabel("y").SetZLabel("z")
	if p.Title() != "t" || p.xlabel != "x" || p.ylabel != "y" || p.zlabel != "z" {
		t.Errorf("setters did not stick: %q %q %q %q", p.title, p.xlabel, p.ylabel, p.zlabel)
	}
	p.SetTitle("t") // idempotent
	if p.Title() != "t" {
		t.Error("re-setting the title changed it")
	}
}

// TestSeriesCounter verifies drawing operations advance the series
// counter.
func TestSeriesCounter(t *testing.T) {
	p, err := NewPlot([]float64{0, 1}, []float64{0, 1}, WithSize(4, 2))
	if err != nil {
		t.Fatal(err)
	}
	p.Lines([]float64{0, 1}, []float64{0, 1}, Color{})
	p.Points([]float64{0.5}, []float64{0.5}, Color{})
	if p.Series() != 2 {
		t.Errorf("Series() = %d, want 2", p.Series())
	}
}

// TestPlotTickDecorations verifies the 2D series constructor places the
// axis limits in the corner and row-label slots.
func TestPlotTickDecorations(t *testing.T) {
	p, err := NewPlot([]float64{0, 10}, []float64{0, 5}, WithSize(8, 4))
	if err != nil {
		t.Fatal(err)
	}
	if p.decorations[LocBottomLeft] == "" || p.decorations[LocBottomRight] == "" {
		t.Error("x limit decorations missing")
	}
	if p.labelsLeft[0] == "" || p.labelsLeft[p.canvas.Rows()-1] == "" {
		t.Error("y limit row labels missing")
	}
}

// TestPlot3DSuppressesTicks verifies projected plots carry no axis tick
// decorations.
func TestPlot3DSuppressesTicks(t *testing.T) {
	x := []float64{0, 1, 2}
	p, err := NewPlot3D(x, x, x, WithSize(8, 4), WithAxes3D(false))
	if err != nil {
		t.Fatal(err)
	}
	if !p.Projection().Enabled() {
		t.Fatal("3D plot has no enabled projection")
	}
	if len(p.decorations) != 0 || len(p.labelsLeft) != 0 {
		t.Error("3D plot carries tick decorations")
	}
}

// TestWrapInvisibleCanvasDisablesLabels verifies labels are forced off
// when the canvas is not visible.
func TestWrapInvisibleCanvasDisablesLabels(t *testing.T) {
	c, err := NewBrailleCanvas(3, 0, DefaultCanvasConfig())
	if err != nil {
		t.Fatal(err)
	}
	p, err := Wrap(c, WithTitle("hidden"))
	if err != nil {
		t.Fatal(err)
	}
	if p.labels {
		t.Error("labels enabled on an invisible canvas")
	}
}
