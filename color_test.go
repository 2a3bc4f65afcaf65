package textplot

import (
	"testing"

	"golang.org/x/image/colornames"
)

// TestBlend verifies arithmetic color mixing and the unset-color edge
// cases.
func TestBlend(t *testing.T) {
	red := NewColor(1, 0, 0)
	blue := NewColor(0, 0, 1)
	mix := red.Blend(blue)
	if mix.R != 0.5 || mix.G != 0 || mix.B != 0.5 || !mix.Valid {
		t.Errorf("red+blue = %+v, want R=0.5 B=0.5", mix)
	}
	if got := (Color{}).Blend(red); got != red {
		t.Errorf("unset.Blend(red) = %+v, want red", got)
	}
	if got := red.Blend(Color{}); got != red {
		t.Errorf("red.Blend(unset) = %+v, want red", got)
	}
}

// TestFromColorRoundTrip verifies conversion from the standard color
// interface.
func TestFromColorRoundTrip(t *testing.T) {
	c := FromColor(colornames.Red)
	if c.R != 1 || c.G != 0 || c.B != 0 || !c.Valid {
		t.Errorf("FromColor(red) = %+v", c)
	}
}

// TestAnsiStyler verifies styled and unstyled output.
func TestAnsiStyler(t *testing.T) {
	if got := AnsiStyler("x", NewColor(0, 1, 0)); got != "\x1b[38;2;0;255;0mx\x1b[0m" {
		t.Errorf("styled = %q", got)
	}
	if got := AnsiStyler("x", Color{}); got != "x" {
		t.Errorf("unset color styled = %q, want bare glyph", got)
	}
	if got := PlainStyler("x", NewColor(0, 1, 0)); got != "x" {
		t.Errorf("PlainStyler = %q, want bare glyph", got)
	}
}

// TestDisplayWidth verifies wide runes count as two cells.
func TestDisplayWidth(t *testing.T) {
	cases := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"日本", 4},
		{"a日b", 4},
	}
	for _, c := range cases {
		if got := displayWidth(c.s); got != c.want {
			t.Errorf("displayWidth(%q) = %d, want %d", c.s, got, c.want)
		}
	}
}

// TestPadAndCenter verifies the padding helpers use display width.
func TestPadAndCenter(t *testing.T) {
	if got := padLeft("日", 4); got != "  日" {
		t.Errorf("padLeft = %q", got)
	}
	if got := padRight("x", 3); got != "x  " {
		t.Errorf("padRight = %q", got)
	}
	if got := center("ab", 6); got != "  ab  " {
		t.Errorf("center = %q", got)
	}
}
