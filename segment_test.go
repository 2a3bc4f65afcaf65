package textplot

import "testing"

// TestSegmentCuratedPairs walks the curated transitions: boundaries from
// blank cells, diagonals from boundary plus opposite corner, and stable
// repeats.
func TestSegmentCuratedPairs(t *testing.T) {
	const (
		tl = iota
		tr
		bl
		br
	)
	enc := func(prev Code, pos int) Code {
		return segmentGlyphs.encode(prev, pos%2, pos/2)
	}

	cases := []struct {
		name string
		prev Code
		pos  int
		want Code
	}{
		{"blank+tl is top", segBlank, tl, segTop},
		{"blank+br is bottom", segBlank, br, segBottom},
		{"top repeat stays top", segTop, tr, segTop},
		{"top+br falls", segTop, br, segFall},
		{"top+bl rises", segTop, bl, segRise},
		{"bottom+tr rises", segBottom, tr, segRise},
		{"fall repeat stays fall", segFall, br, segFall},
		{"rise repeat stays rise", segRise, bl, segRise},
	}
	for _, c := range cases {
		if got := enc(c.prev, c.pos); got != c.want {
			t.Errorf("%s: encode(%d, %d) = %d, want %d", c.name, c.prev, c.pos, got, c.want)
		}
	}
}

// TestSegmentFallbackEscalates verifies that every pair outside the
// curated table escalates to the full block, including everything
// reachable from the full block itself.
func TestSegmentFallbackEscalates(t *testing.T) {
	for prev := segBlank; prev <= segFull; prev++ {
		for pos := 0; pos < 4; pos++ {
			got := segmentGlyphs.encode(prev, pos%2, pos/2)
			if _, curated := segmentGlyphs.pairs[pairKey{prev, pos}]; curated {
				continue
			}
			if got != segFull {
				t.Errorf("encode(%d, pos %d) = %d, want full-block fallback %d", prev, pos, got, segFull)
			}
		}
	}
}

// TestSegmentUnreachableBoundaries verifies the left and right boundary
// codes decode even though no pair currently produces them.
func TestSegmentUnreachableBoundaries(t *testing.T) {
	if got := segmentGlyphs.glyph(segLeft); got != '▏' {
		t.Errorf("glyph(segLeft) = %q, want ▏", got)
	}
	if got := segmentGlyphs.glyph(segRight); got != '▕' {
		t.Errorf("glyph(segRight) = %q, want ▕", got)
	}
	for prev := segBlank; prev <= segFull; prev++ {
		for pos := 0; pos < 4; pos++ {
			got := segmentGlyphs.encode(prev, pos%2, pos/2)
			if prev != segLeft && prev != segRight && (got == segLeft || got == segRight) {
				t.Errorf("encode(%d, pos %d) produced boundary code %d", prev, pos, got)
			}
		}
	}
}
