package textplot

import "math/bits"

// Code is a cell occupancy code: a small integer identifying which
// sub-pixel positions are active inside one character cell. Code 0 is
// always the blank glyph and the maximum code of a glyph set is always
// the fully-filled glyph, which is what lets fully covered cells
// composite correctly across kinds.
type Code uint16

// pairKey keys the boundary-segment encode table: the cell's previous
// code combined with the newly activated sub-pixel position.
type pairKey struct {
	prev Code
	pos  int
}

// glyphSet describes one canvas kind: the sub-pixel geometry of a cell
// and the code<->glyph tables. Additive kinds (bit != nil) merge new
// positions with a bitwise OR; the segment kind (pairs != nil) looks up
// the (previous code, position) pair and escalates to the full-block
// code for any pair outside the curated table.
type glyphSet struct {
	cellW, cellH int
	max          Code
	decode       []rune
	bit          []Code
	pairs        map[pairKey]Code
}

// encode merges the sub-pixel position (sx, sy) into prev. It is total:
// every input yields a valid code in [0, max].
func (g *glyphSet) encode(prev Code, sx, sy int) Code {
	pos := sy*g.cellW + sx
	if g.pairs != nil {
		if c, ok := g.pairs[pairKey{prev, pos}]; ok {
			return c
		}
		return g.max
	}
	return prev | g.bit[pos]
}

// glyph returns the rune assigned to code. Codes outside [0, max] are
// never produced by encode; glyph still maps them to the blank rune so
// decoding stays total.
func (g *glyphSet) glyph(code Code) rune {
	if int(code) >= len(g.decode) {
		return g.decode[0]
	}
	return g.decode[code]
}

// Braille: 2x4 sub-pixels per cell. The bit layout follows the Unicode
// braille block, where U+2800+code has exactly the dots of code set.
var brailleGlyphs = &glyphSet{
	cellW: 2,
	cellH: 4,
	max:   255,
	bit: []Code{
		0x01, 0x08,
		0x02, 0x10,
		0x04, 0x20,
		0x40, 0x80,
	},
	decode: brailleDecode(),
}

func brailleDecode() []rune {
	t := make([]rune, 256)
	for i := range t {
		t[i] = rune(0x2800 + i)
	}
	return t
}

// Quadrant blocks: 2x2 sub-pixels per cell, one quadrant glyph per bit
// combination.
var blockGlyphs = &glyphSet{
	cellW: 2,
	cellH: 2,
	max:   15,
	bit:   []Code{1, 2, 4, 8},
	decode: []rune{
		' ', '▘', '▝', '▀',
		'▖', '▌', '▞', '▛',
		'▗', '▚', '▐', '▜',
		'▄', '▙', '▟', '█',
	},
}

// Dots: 1x2 sub-pixels per cell, rendered with plain ASCII dot marks.
// The fully-filled glyph of this kind is ':'.
var dotGlyphs = &glyphSet{
	cellW:  1,
	cellH:  2,
	max:    3,
	bit:    []Code{1, 2},
	decode: []rune{' ', '\'', '.', ':'},
}

// Plain ASCII: 3x3 sub-pixels per cell. A handful of bit patterns map to
// line-shaped characters; every other code falls back to a density ramp
// indexed by the number of set bits, so denser cells read darker. The
// fully-filled glyph is '@'.
var asciiGlyphs = &glyphSet{
	cellW:  3,
	cellH:  3,
	max:    511,
	bit:    []Code{1, 2, 4, 8, 16, 32, 64, 128, 256},
	decode: asciiDecode(),
}

// asciiRamp has one character per possible bit count (0 through 9).
var asciiRamp = []rune{' ', '.', ':', '-', '=', '+', '*', '#', '%', '@'}

// asciiShapes maps curated bit patterns to recognizable line characters:
// the three rows, the three columns and the two diagonals.
var asciiShapes = map[Code]rune{
	0b000000111: '-',  // top row
	0b000111000: '-',  // middle row
	0b111000000: '_',  // bottom row
	0b001001001: '|',  // left column
	0b010010010: '|',  // middle column
	0b100100100: '|',  // right column
	0b100010001: '\\', // main diagonal
	0b001010100: '/',  // anti diagonal
}

func asciiDecode() []rune {
	t := make([]rune, 512)
	for i := range t {
		t[i] = asciiRamp[bits.OnesCount16(uint16(i))]
	}
	for code, r := range asciiShapes {
		t[code] = r
	}
	return t
}

// Boundary segments: 2x2 sub-pixel positions (top-left, top-right,
// bottom-left, bottom-right), but the codes are directional segment
// shapes rather than independent dot sets, so encoding is keyed by the
// (previous code, new position) pair. Pairs outside the curated table
// escalate to the full block, which is conservative: a cell never loses
// the fact that it is occupied. The left and right boundary codes are
// present in the decode table but unreachable through the current pair
// table.
const (
	segBlank  Code = iota // ' '
	segTop                // upper boundary
	segBottom             // lower boundary
	segLeft               // left boundary (unreachable)
	segRight              // right boundary (unreachable)
	segFall               // top-left to bottom-right diagonal
	segRise               // bottom-left to top-right diagonal
	segFull               // full block
)

var segmentGlyphs = &glyphSet{
	cellW:  2,
	cellH:  2,
	max:    segFull,
	decode: []rune{' ', '▔', '▁', '▏', '▕', '╲', '╱', '█'},
	pairs:  segmentPairs(),
}

func segmentPairs() map[pairKey]Code {
	const (
		tl = 0
		tr = 1
		bl = 2
		br = 3
	)
	return map[pairKey]Code{
		// From a blank cell, a single position claims its boundary.
		{segBlank, tl}: segTop,
		{segBlank, tr}: segTop,
		{segBlank, bl}: segBottom,
		{segBlank, br}: segBottom,

		// Repeats along the same boundary keep the boundary.
		{segTop, tl}:    segTop,
		{segTop, tr}:    segTop,
		{segBottom, bl}: segBottom,
		{segBottom, br}: segBottom,
		{segLeft, tl}:   segLeft,
		{segLeft, bl}:   segLeft,
		{segRight, tr}:  segRight,
		{segRight, br}:  segRight,

		// A boundary plus the opposite corner becomes a diagonal.
		{segTop, br}:    segFall,
		{segTop, bl}:    segRise,
		{segBottom, tl}: segFall,
		{segBottom, tr}: segRise,
		{segLeft, br}:   segFall,
		{segLeft, tr}:   segRise,
		{segRight, tl}:  segFall,
		{segRight, bl}:  segRise,

		// Repeats along a diagonal keep the diagonal.
		{segFall, tl}: segFall,
		{segFall, br}: segFall,
		{segRise, tr}: segRise,
		{segRise, bl}: segRise,
	}
}
