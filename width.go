package textplot

import "golang.org/x/text/width"

// runeWidth reports how many terminal cells r occupies. East Asian wide
// and fullwidth runes take two cells; everything else takes one.
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// displayWidth reports how many terminal cells s occupies. Layout code
// must use this instead of len or utf8.RuneCountInString so wide labels
// do not shift the frame.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}

// padRight pads s with spaces to display width w.
func padRight(s string, w int) string {
	for displayWidth(s) < w {
		s += " "
	}
	return s
}

// padLeft pads s with spaces on the left to display width w.
func padLeft(s string, w int) string {
	for displayWidth(s) < w {
		s = " " + s
	}
	return s
}

// center pads s on both sides to display width w, favoring the right
// side when the padding is odd.
func center(s string, w int) string {
	gap := w - displayWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return spaces(left) + s + spaces(gap-left)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
