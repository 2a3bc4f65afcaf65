package textplot

import (
	"os"

	"golang.org/x/term"
)

// Fallback canvas size in character cells, used when stdout is not a
// terminal or its size cannot be determined.
const (
	defaultCanvasWidth  = 40
	defaultCanvasHeight = 15
)

// DefaultSize returns the default canvas size in character cells. When
// stdout is a terminal the width adapts to it, leaving room for the
// frame, gutters and margins; the height stays fixed so plots do not
// fill the whole screen.
func DefaultSize() (width, height int) {
	width, height = defaultCanvasWidth, defaultCanvasHeight
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return width, height
	}
	tw, _, err := term.GetSize(fd)
	if err != nil {
		return width, height
	}
	// Keep the decorated plot inside the terminal width.
	if avail := tw - 20; avail > 0 && avail < width {
		width = avail
	}
	return width, height
}
