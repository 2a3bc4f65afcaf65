package textplot

import "strings"

// Border names a frame style. BorderNone keeps the frame's spacing but
// draws no glyphs.
type Border int

const (
	BorderSolid Border = iota
	BorderRounded
	BorderBold
	BorderDotted
	BorderAscii
	BorderNone
)

// borderGlyphs holds the frame glyphs per style in the order: top-left,
// top, top-right, left, right, bottom-left, bottom, bottom-right.
var borderGlyphs = map[Border][8]string{
	BorderSolid:   {"┌", "─", "┐", "│", "│", "└", "─", "┘"},
	BorderRounded: {"╭", "─", "╮", "│", "│", "╰", "─", "╯"},
	BorderBold:    {"┏", "━", "┓", "┃", "┃", "┗", "━", "┛"},
	BorderDotted:  {"⡤", "⠤", "⢤", "⡇", "⢸", "⠓", "⠒", "⠚"},
	BorderAscii:   {"+", "-", "+", "|", "|", "+", "-", "+"},
	BorderNone:    {" ", " ", " ", " ", " ", " ", " ", " "},
}

// String renders the plot with ANSI styling.
func (p *Plot) String() string {
	return strings.Join(p.Render(AnsiStyler), "\n")
}

// Render composes the decorated plot into its final text lines, top to
// bottom: margin rows, the centered title, the top border with its
// decorations, one row per canvas row framed by border glyphs and the
// side label gutters, the bottom border with its decorations, the
// x-axis label row and the bottom margin. The optional colorbar strip
// is appended to the right of the frame, sharing its row count.
//
// Render mutates nothing; rendering a fully constructed plot from
// multiple goroutines is safe.
func (p *Plot) Render(st Styler) []string {
	if st == nil {
		st = PlainStyler
	}
	b := borderGlyphs[p.border]
	rows := p.canvas.Rows()
	cols := p.canvas.Cols()
	Logger().Debug("rendering plot", "rows", rows, "cols", cols, "labels", p.labels)

	labelsLeft, labelsRight, decorations := p.labelsLeft, p.labelsRight, p.decorations
	xlabel, ylabel := p.xlabel, p.ylabel
	if p.compact && p.labels {
		// Fold the axis labels into existing slots instead of dedicated
		// rows and columns.
		labelsLeft = cloneRowLabels(labelsLeft)
		decorations = cloneDecorations(decorations)
		if xlabel != "" && decorations[LocBottom] == "" {
			decorations[LocBottom] = xlabel
		}
		if ylabel != "" {
			for row := 0; row < rows; row++ {
				if labelsLeft[row] == "" {
					labelsLeft[row] = ylabel
					break
				}
			}
		}
		xlabel, ylabel = "", ""
	}

	leftw, rightw := 0, 0
	if p.labels {
		for _, s := range labelsLeft {
			leftw = max(leftw, displayWidth(s))
		}
		for _, s := range labelsRight {
			rightw = max(rightw, displayWidth(s))
		}
	}
	gutter := 0
	if leftw > 0 {
		gutter = leftw + p.padding
	}
	ycol := 0
	if p.labels && !p.compact && ylabel != "" {
		ycol = displayWidth(ylabel) + 1
	}
	prefix := spaces(ycol + gutter)

	cbar := p.colorbarRows(st, rows)
	// Border rows of the strip must sit in the same columns as its
	// gradient cells, which follow the right label gutter.
	rgutter := ""
	if rightw > 0 {
		rgutter = spaces(p.padding + rightw)
	}

	var out []string
	emit := func(line string) { out = append(out, strings.TrimRight(line, " ")) }

	for i := 0; i < p.margin; i++ {
		emit("")
	}
	if p.labels && p.title != "" {
		emit(prefix + " " + center(p.title, cols))
	}

	top := b[0] + p.overlayRow(st, b[1], cols, decorations, LocTopLeft, LocTop, LocTopRight) + b[2]
	emit(prefix + top + rgutter + cbar.top)

	for row := 0; row < rows; row++ {
		var line strings.Builder
		if ycol > 0 {
			if row == rows/2 {
				line.WriteString(ylabel + " ")
			} else {
				line.WriteString(spaces(ycol))
			}
		}
		if gutter > 0 {
			line.WriteString(st(padLeft(labelsLeft[row], leftw), p.colorsLeft[row]))
			line.WriteString(spaces(p.padding))
		}
		line.WriteString(b[3])
		line.WriteString(p.canvas.RenderRow(row, st))
		line.WriteString(b[4])
		if p.labels && labelsRight[row] != "" {
			line.WriteString(spaces(p.padding))
			line.WriteString(st(padRight(labelsRight[row], rightw), p.colorsRight[row]))
		} else if rightw > 0 {
			line.WriteString(spaces(p.padding + rightw))
		}
		emit(line.String() + cbar.rows[row])
	}

	bottom := b[5] + p.overlayRow(st, b[6], cols, decorations, LocBottomLeft, LocBottom, LocBottomRight) + b[7]
	emit(prefix + bottom + rgutter + cbar.bottom)

	if p.labels && xlabel != "" {
		emit(prefix + " " + center(xlabel, cols))
	}
	for i := 0; i < p.margin; i++ {
		emit("")
	}
	return out
}

// overlayRow builds a border interior of width w and splices the three
// decoration texts over it: left-aligned, centered and right-aligned.
func (p *Plot) overlayRow(st Styler, fill string, w int, decorations map[Location]string, ll, lc, lr Location) string {
	cells := make([]string, w)
	colors := make([]Color, w)
	for i := range cells {
		cells[i] = fill
	}
	place := func(loc Location, pos int) {
		if !p.labels {
			return
		}
		// A wide rune occupies its cell plus the next one, which is
		// emptied so the row keeps a stable display width.
		for _, r := range decorations[loc] {
			rw := runeWidth(r)
			if pos >= 0 && pos+rw <= w {
				cells[pos] = string(r)
				colors[pos] = p.decoColors[loc]
				for i := 1; i < rw; i++ {
					cells[pos+i] = ""
					colors[pos+i] = Color{}
				}
			}
			pos += rw
		}
	}
	place(ll, 0)
	place(lc, (w-displayWidth(decorations[lc]))/2)
	place(lr, w-displayWidth(decorations[lr]))

	var row strings.Builder
	for i := range cells {
		if colors[i].Valid {
			row.WriteString(st(cells[i], colors[i]))
		} else {
			row.WriteString(cells[i])
		}
	}
	return row.String()
}

// colorbarSegments carries the per-output-row text appended right of the
// frame for the colorbar strip.
type colorbarSegments struct {
	top    string
	rows   []string
	bottom string
}

// colorbarRows renders the colorbar strip: a bordered two-cell gradient
// column aligned with the canvas rows, labelled with its value range and
// the z-axis label beside the middle row.
func (p *Plot) colorbarRows(st Styler, rows int) colorbarSegments {
	seg := colorbarSegments{rows: make([]string, rows)}
	if p.cmap == nil || !p.cmap.Visible || !p.canvas.Visible() {
		return seg
	}
	cb := borderGlyphs[p.cmap.Border]
	seg.top = " " + cb[0] + cb[1] + cb[1] + cb[2]
	seg.bottom = " " + cb[5] + cb[6] + cb[6] + cb[7]

	ticks := p.cmap.tickLabels(rows)
	for row := 0; row < rows; row++ {
		t := 1.0
		if rows > 1 {
			t = 1 - float64(row)/float64(rows-1)
		}
		c := p.cmap.at(t)
		line := " " + cb[3] + st("██", c) + cb[4]
		if p.labels && ticks[row] != "" {
			line += spaces(p.padding) + ticks[row]
		}
		if p.labels && p.zlabel != "" && row == rows/2 {
			line += " " + p.zlabel
		}
		seg.rows[row] = line
	}
	return seg
}

func cloneRowLabels(m map[int]string) map[int]string {
	out := make(map[int]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneDecorations(m map[Location]string) map[Location]string {
	out := make(map[Location]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
