// Package textplot renders numeric data as Unicode text-grid graphics.
//
// # Overview
//
// textplot treats a rectangle of terminal character cells as a
// higher-resolution virtual pixel grid. Data points are rasterized into
// that grid and each cell is displayed as a single glyph whose
// sub-character geometry (braille dots, quadrant blocks, boundary
// segments) encodes which virtual pixels are set inside the cell. A Plot
// decorates the canvas with borders, a title, axis labels, per-row side
// labels and an optional color-scale legend.
//
// # Quick Start
//
//	import "github.com/textplot/textplot"
//
//	x := []float64{1, 2, 3, 4, 5}
//	y := []float64{1, 4, 9, 16, 25}
//
//	p, err := textplot.NewPlot(x, y, textplot.WithTitle("squares"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	p.Lines(x, y, p.NextColor())
//	fmt.Println(p)
//
// # Architecture
//
// The library is organized into:
//   - Canvas kinds: BrailleCanvas, BlockCanvas, AsciiCanvas, DotCanvas,
//     SegmentCanvas, each a distinct sub-pixel geometry over a shared
//     cell-grid core
//   - Coordinate transforms: monotonic axis scales, flips and limit
//     derivation mapping data space to virtual pixels
//   - Projection: an optional 4x4 model-view-projection transform for
//     3D series, identity when disabled
//   - Plot: the decorator composing the canvas with borders, labels,
//     decorations and the colorbar into a block of styled text lines
//
// Rendering is a synchronous single pass. A Plot is not safe for
// concurrent mutation, but rendering a fully constructed Plot from
// multiple goroutines is safe.
package textplot
