package renderer

import (
	"github.com/dshills/linedit/internal/engine/document"
	"github.com/dshills/linedit/internal/renderer/core"
)

// expandLine converts a line into display cells. Tabs become tabWidth
// blank cells and wide characters are followed by continuation cells, so
// the result is exactly the line's visual width long.
func expandLine(runes []rune, tabWidth int, style core.Style) []core.Cell {
	cells := make([]core.Cell, 0, len(runes))
	for _, r := range runes {
		w := document.CharWidth(r, tabWidth)
		if r == '\t' {
			for range w {
				cells = append(cells, core.Cell{Rune: ' ', Width: 1, Style: style})
			}
			continue
		}
		cells = append(cells, core.Cell{Rune: r, Width: w, Style: style})
		for i := 1; i < w; i++ {
			cells = append(cells, core.ContinuationCell())
		}
	}
	return cells
}

// wrapCells splits cells into segments of at most cols cells. An empty
// line still has one (empty) segment.
func wrapCells(cells []core.Cell, cols int) [][]core.Cell {
	if cols < 1 {
		cols = 1
	}
	if len(cells) == 0 {
		return [][]core.Cell{nil}
	}
	segs := make([][]core.Cell, 0, (len(cells)+cols-1)/cols)
	for start := 0; start < len(cells); start += cols {
		segs = append(segs, cells[start:min(start+cols, len(cells))])
	}
	return segs
}

// digits returns the number of decimal digits in n.
func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
