// Package renderer draws a document view onto a terminal backend.
//
// The renderer is a pure function of a document.View snapshot and a
// Status: it never touches the document. The screen is split into three
// areas:
//
//	┌──────┬──────────────────────────────┐
//	│gutter│ text, soft wrapped at Cols   │  rows
//	├──────┴──────────────────────────────┤
//	│ debug pane (optional)               │  2 rows
//	├─────────────────────────────────────┤
//	│ status line                         │  1 row
//	└─────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	rows, cols := r.ContentSize(eng.LineCount())
//	eng.Resize(rows, cols)
//	r.Render(eng.View(), status)
package renderer
