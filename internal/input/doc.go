// Package input translates terminal events into editor actions.
//
// Printable keys, Enter, Tab, Backspace, Delete and the cursor keys become
// engine commands. Control keys are looked up in a small binding table:
//
//	Ctrl+S  save
//	Ctrl+Q  quit (twice when there are unsaved changes)
//	Ctrl+C  quit
//	Ctrl+K  copy the current line
//	Ctrl+V  paste
//	Ctrl+L  redraw
//
// Bindings can be replaced with Bind.
package input
