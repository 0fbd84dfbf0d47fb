// Package engine provides the text engine of linedit.
//
// The engine package is a facade over a document.Document, which in turn
// stores every line in a gap.Buffer. It turns discrete editing commands
// into document operations and tracks a revision counter for save state.
//
// # Architecture
//
// The engine is built on two sub-packages:
//
//   - gap: gap buffer of runes with a logical cursor
//   - document: lines, soft wrapping, cursor and viewport bookkeeping
//
// # Thread Safety
//
// All Engine operations are thread-safe. Commands take the write lock;
// Text, View and the other readers share the read lock, so the renderer and
// the file watcher can read while the event loop is idle.
//
// # Basic Usage
//
//	e, _ := engine.New(engine.WithViewport(24, 80))
//
//	e.InsertText("hello\nworld")
//	e.Execute(engine.Move(engine.DirUp))
//	e.Execute(engine.Backspace())
//
//	v := e.View() // lines, wrap data and cursor for rendering
//
// # Loading and Saving
//
//	f, _ := os.Open("notes.txt")
//	defer f.Close()
//	e.Load(f)
//
//	text, rev := e.Snapshot()
//	// write text somewhere, then:
//	e.MarkSaved(rev)
//
// Boundary operations, such as moving left at the start of the document,
// are no-ops: Execute reports false and a nil error.
package engine
