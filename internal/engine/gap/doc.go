// Package gap provides a gap buffer: a rune store with one movable unused
// region (the gap) that absorbs the cost of local inserts and deletes.
//
// The buffer keeps a logical cursor that indexes the non-gap content. Writes
// happen at the cursor; the gap is moved there lazily, only when a write or
// delete needs it, so cursor movement on its own never shifts storage.
//
// Key features:
//   - O(1) amortized insert/delete at the cursor
//   - Insert and replace (overwrite) write modes
//   - Growth by a fixed increment, optionally capped by a maximum size
//   - Invariant validation and a debug dump of the raw storage
//
// Basic usage:
//
//	b := gap.New()
//	b.PutString("hello")       // "hello", cursor at 5
//	b.MoveCursor(-5)           // cursor at 0
//	b.Insert('>')              // ">hello"
//	b.MoveCursor(b.DistanceToEnd())
//	b.Delete()                 // ">hell"
//
// Movement past either end of the content is a silent no-op: MoveCursor
// reports false and leaves the cursor where it was.
package gap
