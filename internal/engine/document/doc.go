// Package document organizes gap-buffered lines into an editable document
// with soft wrapping and a cursor-following viewport.
//
// A Document owns an ordered sequence of Lines. Each Line stores its runes in
// a gap.Buffer that always ends with a single '\n' terminator, and tracks the
// rendered width of its content (tabs count as TabWidth columns) together
// with the number of soft-wrap segments that width needs in the current
// viewport.
//
// All edits and cursor movements go through Document methods, which keep
// the line sequence, the per-line wrap data, and the viewport state (top
// line, visual row and column, stored column) consistent with each other.
// Operations at a boundary with nowhere to go are no-ops: moves report
// false and edits return nil.
//
// Layout rules:
//
//   - A line of visual width V wraps into (V-1)/Cols extra segments.
//   - A cursor at visual column v sits in segment v/Cols at column v%Cols,
//     except at the end of an exactly full segment where it stays on that
//     segment at column Cols.
//   - The viewport scrolls by whole lines so that the cursor row stays
//     within [0, Rows).
//
// A Document is not safe for concurrent use; see package engine for a
// guarded facade.
package document
