package gap

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Mode selects how Put writes a rune.
type Mode uint8

const (
	// ModeInsert places runes at the cursor, shifting the rest right.
	ModeInsert Mode = iota
	// ModeReplace overwrites the rune under the cursor.
	ModeReplace
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	case ModeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Buffer is a gap buffer of runes.
//
// Storage is data[0:len(data)]; the gap is the half-open physical range
// [gapStart, gapEnd). The cursor is a logical index in [0, Len()], so it can
// never point into the gap. A Buffer is not safe for concurrent use.
type Buffer struct {
	data     []rune
	gapStart int
	gapEnd   int
	cursor   int
	mode     Mode

	initialSize int
	growSize    int
	maxSize     int
}

// New creates an empty buffer whose gap spans the whole storage.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		initialSize: DefaultInitialSize,
		growSize:    DefaultGrowSize,
		mode:        ModeInsert,
	}

	for _, opt := range opts {
		opt(b)
	}

	size := b.initialSize
	if b.maxSize > 0 && size > b.maxSize {
		size = b.maxSize
	}
	b.data = make([]rune, size)
	b.gapEnd = size
	return b
}

// NewFromString creates a buffer holding s with the cursor at the end.
func NewFromString(s string, opts ...Option) (*Buffer, error) {
	b := New(opts...)
	if err := b.PutString(s); err != nil {
		return nil, err
	}
	return b, nil
}

// Len returns the number of runes stored, excluding the gap.
func (b *Buffer) Len() int {
	return len(b.data) - b.GapLen()
}

// Cap returns the total number of slots, including the gap.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// GapLen returns the number of free slots in the gap.
func (b *Buffer) GapLen() int {
	return b.gapEnd - b.gapStart
}

// GapStart returns the physical index of the first gap slot.
func (b *Buffer) GapStart() int {
	return b.gapStart
}

// GapEnd returns the physical index one past the last gap slot.
func (b *Buffer) GapEnd() int {
	return b.gapEnd
}

// Cursor returns the logical cursor position.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// PhysicalCursor returns the storage index the cursor maps to.
// Positions at or before the gap map to themselves; positions after the gap
// are shifted past it.
func (b *Buffer) PhysicalCursor() int {
	return b.physical(b.cursor)
}

// Mode returns the current write mode.
func (b *Buffer) Mode() Mode {
	return b.mode
}

// SetMode changes the write mode used by Put.
func (b *Buffer) SetMode(mode Mode) {
	if mode != ModeReplace {
		mode = ModeInsert
	}
	b.mode = mode
}

// At returns the rune at logical index i.
func (b *Buffer) At(i int) (rune, bool) {
	if i < 0 || i >= b.Len() {
		return 0, false
	}
	return b.data[b.physical(i)], true
}

// physical maps a logical index to a storage index.
func (b *Buffer) physical(i int) int {
	if i < b.gapStart {
		return i
	}
	return i + b.GapLen()
}

// MoveGap relocates the gap so that it starts at the cursor.
// It is a no-op when the gap is already there.
func (b *Buffer) MoveGap() error {
	if b.cursor == b.gapStart {
		return nil
	}
	if b.cursor < 0 || b.cursor > b.Len() {
		return fmt.Errorf("%w: cursor %d outside content of length %d",
			ErrInvariantViolation, b.cursor, b.Len())
	}

	if b.cursor < b.gapStart {
		// Shift [cursor, gapStart) to the right edge of the gap.
		n := b.gapStart - b.cursor
		copy(b.data[b.gapEnd-n:b.gapEnd], b.data[b.cursor:b.gapStart])
		b.gapStart -= n
		b.gapEnd -= n
		return nil
	}

	// Shift the content between the gap and the cursor into the gap.
	n := b.cursor - b.gapStart
	copy(b.data[b.gapStart:b.gapStart+n], b.data[b.gapEnd:b.gapEnd+n])
	b.gapStart += n
	b.gapEnd += n
	return nil
}

// mustMoveGap moves the gap and panics if the cursor is corrupt.
// The cursor is only ever changed through bounds-checked methods, so a
// failure here is a defect in this package.
func (b *Buffer) mustMoveGap() {
	if err := b.MoveGap(); err != nil {
		panic(err)
	}
}

// grow adds growSize slots to the gap. The content after the gap is moved
// to the new end of the storage.
func (b *Buffer) grow() error {
	newSize := len(b.data) + b.growSize
	if b.maxSize > 0 && newSize > b.maxSize {
		if len(b.data) >= b.maxSize {
			return fmt.Errorf("%w: capacity %d reached", ErrAllocationFailure, b.maxSize)
		}
		newSize = b.maxSize
	}

	tail := len(b.data) - b.gapEnd
	data := make([]rune, newSize)
	copy(data, b.data[:b.gapStart])
	copy(data[newSize-tail:], b.data[b.gapEnd:])

	b.data = data
	b.gapEnd = newSize - tail
	return nil
}

// Reserve grows the buffer until the gap can hold n more runes without
// another allocation.
func (b *Buffer) Reserve(n int) error {
	for b.GapLen() < n {
		if err := b.grow(); err != nil {
			return err
		}
	}
	return nil
}

// Insert writes r at the cursor and advances the cursor past it.
func (b *Buffer) Insert(r rune) error {
	b.mustMoveGap()

	if b.gapStart == b.gapEnd {
		if err := b.grow(); err != nil {
			return err
		}
	}

	b.data[b.gapStart] = r
	b.gapStart++
	b.cursor++
	return nil
}

// Replace overwrites the rune under the cursor with r and advances the
// cursor. At the end of the content it behaves like Insert.
func (b *Buffer) Replace(r rune) error {
	if b.cursor == b.Len() {
		return b.Insert(r)
	}

	b.data[b.physical(b.cursor)] = r
	b.cursor++
	return nil
}

// Put writes r using the current mode.
func (b *Buffer) Put(r rune) error {
	if b.mode == ModeReplace {
		return b.Replace(r)
	}
	return b.Insert(r)
}

// PutString writes every rune of s with Put. The buffer is grown up front so
// that a failed allocation leaves the content untouched.
func (b *Buffer) PutString(s string) error {
	b.mustMoveGap()

	if err := b.Reserve(utf8.RuneCountInString(s)); err != nil {
		return err
	}

	for _, r := range s {
		if err := b.Put(r); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the rune to the left of the cursor and returns it.
// At the start of the content it does nothing and returns false.
func (b *Buffer) Delete() (rune, bool) {
	b.mustMoveGap()

	if b.gapStart == 0 {
		return 0, false
	}

	b.gapStart--
	r := b.data[b.gapStart]
	b.data[b.gapStart] = 0
	b.cursor--
	return r, true
}

// MoveCursor moves the cursor by distance runes. A move that would leave
// [0, Len()] is ignored and reported as false.
func (b *Buffer) MoveCursor(distance int) bool {
	pos := b.cursor + distance
	if pos < 0 || pos > b.Len() {
		return false
	}
	b.cursor = pos
	return true
}

// DistanceToStart returns the MoveCursor distance that reaches the start of
// the content. It is zero or negative.
func (b *Buffer) DistanceToStart() int {
	return -b.cursor
}

// DistanceToEnd returns the MoveCursor distance that reaches the end of the
// content. It is zero or positive.
func (b *Buffer) DistanceToEnd() int {
	return b.Len() - b.cursor
}

// Runes returns a copy of the content.
func (b *Buffer) Runes() []rune {
	out := make([]rune, 0, b.Len())
	out = append(out, b.data[:b.gapStart]...)
	out = append(out, b.data[b.gapEnd:]...)
	return out
}

// String returns the content as a string.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(b.Len())
	for _, r := range b.data[:b.gapStart] {
		sb.WriteRune(r)
	}
	for _, r := range b.data[b.gapEnd:] {
		sb.WriteRune(r)
	}
	return sb.String()
}

// Validate checks the buffer's invariants.
func (b *Buffer) Validate() error {
	switch {
	case b.gapStart < 0 || b.gapEnd > len(b.data):
		return fmt.Errorf("%w: gap [%d,%d) outside storage of %d",
			ErrInvariantViolation, b.gapStart, b.gapEnd, len(b.data))
	case b.gapStart > b.gapEnd:
		return fmt.Errorf("%w: gap start %d after gap end %d",
			ErrInvariantViolation, b.gapStart, b.gapEnd)
	case b.cursor < 0 || b.cursor > b.Len():
		return fmt.Errorf("%w: cursor %d outside content of length %d",
			ErrInvariantViolation, b.cursor, b.Len())
	}

	p := b.PhysicalCursor()
	if p > b.gapStart && p < b.gapEnd {
		return fmt.Errorf("%w: cursor %d inside gap [%d,%d)",
			ErrInvariantViolation, p, b.gapStart, b.gapEnd)
	}
	return nil
}

// Debug renders the raw storage for diagnostics:
//
//	cursor:  2 gap: [  2,  8)  [ab|______|cd] size: 4
//
// Gap slots are drawn as '_', the gap bounds as '|', line feeds as '$' and
// tabs as '>'.
func (b *Buffer) Debug() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "cursor:%3d gap: [%3d,%3d)  [", b.cursor, b.gapStart, b.gapEnd)

	for i := 0; i <= len(b.data); i++ {
		if i == b.gapStart {
			sb.WriteByte('|')
		}
		if i == b.gapEnd && b.gapEnd != b.gapStart {
			sb.WriteByte('|')
		}
		if i == len(b.data) {
			break
		}
		if i >= b.gapStart && i < b.gapEnd {
			sb.WriteByte('_')
			continue
		}
		switch r := b.data[i]; r {
		case '\n':
			sb.WriteByte('$')
		case '\t':
			sb.WriteByte('>')
		default:
			sb.WriteRune(r)
		}
	}

	fmt.Fprintf(&sb, "] size: %d", b.Len())
	return sb.String()
}
