package document

import "github.com/dshills/linedit/internal/engine/gap"

// Terminator ends the content of every line.
const Terminator = '\n'

// Line is one logical line of a document: a gap buffer holding the line's
// runes followed by a Terminator, plus its soft-wrap bookkeeping.
type Line struct {
	buf *gap.Buffer

	// visualEnd is the rendered width of the content.
	visualEnd int
	// wrap is the segment holding the cursor; zero when the cursor is on
	// another line.
	wrap int
	// wraps is the number of segments after the first.
	wraps int
}

// newLine creates a line holding only its terminator, with the buffer
// cursor placed before it.
func newLine(opts ...gap.Option) (*Line, error) {
	buf := gap.New(opts...)
	if err := buf.Insert(Terminator); err != nil {
		return nil, err
	}
	buf.MoveCursor(-1)
	return &Line{buf: buf}, nil
}

// destroy releases the buffer. The line must not be used afterwards.
func (l *Line) destroy() {
	l.buf = nil
}

// Len returns the number of runes in the line, excluding the terminator.
func (l *Line) Len() int {
	return l.buf.Len() - 1
}

// Cursor returns the line's edit position in [0, Len()].
func (l *Line) Cursor() int {
	return l.buf.Cursor()
}

// VisualEnd returns the rendered width of the line.
func (l *Line) VisualEnd() int {
	return l.visualEnd
}

// Wrap returns the soft-wrap segment the cursor occupies.
func (l *Line) Wrap() int {
	return l.wrap
}

// Wraps returns the number of soft-wrap segments beyond the first.
func (l *Line) Wraps() int {
	return l.wraps
}

// Runes returns a copy of the content without the terminator.
func (l *Line) Runes() []rune {
	rs := l.buf.Runes()
	return rs[:len(rs)-1]
}

// String returns the content without the terminator.
func (l *Line) String() string {
	return string(l.Runes())
}

// Debug returns the gap buffer dump of the line.
func (l *Line) Debug() string {
	return l.buf.Debug()
}

// GapStart and GapEnd expose the physical gap bounds for diagnostics.
func (l *Line) GapStart() int { return l.buf.GapStart() }
func (l *Line) GapEnd() int   { return l.buf.GapEnd() }

// cursorToStart moves the buffer cursor to the start of the content.
func (l *Line) cursorToStart() {
	l.buf.MoveCursor(l.buf.DistanceToStart())
}

// cursorToEnd moves the buffer cursor in front of the terminator.
func (l *Line) cursorToEnd() {
	l.buf.MoveCursor(l.buf.DistanceToEnd() - 1)
}

// widthBefore returns the rendered width of the first n runes.
func (l *Line) widthBefore(n, tabWidth int) int {
	w := 0
	for i := 0; i < n; i++ {
		r, _ := l.buf.At(i)
		w += CharWidth(r, tabWidth)
	}
	return w
}

// validate checks the line's own invariants.
func (l *Line) validate(num, tabWidth int) error {
	if err := l.buf.Validate(); err != nil {
		return invariant("buffer", num, "%v", err)
	}
	n := l.buf.Len()
	if n == 0 {
		return invariant("terminator", num, "line has no terminator")
	}
	if r, _ := l.buf.At(n - 1); r != Terminator {
		return invariant("terminator", num, "last rune is %q", r)
	}
	for i := 0; i < n-1; i++ {
		if r, _ := l.buf.At(i); r == Terminator {
			return invariant("terminator", num, "extra terminator at %d", i)
		}
	}
	if c := l.buf.Cursor(); c > n-1 {
		return invariant("cursor", num, "cursor %d past terminator at %d", c, n-1)
	}
	if w := l.widthBefore(n-1, tabWidth); w != l.visualEnd {
		return invariant("visual-end", num, "visual end %d, content width %d", l.visualEnd, w)
	}
	return nil
}
