package gap

import (
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	b := New(WithInitialSize(10))

	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}
	if b.Cap() != 10 {
		t.Errorf("expected capacity 10, got %d", b.Cap())
	}
	if b.GapStart() != 0 || b.GapEnd() != 10 {
		t.Errorf("expected gap [0,10), got [%d,%d)", b.GapStart(), b.GapEnd())
	}
	if b.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", b.Cursor())
	}
	if b.Mode() != ModeInsert {
		t.Errorf("expected insert mode, got %s", b.Mode())
	}
}

func TestNewClampsToMaxSize(t *testing.T) {
	b := New(WithInitialSize(100), WithMaxSize(8))
	if b.Cap() != 8 {
		t.Errorf("expected capacity 8, got %d", b.Cap())
	}
}

func TestInsertAppends(t *testing.T) {
	b := New(WithInitialSize(4))

	for _, r := range "hello" {
		if err := b.Insert(r); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	if b.String() != "hello" {
		t.Errorf("expected 'hello', got %q", b.String())
	}
	if b.Cursor() != 5 {
		t.Errorf("expected cursor 5, got %d", b.Cursor())
	}
}

func TestInsertInMiddle(t *testing.T) {
	b, err := NewFromString("Hello World")
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}

	b.MoveCursor(-6)
	if err := b.Insert(','); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if b.String() != "Hello, World" {
		t.Errorf("expected 'Hello, World', got %q", b.String())
	}
	if b.Cursor() != 6 {
		t.Errorf("expected cursor 6, got %d", b.Cursor())
	}
}

func TestInsertRoundTripAnyOrder(t *testing.T) {
	// Build "abcdef" by inserting out of order.
	b := New(WithInitialSize(2), WithGrowSize(2))
	steps := []struct {
		move int
		r    rune
	}{
		{0, 'c'},
		{-1, 'a'},
		{0, 'b'},
		{1, 'e'},
		{0, 'f'},
		{-2, 'd'},
	}

	for _, s := range steps {
		b.MoveCursor(s.move)
		if err := b.Insert(s.r); err != nil {
			t.Fatalf("insert %q failed: %v", s.r, err)
		}
		if err := b.Validate(); err != nil {
			t.Fatalf("invalid after insert %q: %v", s.r, err)
		}
	}

	if b.String() != "abcdef" {
		t.Errorf("expected 'abcdef', got %q", b.String())
	}
}

func TestMoveGapLeftAndRight(t *testing.T) {
	b, _ := NewFromString("abcdef", WithInitialSize(10))

	b.MoveCursor(-4)
	if err := b.MoveGap(); err != nil {
		t.Fatalf("MoveGap failed: %v", err)
	}
	if b.GapStart() != 2 {
		t.Errorf("expected gap start 2, got %d", b.GapStart())
	}
	if b.GapEnd() != 6 {
		t.Errorf("expected gap end 6, got %d", b.GapEnd())
	}
	if b.String() != "abcdef" {
		t.Errorf("content changed: %q", b.String())
	}

	b.MoveCursor(3)
	if err := b.MoveGap(); err != nil {
		t.Fatalf("MoveGap failed: %v", err)
	}
	if b.GapStart() != 5 || b.GapEnd() != 9 {
		t.Errorf("expected gap [5,9), got [%d,%d)", b.GapStart(), b.GapEnd())
	}
	if b.String() != "abcdef" {
		t.Errorf("content changed: %q", b.String())
	}
}

func TestMoveGapNoOp(t *testing.T) {
	b, _ := NewFromString("abc")
	start, end := b.GapStart(), b.GapEnd()

	if err := b.MoveGap(); err != nil {
		t.Fatalf("MoveGap failed: %v", err)
	}
	if b.GapStart() != start || b.GapEnd() != end {
		t.Error("gap moved although the cursor was at the gap")
	}
}

func TestMoveGapCorruptCursor(t *testing.T) {
	b, _ := NewFromString("abc")
	b.cursor = 42

	err := b.MoveGap()
	if !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("expected ErrInvariantViolation, got %v", err)
	}
}

func TestGrowKeepsTail(t *testing.T) {
	b, _ := NewFromString("abcd", WithInitialSize(4), WithGrowSize(3))
	b.MoveCursor(-2)

	if err := b.Insert('X'); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if b.Cap() != 7 {
		t.Errorf("expected capacity 7, got %d", b.Cap())
	}
	if b.String() != "abXcd" {
		t.Errorf("expected 'abXcd', got %q", b.String())
	}
	if b.GapEnd() != b.Cap()-2 {
		t.Errorf("tail not moved to the end: gap end %d, cap %d", b.GapEnd(), b.Cap())
	}
}

func TestAllocationFailure(t *testing.T) {
	b := New(WithInitialSize(2), WithGrowSize(2), WithMaxSize(3))

	for _, r := range "abc" {
		if err := b.Insert(r); err != nil {
			t.Fatalf("insert %q failed: %v", r, err)
		}
	}

	err := b.Insert('d')
	if !errors.Is(err, ErrAllocationFailure) {
		t.Fatalf("expected ErrAllocationFailure, got %v", err)
	}
	if b.String() != "abc" {
		t.Errorf("content changed after failed insert: %q", b.String())
	}
}

func TestPutStringAllocationFailureLeavesContent(t *testing.T) {
	b := New(WithInitialSize(2), WithGrowSize(2), WithMaxSize(4))
	_ = b.PutString("ab")

	err := b.PutString("cde")
	if !errors.Is(err, ErrAllocationFailure) {
		t.Fatalf("expected ErrAllocationFailure, got %v", err)
	}
	if b.String() != "ab" {
		t.Errorf("expected 'ab', got %q", b.String())
	}
}

func TestReplace(t *testing.T) {
	b, _ := NewFromString("abcd")
	b.MoveCursor(-3)
	b.SetMode(ModeReplace)

	if err := b.PutString("XY"); err != nil {
		t.Fatalf("PutString failed: %v", err)
	}
	if b.String() != "aXYd" {
		t.Errorf("expected 'aXYd', got %q", b.String())
	}
	if b.Cursor() != 3 {
		t.Errorf("expected cursor 3, got %d", b.Cursor())
	}
}

func TestReplaceSkipsGap(t *testing.T) {
	b, _ := NewFromString("abcd")
	b.MoveCursor(-2)
	_ = b.Insert('-') // gap now sits right after '-'
	b.MoveCursor(-1)
	b.MoveCursor(1) // cursor at the gap, content follows it

	if err := b.Replace('C'); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if b.String() != "ab-Cd" {
		t.Errorf("expected 'ab-Cd', got %q", b.String())
	}
}

func TestReplaceAtEndInserts(t *testing.T) {
	b, _ := NewFromString("ab")
	b.SetMode(ModeReplace)

	if err := b.Put('c'); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if b.String() != "abc" {
		t.Errorf("expected 'abc', got %q", b.String())
	}
}

func TestSetModeUnknownFallsBackToInsert(t *testing.T) {
	b := New()
	b.SetMode(Mode(7))
	if b.Mode() != ModeInsert {
		t.Errorf("expected insert mode, got %s", b.Mode())
	}
}

func TestDelete(t *testing.T) {
	b, _ := NewFromString("abc")
	b.MoveCursor(-1)

	r, ok := b.Delete()
	if !ok || r != 'b' {
		t.Fatalf("expected to delete 'b', got %q (%v)", r, ok)
	}
	if b.String() != "ac" {
		t.Errorf("expected 'ac', got %q", b.String())
	}
	if b.Cursor() != 1 {
		t.Errorf("expected cursor 1, got %d", b.Cursor())
	}
}

func TestDeleteAtStart(t *testing.T) {
	b, _ := NewFromString("abc")
	b.MoveCursor(b.DistanceToStart())

	if _, ok := b.Delete(); ok {
		t.Error("delete at start should be a no-op")
	}
	if b.String() != "abc" {
		t.Errorf("content changed: %q", b.String())
	}
}

func TestMoveCursorBounds(t *testing.T) {
	b, _ := NewFromString("abc")

	if b.MoveCursor(1) {
		t.Error("move past end should fail")
	}
	if b.Cursor() != 3 {
		t.Errorf("cursor changed on failed move: %d", b.Cursor())
	}
	if b.MoveCursor(-4) {
		t.Error("move before start should fail")
	}
	if b.Cursor() != 3 {
		t.Errorf("cursor changed on failed move: %d", b.Cursor())
	}
}

func TestMoveCursorSymmetry(t *testing.T) {
	b, _ := NewFromString("hello world")
	b.MoveCursor(-5)
	_ = b.Insert('_') // place the gap in the middle

	for start := 0; start <= b.Len(); start++ {
		for d := -b.Len(); d <= b.Len(); d++ {
			b.cursor = start
			if !b.MoveCursor(d) {
				continue
			}
			if !b.MoveCursor(-d) {
				t.Fatalf("reverse move of %d from %d failed", -d, start+d)
			}
			if b.Cursor() != start {
				t.Fatalf("move %d and back from %d landed on %d", d, start, b.Cursor())
			}
		}
	}
}

func TestDistances(t *testing.T) {
	b, _ := NewFromString("abcdef")
	b.MoveCursor(-4)
	_ = b.MoveGap()
	b.MoveCursor(3)

	if d := b.DistanceToStart(); d != -5 {
		t.Errorf("expected distance to start -5, got %d", d)
	}
	if d := b.DistanceToEnd(); d != 1 {
		t.Errorf("expected distance to end 1, got %d", d)
	}

	b.MoveCursor(b.DistanceToStart())
	if b.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", b.Cursor())
	}
	b.MoveCursor(b.DistanceToEnd())
	if b.Cursor() != b.Len() {
		t.Errorf("expected cursor at end, got %d", b.Cursor())
	}
}

func TestAt(t *testing.T) {
	b, _ := NewFromString("abcd")
	b.MoveCursor(-2)
	_ = b.MoveGap()

	want := "abcd"
	for i, w := range want {
		r, ok := b.At(i)
		if !ok || r != w {
			t.Errorf("At(%d) = %q, %v; want %q", i, r, ok, w)
		}
	}
	if _, ok := b.At(4); ok {
		t.Error("At past end should fail")
	}
	if _, ok := b.At(-1); ok {
		t.Error("At before start should fail")
	}
}

func TestRunesAndUnicode(t *testing.T) {
	b, _ := NewFromString("日本語")
	b.MoveCursor(-1)
	_ = b.Insert('x')

	if got := string(b.Runes()); got != "日本x語" {
		t.Errorf("expected '日本x語', got %q", got)
	}
	if b.Len() != 4 {
		t.Errorf("expected 4 runes, got %d", b.Len())
	}
}

func TestDebug(t *testing.T) {
	b := New(WithInitialSize(6))
	_ = b.PutString("a\tb\n")
	b.MoveCursor(-2)
	_ = b.MoveGap()

	got := b.Debug()
	if !strings.Contains(got, "[a>|__|b$]") {
		t.Errorf("unexpected debug layout: %q", got)
	}
	if !strings.HasSuffix(got, "size: 4") {
		t.Errorf("expected size suffix, got %q", got)
	}
}

func TestValidate(t *testing.T) {
	b, _ := NewFromString("abc")
	if err := b.Validate(); err != nil {
		t.Fatalf("fresh buffer invalid: %v", err)
	}

	b.gapStart, b.gapEnd = b.gapEnd, b.gapStart
	if err := b.Validate(); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("expected ErrInvariantViolation, got %v", err)
	}
}
