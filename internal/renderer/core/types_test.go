package core

import "testing"

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'\t', 0},
		{0x7F, 0},
		{'é', 1},
		{'世', 2},
		{'가', 2},
	}

	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%U) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestStyleBuilders(t *testing.T) {
	s := DefaultStyle().Bold().Reverse().WithForeground(ColorRed)

	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrReverse) {
		t.Errorf("attributes = %v", s.Attributes)
	}
	if s.Attributes.Has(AttrDim) {
		t.Error("dim should not be set")
	}
	if s.Foreground != ColorRed || !s.Background.IsDefault() {
		t.Errorf("colors = %+v", s)
	}
	if s.Equals(DefaultStyle()) {
		t.Error("styled should differ from default")
	}
}

func TestCells(t *testing.T) {
	if c := EmptyCell(); c.Rune != ' ' || c.Width != 1 {
		t.Errorf("EmptyCell() = %+v", c)
	}
	if !ContinuationCell().IsContinuation() {
		t.Error("ContinuationCell should be a continuation")
	}
	wide := NewStyledCell('世', DefaultStyle())
	if wide.Width != 2 || wide.IsContinuation() {
		t.Errorf("wide cell = %+v", wide)
	}
}

func TestScreenRect(t *testing.T) {
	r := NewScreenRect(2, 3, 10, 20)
	if r.Width() != 17 || r.Height() != 8 {
		t.Errorf("size = %dx%d", r.Width(), r.Height())
	}
	if e := NewScreenRect(5, 5, 2, 2); e.Width() != 0 || e.Height() != 0 {
		t.Error("inverted rect should be empty")
	}
}
