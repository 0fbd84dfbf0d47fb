package document

import "testing"

func TestCharWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'\t', 4},
		{'\u00e9', 1},
		{'世', 2},
		{'\u200b', 1}, // zero-width still takes a cell
	}

	for _, tt := range tests {
		if got := CharWidth(tt.r, 4); got != tt.want {
			t.Errorf("CharWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}

	if got := CharWidth('\t', 8); got != 8 {
		t.Errorf("CharWidth(tab, 8) = %d, want 8", got)
	}
	if got := StringWidth("a\t世", 4); got != 7 {
		t.Errorf("StringWidth = %d, want 7", got)
	}
}
