package document

import "github.com/rivo/uniseg"

// DefaultTabWidth is the number of columns a tab occupies.
const DefaultTabWidth = 4

// CharWidth returns the number of columns r occupies when rendered.
// Tabs take tabWidth columns; every other rune takes at least one.
func CharWidth(r rune, tabWidth int) int {
	if r == '\t' {
		return tabWidth
	}
	if r < 0x80 {
		return 1
	}
	if w := uniseg.StringWidth(string(r)); w > 0 {
		return w
	}
	return 1
}

// StringWidth returns the rendered width of s.
func StringWidth(s string, tabWidth int) int {
	w := 0
	for _, r := range s {
		w += CharWidth(r, tabWidth)
	}
	return w
}
