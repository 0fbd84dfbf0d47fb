package filestore

import (
	"fmt"
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffStats summarizes a line diff between two texts.
type DiffStats struct {
	Inserted int
	Deleted  int
}

// Equal reports whether the texts had no differing lines.
func (d DiffStats) Equal() bool {
	return d.Inserted == 0 && d.Deleted == 0
}

// String returns a short summary like "+3 -1 lines".
func (d DiffStats) String() string {
	if d.Equal() {
		return "no changes"
	}
	return fmt.Sprintf("+%d -%d lines", d.Inserted, d.Deleted)
}

// Compare counts the lines inserted and deleted going from before to after.
func Compare(before, after string) DiffStats {
	if before == after {
		return DiffStats{}
	}

	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(ensureNewline(before), ensureNewline(after))
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	var stats DiffStats
	for _, df := range diffs {
		n := strings.Count(df.Text, "\n")
		switch df.Type {
		case dmp.DiffInsert:
			stats.Inserted += n
		case dmp.DiffDelete:
			stats.Deleted += n
		}
	}
	return stats
}

// ensureNewline terminates the last line so that every line, including the
// last, is counted by its newline.
func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
