package document

import (
	"errors"
	"fmt"

	"github.com/dshills/linedit/internal/engine/gap"
)

// ErrLineOutOfRange indicates a line number outside the document.
var ErrLineOutOfRange = errors.New("line number out of range")

// InvariantError reports a broken document invariant. It always matches
// gap.ErrInvariantViolation under errors.Is.
type InvariantError struct {
	// Check names the invariant that failed.
	Check string
	// Line is the 0-based line number involved, or -1.
	Line int
	// Detail describes the mismatch.
	Detail string
}

func (e *InvariantError) Error() string {
	if e.Line >= 0 {
		return fmt.Sprintf("document invariant %s (line %d): %s", e.Check, e.Line, e.Detail)
	}
	return fmt.Sprintf("document invariant %s: %s", e.Check, e.Detail)
}

// Unwrap returns gap.ErrInvariantViolation.
func (e *InvariantError) Unwrap() error {
	return gap.ErrInvariantViolation
}

func invariant(check string, line int, format string, args ...any) error {
	return &InvariantError{Check: check, Line: line, Detail: fmt.Sprintf(format, args...)}
}
