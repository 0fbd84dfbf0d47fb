package gap

import "errors"

// Errors returned by gap buffer operations.
var (
	// ErrAllocationFailure indicates the buffer could not grow any further.
	ErrAllocationFailure = errors.New("gap buffer cannot grow")

	// ErrInvariantViolation indicates the buffer's internal bookkeeping is
	// inconsistent, for example a cursor that falls inside the gap.
	ErrInvariantViolation = errors.New("gap buffer invariant violated")
)
