package engine

import (
	"errors"
	"fmt"
)

// Errors returned by engine operations.
var (
	// ErrUnknownCommand indicates a command kind the engine does not handle.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrReadOnly indicates an edit was attempted on a read-only engine.
	ErrReadOnly = errors.New("engine is read-only")
)

// OperationError records the command that failed and why.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
