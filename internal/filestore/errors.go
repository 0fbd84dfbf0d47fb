package filestore

import (
	"errors"
	"fmt"
)

// Standard errors returned by the filestore package.
var (
	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrFileTooLarge indicates the file exceeds the maximum size limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrBinaryFile indicates the file appears to be binary.
	ErrBinaryFile = errors.New("binary file")

	// ErrNoPath indicates a save was requested for a buffer without a file.
	ErrNoPath = errors.New("no file name")
)

// PathError represents an error associated with a file path.
type PathError struct {
	Op   string // Operation that failed (open, save, stat)
	Path string // File path
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error {
	return e.Err
}
