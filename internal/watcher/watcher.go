// Package watcher notices when the file being edited is changed by another
// program.
//
// A FileWatcher watches the directory holding the file, since editors and
// tools commonly replace files by renaming a temporary file over them, which
// drops a watch placed on the file itself. Bursts of events are coalesced
// into one after a short quiet period.
package watcher

import (
	"errors"
	"strings"
	"time"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed = errors.New("watcher is closed")
	ErrPathNotExist  = errors.New("path does not exist")
)

// Op represents the type of file system operation.
type Op uint32

const (
	// OpCreate indicates the file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates the file was written to.
	OpWrite
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed away.
	OpRename
)

// String returns a human-readable representation of the operation set.
func (op Op) String() string {
	if op == 0 {
		return "NONE"
	}
	var parts []string
	for _, o := range []struct {
		op   Op
		name string
	}{
		{OpCreate, "CREATE"},
		{OpWrite, "WRITE"},
		{OpRemove, "REMOVE"},
		{OpRename, "RENAME"},
	} {
		if op.Has(o.op) {
			parts = append(parts, o.name)
		}
	}
	if len(parts) == 0 {
		return "UNKNOWN"
	}
	return strings.Join(parts, "|")
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Gone reports whether the file no longer exists under its name.
func (op Op) Gone() bool {
	return (op.Has(OpRemove) || op.Has(OpRename)) && !op.Has(OpCreate)
}

// Event is a coalesced change of the watched file.
type Event struct {
	// Path is the absolute path of the watched file.
	Path string

	// Op holds every operation seen during the debounce window.
	Op Op

	// Timestamp is when the last operation was seen.
	Timestamp time.Time
}
