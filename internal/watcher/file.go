package watcher

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/linedit/internal/logging"
)

// DefaultDebounce is how long the watcher waits for a burst of events to end.
const DefaultDebounce = 100 * time.Millisecond

// Option configures a FileWatcher.
type Option func(*FileWatcher)

// WithDebounce sets the quiet period before an event is delivered.
func WithDebounce(d time.Duration) Option {
	return func(w *FileWatcher) {
		if d > 0 {
			w.delay = d
		}
	}
}

// WithBufferSize sets the capacity of the event and error channels.
func WithBufferSize(n int) Option {
	return func(w *FileWatcher) {
		if n > 0 {
			w.bufSize = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(w *FileWatcher) {
		w.log = logging.OrDiscard(l).WithComponent("watcher")
	}
}

// FileWatcher reports external changes to a single file.
type FileWatcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	path    string
	delay   time.Duration
	bufSize int
	log     *logging.Logger

	// Pending coalesced event
	pending *Event
	timer   *time.Timer

	suppressUntil time.Time

	events chan Event
	errors chan error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New starts watching path. The file itself need not exist yet, but its
// directory must.
func New(path string, opts ...Option) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(absPath)
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrPathNotExist
		}
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &FileWatcher{
		watcher: fsw,
		path:    absPath,
		delay:   DefaultDebounce,
		bufSize: 16,
		log:     logging.Discard,
		closeCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.events = make(chan Event, w.bufSize)
	w.errors = make(chan error, w.bufSize)

	w.closedWg.Add(1)
	go w.processLoop()

	w.log.Debug("watching %s", absPath)
	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *FileWatcher) Path() string {
	return w.path
}

// Events returns the event channel. It is closed by Close.
func (w *FileWatcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel. It is closed by Close.
func (w *FileWatcher) Errors() <-chan error {
	return w.errors
}

// Suppress drops events for the next d. Call it right before writing the
// file yourself so the write is not reported as an external change.
func (w *FileWatcher) Suppress(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.suppressUntil = time.Now().Add(d)
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.pending = nil
}

// Close stops the watcher.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.pending = nil
	w.mu.Unlock()

	// Wait for processLoop to finish
	w.closedWg.Wait()

	w.mu.Lock()
	close(w.events)
	close(w.errors)
	w.mu.Unlock()

	return w.watcher.Close()
}

// processLoop handles incoming fsnotify events.
func (w *FileWatcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error: %v", err)
			w.sendError(err)
		}
	}
}

// handleFSEvent folds an fsnotify event for the watched file into the
// pending event and restarts the debounce timer.
func (w *FileWatcher) handleFSEvent(fsEvent fsnotify.Event) {
	if filepath.Clean(fsEvent.Name) != w.path {
		return
	}
	op := convertOp(fsEvent.Op)
	if op == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	if w.closed || now.Before(w.suppressUntil) {
		return
	}

	if w.pending != nil {
		w.pending.Op |= op
		w.pending.Timestamp = now
		w.timer.Reset(w.delay)
		return
	}

	w.pending = &Event{Path: w.path, Op: op, Timestamp: now}
	w.timer = time.AfterFunc(w.delay, w.fire)
}

// fire delivers the pending event.
func (w *FileWatcher) fire() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.pending == nil {
		return
	}
	event := *w.pending
	w.pending = nil
	w.timer = nil

	select {
	case w.events <- event:
		w.log.Debug("external change %s %s", event.Op, event.Path)
	default:
		// Channel full, drop event
		w.log.Warn("event channel full, dropping %s", event.Op)
	}
}

// sendError sends an error to the output channel.
func (w *FileWatcher) sendError(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	select {
	case w.errors <- err:
	default:
		// Channel full, drop error
	}
}

// convertOp converts fsnotify.Op to watcher.Op. Permission changes are not
// content changes and map to zero.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}
