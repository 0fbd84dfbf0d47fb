package engine

import (
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/linedit/internal/engine/document"
	"github.com/dshills/linedit/internal/logging"
)

// Position is the cursor position in document and viewport terms.
type Position struct {
	// Line is the 0-based line number.
	Line int
	// Column is the rune index within the line.
	Column int
	// VisualCol is the rendered column within the whole line.
	VisualCol int
	// Row and Col place the cursor in the viewport.
	Row int
	Col int
}

// Engine is the thread-safe facade over a document. Commands are applied
// under a write lock; views and text are read under a read lock.
type Engine struct {
	mu sync.RWMutex

	id  uuid.UUID
	doc *document.Document
	cfg document.Config
	log *logging.Logger

	revision      uint64
	savedRevision uint64
	readOnly      bool

	initContent string
}

// New creates an engine holding an empty document, or the WithContent text.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		id:  uuid.New(),
		cfg: document.DefaultConfig(),
		log: logging.Discard,
	}

	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.WithComponent("engine").WithField("session", e.id.String()[:8])

	if err := e.reset(strings.NewReader(e.initContent)); err != nil {
		return nil, err
	}
	e.initContent = ""
	return e, nil
}

// NewFromReader creates an engine holding the text read from r.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	e, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := e.Load(r); err != nil {
		return nil, err
	}
	return e, nil
}

// reset replaces the document with one built from r, keeping the current
// viewport size. Callers hold the write lock or own e exclusively.
func (e *Engine) reset(r io.Reader) error {
	cfg := e.cfg
	if e.doc != nil {
		cfg.Rows, cfg.Cols = e.doc.Rows(), e.doc.Cols()
	}

	doc, err := document.New(cfg, document.WithLogger(e.log))
	if err != nil {
		return &OperationError{Op: "load", Err: err}
	}
	n, err := doc.ReadFrom(r)
	if err != nil {
		return &OperationError{Op: "load", Err: err}
	}

	e.doc = doc
	e.revision = 0
	e.savedRevision = 0
	e.log.Debug("loaded %d bytes into %d lines", n, doc.LineCount())
	return nil
}

// ID returns the session identifier of the engine.
func (e *Engine) ID() string {
	return e.id.String()
}

// Load replaces the content with the text read from r and moves the cursor
// to the start. The engine is unmodified afterwards.
func (e *Engine) Load(r io.Reader) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reset(r)
}

// ============================================================================
// Commands
// ============================================================================

// Execute applies cmd. It reports whether the cursor, text or viewport
// changed; boundary no-ops return false and a nil error.
func (e *Engine) Execute(cmd Command) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.execute(cmd)
}

func (e *Engine) execute(cmd Command) (bool, error) {
	if e.readOnly && cmd.Kind.IsEdit() {
		return false, ErrReadOnly
	}

	d := e.doc
	linesBefore, lenBefore := d.LineCount(), d.CurrentLine().Len()

	var err error
	switch cmd.Kind {
	case CmdInsert:
		err = d.InsertChar(cmd.Rune)
	case CmdEnter:
		err = d.Enter()
	case CmdTab:
		err = d.Tab()
	case CmdBackspace:
		err = d.Backspace()
	case CmdDelete:
		err = d.DeleteForward()
	case CmdMove:
		return e.move(cmd.Dir), nil
	case CmdResize:
		before := [2]int{d.Rows(), d.Cols()}
		d.Resize(cmd.Rows, cmd.Cols)
		d.Relayout()
		return before != [2]int{d.Rows(), d.Cols()}, nil
	default:
		return false, ErrUnknownCommand
	}
	if err != nil {
		e.log.Error("%s failed: %v", cmd.Kind, err)
		return false, &OperationError{Op: cmd.Kind.String(), Err: err}
	}

	changed := d.LineCount() != linesBefore || d.CurrentLine().Len() != lenBefore
	if changed {
		e.revision++
	}
	return changed, nil
}

func (e *Engine) move(dir Direction) bool {
	switch dir {
	case DirLeft:
		return e.doc.MoveLeft()
	case DirRight:
		return e.doc.MoveRight()
	case DirUp:
		return e.doc.MoveUp()
	case DirDown:
		return e.doc.MoveDown()
	case DirHome:
		return e.doc.MoveHome()
	case DirEnd:
		return e.doc.MoveEnd()
	}
	return false
}

// InsertText inserts s at the cursor as a sequence of commands. Line feeds
// break lines and tabs insert tabs; carriage returns are dropped.
func (e *Engine) InsertText(s string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, r := range s {
		var cmd Command
		switch r {
		case '\r':
			continue
		case '\n':
			cmd = Enter()
		case '\t':
			cmd = Tab()
		default:
			cmd = Insert(r)
		}
		if _, err := e.execute(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Resize changes the viewport size and recomputes the layout.
func (e *Engine) Resize(rows, cols int) {
	_, _ = e.Execute(Resize(rows, cols))
}

// ============================================================================
// Read Operations
// ============================================================================

// Text returns the full content with lines joined by '\n'.
func (e *Engine) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Text()
}

// WriteTo writes the full content to w.
func (e *Engine) WriteTo(w io.Writer) (int64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.WriteTo(w)
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.LineCount()
}

// LineText returns the text of line n.
func (e *Engine) LineText(n int) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	l, err := e.doc.Line(n)
	if err != nil {
		return "", err
	}
	return l.String(), nil
}

// CurrentLineText returns the text of the cursor line.
func (e *Engine) CurrentLineText() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.CurrentLine().String()
}

// Position returns the cursor position.
func (e *Engine) Position() Position {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Position{
		Line:      e.doc.CurrentLineNum(),
		Column:    e.doc.CurrentLine().Cursor(),
		VisualCol: e.doc.VisualCol(),
		Row:       e.doc.Row(),
		Col:       e.doc.Col(),
	}
}

// View returns a render snapshot of the viewport.
func (e *Engine) View() document.View {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.View()
}

// Validate checks the document invariants.
func (e *Engine) Validate() error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Validate()
}

// ============================================================================
// Revision Tracking
// ============================================================================

// Revision returns a counter that increases with every text change.
func (e *Engine) Revision() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.revision
}

// Modified reports whether the text changed since it was loaded or last
// marked saved.
func (e *Engine) Modified() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.revision != e.savedRevision
}

// MarkSaved records rev as the revision that is on disk.
func (e *Engine) MarkSaved(rev uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.savedRevision = rev
}

// Snapshot returns the content together with its revision, read under one
// lock so the two match.
func (e *Engine) Snapshot() (string, uint64) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Text(), e.revision
}

// IsReadOnly reports whether edits are rejected.
func (e *Engine) IsReadOnly() bool {
	return e.readOnly
}
