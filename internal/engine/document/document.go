package document

import (
	"io"
	"strings"

	"github.com/dshills/linedit/internal/engine/gap"
	"github.com/dshills/linedit/internal/logging"
)

// Default viewport size used until the first Resize.
const (
	DefaultRows = 24
	DefaultCols = 80
)

// Config holds the construction parameters of a Document.
type Config struct {
	// TabWidth is the rendered width of a tab.
	TabWidth int
	// Rows and Cols are the initial viewport size.
	Rows int
	Cols int
	// InitialSize, GrowSize and MaxSize size each line's gap buffer.
	// Zero selects the gap package defaults; MaxSize zero is unlimited.
	InitialSize int
	GrowSize    int
	MaxSize     int
	// Debug validates every invariant after each operation and panics on
	// the first violation.
	Debug bool
}

// DefaultConfig returns the default document configuration.
func DefaultConfig() Config {
	return Config{
		TabWidth: DefaultTabWidth,
		Rows:     DefaultRows,
		Cols:     DefaultCols,
	}
}

// Option configures a Document during creation.
type Option func(*Document)

// WithLogger sets the logger for structural operations.
func WithLogger(l *logging.Logger) Option {
	return func(d *Document) {
		d.log = logging.OrDiscard(l).WithComponent("document")
	}
}

// Document is an ordered sequence of lines with cursor and viewport state.
type Document struct {
	cfg     Config
	bufOpts []gap.Option
	log     *logging.Logger

	lines arena

	cur    LineID
	curNum int
	top    LineID
	topNum int
	// skip is the number of leading segments of the top line scrolled out
	// of view; non-zero only when the current line alone overflows the
	// viewport.
	skip int

	row, col  int
	vcol      int
	storedCol int

	rows, cols  int
	layoutStale bool
}

// New creates a document holding one empty line with the cursor at (0,0).
func New(cfg Config, opts ...Option) (*Document, error) {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = DefaultTabWidth
	}
	if cfg.Rows <= 0 {
		cfg.Rows = DefaultRows
	}
	if cfg.Cols <= 0 {
		cfg.Cols = DefaultCols
	}

	d := &Document{
		cfg:  cfg,
		log:  logging.Discard,
		rows: cfg.Rows,
		cols: cfg.Cols,
	}
	if cfg.InitialSize > 0 {
		d.bufOpts = append(d.bufOpts, gap.WithInitialSize(cfg.InitialSize))
	}
	if cfg.GrowSize > 0 {
		d.bufOpts = append(d.bufOpts, gap.WithGrowSize(cfg.GrowSize))
	}
	if cfg.MaxSize > 0 {
		d.bufOpts = append(d.bufOpts, gap.WithMaxSize(cfg.MaxSize))
	}

	for _, opt := range opts {
		opt(d)
	}

	l, err := d.newLine()
	if err != nil {
		return nil, err
	}
	d.cur = d.lines.insertAfter(NoLine, l)
	d.top = d.cur
	d.check()
	return d, nil
}

func (d *Document) newLine() (*Line, error) {
	return newLine(d.bufOpts...)
}

// Config returns the configuration the document was created with.
func (d *Document) Config() Config {
	return d.cfg
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return d.lines.count
}

// CurrentLine returns the line holding the cursor.
func (d *Document) CurrentLine() *Line {
	return d.lines.get(d.cur)
}

// CurrentLineNum returns the 0-based index of the cursor line.
func (d *Document) CurrentLineNum() int {
	return d.curNum
}

// TopLineNum returns the 0-based index of the first visible line.
func (d *Document) TopLineNum() int {
	return d.topNum
}

// Row returns the cursor row within the viewport.
func (d *Document) Row() int {
	return d.row
}

// Col returns the cursor column within its wrap segment.
func (d *Document) Col() int {
	return d.col
}

// VisualCol returns the cursor column within the whole line.
func (d *Document) VisualCol() int {
	return d.vcol
}

// StoredCol returns the column remembered across vertical moves, or zero.
func (d *Document) StoredCol() int {
	return d.storedCol
}

// Rows returns the viewport height.
func (d *Document) Rows() int {
	return d.rows
}

// Cols returns the viewport width.
func (d *Document) Cols() int {
	return d.cols
}

// Line returns the n-th line.
func (d *Document) Line(n int) (*Line, error) {
	id := d.lines.at(n)
	if !id.Valid() {
		return nil, ErrLineOutOfRange
	}
	return d.lines.get(id), nil
}

// Each calls fn for every line in order until fn returns false.
func (d *Document) Each(fn func(n int, l *Line) bool) {
	n := 0
	for id := d.lines.head; id.Valid(); id = d.lines.next(id) {
		if !fn(n, d.lines.get(id)) {
			return
		}
		n++
	}
}

// Text returns the content with lines joined by '\n'.
func (d *Document) Text() string {
	var sb strings.Builder
	d.Each(func(n int, l *Line) bool {
		if n > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.String())
		return true
	})
	return sb.String()
}

// WriteTo writes the content with lines joined by '\n'. No newline follows
// the last line.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64
	var err error
	d.Each(func(n int, l *Line) bool {
		s := l.String()
		if n > 0 {
			s = "\n" + s
		}
		var written int
		written, err = io.WriteString(w, s)
		total += int64(written)
		return err == nil
	})
	return total, err
}

// LineView is a read-only copy of one line for rendering.
type LineView struct {
	Num       int
	Runes     []rune
	VisualEnd int
	Wrap      int
	Wraps     int
}

// View is a read-only copy of the visible part of a document.
type View struct {
	Rows, Cols int
	TabWidth   int
	// Row and Col place the cursor in the viewport.
	Row, Col int
	// Skip is the number of leading segments of Lines[0] that are
	// scrolled out of view.
	Skip        int
	TopLine     int
	CurrentLine int
	LineCount   int
	// Gap is the gap buffer dump of the current line.
	Gap   string
	Lines []LineView
}

// View returns a snapshot of the lines that fill the viewport, starting
// at the top line. It reflects the layout of the last operation.
func (d *Document) View() View {
	v := View{
		Rows:        d.rows,
		Cols:        d.cols,
		TabWidth:    d.cfg.TabWidth,
		Row:         d.row,
		Col:         d.col,
		Skip:        d.skip,
		TopLine:     d.topNum,
		CurrentLine: d.curNum,
		LineCount:   d.lines.count,
		Gap:         d.CurrentLine().Debug(),
	}

	used := -d.skip
	n := d.topNum
	for id := d.top; id.Valid() && used < d.rows; id = d.lines.next(id) {
		l := d.lines.get(id)
		v.Lines = append(v.Lines, LineView{
			Num:       n,
			Runes:     l.Runes(),
			VisualEnd: l.visualEnd,
			Wrap:      l.wrap,
			Wraps:     l.wraps,
		})
		used += l.wraps + 1
		n++
	}
	return v
}

// Validate checks every document invariant and returns the first
// violation as an *InvariantError.
func (d *Document) Validate() error {
	if d.lines.count < 1 {
		return invariant("lines", -1, "document has no lines")
	}
	if d.topNum > d.curNum {
		return invariant("viewport", -1, "top line %d after current line %d", d.topNum, d.curNum)
	}

	n := 0
	foundCur, foundTop := false, false
	var prev LineID
	for id := d.lines.head; id.Valid(); id = d.lines.next(id) {
		l := d.lines.get(id)
		if l == nil {
			return invariant("lines", n, "dangling handle")
		}
		if d.lines.prev(id) != prev {
			return invariant("lines", n, "broken back link")
		}
		if err := l.validate(n, d.cfg.TabWidth); err != nil {
			return err
		}
		if !d.layoutStale {
			if want := wrapsFor(l.visualEnd, d.cols); l.wraps != want {
				return invariant("wraps", n, "wraps %d, want %d", l.wraps, want)
			}
		}
		if id == d.cur {
			if n != d.curNum {
				return invariant("current-line", n, "current line number %d", d.curNum)
			}
			foundCur = true
		}
		if id == d.top {
			if n != d.topNum {
				return invariant("top-line", n, "top line number %d", d.topNum)
			}
			foundTop = true
		}
		prev = id
		n++
	}
	if n != d.lines.count {
		return invariant("lines", -1, "walked %d lines, count %d", n, d.lines.count)
	}
	if !foundCur {
		return invariant("current-line", -1, "current line not reachable")
	}
	if !foundTop {
		return invariant("top-line", -1, "top line not reachable")
	}

	l := d.CurrentLine()
	if w := l.widthBefore(l.Cursor(), d.cfg.TabWidth); w != d.vcol {
		return invariant("column", d.curNum, "visual column %d, cursor width %d", d.vcol, w)
	}
	if d.layoutStale {
		return nil
	}
	if wrap, col := segmentOf(d.vcol, l.visualEnd, d.cols); wrap != l.wrap || col != d.col {
		return invariant("column", d.curNum, "segment (%d,%d), want (%d,%d)", l.wrap, d.col, wrap, col)
	}
	if row := d.rowOf() - d.skip; row != d.row {
		return invariant("row", d.curNum, "row %d, want %d", d.row, row)
	}
	if d.row < 0 || d.row >= d.rows {
		return invariant("row", d.curNum, "row %d outside viewport of %d rows", d.row, d.rows)
	}
	return nil
}

// check panics on the first invariant violation in debug mode.
func (d *Document) check() {
	if !d.cfg.Debug {
		return
	}
	if err := d.Validate(); err != nil {
		panic(err)
	}
}
