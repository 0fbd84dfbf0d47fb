package renderer

import (
	"fmt"
	"strings"

	"github.com/dshills/linedit/internal/engine/document"
	"github.com/dshills/linedit/internal/renderer/backend"
	"github.com/dshills/linedit/internal/renderer/core"
)

const (
	// minGutterDigits is the narrowest line number column.
	minGutterDigits = 3
	statusHeight    = 1
	debugHeight     = 2
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// Status is the state shown in the status line.
type Status struct {
	FileName string
	Modified bool
	ReadOnly bool

	// Line and Column are 0-based; they are displayed 1-based.
	Line   int
	Column int

	Message     string
	MessageType MessageType
}

// Options configures the renderer.
type Options struct {
	ShowLineNumbers bool // Show line numbers in gutter
	ShowDebug       bool // Show the gap buffer pane
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{ShowLineNumbers: true}
}

// Styles used by the renderer.
type Styles struct {
	Text       core.Style
	LineNumber core.Style
	Filler     core.Style
	Status     core.Style
	Warning    core.Style
	Error      core.Style
	Debug      core.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() Styles {
	base := core.DefaultStyle()
	return Styles{
		Text:       base,
		LineNumber: base.WithForeground(core.ColorGray),
		Filler:     base.WithForeground(core.ColorBlue),
		Status:     base.Reverse(),
		Warning:    base.Reverse().WithForeground(core.ColorYellow),
		Error:      base.Reverse().WithForeground(core.ColorRed).Bold(),
		Debug:      base.WithForeground(core.ColorGreen),
	}
}

// Renderer draws views onto a backend.
type Renderer struct {
	backend backend.Backend
	opts    Options
	styles  Styles
}

// New creates a new renderer with the given backend and options.
func New(b backend.Backend, opts Options) *Renderer {
	return &Renderer{
		backend: b,
		opts:    opts,
		styles:  DefaultStyles(),
	}
}

// SetOptions replaces the options.
func (r *Renderer) SetOptions(opts Options) {
	r.opts = opts
}

// Options returns the current options.
func (r *Renderer) Options() Options {
	return r.opts
}

// SetStyles replaces the palette.
func (r *Renderer) SetStyles(s Styles) {
	r.styles = s
}

// gutterWidth returns the width of the line number column including its
// trailing space.
func (r *Renderer) gutterWidth(lineCount int) int {
	if !r.opts.ShowLineNumbers {
		return 0
	}
	return max(minGutterDigits, digits(lineCount)) + 1
}

// ContentSize returns the text area available for a document with
// lineCount lines: the screen minus the gutter, debug pane and status
// line. Both values are at least 1.
func (r *Renderer) ContentSize(lineCount int) (rows, cols int) {
	width, height := r.backend.Size()

	rows = height - statusHeight
	if r.opts.ShowDebug {
		rows -= debugHeight
	}
	cols = width - r.gutterWidth(lineCount)
	return max(rows, 1), max(cols, 1)
}

// Render draws view and status and places the cursor.
func (r *Renderer) Render(view document.View, status Status) {
	width, height := r.backend.Size()
	r.backend.Clear()

	gutter := r.gutterWidth(view.LineCount)
	rows, _ := r.ContentSize(view.LineCount)
	rows = min(rows, view.Rows)

	y := 0
	for i, lv := range view.Lines {
		segs := wrapCells(expandLine(lv.Runes, view.TabWidth, r.styles.Text), view.Cols)
		first := 0
		if i == 0 {
			first = view.Skip
		}
		for s := first; s < len(segs) && y < rows; s++ {
			if s == 0 {
				r.drawGutter(y, gutter, lv.Num+1)
			}
			for x, c := range segs[s] {
				r.backend.SetCell(gutter+x, y, c)
			}
			y++
		}
	}
	for ; y < rows; y++ {
		r.backend.SetCell(0, y, core.NewStyledCell('~', r.styles.Filler))
	}

	if r.opts.ShowDebug {
		r.drawDebug(height-statusHeight-debugHeight, width, view)
	}
	r.drawStatus(height-statusHeight, width, status)

	// The cursor may sit one past the last column at the end of a full
	// segment; show it on the last cell instead.
	col := min(view.Col, view.Cols-1)
	r.backend.ShowCursor(gutter+col, view.Row)
	r.backend.Show()
}

// drawGutter writes a right-aligned line number.
func (r *Renderer) drawGutter(y, width, num int) {
	if width == 0 {
		return
	}
	r.drawString(0, y, width, fmt.Sprintf("%*d ", width-1, num), r.styles.LineNumber)
}

// drawDebug writes the cursor bookkeeping and the gap buffer of the
// current line.
func (r *Renderer) drawDebug(y, width int, view document.View) {
	info := fmt.Sprintf("line %d/%d top %d skip %d row %d col %d",
		view.CurrentLine+1, view.LineCount, view.TopLine+1, view.Skip, view.Row, view.Col)
	r.drawString(0, y, width, info, r.styles.Debug)
	r.drawString(0, y+1, width, view.Gap, r.styles.Debug)
}

// drawStatus writes the status line: file name and flags on the left, the
// message after them, and the cursor position on the right.
func (r *Renderer) drawStatus(y, width int, status Status) {
	style := r.styles.Status
	switch status.MessageType {
	case MessageWarning:
		style = r.styles.Warning
	case MessageError:
		style = r.styles.Error
	}
	r.backend.Fill(core.NewScreenRect(y, 0, y+1, width), core.Cell{Rune: ' ', Width: 1, Style: style})

	name := status.FileName
	if name == "" {
		name = "[No Name]"
	}
	var left strings.Builder
	left.WriteString(" ")
	left.WriteString(name)
	if status.Modified {
		left.WriteString(" [+]")
	}
	if status.ReadOnly {
		left.WriteString(" [RO]")
	}
	if status.Message != "" {
		left.WriteString("  ")
		left.WriteString(status.Message)
	}

	right := fmt.Sprintf("%d:%d ", status.Line+1, status.Column+1)
	rightStart := width - len(right)
	r.drawString(0, y, max(rightStart-1, 0), left.String(), style)
	if rightStart >= 0 {
		r.drawString(rightStart, y, len(right), right, style)
	}
}

// drawString writes s from column x, clipped to limit cells.
func (r *Renderer) drawString(x, y, limit int, s string, style core.Style) {
	col := 0
	for _, ch := range s {
		w := core.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > limit {
			return
		}
		r.backend.SetCell(x+col, y, core.NewStyledCell(ch, style))
		col += w
	}
}
