package renderer

import (
	"strings"
	"testing"

	"github.com/dshills/linedit/internal/engine/document"
	"github.com/dshills/linedit/internal/renderer/backend"
)

func lineView(num int, s string) document.LineView {
	runes := []rune(s)
	return document.LineView{
		Num:       num,
		Runes:     runes,
		VisualEnd: document.StringWidth(s, document.DefaultTabWidth),
	}
}

func TestRenderer_ContentSize(t *testing.T) {
	b := backend.NewNullBackend(80, 24)

	tests := []struct {
		name      string
		opts      Options
		lineCount int
		rows      int
		cols      int
	}{
		{"no gutter", Options{}, 1, 23, 80},
		{"gutter minimum", Options{ShowLineNumbers: true}, 5, 23, 76},
		{"gutter grows", Options{ShowLineNumbers: true}, 12345, 23, 74},
		{"debug pane", Options{ShowDebug: true}, 1, 21, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, cols := New(b, tt.opts).ContentSize(tt.lineCount)
			if rows != tt.rows || cols != tt.cols {
				t.Errorf("ContentSize() = %d, %d; want %d, %d", rows, cols, tt.rows, tt.cols)
			}
		})
	}

	tiny := backend.NewNullBackend(2, 1)
	if rows, cols := New(tiny, DefaultOptions()).ContentSize(1); rows != 1 || cols != 1 {
		t.Errorf("tiny ContentSize() = %d, %d; want 1, 1", rows, cols)
	}
}

func TestRenderer_LinesAndGutter(t *testing.T) {
	b := backend.NewNullBackend(30, 4)
	r := New(b, DefaultOptions())

	view := document.View{
		Rows: 3, Cols: 26, TabWidth: 4,
		LineCount: 2,
		Lines:     []document.LineView{lineView(0, "abc"), lineView(1, "\tx")},
	}
	r.Render(view, Status{})

	want := []string{"  1 abc", "  2     x", "~"}
	for y, w := range want {
		if got := b.Row(y); got != w {
			t.Errorf("Row(%d) = %q, want %q", y, got, w)
		}
	}

	status := b.Row(3)
	if !strings.HasPrefix(status, " [No Name]") || !strings.HasSuffix(status, "1:1") {
		t.Errorf("status = %q", status)
	}
	if x, y, vis := b.CursorPosition(); x != 4 || y != 0 || !vis {
		t.Errorf("cursor = (%d, %d, %v), want (4, 0, true)", x, y, vis)
	}
}

func TestRenderer_SoftWrap(t *testing.T) {
	b := backend.NewNullBackend(4, 6)
	r := New(b, Options{})

	view := document.View{
		Rows: 5, Cols: 4, TabWidth: 4,
		Row: 1, Col: 4,
		LineCount: 1,
		Lines:     []document.LineView{lineView(0, "abcdefgh")},
	}
	r.Render(view, Status{})

	want := []string{"abcd", "efgh", "~"}
	for y, w := range want {
		if got := b.Row(y); got != w {
			t.Errorf("Row(%d) = %q, want %q", y, got, w)
		}
	}
	if x, y, _ := b.CursorPosition(); x != 3 || y != 1 {
		t.Errorf("cursor = (%d, %d), want clamped to (3, 1)", x, y)
	}
}

func TestRenderer_Skip(t *testing.T) {
	b := backend.NewNullBackend(4, 3)
	r := New(b, Options{})

	view := document.View{
		Rows: 2, Cols: 4, TabWidth: 4,
		Skip:      1,
		LineCount: 1,
		Lines:     []document.LineView{lineView(0, "abcdefghijkl")},
	}
	r.Render(view, Status{})

	if got := b.Row(0); got != "efgh" {
		t.Errorf("Row(0) = %q, want efgh", got)
	}
	if got := b.Row(1); got != "ijkl" {
		t.Errorf("Row(1) = %q, want ijkl", got)
	}
}

func TestRenderer_WideCharacters(t *testing.T) {
	b := backend.NewNullBackend(10, 2)
	r := New(b, Options{})

	view := document.View{
		Rows: 1, Cols: 10, TabWidth: 4, LineCount: 1,
		Lines: []document.LineView{lineView(0, "a世b")},
	}
	r.Render(view, Status{})

	if got := b.Row(0); got != "a世b" {
		t.Errorf("Row(0) = %q", got)
	}
	if c := b.GetCell(2, 0); !c.IsContinuation() {
		t.Errorf("cell after wide rune = %+v, want continuation", c)
	}
}

func TestRenderer_Status(t *testing.T) {
	b := backend.NewNullBackend(40, 2)
	r := New(b, Options{})

	r.Render(document.View{Rows: 1, Cols: 40, TabWidth: 4, LineCount: 1}, Status{
		FileName: "notes.txt",
		Modified: true,
		ReadOnly: true,
		Line:     11,
		Column:   4,
		Message:  "saved",
	})

	status := b.Row(1)
	if !strings.HasPrefix(status, " notes.txt [+] [RO]  saved") {
		t.Errorf("status = %q", status)
	}
	if !strings.HasSuffix(status, "12:5") {
		t.Errorf("status = %q, want position 12:5", status)
	}
}

func TestRenderer_StatusTruncated(t *testing.T) {
	b := backend.NewNullBackend(16, 2)
	r := New(b, Options{})

	r.Render(document.View{Rows: 1, Cols: 16, TabWidth: 4, LineCount: 1}, Status{
		FileName: "a-very-long-file-name.txt",
	})

	status := b.Row(1)
	if !strings.HasSuffix(status, "1:1") {
		t.Errorf("position should survive truncation, status = %q", status)
	}
	if strings.Contains(status, ".txt") {
		t.Errorf("file name should be clipped, status = %q", status)
	}
}

func TestRenderer_DebugPane(t *testing.T) {
	doc, err := document.New(document.Config{TabWidth: 4, Rows: 2, Cols: 20, InitialSize: 8, GrowSize: 8})
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.InsertString("ab"); err != nil {
		t.Fatal(err)
	}

	b := backend.NewNullBackend(60, 5)
	r := New(b, Options{ShowDebug: true})
	if rows, _ := r.ContentSize(doc.LineCount()); rows != 2 {
		t.Fatalf("content rows = %d, want 2", rows)
	}
	r.Render(doc.View(), Status{})

	if got := b.Row(0); got != "ab" {
		t.Errorf("Row(0) = %q", got)
	}
	if got := b.Row(2); !strings.HasPrefix(got, "line 1/1") {
		t.Errorf("debug info = %q", got)
	}
	if got := b.Row(3); !strings.HasPrefix(got, "cursor:") {
		t.Errorf("gap dump = %q", got)
	}
}

func TestRenderer_DocumentWrap(t *testing.T) {
	doc, err := document.New(document.Config{TabWidth: 4, Rows: 4, Cols: 5, InitialSize: 8, GrowSize: 8})
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.InsertString("hello world\nok"); err != nil {
		t.Fatal(err)
	}

	b := backend.NewNullBackend(5, 5)
	r := New(b, Options{})
	r.Render(doc.View(), Status{})

	want := []string{"hello", " worl", "d", "ok"}
	for y, w := range want {
		if got := b.Row(y); got != w {
			t.Errorf("Row(%d) = %q, want %q", y, got, w)
		}
	}
	if x, y, _ := b.CursorPosition(); x != 2 || y != 3 {
		t.Errorf("cursor = (%d, %d), want (2, 3)", x, y)
	}

	// One more line pushes the wrapped line out of view entirely.
	if err := doc.InsertString("\nz"); err != nil {
		t.Fatal(err)
	}
	r.Render(doc.View(), Status{})
	if got := b.Row(0); got != "ok" {
		t.Errorf("after scroll Row(0) = %q, want ok", got)
	}
	if x, y, _ := b.CursorPosition(); x != 1 || y != 1 {
		t.Errorf("cursor = (%d, %d), want (1, 1)", x, y)
	}
}

func TestWrapCells(t *testing.T) {
	cells := expandLine([]rune("ab\tc"), 4, DefaultStyles().Text)
	if len(cells) != 7 {
		t.Fatalf("expanded %d cells, want 7", len(cells))
	}

	tests := []struct {
		cols int
		want int
	}{
		{1, 7}, {3, 3}, {7, 1}, {80, 1},
	}
	for _, tt := range tests {
		if got := len(wrapCells(cells, tt.cols)); got != tt.want {
			t.Errorf("wrapCells(cols=%d) = %d segments, want %d", tt.cols, got, tt.want)
		}
	}
	if got := len(wrapCells(nil, 10)); got != 1 {
		t.Errorf("empty line = %d segments, want 1", got)
	}
}
