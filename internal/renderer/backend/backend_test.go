package backend

import (
	"testing"

	"github.com/dshills/linedit/internal/renderer/core"
)

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cell := core.NewStyledCell('X', core.DefaultStyle().WithForeground(core.ColorRed))
	b.SetCell(10, 5, cell)

	if got := b.GetCell(10, 5); !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)
	if got := b.GetCell(-1, 0); !got.Equals(core.EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendRow(t *testing.T) {
	b := NewNullBackend(10, 2)
	for i, r := range "hi世" {
		b.SetCell(i, 0, core.NewStyledCell(r, core.DefaultStyle()))
	}
	b.SetCell(3, 0, core.ContinuationCell())

	if got := b.Row(0); got != "hi世" {
		t.Errorf("Row(0) = %q", got)
	}
	if got := b.Row(1); got != "" {
		t.Errorf("Row(1) = %q, want empty", got)
	}
	if got := b.Row(5); got != "" {
		t.Errorf("Row(5) = %q, want empty", got)
	}
}

func TestNullBackendFillClear(t *testing.T) {
	b := NewNullBackend(20, 5)

	b.Fill(core.NewScreenRect(1, 2, 3, 6), core.NewStyledCell('#', core.DefaultStyle()))
	if got := b.Row(1); got != "  ####" {
		t.Errorf("Row(1) = %q", got)
	}
	if got := b.Row(0); got != "" {
		t.Errorf("Row(0) = %q", got)
	}

	b.Clear()
	if got := b.Row(1); got != "" {
		t.Errorf("after Clear Row(1) = %q", got)
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)

	b.ShowCursor(3, 4)
	if x, y, vis := b.CursorPosition(); x != 3 || y != 4 || !vis {
		t.Errorf("cursor = (%d, %d, %v)", x, y, vis)
	}

	b.HideCursor()
	if _, _, vis := b.CursorPosition(); vis {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(80, 24)

	b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'a'})
	b.Resize(40, 10)

	if ev := b.PollEvent(); ev.Type != EventKey || ev.Rune != 'a' {
		t.Errorf("first event = %+v", ev)
	}
	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 40 || ev.Height != 10 {
		t.Errorf("second event = %+v", ev)
	}
	if w, h := b.Size(); w != 40 || h != 10 {
		t.Errorf("Size() = %d, %d", w, h)
	}

	b.Shutdown()
	b.Shutdown()
	if ev := b.PollEvent(); ev.Type != EventNone {
		t.Errorf("after Shutdown event = %+v", ev)
	}
}

func TestModMask(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Has(ModCtrl) || !m.Has(ModShift) || m.Has(ModAlt) {
		t.Errorf("mask %b", m)
	}
}
