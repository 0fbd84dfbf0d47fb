package input

import (
	"testing"

	"github.com/dshills/linedit/internal/engine"
	"github.com/dshills/linedit/internal/renderer/backend"
)

func keyEvent(k backend.Key) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: k}
}

func runeEvent(r rune, mod backend.ModMask) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r, Mod: mod}
}

func TestHandler_Translate(t *testing.T) {
	h := NewHandler()

	tests := []struct {
		name  string
		event backend.Event
		want  Action
	}{
		{"letter", runeEvent('a', backend.ModNone), Command(engine.Insert('a'))},
		{"shifted", runeEvent('A', backend.ModShift), Command(engine.Insert('A'))},
		{"space", runeEvent(' ', backend.ModNone), Command(engine.Insert(' '))},
		{"non-ascii", runeEvent('é', backend.ModNone), Command(engine.Insert('é'))},
		{"alt chord", runeEvent('x', backend.ModAlt), Action{}},
		{"control rune", runeEvent('\x07', backend.ModNone), Action{}},
		{"enter", keyEvent(backend.KeyEnter), Command(engine.Enter())},
		{"tab", keyEvent(backend.KeyTab), Command(engine.Tab())},
		{"backspace", keyEvent(backend.KeyBackspace), Command(engine.Backspace())},
		{"delete", keyEvent(backend.KeyDelete), Command(engine.Delete())},
		{"left", keyEvent(backend.KeyLeft), Command(engine.Move(engine.DirLeft))},
		{"right", keyEvent(backend.KeyRight), Command(engine.Move(engine.DirRight))},
		{"up", keyEvent(backend.KeyUp), Command(engine.Move(engine.DirUp))},
		{"down", keyEvent(backend.KeyDown), Command(engine.Move(engine.DirDown))},
		{"home", keyEvent(backend.KeyHome), Command(engine.Move(engine.DirHome))},
		{"end", keyEvent(backend.KeyEnd), Command(engine.Move(engine.DirEnd))},
		{"page up", keyEvent(backend.KeyPageUp), Action{Kind: ActionPageUp}},
		{"page down", keyEvent(backend.KeyPageDown), Action{Kind: ActionPageDown}},
		{"save", keyEvent(backend.KeyCtrlS), Action{Kind: ActionSave}},
		{"quit", keyEvent(backend.KeyCtrlQ), Action{Kind: ActionQuit}},
		{"interrupt quits", keyEvent(backend.KeyCtrlC), Action{Kind: ActionQuit}},
		{"copy", keyEvent(backend.KeyCtrlK), Action{Kind: ActionCopyLine}},
		{"paste", keyEvent(backend.KeyCtrlV), Action{Kind: ActionPaste}},
		{"redraw", keyEvent(backend.KeyCtrlL), Action{Kind: ActionRedraw}},
		{"escape unbound", keyEvent(backend.KeyEscape), Action{}},
		{"unknown key", keyEvent(backend.KeyNone), Action{}},
		{"resize", backend.Event{Type: backend.EventResize, Width: 100, Height: 40},
			Action{Kind: ActionResize, Width: 100, Height: 40}},
		{"interrupt event", backend.Event{Type: backend.EventInterrupt, Data: 1}, Action{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.Translate(tt.event); got != tt.want {
				t.Errorf("Translate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandler_Bind(t *testing.T) {
	h := NewHandler()

	h.Bind(backend.KeyEscape, Action{Kind: ActionQuit})
	h.Bind(backend.KeyCtrlC, Action{})

	if got := h.Translate(keyEvent(backend.KeyEscape)); got.Kind != ActionQuit {
		t.Errorf("Escape = %v, want quit", got)
	}
	if got := h.Translate(keyEvent(backend.KeyCtrlC)); got.Kind != ActionNone {
		t.Errorf("Ctrl+C = %v, want none after unbinding", got)
	}
	if _, ok := h.Binding(backend.Key(999)); ok {
		t.Error("unexpected binding")
	}
}

func TestAction_String(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{Command(engine.Insert('x')), `insert 'x'`},
		{Command(engine.Move(engine.DirUp)), "move up"},
		{Command(engine.Enter()), "enter"},
		{Action{Kind: ActionResize, Width: 80, Height: 24}, "resize 80x24"},
		{Action{Kind: ActionSave}, "save"},
		{Action{Kind: ActionKind(200)}, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
