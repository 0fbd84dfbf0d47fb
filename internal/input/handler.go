package input

import (
	"sync"
	"unicode"

	"github.com/dshills/linedit/internal/engine"
	"github.com/dshills/linedit/internal/renderer/backend"
)

// DefaultBindings returns the built-in key bindings.
func DefaultBindings() map[backend.Key]Action {
	return map[backend.Key]Action{
		backend.KeyEnter:     Command(engine.Enter()),
		backend.KeyTab:       Command(engine.Tab()),
		backend.KeyBackspace: Command(engine.Backspace()),
		backend.KeyDelete:    Command(engine.Delete()),
		backend.KeyLeft:      Command(engine.Move(engine.DirLeft)),
		backend.KeyRight:     Command(engine.Move(engine.DirRight)),
		backend.KeyUp:        Command(engine.Move(engine.DirUp)),
		backend.KeyDown:      Command(engine.Move(engine.DirDown)),
		backend.KeyHome:      Command(engine.Move(engine.DirHome)),
		backend.KeyEnd:       Command(engine.Move(engine.DirEnd)),
		backend.KeyPageUp:    {Kind: ActionPageUp},
		backend.KeyPageDown:  {Kind: ActionPageDown},
		backend.KeyCtrlS:     {Kind: ActionSave},
		backend.KeyCtrlQ:     {Kind: ActionQuit},
		backend.KeyCtrlC:     {Kind: ActionQuit},
		backend.KeyCtrlK:     {Kind: ActionCopyLine},
		backend.KeyCtrlV:     {Kind: ActionPaste},
		backend.KeyCtrlL:     {Kind: ActionRedraw},
	}
}

// Handler translates backend events into actions.
type Handler struct {
	mu       sync.RWMutex
	bindings map[backend.Key]Action
}

// NewHandler creates a handler with the default bindings.
func NewHandler() *Handler {
	return &Handler{bindings: DefaultBindings()}
}

// Bind maps key to action, replacing any previous binding. Binding
// ActionNone disables the key.
func (h *Handler) Bind(key backend.Key, action Action) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bindings[key] = action
}

// Binding returns the action bound to key.
func (h *Handler) Binding(key backend.Key) (Action, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	a, ok := h.bindings[key]
	return a, ok
}

// Translate converts ev into an action. Unbound keys, control runes and
// other event types yield ActionNone.
func (h *Handler) Translate(ev backend.Event) Action {
	switch ev.Type {
	case backend.EventResize:
		return Action{Kind: ActionResize, Width: ev.Width, Height: ev.Height}
	case backend.EventKey:
		return h.translateKey(ev)
	default:
		return Action{}
	}
}

func (h *Handler) translateKey(ev backend.Event) Action {
	if ev.Key == backend.KeyRune {
		// Alt and Meta chords are not text.
		if ev.Mod.Has(backend.ModAlt) || ev.Mod.Has(backend.ModMeta) {
			return Action{}
		}
		if !unicode.IsPrint(ev.Rune) {
			return Action{}
		}
		return Command(engine.Insert(ev.Rune))
	}

	a, _ := h.Binding(ev.Key)
	return a
}
