package input

import (
	"fmt"

	"github.com/dshills/linedit/internal/engine"
)

// ActionKind identifies what an action does.
type ActionKind uint8

const (
	// ActionNone means the event is ignored.
	ActionNone ActionKind = iota
	// ActionCommand applies Command to the engine.
	ActionCommand
	// ActionResize reports a new terminal size.
	ActionResize
	ActionPageUp
	ActionPageDown
	ActionSave
	ActionQuit
	ActionCopyLine
	ActionPaste
	ActionRedraw
)

var actionNames = map[ActionKind]string{
	ActionNone:     "none",
	ActionCommand:  "command",
	ActionResize:   "resize",
	ActionPageUp:   "page-up",
	ActionPageDown: "page-down",
	ActionSave:     "save",
	ActionQuit:     "quit",
	ActionCopyLine: "copy-line",
	ActionPaste:    "paste",
	ActionRedraw:   "redraw",
}

// String returns a string representation of the action kind.
func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return "unknown"
}

// Action is the result of translating one event.
type Action struct {
	Kind ActionKind

	// Command is set for ActionCommand.
	Command engine.Command

	// Width and Height are set for ActionResize.
	Width, Height int
}

// String returns a short description for logging.
func (a Action) String() string {
	switch a.Kind {
	case ActionCommand:
		if a.Command.Kind == engine.CmdMove {
			return fmt.Sprintf("move %s", a.Command.Dir)
		}
		if a.Command.Kind == engine.CmdInsert {
			return fmt.Sprintf("insert %q", a.Command.Rune)
		}
		return a.Command.Kind.String()
	case ActionResize:
		return fmt.Sprintf("resize %dx%d", a.Width, a.Height)
	default:
		return a.Kind.String()
	}
}

// Command wraps an engine command in an action.
func Command(cmd engine.Command) Action {
	return Action{Kind: ActionCommand, Command: cmd}
}
