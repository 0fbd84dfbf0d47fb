package app

import (
	"errors"
	"fmt"

	"github.com/dshills/linedit/internal/engine"
	"github.com/dshills/linedit/internal/engine/gap"
	"github.com/dshills/linedit/internal/filestore"
	"github.com/dshills/linedit/internal/input"
	"github.com/dshills/linedit/internal/renderer"
	"github.com/dshills/linedit/internal/renderer/backend"
)

// handleEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleEvent(ev backend.Event) error {
	if ev.Type == backend.EventInterrupt {
		switch data := ev.Data.(type) {
		case quitRequest:
			return ErrQuit
		case externalChange:
			app.handleExternalChange(data)
		}
		return nil
	}
	return app.handleAction(app.input.Translate(ev))
}

// handleAction applies one input action.
func (app *Application) handleAction(a input.Action) error {
	if a.Kind == input.ActionNone {
		return nil
	}
	app.log.Debug("action %s", a)

	if a.Kind != input.ActionQuit {
		app.quitArmed = false
	}

	eng := app.doc.Engine
	switch a.Kind {
	case input.ActionCommand:
		if _, err := eng.Execute(a.Command); err != nil {
			app.reportError(err)
		}
	case input.ActionResize:
		// The next render fits the viewport to the new screen.
	case input.ActionPageUp, input.ActionPageDown:
		dir := engine.DirDown
		if a.Kind == input.ActionPageUp {
			dir = engine.DirUp
		}
		for range app.rows {
			if moved, _ := eng.Execute(engine.Move(dir)); !moved {
				break
			}
		}
	case input.ActionSave:
		app.save()
	case input.ActionQuit:
		return app.quit()
	case input.ActionCopyLine:
		app.copyLine()
	case input.ActionPaste:
		app.paste()
	case input.ActionRedraw:
		app.clearMessage()
	}
	return nil
}

// quit returns ErrQuit, unless there are unsaved changes and this is the
// first request in a row.
func (app *Application) quit() error {
	if !app.doc.IsModified() || app.quitArmed {
		return ErrQuit
	}
	app.quitArmed = true
	app.setMessage(renderer.MessageWarning, "%v: press Ctrl+Q again to quit", ErrUnsavedChanges)
	return nil
}

func (app *Application) save() {
	if app.watcher != nil {
		app.watcher.Suppress(saveSuppressWindow)
	}
	if err := app.doc.Save(app.store); err != nil {
		if errors.Is(err, filestore.ErrNoPath) {
			app.setMessage(renderer.MessageError, "no file name; start with a file argument to save")
			return
		}
		app.reportError(NewOperationError("save", app.doc.Path, err))
		return
	}
	app.setMessage(renderer.MessageInfo, "saved %d lines", app.doc.Engine.LineCount())
}

func (app *Application) copyLine() {
	line := app.doc.Engine.CurrentLineText()
	if err := app.clip.Set(line); err != nil {
		app.reportError(NewOperationError("copy", "", err))
		return
	}
	app.setMessage(renderer.MessageInfo, "copied %d characters", len([]rune(line)))
}

func (app *Application) paste() {
	text, err := app.clip.Get()
	if err != nil {
		app.reportError(NewOperationError("paste", "", err))
		return
	}
	if text == "" {
		return
	}
	if err := app.doc.Engine.InsertText(text); err != nil {
		app.reportError(err)
	}
}

// handleExternalChange reacts to another program touching the file. An
// unmodified buffer is reloaded; a modified one only gets a warning with
// the size of the difference.
func (app *Application) handleExternalChange(c externalChange) {
	doc := app.doc
	if c.event.Op.Gone() {
		app.setMessage(renderer.MessageWarning, "file removed on disk; Ctrl+S writes it again")
		return
	}

	changed, err := app.store.Changed(doc.Path, doc.disk)
	if err != nil || !changed {
		return
	}
	f, err := app.store.Open(doc.Path)
	if err != nil {
		app.reportError(NewOperationError("reload", doc.Path, err))
		return
	}

	stats := filestore.Compare(doc.Engine.Text(), string(f.Content))
	app.log.Info("external change %s: %s", doc.Path, stats)
	if doc.IsModified() {
		doc.disk = f.Stat
		app.setMessage(renderer.MessageWarning, "changed on disk (%s); Ctrl+S overwrites", stats)
		return
	}
	if err := doc.Reload(f); err != nil {
		app.reportError(NewOperationError("reload", doc.Path, err))
		return
	}
	app.setMessage(renderer.MessageInfo, "reloaded from disk (%s)", stats)
}

// reportError logs err and shows a short form in the status line.
func (app *Application) reportError(err error) {
	app.log.Error("%v", err)
	switch {
	case errors.Is(err, engine.ErrReadOnly):
		if app.backend != nil {
			app.backend.Beep()
		}
		app.setMessage(renderer.MessageWarning, "read-only")
	case errors.Is(err, gap.ErrAllocationFailure):
		app.setMessage(renderer.MessageError, "line is full")
	default:
		app.setMessage(renderer.MessageError, "%v", err)
	}
}

func (app *Application) setMessage(t renderer.MessageType, format string, args ...any) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.message = fmt.Sprintf(format, args...)
	app.messageType = t
}

func (app *Application) clearMessage() {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.message = ""
	app.messageType = renderer.MessageNone
}
