package app

import (
	"errors"

	"github.com/dshills/linedit/internal/renderer"
	"github.com/dshills/linedit/internal/renderer/backend"
)

// Run starts the application main loop.
// Blocks until the user quits or Stop is called.
func (app *Application) Run() error {
	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	app.renderer = renderer.New(b, renderer.Options{
		ShowLineNumbers: true,
		ShowDebug:       app.cfg.Debug,
	})
	app.startWatchForwarder(b)

	err := app.eventLoop(b)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// eventLoop renders, then blocks for the next event, until quit.
func (app *Application) eventLoop(b backend.Backend) error {
	for {
		app.render()

		ev := b.PollEvent()
		if ev.Type == backend.EventNone {
			// The backend was shut down underneath us.
			return nil
		}
		if err := app.handleEvent(ev); err != nil {
			return err
		}
	}
}

// startWatchForwarder moves watcher events onto the backend queue so they
// are handled on the event loop goroutine.
func (app *Application) startWatchForwarder(b backend.Backend) {
	if app.watcher == nil {
		return
	}
	app.watchWg.Add(1)
	go func() {
		defer app.watchWg.Done()
		for ev := range app.watcher.Events() {
			b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: externalChange{event: ev}})
		}
	}()
	app.watchWg.Add(1)
	go func() {
		defer app.watchWg.Done()
		for err := range app.watcher.Errors() {
			app.log.Warn("watcher: %v", err)
		}
	}()
}

// fitViewport hands the engine the text area left by the renderer. The
// gutter widens with the line count, so this runs before every frame.
func (app *Application) fitViewport() {
	rows, cols := app.renderer.ContentSize(app.doc.Engine.LineCount())
	if rows == app.rows && cols == app.cols {
		return
	}
	app.rows, app.cols = rows, cols
	app.doc.Engine.Resize(rows, cols)
	app.log.Debug("viewport %dx%d", rows, cols)
}

// render draws the current state.
func (app *Application) render() {
	app.fitViewport()

	eng := app.doc.Engine
	pos := eng.Position()
	msg, msgType := app.Message()
	app.renderer.Render(eng.View(), renderer.Status{
		FileName:    app.doc.Name,
		Modified:    eng.Modified(),
		ReadOnly:    eng.IsReadOnly(),
		Line:        pos.Line,
		Column:      pos.Column,
		Message:     msg,
		MessageType: msgType,
	})
}
