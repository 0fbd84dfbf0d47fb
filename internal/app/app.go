// Package app wires the engine, file store, watcher, clipboard, input and
// renderer into the interactive editor and runs its event loop.
package app

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/linedit/internal/clipboard"
	"github.com/dshills/linedit/internal/config"
	"github.com/dshills/linedit/internal/engine"
	"github.com/dshills/linedit/internal/filestore"
	"github.com/dshills/linedit/internal/input"
	"github.com/dshills/linedit/internal/logging"
	"github.com/dshills/linedit/internal/renderer"
	"github.com/dshills/linedit/internal/renderer/backend"
	"github.com/dshills/linedit/internal/watcher"
)

// saveSuppressWindow is how long watcher events are ignored around a save.
const saveSuppressWindow = 500 * time.Millisecond

// Options configures the application.
type Options struct {
	// Config is the loaded configuration. Nil means built-in defaults.
	Config *config.Config

	// File is the file to edit. Empty or "-" starts a scratch buffer.
	File string

	// ReadOnly opens the file in read-only mode.
	ReadOnly bool

	// Clipboard overrides the system clipboard.
	Clipboard clipboard.Provider

	// LogOutput overrides the configured log file.
	LogOutput io.Writer

	// WatchDebounce overrides the watcher's quiet period.
	WatchDebounce time.Duration
}

// Application is the central coordinator for all editor components.
type Application struct {
	mu sync.RWMutex

	cfg       *config.Config
	log       *logging.Logger
	logCloser io.Closer

	store   *filestore.Store
	doc     *Document
	watcher *watcher.FileWatcher
	input   *input.Handler
	clip    clipboard.Provider

	backend  backend.Backend
	renderer *renderer.Renderer

	// Viewport last handed to the engine
	rows, cols int

	message     string
	messageType renderer.MessageType
	quitArmed   bool

	running      atomic.Bool
	watchWg      sync.WaitGroup
	shutdownOnce sync.Once
}

// quitRequest is posted to the backend to stop a running event loop.
type quitRequest struct{}

// externalChange carries a watcher event into the event loop.
type externalChange struct {
	event watcher.Event
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		cfg:   opts.Config,
		input: input.NewHandler(),
		clip:  opts.Clipboard,
	}
	if app.cfg == nil {
		app.cfg = config.Default()
	}
	if app.clip == nil {
		app.clip = clipboard.Default()
	}

	if err := app.bootstrap(opts); err != nil {
		app.closeLog()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap(opts Options) error {
	// 1. Logging
	out := opts.LogOutput
	if out == nil {
		f, err := logging.OpenFile(app.cfg.Logging.File)
		if err != nil {
			return &InitError{Component: "logging", Err: err}
		}
		out = f
		app.logCloser = f
	}
	app.log = logging.New(logging.Config{
		Level:  app.cfg.LogLevel(),
		Output: out,
		Prefix: "linedit",
	})
	app.log.Info("starting (config sources: %v)", app.cfg.Sources)

	// 2. File store
	app.store = filestore.New(filestore.WithLogger(app.log))

	// 3. Document
	path := opts.File
	if path == "-" {
		path = ""
	}
	dc := app.cfg.Document()
	engineOpts := []engine.Option{
		engine.WithTabWidth(dc.TabWidth),
		engine.WithViewport(dc.Rows, dc.Cols),
		engine.WithBufferSizes(dc.InitialSize, dc.GrowSize, dc.MaxSize),
		engine.WithDebug(dc.Debug),
		engine.WithLogger(app.log),
	}
	if opts.ReadOnly {
		engineOpts = append(engineOpts, engine.WithReadOnly())
	}
	doc, err := openDocument(app.store, path, engineOpts...)
	if err != nil {
		return &InitError{Component: "document", Err: err}
	}
	app.doc = doc
	app.rows, app.cols = dc.Rows, dc.Cols

	// 4. Watcher (non-fatal)
	if !doc.IsScratch() {
		wopts := []watcher.Option{watcher.WithLogger(app.log)}
		if opts.WatchDebounce > 0 {
			wopts = append(wopts, watcher.WithDebounce(opts.WatchDebounce))
		}
		w, err := watcher.New(doc.Path, wopts...)
		if err != nil {
			app.log.Warn("not watching %s: %v", doc.Path, err)
		} else {
			app.watcher = w
		}
	}

	if doc.IsScratch() {
		app.setMessage(renderer.MessageInfo, "Ctrl+S save  Ctrl+Q quit")
	} else {
		app.setMessage(renderer.MessageInfo, "%d lines", doc.Engine.LineCount())
	}
	return nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Document returns the open document.
func (app *Application) Document() *Document {
	return app.doc
}

// Config returns the configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Input returns the key binding handler.
func (app *Application) Input() *input.Handler {
	return app.input
}

// Message returns the status line message.
func (app *Application) Message() (string, renderer.MessageType) {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.message, app.messageType
}

// Stop asks a running event loop to return. It is safe to call from any
// goroutine.
func (app *Application) Stop() {
	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()

	if b != nil && app.running.Load() {
		b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: quitRequest{}})
	}
}

// Shutdown stops the event loop and releases the watcher and log file.
// It is idempotent.
func (app *Application) Shutdown() {
	app.Stop()
	app.shutdownOnce.Do(func() {
		if app.watcher != nil {
			_ = app.watcher.Close()
		}
		app.watchWg.Wait()
		app.log.Info("shutdown")
		app.closeLog()
	})
}

func (app *Application) closeLog() {
	if app.logCloser != nil {
		_ = app.logCloser.Close()
		app.logCloser = nil
	}
}
