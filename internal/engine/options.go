package engine

import "github.com/dshills/linedit/internal/logging"

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithTabWidth sets the rendered width of a tab.
func WithTabWidth(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.cfg.TabWidth = width
		}
	}
}

// WithViewport sets the viewport size used until the first Resize.
func WithViewport(rows, cols int) Option {
	return func(e *Engine) {
		if rows > 0 {
			e.cfg.Rows = rows
		}
		if cols > 0 {
			e.cfg.Cols = cols
		}
	}
}

// WithBufferSizes sizes the per-line gap buffers. Zero keeps the default;
// a zero max is unlimited.
func WithBufferSizes(initial, grow, max int) Option {
	return func(e *Engine) {
		e.cfg.InitialSize = initial
		e.cfg.GrowSize = grow
		e.cfg.MaxSize = max
	}
}

// WithDebug enables invariant checking after every operation.
func WithDebug(debug bool) Option {
	return func(e *Engine) {
		e.cfg.Debug = debug
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		e.log = logging.OrDiscard(l)
	}
}

// WithReadOnly creates a read-only engine.
// Edit commands will return ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}
