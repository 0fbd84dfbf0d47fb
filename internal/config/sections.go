package config

// EditorConfig holds editing settings.
type EditorConfig struct {
	// TabWidth is the number of columns a tab occupies.
	TabWidth int
}

// BufferConfig sizes the per-line gap buffers.
type BufferConfig struct {
	// InitialSize is the capacity of a new line's buffer.
	InitialSize int
	// GrowSize is the number of slots added when a buffer fills up.
	GrowSize int
	// MaxSize caps a line's buffer capacity. Zero means unlimited.
	MaxSize int
}

// ViewportConfig is the viewport size used before the terminal reports one.
type ViewportConfig struct {
	Rows int
	Cols int
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is debug, info, warn or error.
	Level string
	// File is the log file path. Empty discards logs.
	File string
}
