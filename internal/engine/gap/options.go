package gap

// Default sizing values.
const (
	DefaultInitialSize = 1024
	DefaultGrowSize    = 1024
)

// Option configures a Buffer during creation.
type Option func(*Buffer)

// WithInitialSize sets the initial capacity of the buffer.
func WithInitialSize(size int) Option {
	return func(b *Buffer) {
		if size > 0 {
			b.initialSize = size
		}
	}
}

// WithGrowSize sets the number of slots added each time the gap runs out.
func WithGrowSize(size int) Option {
	return func(b *Buffer) {
		if size > 0 {
			b.growSize = size
		}
	}
}

// WithMaxSize caps the capacity of the buffer. Zero means unlimited.
// Growing past the cap fails with ErrAllocationFailure.
func WithMaxSize(size int) Option {
	return func(b *Buffer) {
		if size >= 0 {
			b.maxSize = size
		}
	}
}

// WithMode sets the initial write mode.
func WithMode(mode Mode) Option {
	return func(b *Buffer) {
		b.mode = mode
	}
}
