// Package clipboard gives the editor copy and paste through the system
// clipboard, falling back to a process-local register when no clipboard
// utility is available.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned by System when the platform has no clipboard
// utility.
var ErrUnavailable = errors.New("system clipboard unavailable")

// Provider abstracts clipboard access.
type Provider interface {
	// Get returns the current clipboard content.
	Get() (string, error)

	// Set sets the clipboard content.
	Set(content string) error
}

// System uses the operating system clipboard.
type System struct{}

// Get returns the system clipboard content.
func (System) Get() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	return clipboard.ReadAll()
}

// Set replaces the system clipboard content.
func (System) Set(content string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(content)
}

// Memory is an in-process clipboard.
type Memory struct {
	mu      sync.Mutex
	content string
}

// Get returns the stored content.
func (m *Memory) Get() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.content, nil
}

// Set stores content.
func (m *Memory) Set(content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content = content
	return nil
}

// Fallback writes to both the primary provider and a local register, and
// reads from the primary unless it fails.
type Fallback struct {
	primary Provider
	local   Memory
}

// NewFallback wraps primary. A nil primary uses System.
func NewFallback(primary Provider) *Fallback {
	if primary == nil {
		primary = System{}
	}
	return &Fallback{primary: primary}
}

// Default returns the clipboard the editor uses.
func Default() Provider {
	return NewFallback(System{})
}

// Get returns the primary clipboard content, or the local copy if the
// primary cannot be read.
func (f *Fallback) Get() (string, error) {
	if s, err := f.primary.Get(); err == nil {
		return s, nil
	}
	return f.local.Get()
}

// Set stores content locally and in the primary clipboard. Failure of the
// primary is not reported since the local copy still serves Get.
func (f *Fallback) Set(content string) error {
	_ = f.local.Set(content)
	_ = f.primary.Set(content)
	return nil
}
