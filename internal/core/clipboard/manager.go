// Package clipboard holds copied text, mirrored to the system clipboard
// when one is available.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/quill/internal/logger"
)

// Backend is an external clipboard.
type Backend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemBackend struct{}

func (systemBackend) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemBackend) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Manager keeps an internal register and optionally a backend.
type Manager struct {
	register []byte
	backend  Backend
}

// NewManager creates a clipboard. The system clipboard is used when
// useSystem is set and the platform supports it.
func NewManager(useSystem bool) *Manager {
	m := &Manager{}
	if useSystem && !clipboard.Unsupported {
		m.backend = systemBackend{}
	} else if useSystem {
		logger.Warnf("Clipboard: System clipboard unsupported, using internal register")
	}
	return m
}

// NewManagerWithBackend creates a clipboard backed by b.
func NewManagerWithBackend(b Backend) *Manager {
	return &Manager{backend: b}
}

// Write stores text. The internal register is always updated even if the
// backend fails.
func (m *Manager) Write(text []byte) error {
	m.register = append(m.register[:0], text...)
	logger.Debugf("Clipboard: Stored %d bytes", len(text))
	if m.backend == nil {
		return nil
	}
	if err := m.backend.WriteAll(string(text)); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	return nil
}

// Read returns the clipboard content, falling back to the internal
// register when the backend cannot be read.
func (m *Manager) Read() []byte {
	if m.backend != nil {
		text, err := m.backend.ReadAll()
		if err == nil {
			return []byte(text)
		}
		logger.Warnf("Clipboard: Reading system clipboard failed: %v", err)
	}
	return append([]byte(nil), m.register...)
}
