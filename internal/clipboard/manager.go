// Package clipboard keeps an in-process register and mirrors it to the system
// clipboard when one is available.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/textwriter/internal/logger"
)

// ErrEmpty is returned by Paste when there is nothing to paste.
var ErrEmpty = errors.New("clipboard is empty")

// System is the platform clipboard.
type System interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type atottoSystem struct{}

func (atottoSystem) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (atottoSystem) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Manager holds the register shared by all windows.
type Manager struct {
	system   System
	register string
	has      bool
}

// NewManager returns a manager. With useSystem false, or when no clipboard
// utility is installed, only the in-process register is used.
func NewManager(useSystem bool) *Manager {
	m := &Manager{}
	if useSystem {
		if clipboard.Unsupported {
			logger.Warnf("Clipboard: system clipboard unsupported on this host, using internal register")
		} else {
			m.system = atottoSystem{}
		}
	}
	return m
}

// NewManagerWithSystem returns a manager backed by sys.
func NewManagerWithSystem(sys System) *Manager {
	return &Manager{system: sys}
}

// Copy stores text. A system clipboard failure is returned but the register
// still holds the text.
func (m *Manager) Copy(text string) error {
	m.register = text
	m.has = true
	logger.DebugTagf("clipboard", "Clipboard: copied %d bytes", len(text))
	if m.system == nil {
		return nil
	}
	if err := m.system.WriteAll(text); err != nil {
		logger.Warnf("Clipboard: system write failed: %v", err)
		return err
	}
	return nil
}

// Paste returns the system clipboard's text, or the register when the system
// clipboard is absent, empty or unreadable.
func (m *Manager) Paste() (string, error) {
	if m.system != nil {
		text, err := m.system.ReadAll()
		if err == nil && text != "" {
			return text, nil
		}
		if err != nil {
			logger.DebugTagf("clipboard", "Clipboard: system read failed, using register: %v", err)
		}
	}
	if !m.has || m.register == "" {
		return "", ErrEmpty
	}
	return m.register, nil
}
