// internal/plugin/manager.go
package plugin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bethropolis/textwriter/internal/logger"
)

// Manager handles the registration, initialization, and lifecycle of plugins.
type Manager struct {
	mu          sync.RWMutex
	plugins     map[string]Plugin
	initialized []string // names that initialized successfully, in order
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin instance to the manager.
// This should be called before InitializePlugins.
func (m *Manager) Register(plugin Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := plugin.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}

	m.plugins[name] = plugin
	logger.DebugTagf("plugin", "Plugin Manager: Registered plugin '%s'", name)
	return nil
}

func (m *Manager) sortedLocked() []Plugin {
	names := make([]string, 0, len(m.plugins))
	for name := range m.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Plugin, 0, len(names))
	for _, name := range names {
		out = append(out, m.plugins[name])
	}
	return out
}

// InitializePlugins calls Initialize on every registered plugin in name
// order. A failing plugin is logged and skipped; the rest still run.
func (m *Manager) InitializePlugins(api EditorAPI) {
	m.mu.RLock()
	toInit := m.sortedLocked()
	m.mu.RUnlock()

	logger.Debugf("Plugin Manager: Initializing %d plugins...", len(toInit))
	var ok []string
	for _, p := range toInit {
		if err := p.Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: ERROR initializing plugin '%s': %v", p.Name(), err)
			continue
		}
		logger.DebugTagf("plugin", "Plugin Manager: Successfully initialized plugin '%s'", p.Name())
		ok = append(ok, p.Name())
	}

	m.mu.Lock()
	m.initialized = ok
	m.mu.Unlock()
}

// ShutdownPlugins calls Shutdown on the plugins that initialized, in reverse order.
func (m *Manager) ShutdownPlugins() {
	m.mu.Lock()
	names := m.initialized
	m.initialized = nil
	m.mu.Unlock()

	for i := len(names) - 1; i >= 0; i-- {
		p, ok := m.GetPlugin(names[i])
		if !ok {
			continue
		}
		if err := p.Shutdown(); err != nil {
			logger.Warnf("Plugin Manager: ERROR shutting down plugin '%s': %v", p.Name(), err)
		}
	}
}

// GetPlugin returns a registered plugin by name.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.plugins[name]
	return p, exists
}
