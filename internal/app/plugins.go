package app

import (
	"fmt" // For error wrapping

	"github.com/bethropolis/textwriter/internal/logger"
	"github.com/bethropolis/textwriter/internal/plugin"

	// Built-in plugin packages
	"github.com/bethropolis/textwriter/plugins/wordcount"
)

// registerPlugins registers all built-in plugins with the manager.
func registerPlugins(pm *plugin.Manager) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	// List of plugin constructors
	// Adding a new plugin means adding its constructor here.
	pluginConstructors := []func() plugin.Plugin{
		wordcount.New,
	}

	var finalErr error
	for _, newPlugin := range pluginConstructors {
		p := newPlugin()
		logger.Debugf("Registering plugin: %s", p.Name())
		if err := pm.Register(p); err != nil {
			// Log the error but continue registering others
			wrappedErr := fmt.Errorf("failed to register plugin '%s': %w", p.Name(), err)
			logger.Errorf("%v", wrappedErr)
			if finalErr == nil {
				finalErr = wrappedErr // Store the first error encountered
			}
		}
	}
	return finalErr // First error encountered, or nil
}
