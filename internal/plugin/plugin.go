// Package plugin defines the extension interface for optional features that
// sit on top of the editor shell, such as the word count command.
package plugin

import (
	"github.com/bethropolis/textwriter/internal/commands"
	"github.com/bethropolis/textwriter/internal/event"
)

// EditorAPI is what plugins can see and do. It exposes the active window's
// text read-only; edits go through the shell.
type EditorAPI interface {
	// ActiveContent returns the text of the focused window.
	ActiveContent() string
	// ActiveTitle returns the display name of the focused window's document.
	ActiveTitle() string
	// WindowCount is the number of open windows.
	WindowCount() int

	SubscribeEvent(eventType event.Type, handler event.Handler)
	RegisterCommand(name string, fn commands.Func) error
	SetStatusMessage(format string, args ...interface{})
}

// Plugin is implemented by every plugin.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once at startup, after the built-in commands are
	// registered. Plugins subscribe to events and register commands here.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
