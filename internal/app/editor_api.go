// internal/app/editor_api.go
package app

import (
	"github.com/bethropolis/textwriter/internal/commands"
	"github.com/bethropolis/textwriter/internal/event"
	"github.com/bethropolis/textwriter/internal/plugin"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

// appEditorAPI is the view of the App that plugins get.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

func (api *appEditorAPI) ActiveContent() string {
	return api.app.activeWindow().Session().Content()
}

func (api *appEditorAPI) ActiveTitle() string {
	return api.app.activeWindow().Session().DisplayName()
}

func (api *appEditorAPI) WindowCount() int {
	return len(api.app.windows)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.events.Subscribe(eventType, handler)
}

func (api *appEditorAPI) RegisterCommand(name string, fn commands.Func) error {
	return api.app.registry.Register(name, fn)
}

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
}
