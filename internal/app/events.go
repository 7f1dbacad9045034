package app

import (
	"github.com/bethropolis/textwriter/internal/event"
	"github.com/bethropolis/textwriter/internal/logger"
)

// subscribeEvents wires the status bar to document and window events. The
// commands that cause them report only failures; success messages come from
// here.
func (a *App) subscribeEvents() {
	a.events.Subscribe(event.TypeDocumentLoaded, a.handleDocumentLoaded)
	a.events.Subscribe(event.TypeDocumentSaved, a.handleDocumentSaved)
	a.events.Subscribe(event.TypeDocumentNew, a.handleDocumentNew)
	a.events.Subscribe(event.TypeStyleApplied, a.handleStyleApplied)
	a.events.Subscribe(event.TypeWindowOpened, a.handleWindowEvent)
	a.events.Subscribe(event.TypeWindowClosed, a.handleWindowEvent)
	a.events.Subscribe(event.TypeWindowFocused, a.handleWindowEvent)
}

func (a *App) handleDocumentLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.DocumentData); ok {
		a.statusBar.SetTemporaryMessage("Opened '%s'", data.FilePath)
	}
	return false
}

func (a *App) handleDocumentSaved(e event.Event) bool {
	if data, ok := e.Data.(event.DocumentData); ok {
		a.statusBar.SetTemporaryMessage("Saved '%s'", data.FilePath)
	}
	return false
}

func (a *App) handleDocumentNew(e event.Event) bool {
	a.statusBar.SetTemporaryMessage("New document")
	return false
}

func (a *App) handleStyleApplied(e event.Event) bool {
	if data, ok := e.Data.(event.StyleAppliedData); ok {
		a.statusBar.SetTemporaryMessage("Font: %s", data.Descriptor)
	}
	return false
}

func (a *App) handleWindowEvent(e event.Event) bool {
	if data, ok := e.Data.(event.WindowData); ok {
		logger.DebugTagf("window", "App: %v window %s (index %d, %d open)", e.Type, data.WindowID, data.Index, len(a.windows))
	}
	return false
}
