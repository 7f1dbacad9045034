package app

import (
	"github.com/bethropolis/textwriter/internal/config"
	"github.com/bethropolis/textwriter/internal/logger"
	"github.com/bethropolis/textwriter/internal/render"
	"github.com/bethropolis/textwriter/internal/tui"
)

// draw clears the screen and redraws all components.
func (a *App) draw() {
	a.updateStatusBarContent()

	screen := a.tui.GetScreen()
	width, height := a.tui.Size()
	w := a.activeWindow()
	textArea := render.Rect{
		X:      0,
		Y:      config.MenuBarHeight,
		Width:  width,
		Height: height - config.MenuBarHeight - config.StatusBarHeight,
	}
	logger.DebugTagf("draw", "draw: screen %dx%d, text area %+v, mode %v", width, height, textArea, a.mode)

	a.tui.Clear()
	render.Document(screen, textArea, w, a.theme)
	render.MenuBar(screen, 0, width, a.menuBar, w.Title(), a.theme)
	a.statusBar.Draw(screen, height-config.StatusBarHeight, width, a.theme)

	switch a.mode {
	case ModeEdit:
		render.Cursor(screen, textArea, w)
	case ModeMenu:
		render.Dropdown(screen, config.MenuBarHeight, a.menuBar, a.theme)
		screen.HideCursor()
	case ModeCommand:
		screen.ShowCursor(tui.TextWidth(":"+string(a.cmdLine)), height-config.StatusBarHeight)
	case ModeDialog:
		screen.HideCursor()
		if a.dialog != nil {
			a.dialog.Draw(screen, a.theme)
		}
	}
	a.tui.Show()
}

// updateStatusBarContent pushes current window state to the status bar.
func (a *App) updateStatusBarContent() {
	w := a.activeWindow()
	a.statusBar.SetFileInfo(w.Session().DisplayName(), w.Session().IsModified())
	a.statusBar.SetCursorInfo(w.Cursor)
	a.statusBar.SetFont(w.Font())
	a.statusBar.SetWindowInfo(a.active, len(a.windows))
	if a.mode == ModeEdit {
		a.statusBar.SetMode("")
	} else {
		a.statusBar.SetMode(a.mode.String())
	}
}
