package app

import (
	"errors"
	"strings"

	"github.com/bethropolis/textwriter/internal/commands"
	"github.com/bethropolis/textwriter/internal/config"
	"github.com/bethropolis/textwriter/internal/dialog"
	"github.com/bethropolis/textwriter/internal/input"
	"github.com/bethropolis/textwriter/internal/logger"
	"github.com/bethropolis/textwriter/internal/render"
	"github.com/gdamore/tcell/v2"
)

// Mode is the state that decides where key presses go.
type Mode int

const (
	ModeEdit    Mode = iota // keys edit the active window
	ModeMenu                // a dropdown is open
	ModeDialog              // a modal dialog has focus
	ModeCommand             // the ":" line is being typed
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "EDIT"
	case ModeMenu:
		return "MENU"
	case ModeDialog:
		return "DIALOG"
	case ModeCommand:
		return "COMMAND"
	}
	return "UNKNOWN"
}

// handleKey routes a key by mode. It returns true if a redraw is needed.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch a.mode {
	case ModeDialog:
		return a.handleKeyDialog(ev)
	case ModeMenu:
		return a.handleKeyMenu(ev)
	case ModeCommand:
		return a.handleKeyCommand(ev)
	default:
		return a.handleKeyEdit(ev)
	}
}

func (a *App) handleKeyEdit(ev *tcell.EventKey) bool {
	actionEvent := a.input.ProcessEvent(ev)
	if disarms(actionEvent.Action, input.ActionExit) {
		a.exitPending = false
	}
	if disarms(actionEvent.Action, input.ActionCloseWindow) {
		a.closeArmed = ""
	}

	w := a.activeWindow()
	var err error
	switch actionEvent.Action {
	case input.ActionMoveUp:
		w.MoveCursor(-1, 0)
	case input.ActionMoveDown:
		w.MoveCursor(1, 0)
	case input.ActionMoveLeft:
		w.MoveCursor(0, -1)
	case input.ActionMoveRight:
		w.MoveCursor(0, 1)
	case input.ActionMovePageUp:
		w.PageMove(-1)
	case input.ActionMovePageDown:
		w.PageMove(1)
	case input.ActionMoveHome:
		w.Home()
	case input.ActionMoveEnd:
		w.End()

	case input.ActionInsertRune:
		err = w.InsertRune(actionEvent.Rune)
	case input.ActionInsertNewLine:
		err = w.InsertNewLine()
	case input.ActionInsertTab:
		err = w.InsertTab()
	case input.ActionDeleteCharBackward:
		err = w.DeleteBackward()
	case input.ActionDeleteCharForward:
		err = w.DeleteForward()

	case input.ActionOpenMenu:
		a.openMenu(0)
	case input.ActionCancel:
		a.statusBar.ResetTemporaryMessage()

	case input.ActionUnknown:
		return false
	default:
		name, ok := actionEvent.Action.CommandName()
		if !ok {
			return false
		}
		a.runCommand(name, nil)
	}

	if err != nil {
		logger.Warnf("App: edit failed: %v", err)
		a.statusBar.SetError("Edit failed: %v", err)
	}
	return true
}

// disarms reports whether action cancels a pending confirmation of armed.
// Opening the menu or the command line does not, so the second Exit can come
// from either.
func disarms(action, armed input.Action) bool {
	switch action {
	case armed, input.ActionUnknown, input.ActionOpenMenu, input.ActionCommandPrompt:
		return false
	}
	return true
}

// runCommand executes a registered action and reports failures on the status bar.
func (a *App) runCommand(name string, args []string) {
	logger.DebugTagf("command", "App: running '%s' %v", name, args)
	a.disarmFor(name)
	if err := a.registry.Execute(name, args); err != nil {
		a.reportCommandError(name, err)
	}
}

// disarmFor cancels pending Exit and Close confirmations before the named
// command runs, unless it is the command being confirmed or only opens the
// command line. Unknown names change nothing.
func (a *App) disarmFor(name string) {
	resolved, ok := a.registry.Resolve(name)
	if !ok || resolved == "command.prompt" {
		return
	}
	if resolved != "file.exit" {
		a.exitPending = false
	}
	if resolved != "file.close_window" {
		a.closeArmed = ""
	}
}

func (a *App) reportCommandError(name string, err error) {
	logger.Warnf("App: command '%s' failed: %v", name, err)
	if errors.Is(err, commands.ErrUnknownCommand) {
		a.statusBar.SetError("Unknown command: %s", name)
		return
	}
	a.statusBar.SetError("%v", err)
}

// --- Menu mode ---

func (a *App) openMenu(i int) {
	a.menuBar.Open(i)
	a.mode = ModeMenu
}

func (a *App) closeMenu() {
	a.menuBar.Close()
	if a.mode == ModeMenu {
		a.mode = ModeEdit
	}
}

func (a *App) handleKeyMenu(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyF10:
		a.closeMenu()
	case tcell.KeyLeft:
		a.menuBar.Left()
	case tcell.KeyRight:
		a.menuBar.Right()
	case tcell.KeyUp:
		a.menuBar.Up()
	case tcell.KeyDown:
		a.menuBar.Down()
	case tcell.KeyEnter:
		a.activateMenuItem()
	case tcell.KeyRune:
		a.menuMnemonic(ev.Rune())
	default:
		return false
	}
	return true
}

// menuMnemonic activates the first item of the open menu whose label starts
// with r, ignoring case.
func (a *App) menuMnemonic(r rune) {
	m := a.menuBar.Menus[a.menuBar.OpenIndex()]
	want := strings.ToLower(string(r))
	for i, item := range m.Items {
		if !item.IsSeparator() && strings.HasPrefix(strings.ToLower(item.Label), want) {
			a.menuBar.Select(i)
			a.activateMenuItem()
			return
		}
	}
}

func (a *App) activateMenuItem() {
	item, ok := a.menuBar.Selected()
	a.closeMenu()
	if !ok {
		return
	}
	a.runCommand(item.Action, nil)
}

// --- Dialog mode ---

func (a *App) openDialog(d dialog.Dialog) {
	a.menuBar.Close()
	a.dialog = d
	a.mode = ModeDialog
	logger.DebugTagf("dialog", "App: opened dialog '%s'", d.Title())
}

func (a *App) handleKeyDialog(ev *tcell.EventKey) bool {
	d := a.dialog
	if d == nil {
		a.mode = ModeEdit
		return true
	}
	if d.HandleKey(ev) && a.dialog == d {
		// A callback may already have replaced the dialog with another one.
		a.dialog = nil
		a.mode = ModeEdit
	}
	return true
}

// --- Command mode ---

func (a *App) enterCommandMode() {
	a.mode = ModeCommand
	a.cmdLine = a.cmdLine[:0]
	a.statusBar.SetCommandLine(":")
}

func (a *App) leaveCommandMode() {
	a.mode = ModeEdit
	a.cmdLine = a.cmdLine[:0]
	a.statusBar.ResetTemporaryMessage()
}

func (a *App) handleKeyCommand(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune:
		a.cmdLine = append(a.cmdLine, ev.Rune())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.cmdLine) == 0 {
			a.leaveCommandMode()
			return true
		}
		a.cmdLine = a.cmdLine[:len(a.cmdLine)-1]
	case tcell.KeyEscape:
		a.leaveCommandMode()
		return true
	case tcell.KeyEnter:
		line := string(a.cmdLine)
		a.leaveCommandMode()
		a.executeCommandLine(line)
		return true
	default:
		return false
	}
	a.statusBar.SetCommandLine(":" + string(a.cmdLine))
	return true
}

func (a *App) executeCommandLine(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	logger.DebugTagf("command", "App: executing ':%s'", line)
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), ":"))
	if len(fields) == 0 {
		return
	}
	a.disarmFor(fields[0])
	if err := a.registry.ExecuteLine(line); err != nil {
		a.reportCommandError(fields[0], err)
	}
}

// --- Mouse ---

func (a *App) handleMouse(ev *tcell.EventMouse) bool {
	if ev.Buttons()&tcell.Button1 == 0 {
		return false
	}
	x, y := ev.Position()

	switch a.mode {
	case ModeDialog:
		return false
	case ModeCommand:
		a.leaveCommandMode()
	}

	if y == 0 {
		i, ok := a.menuBar.Hit(x)
		switch {
		case !ok:
			a.closeMenu()
		case a.menuBar.IsOpen() && a.menuBar.OpenIndex() == i:
			a.closeMenu()
		default:
			a.openMenu(i)
		}
		return true
	}

	if a.menuBar.IsOpen() {
		if item, ok := render.DropdownHit(a.tui.GetScreen(), config.MenuBarHeight, a.menuBar, x, y); ok {
			if !a.menuBar.Menus[a.menuBar.OpenIndex()].Items[item].IsSeparator() {
				a.menuBar.Select(item)
				a.activateMenuItem()
			}
			return true
		}
		a.closeMenu()
		return true
	}

	_, height := a.tui.Size()
	if y >= config.MenuBarHeight && y < height-config.StatusBarHeight {
		a.activeWindow().ClickAt(x, y-config.MenuBarHeight)
		return true
	}
	return false
}
