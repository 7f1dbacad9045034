// internal/input/action.go
package input

// Action represents an operation decoded from a key press.
type Action int

const (
	ActionUnknown Action = iota

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome
	ActionMoveEnd

	// --- Text Manipulation ---
	ActionInsertRune
	ActionInsertNewLine
	ActionInsertTab
	ActionDeleteCharForward
	ActionDeleteCharBackward

	// --- Shell ---
	ActionCancel // Esc: close menu, dialog or command line
	ActionOpenMenu

	// --- Named commands ---
	ActionNew
	ActionNewWindow
	ActionOpen
	ActionSave
	ActionSaveAs
	ActionCloseWindow
	ActionExit
	ActionCopyAll
	ActionPaste
	ActionChangeFont
	ActionChangeFontSize
	ActionNextWindow
	ActionPrevWindow
	ActionAbout
	ActionCommandPrompt
)

// commandNames maps actions to the names they are registered under in the
// command registry. Actions missing here are handled by the shell directly.
var commandNames = map[Action]string{
	ActionNew:            "file.new",
	ActionNewWindow:      "file.new_window",
	ActionOpen:           "file.open",
	ActionSave:           "file.save",
	ActionSaveAs:         "file.save_as",
	ActionCloseWindow:    "file.close_window",
	ActionExit:           "file.exit",
	ActionCopyAll:        "edit.copy_all",
	ActionPaste:          "edit.paste",
	ActionChangeFont:     "font.change",
	ActionChangeFontSize: "font.size",
	ActionNextWindow:     "window.next",
	ActionPrevWindow:     "window.prev",
	ActionAbout:          "help.about",
	ActionCommandPrompt:  "command.prompt",
}

// CommandName returns the registry name of a command action.
func (a Action) CommandName() (string, bool) {
	name, ok := commandNames[a]
	return name, ok
}

// ActionEvent is a decoded key press. Rune is set for ActionInsertRune.
type ActionEvent struct {
	Action Action
	Rune   rune
}
