// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys (including tcell's KeyCtrlX codes) to actions.
type Keymap map[tcell.Key]Action

// ModKeymap holds bindings that only apply with a modifier held.
type ModKeymap map[tcell.ModMask]Keymap

// InputProcessor translates tcell key events into ActionEvents.
type InputProcessor struct {
	keymap    Keymap
	modKeymap ModKeymap
}

// NewInputProcessor creates a processor with the default bindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:    make(Keymap),
		modKeymap: make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyTab] = ActionInsertTab
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionCancel

	p.keymap[tcell.KeyCtrlN] = ActionNew
	p.keymap[tcell.KeyCtrlT] = ActionNewWindow
	p.keymap[tcell.KeyCtrlO] = ActionOpen
	p.keymap[tcell.KeyCtrlS] = ActionSave
	p.keymap[tcell.KeyCtrlA] = ActionSaveAs
	p.keymap[tcell.KeyCtrlW] = ActionCloseWindow
	p.keymap[tcell.KeyCtrlQ] = ActionExit
	p.keymap[tcell.KeyCtrlK] = ActionCopyAll
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlF] = ActionChangeFont
	p.keymap[tcell.KeyCtrlP] = ActionCommandPrompt
	p.keymap[tcell.KeyF1] = ActionAbout
	p.keymap[tcell.KeyF6] = ActionNextWindow
	p.keymap[tcell.KeyF10] = ActionOpenMenu
	// Some terminals report Shift+F6 as F18.
	p.keymap[tcell.KeyF18] = ActionPrevWindow

	p.modKeymap[tcell.ModShift] = Keymap{
		tcell.KeyF6: ActionPrevWindow,
	}
	p.modKeymap[tcell.ModAlt] = Keymap{
		tcell.KeyCtrlF: ActionChangeFontSize,
	}
}

// Bind adds or replaces a plain key binding.
func (p *InputProcessor) Bind(key tcell.Key, action Action) {
	p.keymap[key] = action
}

// ProcessEvent decodes a key event. Mode-specific interpretation (what Enter
// means in a dialog, for instance) is left to the caller.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	// KeyCtrlX codes already imply Ctrl.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	if modKeymap, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	if key == tcell.KeyRune && mod&(tcell.ModCtrl|tcell.ModAlt) == 0 {
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}

	return ActionEvent{Action: ActionUnknown}
}
