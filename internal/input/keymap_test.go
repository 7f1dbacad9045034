package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want ActionEvent
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionEvent{Action: ActionInsertRune, Rune: 'x'}},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModShift), ActionEvent{Action: ActionInsertRune, Rune: 'X'}},
		{"alt rune ignored", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), ActionEvent{Action: ActionUnknown}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionEvent{Action: ActionInsertNewLine}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionEvent{Action: ActionInsertTab}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), ActionEvent{Action: ActionDeleteCharBackward}},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionEvent{Action: ActionMoveLeft}},
		{"ctrl+s", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), ActionEvent{Action: ActionSave}},
		{"ctrl+a", tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), ActionEvent{Action: ActionSaveAs}},
		{"ctrl+o", tcell.NewEventKey(tcell.KeyCtrlO, 0, tcell.ModCtrl), ActionEvent{Action: ActionOpen}},
		{"ctrl+q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), ActionEvent{Action: ActionExit}},
		{"alt+ctrl+f", tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModAlt), ActionEvent{Action: ActionChangeFontSize}},
		{"alt+ctrl+f with ctrl bit", tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModAlt|tcell.ModCtrl), ActionEvent{Action: ActionChangeFontSize}},
		{"f10", tcell.NewEventKey(tcell.KeyF10, 0, tcell.ModNone), ActionEvent{Action: ActionOpenMenu}},
		{"f6", tcell.NewEventKey(tcell.KeyF6, 0, tcell.ModNone), ActionEvent{Action: ActionNextWindow}},
		{"shift+f6", tcell.NewEventKey(tcell.KeyF6, 0, tcell.ModShift), ActionEvent{Action: ActionPrevWindow}},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionEvent{Action: ActionCancel}},
		{"unbound", tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), ActionEvent{Action: ActionUnknown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ProcessEvent(tt.ev); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCommandName(t *testing.T) {
	if name, ok := ActionSaveAs.CommandName(); !ok || name != "file.save_as" {
		t.Errorf("ActionSaveAs -> %q, %v", name, ok)
	}
	if _, ok := ActionMoveUp.CommandName(); ok {
		t.Error("movement action has a command name")
	}
}

func TestBind(t *testing.T) {
	p := NewInputProcessor()
	p.Bind(tcell.KeyF12, ActionAbout)
	if got := p.ProcessEvent(tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone)); got.Action != ActionAbout {
		t.Errorf("got %v", got.Action)
	}
}
