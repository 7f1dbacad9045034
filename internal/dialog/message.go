package dialog

import (
	"strings"

	"github.com/bethropolis/textwriter/internal/theme"
	"github.com/bethropolis/textwriter/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// Message shows a few lines of text until any key is pressed.
type Message struct {
	title string
	lines []string

	OnClose func()
}

// NewMessage splits text on newlines into the box body.
func NewMessage(title, text string, onClose func()) *Message {
	return &Message{title: title, lines: strings.Split(text, "\n"), OnClose: onClose}
}

func (m *Message) Title() string { return m.title }

// Lines returns the body lines.
func (m *Message) Lines() []string { return m.lines }

func (m *Message) HandleKey(ev *tcell.EventKey) bool {
	if m.OnClose != nil {
		m.OnClose()
	}
	return true
}

func (m *Message) Draw(screen tcell.Screen, th *theme.Theme) {
	const hint = "Press any key"
	width := tui.TextWidth(m.title) + 8
	for _, l := range append([]string{hint}, m.lines...) {
		if w := tui.TextWidth(l) + 4; w > width {
			width = w
		}
	}
	sw, sh := screen.Size()
	x, y, w, h := frame(screen, th, m.title, min(width, sw), min(len(m.lines)+4, sh))

	style := th.GetStyle("Dialog")
	for i, l := range m.lines {
		if i >= h-2 {
			break
		}
		lx := x + (w-tui.TextWidth(l))/2
		if lx < x {
			lx = x
		}
		tui.DrawText(screen, lx, y+i, w, l, style)
	}
	tui.DrawText(screen, x+(w-len(hint))/2, y+h-1, w, hint, th.GetStyle("DialogHint"))
	screen.HideCursor()
}
