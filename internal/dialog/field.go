package dialog

import (
	"github.com/bethropolis/textwriter/internal/tui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// field is a single-line text input.
type field struct {
	text   []rune
	cursor int
}

func newField(initial string) field {
	r := []rune(initial)
	return field{text: r, cursor: len(r)}
}

func (f *field) String() string { return string(f.text) }

func (f *field) Set(text string) {
	f.text = []rune(text)
	f.cursor = len(f.text)
}

// HandleKey applies editing keys and reports whether the key was one of them.
func (f *field) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return false
		}
		f.text = append(f.text[:f.cursor], append([]rune{ev.Rune()}, f.text[f.cursor:]...)...)
		f.cursor++
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if f.cursor > 0 {
			f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
			f.cursor--
		}
	case tcell.KeyDelete:
		if f.cursor < len(f.text) {
			f.text = append(f.text[:f.cursor], f.text[f.cursor+1:]...)
		}
	case tcell.KeyLeft:
		if f.cursor > 0 {
			f.cursor--
		}
	case tcell.KeyRight:
		if f.cursor < len(f.text) {
			f.cursor++
		}
	case tcell.KeyHome, tcell.KeyCtrlA:
		f.cursor = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		f.cursor = len(f.text)
	case tcell.KeyCtrlU:
		f.text = f.text[:0]
		f.cursor = 0
	default:
		return false
	}
	return true
}

// Draw paints the field in width cells, scrolled so the cursor is visible,
// and places the terminal cursor.
func (f *field) Draw(screen tcell.Screen, x, y, width int, style tcell.Style) {
	tui.Fill(screen, x, y, width, 1, style)
	if width <= 0 {
		return
	}

	start := 0
	for start < f.cursor && uniseg.StringWidth(string(f.text[start:f.cursor])) >= width {
		start++
	}
	tui.DrawText(screen, x, y, width, string(f.text[start:]), style)
	screen.ShowCursor(x+uniseg.StringWidth(string(f.text[start:f.cursor])), y)
}
