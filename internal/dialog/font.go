package dialog

import (
	"strings"

	"github.com/bethropolis/textwriter/internal/font"
	"github.com/bethropolis/textwriter/internal/logger"
	"github.com/bethropolis/textwriter/internal/theme"
	"github.com/bethropolis/textwriter/internal/tui"
	"github.com/gdamore/tcell/v2"
)

const pickerHint = "Up/Down choose | type to edit | Enter apply | Esc cancel"

// FontPicker offers a list of choices plus a free-text field. Moving through
// the list copies the highlighted choice into the field; Enter accepts
// whatever the field holds. Change Font lists descriptors, Change Font Size
// lists sizes.
type FontPicker struct {
	title    string
	choices  []string
	selected int // -1 while the field holds typed text
	top      int
	input    field
	preview  bool

	OnAccept func(value string)
	OnCancel func()
}

// NewFontPicker creates a picker seeded with current. If current is one of
// the choices it starts highlighted.
func NewFontPicker(title, current string, choices []string, onAccept func(string), onCancel func()) *FontPicker {
	p := &FontPicker{
		title:    title,
		choices:  choices,
		selected: -1,
		input:    newField(current),
		preview:  true,
		OnAccept: onAccept,
		OnCancel: onCancel,
	}
	for i, c := range choices {
		if c == current {
			p.selected = i
			break
		}
	}
	return p
}

func (p *FontPicker) Title() string { return p.title }

// Value is the text that Enter would accept.
func (p *FontPicker) Value() string { return p.input.String() }

// Selected is the highlighted choice index, or -1.
func (p *FontPicker) Selected() int { return p.selected }

// SetPreview turns the styled rendering of each choice on or off. Size lists
// have nothing to preview.
func (p *FontPicker) SetPreview(on bool) { p.preview = on }

func (p *FontPicker) HandleKey(ev *tcell.EventKey) bool {
	switch {
	case isCancel(ev):
		logger.DebugTagf("dialog", "FontPicker '%s': cancelled", p.title)
		if p.OnCancel != nil {
			p.OnCancel()
		}
		return true
	case isAccept(ev):
		value := strings.TrimSpace(p.input.String())
		if value == "" {
			if p.OnCancel != nil {
				p.OnCancel()
			}
			return true
		}
		logger.DebugTagf("dialog", "FontPicker '%s': accepted '%s'", p.title, value)
		if p.OnAccept != nil {
			p.OnAccept(value)
		}
		return true
	}

	switch ev.Key() {
	case tcell.KeyUp:
		p.move(-1)
	case tcell.KeyDown:
		p.move(1)
	case tcell.KeyPgUp:
		p.move(-5)
	case tcell.KeyPgDn:
		p.move(5)
	default:
		before := p.input.String()
		if p.input.HandleKey(ev) && p.input.String() != before {
			p.selected = -1
		}
	}
	return false
}

func (p *FontPicker) move(delta int) {
	if len(p.choices) == 0 {
		return
	}
	next := p.selected + delta
	if p.selected < 0 && delta < 0 {
		next = len(p.choices) - 1
	}
	if next < 0 {
		next = 0
	}
	if next >= len(p.choices) {
		next = len(p.choices) - 1
	}
	p.selected = next
	p.input.Set(p.choices[next])
}

func (p *FontPicker) Draw(screen tcell.Screen, th *theme.Theme) {
	sw, sh := screen.Size()
	width := 40
	for _, c := range p.choices {
		if w := tui.TextWidth(c) + 6; w > width {
			width = w
		}
	}
	x, y, w, h := frame(screen, th, p.title, min(width, sw-2), min(len(p.choices)+6, sh-2))

	p.input.Draw(screen, x, y, w, th.GetStyle("DialogInput"))
	listH := h - 4
	if listH < 0 {
		listH = 0
	}

	if p.selected >= 0 {
		if p.selected < p.top {
			p.top = p.selected
		} else if p.selected >= p.top+listH {
			p.top = p.selected - listH + 1
		}
	}

	base := th.GetStyle("Dialog")
	for row := 0; row < listH && p.top+row < len(p.choices); row++ {
		i := p.top + row
		style := base
		if p.preview {
			style = font.Parse(p.choices[i]).Style(base, th)
		}
		if i == p.selected {
			style = th.GetStyle("DialogSelected")
		}
		tui.Fill(screen, x, y+2+row, w, 1, style)
		tui.DrawText(screen, x+1, y+2+row, w-1, p.choices[i], style)
	}
	tui.DrawText(screen, x, y+h-1, w, pickerHint, th.GetStyle("DialogHint"))
}
