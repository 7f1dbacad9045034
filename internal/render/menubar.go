package render

import (
	"github.com/bethropolis/textwriter/internal/menu"
	"github.com/bethropolis/textwriter/internal/theme"
	"github.com/bethropolis/textwriter/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// MenuBar draws the titles on row y, highlighting the open menu, with the
// window title right-aligned.
func MenuBar(screen tcell.Screen, y, width int, bar *menu.Bar, title string, th *theme.Theme) {
	barStyle := th.GetStyle("MenuBar")
	tui.Fill(screen, 0, y, width, 1, barStyle)

	for i, span := range bar.TitleSpans() {
		style := barStyle
		if i == bar.OpenIndex() {
			style = th.GetStyle("MenuBarActive")
		}
		if span.X+span.Width > width {
			break
		}
		tui.DrawText(screen, span.X, y, span.Width, " "+bar.Menus[i].Title+" ", style)
	}

	if title == "" {
		return
	}
	spans := bar.TitleSpans()
	used := 1
	if n := len(spans); n > 0 {
		used = spans[n-1].X + spans[n-1].Width
	}
	tw := tui.TextWidth(title)
	if x := width - tw - 1; x > used+1 {
		tui.DrawText(screen, x, y, tw, title, barStyle)
	}
}

// Dropdown draws the open menu's items in a box under its title.
func Dropdown(screen tcell.Screen, y int, bar *menu.Bar, th *theme.Theme) {
	if !bar.IsOpen() {
		return
	}
	idx := bar.OpenIndex()
	m := bar.Menus[idx]
	span := bar.TitleSpans()[idx]
	inner := bar.DropdownWidth(idx)
	boxW, boxH := inner+2, len(m.Items)+2
	x := dropdownX(screen, span.X, boxW)

	menuStyle := th.GetStyle("Menu")
	tui.DrawBox(screen, x, y, boxW, boxH, menuStyle)

	for i, item := range m.Items {
		row := y + 1 + i
		if item.IsSeparator() {
			sep := th.GetStyle("MenuSeparator")
			for cx := x + 1; cx < x+boxW-1; cx++ {
				screen.SetContent(cx, row, tcell.RuneHLine, nil, sep)
			}
			continue
		}
		style := menuStyle
		shortcutStyle := th.GetStyle("MenuShortcut")
		if i == bar.SelectedIndex() {
			style = th.GetStyle("MenuSelected")
			shortcutStyle = style
		}
		tui.Fill(screen, x+1, row, inner, 1, style)
		tui.DrawText(screen, x+2, row, inner-2, item.Label, style)
		if item.Shortcut != "" {
			w := tui.TextWidth(item.Shortcut)
			tui.DrawText(screen, x+inner-w, row, w, item.Shortcut, shortcutStyle)
		}
	}
}

// DropdownHit maps a click at (cx, cy) to an item of the open menu drawn at row y.
func DropdownHit(screen tcell.Screen, y int, bar *menu.Bar, cx, cy int) (int, bool) {
	if !bar.IsOpen() {
		return -1, false
	}
	idx := bar.OpenIndex()
	span := bar.TitleSpans()[idx]
	boxW := bar.DropdownWidth(idx) + 2
	x := dropdownX(screen, span.X, boxW)
	item := cy - y - 1
	if cx <= x || cx >= x+boxW-1 || item < 0 || item >= len(bar.Menus[idx].Items) {
		return -1, false
	}
	return item, true
}

// dropdownX keeps a dropdown of boxW cells on screen, preferring titleX.
func dropdownX(screen tcell.Screen, titleX, boxW int) int {
	sw, _ := screen.Size()
	x := titleX
	if x+boxW > sw {
		x = sw - boxW
	}
	if x < 0 {
		x = 0
	}
	return x
}
