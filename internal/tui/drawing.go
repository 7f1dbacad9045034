// internal/tui/drawing.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// DrawText draws text from (x, y), clipped to maxWidth cells. It returns the
// number of cells used.
func DrawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	used := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if w <= 0 {
			continue
		}
		if used+w > maxWidth {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x+used, y, runes[0], runes[1:], style)
		for i := 1; i < w; i++ {
			screen.SetContent(x+used+i, y, ' ', nil, style)
		}
		used += w
	}
	return used
}

// TextWidth is the number of cells text occupies.
func TextWidth(text string) int {
	return uniseg.StringWidth(text)
}

// Fill paints the rectangle with spaces in style.
func Fill(screen tcell.Screen, x, y, width, height int, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// DrawBox fills the rectangle and draws a single-line border around it.
func DrawBox(screen tcell.Screen, x, y, width, height int, style tcell.Style) {
	if width < 2 || height < 2 {
		return
	}
	Fill(screen, x, y, width, height, style)
	right, bottom := x+width-1, y+height-1
	for col := x + 1; col < right; col++ {
		screen.SetContent(col, y, tcell.RuneHLine, nil, style)
		screen.SetContent(col, bottom, tcell.RuneHLine, nil, style)
	}
	for row := y + 1; row < bottom; row++ {
		screen.SetContent(x, row, tcell.RuneVLine, nil, style)
		screen.SetContent(right, row, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	screen.SetContent(right, y, tcell.RuneURCorner, nil, style)
	screen.SetContent(x, bottom, tcell.RuneLLCorner, nil, style)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// Centered returns the origin of a width x height box centred on the screen,
// with the size shrunk to fit.
func Centered(screen tcell.Screen, width, height int) (x, y, w, h int) {
	sw, sh := screen.Size()
	if width > sw {
		width = sw
	}
	if height > sh {
		height = sh
	}
	return (sw - width) / 2, (sh - height) / 2, width, height
}
