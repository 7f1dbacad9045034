// Package render draws the application's parts onto a tcell screen.
package render

import (
	"github.com/bethropolis/textwriter/internal/font"
	"github.com/bethropolis/textwriter/internal/theme"
	"github.com/bethropolis/textwriter/internal/types"
	"github.com/bethropolis/textwriter/internal/window"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Rect is a screen region.
type Rect struct {
	X, Y, Width, Height int
}

// styleCache resolves descriptors to cell styles once per frame.
type styleCache struct {
	base   tcell.Style
	th     *theme.Theme
	styles map[string]tcell.Style
}

func (c *styleCache) get(desc string) tcell.Style {
	if s, ok := c.styles[desc]; ok {
		return s
	}
	s := font.Parse(desc).Style(c.base, c.th)
	c.styles[desc] = s
	return s
}

// Document draws the visible part of w's text into area. Each cell takes the
// style of the most recent font span covering it.
func Document(screen tcell.Screen, area Rect, w *window.Window, th *theme.Theme) {
	base := th.GetStyle("Default")
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			screen.SetContent(x, y, ' ', nil, base)
		}
	}
	if area.Width <= 0 || area.Height <= 0 {
		return
	}

	buf := w.Session().Buffer()
	lines := buf.Lines()
	docLen := buf.Len()
	cache := &styleCache{base: base, th: th, styles: make(map[string]tcell.Style)}
	fallback := cache.get(w.Font())

	for row := 0; row < area.Height; row++ {
		lineIdx := w.ViewportY + row
		if lineIdx >= len(lines) {
			break
		}
		screenY := area.Y + row
		lineOffset := buf.Offset(types.Position{Line: lineIdx})

		visualX := 0
		runeIdx := 0
		gr := uniseg.NewGraphemes(string(lines[lineIdx]))
		for gr.Next() {
			runes := gr.Runes()
			width := window.ClusterWidth(runes, gr.Width(), visualX, w.TabWidth)
			screenX := area.X + visualX - w.ViewportX

			if width > 0 && visualX+width > w.ViewportX {
				style := fallback
				if span, ok := w.Styles().EffectiveAt(lineOffset+runeIdx, docLen); ok {
					style = cache.get(span.Descriptor)
				}
				drawCluster(screen, screenX, screenY, area, runes, width, style)
			}

			visualX += width
			runeIdx += len(runes)
			if visualX-w.ViewportX >= area.Width {
				break
			}
		}
	}
}

func drawCluster(screen tcell.Screen, x, y int, area Rect, runes []rune, width int, style tcell.Style) {
	right := area.X + area.Width
	if runes[0] == '\t' || x < area.X {
		// Tabs and clusters cut by the left edge become blank cells.
		for i := 0; i < width; i++ {
			if cx := x + i; cx >= area.X && cx < right {
				screen.SetContent(cx, y, ' ', nil, style)
			}
		}
		return
	}
	if x+width > right {
		for cx := x; cx < right; cx++ {
			screen.SetContent(cx, y, ' ', nil, style)
		}
		return
	}
	main := runes[0]
	if main < ' ' {
		main = '?'
	}
	screen.SetContent(x, y, main, runes[1:], style)
	for i := 1; i < width; i++ {
		screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// Cursor places the terminal cursor for w, hiding it when it is scrolled out of area.
func Cursor(screen tcell.Screen, area Rect, w *window.Window) {
	x := area.X + w.CursorScreenCol() - w.ViewportX
	y := area.Y + w.Cursor.Line - w.ViewportY
	if x < area.X || x >= area.X+area.Width || y < area.Y || y >= area.Y+area.Height {
		screen.HideCursor()
		return
	}
	screen.ShowCursor(x, y)
}
