package window

import (
	"github.com/bethropolis/textwriter/internal/types"
	"github.com/rivo/uniseg"
)

// SetViewSize sets the text area size in cells.
func (w *Window) SetViewSize(width, height int) {
	w.viewWidth = width
	w.viewHeight = height
	w.ScrollToCursor()
}

// ViewSize returns the text area size set by SetViewSize.
func (w *Window) ViewSize() (int, int) {
	return w.viewWidth, w.viewHeight
}

// SetCursor moves the cursor to pos, clamped to the text.
func (w *Window) SetCursor(pos types.Position) {
	w.Cursor = w.session.Buffer().ClampPosition(pos)
	w.ScrollToCursor()
}

// MoveCursor moves by whole lines and runes. Horizontal moves past either end
// of a line continue onto the neighbouring line.
func (w *Window) MoveCursor(deltaLine, deltaCol int) {
	buf := w.session.Buffer()
	pos := w.Cursor
	pos.Line += deltaLine
	pos = buf.ClampPosition(pos)

	if deltaCol != 0 {
		offset := buf.Offset(pos) + deltaCol
		if offset < 0 {
			offset = 0
		}
		pos = buf.PositionAt(offset)
	}
	w.Cursor = pos
	w.ScrollToCursor()
}

// PageMove moves the cursor by whole screens.
func (w *Window) PageMove(deltaPages int) {
	if w.viewHeight <= 0 {
		return
	}
	w.MoveCursor(deltaPages*w.viewHeight, 0)
}

// Home moves to column 0.
func (w *Window) Home() {
	w.Cursor.Col = 0
	w.ScrollToCursor()
}

// End moves past the last rune of the line.
func (w *Window) End() {
	line, err := w.session.Buffer().Line(w.Cursor.Line)
	if err != nil {
		return
	}
	w.Cursor.Col = len(line)
	w.ScrollToCursor()
}

// CursorScreenCol is the cursor's screen column relative to the line start.
func (w *Window) CursorScreenCol() int {
	line, err := w.session.Buffer().Line(w.Cursor.Line)
	if err != nil {
		return 0
	}
	return VisualCol(line, w.Cursor.Col, w.TabWidth)
}

// ScrollToCursor adjusts the viewport so the cursor stays visible, keeping
// ScrollOff lines of context above and below where the view allows.
func (w *Window) ScrollToCursor() {
	if w.viewHeight <= 0 || w.viewWidth <= 0 {
		return
	}

	scrollOff := w.ScrollOff
	if scrollOff*2 >= w.viewHeight {
		scrollOff = (w.viewHeight - 1) / 2
	}

	if w.Cursor.Line < w.ViewportY+scrollOff {
		w.ViewportY = w.Cursor.Line - scrollOff
	} else if w.Cursor.Line >= w.ViewportY+w.viewHeight-scrollOff {
		w.ViewportY = w.Cursor.Line - w.viewHeight + scrollOff + 1
	}
	if maxTop := w.session.Buffer().LineCount() - 1; w.ViewportY > maxTop {
		w.ViewportY = maxTop
	}
	if w.ViewportY < 0 {
		w.ViewportY = 0
	}

	col := w.CursorScreenCol()
	if col < w.ViewportX {
		w.ViewportX = col
	} else if col >= w.ViewportX+w.viewWidth {
		w.ViewportX = col - w.viewWidth + 1
	}
}

// VisualCol converts a rune column into a screen column. Tabs advance to the
// next multiple of tabWidth; everything else is measured per grapheme cluster.
func VisualCol(line []rune, col, tabWidth int) int {
	visual, idx := 0, 0
	gr := uniseg.NewGraphemes(string(line))
	for idx < col && gr.Next() {
		runes := gr.Runes()
		visual += ClusterWidth(runes, gr.Width(), visual, tabWidth)
		idx += len(runes)
	}
	return visual
}

// ClusterWidth is the number of cells a grapheme cluster takes when drawn at
// screen column at. width is the cluster's width as reported by uniseg.
func ClusterWidth(runes []rune, width, at, tabWidth int) int {
	switch {
	case runes[0] == '\t':
		if tabWidth <= 0 {
			tabWidth = 1
		}
		return tabWidth - at%tabWidth
	case runes[0] == '\r':
		return 0
	case width <= 0:
		return 1
	}
	return width
}

// ClickAt moves the cursor to the text under cell (x, y) of the text area.
func (w *Window) ClickAt(x, y int) {
	buf := w.session.Buffer()
	line := w.ViewportY + y
	if line >= buf.LineCount() {
		line = buf.LineCount() - 1
	}
	if line < 0 {
		line = 0
	}
	runes, err := buf.Line(line)
	if err != nil {
		return
	}
	w.SetCursor(types.Position{Line: line, Col: RuneColAt(runes, w.ViewportX+x, w.TabWidth)})
}

// RuneColAt is the inverse of VisualCol: the rune column of the cluster that
// covers screen column visual, or the line length past its end.
func RuneColAt(line []rune, visual, tabWidth int) int {
	at, idx := 0, 0
	gr := uniseg.NewGraphemes(string(line))
	for gr.Next() {
		runes := gr.Runes()
		cw := ClusterWidth(runes, gr.Width(), at, tabWidth)
		if at+cw > visual {
			return idx
		}
		at += cw
		idx += len(runes)
	}
	return idx
}
