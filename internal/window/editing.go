package window

import (
	"fmt"

	"github.com/bethropolis/textwriter/internal/event"
)

// notifyEdit fires DocumentModified on the first edit after a clean state.
func (w *Window) notifyEdit(wasModified bool) {
	if !wasModified && w.session.IsModified() {
		w.dispatch(event.TypeDocumentModified, w.documentData())
	}
}

// InsertText inserts text at the cursor and moves the cursor past it.
func (w *Window) InsertText(text string) error {
	if text == "" {
		return nil
	}
	buf := w.session.Buffer()
	wasModified := buf.IsModified()

	end, err := buf.Insert(w.Cursor, text)
	if err != nil {
		return fmt.Errorf("insert failed: %w", err)
	}
	w.Cursor = end
	w.ScrollToCursor()
	w.notifyEdit(wasModified)
	return nil
}

// InsertRune inserts a single rune at the cursor.
func (w *Window) InsertRune(r rune) error {
	return w.InsertText(string(r))
}

// InsertNewLine splits the line at the cursor.
func (w *Window) InsertNewLine() error {
	return w.InsertText("\n")
}

// InsertTab inserts a literal tab; rendering expands it to TabWidth.
func (w *Window) InsertTab() error {
	return w.InsertText("\t")
}

// DeleteBackward removes the rune before the cursor, joining lines at column 0.
func (w *Window) DeleteBackward() error {
	buf := w.session.Buffer()
	start := w.Cursor
	end := w.Cursor

	if w.Cursor.Col > 0 {
		start.Col--
	} else if w.Cursor.Line > 0 {
		start.Line--
		prev, err := buf.Line(start.Line)
		if err != nil {
			return fmt.Errorf("cannot get previous line %d: %w", start.Line, err)
		}
		start.Col = len(prev)
	} else {
		return nil
	}

	wasModified := buf.IsModified()
	if err := buf.Delete(start, end); err != nil {
		return fmt.Errorf("buffer delete failed: %w", err)
	}
	w.Cursor = start
	w.ScrollToCursor()
	w.notifyEdit(wasModified)
	return nil
}

// DeleteForward removes the rune under the cursor, joining with the next line at end of line.
func (w *Window) DeleteForward() error {
	buf := w.session.Buffer()
	start := w.Cursor
	end := w.Cursor

	line, err := buf.Line(w.Cursor.Line)
	if err != nil {
		return fmt.Errorf("cannot get current line %d: %w", w.Cursor.Line, err)
	}
	if w.Cursor.Col < len(line) {
		end.Col++
	} else if w.Cursor.Line < buf.LineCount()-1 {
		end.Line++
		end.Col = 0
	} else {
		return nil
	}

	wasModified := buf.IsModified()
	if err := buf.Delete(start, end); err != nil {
		return fmt.Errorf("buffer delete failed: %w", err)
	}
	w.ScrollToCursor()
	w.notifyEdit(wasModified)
	return nil
}
