// Package dialog implements the modal boxes drawn over the editor: the file
// path prompt used by Open and Save As, the font picker, and plain messages.
package dialog

import (
	"github.com/bethropolis/textwriter/internal/theme"
	"github.com/bethropolis/textwriter/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// Dialog is a modal box. HandleKey returns true once the dialog is finished
// and should be dismissed; its callbacks have run by then.
type Dialog interface {
	Title() string
	HandleKey(ev *tcell.EventKey) bool
	Draw(screen tcell.Screen, th *theme.Theme)
}

// frame draws a centred box with the title set into its top border and
// returns the inner area.
func frame(screen tcell.Screen, th *theme.Theme, title string, width, height int) (x, y, w, h int) {
	bx, by, bw, bh := tui.Centered(screen, width, height)
	tui.DrawBox(screen, bx, by, bw, bh, th.GetStyle("Dialog"))
	if title != "" && bw > 4 {
		tui.DrawText(screen, bx+2, by, bw-4, " "+title+" ", th.GetStyle("DialogTitle"))
	}
	return bx + 2, by + 1, bw - 4, bh - 2
}

func isCancel(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape
}

func isAccept(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEnter
}
