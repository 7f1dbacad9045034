package tui

import (
	"testing"

	"github.com/bethropolis/textwriter/internal/theme"
	"github.com/gdamore/tcell/v2"
)

func newSim(t *testing.T, w, h int) *TUI {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	ui, err := NewWithScreen(s, theme.Default())
	if err != nil {
		t.Fatal(err)
	}
	s.SetSize(w, h)
	t.Cleanup(ui.Close)
	return ui
}

func cellRune(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestDrawTextClips(t *testing.T) {
	ui := newSim(t, 10, 1)
	s := ui.GetScreen()
	used := DrawText(s, 0, 0, 4, "日本語", tcell.StyleDefault)
	if used != 4 {
		t.Errorf("used = %d, want 4", used)
	}
	if cellRune(s, 0, 0) != '日' || cellRune(s, 2, 0) != '本' {
		t.Error("wide runes not placed on their cells")
	}
}

func TestDrawBox(t *testing.T) {
	ui := newSim(t, 10, 5)
	s := ui.GetScreen()
	DrawBox(s, 1, 1, 5, 3, tcell.StyleDefault)
	if cellRune(s, 1, 1) != tcell.RuneULCorner || cellRune(s, 5, 3) != tcell.RuneLRCorner {
		t.Error("corners missing")
	}
	if cellRune(s, 3, 1) != tcell.RuneHLine || cellRune(s, 1, 2) != tcell.RuneVLine {
		t.Error("edges missing")
	}
}

func TestCentered(t *testing.T) {
	ui := newSim(t, 20, 10)
	x, y, w, h := Centered(ui.GetScreen(), 10, 4)
	if x != 5 || y != 3 || w != 10 || h != 4 {
		t.Errorf("Centered = %d,%d %dx%d", x, y, w, h)
	}
	_, _, w, h = Centered(ui.GetScreen(), 50, 50)
	if w != 20 || h != 10 {
		t.Errorf("oversized box not shrunk: %dx%d", w, h)
	}
}
