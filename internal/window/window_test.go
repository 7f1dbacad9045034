package window

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/textwriter/internal/document"
	"github.com/bethropolis/textwriter/internal/event"
	"github.com/bethropolis/textwriter/internal/types"
)

func newTestWindow(t *testing.T) (*Window, *[]event.Type) {
	t.Helper()
	events := event.NewManager()
	var seen []event.Type
	for _, typ := range []event.Type{
		event.TypeDocumentNew, event.TypeDocumentLoaded, event.TypeDocumentSaved,
		event.TypeDocumentModified, event.TypeStyleApplied,
	} {
		events.Subscribe(typ, func(e event.Event) bool {
			seen = append(seen, e.Type)
			return false
		})
	}
	w := New(Options{Events: events, TabWidth: 4, DefaultFont: "Monospace 12"})
	w.SetViewSize(20, 5)
	return w, &seen
}

func TestWindowsAreIndependent(t *testing.T) {
	a := New(Options{})
	b := New(Options{})
	if a.ID == b.ID {
		t.Error("windows share an ID")
	}
	if a.Session() == b.Session() || a.Styles() == b.Styles() {
		t.Fatal("windows share state")
	}
	a.InsertText("only in a")
	a.ApplyFont("Serif 10")
	if b.Session().Content() != "" || b.Styles().Len() != 0 {
		t.Error("edit in one window leaked into another")
	}
}

func TestTypingAndDeleting(t *testing.T) {
	w, seen := newTestWindow(t)
	for _, r := range "helo" {
		if err := w.InsertRune(r); err != nil {
			t.Fatal(err)
		}
	}
	w.MoveCursor(0, -1)
	w.InsertRune('l')
	w.End()
	w.InsertNewLine()
	w.InsertText("world")

	if got := w.Session().Content(); got != "hello\nworld" {
		t.Fatalf("content = %q", got)
	}
	if w.Cursor != (types.Position{Line: 1, Col: 5}) {
		t.Errorf("cursor = %+v", w.Cursor)
	}

	w.Home()
	w.DeleteBackward()
	if got := w.Session().Content(); got != "helloworld" {
		t.Errorf("after join: %q", got)
	}
	w.DeleteForward()
	if got := w.Session().Content(); got != "hellorld" {
		t.Errorf("after delete forward: %q", got)
	}

	modified := 0
	for _, e := range *seen {
		if e == event.TypeDocumentModified {
			modified++
		}
	}
	if modified != 1 {
		t.Errorf("DocumentModified fired %d times, want 1", modified)
	}
	if w.Title() != "Untitled [+]" {
		t.Errorf("Title = %q", w.Title())
	}
}

func TestDeleteAtEdgesIsNoop(t *testing.T) {
	w := New(Options{})
	if err := w.DeleteBackward(); err != nil {
		t.Fatal(err)
	}
	if err := w.DeleteForward(); err != nil {
		t.Fatal(err)
	}
	if w.Session().IsModified() {
		t.Error("no-op delete marked document modified")
	}
}

func TestMoveCursorWrapsLines(t *testing.T) {
	w := New(Options{})
	w.InsertText("ab\ncd")
	w.SetCursor(types.Position{Line: 1, Col: 0})
	w.MoveCursor(0, -1)
	if w.Cursor != (types.Position{Line: 0, Col: 2}) {
		t.Errorf("left from line start: %+v", w.Cursor)
	}
	w.MoveCursor(0, 1)
	if w.Cursor != (types.Position{Line: 1, Col: 0}) {
		t.Errorf("right from line end: %+v", w.Cursor)
	}
	w.MoveCursor(-5, 0)
	if w.Cursor.Line != 0 {
		t.Errorf("up past top: %+v", w.Cursor)
	}
}

func TestScrollToCursor(t *testing.T) {
	w := New(Options{})
	w.ScrollOff = 0
	w.SetViewSize(10, 3)
	w.InsertText("0\n1\n2\n3\n4\n5")
	if w.ViewportY != 3 {
		t.Errorf("ViewportY = %d, want 3", w.ViewportY)
	}
	w.SetCursor(types.Position{})
	if w.ViewportY != 0 {
		t.Errorf("ViewportY after jump to top = %d", w.ViewportY)
	}
	w.InsertText("abcdefghijklmno")
	if w.ViewportX != 6 {
		t.Errorf("ViewportX = %d, want 6", w.ViewportX)
	}
}

func TestOpenResetsCursorAndRangedSpans(t *testing.T) {
	w, seen := newTestWindow(t)
	p := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(p, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	w.InsertText("draft text")
	w.ApplyFont("Serif 14")
	w.ApplyFontRange("Sans Bold 10", 0, 3)

	if err := w.Open(p); err != nil {
		t.Fatal(err)
	}
	if w.Cursor != (types.Position{}) {
		t.Errorf("cursor = %+v", w.Cursor)
	}
	if w.Styles().Len() != 1 || w.Font() != "Serif 14" {
		t.Errorf("spans after open: %+v", w.Styles().Spans())
	}
	if w.Title() != "a.txt" {
		t.Errorf("Title = %q", w.Title())
	}
	last := (*seen)[len(*seen)-1]
	if last != event.TypeDocumentLoaded {
		t.Errorf("last event = %v", last)
	}
}

func TestOpenFailureKeepsEverything(t *testing.T) {
	w := New(Options{})
	w.InsertText("keep")
	w.ApplyFontRange("Serif", 0, 2)
	err := w.Open(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, document.ErrRead) {
		t.Fatalf("err = %v", err)
	}
	if w.Session().Content() != "keep" || w.Styles().Len() != 1 {
		t.Error("failed open changed the window")
	}
	if w.Cursor != (types.Position{Line: 0, Col: 4}) {
		t.Errorf("cursor moved to %+v", w.Cursor)
	}
}

func TestNewApplySaveAsWritesNoStyling(t *testing.T) {
	w, _ := newTestWindow(t)
	p := filepath.Join(t.TempDir(), "b.txt")
	w.New()
	if _, ok := w.ApplyFont("Mono 12"); !ok {
		t.Fatal("ApplyFont failed")
	}
	if err := w.SaveAs(p); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("file = %q, want empty", data)
	}
}

func TestSaveUnbound(t *testing.T) {
	w := New(Options{})
	if err := w.Save(); !errors.Is(err, document.ErrNoBackingPath) {
		t.Errorf("err = %v", err)
	}
}

func TestApplyFontSize(t *testing.T) {
	w := New(Options{DefaultFont: "Monospace 12"})
	if _, ok := w.ApplyFontSize(0); ok {
		t.Error("size 0 accepted")
	}
	w.ApplyFontSize(18)
	if w.Font() != "Monospace 18" {
		t.Errorf("Font = %q", w.Font())
	}
	w.ApplyFont("Serif Bold 10")
	w.ApplyFontSize(24)
	if w.Font() != "Serif Bold 24" {
		t.Errorf("Font = %q", w.Font())
	}
	if w.Styles().Len() != 3 {
		t.Errorf("spans = %d, want 3", w.Styles().Len())
	}
}

func TestEffectiveFontAt(t *testing.T) {
	w := New(Options{DefaultFont: "Monospace 12"})
	w.InsertText("abcdef")
	if got := w.EffectiveFontAt(types.Position{Col: 1}); got != "Monospace 12" {
		t.Errorf("default = %q", got)
	}
	w.ApplyFontRange("Serif 9", 2, 4)
	if got := w.EffectiveFontAt(types.Position{Col: 3}); got != "Serif 9" {
		t.Errorf("ranged = %q", got)
	}
	if got := w.EffectiveFontAt(types.Position{Col: 5}); got != "Monospace 12" {
		t.Errorf("outside range = %q", got)
	}
}

func TestVisualCol(t *testing.T) {
	line := []rune("a\tb日c")
	cases := []struct{ col, want int }{
		{0, 0}, {1, 1}, {2, 4}, {3, 5}, {4, 7}, {5, 8},
	}
	for _, c := range cases {
		if got := VisualCol(line, c.col, 4); got != c.want {
			t.Errorf("VisualCol(%d) = %d, want %d", c.col, got, c.want)
		}
	}
}

func TestClickAt(t *testing.T) {
	w := New(Options{TabWidth: 4})
	w.SetViewSize(20, 5)
	w.InsertText("a\tb日c\nshort")
	tests := []struct {
		x, y int
		want types.Position
	}{
		{0, 0, types.Position{Line: 0, Col: 0}},
		{2, 0, types.Position{Line: 0, Col: 1}}, // inside the tab
		{4, 0, types.Position{Line: 0, Col: 2}},
		{6, 0, types.Position{Line: 0, Col: 3}}, // second cell of the wide rune
		{15, 0, types.Position{Line: 0, Col: 5}},
		{3, 1, types.Position{Line: 1, Col: 3}},
		{0, 4, types.Position{Line: 1, Col: 0}}, // below the text
	}
	for _, tt := range tests {
		w.ClickAt(tt.x, tt.y)
		if w.Cursor != tt.want {
			t.Errorf("ClickAt(%d, %d) = %+v, want %+v", tt.x, tt.y, w.Cursor, tt.want)
		}
	}
}
