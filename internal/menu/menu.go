// Package menu models the menu bar: its menus, their items, and which one is
// open and highlighted. Drawing lives in the render package.
package menu

import (
	"github.com/rivo/uniseg"
)

// Item is one entry of a dropdown. An item with an empty Action is a separator.
type Item struct {
	Label    string
	Action   string // command registry name
	Shortcut string // display only
}

// Separator returns a separator item.
func Separator() Item { return Item{} }

// IsSeparator reports whether the item is a separator.
func (i Item) IsSeparator() bool { return i.Action == "" }

// Menu is one titled dropdown.
type Menu struct {
	Title string
	Items []Item
}

// TitleSpan is the screen column range [X, X+Width) a title occupies.
type TitleSpan struct {
	X     int
	Width int
}

// Bar is the menu bar and its navigation state.
type Bar struct {
	Menus []Menu

	open     int // -1 when closed
	selected int
}

// NewBar returns a closed bar over menus.
func NewBar(menus ...Menu) *Bar {
	return &Bar{Menus: menus, open: -1}
}

// IsOpen reports whether a dropdown is showing.
func (b *Bar) IsOpen() bool { return b.open >= 0 }

// OpenIndex returns the open menu, or -1.
func (b *Bar) OpenIndex() int { return b.open }

// SelectedIndex returns the highlighted item of the open menu.
func (b *Bar) SelectedIndex() int { return b.selected }

// Open shows menu i with its first selectable item highlighted.
func (b *Bar) Open(i int) {
	if i < 0 || i >= len(b.Menus) {
		return
	}
	b.open = i
	b.selected = -1
	b.moveSelection(1)
}

// Close hides any open dropdown.
func (b *Bar) Close() {
	b.open = -1
	b.selected = 0
}

// Left opens the previous menu, wrapping around.
func (b *Bar) Left() {
	if !b.IsOpen() {
		return
	}
	b.Open((b.open - 1 + len(b.Menus)) % len(b.Menus))
}

// Right opens the next menu, wrapping around.
func (b *Bar) Right() {
	if !b.IsOpen() {
		return
	}
	b.Open((b.open + 1) % len(b.Menus))
}

// Up moves the highlight to the previous selectable item.
func (b *Bar) Up() { b.moveSelection(-1) }

// Down moves the highlight to the next selectable item.
func (b *Bar) Down() { b.moveSelection(1) }

func (b *Bar) moveSelection(dir int) {
	if !b.IsOpen() {
		return
	}
	items := b.Menus[b.open].Items
	n := len(items)
	if n == 0 {
		return
	}
	i := b.selected
	for step := 0; step < n; step++ {
		i = (i + dir + n) % n
		if !items[i].IsSeparator() {
			b.selected = i
			return
		}
	}
}

// Selected returns the highlighted item of the open menu.
func (b *Bar) Selected() (Item, bool) {
	if !b.IsOpen() {
		return Item{}, false
	}
	items := b.Menus[b.open].Items
	if b.selected < 0 || b.selected >= len(items) || items[b.selected].IsSeparator() {
		return Item{}, false
	}
	return items[b.selected], true
}

// Select highlights item i of the open menu. Separators are rejected.
func (b *Bar) Select(i int) bool {
	if !b.IsOpen() {
		return false
	}
	items := b.Menus[b.open].Items
	if i < 0 || i >= len(items) || items[i].IsSeparator() {
		return false
	}
	b.selected = i
	return true
}

// TitleSpans lays the titles out from column 1, each padded by one space on
// either side.
func (b *Bar) TitleSpans() []TitleSpan {
	spans := make([]TitleSpan, len(b.Menus))
	x := 1
	for i, m := range b.Menus {
		w := uniseg.StringWidth(m.Title) + 2
		spans[i] = TitleSpan{X: x, Width: w}
		x += w
	}
	return spans
}

// Hit returns the menu whose title covers column x.
func (b *Bar) Hit(x int) (int, bool) {
	for i, s := range b.TitleSpans() {
		if x >= s.X && x < s.X+s.Width {
			return i, true
		}
	}
	return -1, false
}

// DropdownWidth is the inner width needed for menu i's labels and shortcuts.
func (b *Bar) DropdownWidth(i int) int {
	width := 0
	for _, item := range b.Menus[i].Items {
		w := uniseg.StringWidth(item.Label)
		if item.Shortcut != "" {
			w += 2 + uniseg.StringWidth(item.Shortcut)
		}
		if w > width {
			width = w
		}
	}
	return width + 2
}

// Default builds the application menus.
func Default() *Bar {
	return NewBar(
		Menu{Title: "File", Items: []Item{
			{Label: "New", Action: "file.new", Shortcut: "Ctrl+N"},
			{Label: "New Window", Action: "file.new_window", Shortcut: "Ctrl+T"},
			{Label: "Open...", Action: "file.open", Shortcut: "Ctrl+O"},
			{Label: "Save", Action: "file.save", Shortcut: "Ctrl+S"},
			{Label: "Save As...", Action: "file.save_as", Shortcut: "Ctrl+A"},
			Separator(),
			{Label: "Close Window", Action: "file.close_window", Shortcut: "Ctrl+W"},
			{Label: "Exit", Action: "file.exit", Shortcut: "Ctrl+Q"},
		}},
		Menu{Title: "Edit", Items: []Item{
			{Label: "Copy All", Action: "edit.copy_all", Shortcut: "Ctrl+K"},
			{Label: "Paste", Action: "edit.paste", Shortcut: "Ctrl+V"},
			Separator(),
			{Label: "Command Line", Action: "command.prompt", Shortcut: "Ctrl+P"},
		}},
		Menu{Title: "Font", Items: []Item{
			{Label: "Change Font", Action: "font.change", Shortcut: "Ctrl+F"},
			{Label: "Change Font Size", Action: "font.size", Shortcut: "Alt+Ctrl+F"},
		}},
		Menu{Title: "Window", Items: []Item{
			{Label: "Next Window", Action: "window.next", Shortcut: "F6"},
			{Label: "Previous Window", Action: "window.prev", Shortcut: "Shift+F6"},
		}},
		Menu{Title: "Help", Items: []Item{
			{Label: "About TextWriter", Action: "help.about", Shortcut: "F1"},
		}},
	)
}
