package dialog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/textwriter/internal/logger"
	"github.com/bethropolis/textwriter/internal/theme"
	"github.com/bethropolis/textwriter/internal/tui"
	"github.com/gdamore/tcell/v2"
)

const pathHint = "Tab complete | Enter accept | Esc cancel"

// PathPrompt asks for a file path. It stands in for a file chooser: the
// field starts at a directory and Tab completes against the filesystem.
type PathPrompt struct {
	title string
	input field
	hint  string

	// ReadDir lists a directory for completion. Defaults to os.ReadDir.
	ReadDir func(dir string) ([]os.DirEntry, error)

	OnAccept func(path string)
	OnCancel func()
}

// NewPathPrompt creates a prompt seeded with initial, typically a directory
// ending in a separator or the document's current path.
func NewPathPrompt(title, initial string, onAccept func(string), onCancel func()) *PathPrompt {
	return &PathPrompt{
		title:    title,
		input:    newField(initial),
		hint:     pathHint,
		ReadDir:  os.ReadDir,
		OnAccept: onAccept,
		OnCancel: onCancel,
	}
}

func (p *PathPrompt) Title() string { return p.title }

// Value is the text currently in the field.
func (p *PathPrompt) Value() string { return p.input.String() }

// Hint is the line shown under the field: completion candidates or key help.
func (p *PathPrompt) Hint() string { return p.hint }

func (p *PathPrompt) HandleKey(ev *tcell.EventKey) bool {
	switch {
	case isCancel(ev):
		p.cancel()
		return true
	case isAccept(ev):
		path := strings.TrimSpace(p.input.String())
		if path == "" {
			p.cancel()
			return true
		}
		path = expandHome(path)
		logger.DebugTagf("dialog", "PathPrompt '%s': accepted '%s'", p.title, path)
		if p.OnAccept != nil {
			p.OnAccept(path)
		}
		return true
	case ev.Key() == tcell.KeyTab:
		p.complete()
		return false
	}
	if p.input.HandleKey(ev) {
		p.hint = pathHint
	}
	return false
}

func (p *PathPrompt) cancel() {
	logger.DebugTagf("dialog", "PathPrompt '%s': cancelled", p.title)
	if p.OnCancel != nil {
		p.OnCancel()
	}
}

// complete extends the last path element to the longest prefix shared by the
// matching directory entries. Directories get a trailing separator.
func (p *PathPrompt) complete() {
	text := p.input.String()
	sep := strings.LastIndex(text, string(os.PathSeparator))
	head, prefix := text[:sep+1], text[sep+1:]

	dir := expandHome(head)
	if dir == "" {
		dir = "."
	}
	entries, err := p.ReadDir(dir)
	if err != nil {
		logger.DebugTagf("dialog", "PathPrompt: cannot read '%s': %v", dir, err)
		p.hint = "Cannot read " + dir
		return
	}

	var names []string
	isDir := make(map[string]bool)
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		names = append(names, name)
		isDir[name] = e.IsDir()
	}
	sort.Strings(names)

	switch len(names) {
	case 0:
		p.hint = "No match"
	case 1:
		done := head + names[0]
		if isDir[names[0]] {
			done += string(os.PathSeparator)
		}
		p.input.Set(done)
		p.hint = pathHint
	default:
		p.input.Set(head + commonPrefix(names))
		p.hint = strings.Join(names, "  ")
	}
}

func commonPrefix(names []string) string {
	prefix := names[0]
	for _, n := range names[1:] {
		for !strings.HasPrefix(n, prefix) {
			_, size := utf8.DecodeLastRuneInString(prefix)
			prefix = prefix[:len(prefix)-size]
		}
	}
	return prefix
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:]) + trailingSep(path)
}

func trailingSep(path string) string {
	if len(path) > 1 && strings.HasSuffix(path, string(os.PathSeparator)) {
		return string(os.PathSeparator)
	}
	return ""
}

func (p *PathPrompt) Draw(screen tcell.Screen, th *theme.Theme) {
	sw, _ := screen.Size()
	x, y, w, _ := frame(screen, th, p.title, min(sw-4, 72), 5)
	p.input.Draw(screen, x, y, w, th.GetStyle("DialogInput"))
	tui.DrawText(screen, x, y+2, w, p.hint, th.GetStyle("DialogHint"))
}
