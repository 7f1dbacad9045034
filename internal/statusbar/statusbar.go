// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/textwriter/internal/theme"
	"github.com/bethropolis/textwriter/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// MessageKind selects the style of a temporary message.
type MessageKind int

const (
	KindInfo MessageKind = iota
	KindError
	KindCommand // the ":" line being typed; never expires
)

// Config defines the behaviour of the status bar.
type Config struct {
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{MessageTimeout: 4 * time.Second}
}

// StatusBar is the bottom line: document state, or a temporary message.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	fileName    string
	isModified  bool
	cursorPos   types.Position
	font        string
	windowIndex int
	windowCount int
	mode        string

	tempMessage     string
	tempKind        MessageKind
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetFileInfo updates the document name and modified marker.
func (sb *StatusBar) SetFileInfo(name string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.fileName = name
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetFont updates the font descriptor shown.
func (sb *StatusBar) SetFont(desc string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.font = desc
}

// SetWindowInfo updates the "window i/n" indicator. index is zero-based.
func (sb *StatusBar) SetWindowInfo(index, count int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.windowIndex = index
	sb.windowCount = count
}

// SetMode updates the displayed input mode. Empty hides it.
func (sb *StatusBar) SetMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.mode = mode
}

// SetTemporaryMessage shows an informational message until it times out.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.setMessage(KindInfo, fmt.Sprintf(format, args...))
}

// SetError shows an error message until it times out.
func (sb *StatusBar) SetError(format string, args ...interface{}) {
	sb.setMessage(KindError, fmt.Sprintf(format, args...))
}

// SetCommandLine shows the command being typed. It stays until reset.
func (sb *StatusBar) SetCommandLine(text string) {
	sb.setMessage(KindCommand, text)
}

func (sb *StatusBar) setMessage(kind MessageKind, text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = text
	sb.tempKind = kind
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Message returns the active temporary message, expiring it if its time is up.
func (sb *StatusBar) Message() (string, MessageKind, bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.activeMessageLocked()
}

func (sb *StatusBar) activeMessageLocked() (string, MessageKind, bool) {
	if sb.tempMessageTime.IsZero() {
		return "", KindInfo, false
	}
	if sb.tempKind != KindCommand && sb.now().Sub(sb.tempMessageTime) > sb.config.MessageTimeout {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
		return "", KindInfo, false
	}
	return sb.tempMessage, sb.tempKind, true
}

// Text returns the default status line, used when no message is active.
func (sb *StatusBar) Text() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.defaultTextLocked()
}

func (sb *StatusBar) defaultTextLocked() string {
	name := sb.fileName
	if name == "" {
		name = "Untitled"
	}
	modified := ""
	if sb.isModified {
		modified = " [Modified]"
	}
	text := fmt.Sprintf("%s%s | Ln %d, Col %d", name, modified, sb.cursorPos.Line+1, sb.cursorPos.Col+1)
	if sb.font != "" {
		text += " | " + sb.font
	}
	if sb.windowCount > 1 {
		text += fmt.Sprintf(" | Window %d/%d", sb.windowIndex+1, sb.windowCount)
	}
	if sb.mode != "" {
		text += " -- " + sb.mode
	}
	return text
}

// Draw renders the status bar on row y.
func (sb *StatusBar) Draw(screen tcell.Screen, y, width int, th *theme.Theme) {
	if width <= 0 {
		return
	}

	sb.mu.Lock()
	text, kind, active := sb.activeMessageLocked()
	modified := sb.isModified
	if !active {
		text = sb.defaultTextLocked()
	}
	sb.mu.Unlock()

	style := th.GetStyle("StatusBar")
	if active {
		switch kind {
		case KindError:
			style = th.GetStyle("StatusBarError")
		case KindCommand:
			style = th.GetStyle("StatusBarCommand")
		default:
			style = th.GetStyle("StatusBarMessage")
		}
	} else if modified {
		style = th.GetStyle("StatusBarModified")
	}

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	x := 0
	for gr.Next() {
		w := gr.Width()
		if x+w > width {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
}
