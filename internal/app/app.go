// internal/app/app.go
package app

import (
	"fmt"
	"time"

	"github.com/bethropolis/textwriter/internal/clipboard"
	"github.com/bethropolis/textwriter/internal/commands"
	"github.com/bethropolis/textwriter/internal/config"
	"github.com/bethropolis/textwriter/internal/dialog"
	"github.com/bethropolis/textwriter/internal/document"
	"github.com/bethropolis/textwriter/internal/event"
	"github.com/bethropolis/textwriter/internal/input"
	"github.com/bethropolis/textwriter/internal/logger"
	"github.com/bethropolis/textwriter/internal/menu"
	"github.com/bethropolis/textwriter/internal/plugin"
	"github.com/bethropolis/textwriter/internal/statusbar"
	"github.com/bethropolis/textwriter/internal/theme"
	"github.com/bethropolis/textwriter/internal/tui"
	"github.com/bethropolis/textwriter/internal/window"
	"github.com/gdamore/tcell/v2"
)

// Options configures a new App. Zero values select the defaults.
type Options struct {
	Config    *config.Config
	Theme     *theme.Theme
	Screen    tcell.Screen        // nil opens the real terminal
	FS        document.FileSystem // nil uses the OS filesystem
	Clipboard *clipboard.Manager  // nil builds one from the config
	Files     []string            // opened at start, one window each
}

// App is the window/menu shell: it owns the windows, the menu bar, the status
// bar and the command registry, and runs the event loop.
type App struct {
	cfg       *config.Config
	tui       *tui.TUI
	theme     *theme.Theme
	fs        document.FileSystem
	windows   []*window.Window
	active    int
	menuBar   *menu.Bar
	statusBar *statusbar.StatusBar
	registry  *commands.Registry
	events    *event.Manager
	input     *input.InputProcessor
	clipboard *clipboard.Manager
	plugins   *plugin.Manager

	mode        Mode
	dialog      dialog.Dialog
	cmdLine     []rune
	exitPending bool
	closeArmed  string // ID of the window whose close was refused once
	quitting    bool
	forced      bool
}

// New creates the application and opens the screen.
func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}

	var (
		t   *tui.TUI
		err error
	)
	if opts.Screen != nil {
		t, err = tui.NewWithScreen(opts.Screen, th)
	} else {
		t, err = tui.New(th)
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.NewManager(cfg.Editor.SystemClipboard)
	}

	a := &App{
		cfg:       cfg,
		tui:       t,
		theme:     th,
		fs:        opts.FS,
		menuBar:   menu.Default(),
		statusBar: statusbar.New(statusbar.Config{MessageTimeout: config.MessageTimeout}),
		registry:  commands.NewRegistry(),
		events:    event.NewManager(),
		input:     input.NewInputProcessor(),
		clipboard: clip,
		plugins:   plugin.NewManager(),
		mode:      ModeEdit,
	}

	a.subscribeEvents()
	registerAppCommands(a)
	if err := registerPlugins(a.plugins); err != nil {
		logger.Warnf("App: %v", err)
	}
	a.plugins.InitializePlugins(newEditorAPI(a))

	a.addWindow()
	for i, path := range opts.Files {
		if i > 0 {
			a.addWindow()
		}
		if err := a.activeWindow().Open(path); err != nil {
			a.statusBar.SetError("Open failed: %v", err)
		}
	}
	if len(opts.Files) > 1 {
		a.setActive(0)
	}
	a.layout()
	return a, nil
}

// Run processes terminal events until the user exits. Events are read on a
// separate goroutine and handed over a channel; every state change and every
// draw happens on the goroutine that called Run.
func (a *App) Run() error {
	defer a.tui.Close()
	defer a.plugins.ShutdownPlugins()

	termEvents := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go a.pollEvents(termEvents, done)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	a.events.Dispatch(event.TypeAppReady, event.AppReadyData{Windows: len(a.windows)})
	a.draw()

	lastStatus := a.statusLine()
	for !a.quitting {
		select {
		case ev, ok := <-termEvents:
			if !ok {
				return fmt.Errorf("terminal event stream closed")
			}
			if a.HandleEvent(ev) && !a.quitting {
				a.draw()
			}
		case <-ticker.C:
			// Temporary messages expire without any input arriving.
			if s := a.statusLine(); s != lastStatus {
				a.draw()
			}
		}
		lastStatus = a.statusLine()
	}

	a.events.Dispatch(event.TypeAppQuit, event.AppQuitData{Forced: a.forced})
	logger.Infof("App: exiting")
	return nil
}

func (a *App) pollEvents(out chan<- tcell.Event, done <-chan struct{}) {
	defer close(out)
	for {
		ev := a.tui.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one terminal event and reports whether a redraw is needed.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tui.Sync()
		a.layout()
		return true
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		return a.handleMouse(ev)
	}
	return false
}

// Quitting reports whether the user has exited.
func (a *App) Quitting() bool { return a.quitting }

// Mode returns the current input mode.
func (a *App) Mode() Mode { return a.mode }

// Windows returns the open windows in order.
func (a *App) Windows() []*window.Window { return a.windows }

// ActiveWindow returns the focused window.
func (a *App) ActiveWindow() *window.Window { return a.activeWindow() }

// Dialog returns the open dialog, or nil.
func (a *App) Dialog() dialog.Dialog { return a.dialog }

// Registry exposes the command registry.
func (a *App) Registry() *commands.Registry { return a.registry }

// StatusBar exposes the status bar.
func (a *App) StatusBar() *statusbar.StatusBar { return a.statusBar }

// Events exposes the event bus.
func (a *App) Events() *event.Manager { return a.events }

func (a *App) activeWindow() *window.Window {
	return a.windows[a.active]
}

func (a *App) addWindow() *window.Window {
	w := window.New(window.Options{
		FS:          a.fs,
		Events:      a.events,
		TabWidth:    a.cfg.Editor.TabWidth,
		DefaultFont: a.cfg.Editor.DefaultFont,
	})
	a.windows = append(a.windows, w)
	a.active = len(a.windows) - 1
	a.layout()
	a.events.Dispatch(event.TypeWindowOpened, event.WindowData{WindowID: w.ID, Index: a.active})
	return w
}

func (a *App) setActive(i int) {
	n := len(a.windows)
	a.active = ((i % n) + n) % n
	a.closeArmed = ""
	w := a.activeWindow()
	a.events.Dispatch(event.TypeWindowFocused, event.WindowData{WindowID: w.ID, Index: a.active})
}

func (a *App) removeWindow(i int) {
	w := a.windows[i]
	a.windows = append(a.windows[:i], a.windows[i+1:]...)
	a.events.Dispatch(event.TypeWindowClosed, event.WindowData{WindowID: w.ID, Index: i})
	if len(a.windows) == 0 {
		a.quitting = true
		return
	}
	if a.active >= len(a.windows) {
		a.active = len(a.windows) - 1
	}
	a.setActive(a.active)
}

func (a *App) anyModified() bool {
	for _, w := range a.windows {
		if w.Session().IsModified() {
			return true
		}
	}
	return false
}

// layout sizes the text area of every window to the screen.
func (a *App) layout() {
	width, height := a.tui.Size()
	textH := height - config.MenuBarHeight - config.StatusBarHeight
	if textH < 0 {
		textH = 0
	}
	for _, w := range a.windows {
		w.SetViewSize(width, textH)
	}
}

func (a *App) statusLine() string {
	if msg, _, ok := a.statusBar.Message(); ok {
		return msg
	}
	return a.statusBar.Text()
}
