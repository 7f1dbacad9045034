package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bethropolis/textwriter/internal/clipboard"
	"github.com/bethropolis/textwriter/internal/commands"
	"github.com/bethropolis/textwriter/internal/config"
	"github.com/bethropolis/textwriter/internal/dialog"
	"github.com/bethropolis/textwriter/internal/document"
	"github.com/bethropolis/textwriter/internal/font"
	"github.com/bethropolis/textwriter/internal/logger"
	"github.com/bethropolis/textwriter/internal/window"
)

// AboutText is the body of Help > About.
var AboutText = strings.Join([]string{
	config.AppTitle + " " + config.Version,
	"",
	"Lightweight LXDE text editor",
	"",
	"Authors: Izhan",
	"License: MIT/X11",
}, "\n")

// commandAliases are the short names accepted on the ":" command line.
var commandAliases = map[string]string{
	"new":       "file.new",
	"open":      "file.open",
	"save":      "file.save",
	"saveas":    "file.save_as",
	"font":      "font.change",
	"fontrange": "font.change_range",
	"size":      "font.size",
	"about":     "help.about",
	"quit":      "file.exit",
	"quit!":     "file.force_exit",
}

// registerAppCommands registers every built-in action. Menus, key bindings
// and the command line all reach the editor through these.
func registerAppCommands(a *App) {
	builtins := []struct {
		name string
		fn   commands.Func
	}{
		{"file.new", a.cmdNew},
		{"file.new_window", a.cmdNewWindow},
		{"file.open", a.cmdOpen},
		{"file.save", a.cmdSave},
		{"file.save_as", a.cmdSaveAs},
		{"file.close_window", a.cmdCloseWindow},
		{"file.exit", a.cmdExit},
		{"file.force_exit", a.cmdForceExit},
		{"edit.copy_all", a.cmdCopyAll},
		{"edit.paste", a.cmdPaste},
		{"font.change", a.cmdChangeFont},
		{"font.size", a.cmdChangeFontSize},
		{"font.change_range", a.cmdChangeFontRange},
		{"window.next", func([]string) error { a.setActive(a.active + 1); return nil }},
		{"window.prev", func([]string) error { a.setActive(a.active - 1); return nil }},
		{"help.about", a.cmdAbout},
		{"command.prompt", func([]string) error { a.enterCommandMode(); return nil }},
	}
	for _, b := range builtins {
		if err := a.registry.Register(b.name, b.fn); err != nil {
			logger.Warnf("Failed to register '%s' command: %v", b.name, err)
		}
	}
	for alias, target := range commandAliases {
		if err := a.registry.Alias(alias, target); err != nil {
			logger.Warnf("Failed to register ':%s' alias: %v", alias, err)
		}
	}
}

// pathArg joins command line words back into one path.
func pathArg(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// promptStart is where a path prompt starts. Save As starts on the document's
// own path; Open (dirOnly) starts in its directory. Unsaved documents start in
// the working directory.
func promptStart(w *window.Window, dirOnly bool) string {
	if path, ok := w.Session().Path(); ok {
		if dirOnly {
			return filepath.Dir(path) + string(os.PathSeparator)
		}
		return path
	}
	if wd, err := os.Getwd(); err == nil {
		return wd + string(os.PathSeparator)
	}
	return ""
}

func (a *App) cmdNew(args []string) error {
	a.activeWindow().New()
	return nil
}

func (a *App) cmdNewWindow(args []string) error {
	w := a.addWindow()
	if path := pathArg(args); path != "" {
		return w.Open(path)
	}
	return nil
}

func (a *App) cmdOpen(args []string) error {
	w := a.activeWindow()
	if path := pathArg(args); path != "" {
		return w.Open(path)
	}
	a.openDialog(dialog.NewPathPrompt("Open File", promptStart(w, true), func(path string) {
		if err := w.Open(path); err != nil {
			a.statusBar.SetError("Open failed: %v", err)
		}
	}, nil))
	return nil
}

func (a *App) cmdSave(args []string) error {
	w := a.activeWindow()
	err := w.Save()
	if errors.Is(err, document.ErrNoBackingPath) && a.cfg.Editor.SavePromptsForPath {
		a.promptSaveAs(w)
		return nil
	}
	return err
}

func (a *App) cmdSaveAs(args []string) error {
	w := a.activeWindow()
	if path := pathArg(args); path != "" {
		return w.SaveAs(path)
	}
	a.promptSaveAs(w)
	return nil
}

func (a *App) promptSaveAs(w *window.Window) {
	a.openDialog(dialog.NewPathPrompt("Save As", promptStart(w, false), func(path string) {
		if err := w.SaveAs(path); err != nil {
			a.statusBar.SetError("Save failed: %v", err)
		}
	}, nil))
}

func (a *App) cmdCloseWindow(args []string) error {
	w := a.activeWindow()
	if w.Session().IsModified() && a.closeArmed != w.ID {
		a.closeArmed = w.ID
		a.statusBar.SetTemporaryMessage("'%s' has unsaved changes. Close again to discard them.", w.Session().DisplayName())
		return nil
	}
	a.closeArmed = ""
	logger.Infof("App: closing window %s", w.ID)
	a.removeWindow(a.active)
	return nil
}

func (a *App) cmdExit(args []string) error {
	if a.anyModified() && !a.exitPending {
		a.exitPending = true
		a.statusBar.SetTemporaryMessage("Unsaved changes! Exit again to discard them.")
		return nil
	}
	a.quitting = true
	a.forced = a.exitPending
	return nil
}

func (a *App) cmdForceExit(args []string) error {
	a.quitting = true
	a.forced = true
	return nil
}

func (a *App) cmdCopyAll(args []string) error {
	content := a.activeWindow().Session().Content()
	if err := a.clipboard.Copy(content); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}
	a.statusBar.SetTemporaryMessage("Copied %d characters", len([]rune(content)))
	return nil
}

func (a *App) cmdPaste(args []string) error {
	text, err := a.clipboard.Paste()
	if errors.Is(err, clipboard.ErrEmpty) {
		a.statusBar.SetTemporaryMessage("Clipboard is empty")
		return nil
	}
	if err != nil {
		return fmt.Errorf("paste failed: %w", err)
	}
	return a.activeWindow().InsertText(text)
}

func (a *App) cmdChangeFont(args []string) error {
	w := a.activeWindow()
	if desc := pathArg(args); desc != "" {
		a.applyFont(w, desc)
		return nil
	}
	a.openDialog(dialog.NewFontPicker("Change Font", w.Font(), a.cfg.Fonts.Presets, func(desc string) {
		a.applyFont(w, desc)
	}, nil))
	return nil
}

func (a *App) applyFont(w *window.Window, desc string) {
	if _, ok := w.ApplyFont(desc); !ok {
		a.statusBar.SetError("No font given")
	}
}

// cmdChangeFontRange styles the runes in [start, end) of the active document:
// "fontrange <start> <end> <descriptor>".
func (a *App) cmdChangeFontRange(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: fontrange <start> <end> <font>")
	}
	start, err1 := strconv.Atoi(args[0])
	end, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return fmt.Errorf("invalid range '%s %s'", args[0], args[1])
	}
	w := a.activeWindow()
	if n := w.Session().Buffer().Len(); start > n || end > n {
		return fmt.Errorf("range %d-%d is outside the document (%d characters)", start, end, n)
	}
	if _, ok := w.ApplyFontRange(pathArg(args[2:]), start, end); !ok {
		return fmt.Errorf("empty range %d-%d", start, end)
	}
	return nil
}

func (a *App) cmdChangeFontSize(args []string) error {
	w := a.activeWindow()
	if len(args) > 0 {
		return a.applyFontSize(w, args[0])
	}

	sizes := make([]string, len(a.cfg.Fonts.Sizes))
	for i, s := range a.cfg.Fonts.Sizes {
		sizes[i] = strconv.Itoa(s)
	}
	current := ""
	if size := font.Parse(w.Font()).Size; size > 0 {
		current = strconv.Itoa(size)
	}
	picker := dialog.NewFontPicker("Change Font Size", current, sizes, func(value string) {
		if err := a.applyFontSize(w, value); err != nil {
			a.statusBar.SetError("%v", err)
		}
	}, nil)
	picker.SetPreview(false)
	a.openDialog(picker)
	return nil
}

func (a *App) applyFontSize(w *window.Window, value string) error {
	size, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || size <= 0 {
		return fmt.Errorf("invalid font size '%s'", value)
	}
	w.ApplyFontSize(size)
	return nil
}

func (a *App) cmdAbout(args []string) error {
	a.openDialog(dialog.NewMessage("About "+config.AppTitle, AboutText, nil))
	return nil
}
