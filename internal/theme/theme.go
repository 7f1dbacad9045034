// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/textwriter/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Theme is a named set of cell styles. Font families get their own entries
// under "font.<family>" (lowercase), so a theme can tint text per family.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style registered under name. Missing names fall back to
// the part before the first dot, then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Has reports whether name has an exact entry.
func (t *Theme) Has(name string) bool {
	_, ok := t.Styles[name]
	return ok
}

// Merge overlays other's styles onto a copy of t.
func (t *Theme) Merge(other *Theme) *Theme {
	merged := &Theme{
		Name:   other.Name,
		IsDark: other.IsDark,
		Styles: make(map[string]tcell.Style, len(t.Styles)+len(other.Styles)),
	}
	for k, v := range t.Styles {
		merged.Styles[k] = v
	}
	for k, v := range other.Styles {
		merged.Styles[k] = v
	}
	return merged
}

// Default returns the built-in light-on-dark theme.
func Default() *Theme {
	bg := tcell.NewHexColor(0x2a2f38)
	fg := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	blue := tcell.NewHexColor(0x61afef)
	red := tcell.NewHexColor(0xe06c75)
	cyan := tcell.NewHexColor(0x56b6c2)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)
	bar := tcell.StyleDefault.Background(bg).Foreground(fg)

	return &Theme{
		Name:   "TextWriter Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			"Default": base,

			"MenuBar":       bar,
			"MenuBarActive": bar.Foreground(yellow).Bold(true),
			"Menu":          bar,
			"MenuSelected":  bar.Reverse(true),
			"MenuShortcut":  bar.Foreground(muted),
			"MenuSeparator": bar.Foreground(muted),

			"StatusBar":         bar,
			"StatusBarModified": bar.Foreground(yellow),
			"StatusBarMessage":  bar.Bold(true),
			"StatusBarError":    bar.Foreground(red).Bold(true),
			"StatusBarCommand":  bar.Foreground(green).Bold(true),

			"Dialog":         bar,
			"DialogTitle":    bar.Foreground(blue).Bold(true),
			"DialogInput":    base.Reverse(true),
			"DialogSelected": bar.Reverse(true),
			"DialogHint":     bar.Foreground(muted),

			"font":           base,
			"font.monospace": base,
			"font.serif":     base.Foreground(tcell.NewHexColor(0xdcd3c0)),
			"font.sans":      base.Foreground(cyan),
		},
	}
}
