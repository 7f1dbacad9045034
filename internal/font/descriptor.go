// Package font turns font descriptor strings such as "DejaVu Sans Bold 12"
// into terminal cell styles. Only the presentation layer uses it; documents
// and style spans keep descriptors as opaque strings.
package font

import (
	"strconv"
	"strings"

	"github.com/bethropolis/textwriter/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// Descriptor is the parsed form of "Family [Style words] [Size]".
type Descriptor struct {
	Family    string
	Bold      bool
	Italic    bool
	Underline bool
	Size      int // 0 when absent
}

var styleWords = map[string]func(*Descriptor){
	"bold":      func(d *Descriptor) { d.Bold = true },
	"italic":    func(d *Descriptor) { d.Italic = true },
	"oblique":   func(d *Descriptor) { d.Italic = true },
	"underline": func(d *Descriptor) { d.Underline = true },
	"regular":   func(*Descriptor) {},
	"normal":    func(*Descriptor) {},
}

// Parse reads a descriptor. Style words and the size are taken from the end of
// the string; everything before them is the family.
func Parse(desc string) Descriptor {
	var d Descriptor
	fields := strings.Fields(desc)

	if n := len(fields); n > 0 {
		if size, err := strconv.Atoi(fields[n-1]); err == nil && size > 0 {
			d.Size = size
			fields = fields[:n-1]
		}
	}
	for len(fields) > 1 {
		set, ok := styleWords[strings.ToLower(fields[len(fields)-1])]
		if !ok {
			break
		}
		set(&d)
		fields = fields[:len(fields)-1]
	}
	d.Family = strings.Join(fields, " ")
	return d
}

// String renders the canonical form, e.g. "Serif Bold Italic 14".
func (d Descriptor) String() string {
	parts := make([]string, 0, 5)
	if d.Family != "" {
		parts = append(parts, d.Family)
	}
	if d.Bold {
		parts = append(parts, "Bold")
	}
	if d.Italic {
		parts = append(parts, "Italic")
	}
	if d.Underline {
		parts = append(parts, "Underline")
	}
	if d.Size > 0 {
		parts = append(parts, strconv.Itoa(d.Size))
	}
	return strings.Join(parts, " ")
}

// WithSize returns a copy with the size replaced.
func (d Descriptor) WithSize(size int) Descriptor {
	d.Size = size
	return d
}

// ThemeKey is the theme entry consulted for this family.
func (d Descriptor) ThemeKey() string {
	return "font." + strings.ToLower(d.Family)
}

// Style maps the descriptor onto base. A theme entry for the family replaces
// base; the style words then add cell attributes. Terminals have one cell
// size, so Size has no visual effect here.
func (d Descriptor) Style(base tcell.Style, th *theme.Theme) tcell.Style {
	style := base
	if th != nil && d.Family != "" && th.Has(d.ThemeKey()) {
		style = th.GetStyle(d.ThemeKey())
	}
	if d.Bold {
		style = style.Bold(true)
	}
	if d.Italic {
		style = style.Italic(true)
	}
	if d.Underline {
		style = style.Underline(true)
	}
	return style
}
