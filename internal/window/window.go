// Package window holds the state of one editor window: its document session,
// its style record, and the cursor and viewport over the text. Windows share
// nothing; New Window builds a fresh one.
package window

import (
	"github.com/bethropolis/textwriter/internal/config"
	"github.com/bethropolis/textwriter/internal/document"
	"github.com/bethropolis/textwriter/internal/event"
	"github.com/bethropolis/textwriter/internal/font"
	"github.com/bethropolis/textwriter/internal/logger"
	"github.com/bethropolis/textwriter/internal/style"
	"github.com/bethropolis/textwriter/internal/types"
	"github.com/google/uuid"
)

// Options configures a new window.
type Options struct {
	FS          document.FileSystem // nil selects the OS filesystem
	Events      *event.Manager      // may be nil
	TabWidth    int
	DefaultFont string
}

// Window is one editing surface bound to one document.
type Window struct {
	ID string

	session *document.Session
	styles  *style.Applier
	events  *event.Manager

	Cursor    types.Position
	ViewportY int // top visible line
	ViewportX int // leftmost visible screen column
	ScrollOff int
	TabWidth  int

	viewWidth   int
	viewHeight  int
	defaultFont string
}

// New creates a window with an empty, unbound document.
func New(opts Options) *Window {
	if opts.TabWidth <= 0 {
		opts.TabWidth = config.DefaultTabWidth
	}
	if opts.DefaultFont == "" {
		opts.DefaultFont = config.DefaultFont
	}
	w := &Window{
		ID:          uuid.NewString(),
		session:     document.NewSession(opts.FS),
		styles:      style.NewApplier(),
		events:      opts.Events,
		ScrollOff:   config.DefaultScrollOff,
		TabWidth:    opts.TabWidth,
		defaultFont: opts.DefaultFont,
	}
	logger.DebugTagf("window", "Window %s: created", w.ID)
	return w
}

// Session returns the window's document session.
func (w *Window) Session() *document.Session { return w.session }

// Styles returns the window's style record.
func (w *Window) Styles() *style.Applier { return w.styles }

// Title is the document name with a "[+]" marker when modified.
func (w *Window) Title() string {
	name := w.session.DisplayName()
	if w.session.IsModified() {
		return name + " [+]"
	}
	return name
}

// Font returns the descriptor currently applied to the whole document, or the
// configured default when nothing has been applied.
func (w *Window) Font() string {
	if span, ok := w.styles.Current(); ok {
		return span.Descriptor
	}
	return w.defaultFont
}

func (w *Window) dispatch(t event.Type, data interface{}) {
	if w.events != nil {
		w.events.Dispatch(t, data)
	}
}

func (w *Window) documentData() event.DocumentData {
	path, _ := w.session.Path()
	return event.DocumentData{WindowID: w.ID, FilePath: path}
}

// contentReplaced resets everything that referred to the previous text.
func (w *Window) contentReplaced() {
	w.styles.ContentReplaced()
	w.Cursor = types.Position{}
	w.ViewportY = 0
	w.ViewportX = 0
}

// New discards the document and starts an empty, unbound one.
func (w *Window) New() {
	w.session.New()
	w.contentReplaced()
	w.dispatch(event.TypeDocumentNew, w.documentData())
}

// Open loads path. On failure nothing changes.
func (w *Window) Open(path string) error {
	if err := w.session.Load(path); err != nil {
		logger.Warnf("Window %s: open failed: %v", w.ID, err)
		return err
	}
	w.contentReplaced()
	logger.Infof("Window %s: opened '%s'", w.ID, path)
	w.dispatch(event.TypeDocumentLoaded, w.documentData())
	return nil
}

// Save writes to the current file. It returns document.ErrNoBackingPath
// without writing when the document has never been saved.
func (w *Window) Save() error {
	if err := w.session.Save(); err != nil {
		return err
	}
	path, _ := w.session.Path()
	logger.Infof("Window %s: saved '%s'", w.ID, path)
	w.dispatch(event.TypeDocumentSaved, w.documentData())
	return nil
}

// SaveAs writes to path and binds the document to it.
func (w *Window) SaveAs(path string) error {
	if err := w.session.SaveAs(path); err != nil {
		logger.Warnf("Window %s: save as failed: %v", w.ID, err)
		return err
	}
	logger.Infof("Window %s: saved as '%s'", w.ID, path)
	w.dispatch(event.TypeDocumentSaved, w.documentData())
	return nil
}

// ApplyFont styles the whole document with desc. Blank descriptors are ignored.
func (w *Window) ApplyFont(desc string) (style.Span, bool) {
	return w.applyFont(desc, style.WholeDocument)
}

// ApplyFontRange styles the runes in [start, end) with desc.
func (w *Window) ApplyFontRange(desc string, start, end int) (style.Span, bool) {
	return w.applyFont(desc, style.Range{Start: start, End: end})
}

func (w *Window) applyFont(desc string, rng style.Range) (style.Span, bool) {
	span, ok := w.styles.Apply(desc, rng)
	if !ok {
		return span, false
	}
	w.dispatch(event.TypeStyleApplied, event.StyleAppliedData{
		WindowID:   w.ID,
		Descriptor: span.Descriptor,
		Seq:        span.Seq,
	})
	return span, true
}

// ApplyFontSize re-applies the current font with a new size.
func (w *Window) ApplyFontSize(size int) (style.Span, bool) {
	if size <= 0 {
		return style.Span{}, false
	}
	desc := font.Parse(w.Font()).WithSize(size)
	return w.ApplyFont(desc.String())
}

// EffectiveFontAt returns the descriptor that applies at a buffer position.
func (w *Window) EffectiveFontAt(pos types.Position) string {
	buf := w.session.Buffer()
	if span, ok := w.styles.EffectiveAt(buf.Offset(pos), buf.Len()); ok {
		return span.Descriptor
	}
	return w.defaultFont
}
