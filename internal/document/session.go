// Package document holds the state of one open document: its text, the file
// it is bound to, and the New/Load/Save/SaveAs transitions between them.
//
// A Session is either Unbound (no backing path) or Bound. New always yields
// Unbound; a successful Load or SaveAs yields Bound; failures never change
// state. Every operation either fully applies or leaves the session as it was.
package document

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/bethropolis/textwriter/internal/buffer"
	"github.com/bethropolis/textwriter/internal/logger"
)

// Session is one document's in-memory text plus its associated file path.
// It is owned by a single window and is not safe for concurrent use.
type Session struct {
	fs      FileSystem
	buf     buffer.Buffer
	path    string
	hasPath bool
}

// NewSession creates an empty, unbound session. A nil fs selects OSFileSystem.
func NewSession(fs FileSystem) *Session {
	if fs == nil {
		fs = OSFileSystem{}
	}
	return &Session{
		fs:  fs,
		buf: buffer.NewLineBuffer(""),
	}
}

// New discards the current content and file association.
func (s *Session) New() {
	s.buf = buffer.NewLineBuffer("")
	s.path = ""
	s.hasPath = false
	logger.DebugTagf("document", "Session: reset to empty, unbound")
}

// Load replaces the content with the file at path and binds the session to it.
// On any failure the session is left untouched and an ErrRead error is returned.
func (s *Session) Load(path string) error {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: '%s': %w", ErrRead, path, err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%w: '%s': file is not valid UTF-8 text", ErrRead, path)
	}

	s.buf = buffer.NewLineBuffer(string(data))
	s.path = path
	s.hasPath = true
	logger.DebugTagf("document", "Session: loaded %d bytes from '%s'", len(data), path)
	return nil
}

// Save writes the content to the backing path. Without one it returns
// ErrNoBackingPath and writes nothing.
func (s *Session) Save() error {
	if !s.hasPath {
		return ErrNoBackingPath
	}
	return s.write(s.path)
}

// SaveAs writes the content to path and, on success, binds the session to it.
func (s *Session) SaveAs(path string) error {
	if err := s.write(path); err != nil {
		return err
	}
	s.path = path
	s.hasPath = true
	return nil
}

func (s *Session) write(path string) error {
	data := []byte(s.buf.String())
	if err := s.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: '%s': %w", ErrWrite, path, err)
	}
	s.buf.MarkSaved()
	logger.DebugTagf("document", "Session: wrote %d bytes to '%s'", len(data), path)
	return nil
}

// IsModified reports whether the content changed since the last New, Load or successful save.
func (s *Session) IsModified() bool {
	return s.buf.IsModified()
}

// Path returns the backing path and whether one is set.
func (s *Session) Path() (string, bool) {
	return s.path, s.hasPath
}

// Content returns the full text.
func (s *Session) Content() string {
	return s.buf.String()
}

// SetContent replaces the whole text as a direct edit. The file association is kept.
func (s *Session) SetContent(text string) {
	if text == s.buf.String() {
		return
	}
	s.buf = buffer.NewLineBuffer(text)
	s.buf.MarkModified()
}

// Buffer returns the live text the editing surface modifies in place.
// The returned buffer is replaced by New and Load; do not hold on to it.
func (s *Session) Buffer() buffer.Buffer {
	return s.buf
}

// DisplayName returns the file's base name, or "Untitled" when unbound.
func (s *Session) DisplayName() string {
	if !s.hasPath {
		return "Untitled"
	}
	return filepath.Base(s.path)
}
