package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// countingFS wraps OSFileSystem and records writes.
type countingFS struct {
	OSFileSystem
	writes int
	failOn string
}

func (c *countingFS) WriteFile(path string, data []byte) error {
	c.writes++
	if path == c.failOn {
		return os.ErrPermission
	}
	return c.OSFileSystem.WriteFile(path, data)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestSession_LoadThenSave(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.txt")
	writeFile(t, p, "hello")

	s := NewSession(nil)
	if err := s.Load(p); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := s.Content(); got != "hello" {
		t.Errorf("content = %q, want %q", got, "hello")
	}
	if got, ok := s.Path(); !ok || got != p {
		t.Errorf("path = %q, %v; want %q, true", got, ok, p)
	}
	if s.IsModified() {
		t.Error("freshly loaded session reports modified")
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := readFile(t, p); got != "hello" {
		t.Errorf("file = %q, want %q", got, "hello")
	}
}

func TestSession_SaveRoundTripsBytes(t *testing.T) {
	inputs := []string{
		"",
		"line one\r\nline two\r\n",
		"no trailing newline",
		"mixed\nendings\r\n\n",
		"tabs\tand ünïcödé 日本\n",
	}
	for _, in := range inputs {
		p := filepath.Join(t.TempDir(), "f.txt")
		writeFile(t, p, in)

		s := NewSession(nil)
		if err := s.Load(p); err != nil {
			t.Fatalf("Load(%q): %v", in, err)
		}
		if err := s.Save(); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if got := readFile(t, p); got != in {
			t.Errorf("round trip of %q wrote %q", in, got)
		}
	}
}

func TestSession_NewResets(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, p, "something")

	s := NewSession(nil)
	if err := s.Load(p); err != nil {
		t.Fatal(err)
	}
	s.SetContent("edited")
	s.New()

	if s.Content() != "" {
		t.Errorf("content after New = %q", s.Content())
	}
	if _, ok := s.Path(); ok {
		t.Error("New left a backing path")
	}
	if s.IsModified() {
		t.Error("New left the session modified")
	}
	if s.DisplayName() != "Untitled" {
		t.Errorf("DisplayName = %q", s.DisplayName())
	}
}

func TestSession_SaveUnboundWritesNothing(t *testing.T) {
	fs := &countingFS{}
	s := NewSession(fs)
	s.SetContent("draft")

	err := s.Save()
	if !errors.Is(err, ErrNoBackingPath) {
		t.Fatalf("Save err = %v, want ErrNoBackingPath", err)
	}
	if fs.writes != 0 {
		t.Errorf("writes = %d, want 0", fs.writes)
	}
	if s.Content() != "draft" || !s.IsModified() {
		t.Error("unbound Save changed state")
	}
	if _, ok := s.Path(); ok {
		t.Error("unbound Save set a path")
	}
}

func TestSession_LoadMissingLeavesState(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "keep.txt")
	writeFile(t, p, "keep me")

	s := NewSession(nil)
	if err := s.Load(p); err != nil {
		t.Fatal(err)
	}
	s.SetContent("keep me, edited")

	err := s.Load(filepath.Join(dir, "nonexistent"))
	if !errors.Is(err, ErrRead) {
		t.Fatalf("Load err = %v, want ErrRead", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load err %v does not carry the OS cause", err)
	}
	if s.Content() != "keep me, edited" {
		t.Errorf("content changed to %q", s.Content())
	}
	if got, _ := s.Path(); got != p {
		t.Errorf("path changed to %q", got)
	}
	if !s.IsModified() {
		t.Error("failed Load cleared the modified flag")
	}
}

func TestSession_LoadMissingOnFreshSession(t *testing.T) {
	s := NewSession(nil)
	if err := s.Load(filepath.Join(t.TempDir(), "nonexistent")); err == nil {
		t.Fatal("expected failure")
	}
	if s.Content() != "" {
		t.Errorf("content = %q", s.Content())
	}
	if _, ok := s.Path(); ok {
		t.Error("path set after failed Load")
	}
}

func TestSession_LoadRejectsInvalidUTF8(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bin")
	if err := os.WriteFile(p, []byte{0xff, 0xfe, 0x00}, 0644); err != nil {
		t.Fatal(err)
	}
	s := NewSession(nil)
	if err := s.Load(p); !errors.Is(err, ErrRead) {
		t.Fatalf("err = %v, want ErrRead", err)
	}
	if _, ok := s.Path(); ok {
		t.Error("path set after rejected Load")
	}
}

func TestSession_SaveAsEmpty(t *testing.T) {
	p := filepath.Join(t.TempDir(), "b.txt")
	s := NewSession(nil)
	s.New()
	if err := s.SaveAs(p); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if got := readFile(t, p); got != "" {
		t.Errorf("file = %q, want empty", got)
	}
	if got, ok := s.Path(); !ok || got != p {
		t.Errorf("path = %q, %v", got, ok)
	}
	if s.DisplayName() != "b.txt" {
		t.Errorf("DisplayName = %q", s.DisplayName())
	}
}

func TestSession_SaveAsFailureKeepsPath(t *testing.T) {
	dir := t.TempDir()
	orig := filepath.Join(dir, "orig.txt")
	bad := filepath.Join(dir, "bad.txt")
	writeFile(t, orig, "x")

	fs := &countingFS{failOn: bad}
	s := NewSession(fs)
	if err := s.Load(orig); err != nil {
		t.Fatal(err)
	}
	s.SetContent("y")

	err := s.SaveAs(bad)
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("err = %v, want ErrWrite", err)
	}
	if got, _ := s.Path(); got != orig {
		t.Errorf("path = %q, want %q", got, orig)
	}
	if !s.IsModified() {
		t.Error("failed SaveAs cleared modified")
	}
}

func TestSession_BackingPathFollowsLastSuccess(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	writeFile(t, a, "A")

	s := NewSession(nil)
	steps := []struct {
		name     string
		do       func() error
		wantPath string
		wantOK   bool
	}{
		{"load a", func() error { return s.Load(a) }, a, true},
		{"save as b", func() error { return s.SaveAs(b) }, b, true},
		{"load missing", func() error { return s.Load(filepath.Join(dir, "nope")) }, b, true},
		{"new", func() error { s.New(); return nil }, "", false},
		{"load b", func() error { return s.Load(b) }, b, true},
	}
	for _, st := range steps {
		_ = st.do()
		got, ok := s.Path()
		if ok != st.wantOK || got != st.wantPath {
			t.Errorf("after %s: path = %q, %v; want %q, %v", st.name, got, ok, st.wantPath, st.wantOK)
		}
	}
}

func TestSession_SetContentMarksModified(t *testing.T) {
	s := NewSession(nil)
	s.SetContent("")
	if s.IsModified() {
		t.Error("setting identical content marked modified")
	}
	s.SetContent("abc")
	if !s.IsModified() || s.Content() != "abc" {
		t.Error("SetContent did not apply")
	}
}
