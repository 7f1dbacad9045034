package clipboard

import (
	"errors"
	"testing"
)

type fakeSystem struct {
	text     string
	readErr  error
	writeErr error
}

func (f *fakeSystem) ReadAll() (string, error) { return f.text, f.readErr }
func (f *fakeSystem) WriteAll(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.text = text
	return nil
}

func TestRegisterOnly(t *testing.T) {
	m := NewManager(false)
	if _, err := m.Paste(); !errors.Is(err, ErrEmpty) {
		t.Errorf("empty Paste err = %v", err)
	}
	if err := m.Copy("hello"); err != nil {
		t.Fatal(err)
	}
	got, err := m.Paste()
	if err != nil || got != "hello" {
		t.Errorf("Paste = %q, %v", got, err)
	}
}

func TestSystemMirrors(t *testing.T) {
	sys := &fakeSystem{}
	m := NewManagerWithSystem(sys)
	if err := m.Copy("abc"); err != nil {
		t.Fatal(err)
	}
	if sys.text != "abc" {
		t.Errorf("system = %q", sys.text)
	}
	sys.text = "from elsewhere"
	if got, _ := m.Paste(); got != "from elsewhere" {
		t.Errorf("Paste = %q, want system contents", got)
	}
}

func TestSystemFailureFallsBack(t *testing.T) {
	sys := &fakeSystem{writeErr: errors.New("no xclip"), readErr: errors.New("no xclip")}
	m := NewManagerWithSystem(sys)
	if err := m.Copy("kept"); err == nil {
		t.Error("expected the system write error")
	}
	if got, err := m.Paste(); err != nil || got != "kept" {
		t.Errorf("Paste = %q, %v", got, err)
	}
}
