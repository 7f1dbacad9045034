package plugin

import (
	"errors"
	"testing"

	"github.com/bethropolis/textwriter/internal/commands"
	"github.com/bethropolis/textwriter/internal/event"
)

type nopAPI struct{}

func (nopAPI) ActiveContent() string                       { return "" }
func (nopAPI) ActiveTitle() string                         { return "" }
func (nopAPI) WindowCount() int                            { return 1 }
func (nopAPI) SubscribeEvent(event.Type, event.Handler)    {}
func (nopAPI) RegisterCommand(string, commands.Func) error { return nil }
func (nopAPI) SetStatusMessage(string, ...interface{})     {}

type recorder struct {
	name    string
	initErr error
	log     *[]string
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) Initialize(EditorAPI) error {
	*r.log = append(*r.log, "init "+r.name)
	return r.initErr
}

func (r *recorder) Shutdown() error {
	*r.log = append(*r.log, "shutdown "+r.name)
	return nil
}

func TestRegisterRejectsBadNames(t *testing.T) {
	var log []string
	m := NewManager()
	if err := m.Register(&recorder{name: "", log: &log}); err == nil {
		t.Error("empty name accepted")
	}
	if err := m.Register(&recorder{name: "a", log: &log}); err != nil {
		t.Fatal(err)
	}
	if err := m.Register(&recorder{name: "a", log: &log}); err == nil {
		t.Error("duplicate name accepted")
	}
	if _, ok := m.GetPlugin("a"); !ok {
		t.Error("GetPlugin missed a registered plugin")
	}
}

func TestLifecycleOrder(t *testing.T) {
	var log []string
	m := NewManager()
	m.Register(&recorder{name: "b", log: &log})
	m.Register(&recorder{name: "a", log: &log})
	m.Register(&recorder{name: "broken", initErr: errors.New("boom"), log: &log})

	m.InitializePlugins(nopAPI{})
	m.ShutdownPlugins()

	want := []string{"init a", "init b", "init broken", "shutdown b", "shutdown a"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}
