package wordcount

import (
	"fmt"
	"testing"

	"github.com/bethropolis/textwriter/internal/commands"
	"github.com/bethropolis/textwriter/internal/event"
)

type fakeAPI struct {
	content string
	reg     *commands.Registry
	status  string
}

func (f *fakeAPI) ActiveContent() string                    { return f.content }
func (f *fakeAPI) ActiveTitle() string                      { return "notes.txt" }
func (f *fakeAPI) WindowCount() int                         { return 1 }
func (f *fakeAPI) SubscribeEvent(event.Type, event.Handler) {}
func (f *fakeAPI) RegisterCommand(name string, fn commands.Func) error {
	return f.reg.Register(name, fn)
}
func (f *fakeAPI) SetStatusMessage(format string, args ...interface{}) {
	f.status = fmt.Sprintf(format, args...)
}

func TestCount(t *testing.T) {
	tests := []struct {
		in   string
		want Counts
	}{
		{"", Counts{}},
		{"one", Counts{Lines: 1, Words: 1, Chars: 3, Bytes: 3}},
		{"a b\nc\n", Counts{Lines: 2, Words: 3, Chars: 6, Bytes: 6}},
		{"héllo wörld", Counts{Lines: 1, Words: 2, Chars: 11, Bytes: 13}},
		{"\n\n", Counts{Lines: 2, Chars: 2, Bytes: 2}},
	}
	for _, tt := range tests {
		if got := Count(tt.in); got != tt.want {
			t.Errorf("Count(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestCommand(t *testing.T) {
	api := &fakeAPI{content: "to be or\nnot to be", reg: commands.NewRegistry()}
	p := New()
	if err := p.Initialize(api); err != nil {
		t.Fatal(err)
	}
	if err := api.reg.ExecuteLine(":wc"); err != nil {
		t.Fatal(err)
	}
	want := "notes.txt: 2 lines, 6 words, 18 chars, 18 bytes"
	if api.status != want {
		t.Errorf("status = %q, want %q", api.status, want)
	}
	if err := p.Initialize(api); err == nil {
		t.Error("second Initialize registered 'wc' twice")
	}
}
