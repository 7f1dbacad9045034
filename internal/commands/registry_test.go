package commands

import (
	"errors"
	"reflect"
	"testing"
)

func TestRegister(t *testing.T) {
	r := NewRegistry()
	noop := func([]string) error { return nil }

	if err := r.Register("", noop); err == nil {
		t.Error("empty name accepted")
	}
	if err := r.Register("file.save", nil); err == nil {
		t.Error("nil handler accepted")
	}
	if err := r.Register("file.save", noop); err != nil {
		t.Fatal(err)
	}
	if err := r.Register("file.save", noop); err == nil {
		t.Error("duplicate accepted")
	}
	if err := r.Alias("save", "file.save"); err != nil {
		t.Fatal(err)
	}
	if err := r.Register("save", noop); err == nil {
		t.Error("name clashing with an alias accepted")
	}
	if err := r.Alias("x", "missing"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("alias to missing target: %v", err)
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	var gotArgs []string
	calls := 0
	r.Register("font.change", func(args []string) error {
		calls++
		gotArgs = args
		return nil
	})
	r.Alias("font", "font.change")

	if err := r.Execute("font.change", nil); err != nil {
		t.Fatal(err)
	}
	if err := r.ExecuteLine(":font DejaVu Sans 12"); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("calls = %d", calls)
	}
	if want := []string{"DejaVu", "Sans", "12"}; !reflect.DeepEqual(gotArgs, want) {
		t.Errorf("args = %v, want %v", gotArgs, want)
	}
	if err := r.Execute("nope", nil); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("unknown command err = %v", err)
	}
	if err := r.ExecuteLine("   "); err != nil {
		t.Errorf("blank line err = %v", err)
	}
}

func TestExecutePropagatesError(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Register("file.save", func([]string) error { return boom })
	if err := r.Execute("file.save", nil); !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
}

func TestNames(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"help.about", "file.new", "edit.paste"} {
		r.Register(n, func([]string) error { return nil })
	}
	r.Alias("about", "help.about")
	want := []string{"edit.paste", "file.new", "help.about"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
}
