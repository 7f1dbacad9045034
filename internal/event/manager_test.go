package event

import "testing"

func TestDispatchOrderAndData(t *testing.T) {
	m := NewManager()
	var got []string
	m.Subscribe(TypeDocumentSaved, func(e Event) bool {
		got = append(got, "first:"+e.Data.(DocumentData).FilePath)
		return false
	})
	m.Subscribe(TypeDocumentSaved, func(e Event) bool {
		got = append(got, "second")
		return false
	})
	m.Subscribe(TypeDocumentLoaded, func(e Event) bool {
		got = append(got, "wrong type")
		return false
	})

	m.Dispatch(TypeDocumentSaved, DocumentData{WindowID: "w1", FilePath: "/tmp/a.txt"})

	want := []string{"first:/tmp/a.txt", "second"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDispatchConsumedStops(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeAppQuit, func(Event) bool { calls++; return true })
	m.Subscribe(TypeAppQuit, func(Event) bool { calls++; return false })

	m.Dispatch(TypeAppQuit, AppQuitData{})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDispatchWithoutHandlers(t *testing.T) {
	NewManager().Dispatch(TypeAppReady, nil)
}

func TestTypeString(t *testing.T) {
	if TypeStyleApplied.String() != "StyleApplied" {
		t.Errorf("got %q", TypeStyleApplied.String())
	}
	if Type(999).String() != "Unknown" {
		t.Error("unknown type not reported as Unknown")
	}
}
