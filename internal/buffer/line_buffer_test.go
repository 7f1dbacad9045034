package buffer

import (
	"testing"

	"github.com/bethropolis/textwriter/internal/types"
)

func TestLineBuffer_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"hello\n",
		"a\r\nb\r\n",
		"\n\n\n",
		"héllo wörld\n日本語",
	}
	for _, in := range inputs {
		lb := NewLineBuffer(in)
		if got := lb.String(); got != in {
			t.Errorf("round trip of %q gave %q", in, got)
		}
		if lb.IsModified() {
			t.Errorf("new buffer for %q reports modified", in)
		}
		if got, want := lb.Len(), len([]rune(in)); got != want {
			t.Errorf("Len(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestLineBuffer_Insert(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		pos     types.Position
		text    string
		want    string
		wantEnd types.Position
	}{
		{"into empty", "", types.Position{}, "abc", "abc", types.Position{Line: 0, Col: 3}},
		{"middle", "held", types.Position{Line: 0, Col: 2}, "l", "helld", types.Position{Line: 0, Col: 3}},
		{"newline", "ab", types.Position{Line: 0, Col: 1}, "\n", "a\nb", types.Position{Line: 1, Col: 0}},
		{"multi", "one\nfour", types.Position{Line: 0, Col: 3}, "\ntwo\nthree", "one\ntwo\nthree\nfour", types.Position{Line: 2, Col: 5}},
		{"clamped", "ab", types.Position{Line: 9, Col: 9}, "c", "abc", types.Position{Line: 0, Col: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lb := NewLineBuffer(tt.initial)
			end, err := lb.Insert(tt.pos, tt.text)
			if err != nil {
				t.Fatal(err)
			}
			if got := lb.String(); got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
			if end != tt.wantEnd {
				t.Errorf("end = %+v, want %+v", end, tt.wantEnd)
			}
			if !lb.IsModified() {
				t.Error("expected modified after insert")
			}
		})
	}
}

func TestLineBuffer_InsertEmptyIsNoop(t *testing.T) {
	lb := NewLineBuffer("x")
	if _, err := lb.Insert(types.Position{}, ""); err != nil {
		t.Fatal(err)
	}
	if lb.IsModified() {
		t.Error("empty insert marked buffer modified")
	}
}

func TestLineBuffer_Delete(t *testing.T) {
	tests := []struct {
		name       string
		initial    string
		start, end types.Position
		want       string
	}{
		{"within line", "hello", types.Position{Line: 0, Col: 1}, types.Position{Line: 0, Col: 3}, "hlo"},
		{"join lines", "ab\ncd", types.Position{Line: 0, Col: 2}, types.Position{Line: 1, Col: 0}, "abcd"},
		{"span lines", "one\ntwo\nthree", types.Position{Line: 0, Col: 1}, types.Position{Line: 2, Col: 2}, "oree"},
		{"reversed", "hello", types.Position{Line: 0, Col: 4}, types.Position{Line: 0, Col: 1}, "ho"},
		{"everything", "a\nb", types.Position{}, types.Position{Line: 1, Col: 1}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lb := NewLineBuffer(tt.initial)
			if err := lb.Delete(tt.start, tt.end); err != nil {
				t.Fatal(err)
			}
			if got := lb.String(); got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
			if lb.LineCount() < 1 {
				t.Error("buffer must keep at least one line")
			}
		})
	}
}

func TestLineBuffer_OffsetPosition(t *testing.T) {
	lb := NewLineBuffer("ab\ncde\n")
	cases := []struct {
		pos    types.Position
		offset int
	}{
		{types.Position{Line: 0, Col: 0}, 0},
		{types.Position{Line: 0, Col: 2}, 2},
		{types.Position{Line: 1, Col: 0}, 3},
		{types.Position{Line: 1, Col: 3}, 6},
		{types.Position{Line: 2, Col: 0}, 7},
	}
	for _, c := range cases {
		if got := lb.Offset(c.pos); got != c.offset {
			t.Errorf("Offset(%+v) = %d, want %d", c.pos, got, c.offset)
		}
		if got := lb.PositionAt(c.offset); got != c.pos {
			t.Errorf("PositionAt(%d) = %+v, want %+v", c.offset, got, c.pos)
		}
	}
	if got := lb.PositionAt(100); got != (types.Position{Line: 2, Col: 0}) {
		t.Errorf("PositionAt past end = %+v", got)
	}
}

func TestLineBuffer_MarkSaved(t *testing.T) {
	lb := NewLineBuffer("")
	lb.Insert(types.Position{}, "x")
	lb.MarkSaved()
	if lb.IsModified() {
		t.Error("MarkSaved did not clear modified flag")
	}
}
