// internal/buffer/line_buffer.go
package buffer

import (
	"fmt"
	"strings"

	"github.com/bethropolis/textwriter/internal/types"
)

// LineBuffer stores text as rune lines split on '\n' only. Any '\r' stays
// part of its line, so String() reproduces the loaded text byte for byte.
type LineBuffer struct {
	lines    [][]rune
	modified bool // Track if buffer has unsaved changes
}

// NewLineBuffer creates a buffer holding text. The result is not modified.
func NewLineBuffer(text string) *LineBuffer {
	return &LineBuffer{lines: splitLines(text)}
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}

// Lines returns the underlying lines. Callers must not modify them.
func (lb *LineBuffer) Lines() [][]rune {
	return lb.lines
}

// LineCount returns the number of lines (always at least one).
func (lb *LineBuffer) LineCount() int {
	return len(lb.lines)
}

// Line returns a single line.
func (lb *LineBuffer) Line(index int) ([]rune, error) {
	if index < 0 || index >= len(lb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(lb.lines)-1)
	}
	return lb.lines[index], nil
}

// String joins the lines with '\n'.
func (lb *LineBuffer) String() string {
	var sb strings.Builder
	for i, line := range lb.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Len returns the length in runes, counting each line break as one.
func (lb *LineBuffer) Len() int {
	n := len(lb.lines) - 1
	for _, line := range lb.lines {
		n += len(line)
	}
	return n
}

// IsModified returns true if the buffer has unsaved changes.
func (lb *LineBuffer) IsModified() bool {
	return lb.modified
}

// MarkSaved clears the modified flag.
func (lb *LineBuffer) MarkSaved() {
	lb.modified = false
}

// MarkModified sets the modified flag without changing the text.
func (lb *LineBuffer) MarkModified() {
	lb.modified = true
}

// ClampPosition moves pos into the buffer's bounds.
func (lb *LineBuffer) ClampPosition(pos types.Position) types.Position {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(lb.lines) {
		pos.Line = len(lb.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if n := len(lb.lines[pos.Line]); pos.Col > n {
		pos.Col = n
	}
	return pos
}

// Offset converts a position into a rune offset from the start of the text.
func (lb *LineBuffer) Offset(pos types.Position) int {
	pos = lb.ClampPosition(pos)
	off := 0
	for i := 0; i < pos.Line; i++ {
		off += len(lb.lines[i]) + 1
	}
	return off + pos.Col
}

// PositionAt converts a rune offset into a position, clamping to the text.
func (lb *LineBuffer) PositionAt(offset int) types.Position {
	if offset <= 0 {
		return types.Position{}
	}
	for i, line := range lb.lines {
		if offset <= len(line) {
			return types.Position{Line: i, Col: offset}
		}
		offset -= len(line) + 1
	}
	last := len(lb.lines) - 1
	return types.Position{Line: last, Col: len(lb.lines[last])}
}

// Insert inserts text at pos and returns the position just after it.
func (lb *LineBuffer) Insert(pos types.Position, text string) (types.Position, error) {
	pos = lb.ClampPosition(pos)
	if text == "" {
		return pos, nil
	}
	lb.modified = true

	current := lb.lines[pos.Line]
	head := append([]rune(nil), current[:pos.Col]...)
	tail := append([]rune(nil), current[pos.Col:]...)

	inserted := splitLines(text)
	if len(inserted) == 1 {
		line := append(head, inserted[0]...)
		lb.lines[pos.Line] = append(line, tail...)
		return types.Position{Line: pos.Line, Col: pos.Col + len(inserted[0])}, nil
	}

	last := len(inserted) - 1
	end := types.Position{Line: pos.Line + last, Col: len(inserted[last])}

	newLines := make([][]rune, 0, len(inserted))
	newLines = append(newLines, append(head, inserted[0]...))
	newLines = append(newLines, inserted[1:last]...)
	newLines = append(newLines, append(inserted[last], tail...))

	rest := lb.lines[pos.Line+1:]
	lines := make([][]rune, 0, pos.Line+len(newLines)+len(rest))
	lines = append(lines, lb.lines[:pos.Line]...)
	lines = append(lines, newLines...)
	lb.lines = append(lines, rest...)
	return end, nil
}

// Delete removes text within [start, end). The positions may be given in either order.
func (lb *LineBuffer) Delete(start, end types.Position) error {
	if end.Before(start) {
		start, end = end, start
	}
	start = lb.ClampPosition(start)
	end = lb.ClampPosition(end)
	if start == end {
		return nil
	}
	lb.modified = true

	head := lb.lines[start.Line][:start.Col]
	tail := lb.lines[end.Line][end.Col:]
	merged := make([]rune, 0, len(head)+len(tail))
	merged = append(merged, head...)
	merged = append(merged, tail...)

	lines := make([][]rune, 0, len(lb.lines)-(end.Line-start.Line))
	lines = append(lines, lb.lines[:start.Line]...)
	lines = append(lines, merged)
	lb.lines = append(lines, lb.lines[end.Line+1:]...)
	return nil
}

// Ensure LineBuffer satisfies the Buffer interface
var _ Buffer = (*LineBuffer)(nil)
