// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/textwriter/internal/types"

// Buffer defines the interface for text buffer operations.
type Buffer interface {
	Lines() [][]rune
	Line(index int) ([]rune, error)
	LineCount() int
	Insert(pos types.Position, text string) (types.Position, error)
	Delete(start, end types.Position) error
	String() string
	Len() int
	Offset(pos types.Position) int
	PositionAt(offset int) types.Position
	ClampPosition(pos types.Position) types.Position
	IsModified() bool
	MarkSaved()
	MarkModified()
}

var _ Buffer = (*LineBuffer)(nil)
