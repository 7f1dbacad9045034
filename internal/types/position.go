// internal/types/position.go
package types

// Position is a location in a document.
// Line is the 0-based line index.
// Col is the 0-based rune index within the line.
type Position struct {
	Line int
	Col  int
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	return p.Line < other.Line || (p.Line == other.Line && p.Col < other.Col)
}
