package board

import (
	"fmt"
	"math"
)

// Location is an immutable (row, column) coordinate on a board.
// Both coordinates start at 1.
type Location struct {
	Row int
	Col int
}

// NewLocation creates a location at the given row and column.
func NewLocation(row, col int) Location {
	return Location{Row: row, Col: col}
}

// Distance returns the euclidean distance to another location.
func (l Location) Distance(other Location) float64 {
	dr := float64(l.Row - other.Row)
	dc := float64(l.Col - other.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// IsAdjacent reports whether the other location is an immediate
// (non-diagonal) neighbor.
func (l Location) IsAdjacent(other Location) bool {
	return l.Distance(other) == 1
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.Row, l.Col)
}
