package board

import (
	"fmt"
	"strings"
)

// Grid is the rectangular slab of positions every variant board is
// built on. It owns one Position per (row, col) in
// [1..numRows] x [1..numCols]; a position's slot is stable across a
// game, only its occupant changes.
//
// The grid also owns the move history stack that makes the apply/undo
// protocol safe: moves must be undone in exact reverse application
// order, and the grid fails loudly when a caller breaks that
// discipline instead of corrupting state silently.
//
// A grid and its positions are exclusively owned by one logical game
// or one search worker's board copy; it is not safe for concurrent
// mutation.
type Grid struct {
	numRows   int
	numCols   int
	positions []Position
	history   []Move
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(numRows, numCols int) *Grid {
	if numRows < 1 || numCols < 1 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d", numRows, numCols))
	}
	g := &Grid{numRows: numRows, numCols: numCols}
	g.positions = make([]Position, numRows*numCols)
	for row := 1; row <= numRows; row++ {
		for col := 1; col <= numCols; col++ {
			g.positions[g.index(row, col)] = NewPosition(NewLocation(row, col), nil)
		}
	}
	return g
}

func (g *Grid) NumRows() int { return g.numRows }
func (g *Grid) NumCols() int { return g.numCols }

func (g *Grid) index(row, col int) int {
	return (row-1)*g.numCols + (col - 1)
}

// InBounds reports whether (row, col) is a valid coordinate.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 1 && row <= g.numRows && col >= 1 && col <= g.numCols
}

// Position returns the mutable position at (row, col). A coordinate
// outside the board is a fatal precondition violation: it panics,
// never clamps.
func (g *Grid) Position(row, col int) *Position {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("position (%d, %d) outside %dx%d board", row, col, g.numRows, g.numCols))
	}
	return &g.positions[g.index(row, col)]
}

// PositionAt returns the mutable position at loc.
func (g *Grid) PositionAt(loc Location) *Position {
	return g.Position(loc.Row, loc.Col)
}

// PositionKey maps loc to a dense index in [0, numRows*numCols),
// collision free for the board's actual dimensions.
func (g *Grid) PositionKey(loc Location) int {
	p := g.PositionAt(loc)
	return p.Key(g.numCols)
}

// Clear empties every position and discards the move history.
func (g *Grid) Clear() {
	for i := range g.positions {
		g.positions[i].Clear()
	}
	g.history = nil
}

// Copy returns a deep, fully independent grid: every position and
// piece is cloned, and the history is copied move by move. Mutating
// one copy never affects the other.
func (g *Grid) Copy() *Grid {
	c := &Grid{numRows: g.numRows, numCols: g.numCols}
	c.positions = make([]Position, len(g.positions))
	for i := range g.positions {
		c.positions[i] = g.positions[i].Copy()
	}
	if g.history != nil {
		c.history = make([]Move, len(g.history))
		for i, m := range g.history {
			c.history[i] = m.Copy()
		}
	}
	return c
}

// Equal reports position-wise equality under the loose occupancy-side
// model: same dimensions and every position equal per Position.Equal.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.numRows != other.numRows || g.numCols != other.numCols {
		return false
	}
	for i := range g.positions {
		if !g.positions[i].Equal(&other.positions[i]) {
			return false
		}
	}
	return true
}

// RecordMove pushes an applied move onto the history stack.
func (g *Grid) RecordMove(m Move) {
	g.history = append(g.history, m)
}

// RetractMove pops the most recently applied move. Undoing any other
// move is an undo/apply mismatch and panics.
func (g *Grid) RetractMove(m Move) {
	if len(g.history) == 0 {
		panic("undo without a matching apply")
	}
	top := g.history[len(g.history)-1]
	if top != m {
		panic("undo out of stack order")
	}
	g.history = g.history[:len(g.history)-1]
}

// LastMove returns the most recently applied move, nil at the start.
func (g *Grid) LastMove() Move {
	if len(g.history) == 0 {
		return nil
	}
	return g.history[len(g.history)-1]
}

// NumMovesMade returns the number of moves applied and not undone.
func (g *Grid) NumMovesMade() int { return len(g.history) }

func (g *Grid) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for row := 1; row <= g.numRows; row++ {
		for col := 1; col <= g.numCols; col++ {
			pos := g.Position(row, col)
			if pos.IsOccupied() {
				sb.WriteString(" " + pos.Piece().Description())
			} else {
				sb.WriteString(" _")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
