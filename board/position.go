package board

import "fmt"

// Position is a single board cell: a coordinate plus at most one piece.
// The position exclusively owns its piece; nothing else holds a
// reference to the piece once placed.
type Position struct {
	loc   Location
	piece Piece
}

// NewPosition creates a position at loc holding piece (nil if empty).
func NewPosition(loc Location, piece Piece) Position {
	return Position{loc: loc, piece: piece}
}

func (p *Position) Location() Location { return p.loc }
func (p *Position) Row() int { return p.loc.Row }
func (p *Position) Col() int { return p.loc.Col }

// Piece returns the occupant, or nil if the position is empty.
func (p *Position) Piece() Piece { return p.piece }

// SetPiece assigns the occupant. The position takes ownership.
func (p *Position) SetPiece(piece Piece) { p.piece = piece }

func (p *Position) IsOccupied() bool { return p.piece != nil }

// Clear makes the position empty.
func (p *Position) Clear() { p.piece = nil }

// Copy returns an independent position with a deep copy of the piece.
func (p *Position) Copy() Position {
	c := Position{loc: p.loc}
	if p.piece != nil {
		c.piece = p.piece.Copy()
	}
	return c
}

// Equal reports whether two positions have the same coordinate and the
// same occupancy side: both empty, or both occupied by pieces owned by
// the same player. This is deliberately loose - it does not distinguish
// piece kind - and is meant for search-state comparison, not deep
// structural comparison.
func (p *Position) Equal(other *Position) bool {
	if other == nil {
		return false
	}
	if p.loc != other.loc {
		return false
	}
	if p.piece == nil || other.piece == nil {
		return p.piece == nil && other.piece == nil
	}
	return p.piece.OwnedByPlayer1() == other.piece.OwnedByPlayer1()
}

// Key maps the coordinate to a dense index in [0, numRows*numCols).
// Positions that compare equal always share a key, and distinct
// coordinates never collide regardless of board size.
func (p *Position) Key(numCols int) int {
	return (p.loc.Row-1)*numCols + (p.loc.Col - 1)
}

// Distance returns the euclidean distance to another position.
func (p *Position) Distance(other *Position) float64 {
	return p.loc.Distance(other.loc)
}

// IsNeighbor reports whether the other position is an immediate neighbor.
func (p *Position) IsNeighbor(other *Position) bool {
	return p.Distance(other) == 1
}

// Description returns a human readable form, e.g. "3 (2, 5)".
func (p *Position) Description() string {
	if p.piece == nil {
		return fmt.Sprintf("_ %v", p.loc)
	}
	return fmt.Sprintf("%s %v", p.piece.Description(), p.loc)
}

func (p *Position) String() string { return p.Description() }
