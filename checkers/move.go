package checkers

import (
	"fmt"

	"boardgame/board"
)

// Move describes one checkers move: a diagonal step, or a jump chain
// capturing every piece jumped over. The kinged snapshot is taken by
// the MoveMaker so undo can demote a piece crowned by this move.
type Move struct {
	from     board.Location
	to       board.Location
	val      int
	piece    *Piece
	captures board.CaptureList

	// kinged records that applying this move crowned the piece.
	kinged bool
}

// NewMove is the factory for checkers moves. captures holds every
// piece jumped over, in jump order; nil for a plain step.
func NewMove(from, to board.Location, captures board.CaptureList, val int, piece *Piece) *Move {
	return &Move{from: from, to: to, val: val, piece: piece, captures: captures}
}

func (m *Move) OwnedByPlayer1() bool { return m.piece.OwnedByPlayer1() }
func (m *Move) FromLocation() board.Location { return m.from }
func (m *Move) ToLocation() board.Location { return m.to }
func (m *Move) Value() int { return m.val }
func (m *Move) Piece() *Piece { return m.piece }

// Captures returns the jumped pieces, empty for a plain step.
func (m *Move) Captures() board.CaptureList { return m.captures }

func (m *Move) IsJump() bool { return len(m.captures) > 0 }
func (m *Move) IsKinged() bool { return m.kinged }

// Copy returns an independent deep copy of the move.
func (m *Move) Copy() board.Move {
	c := *m
	c.piece = m.piece.Copy().(*Piece)
	c.captures = m.captures.Copy()
	return &c
}

func (m *Move) String() string {
	s := fmt.Sprintf("%s %v->%v", m.piece.Description(), m.from, m.to)
	for _, cap := range m.captures {
		s += fmt.Sprintf(" x%v", cap.Loc)
	}
	return s
}
