package chess

import (
	"fmt"

	"boardgame/board"
)

// Move describes a change in state from one chess position to the
// next: a relocation with at most one capture. The firstTimeMoved and
// promotion snapshots are taken by the MoveMaker before it mutates the
// piece, since neither is derivable from the board afterwards.
type Move struct {
	from     board.Location
	to       board.Location
	val      int
	piece    *Piece
	captures board.CaptureList

	// firstTimeMoved records whether applying this move was the first
	// time the piece moved.
	firstTimeMoved bool
	// promoted records that applying this move promoted a pawn.
	promoted bool
}

// NewMove is the factory for chess moves. captures is nil when the
// destination is empty; in chess a single move never captures more
// than one piece.
func NewMove(from, to board.Location, captures board.CaptureList, val int, piece *Piece) *Move {
	return &Move{
		from:           from,
		to:             to,
		val:            val,
		piece:          piece,
		captures:       captures,
		firstTimeMoved: true,
	}
}

func (m *Move) OwnedByPlayer1() bool { return m.piece.OwnedByPlayer1() }
func (m *Move) FromLocation() board.Location { return m.from }
func (m *Move) ToLocation() board.Location { return m.to }
func (m *Move) Value() int { return m.val }
func (m *Move) Piece() *Piece { return m.piece }

// Captures returns the capture record, empty for a quiet move.
func (m *Move) Captures() board.CaptureList { return m.captures }

func (m *Move) IsFirstTimeMoved() bool { return m.firstTimeMoved }
func (m *Move) IsPromotion() bool { return m.promoted }

// Copy returns an independent deep copy of the move.
func (m *Move) Copy() board.Move {
	c := *m
	c.piece = m.piece.Copy().(*Piece)
	c.captures = m.captures.Copy()
	return &c
}

func (m *Move) String() string {
	s := fmt.Sprintf("%s %v->%v", m.piece.Description(), m.from, m.to)
	if m.firstTimeMoved {
		s += " firstTimeMoved"
	}
	for _, cap := range m.captures {
		s += fmt.Sprintf(" x%s %v", cap.Piece.Description(), cap.Loc)
	}
	return s
}
