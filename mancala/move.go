package mancala

import (
	"fmt"

	"boardgame/board"
)

// Move is one seeding: the player lifts every stone out of an origin
// bin and deposits them one per bin along the ring. The stone count is
// snapshotted at generation time, and the capture record is filled in
// by the MoveMaker so the MoveUndoer can exactly reverse the move.
type Move struct {
	player1  bool
	from     board.Location
	stones   int
	val      int
	captures Captures
}

// NewMove creates a seeding move for the given side from the origin
// bin, seeding the given number of stones.
func NewMove(player1 bool, from board.Location, stones int) *Move {
	return &Move{player1: player1, from: from, stones: stones}
}

func (m *Move) OwnedByPlayer1() bool { return m.player1 }
func (m *Move) FromLocation() board.Location { return m.from }
func (m *Move) NumStonesSeeded() int { return m.stones }
func (m *Move) Value() int { return m.val }

// SetValue assigns the move-ordering value. Called once at generation.
func (m *Move) SetValue(val int) { m.val = val }

// Captures returns the record of stones this move captured.
func (m *Move) Captures() *Captures { return &m.captures }

// Copy returns an independent deep copy for speculative search.
func (m *Move) Copy() board.Move {
	c := *m
	c.captures = m.captures.Copy()
	return &c
}

func (m *Move) String() string {
	side := "player2"
	if m.player1 {
		side = "player1"
	}
	s := fmt.Sprintf("%s seeds %d from %v", side, m.stones, m.from)
	if !m.captures.IsEmpty() {
		s += fmt.Sprintf(" capturing %d from %v", m.captures.NumStones(), m.captures.Locations())
	}
	return s
}
