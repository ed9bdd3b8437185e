package mancala

import "boardgame/board"

// MoveUndoer restores the board to its exact state before a MoveMaker
// applied the move.
type MoveUndoer struct {
	board *Board
}

// NewMoveUndoer creates an undoer mutating b.
func NewMoveUndoer(b *Board) *MoveUndoer {
	return &MoveUndoer{board: b}
}

// UndoMove reverses the capture before reversing the seeding - order
// matters, because the capture was a side effect of seeding's terminal
// state. Captured stones return from the home bin to the bins they
// vacated, then one stone is lifted back out of each seeded bin and
// the origin bin's count is restored.
func (mu *MoveUndoer) UndoMove(m board.Move) {
	move, ok := m.(*Move)
	if !ok {
		panic("MoveUndoer requires a mancala move")
	}

	move.Captures().restore(mu.board, move.OwnedByPlayer1())
	move.Captures().Clear()

	loc := move.FromLocation()
	for i := 0; i < move.NumStonesSeeded(); i++ {
		loc = mu.board.nav.NextSeed(loc, move.OwnedByPlayer1())
		mu.board.Bin(loc).Add(-1)
	}
	mu.board.Bin(move.FromLocation()).Add(move.NumStonesSeeded())
}
