package mancala

import (
	"fmt"

	"boardgame/board"
)

// MoveMaker applies a seeding move to a board. It is the apply half of
// the apply/undo pair; MoveUndoer is its exact inverse.
type MoveMaker struct {
	board *Board
}

// NewMoveMaker creates a maker mutating b.
func NewMoveMaker(b *Board) *MoveMaker {
	return &MoveMaker{board: b}
}

// MakeMove seeds the stones of the move's origin bin one per bin along
// the ring, skipping the opponent's home. If the last stone lands in a
// previously empty non-home bin owned by the seeder, that stone and
// the full contents of the opposite bin are captured into the seeder's
// home, and both vacated bins are recorded in the move.
//
// Application is all or nothing: an illegal move returns an error and
// the board is left unmutated.
func (mm *MoveMaker) MakeMove(m board.Move) error {
	move, ok := m.(*Move)
	if !ok {
		panic("MoveMaker requires a mancala move")
	}
	origin := mm.board.Bin(move.FromLocation())

	if origin.IsHome() {
		return fmt.Errorf("cannot seed from home bin %v", move.FromLocation())
	}
	if origin.OwnedByPlayer1() != move.OwnedByPlayer1() {
		return fmt.Errorf("bin %v does not belong to the moving player", move.FromLocation())
	}
	if origin.NumStones() == 0 {
		return fmt.Errorf("cannot seed from empty bin %v", move.FromLocation())
	}
	if origin.NumStones() != move.NumStonesSeeded() {
		return fmt.Errorf("move seeds %d stones but bin %v holds %d",
			move.NumStonesSeeded(), move.FromLocation(), origin.NumStones())
	}

	stones := origin.TakeStones()
	loc := move.FromLocation()
	for i := 0; i < stones; i++ {
		loc = mm.board.nav.NextSeed(loc, move.OwnedByPlayer1())
		mm.board.Bin(loc).Add(1)
	}

	mm.capture(move, loc)
	return nil
}

// capture moves the landed stone and the opposite bin's contents into
// the seeder's home when the last stone landed in a previously empty
// non-home bin owned by the seeder.
func (mm *MoveMaker) capture(move *Move, lastLoc board.Location) {
	last := mm.board.Bin(lastLoc)
	if last.IsHome() || last.OwnedByPlayer1() != move.OwnedByPlayer1() || last.NumStones() != 1 {
		return
	}

	oppositeLoc := mm.board.nav.Opposite(lastLoc)
	opposite := mm.board.Bin(oppositeLoc)
	home := mm.board.HomeBin(move.OwnedByPlayer1())

	move.Captures().Put(lastLoc, last.NumStones())
	move.Captures().Put(oppositeLoc, opposite.NumStones())
	home.Add(last.TakeStones())
	home.Add(opposite.TakeStones())
}
