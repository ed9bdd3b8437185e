package chess

import (
	"fmt"

	"boardgame/board"
)

// MoveMaker applies a chess move: a single relocation with an optional
// capture and the first-time-moved flag flip. MoveUndoer is its exact
// inverse.
type MoveMaker struct {
	board *Board
}

// NewMoveMaker creates a maker mutating b.
func NewMoveMaker(b *Board) *MoveMaker {
	return &MoveMaker{board: b}
}

// MakeMove relocates the piece from the move's origin to its
// destination, removing any captured piece first. The move snapshots
// the piece's moved flag before the flip, since the pre-move value is
// not derivable from the flag afterwards. Application is all or
// nothing: an illegal move returns an error and the board is left
// unmutated.
func (mm *MoveMaker) MakeMove(m board.Move) error {
	move, ok := m.(*Move)
	if !ok {
		panic("MoveMaker requires a chess move")
	}
	from := mm.board.PositionAt(move.FromLocation())
	if !from.IsOccupied() {
		return fmt.Errorf("no piece to move at %v", move.FromLocation())
	}
	piece, ok := from.Piece().(*Piece)
	if !ok {
		panic(fmt.Sprintf("piece at %v is not a chess piece", move.FromLocation()))
	}
	if piece.OwnedByPlayer1() != move.OwnedByPlayer1() {
		return fmt.Errorf("piece at %v does not belong to the moving player", move.FromLocation())
	}

	move.captures.RemoveFromBoard(mm.board.Grid)

	move.firstTimeMoved = !piece.HasMoved()
	piece.SetMoved(true)

	if piece.Kind() == Pawn && move.ToLocation().Row == promotionRow(piece.OwnedByPlayer1()) {
		piece.Promote(Queen)
		move.promoted = true
	}

	from.Clear()
	mm.board.PositionAt(move.ToLocation()).SetPiece(piece)
	return nil
}

// MoveUndoer restores the board to its exact state before a MoveMaker
// applied the move.
type MoveUndoer struct {
	board *Board
}

// NewMoveUndoer creates an undoer mutating b.
func NewMoveUndoer(b *Board) *MoveUndoer {
	return &MoveUndoer{board: b}
}

// UndoMove relocates the piece back to its origin, restores its moved
// flag and kind from the move's snapshots, and puts any captured piece
// back with its original position and ownership.
func (mu *MoveUndoer) UndoMove(m board.Move) {
	move, ok := m.(*Move)
	if !ok {
		panic("MoveUndoer requires a chess move")
	}
	to := mu.board.PositionAt(move.ToLocation())
	piece, ok := to.Piece().(*Piece)
	if !ok {
		panic(fmt.Sprintf("no chess piece to undo at %v", move.ToLocation()))
	}

	if move.promoted {
		piece.Promote(Pawn)
		move.promoted = false
	}
	if move.firstTimeMoved {
		piece.SetMoved(false)
	}

	to.Clear()
	mu.board.PositionAt(move.FromLocation()).SetPiece(piece)

	move.captures.RestoreToBoard(mu.board.Grid)
}

// promotionRow is the far row for the given side.
func promotionRow(player1 bool) int {
	if player1 {
		return numRowsCols
	}
	return 1
}
