package checkers

import (
	"fmt"

	"boardgame/board"
)

// MoveMaker applies a checkers move: relocation plus removal of every
// jumped piece, with promotion at the far row. MoveUndoer is its exact
// inverse.
type MoveMaker struct {
	board *Board
}

// NewMoveMaker creates a maker mutating b.
func NewMoveMaker(b *Board) *MoveMaker {
	return &MoveMaker{board: b}
}

// MakeMove relocates the piece, removes the jumped pieces recorded in
// the move, and crowns a man that reaches the far row, snapshotting
// the promotion into the move. Application is all or nothing: an
// illegal move returns an error and the board is left unmutated.
func (mm *MoveMaker) MakeMove(m board.Move) error {
	move, ok := m.(*Move)
	if !ok {
		panic("MoveMaker requires a checkers move")
	}
	from := mm.board.PositionAt(move.FromLocation())
	if !from.IsOccupied() {
		return fmt.Errorf("no piece to move at %v", move.FromLocation())
	}
	piece, ok := from.Piece().(*Piece)
	if !ok {
		panic(fmt.Sprintf("piece at %v is not a checkers piece", move.FromLocation()))
	}
	if piece.OwnedByPlayer1() != move.OwnedByPlayer1() {
		return fmt.Errorf("piece at %v does not belong to the moving player", move.FromLocation())
	}
	// A jump chain may come full circle and land on its own origin.
	if move.ToLocation() != move.FromLocation() && mm.board.PositionAt(move.ToLocation()).IsOccupied() {
		return fmt.Errorf("destination %v is occupied", move.ToLocation())
	}

	move.captures.RemoveFromBoard(mm.board.Grid)

	if !piece.IsKing() && move.ToLocation().Row == promotionRow(piece.OwnedByPlayer1()) {
		piece.Crown()
		move.kinged = true
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

// UndoMove demotes a piece this move crowned, relocates it back to its
// origin, and restores every jumped piece to the square it vacated.
func (mu *MoveUndoer) UndoMove(m board.Move) {
	move, ok := m.(*Move)
	if !ok {
		panic("MoveUndoer requires a checkers move")
	}
	to := mu.board.PositionAt(move.ToLocation())
	piece, ok := to.Piece().(*Piece)
	if !ok {
		panic(fmt.Sprintf("no checkers piece to undo at %v", move.ToLocation()))
	}

	if move.kinged {
		piece.Uncrown()
		move.kinged = false
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
