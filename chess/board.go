package chess

import (
	"encoding/binary"
	"hash/fnv"

	"boardgame/board"
)

const numRowsCols = 8

// backRank is the piece order of each side's first row.
var backRank = []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is the 8x8 chess board. Player 1 starts on rows 1 and 2 and
// advances toward row 8.
type Board struct {
	*board.Grid
}

// NewBoard creates a chess board in its starting layout.
func NewBoard() *Board {
	b := &Board{Grid: board.NewGrid(numRowsCols, numRowsCols)}
	b.Reset()
	return b
}

// Reset restores the standard starting layout.
func (b *Board) Reset() {
	b.Grid.Clear()
	for col := 1; col <= numRowsCols; col++ {
		b.Position(1, col).SetPiece(NewPiece(true, backRank[col-1]))
		b.Position(2, col).SetPiece(NewPiece(true, Pawn))
		b.Position(7, col).SetPiece(NewPiece(false, Pawn))
		b.Position(8, col).SetPiece(NewPiece(false, backRank[col-1]))
	}
}

// Copy returns a deep, independent board.
func (b *Board) Copy() *Board {
	return &Board{Grid: b.Grid.Copy()}
}

// MaxNumMoves is an upper bound for sizing move-history storage. Chess
// does not strictly terminate without external draw rules, so this is
// a generous cap on any game a search would explore, not a proof of
// termination.
func (b *Board) MaxNumMoves() int {
	return 500
}

// NumPositionStates is the number of occupancy states one square can
// take: six kinds per side plus empty.
func (b *Board) NumPositionStates() int {
	return 13
}

// MakeMove applies a move via the variant MoveMaker and pushes it on
// the history stack.
func (b *Board) MakeMove(m board.Move) error {
	if err := NewMoveMaker(b).MakeMove(m); err != nil {
		return err
	}
	b.RecordMove(m)
	return nil
}

// UndoMove reverses the most recently applied move. Undoing out of
// stack order panics.
func (b *Board) UndoMove(m board.Move) {
	b.RetractMove(m)
	NewMoveUndoer(b).UndoMove(m)
}

// PieceAt returns the chess piece at loc, nil for an empty square.
func (b *Board) PieceAt(loc board.Location) *Piece {
	piece := b.PositionAt(loc).Piece()
	if piece == nil {
		return nil
	}
	return piece.(*Piece)
}

// KingLocation returns where the given side's king stands, or false if
// it has been captured.
func (b *Board) KingLocation(player1 bool) (board.Location, bool) {
	for row := 1; row <= numRowsCols; row++ {
		for col := 1; col <= numRowsCols; col++ {
			piece := b.PieceAt(board.NewLocation(row, col))
			if piece != nil && piece.Kind() == King && piece.OwnedByPlayer1() == player1 {
				return board.NewLocation(row, col), true
			}
		}
	}
	return board.Location{}, false
}

// Material returns the summed piece values of the given side,
// excluding the king.
func (b *Board) Material(player1 bool) int {
	total := 0
	for row := 1; row <= numRowsCols; row++ {
		for col := 1; col <= numRowsCols; col++ {
			piece := b.PieceAt(board.NewLocation(row, col))
			if piece != nil && piece.OwnedByPlayer1() == player1 && piece.Kind() != King {
				total += piece.Value()
			}
		}
	}
	return total
}

// Hash returns a fast hash of the occupancy for search caches.
func (b *Board) Hash() board.StateHash {
	hasher := fnv.New64a()
	for row := 1; row <= numRowsCols; row++ {
		for col := 1; col <= numRowsCols; col++ {
			piece := b.PieceAt(board.NewLocation(row, col))
			var v int64
			if piece != nil {
				v = int64(piece.Kind())
				if !piece.OwnedByPlayer1() {
					v = -v
				}
			}
			binary.Write(hasher, binary.LittleEndian, v)
		}
	}
	return board.StateHash(hasher.Sum64())
}
