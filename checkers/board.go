package checkers

import (
	"encoding/binary"
	"hash/fnv"

	"boardgame/board"
)

const (
	numRowsCols = 8
	pieceRows   = 3
)

// Board is the 8x8 checkers board. Pieces live on the dark squares,
// where row+col is even. Player 1 starts on rows 1..3 and advances
// toward row 8.
type Board struct {
	*board.Grid
}

// NewBoard creates a checkers board in its starting layout.
func NewBoard() *Board {
	b := &Board{Grid: board.NewGrid(numRowsCols, numRowsCols)}
	b.Reset()
	return b
}

// Reset restores the starting layout: twelve men per side on the dark
// squares of the three rows nearest each player.
func (b *Board) Reset() {
	b.Grid.Clear()
	for row := 1; row <= pieceRows; row++ {
		for col := 1; col <= numRowsCols; col++ {
			if isPlaySquare(row, col) {
				b.Position(row, col).SetPiece(NewPiece(true))
			}
			backRow := numRowsCols - row + 1
			if isPlaySquare(backRow, col) {
				b.Position(backRow, col).SetPiece(NewPiece(false))
			}
		}
	}
}

// isPlaySquare reports whether (row, col) is a dark square.
func isPlaySquare(row, col int) bool {
	return (row+col)%2 == 0
}

// Copy returns a deep, independent board.
func (b *Board) Copy() *Board {
	return &Board{Grid: b.Grid.Copy()}
}

// MaxNumMoves is an upper bound for sizing move-history storage.
// Checkers does not strictly terminate without external draw rules, so
// this is a generous cap on any game a search would explore.
func (b *Board) MaxNumMoves() int {
	return 400
}

// NumPositionStates is the number of occupancy states one square can
// take: man or king per side, plus empty.
func (b *Board) NumPositionStates() int {
	return 5
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

// PieceAt returns the checkers piece at loc, nil for an empty square.
func (b *Board) PieceAt(loc board.Location) *Piece {
	piece := b.PositionAt(loc).Piece()
	if piece == nil {
		return nil
	}
	return piece.(*Piece)
}

// NumPieces counts the given side's remaining pieces.
func (b *Board) NumPieces(player1 bool) int {
	count := 0
	for row := 1; row <= numRowsCols; row++ {
		for col := 1; col <= numRowsCols; col++ {
			piece := b.PieceAt(board.NewLocation(row, col))
			if piece != nil && piece.OwnedByPlayer1() == player1 {
				count++
			}
		}
	}
	return count
}

// Material returns the summed piece values of the given side.
func (b *Board) Material(player1 bool) int {
	total := 0
	for row := 1; row <= numRowsCols; row++ {
		for col := 1; col <= numRowsCols; col++ {
			piece := b.PieceAt(board.NewLocation(row, col))
			if piece != nil && piece.OwnedByPlayer1() == player1 {
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
				v = int64(piece.Value())
				if !piece.OwnedByPlayer1() {
					v = -v
				}
			}
			binary.Write(hasher, binary.LittleEndian, v)
		}
	}
	return board.StateHash(hasher.Sum64())
}
