package chess

import "boardgame/board"

// Movement offsets. Sliding pieces repeat theirs until blocked.
var (
	knightOffsets = [][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	bishopOffsets = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookOffsets   = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	royalOffsets  = append(append([][2]int{}, bishopOffsets...), rookOffsets...)
)

// movesFor generates the pseudo-legal moves of the given side. Special
// moves that need more rules context (castling, en passant) belong to
// the full chess ruleset outside this core; the first-time-moved flag
// tracked by pieces and moves keeps them implementable on top.
func (b *Board) movesFor(player1 bool) []*Move {
	var moves []*Move
	for row := 1; row <= numRowsCols; row++ {
		for col := 1; col <= numRowsCols; col++ {
			from := board.NewLocation(row, col)
			piece := b.PieceAt(from)
			if piece == nil || piece.OwnedByPlayer1() != player1 {
				continue
			}
			switch piece.Kind() {
			case Pawn:
				moves = append(moves, b.pawnMoves(from, piece)...)
			case Knight:
				moves = append(moves, b.stepMoves(from, piece, knightOffsets)...)
			case Bishop:
				moves = append(moves, b.slideMoves(from, piece, bishopOffsets)...)
			case Rook:
				moves = append(moves, b.slideMoves(from, piece, rookOffsets)...)
			case Queen:
				moves = append(moves, b.slideMoves(from, piece, royalOffsets)...)
			case King:
				moves = append(moves, b.stepMoves(from, piece, royalOffsets)...)
			}
		}
	}
	return moves
}

func (b *Board) pawnMoves(from board.Location, piece *Piece) []*Move {
	var moves []*Move
	dir := 1
	if !piece.OwnedByPlayer1() {
		dir = -1
	}

	oneAhead := board.NewLocation(from.Row+dir, from.Col)
	if b.InBounds(oneAhead.Row, oneAhead.Col) && b.PieceAt(oneAhead) == nil {
		moves = append(moves, NewMove(from, oneAhead, nil, 0, piece))

		twoAhead := board.NewLocation(from.Row+2*dir, from.Col)
		if !piece.HasMoved() && b.InBounds(twoAhead.Row, twoAhead.Col) && b.PieceAt(twoAhead) == nil {
			moves = append(moves, NewMove(from, twoAhead, nil, 0, piece))
		}
	}

	for _, dc := range []int{-1, 1} {
		to := board.NewLocation(from.Row+dir, from.Col+dc)
		if !b.InBounds(to.Row, to.Col) {
			continue
		}
		if target := b.PieceAt(to); target != nil && target.OwnedByPlayer1() != piece.OwnedByPlayer1() {
			moves = append(moves, b.captureMove(from, to, piece, target))
		}
	}
	return moves
}

func (b *Board) stepMoves(from board.Location, piece *Piece, offsets [][2]int) []*Move {
	var moves []*Move
	for _, off := range offsets {
		to := board.NewLocation(from.Row+off[0], from.Col+off[1])
		if !b.InBounds(to.Row, to.Col) {
			continue
		}
		target := b.PieceAt(to)
		switch {
		case target == nil:
			moves = append(moves, NewMove(from, to, nil, 0, piece))
		case target.OwnedByPlayer1() != piece.OwnedByPlayer1():
			moves = append(moves, b.captureMove(from, to, piece, target))
		}
	}
	return moves
}

func (b *Board) slideMoves(from board.Location, piece *Piece, offsets [][2]int) []*Move {
	var moves []*Move
	for _, off := range offsets {
		to := from
		for {
			to = board.NewLocation(to.Row+off[0], to.Col+off[1])
			if !b.InBounds(to.Row, to.Col) {
				break
			}
			target := b.PieceAt(to)
			if target == nil {
				moves = append(moves, NewMove(from, to, nil, 0, piece))
				continue
			}
			if target.OwnedByPlayer1() != piece.OwnedByPlayer1() {
				moves = append(moves, b.captureMove(from, to, piece, target))
			}
			break
		}
	}
	return moves
}

func (b *Board) captureMove(from, to board.Location, piece, target *Piece) *Move {
	var captures board.CaptureList
	captures.Add(to, target)
	return NewMove(from, to, captures, 0, piece)
}
