package checkers

import "boardgame/board"

// movesFor generates the legal moves of the given side. Jumps are
// mandatory: when any jump exists only jumps are returned.
func (b *Board) movesFor(player1 bool) []*Move {
	var jumps, steps []*Move
	for row := 1; row <= numRowsCols; row++ {
		for col := 1; col <= numRowsCols; col++ {
			from := board.NewLocation(row, col)
			piece := b.PieceAt(from)
			if piece == nil || piece.OwnedByPlayer1() != player1 {
				continue
			}
			jumps = append(jumps, b.jumpMoves(from, from, piece, nil)...)
			steps = append(steps, b.stepMoves(from, piece)...)
		}
	}
	if len(jumps) > 0 {
		return jumps
	}
	return steps
}

// directionsFor returns the diagonal directions the piece may move in:
// forward only for men, all four for kings.
func directionsFor(piece *Piece) [][2]int {
	if piece.IsKing() {
		return [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	}
	if piece.OwnedByPlayer1() {
		return [][2]int{{1, 1}, {1, -1}}
	}
	return [][2]int{{-1, 1}, {-1, -1}}
}

func (b *Board) stepMoves(from board.Location, piece *Piece) []*Move {
	var moves []*Move
	for _, d := range directionsFor(piece) {
		to := board.NewLocation(from.Row+d[0], from.Col+d[1])
		if b.InBounds(to.Row, to.Col) && b.PieceAt(to) == nil {
			moves = append(moves, NewMove(from, to, nil, 0, piece))
		}
	}
	return moves
}

// jumpMoves extends a jump chain from cur, accumulating the captures
// made so far. Each maximal continuation yields one move from the
// chain's origin to its final landing square. The board is never
// mutated; captured tracks pieces already jumped so a chain cannot
// jump the same piece twice.
func (b *Board) jumpMoves(origin, cur board.Location, piece *Piece, captured board.CaptureList) []*Move {
	var moves []*Move
	for _, d := range directionsFor(piece) {
		over := board.NewLocation(cur.Row+d[0], cur.Col+d[1])
		landing := board.NewLocation(cur.Row+2*d[0], cur.Col+2*d[1])
		if !b.InBounds(landing.Row, landing.Col) {
			continue
		}
		target := b.PieceAt(over)
		if target == nil || target.OwnedByPlayer1() == piece.OwnedByPlayer1() {
			continue
		}
		if alreadyCaptured(captured, over) {
			continue
		}
		// The moving piece has vacated its origin, so landing back on
		// it mid-chain is allowed.
		if b.PieceAt(landing) != nil && landing != origin {
			continue
		}

		chain := make(board.CaptureList, len(captured), len(captured)+1)
		copy(chain, captured)
		chain.Add(over, target)

		// A man crowned on the far row stops jumping.
		if !piece.IsKing() && landing.Row == promotionRow(piece.OwnedByPlayer1()) {
			moves = append(moves, NewMove(origin, landing, chain, 0, piece))
			continue
		}

		further := b.jumpMoves(origin, landing, piece, chain)
		if len(further) == 0 {
			moves = append(moves, NewMove(origin, landing, chain, 0, piece))
		} else {
			moves = append(moves, further...)
		}
	}
	return moves
}

func alreadyCaptured(captured board.CaptureList, loc board.Location) bool {
	for _, cap := range captured {
		if cap.Loc == loc {
			return true
		}
	}
	return false
}
