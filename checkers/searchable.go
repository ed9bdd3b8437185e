package checkers

import (
	"sort"

	"boardgame/board"
	"boardgame/player"
)

// Weight vector layout for checkers evaluation.
const (
	// MaterialWeight scales the material differential (kings count 3,
	// men count 1).
	MaterialWeight = iota
	// CaptureWeight scales the number of jumped pieces when ordering
	// moves.
	CaptureWeight

	NumWeights
)

// DefaultWeights orders jumps first and scores by material.
func DefaultWeights() board.Weights {
	return board.Weights{1, 5}
}

// Searchable adapts a checkers board and its player list to the
// contract an external tree search consumes.
type Searchable struct {
	board   *Board
	players *player.List
}

// NewSearchable wraps a board and its players.
func NewSearchable(b *Board, players *player.List) *Searchable {
	return &Searchable{board: b, players: players}
}

// Board returns the wrapped board for read-only queries.
func (s *Searchable) Board() *Board { return s.board }

// GenerateMoves returns the legal moves for the side to move next,
// longest jumps first, without mutating the board. Player 1 opens;
// afterwards the sides strictly alternate. The result is empty when
// the side to move has no pieces or no moves, i.e. has lost.
func (s *Searchable) GenerateMoves(lastMove board.Move, weights board.Weights) []board.Move {
	player1 := lastMove == nil || !lastMove.OwnedByPlayer1()

	generated := s.board.movesFor(player1)
	moves := make([]board.Move, 0, len(generated))
	for _, m := range generated {
		m.val = int(weights[CaptureWeight]) * len(m.Captures())
		moves = append(moves, m)
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Value() > moves[j].Value()
	})
	return moves
}

// Worth evaluates the position reached by move, which must be the most
// recently applied move on the board: the weighted material
// differential, positive for the side that just moved.
func (s *Searchable) Worth(move board.Move, weights board.Weights) int {
	score := int(weights[MaterialWeight]) * (s.board.Material(true) - s.board.Material(false))
	if !move.OwnedByPlayer1() {
		score = -score
	}
	return score
}

// MoveAgain always reports false: checkers turns strictly alternate.
func (s *Searchable) MoveAgain(board.Move) bool { return false }

// StrengthOfWin is the material differential once one side has no
// pieces left, positive when player 1 won, and 0 before that.
func (s *Searchable) StrengthOfWin() int {
	if s.board.NumPieces(true) > 0 && s.board.NumPieces(false) > 0 {
		return 0
	}
	return s.board.Material(true) - s.board.Material(false)
}

func (s *Searchable) MakeMove(m board.Move) error { return s.board.MakeMove(m) }
func (s *Searchable) UndoMove(m board.Move) { s.board.UndoMove(m) }
func (s *Searchable) MaxNumMoves() int { return s.board.MaxNumMoves() }
