package chess

import (
	"sort"

	"boardgame/board"
	"boardgame/player"
)

// Weight vector layout for chess evaluation.
const (
	// MaterialWeight scales the material differential.
	MaterialWeight = iota
	// CaptureWeight scales the value of captured material when
	// ordering moves.
	CaptureWeight

	NumWeights
)

// DefaultWeights orders captures aggressively.
func DefaultWeights() board.Weights {
	return board.Weights{1, 10}
}

// Searchable adapts a chess board and its player list to the contract
// an external tree search consumes. Moves are pseudo-legal: check and
// checkmate detection belong to the full ruleset outside this core, so
// the game ends when a king is captured.
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

// GenerateMoves returns the pseudo-legal moves for the side to move
// next, captures first, without mutating the board. Player 1 opens;
// afterwards the sides strictly alternate. The result is empty once a
// king has been captured.
func (s *Searchable) GenerateMoves(lastMove board.Move, weights board.Weights) []board.Move {
	if s.kingCaptured() {
		return nil
	}
	player1 := lastMove == nil || !lastMove.OwnedByPlayer1()

	generated := s.board.movesFor(player1)
	moves := make([]board.Move, 0, len(generated))
	for _, m := range generated {
		val := 0
		for _, cap := range m.Captures() {
			val += int(weights[CaptureWeight]) * cap.Piece.(*Piece).Value()
		}
		m.val = val
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
	if _, alive := s.board.KingLocation(true); !alive {
		score -= kindValues[King]
	}
	if _, alive := s.board.KingLocation(false); !alive {
		score += kindValues[King]
	}
	if !move.OwnedByPlayer1() {
		score = -score
	}
	return score
}

// MoveAgain always reports false: chess turns strictly alternate.
func (s *Searchable) MoveAgain(board.Move) bool { return false }

// StrengthOfWin is the material differential once a king has been
// captured, positive when player 1 won, and 0 before that.
func (s *Searchable) StrengthOfWin() int {
	if !s.kingCaptured() {
		return 0
	}
	return s.board.Material(true) - s.board.Material(false)
}

func (s *Searchable) kingCaptured() bool {
	_, alive1 := s.board.KingLocation(true)
	_, alive2 := s.board.KingLocation(false)
	return !alive1 || !alive2
}

func (s *Searchable) MakeMove(m board.Move) error { return s.board.MakeMove(m) }
func (s *Searchable) UndoMove(m board.Move) { s.board.UndoMove(m) }
func (s *Searchable) MaxNumMoves() int { return s.board.MaxNumMoves() }
