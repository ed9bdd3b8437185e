package mancala

import (
	"sort"

	"boardgame/board"
	"boardgame/player"
)

// Weight vector layout for mancala evaluation.
const (
	// HomeWeight scales the home bin stone differential.
	HomeWeight = iota
	// SideWeight scales the differential of stones still in play bins.
	SideWeight

	NumWeights
)

// DefaultWeights favors banked stones heavily over stones in play.
func DefaultWeights() board.Weights {
	return board.Weights{8, 1}
}

// Searchable adapts a mancala board and its player list to the
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

// GenerateMoves returns the legal seedings for the side to move next,
// ordered best first by the weighted evaluation. The preceding move
// determines whose turn it is: a seeding that landed in the mover's
// home bin grants the same side another turn. The board is never
// mutated; each candidate is valued against a scratch copy. The result
// is empty only when the side to move has no stones left, i.e. at the
// end of a round.
func (s *Searchable) GenerateMoves(lastMove board.Move, weights board.Weights) []board.Move {
	player1 := s.sideToMove(lastMove)

	var moves []board.Move
	for _, loc := range s.board.CandidateStartLocations(player1) {
		m := NewMove(player1, loc, s.board.Bin(loc).NumStones())
		m.SetValue(s.valueOf(m, weights))
		moves = append(moves, m)
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Value() > moves[j].Value()
	})
	return moves
}

// sideToMove derives whose turn it is from the preceding move. Player
// 1 opens the game.
func (s *Searchable) sideToMove(lastMove board.Move) bool {
	if lastMove == nil {
		return true
	}
	if s.board.MoveAgainAfterMove(lastMove) {
		return lastMove.OwnedByPlayer1()
	}
	return !lastMove.OwnedByPlayer1()
}

// valueOf applies a copy of the move to a copy of the board and
// evaluates the resulting position for the moving side.
func (s *Searchable) valueOf(m *Move, weights board.Weights) int {
	scratch := s.board.Copy()
	if err := scratch.MakeMove(m.Copy()); err != nil {
		panic(err) // candidate bins always hold stones
	}
	return evaluate(scratch, m.OwnedByPlayer1(), weights)
}

// Worth evaluates the position reached by move, which must be the most
// recently applied move on the board. Positive favors the side that
// just moved. It is pure and deterministic.
func (s *Searchable) Worth(move board.Move, weights board.Weights) int {
	return evaluate(s.board, move.OwnedByPlayer1(), weights)
}

// MoveAgain reports whether the mover's last stone landed in their own
// home bin, granting another turn.
func (s *Searchable) MoveAgain(move board.Move) bool {
	return s.board.MoveAgainAfterMove(move)
}

// StrengthOfWin measures how decisive a finished round was: the stone
// differential counting each side's home plus unswept play bins,
// positive when player 1 won. It is 0 while neither side is clear.
func (s *Searchable) StrengthOfWin() int {
	if !s.board.IsSideClear(true) && !s.board.IsSideClear(false) {
		return 0
	}
	return sideStones(s.board, true) + s.board.HomeBin(true).NumStones() -
		sideStones(s.board, false) - s.board.HomeBin(false).NumStones()
}

func (s *Searchable) MakeMove(m board.Move) error { return s.board.MakeMove(m) }
func (s *Searchable) UndoMove(m board.Move) { s.board.UndoMove(m) }
func (s *Searchable) MaxNumMoves() int { return s.board.MaxNumMoves() }

// evaluate scores the board for the given side: the weighted home
// stone differential plus the weighted play bin differential.
func evaluate(b *Board, player1 bool, weights board.Weights) int {
	homeDiff := b.HomeBin(true).NumStones() - b.HomeBin(false).NumStones()
	sideDiff := sideStones(b, true) - sideStones(b, false)
	score := int(weights[HomeWeight])*homeDiff + int(weights[SideWeight])*sideDiff
	if !player1 {
		score = -score
	}
	return score
}

// sideStones counts the stones in the given player's play bins.
func sideStones(b *Board, player1 bool) int {
	sum := 0
	loc := b.nav.HomeLocation(!player1)
	for i := 0; i < b.NumCols()-2; i++ {
		loc = b.nav.Next(loc)
		sum += b.Bin(loc).NumStones()
	}
	return sum
}
