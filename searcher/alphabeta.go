// Package searcher walks the game tree over the board.Searchable
// contract with negamax alpha-beta pruning. It never touches board
// internals: it only generates, applies, evaluates and undoes moves,
// relying on the apply/undo pair being exact inverses.
package searcher

import (
	"fmt"
	"sort"
	"time"

	"boardgame/board"
	"boardgame/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Sentinel value beyond any reachable evaluation.
const infinity = 1 << 30

type Option func(*AlphaBeta)

func WithDepth(depth int) Option {
	return func(a *AlphaBeta) {
		if depth > 0 {
			a.depth = depth
		}
	}
}

func WithWeights(weights board.Weights) Option {
	return func(a *AlphaBeta) {
		if weights != nil {
			a.weights = weights
		}
	}
}

// WithSeed fixes the tie-breaking randomizer, for reproducible games.
func WithSeed(seed uint64) Option {
	return func(a *AlphaBeta) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(a *AlphaBeta) {
		a.metrics = NewMetricsCollector()
	}
}

// AlphaBeta is a fixed-depth negamax searcher. A single instance
// explores one Searchable at a time: it mutates the board in place and
// undoes every move it applies before returning.
type AlphaBeta struct {
	depth   int
	weights board.Weights
	rng     *rand.Rand
	metrics MetricsCollector
}

func NewAlphaBeta(weights board.Weights, options ...Option) *AlphaBeta {
	a := &AlphaBeta{ // Default values
		depth:   meta.SEARCH_DEPTH,
		weights: weights,
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// FindBestMove returns the best move for the side to move after
// lastMove, or nil at a terminal position. The board is left exactly
// as it was found.
func (a *AlphaBeta) FindBestMove(s board.Searchable, lastMove board.Move) (board.Move, SearchMetrics) {
	a.metrics.Start(a.depth)

	moves := a.orderedMoves(s, lastMove)
	if len(moves) == 0 {
		return nil, a.metrics.Complete()
	}

	var best board.Move
	bestValue := -infinity
	for _, m := range moves {
		v := a.valueAfter(s, m, a.depth-1, bestValue, infinity)
		if v > bestValue {
			bestValue = v
			best = m
		}
	}

	log.Debug().
		Str("move", fmt.Sprintf("%v", best)).
		Int("value", bestValue).
		Int("candidates", len(moves)).
		Msg("search complete")
	return best, a.metrics.Complete()
}

// orderedMoves shuffles before the stable sort so equally valued moves
// come out in random order.
func (a *AlphaBeta) orderedMoves(s board.Searchable, lastMove board.Move) []board.Move {
	moves := s.GenerateMoves(lastMove, a.weights)
	a.rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Value() > moves[j].Value()
	})
	return moves
}

// valueAfter applies m and returns the resulting position's value from
// the perspective of the side that played m. The sign and the
// alpha-beta window only flip when the turn actually passes - a
// mancala move that grants another turn keeps both.
func (a *AlphaBeta) valueAfter(s board.Searchable, m board.Move, depth, alpha, beta int) int {
	if err := s.MakeMove(m); err != nil {
		panic(err) // generated moves are always legal
	}
	defer s.UndoMove(m)

	if s.MoveAgain(m) {
		return a.search(s, m, depth, alpha, beta)
	}
	return -a.search(s, m, depth, -beta, -alpha)
}

// search returns the value of the current position from the
// perspective of the side to move after last.
func (a *AlphaBeta) search(s board.Searchable, last board.Move, depth, alpha, beta int) int {
	a.metrics.AddNode()

	moves := s.GenerateMoves(last, a.weights)
	if len(moves) == 0 || depth <= 0 {
		// Worth is from the last mover's perspective; the side to move
		// is the same side only when the move granted another turn.
		w := s.Worth(last, a.weights)
		if s.MoveAgain(last) {
			return w
		}
		return -w
	}

	best := -infinity
	for _, m := range moves {
		v := a.valueAfter(s, m, depth-1, alpha, beta)
		if v > best {
			best = v
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			a.metrics.AddCutoff()
			break
		}
	}
	return best
}
