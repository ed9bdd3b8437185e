package mancala

import (
	"testing"

	"boardgame/board"
	"boardgame/player"

	"github.com/stretchr/testify/require"
)

func testPlayers() *player.List {
	return player.NewList("Player1", "Player2")
}

func TestGenerateMoves(t *testing.T) {
	b := NewDefaultBoard()
	s := NewSearchable(b, testPlayers())
	weights := DefaultWeights()

	t.Run("player 1 opens", func(t *testing.T) {
		hash := b.Hash()
		moves := s.GenerateMoves(nil, weights)

		require.Len(t, moves, 6, "every non-empty bin is a candidate")
		for _, m := range moves {
			require.True(t, m.OwnedByPlayer1())
		}
		require.Equal(t, hash, b.Hash(), "generation must not mutate the board")
	})

	t.Run("moves are ordered best first", func(t *testing.T) {
		moves := s.GenerateMoves(nil, weights)
		for i := 1; i < len(moves); i++ {
			require.GreaterOrEqual(t, moves[i-1].Value(), moves[i].Value())
		}
	})

	t.Run("turn passes to the opponent", func(t *testing.T) {
		m := NewMove(true, board.NewLocation(1, 7), 3)
		require.NoError(t, s.MakeMove(m))
		defer s.UndoMove(m)

		for _, next := range s.GenerateMoves(m, weights) {
			require.False(t, next.OwnedByPlayer1())
		}
	})

	t.Run("landing in own home keeps the turn", func(t *testing.T) {
		m := NewMove(true, board.NewLocation(1, 4), 3)
		require.NoError(t, s.MakeMove(m))
		defer s.UndoMove(m)

		require.True(t, s.MoveAgain(m))
		for _, next := range s.GenerateMoves(m, weights) {
			require.True(t, next.OwnedByPlayer1(), "the same side moves again")
		}
	})

	t.Run("empty only at the end of a round", func(t *testing.T) {
		cleared := NewDefaultBoard()
		for col := 2; col <= 7; col++ {
			cleared.Bin(board.NewLocation(2, col)).TakeStones()
		}
		sc := NewSearchable(cleared, testPlayers())

		last := NewMove(true, board.NewLocation(1, 7), 3)
		require.Empty(t, sc.GenerateMoves(last, weights), "player 2 has no stones to seed")
	})
}

func TestWorth(t *testing.T) {
	b := NewDefaultBoard()
	s := NewSearchable(b, testPlayers())
	weights := DefaultWeights()

	m := NewMove(true, board.NewLocation(1, 4), 3)
	require.NoError(t, s.MakeMove(m))
	defer s.UndoMove(m)

	t.Run("positive for the side that just moved", func(t *testing.T) {
		// Player 1 banked a stone; the position favors them.
		require.Positive(t, s.Worth(m, weights))
	})

	t.Run("deterministic", func(t *testing.T) {
		hash := b.Hash()
		first := s.Worth(m, weights)
		require.Equal(t, first, s.Worth(m, weights))
		require.Equal(t, hash, b.Hash(), "evaluation must not mutate the board")
	})
}

func TestStrengthOfWin(t *testing.T) {
	b := NewDefaultBoard()
	s := NewSearchable(b, testPlayers())

	require.Equal(t, 0, s.StrengthOfWin(), "no winner while both sides hold stones")

	// Player 1 banks 10 stones and clears their side; player 2's 18
	// stones are still in play.
	for col := 2; col <= 7; col++ {
		b.Bin(board.NewLocation(1, col)).TakeStones()
	}
	b.HomeBin(true).Add(10)
	require.Equal(t, 10-18, s.StrengthOfWin(), "counts homes plus unswept play bins")
}
