package mancala

import (
	"testing"

	"boardgame/board"

	"github.com/stretchr/testify/require"
)

func TestMakeMoveSeedsRing(t *testing.T) {
	b := NewDefaultBoard()

	m := NewMove(true, board.NewLocation(1, 7), 3)
	require.NoError(t, b.MakeMove(m))

	require.Equal(t, 0, b.Bin(board.NewLocation(1, 7)).NumStones(), "origin is emptied first")
	require.Equal(t, 4, b.Bin(board.NewLocation(1, 6)).NumStones())
	require.Equal(t, 4, b.Bin(board.NewLocation(1, 5)).NumStones())
	require.Equal(t, 4, b.Bin(board.NewLocation(1, 4)).NumStones())
	require.Equal(t, 0, b.HomeBin(true).NumStones())
	require.Equal(t, 36, b.TotalStones(), "seeding conserves stones")
	require.True(t, m.Captures().IsEmpty())
}

func TestMakeMoveWrapsPastOpponentHome(t *testing.T) {
	b := NewDefaultBoard()
	origin := board.NewLocation(2, 5)
	b.Bin(origin).Add(2) // 5 stones reach around the corner

	m := NewMove(false, origin, 5)
	require.NoError(t, b.MakeMove(m))

	require.Equal(t, 4, b.Bin(board.NewLocation(2, 6)).NumStones())
	require.Equal(t, 4, b.Bin(board.NewLocation(2, 7)).NumStones())
	require.Equal(t, 1, b.HomeBin(false).NumStones(), "own home is seeded")
	require.Equal(t, 4, b.Bin(board.NewLocation(1, 7)).NumStones())
	require.Equal(t, 4, b.Bin(board.NewLocation(1, 6)).NumStones())
	require.Equal(t, 0, b.HomeBin(true).NumStones(), "the opponent home is skipped")
}

func TestMoveAgainAfterMove(t *testing.T) {
	b := NewDefaultBoard()

	t.Run("landing in own home grants another turn", func(t *testing.T) {
		m := NewMove(true, board.NewLocation(1, 4), 3)
		require.True(t, b.MoveAgainAfterMove(m))
	})

	t.Run("landing anywhere else does not", func(t *testing.T) {
		for _, col := range []int{2, 3, 5, 6, 7} {
			m := NewMove(true, board.NewLocation(1, col), 3)
			require.False(t, b.MoveAgainAfterMove(m), "from column %d", col)
		}
	})
}

func TestCaptureOnLandingInOwnEmptyBin(t *testing.T) {
	b := NewDefaultBoard()
	b.Bin(board.NewLocation(1, 2)).TakeStones() // make the landing bin empty
	hash := b.Hash()
	total := b.TotalStones()

	m := NewMove(true, board.NewLocation(1, 5), 3)
	require.NoError(t, b.MakeMove(m))

	t.Run("landed stone and opposite contents go home", func(t *testing.T) {
		require.Equal(t, 0, b.Bin(board.NewLocation(1, 2)).NumStones())
		require.Equal(t, 0, b.Bin(board.NewLocation(2, 2)).NumStones())
		require.Equal(t, 4, b.HomeBin(true).NumStones(), "1 landed stone plus 3 from the opposite bin")
		require.Equal(t, total, b.TotalStones())
	})

	t.Run("both vacated bins are recorded", func(t *testing.T) {
		require.Equal(t, []board.Location{{Row: 1, Col: 2}, {Row: 2, Col: 2}}, m.Captures().Locations())
		require.Equal(t, 4, m.Captures().NumStones())
	})

	t.Run("undo restores the capture before the seeding", func(t *testing.T) {
		b.UndoMove(m)
		require.Equal(t, hash, b.Hash())
		require.Equal(t, total, b.TotalStones())
		require.True(t, m.Captures().IsEmpty(), "undo clears the capture record")
	})
}

func TestNoCaptureOnOpponentBin(t *testing.T) {
	b := NewDefaultBoard()
	b.Bin(board.NewLocation(2, 4)).TakeStones()

	// Player 1's last stone lands in player 2's empty bin: no capture.
	origin := board.NewLocation(1, 2)
	b.Bin(origin).Add(1)
	m := NewMove(true, origin, 4)
	require.NoError(t, b.MakeMove(m))

	require.True(t, m.Captures().IsEmpty())
	require.Equal(t, 1, b.Bin(board.NewLocation(2, 4)).NumStones(), "the landed stone stays put")
}

func TestIllegalMovesAreNoOps(t *testing.T) {
	b := NewDefaultBoard()
	hash := b.Hash()

	cases := []struct {
		name string
		move *Move
	}{
		{"seeding from a home bin", NewMove(true, board.NewLocation(1, 1), 1)},
		{"seeding from the opponent's bin", NewMove(true, board.NewLocation(2, 4), 3)},
		{"stale stone count", NewMove(true, board.NewLocation(1, 4), 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, b.MakeMove(tc.move))
			require.Equal(t, hash, b.Hash(), "a failed apply must leave the board unmutated")
			require.Equal(t, 0, b.NumMovesMade())
		})
	}

	t.Run("seeding from an empty bin", func(t *testing.T) {
		b.Bin(board.NewLocation(1, 6)).TakeStones()
		require.Error(t, b.MakeMove(NewMove(true, board.NewLocation(1, 6), 0)))
	})
}

func TestRoundTripAllGeneratedMoves(t *testing.T) {
	b := NewDefaultBoard()
	s := NewSearchable(b, testPlayers())

	for _, m := range s.GenerateMoves(nil, DefaultWeights()) {
		before := b.Copy()
		require.NoError(t, b.MakeMove(m))
		b.UndoMove(m)

		require.True(t, b.Grid.Equal(before.Grid), "round trip changed occupancy for %v", m)
		require.Equal(t, before.Hash(), b.Hash(), "round trip changed stone counts for %v", m)
		require.Equal(t, 36, b.TotalStones())
	}
}

func TestUndoOutOfOrderPanics(t *testing.T) {
	b := NewDefaultBoard()
	m1 := NewMove(true, board.NewLocation(1, 4), 3)
	m2 := NewMove(true, board.NewLocation(1, 7), 3)
	require.NoError(t, b.MakeMove(m1))
	require.NoError(t, b.MakeMove(m2))

	require.Panics(t, func() { b.UndoMove(m1) }, "undoing out of stack order must fail loudly")

	b.UndoMove(m2)
	b.UndoMove(m1)
	require.Equal(t, NewDefaultBoard().Hash(), b.Hash())
}

func TestEndToEndSeedingScenario(t *testing.T) {
	// 8 column board: 6 play bins of 3 stones per side, 2 empty homes.
	// Player 1 seeds the bin 3 steps from their home; the last stone
	// lands exactly in the home, granting another turn, with no
	// capture. Undo restores the original distribution.
	b := NewDefaultBoard()
	hash := b.Hash()

	m := NewMove(true, board.NewLocation(1, 4), 3)
	require.NoError(t, b.MakeMove(m))

	require.Equal(t, 1, b.HomeBin(true).NumStones())
	require.Equal(t, 4, b.Bin(board.NewLocation(1, 3)).NumStones())
	require.Equal(t, 4, b.Bin(board.NewLocation(1, 2)).NumStones())
	require.True(t, b.MoveAgainAfterMove(m))
	require.True(t, m.Captures().IsEmpty(), "landing in a home bin is not a capture")

	b.UndoMove(m)
	require.Equal(t, hash, b.Hash())
	require.Equal(t, 3, b.Bin(board.NewLocation(1, 4)).NumStones())
}
