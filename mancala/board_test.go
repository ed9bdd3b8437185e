package mancala

import (
	"testing"

	"boardgame/board"

	"github.com/stretchr/testify/require"
)

func TestReset(t *testing.T) {
	b := NewDefaultBoard()

	require.Equal(t, 2, b.NumRows())
	require.Equal(t, 8, b.NumCols())

	t.Run("play bins start with 3 stones", func(t *testing.T) {
		for row := 1; row <= 2; row++ {
			for col := 2; col <= 7; col++ {
				bin := b.Bin(board.NewLocation(row, col))
				require.Equal(t, 3, bin.NumStones(), "bin (%d, %d)", row, col)
				require.False(t, bin.IsHome())
				require.Equal(t, row == 1, bin.OwnedByPlayer1())
			}
		}
	})

	t.Run("home bins start empty", func(t *testing.T) {
		home1 := b.HomeBin(true)
		home2 := b.HomeBin(false)
		require.True(t, home1.IsHome())
		require.True(t, home2.IsHome())
		require.Equal(t, 0, home1.NumStones())
		require.Equal(t, 0, home2.NumStones())
		require.Equal(t, board.NewLocation(1, 1), b.HomeLocation(true))
		require.Equal(t, board.NewLocation(1, 8), b.HomeLocation(false))
	})

	require.Equal(t, 36, b.TotalStones())
}

func TestResetIsDeterministic(t *testing.T) {
	b := NewDefaultBoard()
	hash := b.Hash()

	m := NewMove(true, board.NewLocation(1, 7), 3)
	require.NoError(t, b.MakeMove(m))
	b.Reset()

	require.Equal(t, hash, b.Hash(), "reset should restore the canonical layout")
}

func TestNavigatorRing(t *testing.T) {
	nav := NewNavigator(8)

	t.Run("full ring", func(t *testing.T) {
		// One lap from player 1's first bin visits every bin once.
		start := board.NewLocation(1, 7)
		loc := start
		visited := map[board.Location]bool{}
		for i := 0; i < 14; i++ {
			require.False(t, visited[loc], "revisited %v", loc)
			visited[loc] = true
			loc = nav.Next(loc)
		}
		require.Equal(t, start, loc, "the ring should close after 14 bins")
	})

	t.Run("seeding skips the opponent home", func(t *testing.T) {
		// Player 1 seeding from their last play bin never touches
		// player 2's home at (1, 8).
		loc := board.NewLocation(2, 7)
		next := nav.NextSeed(loc, true)
		require.Equal(t, board.NewLocation(1, 7), next)

		loc = board.NewLocation(1, 2)
		next = nav.NextSeed(loc, false)
		require.Equal(t, board.NewLocation(2, 2), next, "player 2 seeding skips player 1's home")
	})

	t.Run("opposite bins", func(t *testing.T) {
		require.Equal(t, board.NewLocation(2, 3), nav.Opposite(board.NewLocation(1, 3)))
		require.Equal(t, board.NewLocation(1, 5), nav.Opposite(board.NewLocation(2, 5)))
		require.Panics(t, func() { nav.Opposite(board.NewLocation(1, 1)) }, "home bins have no opposite")
	})
}

func TestCopy(t *testing.T) {
	b := NewDefaultBoard()
	require.NoError(t, b.MakeMove(NewMove(true, board.NewLocation(1, 7), 3)))

	c := b.Copy()
	require.Equal(t, b.Hash(), c.Hash())

	t.Run("copies are fully independent", func(t *testing.T) {
		c.Bin(board.NewLocation(2, 4)).Add(5)
		require.Equal(t, 3, b.Bin(board.NewLocation(2, 4)).NumStones(),
			"mutating the copy must not affect the original")
	})

	t.Run("navigator is rebuilt, not shared", func(t *testing.T) {
		require.NotSame(t, b.nav, c.nav)
		require.Equal(t, b.NextLocation(board.NewLocation(1, 5)), c.NextLocation(board.NewLocation(1, 5)))
	})

	t.Run("copying a copy is structurally identical", func(t *testing.T) {
		require.Equal(t, b.Copy().Hash(), b.Copy().Copy().Hash())
	})
}

func TestMaxNumMoves(t *testing.T) {
	// 3 x columns x initial stones, plus one. Conservative because a
	// stone that enters a home bin never leaves.
	require.Equal(t, 73, NewDefaultBoard().MaxNumMoves())
	require.Equal(t, 37, NewBoard(4).MaxNumMoves())
}

func TestNumPositionStates(t *testing.T) {
	require.Equal(t, 24, NewDefaultBoard().NumPositionStates())
}

func TestIsSideClear(t *testing.T) {
	b := NewDefaultBoard()
	require.False(t, b.IsSideClear(true))
	require.False(t, b.IsSideClear(false))
	require.False(t, b.IsEmpty())

	for col := 2; col <= 7; col++ {
		b.Bin(board.NewLocation(1, col)).TakeStones()
	}
	require.True(t, b.IsSideClear(true))
	require.False(t, b.IsSideClear(false))

	for col := 2; col <= 7; col++ {
		b.Bin(board.NewLocation(2, col)).TakeStones()
	}
	require.True(t, b.IsEmpty())
}

func TestClearSide(t *testing.T) {
	b := NewDefaultBoard()
	hash := b.Hash()

	var captures Captures
	b.ClearSide(false, &captures)

	require.True(t, b.IsSideClear(false))
	require.Equal(t, 18, b.HomeBin(false).NumStones(), "all of player 2's stones move to their home")
	require.Equal(t, 18, captures.NumStones())
	require.Equal(t, 36, b.TotalStones(), "a sweep moves stones, it does not destroy them")

	t.Run("sweep is undoable", func(t *testing.T) {
		b.UndoClearSide(false, &captures)
		require.Equal(t, hash, b.Hash())
		require.True(t, captures.IsEmpty())
	})
}

func TestCandidateStartLocations(t *testing.T) {
	b := NewDefaultBoard()

	locs := b.CandidateStartLocations(true)
	require.Equal(t, []board.Location{
		{Row: 1, Col: 7}, {Row: 1, Col: 6}, {Row: 1, Col: 5},
		{Row: 1, Col: 4}, {Row: 1, Col: 3}, {Row: 1, Col: 2},
	}, locs)

	b.Bin(board.NewLocation(1, 5)).TakeStones()
	locs = b.CandidateStartLocations(true)
	require.Len(t, locs, 5, "empty bins are not candidates")
	require.NotContains(t, locs, board.NewLocation(1, 5))
}

func TestBinLookupPanics(t *testing.T) {
	b := NewDefaultBoard()

	// The grid corners outside the ring hold no bins; asking for one
	// is a wiring bug.
	require.Panics(t, func() { b.Bin(board.NewLocation(2, 1)) })
	require.Panics(t, func() { b.Bin(board.NewLocation(2, 8)) })
	require.Panics(t, func() { b.Bin(board.NewLocation(5, 5)) })
}

func TestHash(t *testing.T) {
	a := NewDefaultBoard()
	b := NewDefaultBoard()
	require.Equal(t, a.Hash(), b.Hash(), "identical boards share a hash")

	m := NewMove(true, board.NewLocation(1, 7), 3)
	require.NoError(t, a.MakeMove(m))
	require.NotEqual(t, a.Hash(), b.Hash())

	a.UndoMove(m)
	require.Equal(t, a.Hash(), b.Hash(), "undo restores the hash")
}
