package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testMove is the minimal move stub for history stack tests.
type testMove struct {
	player1 bool
}

func (m *testMove) OwnedByPlayer1() bool { return m.player1 }
func (m *testMove) Value() int { return 0 }
func (m *testMove) Copy() Move {
	c := *m
	return &c
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(2, 8)

	require.True(t, g.InBounds(1, 1))
	require.True(t, g.InBounds(2, 8))
	require.False(t, g.InBounds(0, 1))
	require.False(t, g.InBounds(3, 1))
	require.False(t, g.InBounds(1, 9))

	t.Run("out of bounds access panics", func(t *testing.T) {
		require.Panics(t, func() { g.Position(0, 1) })
		require.Panics(t, func() { g.Position(1, 9) })
		require.Panics(t, func() { g.PositionAt(NewLocation(3, 3)) })
	})
}

func TestGridPositionIdentity(t *testing.T) {
	g := NewGrid(2, 8)

	// The slot is stable: repeated lookups return the same position.
	require.Same(t, g.Position(1, 3), g.Position(1, 3))
	require.Equal(t, NewLocation(1, 3), g.Position(1, 3).Location())
}

func TestGridCopy(t *testing.T) {
	g := NewGrid(2, 4)
	g.Position(1, 2).SetPiece(&testPiece{player1: true, kind: 'p'})
	g.Position(2, 3).SetPiece(&testPiece{player1: false, kind: 'p'})

	c := g.Copy()
	require.True(t, g.Equal(c))

	t.Run("copies are independent", func(t *testing.T) {
		c.Position(1, 2).Clear()
		require.True(t, g.Position(1, 2).IsOccupied(), "mutating the copy must not affect the original")
		require.False(t, g.Equal(c))
	})

	t.Run("copying twice is structurally identical", func(t *testing.T) {
		require.True(t, g.Copy().Equal(g.Copy()))
	})
}

func TestGridHistoryStack(t *testing.T) {
	t.Run("LIFO retract", func(t *testing.T) {
		g := NewGrid(2, 4)
		m1 := &testMove{player1: true}
		m2 := &testMove{player1: false}

		require.Nil(t, g.LastMove())
		g.RecordMove(m1)
		g.RecordMove(m2)
		require.Equal(t, 2, g.NumMovesMade())
		require.Equal(t, Move(m2), g.LastMove())

		g.RetractMove(m2)
		g.RetractMove(m1)
		require.Equal(t, 0, g.NumMovesMade())
		require.Nil(t, g.LastMove())
	})

	t.Run("undo without apply panics", func(t *testing.T) {
		g := NewGrid(2, 4)
		require.Panics(t, func() { g.RetractMove(&testMove{}) })
	})

	t.Run("undo out of stack order panics", func(t *testing.T) {
		g := NewGrid(2, 4)
		m1 := &testMove{player1: true}
		m2 := &testMove{player1: false}
		g.RecordMove(m1)
		g.RecordMove(m2)
		require.Panics(t, func() { g.RetractMove(m1) })
	})
}
