package player

import (
	"testing"

	"boardgame/board"

	"github.com/stretchr/testify/require"
)

type testPiece struct {
	player1 bool
}

func (p *testPiece) OwnedByPlayer1() bool { return p.player1 }
func (p *testPiece) Copy() board.Piece    { return &testPiece{player1: p.player1} }
func (p *testPiece) Description() string  { return "t" }

func TestList(t *testing.T) {
	list := NewList("Alice", "Bob")

	t.Run("sides", func(t *testing.T) {
		require.Equal(t, "Alice", list.Player1().Name)
		require.Equal(t, "Bob", list.Player2().Name)
		require.Same(t, list.Player1(), list.BySide(true))
		require.Same(t, list.Player2(), list.BySide(false))
	})

	t.Run("opponent", func(t *testing.T) {
		require.Same(t, list.Player2(), list.Opponent(list.Player1()))
		require.Same(t, list.Player1(), list.Opponent(list.Player2()))
	})

	t.Run("piece ownership", func(t *testing.T) {
		require.Same(t, list.Player1(), list.OwnerOf(&testPiece{player1: true}))
		require.Same(t, list.Player2(), list.OwnerOf(&testPiece{player1: false}))
	})
}
