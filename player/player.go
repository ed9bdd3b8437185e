// Package player holds the lightweight player list the core consumes
// from the surrounding game controller: names for reporting and
// "which side owns this piece" queries.
package player

import "boardgame/board"

// Player identifies one side of a two player game.
type Player struct {
	Name    string
	Player1 bool
}

// List pairs the two players of a game.
type List struct {
	players [2]*Player
}

// NewList creates a list with player 1 first.
func NewList(player1Name, player2Name string) *List {
	return &List{players: [2]*Player{
		{Name: player1Name, Player1: true},
		{Name: player2Name, Player1: false},
	}}
}

// BySide returns the player for the given side.
func (l *List) BySide(player1 bool) *Player {
	if player1 {
		return l.players[0]
	}
	return l.players[1]
}

func (l *List) Player1() *Player { return l.players[0] }
func (l *List) Player2() *Player { return l.players[1] }

// Opponent returns the other player.
func (l *List) Opponent(p *Player) *Player {
	return l.BySide(!p.Player1)
}

// OwnerOf returns the player owning the given piece.
func (l *List) OwnerOf(piece board.Piece) *Player {
	return l.BySide(piece.OwnedByPlayer1())
}
