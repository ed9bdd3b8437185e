package chess

import (
	"strings"

	"boardgame/board"
)

// Kind discriminates the chess piece types.
type Kind byte

const (
	Pawn   Kind = 'P'
	Knight Kind = 'N'
	Bishop Kind = 'B'
	Rook   Kind = 'R'
	Queen  Kind = 'Q'
	King   Kind = 'K'
)

// Material values per kind, used by the evaluation weights.
var kindValues = map[Kind]int{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   1000,
}

// Piece is a chess piece. Besides side and kind it tracks whether the
// piece has moved this game, which castling and double-step rules
// need; the flag is snapshotted into each move so undo can restore it.
type Piece struct {
	player1 bool
	kind    Kind
	moved   bool
}

// NewPiece creates an unmoved piece of the given side and kind.
func NewPiece(player1 bool, kind Kind) *Piece {
	return &Piece{player1: player1, kind: kind}
}

func (p *Piece) OwnedByPlayer1() bool { return p.player1 }
func (p *Piece) Kind() Kind { return p.kind }
func (p *Piece) HasMoved() bool { return p.moved }
func (p *Piece) SetMoved(moved bool) { p.moved = moved }

// Value returns the piece's material value.
func (p *Piece) Value() int { return kindValues[p.kind] }

// Promote converts the piece to another kind. This is the only
// sanctioned way a piece changes identity.
func (p *Piece) Promote(kind Kind) { p.kind = kind }

// Copy returns a fully independent piece.
func (p *Piece) Copy() board.Piece {
	c := *p
	return &c
}

// Description renders player 1 pieces upper case, player 2 lower case.
func (p *Piece) Description() string {
	s := string(rune(p.kind))
	if !p.player1 {
		s = strings.ToLower(s)
	}
	return s
}

func (p *Piece) String() string { return p.Description() }
