package checkers

import "boardgame/board"

// Piece is a checkers man, or a king once it reaches the far row.
type Piece struct {
	player1 bool
	king    bool
}

// NewPiece creates a man of the given side.
func NewPiece(player1 bool) *Piece {
	return &Piece{player1: player1}
}

func (p *Piece) OwnedByPlayer1() bool { return p.player1 }
func (p *Piece) IsKing() bool { return p.king }

// Crown promotes the man to a king; Uncrown reverses it during undo.
func (p *Piece) Crown() { p.king = true }
func (p *Piece) Uncrown() { p.king = false }

// Value returns the piece's material value.
func (p *Piece) Value() int {
	if p.king {
		return 3
	}
	return 1
}

// Copy returns a fully independent piece.
func (p *Piece) Copy() board.Piece {
	c := *p
	return &c
}

func (p *Piece) Description() string {
	switch {
	case p.player1 && p.king:
		return "X"
	case p.player1:
		return "x"
	case p.king:
		return "O"
	default:
		return "o"
	}
}

func (p *Piece) String() string { return p.Description() }
