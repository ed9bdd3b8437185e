package mancala

import (
	"fmt"

	"boardgame/board"
)

// Bin is the mancala piece: a pit holding zero or more stones. One bin
// per player is a home bin, which accumulates captured and seeded
// stones; seeding skips the opponent's home but passes through one's
// own.
type Bin struct {
	player1 bool
	stones  int
	home    bool
}

// NewBin creates a bin owned by the given side with an initial stone
// count.
func NewBin(player1 bool, stones int, home bool) *Bin {
	if stones < 0 {
		panic(fmt.Sprintf("bin cannot hold %d stones", stones))
	}
	return &Bin{player1: player1, stones: stones, home: home}
}

func (b *Bin) OwnedByPlayer1() bool { return b.player1 }
func (b *Bin) IsHome() bool { return b.home }
func (b *Bin) NumStones() int { return b.stones }

// Add adjusts the stone count by delta. The count never goes negative;
// driving it below zero indicates a wiring bug and panics.
func (b *Bin) Add(delta int) {
	b.stones += delta
	if b.stones < 0 {
		panic(fmt.Sprintf("bin stone count went negative (%d)", b.stones))
	}
}

// TakeStones empties the bin and returns how many stones it held.
func (b *Bin) TakeStones() int {
	n := b.stones
	b.stones = 0
	return n
}

// Copy returns a fully independent bin.
func (b *Bin) Copy() board.Piece {
	c := *b
	return &c
}

func (b *Bin) Description() string {
	if b.home {
		return fmt.Sprintf("[%d]", b.stones)
	}
	return fmt.Sprintf("%d", b.stones)
}

func (b *Bin) String() string { return b.Description() }
