package mancala

import (
	"fmt"

	"boardgame/board"
)

// Navigator knows how to walk the ring of bins in seeding order.
//
// The board always has 2 rows. Player 1 owns row 1 with their home at
// column 1; player 2 owns row 2 with their home at (1, numCols):
//
//	aH  a6  a5  a4  a3  a2  a1  bH
//	    b1  b2  b3  b4  b5  b6
//
// Seeding moves counterclockwise: along row 1 toward column 1, through
// player 1's home, then along row 2 toward the last column, through
// player 2's home, and around again.
//
// The navigator is derived entirely from the column count, so a board
// copy rebuilds it rather than sharing it.
type Navigator struct {
	numCols int
}

// NewNavigator creates a navigator for a board with numCols columns.
func NewNavigator(numCols int) *Navigator {
	return &Navigator{numCols: numCols}
}

// HomeLocation returns the location of the given player's home bin.
func (n *Navigator) HomeLocation(player1 bool) board.Location {
	if player1 {
		return board.NewLocation(1, 1)
	}
	return board.NewLocation(1, n.numCols)
}

// Next returns the bin that follows loc in seeding order, home bins
// included.
func (n *Navigator) Next(loc board.Location) board.Location {
	switch {
	case loc.Row == 1 && loc.Col > 2 && loc.Col < n.numCols:
		return board.NewLocation(1, loc.Col-1)
	case loc.Row == 1 && loc.Col == 2:
		return board.NewLocation(1, 1) // player 1 home
	case loc.Row == 1 && loc.Col == 1:
		return board.NewLocation(2, 2)
	case loc.Row == 2 && loc.Col < n.numCols-1:
		return board.NewLocation(2, loc.Col+1)
	case loc.Row == 2 && loc.Col == n.numCols-1:
		return board.NewLocation(1, n.numCols) // player 2 home
	case loc.Row == 1 && loc.Col == n.numCols:
		return board.NewLocation(1, n.numCols-1)
	}
	panic(fmt.Sprintf("no bin at %v", loc))
}

// NextSeed returns the bin that receives the next stone when the given
// player is seeding: the next bin in ring order, skipping the
// opponent's home.
func (n *Navigator) NextSeed(loc board.Location, player1 bool) board.Location {
	next := n.Next(loc)
	if next == n.HomeLocation(!player1) {
		next = n.Next(next)
	}
	return next
}

// Nth returns where the player's nth seeded stone lands, starting from
// the origin bin.
func (n *Navigator) Nth(from board.Location, steps int, player1 bool) board.Location {
	loc := from
	for i := 0; i < steps; i++ {
		loc = n.NextSeed(loc, player1)
	}
	return loc
}

// Opposite returns the bin directly across the board. Home bins have
// no opposite.
func (n *Navigator) Opposite(loc board.Location) board.Location {
	if loc.Col <= 1 || loc.Col >= n.numCols {
		panic(fmt.Sprintf("home bin %v has no opposite", loc))
	}
	if loc.Row == 1 {
		return board.NewLocation(2, loc.Col)
	}
	return board.NewLocation(1, loc.Col)
}
