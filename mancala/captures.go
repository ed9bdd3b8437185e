package mancala

import "boardgame/board"

// capturedBin records how many stones a single bin lost to a capture
// or an end-of-round sweep.
type capturedBin struct {
	loc    board.Location
	stones int
}

// Captures is the ordered record of stones removed from bins by one
// move (or by clearing a side), sufficient to put every stone back.
type Captures struct {
	entries []capturedBin
}

// Put records that the bin at loc lost stones to the capturing side.
func (c *Captures) Put(loc board.Location, stones int) {
	c.entries = append(c.entries, capturedBin{loc: loc, stones: stones})
}

// IsEmpty reports whether nothing was captured.
func (c *Captures) IsEmpty() bool { return len(c.entries) == 0 }

// NumStones returns the total number of stones captured.
func (c *Captures) NumStones() int {
	total := 0
	for _, e := range c.entries {
		total += e.stones
	}
	return total
}

// Locations returns the vacated bin locations in capture order.
func (c *Captures) Locations() []board.Location {
	locs := make([]board.Location, len(c.entries))
	for i, e := range c.entries {
		locs[i] = e.loc
	}
	return locs
}

// Copy returns an independent record.
func (c *Captures) Copy() Captures {
	cp := Captures{}
	cp.entries = append(cp.entries, c.entries...)
	return cp
}

// Clear discards the record.
func (c *Captures) Clear() { c.entries = nil }

// restore moves every captured stone from the capturing player's home
// bin back to the bin it was taken from, in reverse capture order.
func (c *Captures) restore(b *Board, player1 bool) {
	home := b.HomeBin(player1)
	for i := len(c.entries) - 1; i >= 0; i-- {
		e := c.entries[i]
		home.Add(-e.stones)
		b.Bin(e.loc).Add(e.stones)
	}
}
