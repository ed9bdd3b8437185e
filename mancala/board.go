package mancala

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"boardgame/board"
)

// Traditionally each play bin starts with 3 stones.
const initialStonesPerBin = 3

// Board is a mancala board: two rows of play bins with a home bin per
// player at either end. It composes the generic grid with a bin
// navigator rather than subclassing anything; the navigator is
// recomputed, never shared, when the board is copied.
type Board struct {
	*board.Grid
	nav *Navigator
}

// NewBoard creates a mancala board with the given number of columns.
// The first and last columns hold the home bins, so numCols play
// columns means numCols-2 play bins per side.
func NewBoard(numCols int) *Board {
	if numCols < 3 {
		panic(fmt.Sprintf("mancala board needs at least 3 columns, got %d", numCols))
	}
	b := &Board{
		Grid: board.NewGrid(2, numCols),
		nav:  NewNavigator(numCols),
	}
	b.Reset()
	return b
}

// NewDefaultBoard creates the traditional 8 column board: six play
// bins per side with 3 stones each, plus the two empty home bins.
func NewDefaultBoard() *Board {
	return NewBoard(8)
}

// Reset restores the canonical starting layout: every play bin gets
// the initial stone count and both home bins start empty.
func (b *Board) Reset() {
	b.Grid.Clear()
	for row := 1; row <= b.NumRows(); row++ {
		for col := 2; col < b.NumCols(); col++ {
			b.Position(row, col).SetPiece(NewBin(row == 1, initialStonesPerBin, false))
		}
	}
	b.Position(1, 1).SetPiece(NewBin(true, 0, true))
	b.Position(1, b.NumCols()).SetPiece(NewBin(false, 0, true))
}

// Copy returns a deep, independent board; the navigator is rebuilt
// from the dimensions rather than shared.
func (b *Board) Copy() *Board {
	return &Board{
		Grid: b.Grid.Copy(),
		nav:  NewNavigator(b.NumCols()),
	}
}

// MaxNumMoves is a conservative upper bound on game length. The end of
// a round is inevitable because a stone that enters a home bin never
// comes out, and every seeding moves stones closer to a home. A stone
// does not reach a home every turn, so the bound is 3 times the column
// count times the starting stones per bin; doubling instead of
// tripling would be closer to typical games, but this must never
// underestimate.
func (b *Board) MaxNumMoves() int {
	return b.NumCols()*initialStonesPerBin*3 + 1
}

// NumPositionStates is the number of distinct states one bin can take,
// for external Zobrist-style hashing: empty up to every stone on the
// board in one bin.
func (b *Board) NumPositionStates() int {
	return b.NumCols() * initialStonesPerBin
}

// MakeMove applies a seeding move via the variant MoveMaker and pushes
// it on the history stack. An illegal move returns an error and leaves
// the board unmutated.
func (b *Board) MakeMove(m board.Move) error {
	if err := NewMoveMaker(b).MakeMove(m); err != nil {
		return err
	}
	b.RecordMove(m)
	return nil
}

// UndoMove reverses the most recently applied move. Undoing out of
// stack order panics.
func (b *Board) UndoMove(m board.Move) {
	b.RetractMove(m)
	NewMoveUndoer(b).UndoMove(m)
}

// Bin returns the bin at loc. A location that does not hold a bin is a
// wiring bug between board layout and variant logic, and panics.
func (b *Board) Bin(loc board.Location) *Bin {
	piece := b.PositionAt(loc).Piece()
	if piece == nil {
		panic(fmt.Sprintf("could not find mancala bin at %v", loc))
	}
	bin, ok := piece.(*Bin)
	if !ok {
		panic(fmt.Sprintf("piece at %v is not a mancala bin", loc))
	}
	return bin
}

// HomeBin returns the given player's home bin.
func (b *Board) HomeBin(player1 bool) *Bin {
	return b.Bin(b.nav.HomeLocation(player1))
}

// HomeLocation returns the location of the given player's home bin.
func (b *Board) HomeLocation(player1 bool) board.Location {
	return b.nav.HomeLocation(player1)
}

// NextLocation returns the bin following loc in seeding ring order.
func (b *Board) NextLocation(loc board.Location) board.Location {
	return b.nav.Next(loc)
}

// OppositeLocation returns the bin directly across the board from loc.
func (b *Board) OppositeLocation(loc board.Location) board.Location {
	return b.nav.Opposite(loc)
}

// IsEmpty reports whether both sides' play bins are clear.
func (b *Board) IsEmpty() bool {
	return b.IsSideClear(true) && b.IsSideClear(false)
}

// IsSideClear reports whether the given player's play bins hold no
// stones.
func (b *Board) IsSideClear(player1 bool) bool {
	sum := 0
	loc := b.nav.HomeLocation(!player1)
	for i := 0; i < b.NumCols()-2; i++ {
		loc = b.nav.Next(loc)
		sum += b.Bin(loc).NumStones()
	}
	return sum == 0
}

// MoveAgainAfterMove reports whether the move's last stone lands in
// the mover's own home bin, granting another turn.
func (b *Board) MoveAgainAfterMove(m board.Move) bool {
	move, ok := m.(*Move)
	if !ok {
		panic("expected a mancala move")
	}
	lastLoc := b.nav.Nth(move.FromLocation(), move.NumStonesSeeded(), move.OwnedByPlayer1())
	bin := b.Bin(lastLoc)
	return bin.IsHome() && bin.OwnedByPlayer1() == move.OwnedByPlayer1()
}

// CandidateStartLocations returns every play bin of the given player
// that holds at least one stone, in seeding ring order.
func (b *Board) CandidateStartLocations(player1 bool) []board.Location {
	var locations []board.Location
	loc := b.nav.HomeLocation(!player1)
	for i := 0; i < b.NumCols()-2; i++ {
		loc = b.nav.Next(loc)
		if b.Bin(loc).NumStones() > 0 {
			locations = append(locations, loc)
		}
	}
	return locations
}

// ClearSide sweeps the remaining stones on the given player's side
// into their home bin at the end of a round, recording every vacated
// bin in captures so UndoClearSide can restore them.
func (b *Board) ClearSide(player1 bool, captures *Captures) {
	home := b.HomeBin(player1)
	loc := b.nav.HomeLocation(!player1)
	for i := 0; i < b.NumCols()-2; i++ {
		loc = b.nav.Next(loc)
		bin := b.Bin(loc)
		if bin.NumStones() > 0 {
			captures.Put(loc, bin.NumStones())
			home.Add(bin.TakeStones())
		}
	}
}

// UndoClearSide exactly reverses a ClearSide sweep.
func (b *Board) UndoClearSide(player1 bool, captures *Captures) {
	captures.restore(b, player1)
	captures.Clear()
}

// TotalStones returns the number of stones on the board including the
// home bins. It is invariant under seeding and capture.
func (b *Board) TotalStones() int {
	total := b.HomeBin(true).NumStones() + b.HomeBin(false).NumStones()
	for _, player1 := range []bool{true, false} {
		loc := b.nav.HomeLocation(!player1)
		for i := 0; i < b.NumCols()-2; i++ {
			loc = b.nav.Next(loc)
			total += b.Bin(loc).NumStones()
		}
	}
	return total
}

// Hash returns a fast hash of the bin counts for search caches.
func (b *Board) Hash() board.StateHash {
	hasher := fnv.New64a()
	for row := 1; row <= b.NumRows(); row++ {
		for col := 1; col <= b.NumCols(); col++ {
			pos := b.Position(row, col)
			if bin, ok := pos.Piece().(*Bin); ok {
				binary.Write(hasher, binary.LittleEndian, int64(bin.NumStones()))
			} else {
				binary.Write(hasher, binary.LittleEndian, int64(-1))
			}
		}
	}
	return board.StateHash(hasher.Sum64())
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for row := 1; row <= b.NumRows(); row++ {
		for col := 1; col <= b.NumCols(); col++ {
			pos := b.Position(row, col)
			if pos.IsOccupied() {
				sb.WriteString(fmt.Sprintf("%4s", pos.Piece().Description()))
			} else {
				sb.WriteString(fmt.Sprintf("%4s", ""))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
