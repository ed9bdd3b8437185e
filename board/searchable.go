package board

// Weights is the opaque parameter vector the search layer supplies for
// move ordering and evaluation. Its shape is variant specific.
type Weights []float64

// StateHash identifies a board state for search caches.
type StateHash uint64

// Board is the contract every variant board exposes to the engine and
// to external hashing. All operations are synchronous and CPU bound;
// a board instance must not be mutated from two goroutines - hand a
// Copy to each parallel search worker instead.
type Board interface {
	// Reset restores the canonical starting layout for the variant.
	Reset()

	NumRows() int
	NumCols() int

	// MaxNumMoves is an upper bound estimate of game length, used to
	// size move-history storage. It need not be exact but must never
	// underestimate for terminating variants.
	MaxNumMoves() int

	// NumPositionStates is the number of distinct occupancy states a
	// single position can take. An external Zobrist-style hash is
	// unsound if this undercounts.
	NumPositionStates() int

	// MakeMove applies a move in place. An illegal move returns an
	// error and leaves the board unmutated.
	MakeMove(Move) error

	// UndoMove exactly reverses the most recently applied move,
	// including all auxiliary side effects. Undoing out of stack
	// order panics.
	UndoMove(Move)

	// LastMove returns the most recently applied move, nil at start.
	LastMove() Move

	// Hash returns a fast hash of the current state for search caches.
	Hash() StateHash
}

// Searchable is what a board plus its player list exposes to an
// external tree-search algorithm, so the search can enumerate moves
// and evaluate positions without board-internal knowledge.
type Searchable interface {
	// GenerateMoves returns the ordered legal moves for the side to
	// move next, given the preceding move (which determines whose turn
	// it is, honoring move-again rules) and a weight vector for move
	// ordering. It never mutates the board and returns an empty slice
	// only at a terminal position.
	GenerateMoves(lastMove Move, weights Weights) []Move

	// Worth evaluates the position reached by move, side-relative:
	// positive favors the side that just moved. It is pure and
	// deterministic - identical board state and weights always yield
	// identical results.
	Worth(move Move, weights Weights) int

	// MoveAgain reports whether the side that made move goes again
	// (e.g. a mancala seeding that lands in the seeder's home bin).
	MoveAgain(move Move) bool

	// StrengthOfWin measures how decisive a finished game's outcome
	// was, 0 while no player has won.
	StrengthOfWin() int

	// MakeMove and UndoMove let the search explore variations in
	// place; undos must mirror applies in exact reverse order.
	MakeMove(Move) error
	UndoMove(Move)

	// MaxNumMoves sizes the search layer's move-history storage.
	MaxNumMoves() int
}
