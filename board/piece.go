package board

// Piece is an owned token placed on a board position. Each game variant
// supplies its own concrete piece type (a chess piece, a mancala bin, a
// checkers man) and downcasts where it needs variant-specific state.
type Piece interface {
	// OwnedByPlayer1 reports which side owns the piece. Ownership never
	// changes through shared mutation, only through an explicit transfer
	// such as promotion.
	OwnedByPlayer1() bool

	// Copy returns a fully independent deep copy of the piece.
	Copy() Piece

	// Description returns a short human readable form for display.
	// The core never depends on how it is rendered.
	Description() string
}
