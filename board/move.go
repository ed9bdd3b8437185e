package board

// Move is an immutable-after-construction record of a single state
// transition. Variant packages define concrete move types carrying
// their own origin, destination and capture data; the core only needs
// the owning side, the evaluation value, and copy semantics.
type Move interface {
	// OwnedByPlayer1 reports which side made the move.
	OwnedByPlayer1() bool

	// Value is the numeric evaluation assigned when the move was
	// generated, used for move ordering.
	Value() int

	// Copy returns an independent deep copy for speculative search.
	Copy() Move
}
