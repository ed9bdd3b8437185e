package board

// Capture pairs a removed piece with the location it vacated, so undo
// can restore the piece with its original position and ownership.
type Capture struct {
	Loc   Location
	Piece Piece
}

// CaptureList is the ordered record of material removed by one move.
// It is owned by the move that caused the capture.
type CaptureList []Capture

// Add appends a captured piece and the position it vacated.
func (cl *CaptureList) Add(loc Location, piece Piece) {
	*cl = append(*cl, Capture{Loc: loc, Piece: piece})
}

// Copy returns an independent list with deep copies of every piece.
func (cl CaptureList) Copy() CaptureList {
	if cl == nil {
		return nil
	}
	c := make(CaptureList, len(cl))
	for i, cap := range cl {
		c[i] = Capture{Loc: cap.Loc, Piece: cap.Piece.Copy()}
	}
	return c
}

// RemoveFromBoard clears every captured piece's position on g.
func (cl CaptureList) RemoveFromBoard(g *Grid) {
	for _, cap := range cl {
		g.PositionAt(cap.Loc).Clear()
	}
}

// RestoreToBoard puts every captured piece back where it was taken
// from, in reverse capture order.
func (cl CaptureList) RestoreToBoard(g *Grid) {
	for i := len(cl) - 1; i >= 0; i-- {
		g.PositionAt(cl[i].Loc).SetPiece(cl[i].Piece)
	}
}
