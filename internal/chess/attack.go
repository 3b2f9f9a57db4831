package chess

// Direction vectors as {row delta, col delta}.
var (
	KnightOffsets  = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	KingOffsets    = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	DiagonalDirs   = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	OrthogonalDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsAttacked returns true if any piece of byColour attacks pos. Pawns attack
// diagonally forward only. This is a geometric test: pins and the safety of
// the attacker's own king are ignored, and castling never counts as an attack.
func (b *Board) IsAttacked(pos Position, byColour Colour) bool {
	// A pawn attacking pos stands one row behind it, from the attacker's view.
	pawnRow := -Forward(byColour)
	for _, dc := range [2]int{-1, 1} {
		if sq, ok := pos.Offset(pawnRow, dc); ok && b.holds(sq, Pawn, byColour) {
			return true
		}
	}

	for _, off := range KnightOffsets {
		if sq, ok := pos.Offset(off[0], off[1]); ok && b.holds(sq, Knight, byColour) {
			return true
		}
	}

	for _, off := range KingOffsets {
		if sq, ok := pos.Offset(off[0], off[1]); ok && b.holds(sq, King, byColour) {
			return true
		}
	}

	for _, dir := range DiagonalDirs {
		if b.slideHits(pos, dir, byColour, Bishop) {
			return true
		}
	}
	for _, dir := range OrthogonalDirs {
		if b.slideHits(pos, dir, byColour, Rook) {
			return true
		}
	}

	return false
}

// IsInCheck returns true if the given colour's king is attacked.
// A side without a king is never in check.
func (b *Board) IsInCheck(colour Colour) bool {
	king, ok := b.FindKing(colour)
	if !ok {
		return false
	}
	return b.IsAttacked(king, colour.Opposite())
}

// slideHits walks from pos along dir and reports whether the first piece met
// is a slider of byColour (the given type or a queen).
func (b *Board) slideHits(pos Position, dir [2]int, byColour Colour, slider PieceType) bool {
	sq, ok := pos.Offset(dir[0], dir[1])
	for ok {
		piece := b.At(sq)
		if !piece.IsEmpty() {
			return piece.Colour == byColour && (piece.Type == slider || piece.Type == Queen)
		}
		sq, ok = sq.Offset(dir[0], dir[1])
	}
	return false
}

func (b *Board) holds(pos Position, pt PieceType, colour Colour) bool {
	piece := b.At(pos)
	return piece.Type == pt && piece.Colour == colour
}
