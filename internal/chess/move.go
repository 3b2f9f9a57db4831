package chess

// Move is a single move from one square to another. Promotion is
// NoPieceType unless a pawn promotes. Kind is filled in by the engine once
// the move has been validated.
type Move struct {
	From      Position
	To        Position
	Promotion PieceType
	Kind      MoveKind
}

// IsCapture returns true for Capture and EnPassant moves. A capturing
// promotion reports Kind Promotion.
func (m Move) IsCapture() bool {
	return m.Kind == Capture || m.Kind == EnPassant
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind.IsCastle()
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += string(m.Promotion.Letter() + 'a' - 'A')
	}
	return s
}
