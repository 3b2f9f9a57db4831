package chess

// CastlingRights holds the four independent castling permissions.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the starting position's rights.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Has reports whether the colour may still castle on the given side.
func (cr CastlingRights) Has(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return cr.WhiteKingside
	case colour == White:
		return cr.WhiteQueenside
	case kingside:
		return cr.BlackKingside
	default:
		return cr.BlackQueenside
	}
}

// Revoke removes one right.
func (cr *CastlingRights) Revoke(colour Colour, kingside bool) {
	switch {
	case colour == White && kingside:
		cr.WhiteKingside = false
	case colour == White:
		cr.WhiteQueenside = false
	case kingside:
		cr.BlackKingside = false
	default:
		cr.BlackQueenside = false
	}
}

// RevokeAll removes both rights of a colour.
func (cr *CastlingRights) RevokeAll(colour Colour) {
	cr.Revoke(colour, true)
	cr.Revoke(colour, false)
}

// Mask packs the rights into four bits: K=1, Q=2, k=4, q=8.
func (cr CastlingRights) Mask() int {
	mask := 0
	if cr.WhiteKingside {
		mask |= 1
	}
	if cr.WhiteQueenside {
		mask |= 2
	}
	if cr.BlackKingside {
		mask |= 4
	}
	if cr.BlackQueenside {
		mask |= 8
	}
	return mask
}

// String returns the FEN castling field, "-" when no rights remain.
func (cr CastlingRights) String() string {
	s := ""
	if cr.WhiteKingside {
		s += "K"
	}
	if cr.WhiteQueenside {
		s += "Q"
	}
	if cr.BlackKingside {
		s += "k"
	}
	if cr.BlackQueenside {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// Castling geometry on the back row, by column.
const (
	KingHomeCol      = 4
	KingsideRookCol  = 7
	QueensideRookCol = 0
)

// CastleCols returns the king and rook destination columns for a side.
func CastleCols(kingside bool) (kingTo, rookTo int) {
	if kingside {
		return 6, 5
	}
	return 2, 3
}

// RookHomeCol returns the starting column of the castling rook for a side.
func RookHomeCol(kingside bool) int {
	if kingside {
		return KingsideRookCol
	}
	return QueensideRookCol
}
