// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType identifies the kind of a chess piece.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (pt PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if pt >= 0 && int(pt) < len(names) {
		return names[pt]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (pt PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if pt >= 0 && int(pt) < len(letters) {
		return letters[pt]
	}
	return '?'
}

// IsPromotionChoice reports whether a pawn may promote to this type.
func (pt PieceType) IsPromotionChoice() bool {
	switch pt {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// PieceTypeFromLetter converts a letter in either case to a piece type.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// Piece is a single chess piece. The zero value is "no piece".
//
// Moved is tracked for every piece but only consulted for pawns, rooks and
// the king. DoubleStep is only meaningful for a pawn and is true for exactly
// one ply after it advanced two squares.
type Piece struct {
	Type       PieceType
	Colour     Colour
	Moved      bool
	DoubleStep bool
}

// NoPiece is the empty tile value.
var NoPiece = Piece{}

// NewPiece creates an unmoved piece.
func NewPiece(pt PieceType, colour Colour) Piece {
	return Piece{Type: pt, Colour: colour}
}

// IsEmpty returns true if this value holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// Letter returns the FEN letter of the piece: upper case for White, lower
// case for Black and '.' for an empty tile.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Type.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// MoveKind categorizes a legal move.
type MoveKind int

const (
	Normal MoveKind = iota
	Capture
	EnPassant
	CastleKingside
	CastleQueenside
	Promotion
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case Capture:
		return "Capture"
	case EnPassant:
		return "EnPassant"
	case CastleKingside:
		return "CastleKingside"
	case CastleQueenside:
		return "CastleQueenside"
	case Promotion:
		return "Promotion"
	default:
		return "Unknown"
	}
}

// IsCastle returns true for either castling kind.
func (k MoveKind) IsCastle() bool {
	return k == CastleKingside || k == CastleQueenside
}

// Constants for board dimensions and home rows.
const (
	BoardSize = 8

	WhiteBackRow = BoardSize - 1
	BlackBackRow = 0
	WhitePawnRow = WhiteBackRow - 1
	BlackPawnRow = BlackBackRow + 1
)

// Forward returns the row delta a pawn of the given colour advances by.
func Forward(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// BackRow returns the home row of the colour's king and rooks.
func BackRow(colour Colour) int {
	if colour == White {
		return WhiteBackRow
	}
	return BlackBackRow
}

// PawnRow returns the starting row of the colour's pawns.
func PawnRow(colour Colour) int {
	if colour == White {
		return WhitePawnRow
	}
	return BlackPawnRow
}

// PromotionRow returns the farthest row for the colour's pawns.
func PromotionRow(colour Colour) int {
	return BackRow(colour.Opposite())
}
