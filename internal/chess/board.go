package chess

import "strings"

// Board is an 8x8 grid of tiles. A tile holds at most one Piece; the zero
// Piece marks an empty tile. Board owns every piece on it: pieces are values,
// so moving one transfers it between tiles and never shares it.
//
// Board performs no legality checks. Gameplay must go through the engine;
// Place and RawMove are for setup, tests and the engine itself.
type Board struct {
	// tiles[row][col], row 0 is rank 8.
	tiles [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// backRank lists the pieces on each side's first rank from the a-file.
var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.tiles = [BoardSize][BoardSize]Piece{}
	for col := 0; col < BoardSize; col++ {
		b.tiles[WhiteBackRow][col] = NewPiece(backRank[col], White)
		b.tiles[WhitePawnRow][col] = NewPiece(Pawn, White)
		b.tiles[BlackPawnRow][col] = NewPiece(Pawn, Black)
		b.tiles[BlackBackRow][col] = NewPiece(backRank[col], Black)
	}
}

// Get returns the piece at pos and whether the tile is occupied.
// The returned Piece is a copy.
func (b *Board) Get(pos Position) (Piece, bool) {
	piece := b.tiles[pos.row][pos.col]
	return piece, !piece.IsEmpty()
}

// At returns the piece at pos, or NoPiece.
func (b *Board) At(pos Position) Piece {
	return b.tiles[pos.row][pos.col]
}

// Place writes piece to pos unconditionally. Placing NoPiece clears the tile.
func (b *Board) Place(pos Position, piece Piece) {
	b.tiles[pos.row][pos.col] = piece
}

// Clear empties the tile at pos.
func (b *Board) Clear(pos Position) {
	b.tiles[pos.row][pos.col] = NoPiece
}

// RawMove moves whatever occupies from onto to, discarding any piece
// previously at to, and leaves from empty. Flags are carried unchanged.
func (b *Board) RawMove(from, to Position) {
	if from == to {
		return
	}
	b.tiles[to.row][to.col] = b.tiles[from.row][from.col]
	b.tiles[from.row][from.col] = NoPiece
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// FindKing finds the king of the given colour on the board.
func (b *Board) FindKing(colour Colour) (Position, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := b.tiles[row][col]
			if piece.Type == King && piece.Colour == colour {
				return Position{row: row, col: col}, true
			}
		}
	}
	return Position{}, false
}

// Squares returns the positions of all pieces of the given colour, ordered
// by row then column.
func (b *Board) Squares(colour Colour) []Position {
	var squares []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := b.tiles[row][col]
			if !piece.IsEmpty() && piece.Colour == colour {
				squares = append(squares, Position{row: row, col: col})
			}
		}
	}
	return squares
}

// Count returns the number of pieces of the given type and colour.
func (b *Board) Count(pt PieceType, colour Colour) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := b.tiles[row][col]
			if piece.Type == pt && piece.Colour == colour {
				n++
			}
		}
	}
	return n
}

// String draws the board from rank 8 down to rank 1, White in upper case.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(byte('0' + BoardSize - row))
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(b.tiles[row][col].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
