package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Position is a square on the board. Row 0 is rank 8 and column 0 is the
// a-file. A Position obtained from NewPosition is always in bounds.
type Position struct {
	row, col int
}

// NewPosition returns the square at row, col or ErrOutsideBoard.
func NewPosition(row, col int) (Position, error) {
	if !inBounds(row, col) {
		return Position{}, errors.ErrOutsideBoard
	}
	return Position{row: row, col: col}, nil
}

// MustPosition is like NewPosition but panics on an out of range square.
// Intended for fixed coordinates in setup code and tests.
func MustPosition(row, col int) Position {
	pos, err := NewPosition(row, col)
	if err != nil {
		panic(fmt.Sprintf("chess: position (%d,%d): %v", row, col, err))
	}
	return pos
}

// ParseSquare converts algebraic notation such as "e4" into a Position.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrOutsideBoard)
	}
	col := int(s[0]) - 'a'
	row := BoardSize - (int(s[1]) - '0')
	return NewPosition(row, col)
}

// Row returns the row index, 0-7.
func (p Position) Row() int {
	return p.row
}

// Col returns the column index, 0-7.
func (p Position) Col() int {
	return p.col
}

// Offset returns the square shifted by dr rows and dc columns, and false if
// that square is off the board.
func (p Position) Offset(dr, dc int) (Position, bool) {
	row, col := p.row+dr, p.col+dc
	if !inBounds(row, col) {
		return Position{}, false
	}
	return Position{row: row, col: col}, true
}

// String formats the square in algebraic notation.
func (p Position) String() string {
	return fmt.Sprintf("%c%c", 'a'+p.col, '0'+BoardSize-p.row)
}

// IsLight returns true if the square is a light square.
func (p Position) IsLight() bool {
	return (p.row+p.col)%2 == 0
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
