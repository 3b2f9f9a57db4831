// Package engine provides chess move validation and game state management.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// ReachableSquares returns the squares the piece at from could move to by
// geometry alone, ignoring whether the move leaves its own king in check.
// Squares holding a piece of the mover's colour are never included.
//
// enPassant is the current en passant target, or nil. Castling destinations
// are not geometric and are added by the legality checker.
func ReachableSquares(board *chess.Board, from chess.Position, enPassant *chess.Position) []chess.Position {
	piece, ok := board.Get(from)
	if !ok {
		return nil
	}

	switch piece.Type {
	case chess.Pawn:
		return pawnSquares(board, from, piece.Colour, enPassant)
	case chess.Knight:
		return stepSquares(board, from, piece.Colour, chess.KnightOffsets[:])
	case chess.Bishop:
		return slideSquares(board, from, piece.Colour, chess.DiagonalDirs[:])
	case chess.Rook:
		return slideSquares(board, from, piece.Colour, chess.OrthogonalDirs[:])
	case chess.Queen:
		squares := slideSquares(board, from, piece.Colour, chess.DiagonalDirs[:])
		return append(squares, slideSquares(board, from, piece.Colour, chess.OrthogonalDirs[:])...)
	case chess.King:
		return stepSquares(board, from, piece.Colour, chess.KingOffsets[:])
	}
	return nil
}

// pawnSquares generates pawn pushes and diagonal captures. A pawn never
// moves backwards; it advances two squares only from its starting row and
// only through an empty square.
func pawnSquares(board *chess.Board, from chess.Position, colour chess.Colour, enPassant *chess.Position) []chess.Position {
	var squares []chess.Position
	dir := chess.Forward(colour)

	if one, ok := from.Offset(dir, 0); ok && board.At(one).IsEmpty() {
		squares = append(squares, one)
		if from.Row() == chess.PawnRow(colour) {
			if two, ok := from.Offset(2*dir, 0); ok && board.At(two).IsEmpty() {
				squares = append(squares, two)
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to, ok := from.Offset(dir, dc)
		if !ok {
			continue
		}
		target := board.At(to)
		if !target.IsEmpty() && target.Colour != colour {
			squares = append(squares, to)
		} else if target.IsEmpty() && enPassant != nil && to == *enPassant {
			squares = append(squares, to)
		}
	}
	return squares
}

// stepSquares handles the single-step pieces (knight, king).
func stepSquares(board *chess.Board, from chess.Position, colour chess.Colour, offsets [][2]int) []chess.Position {
	var squares []chess.Position
	for _, off := range offsets {
		to, ok := from.Offset(off[0], off[1])
		if !ok {
			continue
		}
		if target := board.At(to); target.IsEmpty() || target.Colour != colour {
			squares = append(squares, to)
		}
	}
	return squares
}

// slideSquares walks each direction until the edge or the first occupied
// square, which is included only when it holds an opposing piece.
func slideSquares(board *chess.Board, from chess.Position, colour chess.Colour, dirs [][2]int) []chess.Position {
	var squares []chess.Position
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := board.At(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					squares = append(squares, to)
				}
				break // Blocked
			}
			squares = append(squares, to)
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return squares
}
