package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isCastleAttempt reports whether a move is the king's two-square castling
// step from its home square along the back row.
func isCastleAttempt(piece chess.Piece, from, to chess.Position) bool {
	if piece.Type != chess.King {
		return false
	}
	home := chess.BackRow(piece.Colour)
	if from.Row() != home || from.Col() != chess.KingHomeCol || to.Row() != home {
		return false
	}
	return abs(to.Col()-from.Col()) == 2
}

// canCastle checks every castling precondition for one side:
//   - the right has not been revoked, and neither king nor rook has moved
//   - every square strictly between king and rook is empty
//   - the king is not in check, and neither the square it crosses nor the
//     square it lands on is attacked
func canCastle(g *GameState, colour chess.Colour, kingside bool) bool {
	if !g.castling.Has(colour, kingside) {
		return false
	}

	row := chess.BackRow(colour)
	kingSq := chess.MustPosition(row, chess.KingHomeCol)
	rookSq := chess.MustPosition(row, chess.RookHomeCol(kingside))

	king := g.board.At(kingSq)
	if king.Type != chess.King || king.Colour != colour || king.Moved {
		return false
	}
	rook := g.board.At(rookSq)
	if rook.Type != chess.Rook || rook.Colour != colour || rook.Moved {
		return false
	}

	step := sign(rookSq.Col() - kingSq.Col())
	for col := kingSq.Col() + step; col != rookSq.Col(); col += step {
		if !g.board.At(chess.MustPosition(row, col)).IsEmpty() {
			return false
		}
	}

	enemy := colour.Opposite()
	kingTo, _ := chess.CastleCols(kingside)
	for col := kingSq.Col(); col != kingTo+step; col += step {
		if g.board.IsAttacked(chess.MustPosition(row, col), enemy) {
			return false
		}
	}
	return true
}

// castleDestinations returns the king destinations of every castle the side
// to move could currently make.
func castleDestinations(g *GameState, from chess.Position) []chess.Position {
	var squares []chess.Position
	for _, kingside := range [2]bool{true, false} {
		kingTo, _ := chess.CastleCols(kingside)
		to, ok := from.Offset(0, kingTo-from.Col())
		if !ok {
			continue
		}
		if isCastleAttempt(g.board.At(from), from, to) && canCastle(g, g.toMove, kingside) {
			squares = append(squares, to)
		}
	}
	return squares
}

// updateCastlingRights revokes rights after a move: any king move, and any
// move from or onto a rook's home corner.
func updateCastlingRights(rights *chess.CastlingRights, piece chess.Piece, from, to chess.Position) {
	if piece.Type == chess.King {
		rights.RevokeAll(piece.Colour)
	}
	for _, sq := range [2]chess.Position{from, to} {
		for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
			if sq.Row() != chess.BackRow(colour) {
				continue
			}
			switch sq.Col() {
			case chess.KingsideRookCol:
				rights.Revoke(colour, true)
			case chess.QueensideRookCol:
				rights.Revoke(colour, false)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
