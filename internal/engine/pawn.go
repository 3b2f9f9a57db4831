package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isEnPassantAttempt reports whether a pawn move is a one-row diagonal step
// onto an empty square, which only en passant allows.
func isEnPassantAttempt(piece chess.Piece, from, to chess.Position, occupied bool) bool {
	if piece.Type != chess.Pawn || occupied {
		return false
	}
	return to.Row()-from.Row() == chess.Forward(piece.Colour) && abs(to.Col()-from.Col()) == 1
}

// canCaptureEnPassant checks the en passant preconditions: the destination
// is the current en passant target, and beside the capturing pawn stands the
// opposing pawn that just made a double step.
func canCaptureEnPassant(g *GameState, from, to chess.Position) bool {
	if !g.hasEnPassant || to != g.enPassant {
		return false
	}
	victim := g.board.At(enPassantVictim(from, to))
	return victim.Type == chess.Pawn && victim.Colour != g.toMove && victim.DoubleStep
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture: the capturer's row, the destination's column.
func enPassantVictim(from, to chess.Position) chess.Position {
	return chess.MustPosition(from.Row(), to.Col())
}

// isDoubleStep reports whether a pawn move advanced two rows.
func isDoubleStep(piece chess.Piece, from, to chess.Position) bool {
	return piece.Type == chess.Pawn && abs(to.Row()-from.Row()) == 2
}

// clearDoubleSteps drops the double-step flag from every pawn; it only ever
// survives for the single ply that follows the advance.
func clearDoubleSteps(board *chess.Board) {
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		for _, sq := range board.Squares(colour) {
			if p := board.At(sq); p.DoubleStep {
				p.DoubleStep = false
				board.Place(sq, p)
			}
		}
	}
}
