package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// applyToBoard relocates pieces for an already validated move: castling
// moves the rook too, en passant removes the passed pawn, promotion replaces
// the pawn. The moving piece is marked as moved and a pawn double step sets
// its flag. The board is otherwise trusted as-is.
func applyToBoard(board *chess.Board, m chess.Move) {
	piece := board.At(m.From)
	clearDoubleSteps(board)

	switch m.Kind {
	case chess.CastleKingside, chess.CastleQueenside:
		kingside := m.Kind == chess.CastleKingside
		row := m.From.Row()
		_, rookTo := chess.CastleCols(kingside)
		rookFrom := chess.MustPosition(row, chess.RookHomeCol(kingside))
		rookDest := chess.MustPosition(row, rookTo)
		board.RawMove(rookFrom, rookDest)
		markMoved(board, rookDest)

	case chess.EnPassant:
		board.Clear(enPassantVictim(m.From, m.To))
	}

	if m.Promotion != chess.NoPieceType {
		board.Clear(m.From)
		board.Place(m.To, chess.Piece{Type: m.Promotion, Colour: piece.Colour, Moved: true})
		return
	}

	board.RawMove(m.From, m.To)
	moved := board.At(m.To)
	moved.Moved = true
	moved.DoubleStep = isDoubleStep(piece, m.From, m.To)
	board.Place(m.To, moved)
}

func markMoved(board *chess.Board, pos chess.Position) {
	p := board.At(pos)
	p.Moved = true
	board.Place(pos, p)
}

// apply plays a validated move and updates every auxiliary field: castling
// rights, en passant target, clocks, side to move and position history.
func (g *GameState) apply(m chess.Move) {
	piece := g.board.At(m.From)
	_, captured := g.board.Get(m.To)

	applyToBoard(&g.board, m)
	updateCastlingRights(&g.castling, piece, m.From, m.To)

	g.hasEnPassant = false
	if isDoubleStep(piece, m.From, m.To) {
		g.enPassant = chess.MustPosition((m.From.Row()+m.To.Row())/2, m.From.Col())
		g.hasEnPassant = true
	}

	if piece.Type == chess.Pawn || captured || m.Kind == chess.EnPassant {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}
	if g.toMove == chess.Black {
		g.fullmoveNumber++
	}
	g.toMove = g.toMove.Opposite()

	g.history = append(g.history, g.hash())
}
