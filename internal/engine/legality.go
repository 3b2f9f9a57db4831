package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// IsLegal decides whether the side to move may play from -> to with the
// given promotion choice, and which kind of move it would be. The state is
// never modified: check safety is tested on a scratch copy of the board.
//
// Selection errors (no piece, wrong colour) are reported before any move
// geometry is considered.
func IsLegal(g *GameState, from, to chess.Position, promotion chess.PieceType) (chess.MoveKind, error) {
	piece, ok := g.board.Get(from)
	if !ok {
		return chess.Normal, errors.ErrNoPieceAtPosition
	}
	if piece.Colour != g.toMove {
		return chess.Normal, errors.ErrWrongColor
	}

	target, occupied := g.board.Get(to)
	if occupied && target.Colour == piece.Colour {
		return chess.Normal, errors.ErrSquareOccupied
	}

	var kind chess.MoveKind
	switch {
	case isCastleAttempt(piece, from, to):
		kingside := to.Col() > from.Col()
		if !canCastle(g, piece.Colour, kingside) {
			return chess.Normal, errors.ErrIllegalCastle
		}
		kind = chess.CastleQueenside
		if kingside {
			kind = chess.CastleKingside
		}

	case isEnPassantAttempt(piece, from, to, occupied):
		if !canCaptureEnPassant(g, from, to) {
			return chess.Normal, errors.ErrIllegalEnPassant
		}
		kind = chess.EnPassant

	default:
		if !slices.Contains(ReachableSquares(&g.board, from, nil), to) {
			return chess.Normal, errors.ErrInvalidMove
		}
		kind = chess.Normal
		if occupied {
			kind = chess.Capture
		}
	}

	promotes, err := checkPromotion(piece, to, promotion)
	if err != nil {
		return chess.Normal, err
	}
	if promotes {
		kind = chess.Promotion
	}

	scratch := g.board
	applyToBoard(&scratch, chess.Move{From: from, To: to, Promotion: promotion, Kind: kind})
	if scratch.IsInCheck(piece.Colour) {
		return chess.Normal, errors.ErrMovesIntoCheck
	}

	return kind, nil
}

// checkPromotion enforces that a pawn landing on its last row names a
// knight, bishop, rook or queen, and that no other move names anything.
func checkPromotion(piece chess.Piece, to chess.Position, promotion chess.PieceType) (bool, error) {
	reachesLastRow := piece.Type == chess.Pawn && to.Row() == chess.PromotionRow(piece.Colour)
	switch {
	case reachesLastRow && promotion == chess.NoPieceType:
		return false, errors.ErrMissingPromotion
	case reachesLastRow && !promotion.IsPromotionChoice():
		return false, errors.ErrIllegalPromotion
	case !reachesLastRow && promotion != chess.NoPieceType:
		return false, errors.ErrIllegalPromotion
	}
	return reachesLastRow, nil
}
