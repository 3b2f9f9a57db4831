package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameFromFEN sets up a game from a FEN string. Only the placement field
// is required; missing trailing fields default to White to move, no castling,
// no en passant target and clocks 0 and 1.
//
// Pieces standing on their home squares are treated as unmoved. An en
// passant target is kept only when the pawn that just double-stepped is
// actually in front of it.
func NewGameFromFEN(fen string) (*GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}

	castling, err := parseCastlingRights(parts)
	if err != nil {
		return nil, err
	}

	ep, err := parseEnPassant(board, toMove, parts)
	if err != nil {
		return nil, err
	}

	halfmove, fullmove, err := parseClocks(parts)
	if err != nil {
		return nil, err
	}

	return NewGameFromBoard(board, toMove, castling, ep, halfmove, fullmove), nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			case c > unicode.MaxASCII:
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			default:
				pt := chess.PieceTypeFromLetter(byte(c))
				if pt == chess.NoPieceType {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				pos, err := chess.NewPosition(row, col)
				if err != nil {
					return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				piece := chess.NewPiece(pt, colour)
				piece.Moved = !onHomeSquare(piece, pos)
				board.Place(pos, piece)
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// onHomeSquare reports whether a piece stands where it starts the game.
// Only pawns, rooks and kings carry a meaningful moved flag.
func onHomeSquare(piece chess.Piece, pos chess.Position) bool {
	switch piece.Type {
	case chess.Pawn:
		return pos.Row() == chess.PawnRow(piece.Colour)
	case chess.King:
		return pos.Row() == chess.BackRow(piece.Colour) && pos.Col() == chess.KingHomeCol
	case chess.Rook:
		return pos.Row() == chess.BackRow(piece.Colour) &&
			(pos.Col() == chess.KingsideRookCol || pos.Col() == chess.QueensideRookCol)
	default:
		return true
	}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(parts []string) (chess.CastlingRights, error) {
	var rights chess.CastlingRights
	if len(parts) < 3 || parts[2] == "-" {
		return rights, nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		default:
			return rights, fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field and marks the
// pawn that made the double step.
func parseEnPassant(board *chess.Board, toMove chess.Colour, parts []string) (*chess.Position, error) {
	if len(parts) < 4 || parts[3] == "-" {
		return nil, nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return nil, fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}

	mover := toMove.Opposite()
	pawnSq, ok := target.Offset(chess.Forward(mover), 0)
	if !ok {
		return nil, nil
	}
	pawn := board.At(pawnSq)
	if pawn.Type != chess.Pawn || pawn.Colour != mover {
		return nil, nil
	}
	pawn.DoubleStep = true
	pawn.Moved = true
	board.Place(pawnSq, pawn)
	return &target, nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(parts []string) (int, int, error) {
	halfmove, fullmove := 0, 1
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return 0, 0, fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		halfmove = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		fullmove = n
	}
	return halfmove, fullmove, nil
}

// FEN converts the state to a FEN string using only the read accessors.
func (g *GameState) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, g)
	sb.WriteByte(' ')
	if g.SideToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(g.CastlingRights().String())
	sb.WriteByte(' ')
	if ep, ok := g.EnPassantTarget(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", g.HalfmoveClock(), g.FullmoveNumber())

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, g *GameState) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := g.TileAt(chess.MustPosition(row, col))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
