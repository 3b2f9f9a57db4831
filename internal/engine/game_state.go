package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// GameState is a board plus everything else needed to decide legality:
// side to move, castling rights, en passant target and the move counters.
//
// A GameState is not safe for concurrent use. Give each goroutine its own
// copy via Clone, or serialize access externally.
type GameState struct {
	board    chess.Board
	toMove   chess.Colour
	castling chess.CastlingRights

	// Set for exactly one ply after a double pawn step.
	enPassant    chess.Position
	hasEnPassant bool

	halfmoveClock  int
	fullmoveNumber int

	// Zobrist keys of every position reached, current position last.
	history []uint64
}

// NewGame returns the standard starting position with White to move.
func NewGame() *GameState {
	g := &GameState{
		toMove:         chess.White,
		castling:       chess.AllCastlingRights,
		fullmoveNumber: 1,
	}
	g.board.SetupInitialPosition()
	g.history = []uint64{g.hash()}
	return g
}

// NewGameFromBoard builds a state around an already populated board. The
// board is copied. Used by setup code such as the FEN reader; gameplay goes
// through AttemptMove.
func NewGameFromBoard(board *chess.Board, toMove chess.Colour, castling chess.CastlingRights,
	enPassant *chess.Position, halfmoveClock, fullmoveNumber int) *GameState {
	g := &GameState{
		board:          *board,
		toMove:         toMove,
		castling:       castling,
		halfmoveClock:  halfmoveClock,
		fullmoveNumber: fullmoveNumber,
	}
	if enPassant != nil {
		g.enPassant = *enPassant
		g.hasEnPassant = true
	}
	if g.fullmoveNumber < 1 {
		g.fullmoveNumber = 1
	}
	g.history = []uint64{g.hash()}
	return g
}

// Clone returns an independent copy of the state.
func (g *GameState) Clone() *GameState {
	c := *g
	c.history = append([]uint64(nil), g.history...)
	return &c
}

// AttemptMove validates a move for the side to move and applies it.
// promotion must be chess.NoPieceType unless a pawn reaches its last row.
// On failure the state is unchanged and the error is a *errors.GameError
// wrapping a SelectError or MoveError.
func (g *GameState) AttemptMove(from, to chess.Position, promotion chess.PieceType) (chess.MoveKind, error) {
	kind, err := IsLegal(g, from, to, promotion)
	if err != nil {
		return kind, &errors.GameError{
			Err:  err,
			From: from.String(),
			To:   to.String(),
			Ply:  g.Ply() + 1,
		}
	}
	g.apply(chess.Move{From: from, To: to, Promotion: promotion, Kind: kind})
	return kind, nil
}

// PlayMove applies a move given in long algebraic form ("e2e4", "e7e8q").
func (g *GameState) PlayMove(text string) (chess.MoveKind, error) {
	m, err := ParseMove(text)
	if err != nil {
		return chess.Normal, err
	}
	return g.AttemptMove(m.From, m.To, m.Promotion)
}

// TileAt returns the piece on pos and whether the tile is occupied.
func (g *GameState) TileAt(pos chess.Position) (chess.Piece, bool) {
	return g.board.Get(pos)
}

// Board returns a copy of the current board.
func (g *GameState) Board() *chess.Board {
	return g.board.Copy()
}

// SideToMove returns the colour whose turn it is.
func (g *GameState) SideToMove() chess.Colour {
	return g.toMove
}

// CastlingRights returns the remaining castling rights.
func (g *GameState) CastlingRights() chess.CastlingRights {
	return g.castling
}

// EnPassantTarget returns the square a pawn may capture onto en passant,
// and false when no en passant capture is available this ply.
func (g *GameState) EnPassantTarget() (chess.Position, bool) {
	return g.enPassant, g.hasEnPassant
}

// HalfmoveClock returns the number of plies since the last pawn move or capture.
func (g *GameState) HalfmoveClock() int {
	return g.halfmoveClock
}

// FullmoveNumber returns the move number, starting at 1 and incremented after Black moves.
func (g *GameState) FullmoveNumber() int {
	return g.fullmoveNumber
}

// Ply returns the number of half-moves played since the game began.
func (g *GameState) Ply() int {
	ply := 2 * (g.fullmoveNumber - 1)
	if g.toMove == chess.Black {
		ply++
	}
	return ply
}

// IsCheck returns true if the given colour's king is attacked.
func (g *GameState) IsCheck(colour chess.Colour) bool {
	return g.board.IsInCheck(colour)
}

// IsCheckmate returns true if the side to move is in check and has no legal move.
func (g *GameState) IsCheckmate() bool {
	return g.IsCheck(g.toMove) && !HasLegalMoves(g)
}

// IsStalemate returns true if the side to move is not in check but has no legal move.
func (g *GameState) IsStalemate() bool {
	return !g.IsCheck(g.toMove) && !HasLegalMoves(g)
}

// Hash returns the Zobrist key of the current position.
func (g *GameState) Hash() uint64 {
	return g.history[len(g.history)-1]
}

// enPassantPtr returns the en passant target as an optional value.
func (g *GameState) enPassantPtr() *chess.Position {
	if !g.hasEnPassant {
		return nil
	}
	ep := g.enPassant
	return &ep
}

// hash computes the Zobrist key from scratch. The en passant file only
// counts when a pawn of the side to move stands ready to capture there.
func (g *GameState) hash() uint64 {
	epFile := -1
	if g.hasEnPassant && g.enPassantCapturable() {
		epFile = g.enPassant.Col()
	}
	return hashing.Zobrist(&g.board, g.toMove, g.castling, epFile)
}

func (g *GameState) enPassantCapturable() bool {
	for _, dc := range [2]int{-1, 1} {
		from, ok := g.enPassant.Offset(-chess.Forward(g.toMove), dc)
		if !ok {
			continue
		}
		if p := g.board.At(from); p.Type == chess.Pawn && p.Colour == g.toMove {
			return true
		}
	}
	return false
}
