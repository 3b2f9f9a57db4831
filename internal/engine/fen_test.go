package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestNewGameFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*GameState) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(g *GameState) bool {
				king, _ := g.TileAt(chess.MustPosition(7, 4))
				pawn, _ := g.TileAt(chess.MustPosition(1, 4))
				return king == chess.NewPiece(chess.King, chess.White) &&
					pawn == chess.NewPiece(chess.Pawn, chess.Black) &&
					g.SideToMove() == chess.White &&
					g.CastlingRights() == chess.AllCastlingRights
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(g *GameState) bool {
				pawn, _ := g.TileAt(chess.MustPosition(4, 4))
				ep, ok := g.EnPassantTarget()
				return pawn.Type == chess.Pawn && pawn.Moved && pawn.DoubleStep &&
					g.SideToMove() == chess.Black &&
					ok && ep == chess.MustPosition(5, 4)
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(g *GameState) bool {
				_, hasEP := g.EnPassantTarget()
				return g.SideToMove() == chess.White &&
					g.CastlingRights() == chess.CastlingRights{} &&
					!hasEP && g.HalfmoveClock() == 0 && g.FullmoveNumber() == 1
			},
		},
		{
			name: "pieces off their home squares are moved",
			fen:  "4k3/8/8/8/8/8/4P3/R5K1 w - - 0 1",
			checkFn: func(g *GameState) bool {
				king, _ := g.TileAt(chess.MustPosition(7, 6))
				rook, _ := g.TileAt(chess.MustPosition(7, 0))
				pawn, _ := g.TileAt(chess.MustPosition(6, 4))
				return king.Moved && !rook.Moved && !pawn.Moved
			},
		},
		{
			name: "en passant target without pawn is dropped",
			fen:  "4k3/8/8/8/8/8/8/4K3 b - e3 0 1",
			checkFn: func(g *GameState) bool {
				_, ok := g.EnPassantTarget()
				return !ok
			},
		},
		{
			name: "clocks",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - - 37 52",
			checkFn: func(g *GameState) bool {
				return g.HalfmoveClock() == 37 && g.FullmoveNumber() == 52 && g.Ply() == 102
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGameFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewGameFromFEN(%q) error: %v", tt.fen, err)
			}
			if !tt.checkFn(g) {
				t.Errorf("NewGameFromFEN(%q) produced unexpected state:\n%s", tt.fen, g.board.String())
			}
		})
	}
}

func TestNewGameFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few ranks", "8/8/8 w - - 0 1"},
		{"short rank", "7/8/8/8/8/8/8/8 w - - 0 1"},
		{"long rank", "ppppppppp/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"full-width pawn", "4k3/\uff507/8/8/8/8/8/4K3 w - - 0 1"},
		{"digit nine", "9/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling", "4k3/8/8/8/8/8/8/4K3 w KX - 0 1"},
		{"bad en passant", "4k3/8/8/8/8/8/8/4K3 w - z9 0 1"},
		{"negative halfmove", "4k3/8/8/8/8/8/8/4K3 w - - -1 1"},
		{"zero fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGameFromFEN(tt.fen)
			if !errors.Is(err, errors.ErrInvalidFEN) {
				t.Errorf("NewGameFromFEN(%q) error = %v, want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 12 40",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			g := mustGame(t, fen)
			if got := g.FEN(); got != fen {
				t.Errorf("FEN() = %q, want %q", got, fen)
			}
		})
	}
}

func TestBoardString(t *testing.T) {
	want := "8 r n b q k b n r\n" +
		"7 p p p p p p p p\n" +
		"6 . . . . . . . .\n" +
		"5 . . . . . . . .\n" +
		"4 . . . . . . . .\n" +
		"3 . . . . . . . .\n" +
		"2 P P P P P P P P\n" +
		"1 R N B Q K B N R\n" +
		"  a b c d e f g h\n"
	if got := NewGame().Board().String(); got != want {
		t.Errorf("Board().String() =\n%s\nwant\n%s", got, want)
	}
}
