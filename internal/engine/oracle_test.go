package engine_test

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

var oracleFENs = []string{
	engine.InitialFEN,
	testutil.KiwipeteFEN,
	testutil.Position3,
	testutil.Position4,
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"8/8/8/K2pP2r/8/8/8/4k3 w - d6 0 2",
	"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
}

func dragontoothMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func TestLegalMovesMatchDragontooth(t *testing.T) {
	for _, fen := range oracleFENs {
		t.Run(fen, func(t *testing.T) {
			g := testutil.MustGame(t, fen)
			testutil.AssertSameStrings(t, testutil.MoveStrings(g), dragontoothMoves(fen))
		})
	}
}

// Walks a deterministic line from each position and compares the move list
// at every ply, which exercises positions reached through our own move
// application rather than only through the FEN reader.
func TestLegalMovesMatchDragontooth_Walk(t *testing.T) {
	const plies = 40

	for _, fen := range oracleFENs {
		t.Run(fen, func(t *testing.T) {
			g := testutil.MustGame(t, fen)
			for ply := 0; ply < plies; ply++ {
				current := g.FEN()
				moves := testutil.MoveStrings(g)
				testutil.AssertSameStrings(t, moves, dragontoothMoves(current), "ply %d at %s", ply, current)
				if len(moves) == 0 {
					return
				}
				testutil.MustPlay(t, g, moves[(ply*7+3)%len(moves)])
			}
		})
	}
}

func TestStatusMatchesNotnil(t *testing.T) {
	tests := []struct {
		fen  string
		want notnil.Method
	}{
		{engine.InitialFEN, notnil.NoMethod},
		{"k7/1Q6/1K6/8/8/8/8/8 b - - 0 1", notnil.Checkmate},
		{"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", notnil.Checkmate},
		{"3R2k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", notnil.Checkmate},
		{"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", notnil.Stalemate},
		{"k7/8/1Q6/8/8/8/8/7K b - - 0 1", notnil.Stalemate},
		{"k7/1Q6/8/8/8/8/8/7K b - - 0 1", notnil.NoMethod},
	}

	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			opt, err := notnil.FEN(tt.fen)
			if err != nil {
				t.Fatalf("notnil.FEN(%q) error: %v", tt.fen, err)
			}
			theirs := notnil.NewGame(opt).Position().Status()
			testutil.AssertEqual(t, theirs, tt.want, "notnil status")

			g := testutil.MustGame(t, tt.fen)
			ours := notnil.NoMethod
			switch {
			case g.IsCheckmate():
				ours = notnil.Checkmate
			case g.IsStalemate():
				ours = notnil.Stalemate
			}
			testutil.AssertEqual(t, ours, theirs, "status")
		})
	}
}

func TestValidMoveCountMatchesNotnil(t *testing.T) {
	for _, fen := range oracleFENs {
		t.Run(fen, func(t *testing.T) {
			opt, err := notnil.FEN(fen)
			if err != nil {
				t.Fatalf("notnil.FEN(%q) error: %v", fen, err)
			}
			want := notnil.NewGame(opt).ValidMoves()
			got := engine.LegalMoves(testutil.MustGame(t, fen))
			testutil.AssertEqual(t, len(got), len(want), "move count")
		})
	}
}
