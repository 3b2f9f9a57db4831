// Package testutil provides shared test utilities for the chess-rules-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Well-known positions with published perft totals.
const (
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Position3   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	Position4   = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
)

// MustGame sets up a game from a FEN string.
// It calls t.Fatal if the FEN cannot be read.
func MustGame(t testing.TB, fen string) *engine.GameState {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to read FEN %q: %v", fen, err)
	}
	return g
}

// MustPlay plays a sequence of moves in coordinate notation (e2e4, e7e8q).
// It calls t.Fatal on the first move that is rejected.
func MustPlay(t testing.TB, g *engine.GameState, moves ...string) {
	t.Helper()
	for i, text := range moves {
		if _, err := g.PlayMove(text); err != nil {
			t.Fatalf("move %d (%s) rejected: %v", i+1, text, err)
		}
	}
}

// MoveStrings returns the legal moves of g in coordinate notation.
func MoveStrings(g *engine.GameState) []string {
	moves := engine.LegalMoves(g)
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
