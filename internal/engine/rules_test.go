package engine

import (
	"testing"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "4kb2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"K+N+N vs K", "4k3/8/8/8/8/8/8/1N2K1N1 w - - 0 1", false},
		{"standard starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := mustGame(t, tt.fen)
			got := HasInsufficientMaterial(&g.board)
			if got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want GameStatus
	}{
		{"initial position", InitialFEN, Ongoing},
		{"checkmate", "k7/1Q6/1K6/8/8/8/8/8 b - - 0 1", Checkmate},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate},
		{"check", "4k3/8/8/8/8/8/8/4RK2 b - - 0 1", Check},
		{"insufficient material", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", InsufficientMaterial},
		{"fifty move rule", "4k3/8/8/8/8/8/8/R3K3 w - - 100 80", FiftyMoveDraw},
		{"one ply short of fifty moves", "4k3/8/8/8/8/8/8/R3K3 w - - 99 80", Ongoing},
		{"mate beats fifty move rule", "k7/1Q6/1K6/8/8/8/8/8 b - - 120 90", Checkmate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			got := g.Status()
			if got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
			if got.IsOver() != (tt.want != Ongoing && tt.want != Check) {
				t.Errorf("%v.IsOver() = %v", got, got.IsOver())
			}
		})
	}
}

func TestThreefoldRepetition(t *testing.T) {
	g := NewGame()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	playAll(t, g, shuffle...)
	if got := g.RepetitionCount(); got != 2 {
		t.Errorf("RepetitionCount() after one cycle = %d, want 2", got)
	}
	if g.IsThreefoldRepetition() {
		t.Error("two occurrences are not a threefold repetition")
	}

	playAll(t, g, shuffle...)
	if got := g.RepetitionCount(); got != 3 {
		t.Errorf("RepetitionCount() after two cycles = %d, want 3", got)
	}
	if got := g.Status(); got != ThreefoldRepetition {
		t.Errorf("Status() = %v, want ThreefoldRepetition", got)
	}
}

// 1.e4 leaves an en passant target no black pawn can use, so shuffling the
// knights out and back repeats the position.
func TestRepetitionIgnoresUncapturableEnPassant(t *testing.T) {
	g := NewGame()
	playAll(t, g, "e2e4")
	afterE4 := g.Hash()

	playAll(t, g, "g8f6", "g1f3", "f6g8", "f3g1")
	if g.Hash() != afterE4 {
		t.Error("position after 1.e4 should repeat when no en passant capture is possible")
	}
}

func TestRepetitionCountsCapturableEnPassant(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/3p4/8/4P3/4K2N w - - 0 1")
	playAll(t, g, "e2e4")
	withTarget := g.Hash()

	playAll(t, g, "e8d8", "h1g3", "d8e8", "g3h1")
	if g.Hash() == withTarget {
		t.Error("en passant availability should distinguish the positions")
	}
	if got := g.RepetitionCount(); got != 1 {
		t.Errorf("RepetitionCount() = %d, want 1", got)
	}
}

func TestGameStatusString(t *testing.T) {
	tests := []struct {
		status GameStatus
		want   string
	}{
		{Ongoing, "Ongoing"},
		{Checkmate, "Checkmate"},
		{ThreefoldRepetition, "ThreefoldRepetition"},
		{GameStatus(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("GameStatus(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}
