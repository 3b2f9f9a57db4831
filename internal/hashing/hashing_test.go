package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func initialBoard() *chess.Board {
	b := chess.NewBoard()
	b.SetupInitialPosition()
	return b
}

func TestZobristHashConsistency(t *testing.T) {
	hash1 := Zobrist(initialBoard(), chess.White, chess.AllCastlingRights, -1)
	hash2 := Zobrist(initialBoard(), chess.White, chess.AllCastlingRights, -1)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferences(t *testing.T) {
	base := Zobrist(initialBoard(), chess.White, chess.AllCastlingRights, -1)

	moved := initialBoard()
	moved.RawMove(chess.MustPosition(6, 4), chess.MustPosition(4, 4))

	noCastle := chess.AllCastlingRights
	noCastle.RevokeAll(chess.White)

	tests := []struct {
		name string
		hash uint64
	}{
		{"pawn moved", Zobrist(moved, chess.White, chess.AllCastlingRights, -1)},
		{"black to move", Zobrist(initialBoard(), chess.Black, chess.AllCastlingRights, -1)},
		{"castling rights", Zobrist(initialBoard(), chess.White, noCastle, -1)},
		{"en passant file", Zobrist(initialBoard(), chess.White, chess.AllCastlingRights, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.hash == base {
				t.Errorf("hash %x should differ from the initial position", tt.hash)
			}
		})
	}
}

func TestZobristIgnoresPieceFlags(t *testing.T) {
	b := initialBoard()
	e2 := chess.MustPosition(6, 4)
	p := b.At(e2)
	p.Moved = true
	b.Place(e2, p)

	if Zobrist(b, chess.White, chess.AllCastlingRights, -1) != Zobrist(initialBoard(), chess.White, chess.AllCastlingRights, -1) {
		t.Error("moved flag should not change the key")
	}
}

func TestZobristOutOfRangeFile(t *testing.T) {
	want := Zobrist(initialBoard(), chess.White, chess.AllCastlingRights, -1)
	if got := Zobrist(initialBoard(), chess.White, chess.AllCastlingRights, 8); got != want {
		t.Errorf("file 8 should be ignored: got %x, want %x", got, want)
	}
}

func TestNodeCache(t *testing.T) {
	c := NewNodeCache(0)

	if _, ok := c.Lookup(1, 3); ok {
		t.Error("empty cache should miss")
	}
	c.Store(1, 3, 8902)
	if nodes, ok := c.Lookup(1, 3); !ok || nodes != 8902 {
		t.Errorf("Lookup(1, 3) = %d, %v; want 8902, true", nodes, ok)
	}
	if _, ok := c.Lookup(1, 2); ok {
		t.Error("depth is part of the key")
	}
	if c.Hits() != 1 {
		t.Errorf("Hits() = %d, want 1", c.Hits())
	}
	if c.IsFull() {
		t.Error("unlimited cache should never be full")
	}
}

func TestNodeCache_Capacity(t *testing.T) {
	c := NewNodeCache(2)
	c.Store(1, 1, 20)
	c.Store(2, 1, 20)
	c.Store(3, 1, 20)

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if !c.IsFull() {
		t.Error("cache should be full")
	}
	if _, ok := c.Lookup(3, 1); ok {
		t.Error("entry stored past capacity should be dropped")
	}
}

func TestNodeCache_Concurrent(t *testing.T) {
	c := NewNodeCache(0)

	const numWorkers = 10
	const perWorker = 100

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				key := uint64(workerID*perWorker + j)
				c.Store(key, 1, key)
				c.Lookup(key, 1)
			}
		}(i)
	}
	wg.Wait()

	if c.Len() != numWorkers*perWorker {
		t.Errorf("Len() = %d, want %d", c.Len(), numWorkers*perWorker)
	}
	if c.Hits() != numWorkers*perWorker {
		t.Errorf("Hits() = %d, want %d", c.Hits(), numWorkers*perWorker)
	}
}
