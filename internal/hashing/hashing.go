// Package hashing provides Zobrist position keys used for repetition detection.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Zobrist keys, generated once from a fixed seed so keys are reproducible
// across runs.
var (
	pieceKeys     [2][7][chess.BoardSize * chess.BoardSize]uint64 // [colour][piece type][square]
	enPassantKeys [chess.BoardSize]uint64                         // one per file
	castlingKeys  [16]uint64                                      // every castling rights mask
	blackToMove   uint64
)

func init() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for c := range pieceKeys {
		for pt := chess.Pawn; pt <= chess.King; pt++ {
			for sq := range pieceKeys[c][pt] {
				pieceKeys[c][pt][sq] = rng.next()
			}
		}
	}
	for file := range enPassantKeys {
		enPassantKeys[file] = rng.next()
	}
	for i := range castlingKeys {
		castlingKeys[i] = rng.next()
	}
	blackToMove = rng.next()
}

// prng is an xorshift64* generator.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// Zobrist computes the key of a position. epFile is the column of a
// capturable en passant target, or -1. Piece flags (moved, double step) are
// not part of the key; castling rights and epFile carry that information.
func Zobrist(board *chess.Board, toMove chess.Colour, castling chess.CastlingRights, epFile int) uint64 {
	var hash uint64

	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		for _, sq := range board.Squares(colour) {
			piece := board.At(sq)
			hash ^= pieceKeys[colour][piece.Type][sq.Row()*chess.BoardSize+sq.Col()]
		}
	}

	hash ^= castlingKeys[castling.Mask()]

	if epFile >= 0 && epFile < chess.BoardSize {
		hash ^= enPassantKeys[epFile]
	}

	if toMove == chess.Black {
		hash ^= blackToMove
	}

	return hash
}
