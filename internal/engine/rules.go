package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// GameStatus summarizes whether the game can continue.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Check
	Checkmate
	Stalemate
	FiftyMoveDraw
	InsufficientMaterial
	ThreefoldRepetition
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	names := []string{"Ongoing", "Check", "Checkmate", "Stalemate", "FiftyMoveDraw",
		"InsufficientMaterial", "ThreefoldRepetition"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// IsOver returns true for every status that ends the game.
func (s GameStatus) IsOver() bool {
	return s != Ongoing && s != Check
}

// FiftyMovePlies is the halfmove clock value at which either side may claim a draw.
const FiftyMovePlies = 100

// Status reports the state of the game for the side to move. Checkmate and
// stalemate take precedence over the draw rules.
func (g *GameState) Status() GameStatus {
	inCheck := g.IsCheck(g.toMove)
	if !HasLegalMoves(g) {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}

	switch {
	case HasInsufficientMaterial(&g.board):
		return InsufficientMaterial
	case g.IsThreefoldRepetition():
		return ThreefoldRepetition
	case g.halfmoveClock >= FiftyMovePlies:
		return FiftyMoveDraw
	case inCheck:
		return Check
	}
	return Ongoing
}

// RepetitionCount returns how many times the current position has occurred,
// including now.
func (g *GameState) RepetitionCount() int {
	current := g.Hash()
	count := 0
	for _, h := range g.history {
		if h == current {
			count++
		}
	}
	return count
}

// IsThreefoldRepetition returns true if the current position has occurred
// at least three times.
func (g *GameState) IsThreefoldRepetition() bool {
	return g.RepetitionCount() >= 3
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		for _, sq := range board.Squares(colour) {
			pieceType := board.At(sq).Type

			// Kings don't count for material
			if pieceType == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if pieceType == chess.Pawn || pieceType == chess.Rook || pieceType == chess.Queen {
				return false
			}

			if colour == chess.White {
				whitePieces = append(whitePieces, pieceType)
				if pieceType == chess.Bishop {
					whiteBishopOnLight = sq.IsLight()
				}
			} else {
				blackPieces = append(blackPieces, pieceType)
				if pieceType == chess.Bishop {
					blackBishopOnLight = sq.IsLight()
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}
