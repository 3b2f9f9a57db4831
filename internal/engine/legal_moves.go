package engine

import (
	"fmt"
	"sort"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// promotionChoices lists the pieces a pawn may become, strongest first.
var promotionChoices = [4]chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// LegalMoves returns every legal move for the side to move, ordered by
// source square, destination square, then promotion piece. Each promotion
// choice is a separate move.
func LegalMoves(g *GameState) []chess.Move {
	var moves []chess.Move
	forEachLegalMove(g, func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})

	sort.Slice(moves, func(i, j int) bool {
		a, b := moves[i], moves[j]
		if a.From != b.From {
			return squareIndex(a.From) < squareIndex(b.From)
		}
		if a.To != b.To {
			return squareIndex(a.To) < squareIndex(b.To)
		}
		return a.Promotion < b.Promotion
	})
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(g *GameState) bool {
	found := false
	forEachLegalMove(g, func(chess.Move) bool {
		found = true
		return false
	})
	return found
}

// LegalMovesFrom returns the legal moves of the piece on from.
func LegalMovesFrom(g *GameState, from chess.Position) []chess.Move {
	var moves []chess.Move
	for _, m := range LegalMoves(g) {
		if m.From == from {
			moves = append(moves, m)
		}
	}
	return moves
}

// FindLegalMove parses a long algebraic move and returns the matching legal
// move, with its Kind filled in.
func FindLegalMove(g *GameState, text string) (chess.Move, bool) {
	m, err := ParseMove(text)
	if err != nil {
		return chess.Move{}, false
	}
	moves := LegalMoves(g)
	i := slices.IndexFunc(moves, func(candidate chess.Move) bool {
		return candidate.From == m.From && candidate.To == m.To && candidate.Promotion == m.Promotion
	})
	if i < 0 {
		return chess.Move{}, false
	}
	return moves[i], true
}

// ParseMove parses long algebraic notation such as "e2e4" or "e7e8q".
// The Kind of the returned move is not set.
func ParseMove(text string) (chess.Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMoveText)
	}
	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return chess.Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMoveText)
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return chess.Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMoveText)
	}

	m := chess.Move{From: from, To: to}
	if len(text) == 5 {
		m.Promotion = chess.PieceTypeFromLetter(text[4])
		if !m.Promotion.IsPromotionChoice() {
			return chess.Move{}, fmt.Errorf("%q: bad promotion piece: %w", text, errors.ErrInvalidMoveText)
		}
	}
	return m, nil
}

// forEachLegalMove generates candidate destinations from the move rules,
// adds castling, and keeps those IsLegal accepts. yield returns false to stop.
func forEachLegalMove(g *GameState, yield func(chess.Move) bool) {
	ep := g.enPassantPtr()
	for _, from := range g.board.Squares(g.toMove) {
		piece := g.board.At(from)
		targets := ReachableSquares(&g.board, from, ep)
		if piece.Type == chess.King {
			targets = append(targets, castleDestinations(g, from)...)
		}

		for _, to := range targets {
			choices := []chess.PieceType{chess.NoPieceType}
			if piece.Type == chess.Pawn && to.Row() == chess.PromotionRow(piece.Colour) {
				choices = promotionChoices[:]
			}
			for _, promotion := range choices {
				kind, err := IsLegal(g, from, to, promotion)
				if err != nil {
					continue
				}
				if !yield(chess.Move{From: from, To: to, Promotion: promotion, Kind: kind}) {
					return
				}
			}
		}
	}
}

func squareIndex(p chess.Position) int {
	return p.Row()*chess.BoardSize + p.Col()
}
