// Package errors provides the error families reported by the rules engine.
// Selection errors are raised before any movement geometry is considered;
// move errors are raised while a move is evaluated. Both compose into a
// GameError carrying the attempted move, and every value works with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// SelectError reports a problem with the square or piece a move starts from.
type SelectError struct {
	reason string
}

// Error returns the reason the selection was rejected.
func (e *SelectError) Error() string {
	return e.reason
}

// MoveError reports a move that violates the rules of chess.
type MoveError struct {
	reason string
}

// Error returns the reason the move was rejected.
func (e *MoveError) Error() string {
	return e.reason
}

// Selection errors. Compare with errors.Is().
var (
	// ErrWrongColor indicates the selected piece belongs to the side not to move.
	ErrWrongColor = &SelectError{"piece belongs to the other side"}

	// ErrOutsideBoard indicates a coordinate outside the 8x8 grid.
	ErrOutsideBoard = &SelectError{"position outside board"}

	// ErrNoPieceAtPosition indicates an empty source square.
	ErrNoPieceAtPosition = &SelectError{"no piece at position"}
)

// Move errors. Compare with errors.Is().
var (
	// ErrSquareOccupied indicates the destination holds a piece of the mover's colour.
	ErrSquareOccupied = &MoveError{"square occupied by own piece"}

	// ErrInvalidMove indicates the piece cannot reach the destination.
	ErrInvalidMove = &MoveError{"invalid move"}

	// ErrMovesIntoCheck indicates the move leaves the mover's king attacked.
	ErrMovesIntoCheck = &MoveError{"move leaves king in check"}

	// ErrMissingPromotion indicates a pawn reached the last rank without a promotion choice.
	ErrMissingPromotion = &MoveError{"promotion piece required"}

	// ErrIllegalPromotion indicates a promotion choice on a move that cannot promote,
	// or a choice other than knight, bishop, rook or queen.
	ErrIllegalPromotion = &MoveError{"illegal promotion"}

	// ErrIllegalCastle indicates castling preconditions are not met.
	ErrIllegalCastle = &MoveError{"illegal castle"}

	// ErrIllegalEnPassant indicates en passant preconditions are not met.
	ErrIllegalEnPassant = &MoveError{"illegal en passant"}
)

// Sentinel errors for setup and tooling.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidMoveText indicates a move string that is not long algebraic (e2e4, e7e8q).
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameError wraps a SelectError or MoveError with the move that caused it.
// It supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err  error  // The underlying SelectError or MoveError
	From string // Source square in algebraic notation (if known)
	To   string // Destination square in algebraic notation (if known)
	Ply  int    // Ply number at which the move was attempted (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// IsSelectError reports whether err is, or wraps, a SelectError.
func IsSelectError(err error) bool {
	var se *SelectError
	return errors.As(err, &se)
}

// IsMoveError reports whether err is, or wraps, a MoveError.
func IsMoveError(err error) bool {
	var me *MoveError
	return errors.As(err, &me)
}

// Is reports whether any error in err's chain matches target.
// It mirrors the standard library so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
