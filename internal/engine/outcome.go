package engine

import (
	"fmt"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
)

// Outcome describes what a successfully applied move did. Rejected moves
// produce an error instead, so a capture's value can never be confused with
// a rejection.
type Outcome struct {
	// The piece type that moved (King for castling).
	Piece chess.Piece

	// The piece captured, NoPiece for a quiet move.
	Captured chess.Piece

	// The piece a pawn promoted to, NoPiece otherwise.
	Promoted chess.Piece

	// Which wing was castled on, NoCastle otherwise.
	Castle chess.CastleSide

	// Whether the capture was en passant.
	EnPassant bool
}

// IsCapture returns true if the move captured a piece.
func (o Outcome) IsCapture() bool {
	return o.Captured != chess.NoPiece
}

// Value returns the material code of the move: 0 for a quiet move, else
// 1, 3, 5 or 11 for a captured pawn, minor piece, rook or queen.
func (o Outcome) Value() int {
	return o.Captured.Value()
}

// String summarises the outcome for logs.
func (o Outcome) String() string {
	switch {
	case o.Castle != chess.NoCastle:
		return o.Castle.String()
	case o.IsCapture() && o.Promoted != chess.NoPiece:
		return fmt.Sprintf("%s takes %s, promotes to %s", o.Piece, o.Captured, o.Promoted)
	case o.IsCapture():
		return fmt.Sprintf("%s takes %s (%d)", o.Piece, o.Captured, o.Value())
	case o.Promoted != chess.NoPiece:
		return fmt.Sprintf("%s promotes to %s", o.Piece, o.Promoted)
	default:
		return fmt.Sprintf("%s moves", o.Piece)
	}
}
