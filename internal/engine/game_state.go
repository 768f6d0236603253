package engine

import "github.com/lgbarn/bitboard-chess-go/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(p *Position) bool {
	colour := p.SideToMove
	return IsInCheck(p, colour) && !HasLegalMoves(p, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(p *Position) bool {
	colour := p.SideToMove
	return !IsInCheck(p, colour) && !HasLegalMoves(p, colour)
}

// Status derives the check state of the side to move. Nothing about it is
// stored in the position; callers recompute it after each move.
func Status(p *Position) chess.CheckStatus {
	colour := p.SideToMove
	inCheck := IsInCheck(p, colour)
	hasMoves := HasLegalMoves(p, colour)
	switch {
	case inCheck && !hasMoves:
		return chess.Checkmate
	case inCheck:
		return chess.Check
	case !hasMoves:
		return chess.Stalemate
	default:
		return chess.NoCheck
	}
}
