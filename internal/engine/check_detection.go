package engine

import "github.com/lgbarn/bitboard-chess-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked by any
// opposing piece.
func IsInCheck(p *Position, colour chess.Colour) bool {
	king := p.Bitboard(colour, chess.King)
	if king == 0 {
		return false // No king found
	}
	return AttackSet(p, colour.Opposite())&king != 0
}

// IsSquareAttacked returns true if sq is attacked by colour byColour.
func IsSquareAttacked(p *Position, sq chess.Square, byColour chess.Colour) bool {
	return AttackSet(p, byColour).Has(sq)
}

// Checkers returns the squares of the pieces giving check to colour's king.
func Checkers(p *Position, colour chess.Colour) chess.Bitboard {
	king := p.King(colour)
	if !king.Valid() {
		return 0
	}
	them := colour.Opposite()
	occ := p.Occupied()

	// Each attack pattern is symmetric, so cast it from the king outwards.
	checkers := PawnAttacks(colour, king.Bitboard()) & p.Bitboard(them, chess.Pawn)
	checkers |= KnightAttacks(king) & p.Bitboard(them, chess.Knight)
	checkers |= BishopAttacks(king, occ) & (p.Bitboard(them, chess.Bishop) | p.Bitboard(them, chess.Queen))
	checkers |= RookAttacks(king, occ) & (p.Bitboard(them, chess.Rook) | p.Bitboard(them, chess.Queen))
	checkers |= KingAttacks(king) & p.Bitboard(them, chess.King)
	return checkers
}
