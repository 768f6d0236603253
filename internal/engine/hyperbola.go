package engine

import (
	"math/bits"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
)

func byteReverse(b chess.Bitboard) chess.Bitboard {
	return chess.Bitboard(bits.ReverseBytes64(uint64(b)))
}

// lineAttacks resolves a slide along a line holding at most one square per
// rank (a file, diagonal or anti-diagonal) with hyperbola quintessence.
// The subtraction borrows up to and including the first blocker above the
// slider; the byte-reversed pass does the same below it. The blocker is
// kept because it may be a capture.
func lineAttacks(occ, mask chess.Bitboard, sq chess.Square) chess.Bitboard {
	bit := sq.Bitboard()
	o := (occ | bit) & mask
	forward := o - 2*bit
	reverse := byteReverse(byteReverse(o) - 2*byteReverse(bit))
	return (forward ^ reverse) & mask
}

// rankAttacks resolves a horizontal slide through the first-rank table: the
// rank is shifted down to bit 0, looked up, and shifted back.
func rankAttacks(occ chess.Bitboard, sq chess.Square) chess.Bitboard {
	shift := uint(sq) &^ 7
	line := uint8(occ >> shift)
	return chess.Bitboard(attacks.firstRank[(line>>1)&63][sq.File()]) << shift
}

func fileAttacks(occ chess.Bitboard, sq chess.Square) chess.Bitboard {
	return lineAttacks(occ, attacks.files[sq.File()], sq)
}

func diagonalAttacks(occ chess.Bitboard, sq chess.Square) chess.Bitboard {
	return lineAttacks(occ, attacks.diagonals[sq.Rank()+sq.File()], sq)
}

func antiDiagonalAttacks(occ chess.Bitboard, sq chess.Square) chess.Bitboard {
	return lineAttacks(occ, attacks.antiDiagonals[sq.Rank()+7-sq.File()], sq)
}

// RookAttacks returns the squares a rook on sq attacks given occupancy occ,
// including the first blocker in each direction.
func RookAttacks(sq chess.Square, occ chess.Bitboard) chess.Bitboard {
	return fileAttacks(occ, sq) | rankAttacks(occ, sq)
}

// BishopAttacks returns the squares a bishop on sq attacks given occupancy occ.
func BishopAttacks(sq chess.Square, occ chess.Bitboard) chess.Bitboard {
	return diagonalAttacks(occ, sq) | antiDiagonalAttacks(occ, sq)
}

// QueenAttacks is the union of rook and bishop attacks.
func QueenAttacks(sq chess.Square, occ chess.Bitboard) chess.Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}
