package engine

import "github.com/lgbarn/bitboard-chess-go/internal/chess"

// KnightAttacks returns the knight jumps from sq.
func KnightAttacks(sq chess.Square) chess.Bitboard {
	return attacks.knight[sq]
}

// KingAttacks returns the squares adjacent to sq.
func KingAttacks(sq chess.Square) chess.Bitboard {
	return attacks.king[sq]
}

// PawnAttacks returns the squares diagonally ahead of every pawn in pawns.
// Edge files are masked off before shifting so nothing wraps.
func PawnAttacks(c chess.Colour, pawns chess.Bitboard) chess.Bitboard {
	if c == chess.White {
		return (pawns&chess.NotAFile)<<7 | (pawns&chess.NotHFile)<<9
	}
	return (pawns&chess.NotHFile)>>7 | (pawns&chess.NotAFile)>>9
}

// PawnPushes returns the single and double pushes of a pawn on sq. The
// double push needs the pawn on its start rank and both squares empty.
func PawnPushes(c chess.Colour, sq chess.Square, occ chess.Bitboard) chess.Bitboard {
	empty := ^occ
	bit := sq.Bitboard()
	if c == chess.White {
		single := (bit << 8) & empty
		return single | ((single&chess.Rank3)<<8)&empty
	}
	single := (bit >> 8) & empty
	return single | ((single&chess.Rank6)>>8)&empty
}

// pawnDestinations returns pushes plus captures onto enemy pieces or the
// en-passant square. The en-passant square only belongs to the side to move.
func pawnDestinations(p *Position, c chess.Colour, sq chess.Square) chess.Bitboard {
	targets := p.Colour(c.Opposite())
	if c == p.SideToMove && enPassantOpen(p) {
		targets |= p.EnPassant.Bitboard()
	}
	return PawnPushes(c, sq, p.Occupied()) | PawnAttacks(c, sq.Bitboard())&targets
}

// enPassantOpen reports whether the en-passant square is empty with the
// opponent's pawn behind it.
func enPassantOpen(p *Position) bool {
	if !p.EnPassant.Valid() || p.Occupied().Has(p.EnPassant) {
		return false
	}
	victim := chess.Square(int(p.EnPassant) - chess.PawnDirection(p.SideToMove))
	return p.Bitboard(p.SideToMove.Opposite(), chess.Pawn).Has(victim)
}

// Destinations returns the pseudo-legal destination set of a piece of
// colour c and type piece standing on sq. Squares holding c's own pieces
// are excluded; king safety is not considered and castling is handled by
// the move applier.
func Destinations(p *Position, c chess.Colour, piece chess.Piece, sq chess.Square) chess.Bitboard {
	occ := p.Occupied()
	var dest chess.Bitboard
	switch piece {
	case chess.Pawn:
		dest = pawnDestinations(p, c, sq)
	case chess.Knight:
		dest = KnightAttacks(sq)
	case chess.Bishop:
		dest = BishopAttacks(sq, occ)
	case chess.Rook:
		dest = RookAttacks(sq, occ)
	case chess.Queen:
		dest = QueenAttacks(sq, occ)
	case chess.King:
		dest = KingAttacks(sq)
	}
	return dest &^ p.Colour(c)
}

// AttackSet returns every square attacked by any piece of colour c. Pawns
// contribute only their diagonal captures; sliders stop at the first
// blocker of either colour.
func AttackSet(p *Position, c chess.Colour) chess.Bitboard {
	occ := p.Occupied()
	set := PawnAttacks(c, p.Bitboard(c, chess.Pawn))

	for bb := p.Bitboard(c, chess.Knight); bb != 0; {
		set |= KnightAttacks(bb.PopLSB())
	}
	for bb := p.Bitboard(c, chess.Bishop) | p.Bitboard(c, chess.Queen); bb != 0; {
		set |= BishopAttacks(bb.PopLSB(), occ)
	}
	for bb := p.Bitboard(c, chess.Rook) | p.Bitboard(c, chess.Queen); bb != 0; {
		set |= RookAttacks(bb.PopLSB(), occ)
	}
	for bb := p.Bitboard(c, chess.King); bb != 0; {
		set |= KingAttacks(bb.PopLSB())
	}
	return set
}
