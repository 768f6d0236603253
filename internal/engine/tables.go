// Package engine provides chess move validation and board manipulation on
// bitboards: attack generation, move application, legal move enumeration
// and check detection.
package engine

import "github.com/lgbarn/bitboard-chess-go/internal/chess"

// attackTables holds every precomputed lookup used by the attack generator.
type attackTables struct {
	king   [chess.NumSquares]chess.Bitboard
	knight [chess.NumSquares]chess.Bitboard

	// firstRank[occ][file] is the byte of files attacked along one line by a
	// slider on file, where occ is the occupancy of files b..g (bits 1..6
	// shifted down by one). Edge files never block anything beyond them.
	firstRank [64][chess.BoardSize]uint8

	files         [chess.BoardSize]chess.Bitboard
	ranks         [chess.BoardSize]chess.Bitboard
	diagonals     [2*chess.BoardSize - 1]chess.Bitboard // index rank+file
	antiDiagonals [2*chess.BoardSize - 1]chess.Bitboard // index rank+7-file
}

// attacks is built once at program start and read-only afterwards, so it is
// safe to share between goroutines without locking.
var attacks = buildAttackTables()

func buildAttackTables() *attackTables {
	t := &attackTables{}

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		bb := sq.Bitboard()
		t.king[sq] = kingSpread(bb)
		t.knight[sq] = knightSpread(bb)

		file, rank := sq.File(), sq.Rank()
		t.files[file] |= bb
		t.ranks[rank] |= bb
		t.diagonals[rank+file] |= bb
		t.antiDiagonals[rank+7-file] |= bb
	}

	for occ := 0; occ < 64; occ++ {
		line := uint8(occ << 1)
		for file := 0; file < chess.BoardSize; file++ {
			var attacked uint8
			for f := file - 1; f >= 0; f-- {
				attacked |= 1 << uint(f)
				if line&(1<<uint(f)) != 0 {
					break
				}
			}
			for f := file + 1; f < chess.BoardSize; f++ {
				attacked |= 1 << uint(f)
				if line&(1<<uint(f)) != 0 {
					break
				}
			}
			t.firstRank[occ][file] = attacked
		}
	}

	return t
}

// kingSpread returns every square adjacent to a square in bb. Each sideways
// shift is masked against the file it would wrap from.
func kingSpread(bb chess.Bitboard) chess.Bitboard {
	east := (bb & chess.NotHFile) << 1
	west := (bb & chess.NotAFile) >> 1
	row := bb | east | west
	return (east | west | row<<8 | row>>8)
}

// knightSpread returns every knight jump from a square in bb using the
// +-17, +-15, +-10, +-6 offsets.
func knightSpread(bb chess.Bitboard) chess.Bitboard {
	return (bb&chess.NotHFile)<<17 |
		(bb&chess.NotAFile)<<15 |
		(bb&chess.NotGHFile)<<10 |
		(bb&chess.NotABFile)<<6 |
		(bb&chess.NotAFile)>>17 |
		(bb&chess.NotHFile)>>15 |
		(bb&chess.NotABFile)>>10 |
		(bb&chess.NotGHFile)>>6
}
