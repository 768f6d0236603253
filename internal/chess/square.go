package chess

// Square is a board square index in [0,63], rank-major: a1 = 0, h1 = 7,
// a8 = 56, h8 = 63.
type Square int8

// NoSquare marks the absence of a square (e.g. no en-passant target).
const NoSquare Square = 64

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	ColBase  = 'a'
)

// Named squares used by castling and tests.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from 0-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

// File returns the 0-based file (0 = a).
func (s Square) File() int {
	return int(s) & 7
}

// Rank returns the 0-based rank (0 = first rank).
func (s Square) Rank() int {
	return int(s) >> 3
}

// Valid returns true if s is on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Bitboard returns the single-bit bitboard of s, or 0 for an invalid square.
func (s Square) Bitboard() Bitboard {
	if !s.Valid() {
		return 0
	}
	return Bitboard(1) << uint(s)
}

// String returns the algebraic name of the square, e.g. "e4", or "-".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(ColBase + s.File()), byte(RankBase + s.Rank())})
}

// PawnDirection returns +8 for White and -8 for Black.
func PawnDirection(c Colour) int {
	if c == White {
		return BoardSize
	}
	return -BoardSize
}

// PromotionRank returns the 0-based rank on which a pawn of colour c promotes.
func PromotionRank(c Colour) int {
	if c == White {
		return 7
	}
	return 0
}

// HomeRank returns the 0-based back rank of a colour.
func HomeRank(c Colour) int {
	if c == White {
		return 0
	}
	return 7
}
