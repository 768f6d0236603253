// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// NumColours is the number of colours, used to size per-colour arrays.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type.
type Piece int

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// NumPieceTypes is the number of real piece types (pawn through king).
const NumPieceTypes = 6

// PieceTypes lists the real piece types in bitboard index order.
var PieceTypes = [NumPieceTypes]Piece{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Index returns the 0-based bitboard index of a real piece type.
func (p Piece) Index() int {
	return int(p - Pawn)
}

// Value returns the material code of a captured piece: 1 for a pawn,
// 3 for a minor piece, 5 for a rook and 11 for a queen.
func (p Piece) Value() int {
	switch p {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 11
	default:
		return 0
	}
}

// IsPromotionTarget reports whether a pawn may promote to p.
func (p Piece) IsPromotionTarget() bool {
	switch p {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// PieceFromLetter converts a FEN/SAN letter of either case to a piece type.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPiece
	}
}

// Symbol returns the FEN letter for a coloured piece: uppercase for White.
func Symbol(c Colour, p Piece) byte {
	letter := p.Letter()
	if c == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// CastlingRights holds the four independent castling availability flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has returns true if every flag in r is set.
func (cr CastlingRights) Has(r CastlingRights) bool {
	return cr&r == r
}

// String returns the rights in FEN form, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := make([]byte, 0, 4)
	if cr.Has(WhiteKingside) {
		s = append(s, 'K')
	}
	if cr.Has(WhiteQueenside) {
		s = append(s, 'Q')
	}
	if cr.Has(BlackKingside) {
		s = append(s, 'k')
	}
	if cr.Has(BlackQueenside) {
		s = append(s, 'q')
	}
	return string(s)
}

// KingsideRight returns the kingside flag of a colour.
func KingsideRight(c Colour) CastlingRights {
	if c == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside flag of a colour.
func QueensideRight(c Colour) CastlingRights {
	if c == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// CastleSide identifies which wing a castling move was made on.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns the PGN castling token for a side.
func (s CastleSide) String() string {
	switch s {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	default:
		return ""
	}
}
