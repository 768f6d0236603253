package chess

// Move is an (origin, destination, promotion) triple. Promotion is NoPiece
// unless a pawn is moving onto its last rank.
type Move struct {
	From      Square
	To        Square
	Promotion Piece
}

// NewMove creates a move without a promotion piece.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to, Promotion: NoPiece}
}

// IsPromotion returns true if a promotion piece was requested.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPiece
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(Symbol(Black, m.Promotion))
	}
	return s
}

// CheckStatus indicates whether a position is check, checkmate or stalemate
// for the side to move.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns a human readable status.
func (s CheckStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// IsTerminal returns true if no further moves can be played.
func (s CheckStatus) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}
