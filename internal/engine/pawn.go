package engine

import (
	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// applyPawnMove applies a pawn push, capture, en-passant capture or promotion.
func applyPawnMove(p *Position, m chess.Move) (Outcome, error) {
	colour := p.SideToMove
	them := colour.Opposite()

	if !Destinations(p, colour, chess.Pawn, m.From).Has(m.To) {
		return Outcome{}, reject(p, m, errors.ErrIllegalDestination, "")
	}

	// Resolve the promotion piece before touching the board.
	promoted := chess.NoPiece
	if m.To.Rank() == chess.PromotionRank(colour) {
		promoted = m.Promotion
		if promoted == chess.NoPiece {
			promoted = chess.Queen // Default to queen
		}
		if !promoted.IsPromotionTarget() {
			return Outcome{}, reject(p, m, errors.ErrInvalidPromotion, "cannot promote to "+promoted.String())
		}
	} else if m.Promotion != chess.NoPiece {
		return Outcome{}, reject(p, m, errors.ErrInvalidPromotion, "pawn is not reaching the last rank")
	}

	out := Outcome{Piece: chess.Pawn, Promoted: promoted}

	if m.To == p.EnPassant && m.From.File() != m.To.File() && enPassantOpen(p) {
		// The captured pawn sits behind the target square.
		victim := chess.Square(int(m.To) - chess.PawnDirection(colour))
		p.remove(them, chess.Pawn, victim)
		out.Captured = chess.Pawn
		out.EnPassant = true
	} else {
		out.Captured = capture(p, them, m.To)
	}

	p.remove(colour, chess.Pawn, m.From)
	if promoted != chess.NoPiece {
		p.Put(colour, promoted, m.To)
	} else {
		p.Put(colour, chess.Pawn, m.To)
	}

	// A promotion may capture a rook on its corner.
	updateCastlingRights(p, m.From, m.To)

	// Set en passant square if double pawn push
	p.EnPassant = chess.NoSquare
	if diff := int(m.To) - int(m.From); diff == 2*chess.BoardSize || diff == -2*chess.BoardSize {
		p.EnPassant = chess.Square((int(m.From) + int(m.To)) / 2)
	}

	finishMove(p)
	return out, nil
}
