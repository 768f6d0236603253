package engine

import (
	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// ApplyMove applies a pseudo-legal move for the side to move and updates
// the position. It does not check whether the mover's king is left in check;
// use MakeMove for that. On error the position is left untouched and the
// error is a *errors.MoveError wrapping one of ErrInvalidOrigin,
// ErrIllegalDestination, ErrCastlingRejected or ErrInvalidPromotion.
func ApplyMove(p *Position, m chess.Move) (Outcome, error) {
	next := *p
	out, err := applyMove(&next, m)
	if err != nil {
		return Outcome{}, err
	}
	*p = next
	return out, nil
}

// MakeMove applies a fully legal move: like ApplyMove, but additionally
// rejects with ErrSelfCheck a move that leaves the mover's own king attacked.
func MakeMove(p *Position, m chess.Move) (Outcome, error) {
	colour := p.SideToMove
	next := *p
	out, err := applyMove(&next, m)
	if err != nil {
		return Outcome{}, err
	}
	if IsInCheck(&next, colour) {
		return Outcome{}, reject(p, m, errors.ErrSelfCheck, "")
	}
	*p = next
	return out, nil
}

// applyMove mutates p in place; callers pass a scratch copy.
func applyMove(p *Position, m chess.Move) (Outcome, error) {
	colour := p.SideToMove

	if !m.From.Valid() {
		return Outcome{}, reject(p, m, errors.ErrInvalidOrigin, "origin off the board")
	}
	piece := p.pieceOf(colour, m.From)
	if piece == chess.NoPiece {
		return Outcome{}, reject(p, m, errors.ErrInvalidOrigin, "")
	}
	if !m.To.Valid() {
		return Outcome{}, reject(p, m, errors.ErrIllegalDestination, "destination off the board")
	}

	switch piece {
	case chess.King:
		if side := castlePattern(colour, m); side != chess.NoCastle {
			return applyCastle(p, m, side)
		}
		return applyPieceMove(p, m, piece)
	case chess.Pawn:
		return applyPawnMove(p, m)
	default:
		return applyPieceMove(p, m, piece)
	}
}

// applyPieceMove applies a knight, bishop, rook, queen or non-castling king move.
func applyPieceMove(p *Position, m chess.Move, piece chess.Piece) (Outcome, error) {
	colour := p.SideToMove

	if !Destinations(p, colour, piece, m.From).Has(m.To) {
		return Outcome{}, reject(p, m, errors.ErrIllegalDestination, "")
	}
	if m.Promotion != chess.NoPiece {
		return Outcome{}, reject(p, m, errors.ErrInvalidPromotion, "only pawns promote")
	}

	out := Outcome{Piece: piece}
	out.Captured = capture(p, colour.Opposite(), m.To)

	p.remove(colour, piece, m.From)
	p.Put(colour, piece, m.To)

	updateCastlingRights(p, m.From, m.To)
	p.EnPassant = chess.NoSquare
	finishMove(p)

	return out, nil
}

// capture removes whatever piece of colour them stands on sq.
func capture(p *Position, them chess.Colour, sq chess.Square) chess.Piece {
	captured := p.pieceOf(them, sq)
	if captured != chess.NoPiece {
		p.remove(them, captured, sq)
	}
	return captured
}

// finishMove hands the move to the other side.
func finishMove(p *Position) {
	p.SideToMove = p.SideToMove.Opposite()
	p.Ply++
}

// reject builds the error returned for a refused move.
func reject(p *Position, m chess.Move, err error, detail string) error {
	return &errors.MoveError{
		Err:      err,
		PlyNum:   p.Ply + 1,
		MoveText: m.String(),
		Detail:   detail,
	}
}
