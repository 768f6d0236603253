package engine

import (
	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// castleRule describes the squares involved in one castling move.
type castleRule struct {
	right    chess.CastlingRights
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
	empty    chess.Bitboard // squares between king and rook
	safe     chess.Bitboard // king start, transit and destination
}

// castleRuleFor returns the castling geometry for a colour and wing.
func castleRuleFor(colour chess.Colour, side chess.CastleSide) castleRule {
	var r castleRule
	if side == chess.Kingside {
		r = castleRule{
			right:    chess.WhiteKingside,
			kingFrom: chess.E1,
			kingTo:   chess.G1,
			rookFrom: chess.H1,
			rookTo:   chess.F1,
			empty:    chess.BitboardOf(chess.F1, chess.G1),
			safe:     chess.BitboardOf(chess.E1, chess.F1, chess.G1),
		}
	} else {
		r = castleRule{
			right:    chess.WhiteQueenside,
			kingFrom: chess.E1,
			kingTo:   chess.C1,
			rookFrom: chess.A1,
			rookTo:   chess.D1,
			empty:    chess.BitboardOf(chess.B1, chess.C1, chess.D1),
			safe:     chess.BitboardOf(chess.E1, chess.D1, chess.C1),
		}
	}

	if colour == chess.Black {
		const up = 7 * chess.BoardSize
		r.right <<= 2
		r.kingFrom += up
		r.kingTo += up
		r.rookFrom += up
		r.rookTo += up
		r.empty <<= up
		r.safe <<= up
	}
	return r
}

// castlePattern recognises a king moving two files from its home square.
func castlePattern(colour chess.Colour, m chess.Move) chess.CastleSide {
	home := chess.NewSquare(4, chess.HomeRank(colour))
	if m.From != home {
		return chess.NoCastle
	}
	switch m.To {
	case home + 2:
		return chess.Kingside
	case home - 2:
		return chess.Queenside
	default:
		return chess.NoCastle
	}
}

// applyCastle applies a castling move after checking every precondition.
// A failed precondition is reported as ErrCastlingRejected, never as a
// plain king move.
func applyCastle(p *Position, m chess.Move, side chess.CastleSide) (Outcome, error) {
	colour := p.SideToMove
	rule := castleRuleFor(colour, side)

	if m.Promotion != chess.NoPiece {
		return Outcome{}, reject(p, m, errors.ErrInvalidPromotion, "only pawns promote")
	}
	if !p.Castling.Has(rule.right) {
		return Outcome{}, reject(p, m, errors.ErrCastlingRejected, "castling right lost")
	}
	if !p.Bitboard(colour, chess.Rook).Has(rule.rookFrom) {
		return Outcome{}, reject(p, m, errors.ErrCastlingRejected, "no rook on "+rule.rookFrom.String())
	}
	if p.Occupied()&rule.empty != 0 {
		return Outcome{}, reject(p, m, errors.ErrCastlingRejected, "squares between king and rook are occupied")
	}
	if attacked := AttackSet(p, colour.Opposite()) & rule.safe; attacked != 0 {
		return Outcome{}, reject(p, m, errors.ErrCastlingRejected, attacked.LSB().String()+" is attacked")
	}

	// Move king and rook together
	p.remove(colour, chess.King, rule.kingFrom)
	p.Put(colour, chess.King, rule.kingTo)
	p.remove(colour, chess.Rook, rule.rookFrom)
	p.Put(colour, chess.Rook, rule.rookTo)

	p.Castling &^= chess.KingsideRight(colour) | chess.QueensideRight(colour)
	p.EnPassant = chess.NoSquare
	finishMove(p)

	return Outcome{Piece: chess.King, Castle: side}, nil
}

// castlingLoss maps a home square to the rights lost once anything moves
// from or onto it.
var castlingLoss = func() [chess.NumSquares]chess.CastlingRights {
	var loss [chess.NumSquares]chess.CastlingRights
	loss[chess.A1] = chess.WhiteQueenside
	loss[chess.H1] = chess.WhiteKingside
	loss[chess.E1] = chess.WhiteKingside | chess.WhiteQueenside
	loss[chess.A8] = chess.BlackQueenside
	loss[chess.H8] = chess.BlackKingside
	loss[chess.E8] = chess.BlackKingside | chess.BlackQueenside
	return loss
}()

// updateCastlingRights removes castling rights when a king or rook leaves
// its home square or a rook is captured on it.
func updateCastlingRights(p *Position, from, to chess.Square) {
	p.Castling &^= castlingLoss[from] | castlingLoss[to]
}
