package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// LegalMove is a move that does not leave the mover's king attacked,
// together with the piece that makes it and the piece it captures.
type LegalMove struct {
	chess.Move
	Piece    chess.Piece
	Captured chess.Piece
}

// IsCapture returns true if the move captures a piece.
func (lm LegalMove) IsCapture() bool {
	return lm.Captured != chess.NoPiece
}

// MoveList is an ordered collection of legal moves, captures first.
type MoveList []LegalMove

// Contains returns true if the list holds a move from one square to another.
func (ml MoveList) Contains(from, to chess.Square) bool {
	return slices.ContainsFunc(ml, func(lm LegalMove) bool {
		return lm.From == from && lm.To == to
	})
}

// Find returns the listed move matching m's squares.
func (ml MoveList) Find(m chess.Move) (LegalMove, bool) {
	i := slices.IndexFunc(ml, func(lm LegalMove) bool {
		return lm.From == m.From && lm.To == m.To
	})
	if i < 0 {
		return LegalMove{}, false
	}
	return ml[i], true
}

// Captures returns the number of capturing moves at the front of the list.
func (ml MoveList) Captures() int {
	n := 0
	for _, lm := range ml {
		if lm.IsCapture() {
			n++
		}
	}
	return n
}

// candidate is a pseudo-legal move waiting for its king-safety test.
type candidate struct {
	move  chess.Move
	piece chess.Piece
}

// candidates lists every pseudo-legal move of colour, lowest origin first.
// Pawns reaching the last rank promote to a queen. Castling candidates are
// included whenever the king stands on its home square; the applier decides
// whether they are allowed.
func candidates(p *Position, colour chess.Colour) []candidate {
	var out []candidate
	for _, piece := range chess.PieceTypes {
		for origins := p.Bitboard(colour, piece); origins != 0; {
			from := origins.PopLSB()
			for dests := Destinations(p, colour, piece, from); dests != 0; {
				to := dests.PopLSB()
				m := chess.NewMove(from, to)
				if piece == chess.Pawn && to.Rank() == chess.PromotionRank(colour) {
					m.Promotion = chess.Queen
				}
				out = append(out, candidate{move: m, piece: piece})
			}
			if piece == chess.King {
				for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
					rule := castleRuleFor(colour, side)
					if from == rule.kingFrom && p.Castling.Has(rule.right) {
						out = append(out, candidate{move: chess.NewMove(from, rule.kingTo), piece: chess.King})
					}
				}
			}
		}
	}
	return out
}

// tryCandidate applies c on a scratch copy of p with colour to move. It
// fails with the applier's rejection, or ErrSelfCheck if colour's king is
// attacked afterwards.
func tryCandidate(p *Position, colour chess.Colour, c candidate) (LegalMove, error) {
	scratch := *p
	scratch.SideToMove = colour
	if colour != p.SideToMove {
		// The en-passant square belongs to the other side.
		scratch.EnPassant = chess.NoSquare
	}
	out, err := applyMove(&scratch, c.move)
	if err != nil {
		return LegalMove{}, err
	}
	if IsInCheck(&scratch, colour) {
		return LegalMove{}, reject(p, c.move, errors.ErrSelfCheck, "")
	}
	return LegalMove{Move: c.move, Piece: c.piece, Captured: out.Captured}, nil
}

// LegalMoves returns every legal move of colour in p. Each candidate is
// tested on its own copy of the position, so p is never modified. Captures
// are inserted at the front of the list, quiet moves appended at the back.
func LegalMoves(p *Position, colour chess.Colour) MoveList {
	var captures, quiet MoveList
	for _, c := range candidates(p, colour) {
		lm, err := tryCandidate(p, colour, c)
		if err != nil {
			continue
		}
		if lm.IsCapture() {
			captures = append(captures, lm)
		} else {
			quiet = append(quiet, lm)
		}
	}
	return orderMoves(captures, quiet)
}

// orderMoves places captures in front-insertion order ahead of quiet moves.
func orderMoves(captures, quiet MoveList) MoveList {
	out := make(MoveList, 0, len(captures)+len(quiet))
	for i := len(captures) - 1; i >= 0; i-- {
		out = append(out, captures[i])
	}
	return append(out, quiet...)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(p *Position, colour chess.Colour) bool {
	for _, c := range candidates(p, colour) {
		if _, err := tryCandidate(p, colour, c); err == nil {
			return true
		}
	}
	return false
}
