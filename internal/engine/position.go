package engine

import (
	"fmt"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// Position represents the full game state needed by the rules engine.
// It holds no pointers or slices, so plain assignment makes an independent
// copy.
type Position struct {
	// One bitboard per colour and piece type, indexed [Colour][Piece.Index()].
	Pieces [chess.NumColours][chess.NumPieceTypes]chess.Bitboard

	// Who has the next move.
	SideToMove chess.Colour

	// Castling availability; a flag is never set again once cleared.
	Castling chess.CastlingRights

	// Square a pawn skipped over on the previous ply, or NoSquare.
	EnPassant chess.Square

	// Number of moves applied since setup. Informational only.
	Ply int
}

// NewEmptyPosition creates a position with no pieces, White to move.
func NewEmptyPosition() Position {
	return Position{
		SideToMove: chess.White,
		Castling:   chess.NoCastling,
		EnPassant:  chess.NoSquare,
	}
}

// Bitboard returns the bitboard of one colour's pieces of a type.
func (p *Position) Bitboard(c chess.Colour, piece chess.Piece) chess.Bitboard {
	return p.Pieces[c][piece.Index()]
}

// Colour returns the union of every piece of colour c.
func (p *Position) Colour(c chess.Colour) chess.Bitboard {
	var bb chess.Bitboard
	for _, b := range p.Pieces[c] {
		bb |= b
	}
	return bb
}

// Occupied returns the union of all twelve piece bitboards.
func (p *Position) Occupied() chess.Bitboard {
	return p.Colour(chess.White) | p.Colour(chess.Black)
}

// PieceAt returns the colour and type of the piece on sq.
// The final result is false if the square is empty.
func (p *Position) PieceAt(sq chess.Square) (chess.Colour, chess.Piece, bool) {
	for c := chess.White; c <= chess.Black; c++ {
		if piece := p.pieceOf(c, sq); piece != chess.NoPiece {
			return c, piece, true
		}
	}
	return chess.White, chess.NoPiece, false
}

// pieceOf returns which of colour c's bitboards holds sq, or NoPiece.
func (p *Position) pieceOf(c chess.Colour, sq chess.Square) chess.Piece {
	bit := sq.Bitboard()
	for _, piece := range chess.PieceTypes {
		if p.Pieces[c][piece.Index()]&bit != 0 {
			return piece
		}
	}
	return chess.NoPiece
}

// King returns the square of colour c's king, or NoSquare if there is none.
func (p *Position) King(c chess.Colour) chess.Square {
	return p.Bitboard(c, chess.King).LSB()
}

// Copy returns an independent copy of the position.
func (p *Position) Copy() Position {
	return *p
}

// Put places a piece on an empty square.
func (p *Position) Put(c chess.Colour, piece chess.Piece, sq chess.Square) {
	p.Pieces[c][piece.Index()] = p.Pieces[c][piece.Index()].Set(sq)
}

// remove clears sq from one bitboard.
func (p *Position) remove(c chess.Colour, piece chess.Piece, sq chess.Square) {
	p.Pieces[c][piece.Index()] = p.Pieces[c][piece.Index()].Clear(sq)
}

// Validate checks the structural invariants: the twelve bitboards are
// pairwise disjoint and each side has exactly one king.
func (p *Position) Validate() error {
	var seen chess.Bitboard
	for c := chess.White; c <= chess.Black; c++ {
		for _, piece := range chess.PieceTypes {
			bb := p.Pieces[c][piece.Index()]
			if overlap := seen & bb; overlap != 0 {
				return fmt.Errorf("%s %s overlaps another piece on %s: %w",
					c, piece, overlap.LSB(), errors.ErrInvalidLayout)
			}
			seen |= bb
		}
		if n := p.Bitboard(c, chess.King).Count(); n != 1 {
			return fmt.Errorf("%s has %d kings: %w", c, n, errors.ErrInvalidLayout)
		}
	}
	return nil
}

// String returns the position as a FEN string.
func (p *Position) String() string {
	return PositionToFEN(p)
}
