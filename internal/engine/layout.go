package engine

import (
	"fmt"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// Layout is an 8x8 grid of piece symbols as a board is printed: row 0 is
// the eighth rank, column 0 the a-file. Upper-case letters are White,
// lower-case Black, and ' ' or '.' is an empty square.
type Layout [chess.BoardSize][chess.BoardSize]byte

// StandardLayout is the initial arrangement of the pieces.
var StandardLayout = Layout{
	{'r', 'n', 'b', 'q', 'k', 'b', 'n', 'r'},
	{'p', 'p', 'p', 'p', 'p', 'p', 'p', 'p'},
	{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '},
	{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '},
	{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '},
	{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '},
	{'P', 'P', 'P', 'P', 'P', 'P', 'P', 'P'},
	{'R', 'N', 'B', 'Q', 'K', 'B', 'N', 'R'},
}

// InitialPosition returns the standard starting position.
func InitialPosition() Position {
	p, err := PositionFromLayout(StandardLayout)
	if err != nil {
		panic(err) // StandardLayout is a constant
	}
	return p
}

// PositionFromLayout builds a position from a grid of piece symbols with
// White to move. A castling right is granted for every king and rook
// still standing on their home squares.
func PositionFromLayout(layout Layout) (Position, error) {
	p := NewEmptyPosition()

	for row := 0; row < chess.BoardSize; row++ {
		rank := chess.BoardSize - 1 - row
		for file := 0; file < chess.BoardSize; file++ {
			symbol := layout[row][file]
			if symbol == ' ' || symbol == '.' || symbol == 0 {
				continue
			}
			piece := chess.PieceFromLetter(symbol)
			if piece == chess.NoPiece {
				return Position{}, fmt.Errorf("unknown symbol %q at %s: %w",
					symbol, chess.NewSquare(file, rank), errors.ErrInvalidLayout)
			}
			if piece == chess.Pawn && (rank == 0 || rank == chess.BoardSize-1) {
				return Position{}, fmt.Errorf("pawn on back rank at %s: %w",
					chess.NewSquare(file, rank), errors.ErrInvalidLayout)
			}
			colour := chess.White
			if symbol >= 'a' && symbol <= 'z' {
				colour = chess.Black
			}
			p.Put(colour, piece, chess.NewSquare(file, rank))
		}
	}

	if err := p.Validate(); err != nil {
		return Position{}, err
	}
	p.Castling = inferCastlingRights(&p)
	return p, nil
}

// inferCastlingRights grants each right whose king and rook are at home.
func inferCastlingRights(p *Position) chess.CastlingRights {
	rights := chess.NoCastling
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
			rule := castleRuleFor(colour, side)
			if p.Bitboard(colour, chess.King).Has(rule.kingFrom) &&
				p.Bitboard(colour, chess.Rook).Has(rule.rookFrom) {
				rights |= rule.right
			}
		}
	}
	return rights
}
