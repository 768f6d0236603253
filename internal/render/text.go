// Package render draws positions as text boards and SVG diagrams.
package render

import (
	"strings"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/engine"
)

// Text draws the board with rank 8 at the top, one FEN letter per piece
// and '.' for an empty square, followed by the file letters.
func Text(p *engine.Position) string {
	return text(p, true)
}

// TextPlain draws the board without rank and file labels.
func TextPlain(p *engine.Position) string {
	return text(p, false)
}

func text(p *engine.Position, coords bool) string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		if coords {
			sb.WriteByte(byte(chess.RankBase + rank))
			sb.WriteByte(' ')
		}
		for file := 0; file < chess.BoardSize; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(squareSymbol(p, chess.NewSquare(file, rank)))
		}
		sb.WriteByte('\n')
	}
	if coords {
		sb.WriteString("  a b c d e f g h\n")
	}
	return sb.String()
}

func squareSymbol(p *engine.Position, sq chess.Square) byte {
	colour, piece, ok := p.PieceAt(sq)
	if !ok {
		return '.'
	}
	return chess.Symbol(colour, piece)
}
