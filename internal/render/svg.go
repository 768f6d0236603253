package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/engine"
)

// SVGOptions controls the SVG diagram.
type SVGOptions struct {
	SquareSize  int            // edge of one square in pixels
	Coordinates bool           // draw file letters and rank digits in a margin
	Highlight   []chess.Square // squares to tint, e.g. the last move
	Title       string
}

// DefaultSVGOptions returns the options used when none are given.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{SquareSize: 45, Coordinates: true}
}

const (
	lightFill     = "fill:#f0d9b5"
	darkFill      = "fill:#b58863"
	highlightFill = "fill:#cdd26a;fill-opacity:0.8"
	labelStyle    = "font-family:sans-serif;fill:#333;text-anchor:middle"
)

var glyphs = [chess.NumColours][chess.NumPieceTypes]string{
	{"♙", "♘", "♗", "♖", "♕", "♔"},
	{"♟", "♞", "♝", "♜", "♛", "♚"},
}

// errWriter remembers the first write error, since the canvas does not
// report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}

// WriteSVG writes an SVG diagram of the position to w.
func WriteSVG(w io.Writer, p *engine.Position, opts SVGOptions) error {
	if opts.SquareSize <= 0 {
		opts.SquareSize = DefaultSVGOptions().SquareSize
	}
	size := opts.SquareSize
	margin := 0
	if opts.Coordinates {
		margin = size / 2
	}
	boardPx := size * chess.BoardSize

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(boardPx+margin, boardPx+margin)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}

	highlighted := chess.BitboardOf(opts.Highlight...)

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.NewSquare(file, rank)
			x := margin + file*size
			y := (chess.BoardSize - 1 - rank) * size

			fill := lightFill
			if (file+rank)%2 == 0 {
				fill = darkFill
			}
			canvas.Rect(x, y, size, size, fill)
			if highlighted.Has(sq) {
				canvas.Rect(x, y, size, size, highlightFill)
			}

			if colour, piece, ok := p.PieceAt(sq); ok {
				canvas.Text(x+size/2, y+size*4/5, glyphs[colour][piece.Index()],
					fmt.Sprintf("font-size:%dpx;text-anchor:middle", size*4/5))
			}
		}
	}

	if opts.Coordinates {
		font := fmt.Sprintf("%s;font-size:%dpx", labelStyle, size/3)
		for i := 0; i < chess.BoardSize; i++ {
			canvas.Text(margin+i*size+size/2, boardPx+margin*3/4, string(rune(chess.ColBase+i)), font)
			canvas.Text(margin/2, (chess.BoardSize-1-i)*size+size*3/5, string(rune(chess.RankBase+i)), font)
		}
	}

	canvas.End()
	return ew.err
}
