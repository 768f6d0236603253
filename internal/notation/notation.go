// Package notation converts between coordinate move text ("e2e4",
// "e7e8q") and the engine's squares and moves.
//
// Malformed input always fails with a *errors.ParseError; it never yields
// an in-range but wrong square.
package notation

import (
	"strings"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// ParseSquare converts a square name such as "e4" to a square.
func ParseSquare(text string) (chess.Square, error) {
	if len(text) != 2 {
		return chess.NoSquare, parseError(text, 0, "two-character square", quote(text))
	}
	return parseSquareAt(text, text, 0)
}

// parseSquareAt parses the square starting at byte offset off of input.
func parseSquareAt(input, text string, off int) (chess.Square, error) {
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' {
		return chess.NoSquare, parseError(input, off+1, "file a-h", quote(string(file)))
	}
	if rank < '1' || rank > '8' {
		return chess.NoSquare, parseError(input, off+2, "rank 1-8", quote(string(rank)))
	}
	return chess.NewSquare(int(file-'a'), int(rank-'1')), nil
}

// ParseMove converts coordinate notation to a move. Surrounding space is
// ignored and letters may be either case. A fifth character names the
// promotion piece (q, r, b or n).
func ParseMove(text string) (chess.Move, error) {
	input := strings.TrimSpace(text)
	s := strings.ToLower(input)

	if len(s) != 4 && len(s) != 5 {
		return chess.Move{}, parseError(input, 0, "4 or 5 characters", quote(input))
	}

	from, err := parseSquareAt(input, s[0:2], 0)
	if err != nil {
		return chess.Move{}, err
	}
	to, err := parseSquareAt(input, s[2:4], 2)
	if err != nil {
		return chess.Move{}, err
	}
	if from == to {
		return chess.Move{}, parseError(input, 3, "destination different from origin", to.String())
	}

	m := chess.NewMove(from, to)
	if len(s) == 5 {
		promo := chess.PieceFromLetter(s[4])
		if !promo.IsPromotionTarget() {
			return chess.Move{}, parseError(input, 5, "promotion piece q, r, b or n", quote(string(s[4])))
		}
		m.Promotion = promo
	}
	return m, nil
}

// ParseMoves splits a whitespace separated move list and parses each move.
func ParseMoves(text string) ([]chess.Move, error) {
	fields := strings.Fields(text)
	moves := make([]chess.Move, 0, len(fields))
	for i, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// ParseCastle converts the PGN castling tokens "O-O" and "O-O-O" (or with
// zeros) to the king's move for side. ok is false for any other text.
func ParseCastle(text string, side chess.Colour) (m chess.Move, ok bool) {
	from, rank := chess.E1, 0
	if side == chess.Black {
		from, rank = chess.E8, chess.BoardSize-1
	}
	switch strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(text)), "0", "O") {
	case chess.Kingside.String():
		return chess.NewMove(from, chess.NewSquare(6, rank)), true
	case chess.Queenside.String():
		return chess.NewMove(from, chess.NewSquare(2, rank)), true
	}
	return chess.Move{}, false
}

// ParseMoveFor parses coordinate notation or a castling token for side.
func ParseMoveFor(text string, side chess.Colour) (chess.Move, error) {
	if m, ok := ParseCastle(text, side); ok {
		return m, nil
	}
	return ParseMove(text)
}

// FormatMove returns the coordinate notation of a move.
func FormatMove(m chess.Move) string {
	return m.String()
}

func parseError(input string, column int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Input:    input,
		Column:   column,
		Expected: expected,
		Got:      got,
	}
}

func quote(s string) string {
	return "'" + s + "'"
}
