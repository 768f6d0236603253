package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN creates a position from a FEN string. Missing trailing
// fields take their usual defaults. The halfmove clock is accepted but not
// tracked.
func NewPositionFromFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return Position{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	p := NewEmptyPosition()

	if err := parsePiecePositions(&p, parts[0]); err != nil {
		return Position{}, err
	}
	if err := parseSideToMove(&p, parts); err != nil {
		return Position{}, err
	}
	if err := parseCastlingRights(&p, parts); err != nil {
		return Position{}, err
	}
	if err := parseEnPassant(&p, parts); err != nil {
		return Position{}, err
	}
	if err := parseMoveNumber(&p, parts); err != nil {
		return Position{}, err
	}
	if err := p.Validate(); err != nil {
		return Position{}, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	return p, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(p *Position, positions string) error {
	rank := chess.BoardSize - 1
	file := 0

	for _, c := range positions {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			piece := chess.PieceFromLetter(byte(c))
			if piece == chess.NoPiece {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize || rank < 0 {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			p.Put(colour, piece, chess.NewSquare(file, rank))
			file++
		}
		if file > chess.BoardSize {
			return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
		}
	}
	if rank != 0 || file != chess.BoardSize {
		return fmt.Errorf("piece placement does not cover eight ranks: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(p *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		p.SideToMove = chess.White
	case "b":
		p.SideToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(p *Position, parts []string) error {
	p.Castling = chess.NoCastling
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			p.Castling |= chess.WhiteKingside
		case 'Q':
			p.Castling |= chess.WhiteQueenside
		case 'k':
			p.Castling |= chess.BlackKingside
		case 'q':
			p.Castling |= chess.BlackQueenside
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(p *Position, parts []string) error {
	p.EnPassant = chess.NoSquare
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	ep := parts[3]
	// The target lies behind a pawn that has just made a double push.
	wantRank := byte('6')
	if p.SideToMove == chess.Black {
		wantRank = '3'
	}
	if len(ep) != 2 || ep[0] < 'a' || ep[0] > 'h' || ep[1] != wantRank {
		return fmt.Errorf("invalid en passant square: %s: %w", ep, errors.ErrInvalidFEN)
	}
	target := chess.NewSquare(int(ep[0]-'a'), int(ep[1]-'1'))
	if p.Occupied().Has(target) {
		return fmt.Errorf("en passant square %s is occupied: %w", ep, errors.ErrInvalidFEN)
	}
	them := p.SideToMove.Opposite()
	pushed := chess.Square(int(target) - chess.PawnDirection(p.SideToMove))
	if !p.Bitboard(them, chess.Pawn).Has(pushed) {
		return fmt.Errorf("no %s pawn behind en passant square %s: %w", them, ep, errors.ErrInvalidFEN)
	}
	p.EnPassant = target
	return nil
}

// maxMoveNumber bounds the fullmove field so the ply count cannot overflow.
const maxMoveNumber = 1 << 20

// parseMoveNumber turns the fullmove number into a ply count.
func parseMoveNumber(p *Position, parts []string) error {
	if len(parts) >= 5 {
		if _, err := strconv.Atoi(parts[4]); err != nil {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
	}
	moveNumber := 1
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 || n > maxMoveNumber {
			return fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		moveNumber = n
	}
	p.Ply = 2 * (moveNumber - 1)
	if p.SideToMove == chess.Black {
		p.Ply++
	}
	return nil
}

// PositionToFEN converts a position to a FEN string. The halfmove clock is
// always written as 0.
func PositionToFEN(p *Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, p)
	sb.WriteByte(' ')
	if p.SideToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	fmt.Fprintf(&sb, " 0 %d", p.Ply/2+1)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, p *Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			colour, piece, ok := p.PieceAt(chess.NewSquare(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(chess.Symbol(colour, piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
