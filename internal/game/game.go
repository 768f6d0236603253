// Package game runs a sequence of moves against a position: it parses move
// text, applies each move with full legality checking, and keeps a record
// of every ply played.
package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/engine"
	"github.com/lgbarn/bitboard-chess-go/internal/errors"
	"github.com/lgbarn/bitboard-chess-go/internal/notation"
)

// Record describes one ply that was played.
type Record struct {
	Ply     int
	Move    chess.Move
	Outcome engine.Outcome
	Status  chess.CheckStatus // status of the side to move afterwards
	Elapsed time.Duration     // time spent validating and applying
}

// Game is a single session of moves from a starting position.
type Game struct {
	ID       string
	StartFEN string
	Workers  int

	// Tags holds extra PGN tag pairs, e.g. the opening classification
	Tags map[string]string

	pos     engine.Position
	records []Record
	status  chess.CheckStatus
}

// New creates a game from the standard starting position.
func New() *Game {
	g, err := NewFromFEN(engine.InitialFEN)
	if err != nil {
		panic(err) // InitialFEN is a constant
	}
	return g
}

// NewFromFEN creates a game from a FEN string.
func NewFromFEN(fen string) (*Game, error) {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{
		ID:       uuid.NewString(),
		StartFEN: fen,
		Tags:     make(map[string]string),
		pos:      pos,
		status:   engine.Status(&pos),
	}, nil
}

// SetTag sets a tag pair; an empty value removes it.
func (g *Game) SetTag(name, value string) {
	if value == "" {
		delete(g.Tags, name)
		return
	}
	g.Tags[name] = value
}

// Position returns a copy of the current position.
func (g *Game) Position() engine.Position {
	return g.pos
}

// Status returns the check status of the side to move.
func (g *Game) Status() chess.CheckStatus {
	return g.status
}

// IsOver returns true once the game has ended in checkmate or stalemate.
func (g *Game) IsOver() bool {
	return g.status.IsTerminal()
}

// Records returns a copy of the moves played so far.
func (g *Game) Records() []Record {
	return slices.Clone(g.records)
}

// Moves returns the moves played so far.
func (g *Game) Moves() []chess.Move {
	moves := make([]chess.Move, len(g.records))
	for i, r := range g.records {
		moves[i] = r.Move
	}
	return moves
}

// LegalMoves lists the legal moves of the side to move.
func (g *Game) LegalMoves() engine.MoveList {
	return engine.LegalMovesParallel(&g.pos, g.pos.SideToMove, g.Workers)
}

// Play parses a move in coordinate notation, or a castling token such as
// "O-O", and makes it.
func (g *Game) Play(text string) (Record, error) {
	m, err := notation.ParseMoveFor(text, g.pos.SideToMove)
	if err != nil {
		return Record{}, err
	}
	return g.Move(m)
}

// Move makes a move for the side to move. A rejected move leaves the game
// unchanged, so the caller may simply try another.
func (g *Game) Move(m chess.Move) (Record, error) {
	if g.IsOver() {
		return Record{}, &errors.MoveError{
			Err:      errors.ErrGameOver,
			PlyNum:   g.pos.Ply + 1,
			MoveText: m.String(),
			Detail:   g.status.String(),
		}
	}

	start := time.Now()
	out, err := engine.MakeMove(&g.pos, m)
	if err != nil {
		return Record{}, err
	}
	g.status = engine.Status(&g.pos)

	r := Record{
		Ply:     g.pos.Ply,
		Move:    m,
		Outcome: out,
		Status:  g.status,
		Elapsed: time.Since(start),
	}
	g.records = append(g.records, r)
	return r, nil
}

// PlayAll plays a whitespace separated move list, stopping at the first
// rejected move.
func (g *Game) PlayAll(text string) ([]Record, error) {
	fields := strings.Fields(text)
	moves := make([]chess.Move, len(fields))
	side := g.pos.SideToMove
	for i, f := range fields {
		m, err := notation.ParseMoveFor(f, side)
		if err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}
		moves[i] = m
		side = side.Opposite()
	}
	var played []Record
	for _, m := range moves {
		r, err := g.Move(m)
		if err != nil {
			return played, err
		}
		played = append(played, r)
	}
	return played, nil
}

// Result returns the result in PGN form: "1-0", "0-1", "1/2-1/2", or "*"
// while the game is still going.
func (g *Game) Result() string {
	switch g.status {
	case chess.Checkmate:
		if g.pos.SideToMove == chess.White {
			return "0-1"
		}
		return "1-0"
	case chess.Stalemate:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// String summarises the game for logs.
func (g *Game) String() string {
	return fmt.Sprintf("game %s: %d plies, %s, %s", g.ID, len(g.records), g.status, g.Result())
}
