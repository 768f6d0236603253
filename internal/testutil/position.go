package testutil

import (
	"testing"

	"github.com/lgbarn/bitboard-chess-go/internal/engine"
	"github.com/lgbarn/bitboard-chess-go/internal/game"
	"github.com/lgbarn/bitboard-chess-go/internal/notation"
)

// Common fixtures.
const (
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 3"
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

// MustFEN parses a FEN string, calling t.Fatal if it is invalid.
func MustFEN(t *testing.T, fen string) engine.Position {
	t.Helper()
	p, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("invalid test FEN %q: %v", fen, err)
	}
	return p
}

// MustApply plays a whitespace separated move list on a copy of p with full
// legality checking and returns the result. Any rejection is fatal.
func MustApply(t *testing.T, p engine.Position, moves string) engine.Position {
	t.Helper()
	list, err := notation.ParseMoves(moves)
	if err != nil {
		t.Fatalf("bad test moves %q: %v", moves, err)
	}
	for _, m := range list {
		if _, err := engine.MakeMove(&p, m); err != nil {
			t.Fatalf("test move %s rejected: %v", m, err)
		}
	}
	return p
}

// MustPlay starts a game from fen (the initial position when empty) and
// plays moves, calling t.Fatal on any error.
func MustPlay(t *testing.T, fen, moves string) *game.Game {
	t.Helper()
	if fen == "" {
		fen = engine.InitialFEN
	}
	g, err := game.NewFromFEN(fen)
	if err != nil {
		t.Fatalf("invalid test FEN %q: %v", fen, err)
	}
	if _, err := g.PlayAll(moves); err != nil {
		t.Fatalf("test moves %q rejected: %v", moves, err)
	}
	return g
}
