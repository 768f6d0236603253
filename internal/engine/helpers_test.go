package engine

import (
	"testing"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/notation"
)

// mustFEN parses a FEN string or fails the test.
func mustFEN(t testing.TB, fen string) Position {
	t.Helper()
	p, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) failed: %v", fen, err)
	}
	return p
}

// mustMove parses coordinate notation or fails the test.
func mustMove(t testing.TB, text string) chess.Move {
	t.Helper()
	m, err := notation.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q) failed: %v", text, err)
	}
	return m
}

// play makes each move in turn with full legality checking.
func play(t testing.TB, p *Position, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if _, err := MakeMove(p, mustMove(t, text)); err != nil {
			t.Fatalf("MakeMove(%s) on %s failed: %v", text, p, err)
		}
	}
}

// squares builds a bitboard from square names.
func squares(t testing.TB, names ...string) chess.Bitboard {
	t.Helper()
	var bb chess.Bitboard
	for _, name := range names {
		sq, err := notation.ParseSquare(name)
		if err != nil {
			t.Fatalf("ParseSquare(%q) failed: %v", name, err)
		}
		bb = bb.Set(sq)
	}
	return bb
}

// checkInvariants fails the test if the piece bitboards overlap or a side
// does not have exactly one king.
func checkInvariants(t testing.TB, p *Position) {
	t.Helper()
	if err := p.Validate(); err != nil {
		t.Fatalf("position %s breaks invariants: %v", p, err)
	}
}
