package engine

import (
	"testing"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewPositionFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewPositionFromFEN(fen)
			}
		})
	}
}

func BenchmarkPositionToFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			p := mustFEN(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				PositionToFEN(&p)
			}
		})
	}
}

func BenchmarkApplyMove(b *testing.B) {
	cases := []struct {
		name string
		fen  string
		move string
	}{
		{"PawnMove", benchFENs["Initial"], "e2e4"},
		{"PieceMove", benchFENs["Initial"], "g1f3"},
		{"Capture", benchFENs["Complex"], "e5f7"},
		{"EnPassant", benchFENs["EnPassant"], "f5e6"},
		{"Castle", benchFENs["Castling"], "e1g1"},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			start := mustFEN(b, tc.fen)
			m := mustMove(b, tc.move)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p := start
				ApplyMove(&p, m)
			}
		})
	}
}

func BenchmarkGameReplay_ItalianOpening(b *testing.B) {
	texts := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5", "c2c3", "g8f6", "d2d4", "e5d4"}
	moves := make([]chess.Move, len(texts))
	for i, text := range texts {
		moves[i] = mustMove(b, text)
	}

	for i := 0; i < b.N; i++ {
		p := InitialPosition()
		for _, m := range moves {
			MakeMove(&p, m)
		}
	}
}

func BenchmarkSliders(b *testing.B) {
	p := mustFEN(b, benchFENs["Complex"])
	occ := p.Occupied()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sq := chess.Square(i & 63)
		QueenAttacks(sq, occ)
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			p := mustFEN(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				IsInCheck(&p, chess.White)
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			p := mustFEN(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				LegalMoves(&p, p.SideToMove)
			}
		})
	}
}

func BenchmarkLegalMovesParallel(b *testing.B) {
	p := mustFEN(b, benchFENs["Complex"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		LegalMovesParallel(&p, p.SideToMove, 4)
	}
}

func BenchmarkHasLegalMoves(b *testing.B) {
	p := mustFEN(b, benchFENs["Midgame"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		HasLegalMoves(&p, chess.White)
	}
}

func BenchmarkPositionCopy(b *testing.B) {
	p := InitialPosition()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Copy()
	}
}
