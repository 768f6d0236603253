package engine

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
)

func TestKnightAttacks(t *testing.T) {
	tests := []struct {
		sq   chess.Square
		want []string
	}{
		{chess.A1, []string{"b3", "c2"}},
		{chess.H8, []string{"g6", "f7"}},
		{chess.D4, []string{"c2", "e2", "b3", "f3", "b5", "f5", "c6", "e6"}},
		{chess.B1, []string{"a3", "c3", "d2"}},
		{chess.G7, []string{"e8", "e6", "f5", "h5"}},
	}

	for _, tt := range tests {
		t.Run(tt.sq.String(), func(t *testing.T) {
			want := squares(t, tt.want...)
			if got := KnightAttacks(tt.sq); got != want {
				t.Errorf("KnightAttacks(%s) =\n%v\nwant\n%v", tt.sq, got, want)
			}
		})
	}
}

func TestKingAttacks(t *testing.T) {
	tests := []struct {
		sq        chess.Square
		wantCount int
	}{
		{chess.A1, 3},
		{chess.H1, 3},
		{chess.A8, 3},
		{chess.H8, 3},
		{chess.E1, 5},
		{chess.H5, 5},
		{chess.E4, 8},
	}

	for _, tt := range tests {
		t.Run(tt.sq.String(), func(t *testing.T) {
			got := KingAttacks(tt.sq)
			if got.Count() != tt.wantCount {
				t.Errorf("KingAttacks(%s) has %d squares, want %d", tt.sq, got.Count(), tt.wantCount)
			}
			if got.Has(tt.sq) {
				t.Errorf("KingAttacks(%s) includes its own square", tt.sq)
			}
		})
	}
}

func TestPawnAttacks(t *testing.T) {
	tests := []struct {
		name   string
		colour chess.Colour
		pawns  chess.Bitboard
		want   []string
	}{
		{"white a-file does not wrap", chess.White, chess.A2.Bitboard(), []string{"b3"}},
		{"white h-file does not wrap", chess.White, chess.H2.Bitboard(), []string{"g3"}},
		{"white centre", chess.White, chess.E4.Bitboard(), []string{"d5", "f5"}},
		{"black a-file does not wrap", chess.Black, chess.A7.Bitboard(), []string{"b6"}},
		{"black h-file does not wrap", chess.Black, chess.H7.Bitboard(), []string{"g6"}},
		{"black centre", chess.Black, chess.D5.Bitboard(), []string{"c4", "e4"}},
		{"set of pawns", chess.White, chess.BitboardOf(chess.A2, chess.C2), []string{"b3", "d3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := squares(t, tt.want...)
			if got := PawnAttacks(tt.colour, tt.pawns); got != want {
				t.Errorf("PawnAttacks() =\n%v\nwant\n%v", got, want)
			}
		})
	}
}

func TestPawnPushes(t *testing.T) {
	tests := []struct {
		name   string
		colour chess.Colour
		sq     chess.Square
		occ    []string
		want   []string
	}{
		{"white double push", chess.White, chess.E2, nil, []string{"e3", "e4"}},
		{"white double push blocked far", chess.White, chess.E2, []string{"e4"}, []string{"e3"}},
		{"white blocked near", chess.White, chess.E2, []string{"e3"}, nil},
		{"white single only", chess.White, chess.E3, nil, []string{"e4"}},
		{"black double push", chess.Black, chess.D7, nil, []string{"d6", "d5"}},
		{"black blocked near", chess.Black, chess.D7, []string{"d6"}, nil},
		{"black single only", chess.Black, chess.D6, nil, []string{"d5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := squares(t, tt.want...)
			occ := squares(t, tt.occ...) | tt.sq.Bitboard()
			if got := PawnPushes(tt.colour, tt.sq, occ); got != want {
				t.Errorf("PawnPushes() =\n%v\nwant\n%v", got, want)
			}
		})
	}
}

func TestSliders_EmptyBoard(t *testing.T) {
	rook := RookAttacks(chess.D4, chess.D4.Bitboard())
	wantRook := (chess.FileD | chess.Rank4) &^ chess.D4.Bitboard()
	if rook != wantRook {
		t.Errorf("RookAttacks(d4) =\n%v\nwant\n%v", rook, wantRook)
	}
	if rook.Count() != 14 {
		t.Errorf("RookAttacks(d4) has %d squares, want 14", rook.Count())
	}

	bishop := BishopAttacks(chess.D4, chess.D4.Bitboard())
	wantBishop := squares(t, "a1", "b2", "c3", "e5", "f6", "g7", "h8", "a7", "b6", "c5", "e3", "f2", "g1")
	if bishop != wantBishop {
		t.Errorf("BishopAttacks(d4) =\n%v\nwant\n%v", bishop, wantBishop)
	}

	if queen := QueenAttacks(chess.D4, chess.D4.Bitboard()); queen != rook|bishop {
		t.Errorf("QueenAttacks(d4) is not the union of rook and bishop attacks")
	}
}

func TestRookAttacks_BlockerTruncates(t *testing.T) {
	occ := chess.BitboardOf(chess.D4, chess.D6)
	got := RookAttacks(chess.D4, occ)

	if !got.Has(chess.D5) || !got.Has(chess.D6) {
		t.Errorf("rook on d4 should reach d5 and the blocker on d6:\n%v", got)
	}
	if got.Has(chess.D7) || got.Has(chess.D8) {
		t.Errorf("rook on d4 should not pass the blocker on d6:\n%v", got)
	}
	if got.Count() != 12 {
		t.Errorf("RookAttacks(d4) with blocker on d6 has %d squares, want 12", got.Count())
	}
}

func TestSliders_Corners(t *testing.T) {
	tests := []struct {
		name string
		got  chess.Bitboard
		want chess.Bitboard
	}{
		{"rook a1", RookAttacks(chess.A1, chess.A1.Bitboard()), (chess.FileA | chess.Rank1) &^ chess.A1.Bitboard()},
		{"rook h8", RookAttacks(chess.H8, chess.H8.Bitboard()), (chess.FileH | chess.Rank8) &^ chess.H8.Bitboard()},
		{"bishop h8", BishopAttacks(chess.H8, chess.H8.Bitboard()), squares(t, "a1", "b2", "c3", "d4", "e5", "f6", "g7")},
		{"bishop h1", BishopAttacks(chess.H1, chess.H1.Bitboard()), squares(t, "a8", "b7", "c6", "d5", "e4", "f3", "g2")},
		{"bishop a8 blocked", BishopAttacks(chess.A8, chess.BitboardOf(chess.A8, chess.C6)), squares(t, "b7", "c6")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got\n%v\nwant\n%v", tt.got, tt.want)
			}
		})
	}
}

// slideRef walks each ray one step at a time.
func slideRef(sq chess.Square, occ chess.Bitboard, dirs [][2]int) chess.Bitboard {
	var out chess.Bitboard
	for _, d := range dirs {
		f, r := sq.File()+d[0], sq.Rank()+d[1]
		for f >= 0 && f < 8 && r >= 0 && r < 8 {
			s := chess.NewSquare(f, r)
			out = out.Set(s)
			if occ.Has(s) {
				break
			}
			f, r = f+d[0], r+d[1]
		}
	}
	return out
}

var (
	rookDirs   = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

func TestSliders_MatchRayWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))

	for i := 0; i < 2000; i++ {
		occ := chess.Bitboard(rng.Uint64() & rng.Uint64())
		sq := chess.Square(rng.Intn(chess.NumSquares))
		occ = occ.Set(sq)

		if got, want := RookAttacks(sq, occ), slideRef(sq, occ, rookDirs); got != want {
			t.Fatalf("RookAttacks(%s, %#x) =\n%v\nwant\n%v", sq, uint64(occ), got, want)
		}
		if got, want := BishopAttacks(sq, occ), slideRef(sq, occ, bishopDirs); got != want {
			t.Fatalf("BishopAttacks(%s, %#x) =\n%v\nwant\n%v", sq, uint64(occ), got, want)
		}
	}
}

func TestAttackTables_Symmetric(t *testing.T) {
	for a := chess.Square(0); a < chess.NumSquares; a++ {
		for b := chess.Square(0); b < chess.NumSquares; b++ {
			if KnightAttacks(a).Has(b) != KnightAttacks(b).Has(a) {
				t.Fatalf("knight table not symmetric for %s/%s", a, b)
			}
			if KingAttacks(a).Has(b) != KingAttacks(b).Has(a) {
				t.Fatalf("king table not symmetric for %s/%s", a, b)
			}
		}
	}
}

func TestDestinations_ExcludesOwnPieces(t *testing.T) {
	p := InitialPosition()

	tests := []struct {
		name  string
		piece chess.Piece
		sq    chess.Square
		want  []string
	}{
		{"knight b1", chess.Knight, chess.B1, []string{"a3", "c3"}},
		{"rook a1 boxed in", chess.Rook, chess.A1, nil},
		{"queen d1 boxed in", chess.Queen, chess.D1, nil},
		{"pawn e2", chess.Pawn, chess.E2, []string{"e3", "e4"}},
		{"king e1 boxed in", chess.King, chess.E1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Destinations(&p, chess.White, tt.piece, tt.sq)
			if diff := cmp.Diff(squares(t, tt.want...).Squares(), got.Squares()); diff != "" {
				t.Errorf("Destinations() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAttackSet(t *testing.T) {
	p := InitialPosition()

	white := AttackSet(&p, chess.White)
	if white != chess.Rank3|squares(t, "b1", "c1", "d1", "e1", "f1", "g1", "a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2") {
		t.Errorf("AttackSet(white) from the initial position =\n%v", white)
	}
	if white&chess.Rank4 != 0 {
		t.Errorf("pawn pushes must not count as attacks:\n%v", white)
	}

	black := AttackSet(&p, chess.Black)
	if !black.Has(chess.F6) || black.Has(chess.E5) {
		t.Errorf("AttackSet(black) =\n%v", black)
	}
}
