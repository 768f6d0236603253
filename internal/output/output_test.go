package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/bitboard-chess-go/internal/testutil"
)

func TestOutputGame_Tags(t *testing.T) {
	g := testutil.MustPlay(t, "", "e2e4 e7e5 g1f3")

	var buf bytes.Buffer
	testutil.AssertNoError(t, OutputGame(&buf, g, 80))

	want := strings.Join([]string{
		`[Event "bitchess game"]`,
		`[Site "?"]`,
		`[Date "?"]`,
		`[Round "?"]`,
		`[White "?"]`,
		`[Black "?"]`,
		`[Result "*"]`,
		`[PlyCount "3"]`,
		`[GameId "` + g.ID + `"]`,
		``,
		`1. e2e4 e7e5 2. g1f3 *`,
		``,
		``,
	}, "\n")
	testutil.AssertEqual(t, buf.String(), want)
}

func TestOutputGame_Movetext(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves string
		want  string
	}{
		{
			name:  "fool's mate",
			moves: "f2f3 e7e5 g2g4 d8h4",
			want:  "1. f2f3 e7e5 2. g2g4 d8h4# 0-1",
		},
		{
			name:  "black starts",
			fen:   "4k3/8/8/8/8/8/8/R3K3 b - - 0 1",
			moves: "e8d7 a1a7",
			want:  "1... e8d7 2. a1a7+ *",
		},
		{
			name:  "castling",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: "e1g1 e8c8",
			want:  "1. O-O O-O-O *",
		},
		{
			name:  "promotion",
			fen:   "8/4P3/8/8/8/8/k7/4K3 w - - 0 1",
			moves: "e7e8n",
			want:  "1. e7e8n *",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustPlay(t, tt.fen, tt.moves)
			var buf bytes.Buffer
			testutil.AssertNoError(t, OutputGame(&buf, g, 80))
			testutil.AssertContains(t, buf.String(), "\n\n"+tt.want+"\n")
		})
	}
}

func TestOutputGame_SetUpTags(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/R3K3 b - - 0 1"
	g := testutil.MustPlay(t, fen, "")

	var buf bytes.Buffer
	testutil.AssertNoError(t, OutputGame(&buf, g, 80))
	testutil.AssertContains(t, buf.String(), "[SetUp \"1\"]\n[FEN \""+fen+"\"]\n")

	buf.Reset()
	testutil.AssertNoError(t, OutputGame(&buf, testutil.MustPlay(t, "", ""), 80))
	testutil.AssertNotContains(t, buf.String(), "SetUp")
}

func TestOutputGame_ExtraTags(t *testing.T) {
	g := testutil.MustPlay(t, "", "e2e4 e7e5")
	g.SetTag("Opening", `King's "Pawn"`)
	g.SetTag("ECO", "C20")

	var buf bytes.Buffer
	testutil.AssertNoError(t, OutputGame(&buf, g, 80))
	testutil.AssertContains(t, buf.String(), "[ECO \"C20\"]\n[Opening \"King's \\\"Pawn\\\"\"]\n")
}

func TestOutputGame_RosterFromTags(t *testing.T) {
	g := testutil.MustPlay(t, "", "e2e4")
	g.SetTag("White", "Alice")
	g.SetTag("Event", "Club night")
	g.SetTag("Result", "1-0")
	g.SetTag("PlyCount", "40")

	var buf bytes.Buffer
	testutil.AssertNoError(t, OutputGame(&buf, g, 80))
	got := buf.String()
	testutil.AssertContains(t, got, "[Event \"Club night\"]\n")
	testutil.AssertContains(t, got, "[White \"Alice\"]\n[Black \"?\"]\n[Result \"*\"]\n")
	testutil.AssertContains(t, got, "[PlyCount \"1\"]\n")
	if n := strings.Count(got, "[White "); n != 1 {
		t.Errorf("found %d White tags, want 1", n)
	}
}

func TestOutputGame_LineLength(t *testing.T) {
	g := testutil.MustPlay(t, "", "e2e4 e7e5 g1f3 b8c6 f1c4 g8f6 d2d3 f8c5 c2c3 d7d6 e1g1 e8g8")

	var buf bytes.Buffer
	testutil.AssertNoError(t, OutputGame(&buf, g, 20))

	movetext := strings.SplitN(buf.String(), "\n\n", 2)[1]
	for _, line := range strings.Split(strings.TrimSpace(movetext), "\n") {
		if len(line) > 20 {
			t.Errorf("line %q longer than 20", line)
		}
	}
	testutil.AssertContains(t, movetext, "O-O")
}

func TestEscapeTagValue(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`say "hi"`, `say \"hi\"`},
		{`back\slash`, `back\\slash`},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, escapeTagValue(tt.in), tt.want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestOutputGame_WriteError(t *testing.T) {
	g := testutil.MustPlay(t, "", "e2e4")
	if err := OutputGame(failingWriter{}, g, 80); err == nil {
		t.Error("OutputGame() to a failing writer returned nil")
	}
}
