// Package eco provides ECO (Encyclopaedia of Chess Openings) classification.
//
// An ECO file holds one opening line per row:
//
//	B90 | Sicilian | Najdorf | e2e4 c7c5 g1f3 d7d6 d2d4 c5d4 f3d4 g8f6 b1c3 a7a6
//
// The first field is the code, the last the moves in coordinate notation,
// and up to three fields between them name the opening, variation and
// sub-variation. Blank lines and lines starting with '#' are ignored.
package eco

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/bitboard-chess-go/internal/engine"
	"github.com/lgbarn/bitboard-chess-go/internal/errors"
	"github.com/lgbarn/bitboard-chess-go/internal/game"
	"github.com/lgbarn/bitboard-chess-go/internal/hashing"
	"github.com/lgbarn/bitboard-chess-go/internal/notation"
)

// ECOHalfMoveLimit is the maximum distance from an ECO line for a match.
const ECOHalfMoveLimit = 6

// ECOTableSize is the size of the ECO hash table.
const ECOTableSize = 4096

// ECOEntry represents a single ECO classification entry.
type ECOEntry struct {
	ECOCode        string // e.g., "B33"
	Opening        string // e.g., "Sicilian"
	Variation      string // e.g., "Sveshnikov"
	SubVariation   string
	RequiredHash   uint64 // Position hash for matching
	CumulativeHash uint64 // Cumulative hash of all moves
	HalfMoves      int    // Number of half-moves to reach this position
	Next           *ECOEntry
}

// ECOClassifier provides ECO classification for chess games.
type ECOClassifier struct {
	table         [ECOTableSize]*ECOEntry
	maxHalfMoves  int
	entriesLoaded int
}

// NewECOClassifier creates a new ECO classifier.
func NewECOClassifier() *ECOClassifier {
	return &ECOClassifier{
		maxHalfMoves: ECOHalfMoveLimit,
	}
}

// LoadFromFile loads ECO data from a file.
func (ec *ECOClassifier) LoadFromFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("cannot open ECO file: %w", err)
	}
	defer file.Close()

	return ec.LoadFromReader(file)
}

// LoadFromReader loads ECO data from a reader. Entries read before a
// malformed line stay loaded.
func (ec *ECOClassifier) LoadFromReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := ec.addECOLine(line); err != nil {
			return errors.Wrapf(err, "ECO line %d", lineNum)
		}
	}
	return scanner.Err()
}

// addECOLine parses one line of an ECO file and adds it to the table.
func (ec *ECOClassifier) addECOLine(line string) error {
	fields := strings.Split(line, "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 2 || len(fields) > 5 || fields[0] == "" {
		return &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Input:    line,
			Expected: "CODE | Opening | moves",
		}
	}

	moves, err := notation.ParseMoves(fields[len(fields)-1])
	if err != nil {
		return err
	}
	if len(moves) == 0 {
		return nil // No moves in this entry
	}

	names := make([]string, 3)
	copy(names, fields[1:len(fields)-1])

	// Replay the line to get position hashes
	pos := engine.InitialPosition()
	var cumulativeHash uint64
	for _, m := range moves {
		if _, err := engine.MakeMove(&pos, m); err != nil {
			return err
		}
		cumulativeHash ^= hashing.GenerateZobristHash(&pos)
	}

	ec.addECOEntry(&ECOEntry{
		ECOCode:        fields[0],
		Opening:        names[0],
		Variation:      names[1],
		SubVariation:   names[2],
		RequiredHash:   hashing.GenerateZobristHash(&pos),
		CumulativeHash: cumulativeHash,
		HalfMoves:      len(moves),
	})
	return nil
}

func (ec *ECOClassifier) addECOEntry(entry *ECOEntry) {
	// Check for collision
	ix := entry.RequiredHash % ECOTableSize
	for existing := ec.table[ix]; existing != nil; existing = existing.Next {
		if existing.RequiredHash == entry.RequiredHash &&
			existing.HalfMoves == entry.HalfMoves &&
			existing.CumulativeHash == entry.CumulativeHash {
			// Collision - first entry wins
			return
		}
	}

	entry.Next = ec.table[ix]
	ec.table[ix] = entry
	ec.entriesLoaded++

	if entry.HalfMoves+ECOHalfMoveLimit > ec.maxHalfMoves {
		ec.maxHalfMoves = entry.HalfMoves + ECOHalfMoveLimit
	}
}

// ClassifyGame finds the best ECO match for a game.
// Returns the ECO entry or nil if no match found.
func (ec *ECOClassifier) ClassifyGame(g *game.Game) *ECOEntry {
	if ec.entriesLoaded == 0 {
		return nil
	}

	pos, err := engine.NewPositionFromFEN(g.StartFEN)
	if err != nil {
		return nil
	}

	var bestMatch *ECOEntry
	var cumulativeHash uint64

	for i, m := range g.Moves() {
		halfMoves := i + 1
		// Don't bother checking if we're past max ECO depth
		if halfMoves > ec.maxHalfMoves {
			break
		}
		if _, err := engine.MakeMove(&pos, m); err != nil {
			break
		}

		posHash := hashing.GenerateZobristHash(&pos)
		cumulativeHash ^= posHash

		if match := ec.findMatch(posHash, cumulativeHash, halfMoves); match != nil {
			bestMatch = match
		}
	}

	return bestMatch
}

// findMatch looks up a position in the ECO table.
func (ec *ECOClassifier) findMatch(posHash, cumulativeHash uint64, halfMoves int) *ECOEntry {
	ix := posHash % ECOTableSize
	var possible *ECOEntry

	for entry := ec.table[ix]; entry != nil; entry = entry.Next {
		if entry.RequiredHash != posHash {
			continue
		}
		// Exact match on position and route
		if entry.HalfMoves == halfMoves && entry.CumulativeHash == cumulativeHash {
			return entry
		}
		// Transposition within limit
		if abs(halfMoves-entry.HalfMoves) <= ECOHalfMoveLimit {
			possible = entry
		}
	}

	return possible
}

// AddECOTags adds ECO, Opening, and Variation tags to a game.
func (ec *ECOClassifier) AddECOTags(g *game.Game) bool {
	match := ec.ClassifyGame(g)
	if match == nil {
		return false
	}

	g.SetTag("ECO", match.ECOCode)
	g.SetTag("Opening", match.Opening)
	g.SetTag("Variation", match.Variation)
	g.SetTag("SubVariation", match.SubVariation)
	return true
}

// EntriesLoaded returns the number of ECO entries loaded.
func (ec *ECOClassifier) EntriesLoaded() int {
	return ec.entriesLoaded
}

// Name returns the entry's opening names joined for display.
func (e *ECOEntry) Name() string {
	name := e.Opening
	for _, part := range []string{e.Variation, e.SubVariation} {
		if part != "" {
			name += ", " + part
		}
	}
	return name
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
