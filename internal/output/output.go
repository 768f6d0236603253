// Package output writes finished games as PGN or JSON documents.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/engine"
	"github.com/lgbarn/bitboard-chess-go/internal/game"
)

// OutputWriter handles formatted output with line length control. It keeps
// the first write error and skips everything after it.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
			o.needsSpace = false
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) print(s string) {
	if o.err == nil {
		_, o.err = io.WriteString(o.w, s)
	}
}

// sevenTagRoster lists the mandatory PGN tags in their required order.
var sevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// OutputGame writes a game as PGN: the tag section, a blank line, long
// algebraic movetext wrapped at maxLineLength, the result and a blank line.
func OutputGame(w io.Writer, g *game.Game, maxLineLength int) error {
	ow := NewOutputWriter(w, maxLineLength)
	outputTags(g, ow)
	ow.NewLine()
	outputMoves(g, ow)
	ow.NewLine()
	return ow.Err()
}

// computedTags are written from the game itself, never from Game.Tags.
var computedTags = map[string]bool{
	"Result": true, "SetUp": true, "FEN": true, "PlyCount": true, "GameId": true,
}

// outputTags writes the seven tag roster followed by the setup tags, any
// other tags of the game in name order, and the bookkeeping tags.
func outputTags(g *game.Game, ow *OutputWriter) {
	inRoster := make(map[string]bool, len(sevenTagRoster))
	for _, tag := range sevenTagRoster {
		inRoster[tag] = true
		value := g.Tags[tag]
		switch {
		case tag == "Result":
			value = g.Result()
		case value == "" && tag == "Event":
			value = "bitchess game"
		case value == "":
			value = "?"
		}
		writeTag(ow, tag, value)
	}

	if g.StartFEN != engine.InitialFEN {
		writeTag(ow, "SetUp", "1")
		writeTag(ow, "FEN", g.StartFEN)
	}
	names := make([]string, 0, len(g.Tags))
	for name := range g.Tags {
		if !inRoster[name] && !computedTags[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		writeTag(ow, name, g.Tags[name])
	}
	writeTag(ow, "PlyCount", fmt.Sprint(len(g.Records())))
	writeTag(ow, "GameId", g.ID)
}

func writeTag(ow *OutputWriter, tag, value string) {
	ow.Write(fmt.Sprintf("[%s \"%s\"]", tag, escapeTagValue(value)))
	ow.NewLine()
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// outputMoves writes numbered movetext. A game starting with Black to move
// opens with "N...".
func outputMoves(g *game.Game, ow *OutputWriter) {
	for i, rec := range g.Records() {
		before := rec.Ply - 1
		moveNumber := before/2 + 1
		switch {
		case before%2 == 0:
			ow.Write(fmt.Sprintf("%d.", moveNumber))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", moveNumber))
		}
		ow.Write(formatMove(rec))
	}
	ow.Write(g.Result())
	ow.NewLine()
}

// formatMove returns the long algebraic text of a played move with a check
// or mate suffix.
func formatMove(rec game.Record) string {
	text := rec.Move.String()
	if rec.Outcome.Castle != chess.NoCastle {
		text = rec.Outcome.Castle.String()
	}
	switch rec.Status {
	case chess.Check:
		text += "+"
	case chess.Checkmate:
		text += "#"
	}
	return text
}
