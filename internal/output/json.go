package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/engine"
	"github.com/lgbarn/bitboard-chess-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string            `json:"id"`
	Tags       map[string]string `json:"tags,omitempty"`
	InitialFEN string            `json:"initialFEN"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result"`
	Status     string            `json:"status"`
	PlyCount   int               `json:"plyCount"`
	FinalFEN   string            `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"` // "white" or "black"
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Castle    string `json:"castle,omitempty"`
	EnPassant bool   `json:"enPassant,omitempty"`
	Status    string `json:"status,omitempty"` // check, checkmate or stalemate
	FEN       string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGameJSON writes a single game as an indented JSON document.
func OutputGameJSON(w io.Writer, g *game.Game, includeFEN bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(g, includeFEN))
}

// GameToJSON converts a game to its JSON form. With includeFEN each move
// carries the position reached after it.
func GameToJSON(g *game.Game, includeFEN bool) *JSONGame {
	final := g.Position()
	records := g.Records()
	return &JSONGame{
		ID:         g.ID,
		Tags:       copyTags(g.Tags),
		InitialFEN: g.StartFEN,
		Moves:      convertMoveList(g.StartFEN, records, includeFEN),
		Result:     g.Result(),
		Status:     g.Status().String(),
		PlyCount:   len(records),
		FinalFEN:   engine.PositionToFEN(&final),
	}
}

// convertMoveList converts played moves, replaying them from the starting
// position when FENs are wanted.
func convertMoveList(startFEN string, records []game.Record, includeFEN bool) []JSONMove {
	var pos engine.Position
	if includeFEN {
		var err error
		if pos, err = engine.NewPositionFromFEN(startFEN); err != nil {
			includeFEN = false
		}
	}

	moves := make([]JSONMove, 0, len(records))
	for _, rec := range records {
		jm := convertSingleMove(rec)
		if includeFEN {
			if _, err := engine.MakeMove(&pos, rec.Move); err != nil {
				includeFEN = false
			} else {
				jm.FEN = engine.PositionToFEN(&pos)
			}
		}
		moves = append(moves, jm)
	}
	return moves
}

func convertSingleMove(rec game.Record) JSONMove {
	out := rec.Outcome
	jm := JSONMove{
		Ply:       rec.Ply,
		Color:     colorName((rec.Ply-1)%2 == 0),
		UCI:       rec.Move.String(),
		From:      rec.Move.From.String(),
		To:        rec.Move.To.String(),
		Piece:     pieceTypeName(out.Piece),
		Captured:  pieceTypeName(out.Captured),
		Promotion: pieceTypeName(out.Promoted),
		Castle:    out.Castle.String(),
		EnPassant: out.EnPassant,
	}
	if rec.Status != chess.NoCheck {
		jm.Status = rec.Status.String()
	}
	return jm
}

// copyTags copies a tag map, returning nil for an empty one.
func copyTags(tags map[string]string) map[string]string {
	if len(tags) == 0 {
		return nil
	}
	result := make(map[string]string, len(tags))
	for k, v := range tags {
		result[k] = v
	}
	return result
}

func colorName(isWhite bool) string {
	if isWhite {
		return "white"
	}
	return "black"
}

func pieceTypeName(p chess.Piece) string {
	if p == chess.NoPiece {
		return ""
	}
	return strings.ToLower(p.String())
}
