package config

import (
	"fmt"

	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// Limits on the rendered SVG board square, in pixels.
const (
	MinSquareSize = 16
	MaxSquareSize = 256
)

// OutputFormat specifies how a finished game is written.
type OutputFormat int

const (
	// TextFormat reports each move as it is played
	TextFormat OutputFormat = iota
	// PGNFormat writes the game as PGN with long algebraic movetext
	PGNFormat
	// JSONFormat writes the game as a JSON document
	JSONFormat
)

// ParseOutputFormat maps a format name to its OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, bool) {
	switch name {
	case "", "text":
		return TextFormat, true
	case "pgn":
		return PGNFormat, true
	case "json":
		return JSONFormat, true
	}
	return TextFormat, false
}

// OutputConfig holds settings related to what is printed after each move.
type OutputConfig struct {
	// ShowBoard prints the text board after every move
	ShowBoard bool

	// ShowLegal lists the legal moves of the side to move
	ShowLegal bool

	// ShowTiming reports how long each move took to validate
	ShowTiming bool

	// ShowFEN prints the FEN of the final position
	ShowFEN bool

	// Coordinates adds file letters and rank digits to rendered boards
	Coordinates bool

	// SVGFile, if set, receives an SVG diagram of the final position
	SVGFile string

	// SquareSize is the edge of one SVG square in pixels
	SquareSize int

	// Format selects move commentary or a PGN/JSON export of the game
	Format OutputFormat

	// MaxLineLength wraps PGN movetext
	MaxLineLength int

	// IncludeFEN adds the position after each move to JSON output
	IncludeFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Coordinates:   true,
		SquareSize:    45,
		MaxLineLength: 80,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.SquareSize < MinSquareSize || o.SquareSize > MaxSquareSize {
		return fmt.Errorf("square size %d outside %d..%d: %w",
			o.SquareSize, MinSquareSize, MaxSquareSize, errors.ErrInvalidConfig)
	}
	if o.MaxLineLength < 0 {
		return fmt.Errorf("negative line length %d: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
