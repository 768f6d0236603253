// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/bitboard-chess-go/internal/config"
)

var (
	// Input options
	movesList = flag.String("moves", "", "Moves to play, e.g. \"e2e4 e7e5\" (default: read from stdin)")
	startFEN  = flag.String("fen", "", "Starting position in FEN (default: standard start)")
	maxPlies  = flag.Int("maxply", 0, "Stop after N plies (0 = no limit)")
	keepGoing = flag.Bool("k", false, "Skip rejected moves in -moves mode instead of stopping")

	// ECO classification
	ecoFile = flag.String("e", "", "ECO classification file (lines of \"CODE | Opening | [Variation |] moves\")")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	showBoard    = flag.Bool("board", false, "Print the board after every move")
	showLegal    = flag.Bool("legal", false, "List the legal moves of the side to move after every move")
	showTiming   = flag.Bool("time", false, "Report how long each move took to validate")
	showFEN      = flag.Bool("showfen", false, "Print the FEN after every move")
	outputFormat = flag.String("W", "", "Output format: text (default), pgn, json")
	lineLength   = flag.Int("w", 80, "Maximum PGN line length")
	jsonFEN      = flag.Bool("jsonfen", false, "Include the FEN after each move in JSON output")

	// SVG diagram
	svgFile    = flag.String("svg", "", "Write an SVG diagram of the final position to this file")
	squareSize = flag.Int("square", 45, "SVG square size in pixels")
	noCoords   = flag.Bool("nocoords", false, "Leave file and rank labels off the SVG diagram")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 normal, 2 running commentary")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 1, "Goroutines used to enumerate legal moves and to play input files")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyEngineFlags(cfg)
	applyDisplayFlags(cfg)
	applyOutputFormatFlags(cfg)
	applySVGFlags(cfg)

	if *ecoFile != "" {
		cfg.ECOFile = *ecoFile
		cfg.AddECO = true
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyEngineFlags configures the starting position and move input.
func applyEngineFlags(cfg *config.Config) {
	cfg.Engine.StartFEN = *startFEN
	cfg.Engine.Moves = *movesList
	cfg.Engine.MaxPlies = *maxPlies
	cfg.Engine.Workers = *workers
	cfg.Engine.StopOnError = !*keepGoing
}

// applyDisplayFlags configures what is printed after each move.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowLegal = *showLegal
	cfg.Output.ShowTiming = *showTiming
	cfg.Output.ShowFEN = *showFEN
}

// applyOutputFormatFlags configures the output format. Unknown names fall
// back to move commentary.
func applyOutputFormatFlags(cfg *config.Config) {
	if format, ok := config.ParseOutputFormat(*outputFormat); ok {
		cfg.Output.Format = format
	} else {
		cfg.Output.Format = config.TextFormat
	}
	cfg.Output.MaxLineLength = *lineLength
	cfg.Output.IncludeFEN = *jsonFEN
}

// applySVGFlags configures the final diagram.
func applySVGFlags(cfg *config.Config) {
	cfg.Output.SVGFile = *svgFile
	cfg.Output.SquareSize = *squareSize
	cfg.Output.Coordinates = !*noCoords
}
