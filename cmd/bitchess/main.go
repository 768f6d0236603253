// bitchess plays chess moves against a bitboard rules engine, reporting what
// each move did and rejecting illegal ones.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/bitboard-chess-go/internal/config"
	"github.com/lgbarn/bitboard-chess-go/internal/eco"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("bitchess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, flag.Args(), os.Stdin); err != nil {
		os.Exit(1)
	}
}

// run plays the input files given as arguments, the -moves list, or moves
// typed on stdin, in that order of preference.
func run(cfg *config.Config, args []string, stdin io.Reader) error {
	classifier, err := loadECOClassifier(cfg)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return runFiles(cfg, args, classifier)
	}

	s, err := newSession(cfg)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return err
	}
	s.classifier = classifier

	if cfg.Engine.Moves != "" {
		err = s.playScript(cfg.Engine.Moves)
	} else {
		err = s.runREPL(stdin)
	}
	if ferr := s.finish(); err == nil {
		err = ferr
	}
	return err
}

// loadECOClassifier loads the ECO classification file if one is configured.
func loadECOClassifier(cfg *config.Config) (*eco.ECOClassifier, error) {
	if !cfg.AddECO {
		return nil, nil
	}

	classifier := eco.NewECOClassifier()
	if err := classifier.LoadFromFile(cfg.ECOFile); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error loading ECO file %s: %v\n", cfg.ECOFile, err)
		return nil, err
	}

	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "Loaded %d ECO entries\n", classifier.EntriesLoaded())
	}
	return classifier, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: bitchess [options] [move-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess moves in coordinate notation (e2e4, e7e8q) and reports\n")
	fmt.Fprintf(os.Stderr, "what each move did until checkmate or stalemate.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInteractive commands:\n")
	fmt.Fprintf(os.Stderr, "  board  Print the board\n")
	fmt.Fprintf(os.Stderr, "  legal  List the legal moves\n")
	fmt.Fprintf(os.Stderr, "  fen    Print the position as FEN\n")
	fmt.Fprintf(os.Stderr, "  quit   Stop reading moves\n")
}
