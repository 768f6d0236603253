// batch.go - Playing move-list files concurrently
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/bitboard-chess-go/internal/config"
	"github.com/lgbarn/bitboard-chess-go/internal/eco"
	"github.com/lgbarn/bitboard-chess-go/internal/game"
	"github.com/lgbarn/bitboard-chess-go/internal/hashing"
	"github.com/lgbarn/bitboard-chess-go/internal/parser"
)

// fileResult holds what one input file produced, so output stays in
// argument order however the games finish.
type fileResult struct {
	out  bytes.Buffer
	log  bytes.Buffer
	game *game.Game
}

// runFiles plays every file as its own game, up to Engine.Workers at a
// time, and returns the first error any of them hit. Games ending in the
// same position are counted as duplicates. A nil classifier skips ECO tags.
func runFiles(cfg *config.Config, files []string, classifier *eco.ECOClassifier) error {
	results := make([]fileResult, len(files))
	detector := hashing.NewThreadSafeDuplicateDetector(false, 0)

	var g errgroup.Group
	g.SetLimit(max(1, cfg.Engine.Workers))
	for i, name := range files {
		i, name := i, name // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			fc := fileConfig(cfg, &results[i])
			return runFile(fc, &results[i], name, svgPathFor(cfg.Output.SVGFile, i, len(files)), detector, classifier)
		})
	}
	err := g.Wait()

	games := make([]*game.Game, len(files))
	for i, name := range files {
		games[i] = results[i].game
		if cfg.Verbosity > 0 && cfg.Output.Format == config.TextFormat {
			fmt.Fprintf(cfg.OutputFile, "== %s ==\n", name)
		}
		cfg.OutputFile.Write(results[i].out.Bytes()) //nolint:errcheck,gosec // G104: best effort like other output
		cfg.LogFile.Write(results[i].log.Bytes())    //nolint:errcheck,gosec // G104: best effort like other output
	}

	if xerr := exportGames(cfg, games...); err == nil {
		err = xerr
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg, detector, len(files))
	}
	return err
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, detector *hashing.ThreadSafeDuplicateDetector, total int) {
	fmt.Fprintf(cfg.LogFile, "%d game(s) played, %d reached an earlier final position.\n",
		total, detector.DuplicateCount())
}

// runFile plays the first game read from one file. A FEN tag in the file
// replaces the configured starting position and its other tags are kept
// on the game. The game is kept in r and exported with the others once
// every file is done.
func runFile(cfg *config.Config, r *fileResult, name, svgPath string,
	detector *hashing.ThreadSafeDuplicateDetector, classifier *eco.ECOClassifier) error {
	file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error opening file %s: %v\n", name, err)
		return err
	}
	text, err := parser.NewParser(file, cfg.LogFile).ParseGame()
	file.Close() //nolint:errcheck,gosec // G104: read-only file
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error in %s: %v\n", name, err)
		return err
	}
	if text == nil {
		text = &parser.GameText{}
	}
	if fen := text.FEN(); fen != "" {
		cfg.Engine.StartFEN = fen
	}

	s, err := newSession(cfg)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error in %s: %v\n", name, err)
		return err
	}
	s.svgPath = svgPath
	s.export = false
	s.classifier = classifier
	r.game = s.game
	for tag, value := range text.Tags {
		s.game.SetTag(tag, value)
	}

	err = s.playScript(text.MoveText())

	if text.Result != "" && text.Result != "*" && text.Result != s.game.Result() && cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "%s claims %s but the game stands at %s\n", name, text.Result, s.game.Result())
	}

	pos := s.game.Position()
	if orig, dup := detector.CheckAndAdd(name, &pos, len(s.game.Records())); dup && cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "%s ends in the same position as %s\n", name, orig.Name)
	}

	if ferr := s.finish(); err == nil {
		err = ferr
	}
	return err
}

// fileConfig copies cfg with its streams pointed at one file's buffers and
// its own engine settings.
func fileConfig(cfg *config.Config, r *fileResult) *config.Config {
	c := *cfg
	engine := *cfg.Engine
	c.Engine = &engine
	c.OutputFile = &r.out
	c.LogFile = &r.log
	return &c
}

// svgPathFor numbers the diagram of each file when more than one is played,
// so "final.svg" becomes "final_1.svg", "final_2.svg", ...
func svgPathFor(base string, index, count int) string {
	if base == "" || count == 1 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(base, ext), index+1, ext)
}
