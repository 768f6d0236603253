// session.go - Playing moves against one game and reporting the results
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/config"
	"github.com/lgbarn/bitboard-chess-go/internal/eco"
	"github.com/lgbarn/bitboard-chess-go/internal/engine"
	"github.com/lgbarn/bitboard-chess-go/internal/game"
	"github.com/lgbarn/bitboard-chess-go/internal/output"
	"github.com/lgbarn/bitboard-chess-go/internal/render"
)

// Session drives a single game from either a move list or interactive input.
type Session struct {
	cfg     *config.Config
	game    *game.Game
	svgPath string
	export  bool // write the game in the configured format on finish

	classifier *eco.ECOClassifier // tags the opening on finish when set

	lastMove chess.Move
	moved    bool
}

// newSession sets up a game from the configured starting position.
func newSession(cfg *config.Config) (*Session, error) {
	fen := cfg.Engine.StartFEN
	if fen == "" {
		fen = engine.InitialFEN
	}
	g, err := game.NewFromFEN(fen)
	if err != nil {
		return nil, err
	}
	g.Workers = cfg.Engine.Workers

	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "Game %s from %s\n", g.ID, fen)
	}
	return &Session{cfg: cfg, game: g, svgPath: cfg.Output.SVGFile, export: true}, nil
}

// commentary reports whether moves are described as they are played.
func (s *Session) commentary() bool {
	return s.cfg.Verbosity > 0 && s.cfg.Output.Format == config.TextFormat
}

// done reports whether no more moves should be read.
func (s *Session) done() bool {
	if s.game.IsOver() {
		return true
	}
	limit := s.cfg.Engine.MaxPlies
	return limit > 0 && len(s.game.Records()) >= limit
}

// playScript plays a whitespace separated move list. With StopOnError the
// first rejected move ends the list and its error is returned; otherwise
// rejected moves are reported and skipped.
func (s *Session) playScript(moves string) error {
	var firstErr error
	for _, text := range strings.Fields(moves) {
		if s.done() {
			break
		}
		if err := s.play(text); err != nil {
			if s.cfg.Engine.StopOnError {
				return err
			}
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// runREPL reads moves from r one line at a time. A rejected move is
// reported and the same side is prompted again.
func (s *Session) runREPL(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	s.prompt()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
		case "quit", "exit":
			return nil
		case "board":
			s.printBoard()
		case "legal":
			s.printLegal()
		case "fen":
			s.printFEN()
		default:
			for _, text := range strings.Fields(line) {
				if err := s.play(text); err != nil || s.done() {
					break
				}
			}
		}
		if s.done() {
			return nil
		}
		s.prompt()
	}
	return scanner.Err()
}

func (s *Session) prompt() {
	if s.commentary() {
		fmt.Fprintf(s.cfg.OutputFile, "%s to move: ", s.game.Position().SideToMove)
	}
}

// play makes one move and reports it. Rejections are logged and returned.
func (s *Session) play(text string) error {
	rec, err := s.game.Play(text)
	if err != nil {
		if s.cfg.Verbosity > 0 {
			fmt.Fprintf(s.cfg.LogFile, "Rejected: %v\n", err)
		}
		return err
	}
	s.lastMove, s.moved = rec.Move, true
	s.report(rec)
	return nil
}

// report prints a played move and whatever the output options ask for.
// Nothing is printed when the game is exported as PGN or JSON.
func (s *Session) report(rec game.Record) {
	if s.cfg.Output.Format != config.TextFormat {
		return
	}
	out := s.cfg.OutputFile

	if s.cfg.Verbosity > 0 {
		fmt.Fprintf(out, "%d. %s: %s\n", rec.Ply, rec.Move, rec.Outcome)
	}
	if s.cfg.Output.ShowTiming {
		fmt.Fprintf(out, "   validated in %s\n", rec.Elapsed)
	}

	switch rec.Status {
	case chess.Check:
		fmt.Fprintf(out, "Check.\n")
	case chess.Checkmate:
		winner := s.game.Position().SideToMove.Opposite()
		fmt.Fprintf(out, "Checkmate. %s wins %s\n", winner, s.game.Result())
	case chess.Stalemate:
		fmt.Fprintf(out, "Stalemate. %s\n", s.game.Result())
	}

	if s.cfg.Output.ShowBoard {
		s.printBoard()
	}
	if s.cfg.Output.ShowFEN {
		s.printFEN()
	}
	if s.cfg.Output.ShowLegal && !rec.Status.IsTerminal() {
		s.printLegal()
	}
}

func (s *Session) printBoard() {
	pos := s.game.Position()
	fmt.Fprint(s.cfg.OutputFile, render.Text(&pos))
}

func (s *Session) printFEN() {
	pos := s.game.Position()
	fmt.Fprintln(s.cfg.OutputFile, engine.PositionToFEN(&pos))
}

func (s *Session) printLegal() {
	moves := s.game.LegalMoves()
	names := make([]string, len(moves))
	for i, lm := range moves {
		names[i] = lm.Move.String()
	}
	fmt.Fprintf(s.cfg.OutputFile, "%d legal moves: %s\n", len(moves), strings.Join(names, " "))
}

// finish writes the closing summary or the exported game, then the SVG
// diagram if one was requested.
func (s *Session) finish() error {
	s.classify()
	if s.commentary() {
		fmt.Fprintf(s.cfg.OutputFile, "Result: %s after %d plies\n", s.game.Result(), len(s.game.Records()))
	}
	if s.export {
		if err := exportGames(s.cfg, s.game); err != nil {
			return err
		}
	}
	if s.cfg.Verbosity > 1 {
		fmt.Fprintln(s.cfg.LogFile, s.game)
	}
	if s.svgPath == "" {
		return nil
	}
	return s.writeSVG(s.svgPath)
}

// classify adds ECO tags to the game and names the opening.
func (s *Session) classify() {
	if s.classifier == nil {
		return
	}
	match := s.classifier.ClassifyGame(s.game)
	if match == nil {
		if s.cfg.Verbosity > 1 {
			fmt.Fprintf(s.cfg.LogFile, "No ECO match for game %s\n", s.game.ID)
		}
		return
	}
	s.classifier.AddECOTags(s.game)
	if s.commentary() {
		fmt.Fprintf(s.cfg.OutputFile, "Opening: %s %s\n", match.ECOCode, match.Name())
	}
}

// exportGames writes games in the configured format. It does nothing for
// TextFormat.
func exportGames(cfg *config.Config, games ...*game.Game) error {
	w := output.NewGameWriter(cfg.OutputFile, cfg)
	if w == nil {
		return nil
	}
	for _, g := range games {
		if g == nil {
			continue
		}
		if err := w.WriteGame(g); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error writing game %s: %v\n", g.ID, err)
			return err
		}
	}
	return w.Close()
}

// writeSVG draws the current position, highlighting the last move.
func (s *Session) writeSVG(path string) error {
	file, err := os.Create(path) //nolint:gosec // G304: CLI tool writes user-specified files
	if err != nil {
		fmt.Fprintf(s.cfg.LogFile, "Error creating SVG file %s: %v\n", path, err)
		return err
	}

	opts := render.SVGOptions{
		SquareSize:  s.cfg.Output.SquareSize,
		Coordinates: s.cfg.Output.Coordinates,
		Title:       fmt.Sprintf("%s (%s)", s.game.Result(), s.game.Status()),
	}
	if s.moved {
		opts.Highlight = []chess.Square{s.lastMove.From, s.lastMove.To}
	}

	pos := s.game.Position()
	if err := render.WriteSVG(file, &pos, opts); err != nil {
		file.Close() //nolint:errcheck,gosec // G104: already failing
		fmt.Fprintf(s.cfg.LogFile, "Error writing SVG file %s: %v\n", path, err)
		return err
	}
	return file.Close()
}
