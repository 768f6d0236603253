package engine

import (
	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/worker"
)

// LegalMovesParallel returns the same list as LegalMoves, testing each
// candidate's king safety on a worker pool. Every worker copies the position
// for itself, so nothing is shared mutably.
func LegalMovesParallel(p *Position, colour chess.Colour, workers int) MoveList {
	if workers <= 1 {
		return LegalMoves(p, colour)
	}

	base := *p
	cands := candidates(&base, colour)
	items := make([]worker.WorkItem, len(cands))
	for i, c := range cands {
		items[i] = worker.WorkItem{Move: c.move, Piece: c.piece, Index: i}
	}

	process := func(item worker.WorkItem) worker.ProcessResult {
		lm, err := tryCandidate(&base, colour, candidate{move: item.Move, piece: item.Piece})
		return worker.ProcessResult{
			Move:     item.Move,
			Piece:    item.Piece,
			Index:    item.Index,
			Legal:    err == nil,
			Captured: lm.Captured,
			Error:    err,
		}
	}

	pool := worker.NewPoolWithOptions(process,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(items)+1),
	)

	var captures, quiet MoveList
	for _, r := range pool.Run(items) {
		if !r.Legal {
			continue
		}
		lm := LegalMove{Move: r.Move, Piece: r.Piece, Captured: r.Captured}
		if lm.IsCapture() {
			captures = append(captures, lm)
		} else {
			quiet = append(quiet, lm)
		}
	}
	return orderMoves(captures, quiet)
}
