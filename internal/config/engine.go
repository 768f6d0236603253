package config

import (
	"fmt"

	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// MaxWorkers caps the number of goroutines testing candidate moves.
const MaxWorkers = 64

// EngineConfig holds settings for how moves are read and validated.
type EngineConfig struct {
	// StartFEN sets up the initial position; empty means the standard one
	StartFEN string

	// Moves is a whitespace separated move list played instead of reading input
	Moves string

	// Workers is the number of goroutines used to enumerate legal moves;
	// 0 or 1 enumerates sequentially
	Workers int

	// MaxPlies stops the game after this many plies (0 = no limit)
	MaxPlies int

	// StopOnError ends a scripted move list at the first rejected move
	// instead of skipping it
	StopOnError bool
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{
		Workers:     1,
		StopOnError: true,
	}
}

// Validate checks that the engine configuration is valid.
func (e *EngineConfig) Validate() error {
	if e.Workers < 0 || e.Workers > MaxWorkers {
		return fmt.Errorf("workers %d outside 0..%d: %w", e.Workers, MaxWorkers, errors.ErrInvalidConfig)
	}
	if e.MaxPlies < 0 {
		return fmt.Errorf("negative ply limit %d: %w", e.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
