// Package config provides configuration for bitchess.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=results, 2=running commentary

	// ECO
	AddECO  bool   // classify each finished game
	ECOFile string // opening lines used for classification

	// Grouped settings
	Output *OutputConfig
	Engine *EngineConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Engine:     NewEngineConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer that boards, move lists and results go to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer that diagnostics go to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every group of settings.
func (c *Config) Validate() error {
	if c.AddECO && c.ECOFile == "" {
		return fmt.Errorf("ECO classification needs an ECO file: %w", errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Engine.Validate()
}
