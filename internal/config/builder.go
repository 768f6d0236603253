package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Engine.StartFEN = fen
	return b
}

// WithMoves sets a scripted move list.
func (b *ConfigBuilder) WithMoves(moves string) *ConfigBuilder {
	b.cfg.Engine.Moves = moves
	return b
}

// WithWorkers sets the number of enumeration workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Engine.Workers = n
	return b
}

// WithMaxPlies sets the ply limit.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Engine.MaxPlies = n
	return b
}

// WithECOFile enables opening classification from the given file.
func (b *ConfigBuilder) WithECOFile(filename string) *ConfigBuilder {
	b.cfg.ECOFile = filename
	b.cfg.AddECO = filename != ""
	return b
}

// WithBoard enables the text board after each move.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithLegalMoves enables listing legal moves.
func (b *ConfigBuilder) WithLegalMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowLegal = enabled
	return b
}

// WithTiming enables per-move timing.
func (b *ConfigBuilder) WithTiming(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowTiming = enabled
	return b
}

// WithSVG sets the SVG diagram file.
func (b *ConfigBuilder) WithSVG(filename string) *ConfigBuilder {
	b.cfg.Output.SVGFile = filename
	return b
}

// WithFormat sets how finished games are written.
func (b *ConfigBuilder) WithFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
