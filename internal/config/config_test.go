package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.ShowBoard {
		t.Error("ShowBoard should be false by default")
	}
	if cfg.ShowLegal {
		t.Error("ShowLegal should be false by default")
	}
	if cfg.ShowTiming {
		t.Error("ShowTiming should be false by default")
	}
	if !cfg.Coordinates {
		t.Error("Coordinates should be true by default")
	}
	if cfg.SVGFile != "" {
		t.Errorf("SVGFile = %q, want empty", cfg.SVGFile)
	}
	if cfg.SquareSize != 45 {
		t.Errorf("SquareSize = %d, want 45", cfg.SquareSize)
	}
	if cfg.Format != TextFormat {
		t.Errorf("Format = %d, want TextFormat", cfg.Format)
	}
	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
}

// TestParseOutputFormat verifies format names
func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name   string
		want   OutputFormat
		wantOK bool
	}{
		{"", TextFormat, true},
		{"text", TextFormat, true},
		{"pgn", PGNFormat, true},
		{"json", JSONFormat, true},
		{"san", TextFormat, false},
	}

	for _, tt := range tests {
		got, ok := ParseOutputFormat(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseOutputFormat(%q) = %d, %v; want %d, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

// TestEngineConfig_Defaults verifies EngineConfig has sensible defaults
func TestEngineConfig_Defaults(t *testing.T) {
	cfg := NewEngineConfig()

	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.MaxPlies != 0 {
		t.Errorf("MaxPlies = %d, want 0", cfg.MaxPlies)
	}
	if !cfg.StopOnError {
		t.Error("StopOnError should be true by default")
	}
}

// TestEngineConfig_Validate verifies engine config validation
func TestEngineConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     EngineConfig
		wantErr bool
	}{
		{
			name:    "empty config is valid",
			cfg:     EngineConfig{},
			wantErr: false,
		},
		{
			name:    "many workers",
			cfg:     EngineConfig{Workers: MaxWorkers},
			wantErr: false,
		},
		{
			name:    "too many workers",
			cfg:     EngineConfig{Workers: MaxWorkers + 1},
			wantErr: true,
		},
		{
			name:    "negative workers",
			cfg:     EngineConfig{Workers: -1},
			wantErr: true,
		},
		{
			name:    "negative ply limit",
			cfg:     EngineConfig{MaxPlies: -5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestOutputConfig_Validate verifies the SVG square size limits
func TestOutputConfig_Validate(t *testing.T) {
	tests := []struct {
		size    int
		wantErr bool
	}{
		{MinSquareSize, false},
		{45, false},
		{MaxSquareSize, false},
		{MinSquareSize - 1, true},
		{MaxSquareSize + 1, true},
		{0, true},
	}

	cfg := NewOutputConfig()
	cfg.MaxLineLength = -1
	if err := cfg.Validate(); !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() with negative line length error = %v, want ErrInvalidConfig", err)
	}

	for _, tt := range tests {
		cfg := NewOutputConfig()
		cfg.SquareSize = tt.size
		if err := cfg.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("Validate() with size %d error = %v, wantErr %v", tt.size, err, tt.wantErr)
		}
	}
}

// TestConfig_Defaults verifies that Config carries its sub-configs
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Output == nil || cfg.Engine == nil {
		t.Fatal("sub-configs should be allocated")
	}
	if cfg.OutputFile != os.Stdout {
		t.Error("OutputFile should default to stdout")
	}
	if cfg.LogFile != os.Stderr {
		t.Error("LogFile should default to stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(log)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != log {
		t.Error("SetLog did not set LogFile")
	}
}

// TestConfig_ValidatePropagates verifies sub-config errors surface
func TestConfig_ValidatePropagates(t *testing.T) {
	cfg := NewConfig()
	cfg.Engine.Workers = -3
	if err := cfg.Validate(); !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
	}

	cfg = NewConfig()
	cfg.Output.SquareSize = 1
	if err := cfg.Validate(); !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
	}

	cfg = NewConfig()
	cfg.AddECO = true
	if err := cfg.Validate(); !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() without ECO file error = %v, want ErrInvalidConfig", err)
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithMoves("e1e2 e8e7").
		WithWorkers(4).
		WithMaxPlies(10).
		WithBoard(true).
		WithLegalMoves(true).
		WithTiming(true).
		WithSVG("final.svg").
		WithFormat(JSONFormat).
		WithECOFile("eco.txt").
		WithOutput(out).
		WithLog(out).
		WithVerbosity(2).
		Build()

	if cfg.Engine.StartFEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.Engine.StartFEN)
	}
	if cfg.Engine.Moves != "e1e2 e8e7" {
		t.Errorf("Moves = %q", cfg.Engine.Moves)
	}
	if cfg.Engine.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Engine.Workers)
	}
	if cfg.Engine.MaxPlies != 10 {
		t.Errorf("MaxPlies = %d, want 10", cfg.Engine.MaxPlies)
	}
	if !cfg.AddECO || cfg.ECOFile != "eco.txt" {
		t.Errorf("AddECO = %v, ECOFile = %q", cfg.AddECO, cfg.ECOFile)
	}
	if !cfg.Output.ShowBoard || !cfg.Output.ShowLegal || !cfg.Output.ShowTiming {
		t.Error("display options should be enabled")
	}
	if cfg.Output.SVGFile != "final.svg" {
		t.Errorf("SVGFile = %q, want final.svg", cfg.Output.SVGFile)
	}
	if cfg.Output.Format != JSONFormat {
		t.Errorf("Format = %d, want JSONFormat", cfg.Output.Format)
	}
	if cfg.OutputFile != out || cfg.LogFile != out {
		t.Error("writers not set")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}
