package config

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	chesserrors "github.com/lgbarn/chessmodel-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != Text {
		t.Errorf("Format = %v, want %v", cfg.Format, Text)
	}
	if cfg.ShowBoard {
		t.Error("ShowBoard should be false by default")
	}
	if !cfg.Coordinates {
		t.Error("Coordinates should be true by default")
	}
	if !cfg.EchoEvents {
		t.Error("EchoEvents should be true by default")
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", Text, false},
		{"text", Text, false},
		{"JSON", JSON, false},
		{"yaml", Text, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("error %v should wrap ErrInvalidConfig", err)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestConfig_Validate checks each rejected setting
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"too many workers", func(c *Config) { c.Workers = MaxWorkers + 1 }, true},
		{"max workers", func(c *Config) { c.Workers = MaxWorkers }, false},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"verbosity 3", func(c *Config) { c.Verbosity = 3 }, true},
		{"watch without script", func(c *Config) { c.Watch = true }, true},
		{"watch with script", func(c *Config) { c.Watch = true; c.ScriptPath = "game.txt" }, false},
		{"missing output", func(c *Config) { c.Output = nil }, true},
		{"bad format", func(c *Config) { c.Output.Format = OutputFormat(7) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error %v should wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
	}
	for _, tt := range tests {
		cfg := NewConfig()
		cfg.Verbosity = tt.verbosity
		if got := cfg.LogLevel(); got != tt.want {
			t.Errorf("LogLevel() with verbosity %d = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

// TestConfig_NewLogger verifies the logger honours the level and writer
func TestConfig_NewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().WithLog(buf).WithVerbosity(0).Build()

	log := cfg.NewLogger()
	log.Info("hidden")
	log.Warn("shown", "square", "A_1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at verbosity 0: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "square=A_1") {
		t.Errorf("warning missing from log: %q", out)
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithOutputFormat(JSON).
		WithBoardDiagrams(true).
		WithCoordinates(false).
		WithEventEcho(false).
		WithWorkers(4).
		WithScript("game.txt", true).
		WithOutput(out).
		Build()

	if cfg.Output.Format != JSON {
		t.Errorf("Format = %v, want JSON", cfg.Output.Format)
	}
	if !cfg.Output.ShowBoard {
		t.Error("ShowBoard should be true")
	}
	if cfg.Output.Coordinates {
		t.Error("Coordinates should be false")
	}
	if cfg.Output.EchoEvents {
		t.Error("EchoEvents should be false")
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.ScriptPath != "game.txt" || !cfg.Watch {
		t.Errorf("script = %q watch = %v, want game.txt true", cfg.ScriptPath, cfg.Watch)
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
