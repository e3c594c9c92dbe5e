// Package config provides configuration for the chessmodel command.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// MaxWorkers bounds the worker count accepted for move generation.
const MaxWorkers = 64

// Config holds all program configuration.
type Config struct {
	// Output holds presentation settings.
	Output *OutputConfig

	// Workers is the number of goroutines used to generate moves.
	// 1 keeps move generation sequential.
	Workers int

	// Verbosity controls logging: 0 = warnings only, 1 = info, 2 = debug.
	Verbosity int

	// Watch re-runs the script whenever the script file changes.
	Watch bool

	// ScriptPath is the script to run; empty means standard input.
	ScriptPath string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Output:     NewOutputConfig(),
		Workers:    1,
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Workers < 1 || c.Workers > MaxWorkers {
		return fmt.Errorf("workers must be between 1 and %d, got %d: %w", MaxWorkers, c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity must be 0, 1 or 2, got %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Watch && c.ScriptPath == "" {
		return fmt.Errorf("watch mode needs a script file: %w", errors.ErrInvalidConfig)
	}
	if c.Output == nil {
		return fmt.Errorf("missing output settings: %w", errors.ErrInvalidConfig)
	}
	return c.Output.Validate()
}

// LogLevel maps Verbosity onto a slog level.
func (c *Config) LogLevel() slog.Level {
	switch {
	case c.Verbosity <= 0:
		return slog.LevelWarn
	case c.Verbosity == 1:
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

// NewLogger returns a text logger writing to LogFile at the configured level.
func (c *Config) NewLogger() *slog.Logger {
	w := c.LogFile
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel()}))
}
