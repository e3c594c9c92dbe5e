package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// OutputFormat selects how results are written.
type OutputFormat int

const (
	Text OutputFormat = iota // Human-readable text
	JSON                     // One JSON document per result
)

// String returns the name of the format.
func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// ParseOutputFormat parses "text" or "json".
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	}
	return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON output
	Format OutputFormat

	// ShowBoard prints the diagram after every applied event
	ShowBoard bool

	// Coordinates adds file letters and rank numbers around the diagram
	Coordinates bool

	// EchoEvents prints each applied event as it is accepted
	EchoEvents bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:      Text,
		Coordinates: true,
		EchoEvents:  true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}
