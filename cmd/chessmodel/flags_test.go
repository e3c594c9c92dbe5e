package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chessmodel-go/internal/config"
	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// setFlags sets command-line flags for one test and restores them after.
func setFlags(t *testing.T, values map[string]string) {
	t.Helper()
	for name, value := range values {
		f := flag.Lookup(name)
		require.NotNil(t, f, "flag -%s", name)
		old := f.Value.String()
		require.NoError(t, flag.Set(name, value))
		t.Cleanup(func() { _ = flag.Set(name, old) })
	}
}

func TestBuildConfig_Defaults(t *testing.T) {
	cfg, err := buildConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.Text, cfg.Output.Format)
	assert.True(t, cfg.Output.Coordinates)
	assert.True(t, cfg.Output.EchoEvents)
	assert.False(t, cfg.Output.ShowBoard)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, 1, cfg.Verbosity)
}

func TestBuildConfig_FromFlags(t *testing.T) {
	setFlags(t, map[string]string{
		"format":   "json",
		"b":        "true",
		"nocoords": "true",
		"q":        "true",
		"workers":  "4",
		"v":        "2",
		"f":        "game.txt",
		"watch":    "true",
	})

	cfg, err := buildConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.JSON, cfg.Output.Format)
	assert.True(t, cfg.Output.ShowBoard)
	assert.False(t, cfg.Output.Coordinates)
	assert.False(t, cfg.Output.EchoEvents)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 2, cfg.Verbosity)
	assert.Equal(t, "game.txt", cfg.ScriptPath)
	assert.True(t, cfg.Watch)
}

func TestBuildConfig_JSONShorthand(t *testing.T) {
	setFlags(t, map[string]string{"J": "true"})

	cfg, err := buildConfig()
	require.NoError(t, err)
	assert.Equal(t, config.JSON, cfg.Output.Format)
}

func TestBuildConfig_UnknownFormat(t *testing.T) {
	setFlags(t, map[string]string{"format": "yaml"})

	_, err := buildConfig()
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}
