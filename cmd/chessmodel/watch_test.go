package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchScript_RerunsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.txt")
	require.NoError(t, os.WriteFile(path, []byte("standard\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchScript(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)), path, func() {
			runs.Add(1)
		})
	}()

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("standard\nshow\n"), 0o600))
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watchScript did not return after cancel")
	}
}

func TestWatchScript_MissingDirectory(t *testing.T) {
	err := watchScript(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)),
		filepath.Join(t.TempDir(), "missing", "game.txt"), func() {})
	assert.Error(t, err)
}
