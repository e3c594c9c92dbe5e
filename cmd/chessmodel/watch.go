// watch.go - Re-running a script when it changes on disk
package main

import (
	"context"
	"log/slog"
	"math"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const scriptReloadDelay = 200 * time.Millisecond

// watchScript calls run once, then again each time path is written or
// recreated, until ctx is done. Bursts of events are coalesced.
func watchScript(ctx context.Context, log *slog.Logger, path string, run func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Editors often replace the file, so watch the directory instead.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return err
	}
	absPath := filepath.Join(dir, filepath.Base(path))

	run()

	timer := time.NewTimer(math.MaxInt64)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if (event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) && event.Name == absPath {
				timer.Reset(scriptReloadDelay)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher error", "path", path, "error", err)

		case <-timer.C:
			log.Info("Script changed, re-running", "path", path)
			run()
		}
	}
}
