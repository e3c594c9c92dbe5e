// chessmodel runs board scripts: it sets up positions, plays moves and
// captures, and reports piece views and potential events.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/lgbarn/chessmodel-go/internal/config"
	"github.com/lgbarn/chessmodel-go/internal/errors"
	"github.com/lgbarn/chessmodel-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmodel version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log := cfg.NewLogger()
	store := session.NewStore()

	if cfg.Watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := watchScript(ctx, log, cfg.ScriptPath, func() {
			if err := runScript(cfg, log, store); err != nil && !errors.Is(err, errScriptFailed) {
				log.Error("Script run failed", "error", err)
			}
		})
		if err != nil {
			log.Error("Watching script failed", "path", cfg.ScriptPath, "error", err)
			os.Exit(1)
		}
		return
	}

	if err := runScript(cfg, log, store); err != nil {
		if !errors.Is(err, errScriptFailed) {
			log.Error("Script run failed", "error", err)
		}
		os.Exit(1)
	}
}

// runScript runs the configured script from a fresh board. Snapshots in
// store survive between runs.
func runScript(cfg *config.Config, log *slog.Logger, store *session.Store) error {
	var in io.Reader = os.Stdin
	name := "<stdin>"
	if cfg.ScriptPath != "" {
		file, err := os.Open(cfg.ScriptPath)
		if err != nil {
			return errors.Wrap(err, "opening script")
		}
		defer file.Close()
		in = file
		name = cfg.ScriptPath
	}
	return NewRunner(cfg, log, store).Run(in, name)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}
