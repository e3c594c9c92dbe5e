// runner.go - Script execution against a board
package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lgbarn/chessmodel-go/internal/board"
	"github.com/lgbarn/chessmodel-go/internal/config"
	"github.com/lgbarn/chessmodel-go/internal/errors"
	"github.com/lgbarn/chessmodel-go/internal/output"
	"github.com/lgbarn/chessmodel-go/internal/script"
	"github.com/lgbarn/chessmodel-go/internal/session"
)

// errScriptFailed is returned by Run when at least one line was rejected.
var errScriptFailed = errors.New("script had failing lines")

// Runner executes script commands. A rejected command leaves the board as it
// was and execution carries on with the next line.
type Runner struct {
	cfg   *config.Config
	log   *slog.Logger
	out   output.Writer
	store *session.Store
	board *board.Board

	commands int
	failures int
}

// NewRunner creates a runner starting from an empty board.
func NewRunner(cfg *config.Config, log *slog.Logger, store *session.Store) *Runner {
	return &Runner{
		cfg:   cfg,
		log:   log,
		out:   output.NewWriter(cfg.OutputFile, cfg),
		store: store,
		board: board.New(),
	}
}

// Board returns the current board.
func (r *Runner) Board() *board.Board {
	return r.board
}

// Run executes every command read from rd, continuing from the current
// board. Counters start again at zero.
func (r *Runner) Run(rd io.Reader, name string) error {
	r.log.Info("Running script", "script", name)
	r.commands, r.failures = 0, 0

	p := script.NewParser(rd, name)
	for {
		cmd, err := p.Next()
		if err == io.EOF {
			break
		}
		var pe *errors.ParseError
		if errors.As(err, &pe) {
			r.commands++
			r.fail(pe.Line, err)
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "reading %s", name)
		}

		r.commands++
		if err := r.Exec(cmd); err != nil {
			r.fail(cmd.Line, err)
		}
	}

	r.log.Info("Script finished", "script", name, "commands", r.commands, "failures", r.failures, "ply", r.board.Ply(),
		"snapshots", r.store.Len(), "duplicate_saves", r.store.Duplicates())
	if r.failures > 0 {
		return fmt.Errorf("%d of %d commands failed: %w", r.failures, r.commands, errScriptFailed)
	}
	return nil
}

// Exec executes a single command.
func (r *Runner) Exec(cmd script.Command) error {
	r.log.Debug("Executing", "line", cmd.Line, "command", cmd.Kind.String(), "text", cmd.Text)

	switch cmd.Kind {
	case script.ApplyEvent:
		next, err := r.board.Apply(cmd.Event)
		if err != nil {
			return err
		}
		r.board = next
		events := next.Events()
		return r.out.WriteEvent(next, events[len(events)-1])

	case script.Standard:
		r.board = board.NewStandard()
		return r.out.WriteBoard(r.board)

	case script.Lock:
		next, err := r.board.Lock()
		if err != nil {
			return err
		}
		r.board = next
		r.log.Info("Board locked", "pieces", next.Position().Len(), "ply", next.Ply())
		return nil

	case script.Show:
		return r.out.WriteBoard(r.board)

	case script.Log:
		return r.out.WriteLog(r.board)

	case script.Moves:
		var events []board.Event
		if r.cfg.Workers > 1 {
			events = r.board.PotentialEventsParallel(cmd.Side, r.cfg.Workers)
		} else {
			events = r.board.PotentialEvents(cmd.Side)
		}
		return r.out.WriteMoves(cmd.Side, events)

	case script.ViewSquare:
		v, err := r.board.View(cmd.Square)
		if err != nil {
			return err
		}
		return r.out.WriteView(v)

	case script.RelationsOf:
		rel, err := r.board.RelationsOf(cmd.Square)
		if err != nil {
			return err
		}
		return r.out.WriteRelations(r.board, rel)

	case script.Fork:
		forked, err := r.board.Fork(cmd.Ply)
		if err != nil {
			return err
		}
		r.log.Info("Board forked", "from_ply", r.board.Ply(), "ply", forked.Ply())
		r.board = forked
		return r.out.WriteBoard(r.board)

	case script.Material:
		return r.out.WriteMaterial(cmd.Side, r.board.Material(cmd.Side))

	case script.Save:
		snap := r.store.Save(cmd.Arg, r.board)
		r.log.Info("Snapshot saved", "id", snap.ID, "label", snap.Label, "ply", snap.Board.Ply())
		if snap.DuplicateOf != "" {
			r.log.Debug("Position already saved", "id", snap.ID, "duplicate_of", snap.DuplicateOf)
		}
		return r.out.WriteSnapshot("saved", snap)

	case script.Restore:
		snap, err := r.store.Get(cmd.Arg)
		if err != nil {
			return err
		}
		r.board = snap.Board
		return r.out.WriteSnapshot("restored", snap)

	case script.Snapshots:
		return r.out.WriteSnapshots(r.store.List(), r.store.Positions())

	case script.Drop:
		snap, err := r.store.Get(cmd.Arg)
		if err != nil {
			return err
		}
		if err := r.store.Delete(snap.ID); err != nil {
			return err
		}
		r.log.Info("Snapshot dropped", "id", snap.ID, "label", snap.Label)
		return r.out.WriteSnapshot("dropped", snap)
	}

	return fmt.Errorf("unsupported command %v: %w", cmd.Kind, errors.ErrParseFailure)
}

func (r *Runner) fail(line int, err error) {
	r.failures++
	r.log.Warn("Command rejected", "line", line, "error", err)
	if werr := r.out.WriteError(line, err); werr != nil {
		r.log.Error("Writing output failed", "error", werr)
	}
}
