// Package output renders boards, events and views as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmodel-go/internal/board"
	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/config"
	"github.com/lgbarn/chessmodel-go/internal/session"
	"github.com/lgbarn/chessmodel-go/internal/view"
)

// Writer is the interface for writing script results to output.
// Implementations handle the different output formats.
type Writer interface {
	// WriteEvent reports an accepted event; b is the board after it.
	WriteEvent(b *board.Board, e board.Event) error

	// WriteBoard writes the current position.
	WriteBoard(b *board.Board) error

	// WriteLog writes the full event log.
	WriteLog(b *board.Board) error

	// WriteMoves writes the potential events of side.
	WriteMoves(side chess.Side, events []board.Event) error

	// WriteView writes the view of one piece.
	WriteView(v view.View) error

	// WriteRelations writes what the piece on one square attacks and
	// defends and what attacks and defends it.
	WriteRelations(b *board.Board, r board.Relations) error

	// WriteMaterial writes the material count of side.
	WriteMaterial(side chess.Side, points int) error

	// WriteSnapshot reports a saved, restored or dropped snapshot.
	WriteSnapshot(action string, s *session.Snapshot) error

	// WriteSnapshots lists snapshots and the number of distinct positions
	// among them.
	WriteSnapshots(snaps []*session.Snapshot, positions int) error

	// WriteError reports a failed script line.
	WriteError(line int, err error) error
}

// NewWriter returns the writer selected by cfg.
func NewWriter(w io.Writer, cfg *config.Config) Writer {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes human-readable text.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteEvent writes "<ply>. <event>" and, if enabled, the diagram.
func (tw *TextWriter) WriteEvent(b *board.Board, e board.Event) error {
	if tw.cfg.Output.EchoEvents {
		if _, err := fmt.Fprintf(tw.w, "%d. %s\n", b.Ply(), e); err != nil {
			return err
		}
	}
	if tw.cfg.Output.ShowBoard {
		return tw.WriteBoard(b)
	}
	return nil
}

// WriteBoard writes the diagram followed by the phase.
func (tw *TextWriter) WriteBoard(b *board.Board) error {
	phase := "setup"
	if b.Locked() {
		phase = "in play"
	}
	_, err := fmt.Fprintf(tw.w, "%s(%s, %d pieces, ply %d)\n",
		Diagram(b, tw.cfg.Output.Coordinates), phase, b.Position().Len(), b.Ply())
	return err
}

// WriteLog writes one event per line, numbered from 1. The rendered form
// of a put has no home square, so a put whose piece starts away from its
// home square gets a "home <square>" suffix, as accepted by scripts.
// Without it the piece would read back with a different identity.
func (tw *TextWriter) WriteLog(b *board.Board) error {
	for i, e := range b.Events() {
		if _, err := fmt.Fprintf(tw.w, "%d. %s\n", i+1, scriptLine(e)); err != nil {
			return err
		}
	}
	return nil
}

// WriteMoves writes a header and one event per line.
func (tw *TextWriter) WriteMoves(side chess.Side, events []board.Event) error {
	if _, err := fmt.Fprintf(tw.w, "%s: %d potential events\n", side, len(events)); err != nil {
		return err
	}
	for _, e := range events {
		if _, err := fmt.Fprintf(tw.w, "  %s\n", e); err != nil {
			return err
		}
	}
	return nil
}

// WriteView writes the four square sets of a view.
func (tw *TextWriter) WriteView(v view.View) error {
	_, err := fmt.Fprintf(tw.w, "%s on %s\n  moves:      %s\n  attacks:    %s\n  defends:    %s\n  threatens:  %s\n",
		v.Piece, v.Origin,
		joinSquares(v.MoveTo), joinSquares(v.Attacked), joinSquares(v.Defended), joinSquares(v.Threatened))
	return err
}

// WriteRelations writes the piece, then one line per relation.
func (tw *TextWriter) WriteRelations(b *board.Board, r board.Relations) error {
	_, err := fmt.Fprintf(tw.w, "%s on %s\n  attacks:    %s\n  defends:    %s\n  attackers:  %s\n  defenders:  %s\n",
		r.Piece, r.Square,
		joinPieces(b, r.Attacks), joinPieces(b, r.Defends), joinPieces(b, r.Attackers), joinPieces(b, r.Defenders))
	return err
}

// WriteMaterial writes "<Side> material: <points>".
func (tw *TextWriter) WriteMaterial(side chess.Side, points int) error {
	_, err := fmt.Fprintf(tw.w, "%s material: %d\n", side, points)
	return err
}

// WriteSnapshot writes the action, id and label.
func (tw *TextWriter) WriteSnapshot(action string, s *session.Snapshot) error {
	_, err := fmt.Fprintf(tw.w, "%s %s\n", action, snapshotLine(s))
	return err
}

// WriteSnapshots writes a count line and one indented line per snapshot.
func (tw *TextWriter) WriteSnapshots(snaps []*session.Snapshot, positions int) error {
	if _, err := fmt.Fprintf(tw.w, "%d snapshots, %d positions\n", len(snaps), positions); err != nil {
		return err
	}
	for _, s := range snaps {
		if _, err := fmt.Fprintf(tw.w, "  %s\n", snapshotLine(s)); err != nil {
			return err
		}
	}
	return nil
}

func snapshotLine(s *session.Snapshot) string {
	label := ""
	if s.Label != "" {
		label = fmt.Sprintf(" %q", s.Label)
	}
	dup := ""
	if s.DuplicateOf != "" {
		dup = ", same position as " + s.DuplicateOf
	}
	return fmt.Sprintf("%s%s (ply %d%s)", s.ID, label, s.Board.Ply(), dup)
}

func scriptLine(e board.Event) string {
	if put, ok := e.(board.Put); ok && put.Piece.Home != put.Target {
		return fmt.Sprintf("%s home %s", put, put.Piece.Home)
	}
	return e.String()
}

// WriteError writes the failure with its line number.
func (tw *TextWriter) WriteError(line int, err error) error {
	_, werr := fmt.Fprintf(tw.w, "line %d: %v\n", line, err)
	return werr
}

// Diagram renders the position with row 8 at the top. White pieces are
// uppercase letters, Black lowercase, empty squares '.'.
func Diagram(b *board.Board, coordinates bool) string {
	var sb strings.Builder
	for r := chess.Row8; r >= chess.Row1; r-- {
		if coordinates {
			sb.WriteString(r.String())
			sb.WriteByte(' ')
		}
		for c := chess.ColA; c <= chess.ColH; c++ {
			if c > chess.ColA {
				sb.WriteByte(' ')
			}
			p, ok := b.PieceAt(chess.Sq(c, r))
			if !ok {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(PieceLetter(p))
		}
		sb.WriteByte('\n')
	}
	if coordinates {
		sb.WriteString("  A B C D E F G H\n")
	}
	return sb.String()
}

// PieceLetter returns the diagram letter of p.
func PieceLetter(p chess.Piece) byte {
	letters := [...]byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	l := byte('?')
	if p.Rank.Valid() {
		l = letters[p.Rank]
	}
	if p.Side == chess.Black {
		l += 'a' - 'A'
	}
	return l
}

func joinPieces(b *board.Board, pieces []chess.Piece) string {
	if len(pieces) == 0 {
		return "-"
	}
	parts := make([]string, len(pieces))
	for i, p := range pieces {
		sq, _ := b.SquareOf(p)
		parts[i] = fmt.Sprintf("%s %s", p, sq)
	}
	return strings.Join(parts, ", ")
}

func joinSquares(squares view.Squares) string {
	if len(squares) == 0 {
		return "-"
	}
	parts := make([]string, len(squares))
	for i, sq := range squares {
		parts[i] = sq.String()
	}
	return strings.Join(parts, " ")
}
