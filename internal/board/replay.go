package board

import (
	"fmt"

	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// Replay builds a board by applying events to a fresh board. The log does
// not record Lock, so the caller says whether the board it came from was
// locked. The board is locked just before the first Move or Capture, or
// after the last event when locked is set and the log holds setup events
// only.
func Replay(events []Event, locked bool) (*Board, error) {
	b := New()
	for _, e := range events {
		if !b.locked && (e.Kind() == MoveKind || e.Kind() == CaptureKind) {
			next, err := b.Lock()
			if err != nil {
				return b, err
			}
			b = next
		}
		next, err := b.Apply(e)
		if err != nil {
			return b, err
		}
		b = next
	}
	if locked && !b.locked {
		return b.Lock()
	}
	return b, nil
}

// Fork replays the first n events of b's log, keeping b's phase. It is how
// a caller steps back in history without losing the boards in between.
func (b *Board) Fork(n int) (*Board, error) {
	if n < 0 || n > len(b.events) {
		return b, fmt.Errorf("fork at ply %d of %d: %w", n, len(b.events), errors.ErrIllegalEvent)
	}
	forked, err := Replay(b.events[:n:n], b.locked)
	if err != nil {
		return b, err
	}
	return forked, nil
}
