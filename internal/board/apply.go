package board

import (
	"fmt"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// Apply applies any event. On failure the receiver is returned unchanged
// together with an *errors.EventError.
func (b *Board) Apply(e Event) (*Board, error) {
	if e == nil {
		return b, fmt.Errorf("nil event: %w", errors.ErrConstruction)
	}
	return e.apply(b)
}

// ApplyPut places p on target. Setup phase only.
func (b *Board) ApplyPut(p chess.Piece, target chess.Square) (*Board, error) {
	e := Put{Piece: p, Target: target}
	if err := b.requireSetup(e); err != nil {
		return b, err
	}
	if !p.Valid() || !target.Valid() {
		return b, b.eventError(e, fmt.Errorf("put needs a complete piece and a square: %w", errors.ErrConstruction))
	}
	pos, err := b.position.Put(target, p)
	if err != nil {
		return b, b.eventError(e, err)
	}
	return b.with(pos, e), nil
}

// ApplyRemove takes the piece off source. Setup phase only.
func (b *Board) ApplyRemove(source chess.Square) (*Board, error) {
	e := Remove{Source: source}
	if err := b.requireSetup(e); err != nil {
		return b, err
	}
	pos, err := b.position.Remove(source)
	if err != nil {
		return b, b.eventError(e, err)
	}
	return b.with(pos, e), nil
}

// ApplyMove moves the piece on source to target. Play phase only; target
// must be one of the piece's move squares in the current position.
func (b *Board) ApplyMove(source, target chess.Square) (*Board, error) {
	e := Move{Source: source, Target: target}
	if err := b.requirePlay(e); err != nil {
		return b, err
	}
	v, err := b.View(source)
	if err != nil {
		return b, b.eventError(e, fmt.Errorf("no piece to move on %s: %w", source, errors.ErrIllegalEvent))
	}
	if !v.MoveTo.Contains(target) {
		return b, b.eventError(e, fmt.Errorf("%s cannot move from %s to %s: %w", v.Piece, source, target, errors.ErrIllegalEvent))
	}
	pos, err := b.position.Move(source, target)
	if err != nil {
		return b, b.eventError(e, err)
	}
	return b.with(pos, e), nil
}

// ApplyCapture moves the piece on source onto the enemy piece on target.
// Play phase only; target must be one of the piece's attacked squares.
func (b *Board) ApplyCapture(source, target chess.Square) (*Board, error) {
	return b.applyCapture(Capture{Source: source, Target: target})
}

// applyCapture fills in the captured piece. A caller-supplied Captured must
// match the piece actually on the target square.
func (b *Board) applyCapture(e Capture) (*Board, error) {
	if err := b.requirePlay(e); err != nil {
		return b, err
	}
	v, err := b.View(e.Source)
	if err != nil {
		return b, b.eventError(e, fmt.Errorf("no piece to capture with on %s: %w", e.Source, errors.ErrIllegalEvent))
	}
	if !v.Attacked.Contains(e.Target) {
		return b, b.eventError(e, fmt.Errorf("%s on %s does not attack %s: %w", v.Piece, e.Source, e.Target, errors.ErrIllegalEvent))
	}
	victim, _ := b.position.PieceAt(e.Target)
	if e.Captured != (chess.Piece{}) && e.Captured != victim {
		return b, b.eventError(e, fmt.Errorf("%s expected on %s, found %s: %w", e.Captured, e.Target, victim, errors.ErrIllegalEvent))
	}
	e.Captured = victim

	pos, err := b.position.Replace(e.Source, e.Target)
	if err != nil {
		return b, b.eventError(e, err)
	}
	return b.with(pos, e), nil
}

func (b *Board) requireSetup(e Event) error {
	if b.locked {
		return b.eventError(e, fmt.Errorf("%s is not allowed once the board is locked: %w", e.Kind(), errors.ErrIllegalPhase))
	}
	return nil
}

func (b *Board) requirePlay(e Event) error {
	if !b.locked {
		return b.eventError(e, fmt.Errorf("%s is not allowed before the board is locked: %w", e.Kind(), errors.ErrIllegalPhase))
	}
	return nil
}

func (b *Board) eventError(e Event, err error) error {
	return &errors.EventError{Err: err, Ply: len(b.events) + 1, Event: e}
}
