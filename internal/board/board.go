// Package board provides the event-sourced chess board. A Board is an
// immutable value: every successful event returns a new Board and leaves the
// receiver, its position and its event log untouched.
//
// A board starts in the setup phase, where only Put and Remove events are
// accepted. Lock moves it, once and for good, into the play phase, where only
// Move and Capture events are accepted and each must be in the mover's
// computed view.
package board

import (
	"fmt"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/errors"
	"github.com/lgbarn/chessmodel-go/internal/position"
	"github.com/lgbarn/chessmodel-go/internal/view"
)

// Board is the combination of a position, the ordered log of events that
// produced it, and the phase flag.
type Board struct {
	position position.Map
	events   []Event
	locked   bool
}

// New returns an empty board in the setup phase.
func New() *Board {
	return &Board{position: position.Empty()}
}

// NewStandard returns the opening position, locked for play. The log holds
// the 32 put events that built it.
func NewStandard() *Board {
	b := New()
	for _, pl := range chess.StandardLayout() {
		next, err := b.ApplyPut(pl.Piece, pl.Square)
		if err != nil {
			panic(fmt.Sprintf("standard layout rejected: %v", err))
		}
		b = next
	}
	b, err := b.Lock()
	if err != nil {
		panic(fmt.Sprintf("standard layout could not be locked: %v", err))
	}
	return b
}

// Lock ends the setup phase. It fails on an empty board or one that is
// already locked.
func (b *Board) Lock() (*Board, error) {
	if b.locked {
		return b, fmt.Errorf("board is already locked: %w", errors.ErrIllegalPhase)
	}
	if b.position.IsEmpty() {
		return b, fmt.Errorf("cannot lock an empty board: %w", errors.ErrIllegalPhase)
	}
	return &Board{position: b.position, events: b.events, locked: true}, nil
}

// Locked reports whether the board is in the play phase.
func (b *Board) Locked() bool {
	return b.locked
}

// Position returns the current position. Map values are immutable, so the
// result may be kept and shared freely.
func (b *Board) Position() position.Map {
	return b.position
}

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq chess.Square) (chess.Piece, bool) {
	return b.position.PieceAt(sq)
}

// SquareOf returns the square holding p, if p is on the board.
func (b *Board) SquareOf(p chess.Piece) (chess.Square, bool) {
	return b.position.SquareOf(p)
}

// PiecesOf returns the pieces of side on the board, ordered by home square.
func (b *Board) PiecesOf(side chess.Side) []chess.Piece {
	return b.position.PiecesOf(side)
}

// Events returns a copy of the event log, oldest first.
func (b *Board) Events() []Event {
	out := make([]Event, len(b.events))
	copy(out, b.events)
	return out
}

// Ply returns the number of events applied so far.
func (b *Board) Ply() int {
	return len(b.events)
}

// View computes the view of the piece on sq.
func (b *Board) View(sq chess.Square) (view.View, error) {
	return view.Compute(b.position, sq)
}

// Equal reports whether both boards have the same position, log and phase.
func (b *Board) Equal(o *Board) bool {
	if b == o {
		return true
	}
	if b == nil || o == nil {
		return false
	}
	if b.locked != o.locked || len(b.events) != len(o.events) || !b.position.Equal(o.position) {
		return false
	}
	for i := range b.events {
		if b.events[i] != o.events[i] {
			return false
		}
	}
	return true
}

// with returns a new board holding pos and the log extended by e. The log
// is always copied so no two boards share a backing array.
func (b *Board) with(pos position.Map, e Event) *Board {
	events := make([]Event, len(b.events), len(b.events)+1)
	copy(events, b.events)
	return &Board{
		position: pos,
		events:   append(events, e),
		locked:   b.locked,
	}
}
