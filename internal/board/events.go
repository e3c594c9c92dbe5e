package board

import (
	"fmt"

	"github.com/lgbarn/chessmodel-go/internal/chess"
)

// EventKind identifies the variant of an Event.
type EventKind int

const (
	PutKind EventKind = iota
	RemoveKind
	MoveKind
	CaptureKind
)

// String returns the lowercase name of the kind.
func (k EventKind) String() string {
	switch k {
	case PutKind:
		return "put"
	case RemoveKind:
		return "remove"
	case MoveKind:
		return "move"
	case CaptureKind:
		return "capture"
	}
	return "unknown"
}

// Event is one immutable board transition. The concrete types are Put,
// Remove, Move and Capture; String renders the fixed text grammar used in
// logs and scripts.
type Event interface {
	fmt.Stringer
	Kind() EventKind
	apply(b *Board) (*Board, error)
}

// Put places a piece on an empty square during setup.
type Put struct {
	Piece  chess.Piece
	Target chess.Square
}

// Remove takes a piece off the board during setup.
type Remove struct {
	Source chess.Square
}

// Move relocates a piece to an empty square during play.
type Move struct {
	Source chess.Square
	Target chess.Square
}

// Capture relocates a piece onto an enemy piece during play. Captured is the
// piece taken; it is filled in by the board when the event is applied.
type Capture struct {
	Source   chess.Square
	Target   chess.Square
	Captured chess.Piece
}

func (Put) Kind() EventKind     { return PutKind }
func (Remove) Kind() EventKind  { return RemoveKind }
func (Move) Kind() EventKind    { return MoveKind }
func (Capture) Kind() EventKind { return CaptureKind }

// String renders "put <side letter> <rank> <square>", e.g. "put b Queen A_1".
func (e Put) String() string {
	return fmt.Sprintf("put %s %s %s", e.Piece.Side.Letter(), e.Piece.Rank, e.Target)
}

// String renders "remove <square>".
func (e Remove) String() string {
	return "remove " + e.Source.String()
}

// String renders "<source> --> <target>".
func (e Move) String() string {
	return e.Source.String() + " --> " + e.Target.String()
}

// String renders "<source> x <target>".
func (e Capture) String() string {
	return e.Source.String() + " x " + e.Target.String()
}

func (e Put) apply(b *Board) (*Board, error)     { return b.ApplyPut(e.Piece, e.Target) }
func (e Remove) apply(b *Board) (*Board, error)  { return b.ApplyRemove(e.Source) }
func (e Move) apply(b *Board) (*Board, error)    { return b.ApplyMove(e.Source, e.Target) }
func (e Capture) apply(b *Board) (*Board, error) { return b.applyCapture(e) }
