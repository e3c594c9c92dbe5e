package board

import (
	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/view"
	"github.com/lgbarn/chessmodel-go/internal/worker"
)

// PotentialEvents returns one Move per reachable square and one Capture per
// attacked square, over every piece of side. Pieces are visited in home
// square order and each piece's squares in board order, so the result is
// deterministic. Consumers should still treat it as a set.
func (b *Board) PotentialEvents(side chess.Side) []Event {
	var events []Event
	for _, p := range b.PiecesOf(side) {
		events = append(events, b.eventsFor(p)...)
	}
	return events
}

// PotentialEventsParallel is PotentialEvents with the per-piece views
// computed on n workers. Each view only reads the immutable position, and
// results are merged back in piece order, so the output is identical.
func (b *Board) PotentialEventsParallel(side chess.Side, n int) []Event {
	perPiece, _ := worker.Map(b.PiecesOf(side), n, func(p chess.Piece) ([]Event, error) {
		return b.eventsFor(p), nil
	})
	var events []Event
	for _, evs := range perPiece {
		events = append(events, evs...)
	}
	return events
}

func (b *Board) eventsFor(p chess.Piece) []Event {
	v, err := view.ForPiece(b.position, p)
	if err != nil {
		return nil
	}
	events := make([]Event, 0, len(v.MoveTo)+len(v.Attacked))
	for _, sq := range v.MoveTo {
		events = append(events, Move{Source: v.Origin, Target: sq})
	}
	for _, sq := range v.Attacked {
		victim, _ := b.position.PieceAt(sq)
		events = append(events, Capture{Source: v.Origin, Target: sq, Captured: victim})
	}
	return events
}
