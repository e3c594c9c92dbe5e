// Package view computes, for one piece in one position, the squares it can
// move to, the enemy pieces it attacks, the friendly pieces it defends and the
// squares it threatens.
package view

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// Position is the read-only board a view is computed against.
type Position interface {
	PieceAt(sq chess.Square) (chess.Piece, bool)
	SquareOf(p chess.Piece) (chess.Square, bool)
	PiecesOf(side chess.Side) []chess.Piece
}

// Squares is a set of squares kept sorted from A_1 to H_8.
type Squares []chess.Square

// Contains reports whether sq is in the set.
func (s Squares) Contains(sq chess.Square) bool {
	for _, x := range s {
		if x == sq {
			return true
		}
	}
	return false
}

func (s Squares) sorted() Squares {
	sort.Slice(s, func(i, j int) bool { return s[i].Less(s[j]) })
	return s
}

// View is the computed reach of one piece.
type View struct {
	Origin chess.Square
	Piece  chess.Piece

	// MoveTo holds empty squares the piece may step onto.
	MoveTo Squares
	// Attacked holds squares of enemy pieces the piece may capture.
	Attacked Squares
	// Defended holds squares of friendly pieces the piece shields.
	Defended Squares
	// Threatened holds squares an enemy king may not step onto because of
	// this piece. For pawns these are the forward diagonals regardless of
	// occupancy; for every other piece MoveTo plus Attacked.
	Threatened Squares
}

// Compute returns the view of the piece standing on origin.
func Compute(pos Position, origin chess.Square) (View, error) {
	p, ok := pos.PieceAt(origin)
	if !ok {
		return View{}, fmt.Errorf("no piece on %s: %w", origin, errors.ErrConstruction)
	}
	return compute(pos, origin, p, true)
}

// ForPiece returns the view of p, which must be on the board.
func ForPiece(pos Position, p chess.Piece) (View, error) {
	sq, ok := pos.SquareOf(p)
	if !ok {
		return View{}, fmt.Errorf("%s is not on the board: %w", p, errors.ErrConstruction)
	}
	return compute(pos, sq, p, true)
}

// compute dispatches on the rank's pattern. With filterKing unset the king
// keeps every single-step square, which is what opponents need when testing
// whether a square is threatened.
func compute(pos Position, origin chess.Square, p chess.Piece, filterKing bool) (View, error) {
	if !p.Valid() || !origin.Valid() {
		return View{}, fmt.Errorf("invalid view origin %s for %s: %w", origin, p, errors.ErrConstruction)
	}
	pattern, ok := PatternFor(p.Rank)
	if !ok {
		return View{}, fmt.Errorf("no movement pattern for %s: %w", p.Rank, errors.ErrConstruction)
	}

	var v View
	switch pattern.Kind {
	case PawnMoves:
		v = pawnView(pos, origin, p)
	case KingMoves:
		v = castRays(pos, origin, p, pattern)
		if filterKing {
			v.MoveTo = excludeThreatened(pos, p.Side, v.MoveTo)
		}
	default:
		v = castRays(pos, origin, p, pattern)
	}

	v.MoveTo = v.MoveTo.sorted()
	v.Attacked = v.Attacked.sorted()
	v.Defended = v.Defended.sorted()
	v.Threatened = v.Threatened.sorted()
	return v, nil
}

// Threatens reports whether any piece of side threatens sq.
func Threatens(pos Position, side chess.Side, sq chess.Square) bool {
	for _, p := range pos.PiecesOf(side) {
		origin, ok := pos.SquareOf(p)
		if !ok {
			continue
		}
		v, err := compute(pos, origin, p, false)
		if err != nil {
			continue
		}
		if v.Threatened.Contains(sq) {
			return true
		}
	}
	return false
}
