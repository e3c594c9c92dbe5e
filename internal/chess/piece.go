package chess

import (
	"fmt"

	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// Piece is an immutable chess piece. Identity is by value: two pieces with
// the same side, rank and home square are the same piece, so a position can
// never hold both.
type Piece struct {
	Side Side
	Rank Rank

	// Home is the square the piece started the game on. Pawns use it to
	// decide whether the double step is available.
	Home Square
}

// NewPiece validates its arguments and returns a piece.
func NewPiece(side Side, rank Rank, home Square) (Piece, error) {
	switch {
	case !side.Valid():
		return Piece{}, fmt.Errorf("piece side missing or invalid: %w", errors.ErrConstruction)
	case !rank.Valid():
		return Piece{}, fmt.Errorf("piece rank missing or invalid: %w", errors.ErrConstruction)
	case !home.Valid():
		return Piece{}, fmt.Errorf("piece home square missing or invalid: %w", errors.ErrConstruction)
	}
	return Piece{Side: side, Rank: rank, Home: home}, nil
}

// MustPiece is like NewPiece but panics on invalid arguments.
func MustPiece(side Side, rank Rank, home Square) Piece {
	p, err := NewPiece(side, rank, home)
	if err != nil {
		panic(err)
	}
	return p
}

// Valid reports whether every field of the piece is set.
func (p Piece) Valid() bool {
	return p.Side.Valid() && p.Rank.Valid() && p.Home.Valid()
}

// Points returns the material value of the piece.
func (p Piece) Points() int {
	return p.Rank.Points()
}

// String returns e.g. "White Pawn".
func (p Piece) String() string {
	return p.Side.String() + " " + p.Rank.String()
}

// Less orders pieces by side, then home square, then rank.
func (p Piece) Less(o Piece) bool {
	if p.Side != o.Side {
		return p.Side < o.Side
	}
	if p.Home != o.Home {
		return p.Home.Less(o.Home)
	}
	return p.Rank < o.Rank
}
