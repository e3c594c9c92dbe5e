// Package position provides a persistent bidirectional mapping between
// squares and pieces. Every edit returns a new Map and leaves the receiver
// untouched, so any number of historical positions can be held and compared
// without copying.
package position

import (
	"sort"

	"github.com/benbjohnson/immutable"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// Map is an immutable position. The zero value is an empty position.
//
// The two tries are always exact inverses: a square maps to a piece iff the
// piece maps back to that square.
type Map struct {
	bySquare *immutable.Map[chess.Square, chess.Piece]
	byPiece  *immutable.Map[chess.Piece, chess.Square]
}

var (
	emptySquares = immutable.NewMap[chess.Square, chess.Piece](squareHasher{})
	emptyPieces  = immutable.NewMap[chess.Piece, chess.Square](pieceHasher{})
)

// Empty returns a position with no pieces on it.
func Empty() Map {
	return Map{bySquare: emptySquares, byPiece: emptyPieces}
}

func (m Map) squares() *immutable.Map[chess.Square, chess.Piece] {
	if m.bySquare == nil {
		return emptySquares
	}
	return m.bySquare
}

func (m Map) pieces() *immutable.Map[chess.Piece, chess.Square] {
	if m.byPiece == nil {
		return emptyPieces
	}
	return m.byPiece
}

// PieceAt returns the piece on sq, if any.
func (m Map) PieceAt(sq chess.Square) (chess.Piece, bool) {
	return m.squares().Get(sq)
}

// SquareOf returns the square holding p, if p is on the board.
func (m Map) SquareOf(p chess.Piece) (chess.Square, bool) {
	return m.pieces().Get(p)
}

// IsOccupied reports whether a piece stands on sq.
func (m Map) IsOccupied(sq chess.Square) bool {
	_, ok := m.squares().Get(sq)
	return ok
}

// IsEmpty reports whether the position holds no pieces.
func (m Map) IsEmpty() bool {
	return m.squares().Len() == 0
}

// Len returns the number of pieces on the board.
func (m Map) Len() int {
	return m.squares().Len()
}

// PiecesOf returns the pieces of side, ordered by home square.
func (m Map) PiecesOf(side chess.Side) []chess.Piece {
	var pieces []chess.Piece
	itr := m.pieces().Iterator()
	for !itr.Done() {
		p, _, _ := itr.Next()
		if p.Side == side {
			pieces = append(pieces, p)
		}
	}
	sort.Slice(pieces, func(i, j int) bool { return pieces[i].Less(pieces[j]) })
	return pieces
}

// Occupied returns every occupied square in A_1..H_8 order.
func (m Map) Occupied() []chess.Square {
	squares := make([]chess.Square, 0, m.Len())
	itr := m.squares().Iterator()
	for !itr.Done() {
		sq, _, _ := itr.Next()
		squares = append(squares, sq)
	}
	sort.Slice(squares, func(i, j int) bool { return squares[i].Less(squares[j]) })
	return squares
}

// Put places p on target. It fails if target is occupied or p is already
// somewhere on the board.
func (m Map) Put(target chess.Square, p chess.Piece) (Map, error) {
	if m.IsOccupied(target) {
		return m, &errors.PlacementError{Kind: errors.OccupiedTarget, Op: "put", Square: target, Piece: p}
	}
	if _, ok := m.SquareOf(p); ok {
		return m, &errors.PlacementError{Kind: errors.DuplicatePiece, Op: "put", Square: target, Piece: p}
	}
	return Map{
		bySquare: m.squares().Set(target, p),
		byPiece:  m.pieces().Set(p, target),
	}, nil
}

// Remove takes the piece off source. It fails if source is empty.
func (m Map) Remove(source chess.Square) (Map, error) {
	p, ok := m.PieceAt(source)
	if !ok {
		return m, &errors.PlacementError{Kind: errors.EmptySource, Op: "remove", Square: source}
	}
	return Map{
		bySquare: m.squares().Delete(source),
		byPiece:  m.pieces().Delete(p),
	}, nil
}

// Move relocates the piece on source to the empty square target.
func (m Map) Move(source, target chess.Square) (Map, error) {
	p, ok := m.PieceAt(source)
	if !ok {
		return m, &errors.PlacementError{Kind: errors.EmptySource, Op: "move", Square: source}
	}
	if m.IsOccupied(target) {
		return m, &errors.PlacementError{Kind: errors.OccupiedTarget, Op: "move", Square: target, Piece: p}
	}
	return m.relocate(p, source, target), nil
}

// Replace relocates the piece on source onto the occupied square target,
// discarding the piece that stood there. Used for captures.
func (m Map) Replace(source, target chess.Square) (Map, error) {
	p, ok := m.PieceAt(source)
	if !ok {
		return m, &errors.PlacementError{Kind: errors.EmptySource, Op: "replace", Square: source}
	}
	victim, ok := m.PieceAt(target)
	if !ok {
		return m, &errors.PlacementError{Kind: errors.EmptyTarget, Op: "replace", Square: target, Piece: p}
	}
	next := m.relocate(p, source, target)
	if victim != p {
		next.byPiece = next.byPiece.Delete(victim)
	}
	return next, nil
}

// relocate assumes p stands on source.
func (m Map) relocate(p chess.Piece, source, target chess.Square) Map {
	return Map{
		bySquare: m.squares().Delete(source).Set(target, p),
		byPiece:  m.pieces().Set(p, target),
	}
}

// Equal reports whether both positions hold the same pieces on the same squares.
func (m Map) Equal(o Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	itr := m.squares().Iterator()
	for !itr.Done() {
		sq, p, _ := itr.Next()
		if q, ok := o.PieceAt(sq); !ok || q != p {
			return false
		}
	}
	return true
}

type squareHasher struct{}

func (squareHasher) Hash(sq chess.Square) uint32 {
	return uint32(sq.Index())
}

func (squareHasher) Equal(a, b chess.Square) bool {
	return a == b
}

type pieceHasher struct{}

func (pieceHasher) Hash(p chess.Piece) uint32 {
	return uint32(p.Home.Index())<<5 | uint32(p.Rank)<<2 | uint32(p.Side)
}

func (pieceHasher) Equal(a, b chess.Piece) bool {
	return a == b
}
