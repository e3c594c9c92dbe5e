package board

import (
	"fmt"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/errors"
	"github.com/lgbarn/chessmodel-go/internal/view"
)

// Relations collects, for the piece on one square, the pieces it attacks
// and defends and the pieces attacking and defending it.
type Relations struct {
	Piece     chess.Piece
	Square    chess.Square
	Attacks   []chess.Piece
	Defends   []chess.Piece
	Attackers []chess.Piece
	Defenders []chess.Piece
}

// RelationsOf returns the relations of the piece on sq. It fails on an
// empty square.
func (b *Board) RelationsOf(sq chess.Square) (Relations, error) {
	p, ok := b.PieceAt(sq)
	if !ok {
		return Relations{}, fmt.Errorf("no piece on %s: %w", sq, errors.ErrConstruction)
	}
	return Relations{
		Piece:     p,
		Square:    sq,
		Attacks:   b.PiecesAttacked(sq),
		Defends:   b.PiecesDefended(sq),
		Attackers: b.AttackersOf(sq),
		Defenders: b.DefendersOf(sq),
	}, nil
}

// PiecesAttacked returns the enemy pieces the piece on sq attacks.
func (b *Board) PiecesAttacked(sq chess.Square) []chess.Piece {
	v, err := b.View(sq)
	if err != nil {
		return nil
	}
	return b.piecesOn(v.Attacked)
}

// PiecesDefended returns the friendly pieces the piece on sq defends.
func (b *Board) PiecesDefended(sq chess.Square) []chess.Piece {
	v, err := b.View(sq)
	if err != nil {
		return nil
	}
	return b.piecesOn(v.Defended)
}

// AttackersOf returns the opponent pieces that attack the piece on sq.
func (b *Board) AttackersOf(sq chess.Square) []chess.Piece {
	target, ok := b.PieceAt(sq)
	if !ok {
		return nil
	}
	return b.piecesReaching(target.Side.Opponent(), sq, func(v view.View) view.Squares { return v.Attacked })
}

// DefendersOf returns the friendly pieces that defend the piece on sq.
func (b *Board) DefendersOf(sq chess.Square) []chess.Piece {
	target, ok := b.PieceAt(sq)
	if !ok {
		return nil
	}
	return b.piecesReaching(target.Side, sq, func(v view.View) view.Squares { return v.Defended })
}

// Material returns the summed point value of side's pieces on the board.
func (b *Board) Material(side chess.Side) int {
	total := 0
	for _, p := range b.PiecesOf(side) {
		total += p.Points()
	}
	return total
}

func (b *Board) piecesOn(squares view.Squares) []chess.Piece {
	pieces := make([]chess.Piece, 0, len(squares))
	for _, sq := range squares {
		if p, ok := b.PieceAt(sq); ok {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

func (b *Board) piecesReaching(side chess.Side, sq chess.Square, set func(view.View) view.Squares) []chess.Piece {
	var pieces []chess.Piece
	for _, p := range b.PiecesOf(side) {
		v, err := view.ForPiece(b.position, p)
		if err != nil {
			continue
		}
		if set(v).Contains(sq) {
			pieces = append(pieces, p)
		}
	}
	return pieces
}
