package view

import "github.com/lgbarn/chessmodel-go/internal/chess"

var pawnAttacks = map[chess.Direction][2]chess.Direction{
	chess.Up:   {chess.LeftUp, chess.RightUp},
	chess.Down: {chess.LeftDown, chess.RightDown},
}

// pawnView computes forward moves and diagonal threats separately: a pawn
// never captures straight ahead and never moves diagonally onto an empty
// square.
//
// The double step is offered whenever the pawn stands on its home square,
// whether or not it left and came back.
func pawnView(pos Position, origin chess.Square, p chess.Piece) View {
	v := View{Origin: origin, Piece: p}
	forward := p.Side.ForwardDirection()

	if one, ok := origin.Neighbor(forward); ok && !occupied(pos, one) {
		v.MoveTo = append(v.MoveTo, one)
		if origin == p.Home {
			if two, ok := one.Neighbor(forward); ok && !occupied(pos, two) {
				v.MoveTo = append(v.MoveTo, two)
			}
		}
	}

	for _, d := range pawnAttacks[forward] {
		sq, ok := origin.Neighbor(d)
		if !ok {
			continue
		}
		v.Threatened = append(v.Threatened, sq)

		occupant, ok := pos.PieceAt(sq)
		switch {
		case !ok:
		case occupant.Side == p.Side:
			v.Defended = append(v.Defended, sq)
		default:
			v.Attacked = append(v.Attacked, sq)
		}
	}
	return v
}

func occupied(pos Position, sq chess.Square) bool {
	_, ok := pos.PieceAt(sq)
	return ok
}
