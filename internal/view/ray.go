package view

import "github.com/lgbarn/chessmodel-go/internal/chess"

// castRays walks each ray of pattern from origin. Empty squares are
// reachable and the ray continues; the first occupied square is attacked or
// defended depending on its side, and ends the ray.
func castRays(pos Position, origin chess.Square, p chess.Piece, pattern Pattern) View {
	v := View{Origin: origin, Piece: p}

	for _, ray := range pattern.Rays {
		sq := origin
		for step := 1; pattern.Steps == Unbounded || step <= pattern.Steps; step++ {
			next, ok := sq.Offset(ray)
			if !ok {
				break
			}
			sq = next

			occupant, occupied := pos.PieceAt(sq)
			if !occupied {
				v.MoveTo = append(v.MoveTo, sq)
				continue
			}
			if occupant.Side == p.Side {
				v.Defended = append(v.Defended, sq)
			} else {
				v.Attacked = append(v.Attacked, sq)
			}
			break
		}
	}

	v.Threatened = make(Squares, 0, len(v.MoveTo)+len(v.Attacked))
	v.Threatened = append(v.Threatened, v.MoveTo...)
	v.Threatened = append(v.Threatened, v.Attacked...)
	return v
}
