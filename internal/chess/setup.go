package chess

// Placement pairs a piece with the square it is put on.
type Placement struct {
	Piece  Piece
	Square Square
}

var backRank = [BoardSize]Rank{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StandardLayout returns the 32 placements of the opening position. Every
// piece's home square is the square it is placed on.
func StandardLayout() []Placement {
	placements := make([]Placement, 0, 4*BoardSize)
	add := func(side Side, rank Rank, sq Square) {
		placements = append(placements, Placement{
			Piece:  MustPiece(side, rank, sq),
			Square: sq,
		})
	}

	for c := ColA; c <= ColH; c++ {
		add(White, backRank[c-1], Sq(c, Row1))
	}
	for c := ColA; c <= ColH; c++ {
		add(White, Pawn, Sq(c, Row2))
	}
	for c := ColA; c <= ColH; c++ {
		add(Black, Pawn, Sq(c, Row7))
	}
	for c := ColA; c <= ColH; c++ {
		add(Black, backRank[c-1], Sq(c, Row8))
	}
	return placements
}
