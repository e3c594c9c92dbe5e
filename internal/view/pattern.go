package view

import "github.com/lgbarn/chessmodel-go/internal/chess"

// Kind selects the algorithm that computes a view.
type Kind int

const (
	// Radiating walks rays outward, up to Steps squares each.
	Radiating Kind = iota
	// PawnMoves splits forward moves from diagonal attacks.
	PawnMoves
	// KingMoves is Radiating with one step, minus squares the opponent threatens.
	KingMoves
)

// Unbounded is the step limit of sliding pieces: rays run to the board edge.
const Unbounded = 0

// Pattern is the movement configuration of a rank.
type Pattern struct {
	Kind Kind

	// Rays are unit displacements walked from the origin. Knight jumps are
	// modelled as eight single-step rays.
	Rays []chess.Offset

	// Steps limits each ray; Unbounded walks to the edge.
	Steps int
}

var (
	straight = []chess.Direction{chess.Up, chess.Right, chess.Down, chess.Left}
	diagonal = []chess.Direction{chess.RightUp, chess.RightDown, chess.LeftDown, chess.LeftUp}

	knightJumps = []chess.Offset{
		{DCol: 1, DRow: 2}, {DCol: 2, DRow: 1}, {DCol: 2, DRow: -1}, {DCol: 1, DRow: -2},
		{DCol: -1, DRow: -2}, {DCol: -2, DRow: -1}, {DCol: -2, DRow: 1}, {DCol: -1, DRow: 2},
	}
)

var patterns = map[chess.Rank]Pattern{
	chess.Pawn:   {Kind: PawnMoves},
	chess.Knight: {Kind: Radiating, Rays: knightJumps, Steps: 1},
	chess.Bishop: {Kind: Radiating, Rays: offsets(diagonal), Steps: Unbounded},
	chess.Rook:   {Kind: Radiating, Rays: offsets(straight), Steps: Unbounded},
	chess.Queen:  {Kind: Radiating, Rays: offsets(chess.Directions()), Steps: Unbounded},
	chess.King:   {Kind: KingMoves, Rays: offsets(chess.Directions()), Steps: 1},
}

// PatternFor returns the movement pattern of rank.
func PatternFor(rank chess.Rank) (Pattern, bool) {
	p, ok := patterns[rank]
	return p, ok
}

func offsets(dirs []chess.Direction) []chess.Offset {
	out := make([]chess.Offset, len(dirs))
	for i, d := range dirs {
		out[i] = d.Offset()
	}
	return out
}
