package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSquareString(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{Sq(ColA, Row1), "A_1"},
		{Sq(ColE, Row4), "E_4"},
		{Sq(ColH, Row8), "H_8"},
		{Square{}, "?_?"},
	}
	for _, tt := range tests {
		if got := tt.sq.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}

func TestSquareIndex(t *testing.T) {
	seen := make(map[int]Square)
	for i, sq := range AllSquares() {
		if sq.Index() != i {
			t.Errorf("%v.Index() = %d; want %d", sq, sq.Index(), i)
		}
		if prev, ok := seen[sq.Index()]; ok {
			t.Errorf("%v and %v share index %d", prev, sq, sq.Index())
		}
		seen[sq.Index()] = sq
	}
	if len(seen) != 64 {
		t.Errorf("AllSquares() yielded %d distinct squares; want 64", len(seen))
	}
}

func TestSquareNeighbor(t *testing.T) {
	tests := []struct {
		name   string
		from   string
		dir    Direction
		want   string
		onside bool
	}{
		{"up from centre", "D_4", Up, "D_5", true},
		{"right up", "D_4", RightUp, "E_5", true},
		{"right", "D_4", Right, "E_4", true},
		{"right down", "D_4", RightDown, "E_3", true},
		{"down", "D_4", Down, "D_3", true},
		{"left down", "D_4", LeftDown, "C_3", true},
		{"left", "D_4", Left, "C_4", true},
		{"left up", "D_4", LeftUp, "C_5", true},
		{"off the top", "E_8", Up, "", false},
		{"off the bottom", "E_1", Down, "", false},
		{"off the left", "A_5", Left, "", false},
		{"off the right", "H_5", Right, "", false},
		{"corner diagonal", "H_8", RightUp, "", false},
		{"corner inward", "A_1", RightUp, "B_2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MustSquare(tt.from).Neighbor(tt.dir)
			if ok != tt.onside {
				t.Fatalf("Neighbor(%v) ok = %v; want %v", tt.dir, ok, tt.onside)
			}
			if ok && got != MustSquare(tt.want) {
				t.Errorf("Neighbor(%v) = %v; want %s", tt.dir, got, tt.want)
			}
		})
	}
}

func TestSquareOffset(t *testing.T) {
	sq, ok := MustSquare("B_1").Offset(Offset{DCol: 1, DRow: 2})
	if !ok || sq != MustSquare("C_3") {
		t.Errorf("B_1 + (1,2) = %v, %v; want C_3, true", sq, ok)
	}
	if _, ok := MustSquare("B_1").Offset(Offset{DCol: -2, DRow: 1}); ok {
		t.Error("B_1 + (-2,1) should leave the board")
	}
	if _, ok := (Square{}).Offset(Offset{DCol: 1, DRow: 1}); ok {
		t.Error("offset from an invalid square should fail")
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"A_1", Sq(ColA, Row1), false},
		{"h_8", Sq(ColH, Row8), false},
		{"e4", Sq(ColE, Row4), false},
		{"C7", Sq(ColC, Row7), false},
		{"I_1", Square{}, true},
		{"A_9", Square{}, true},
		{"A_0", Square{}, true},
		{"A10", Square{}, true},
		{"", Square{}, true},
		{"1_A", Square{}, true},
		{"_A1", Square{}, true},
		{"A1_", Square{}, true},
		{"A__1", Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSquare(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDirections(t *testing.T) {
	dirs := Directions()
	if len(dirs) != 8 {
		t.Fatalf("len(Directions()) = %d; want 8", len(dirs))
	}
	seen := make(map[Offset]bool)
	for _, d := range dirs {
		o := d.Offset()
		if o.DCol == 0 && o.DRow == 0 {
			t.Errorf("%v has a zero offset", d)
		}
		seen[o] = true
	}
	if len(seen) != 8 {
		t.Errorf("directions have %d distinct offsets; want 8", len(seen))
	}
	if got := Direction(42).String(); got != "Unknown" {
		t.Errorf("Direction(42).String() = %q; want Unknown", got)
	}
}

func TestStandardLayout(t *testing.T) {
	layout := StandardLayout()
	if len(layout) != 32 {
		t.Fatalf("len(StandardLayout()) = %d; want 32", len(layout))
	}

	counts := make(map[Side]map[Rank]int)
	squares := make(map[Square]bool)
	for _, pl := range layout {
		if pl.Piece.Home != pl.Square {
			t.Errorf("%v home %v differs from placement square %v", pl.Piece, pl.Piece.Home, pl.Square)
		}
		if squares[pl.Square] {
			t.Errorf("square %v used twice", pl.Square)
		}
		squares[pl.Square] = true
		if counts[pl.Piece.Side] == nil {
			counts[pl.Piece.Side] = make(map[Rank]int)
		}
		counts[pl.Piece.Side][pl.Piece.Rank]++
	}

	want := map[Rank]int{Pawn: 8, Knight: 2, Bishop: 2, Rook: 2, Queen: 1, King: 1}
	for _, side := range []Side{White, Black} {
		if diff := cmp.Diff(want, counts[side]); diff != "" {
			t.Errorf("%v piece counts mismatch (-want +got):\n%s", side, diff)
		}
	}

	if layout[4].Piece.Rank != King || layout[4].Square != MustSquare("E_1") {
		t.Errorf("layout[4] = %v on %v; want White King on E_1", layout[4].Piece, layout[4].Square)
	}
	if layout[31-4].Piece.Rank != Queen || layout[31-4].Square != MustSquare("D_8") {
		t.Errorf("layout[27] = %v on %v; want Black Queen on D_8", layout[27].Piece, layout[27].Square)
	}
}
