package chess

import (
	"fmt"
	"strings"
)

// Column represents a board file, A through H. The zero value is not a column.
type Column int8

// Row represents a board rank number, 1 through 8. The zero value is not a row.
type Row int8

const (
	ColA Column = iota + 1
	ColB
	ColC
	ColD
	ColE
	ColF
	ColG
	ColH
)

const (
	Row1 Row = iota + 1
	Row2
	Row3
	Row4
	Row5
	Row6
	Row7
	Row8
)

// Valid reports whether c lies on the board.
func (c Column) Valid() bool {
	return c >= ColA && c <= ColH
}

// String returns the uppercase column letter.
func (c Column) String() string {
	if !c.Valid() {
		return "?"
	}
	return string(rune('A' + int(c) - 1))
}

// Valid reports whether r lies on the board.
func (r Row) Valid() bool {
	return r >= Row1 && r <= Row8
}

// String returns the row number.
func (r Row) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rune('0' + int(r)))
}

// Square identifies one of the 64 board squares. Squares are comparable
// and can be used directly as map keys.
type Square struct {
	Column Column
	Row    Row
}

// Sq is shorthand for constructing a square.
func Sq(c Column, r Row) Square {
	return Square{Column: c, Row: r}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Column.Valid() && s.Row.Valid()
}

// String renders the square as <Column>_<Row>, e.g. "A_1".
func (s Square) String() string {
	return s.Column.String() + "_" + s.Row.String()
}

// Index returns a dense 0..63 index, A_1 = 0, B_1 = 1 ... H_8 = 63.
func (s Square) Index() int {
	return (int(s.Row)-1)*BoardSize + int(s.Column) - 1
}

// Less orders squares by row then column.
func (s Square) Less(o Square) bool {
	return s.Index() < o.Index()
}

// Neighbor returns the adjacent square in direction d. The boolean is
// false when the step would leave the board.
func (s Square) Neighbor(d Direction) (Square, bool) {
	if int(d) < 0 || int(d) >= len(directionOffsets) {
		return Square{}, false
	}
	return s.Offset(directionOffsets[d])
}

// Offset returns the square displaced by o, or false if it is off the board.
func (s Square) Offset(o Offset) (Square, bool) {
	n := Square{Column: s.Column + Column(o.DCol), Row: s.Row + Row(o.DRow)}
	if !s.Valid() || !n.Valid() {
		return Square{}, false
	}
	return n, true
}

// AllSquares returns the 64 squares from A_1 to H_8, row by row.
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for r := Row1; r <= Row8; r++ {
		for c := ColA; c <= ColH; c++ {
			squares = append(squares, Square{Column: c, Row: r})
		}
	}
	return squares
}

// ParseSquare parses "A_1", "a_1", "A1" or "a1". An underscore is only
// accepted between the column letter and the row digit.
func ParseSquare(text string) (Square, error) {
	t := strings.ToUpper(text)
	if len(t) == 3 && t[1] == '_' {
		t = t[:1] + t[2:]
	}
	if len(t) != 2 {
		return Square{}, fmt.Errorf("invalid square %q", text)
	}
	sq := Square{Column: Column(t[0]-'A') + 1, Row: Row(t[1] - '0')}
	if t[0] < 'A' || t[1] < '0' || !sq.Valid() {
		return Square{}, fmt.Errorf("invalid square %q", text)
	}
	return sq, nil
}

// MustSquare is like ParseSquare but panics on error. Intended for
// fixed tables and tests.
func MustSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// Direction is one of the eight compass directions, named in board terms:
// "up" is toward higher row numbers.
type Direction int

const (
	Up Direction = iota
	RightUp
	Right
	RightDown
	Down
	LeftDown
	Left
	LeftUp
)

// Offset is a (column, row) displacement.
type Offset struct {
	DCol int
	DRow int
}

var directionOffsets = [...]Offset{
	Up:        {0, 1},
	RightUp:   {1, 1},
	Right:     {1, 0},
	RightDown: {1, -1},
	Down:      {0, -1},
	LeftDown:  {-1, -1},
	Left:      {-1, 0},
	LeftUp:    {-1, 1},
}

var directionNames = [...]string{"Up", "RightUp", "Right", "RightDown", "Down", "LeftDown", "Left", "LeftUp"}

// String returns the name of the direction.
func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "Unknown"
}

// Offset returns the unit displacement of the direction.
func (d Direction) Offset() Offset {
	return directionOffsets[d]
}

// Directions returns all eight directions clockwise from Up.
func Directions() []Direction {
	return []Direction{Up, RightUp, Right, RightDown, Down, LeftDown, Left, LeftUp}
}
