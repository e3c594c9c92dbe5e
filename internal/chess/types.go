// Package chess provides core chess types: sides, ranks, squares and pieces.
package chess

import (
	"fmt"
	"strings"
)

// Side represents the colour of a piece or player.
type Side int

const (
	NoSide Side = iota
	White
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Letter returns the single lowercase letter used in event text ("w" or "b").
func (s Side) Letter() string {
	switch s {
	case White:
		return "w"
	case Black:
		return "b"
	}
	return "?"
}

// Opponent returns the opposite side.
func (s Side) Opponent() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	}
	return NoSide
}

// Valid reports whether s is White or Black.
func (s Side) Valid() bool {
	return s == White || s == Black
}

// ForwardDirection returns the direction pawns of this side advance in.
func (s Side) ForwardDirection() Direction {
	if s == White {
		return Up
	}
	return Down
}

// ParseSide parses "w", "b", "white" or "black" (any case).
func ParseSide(text string) (Side, error) {
	switch strings.ToLower(text) {
	case "w", "white":
		return White, nil
	case "b", "black":
		return Black, nil
	}
	return NoSide, fmt.Errorf("unknown side %q", text)
}

// Rank represents a piece type and, through it, its movement pattern.
type Rank int

const (
	NoRank Rank = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var rankNames = [...]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// rankPoints is the conventional material value. The king has none.
var rankPoints = [...]int{0, 1, 3, 3, 5, 9, 0}

// String returns the string representation of a rank.
func (r Rank) String() string {
	if r >= 0 && int(r) < len(rankNames) {
		return rankNames[r]
	}
	return "Unknown"
}

// Points returns the material value of the rank.
func (r Rank) Points() int {
	if r >= 0 && int(r) < len(rankPoints) {
		return rankPoints[r]
	}
	return 0
}

// Valid reports whether r is one of the six chess ranks.
func (r Rank) Valid() bool {
	return r >= Pawn && r <= King
}

// Ranks lists the six ranks in ascending order.
func Ranks() []Rank {
	return []Rank{Pawn, Knight, Bishop, Rook, Queen, King}
}

// ParseRank parses a rank name such as "Queen" (any case).
func ParseRank(text string) (Rank, error) {
	for _, r := range Ranks() {
		if strings.EqualFold(text, rankNames[r]) {
			return r, nil
		}
	}
	return NoRank, fmt.Errorf("unknown rank %q", text)
}

// BoardSize is the number of columns and rows.
const BoardSize = 8
