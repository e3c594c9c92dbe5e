package testutil

import (
	"testing"

	"github.com/lgbarn/chessmodel-go/internal/board"
	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/script"
)

// MustSetup builds an unlocked board from put lines without the leading
// "put", e.g. "w King E_1" or "w Pawn A_3 home A_2".
// It calls t.Fatal if a line does not parse or is rejected.
func MustSetup(t *testing.T, puts ...string) *board.Board {
	t.Helper()
	b := board.New()
	for _, line := range puts {
		e, err := script.ParseEvent("put " + line)
		if err != nil {
			t.Fatalf("bad fixture line %q: %v", line, err)
		}
		next, err := b.Apply(e)
		if err != nil {
			t.Fatalf("fixture line %q rejected: %v", line, err)
		}
		b = next
	}
	return b
}

// MustLocked is MustSetup followed by Lock.
func MustLocked(t *testing.T, puts ...string) *board.Board {
	t.Helper()
	b, err := MustSetup(t, puts...).Lock()
	if err != nil {
		t.Fatalf("locking fixture: %v", err)
	}
	return b
}

// Squares parses square names such as "A_1"; it panics on bad input.
func Squares(names ...string) []chess.Square {
	out := make([]chess.Square, len(names))
	for i, n := range names {
		out[i] = chess.MustSquare(n)
	}
	return out
}
