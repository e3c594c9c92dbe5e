package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chessmodel-go/internal/board"
	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/errors"
)

func TestStore_SaveGet(t *testing.T) {
	s := NewStore()
	b := board.NewStandard()

	snap := s.Save("opening", b)
	assert.Len(t, snap.ID, 36)
	assert.Equal(t, "opening", snap.Label)
	assert.Same(t, b, snap.Board)

	got, err := s.Get(snap.ID)
	require.NoError(t, err)
	assert.Same(t, snap, got)
	assert.Equal(t, 1, s.Len())
}

func TestStore_GetUnknown(t *testing.T) {
	s := NewStore()
	s.Save("", board.New())

	_, err := s.Get("not-a-uuid")
	assert.ErrorIs(t, err, errors.ErrUnknownSnapshot)

	_, err = s.Get("8f14e45f-ceea-467f-a0e6-7b2d8c5a0a11")
	assert.ErrorIs(t, err, errors.ErrUnknownSnapshot)
}

func TestStore_Delete(t *testing.T) {
	s := NewStore()
	snap := s.Save("x", board.New())

	require.NoError(t, s.Delete(snap.ID))
	assert.Equal(t, 0, s.Len())
	assert.ErrorIs(t, s.Delete(snap.ID), errors.ErrUnknownSnapshot)
}

func TestStore_ListOrder(t *testing.T) {
	s := NewStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	first := s.Save("first", board.New())
	second := s.Save("second", board.New())
	third := s.Save("third", board.New())

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestStore_SnapshotsAreIndependentBranches(t *testing.T) {
	s := NewStore()
	start := board.NewStandard()
	snap := s.Save("start", start)

	moved, err := start.ApplyMove(chess.MustSquare("E_2"), chess.MustSquare("E_4"))
	require.NoError(t, err)
	s.Save("after e4", moved)

	got, err := s.Get(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, 32, got.Board.Ply())
	_, ok := got.Board.PieceAt(chess.MustSquare("E_4"))
	assert.False(t, ok)
}

func TestStore_DuplicatePositions(t *testing.T) {
	s := NewStore()
	first := s.Save("start", board.NewStandard())
	assert.Empty(t, first.DuplicateOf)

	again := s.Save("start again", board.NewStandard())
	assert.Equal(t, first.ID, again.DuplicateOf)
	assert.Equal(t, 1, s.Duplicates())

	moved, err := board.NewStandard().ApplyMove(chess.MustSquare("E_2"), chess.MustSquare("E_4"))
	require.NoError(t, err)
	assert.Empty(t, s.Save("e4", moved).DuplicateOf)

	require.NoError(t, s.Delete(first.ID))
	require.NoError(t, s.Delete(again.ID))
	assert.Empty(t, s.Save("fresh", board.NewStandard()).DuplicateOf)
}

func TestStore_DeleteRepointsDuplicates(t *testing.T) {
	s := NewStore()
	first := s.Save("a", board.NewStandard())
	second := s.Save("b", board.NewStandard())
	third := s.Save("c", board.NewStandard())
	require.Equal(t, first.ID, third.DuplicateOf)
	assert.Equal(t, 1, s.Positions())

	require.NoError(t, s.Delete(first.ID))

	got, err := s.Get(second.ID)
	require.NoError(t, err)
	assert.Empty(t, got.DuplicateOf)

	got, err = s.Get(third.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.DuplicateOf)

	assert.Equal(t, second.ID, s.Save("d", board.NewStandard()).DuplicateOf)
	assert.Equal(t, first.ID, third.DuplicateOf, "snapshots handed out earlier are unchanged")

	for _, snap := range s.List() {
		assert.NotEqual(t, first.ID, snap.DuplicateOf)
	}
}

func TestStore_Positions(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Positions())

	s.Save("start", board.NewStandard())
	s.Save("start again", board.NewStandard())
	moved, err := board.NewStandard().ApplyMove(chess.MustSquare("E_2"), chess.MustSquare("E_4"))
	require.NoError(t, err)
	s.Save("e4", moved)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.Positions())
}

func TestStore_Concurrent(t *testing.T) {
	s := NewStore()
	b := board.New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap := s.Save("branch", b)
			_, err := s.Get(snap.ID)
			assert.NoError(t, err)
			_ = s.List()
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, s.Len())
}
