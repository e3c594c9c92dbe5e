// Package session keeps named snapshots of boards so a caller can branch
// from any point of a game and come back to it later.
package session

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chessmodel-go/internal/board"
	"github.com/lgbarn/chessmodel-go/internal/errors"
	"github.com/lgbarn/chessmodel-go/internal/hashing"
)

// Snapshot is a saved board. Boards are immutable, so a snapshot shares
// its position and log with whatever board it was taken from.
type Snapshot struct {
	ID        string
	Label     string
	Board     *board.Board
	CreatedAt time.Time

	// DuplicateOf is the id of an earlier snapshot showing the same
	// position, if there is one. It never names a deleted snapshot.
	DuplicateOf string

	seq uint64
}

// Store is a concurrency-safe registry of snapshots keyed by uuid.
type Store struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
	positions *hashing.DuplicateDetector
	now       func() time.Time
	seq       uint64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		snapshots: make(map[string]*Snapshot),
		positions: hashing.NewDuplicateDetector(false),
		now:       time.Now,
	}
}

// Save records b under a fresh id.
func (s *Store) Save(label string, b *board.Board) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	snap := &Snapshot{
		ID:        uuid.NewString(),
		Label:     label,
		Board:     b,
		CreatedAt: s.now(),
		seq:       s.seq,
	}
	if prev, dup := s.positions.CheckAndAdd(snap.ID, b.Position(), b.Ply()); dup {
		snap.DuplicateOf = prev.ID
	}
	s.snapshots[snap.ID] = snap
	return snap
}

// Get returns the snapshot with the given id.
func (s *Store) Get(id string) (*Snapshot, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("snapshot id %q: %w", id, errors.ErrUnknownSnapshot)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[id]
	if !ok {
		return nil, fmt.Errorf("snapshot %s: %w", id, errors.ErrUnknownSnapshot)
	}
	return snap, nil
}

// Delete drops a snapshot. Snapshots recorded as duplicates of it are
// re-pointed: the oldest of them becomes the original and the others name
// it instead. Snapshots already handed out are not modified; Get returns
// the updated ones.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.snapshots[id]; !ok {
		return fmt.Errorf("snapshot %s: %w", id, errors.ErrUnknownSnapshot)
	}
	delete(s.snapshots, id)
	s.positions.Forget(id)

	var orphans []*Snapshot
	for _, snap := range s.snapshots {
		if snap.DuplicateOf == id {
			orphans = append(orphans, snap)
		}
	}
	sortBySeq(orphans)
	original := ""
	for _, snap := range orphans {
		repointed := *snap
		repointed.DuplicateOf = original
		s.snapshots[snap.ID] = &repointed
		if original == "" {
			original = snap.ID
		}
	}
	return nil
}

// List returns all snapshots in the order they were saved.
func (s *Store) List() []*Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Snapshot, 0, len(s.snapshots))
	for _, snap := range s.snapshots {
		out = append(out, snap)
	}
	sortBySeq(out)
	return out
}

func sortBySeq(snaps []*Snapshot) {
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].seq < snaps[j].seq })
}

// Duplicates returns how many saves repeated an earlier position.
func (s *Store) Duplicates() int {
	return s.positions.DuplicateCount()
}

// Positions returns the number of distinct positions among the snapshots.
func (s *Store) Positions() int {
	return s.positions.UniqueCount()
}

// Len returns the number of snapshots.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshots)
}
