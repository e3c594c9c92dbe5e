// Package hashing provides position keys and duplicate detection for boards.
package hashing

import (
	"math/rand/v2"
	"sync"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/position"
)

// zobristTable holds one random key per (square, side, rank). The seed is
// fixed so keys are stable across runs.
var zobristTable = func() (t [64][3][7]uint64) {
	rng := rand.New(rand.NewPCG(0x9e3779b97f4a7c15, 0xbf58476d1ce4e5b9))
	for sq := range t {
		for side := range t[sq] {
			for rank := range t[sq][side] {
				t[sq][side][rank] = rng.Uint64()
			}
		}
	}
	return t
}()

// PieceKey returns the Zobrist key of p standing on sq.
func PieceKey(sq chess.Square, p chess.Piece) uint64 {
	if !sq.Valid() || !p.Valid() {
		return 0
	}
	return zobristTable[sq.Index()][p.Side][p.Rank]
}

// Key returns the Zobrist hash of a position: the XOR of the keys of every
// occupied square. Home squares do not contribute, so two positions that
// look the same on a diagram hash the same.
func Key(pos position.Map) uint64 {
	var h uint64
	for _, sq := range pos.Occupied() {
		p, _ := pos.PieceAt(sq)
		h ^= PieceKey(sq, p)
	}
	return h
}

// WeakHash is a fast secondary hash: piece count in the high bits and the
// summed square indexes in the low bits.
func WeakHash(pos position.Map) uint32 {
	var sum uint32
	for _, sq := range pos.Occupied() {
		sum += uint32(sq.Index())
	}
	return uint32(pos.Len())<<16 | sum
}

// Signature identifies one recorded position.
type Signature struct {
	ID       string
	Hash     uint64
	WeakHash uint32
	Ply      int
}

// DuplicateDetector tracks seen positions. It is safe for concurrent use.
type DuplicateDetector struct {
	mu             sync.RWMutex
	hashTable      map[uint64][]Signature
	exactPly       bool
	duplicateCount int
}

// NewDuplicateDetector creates a detector. With exactPly set, positions only
// match when they were also reached after the same number of events.
func NewDuplicateDetector(exactPly bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable: make(map[uint64][]Signature),
		exactPly:  exactPly,
	}
}

// CheckAndAdd records pos under id. If an equivalent position was recorded
// earlier, its signature is returned together with true.
func (d *DuplicateDetector) CheckAndAdd(id string, pos position.Map, ply int) (Signature, bool) {
	sig := Signature{ID: id, Hash: Key(pos), WeakHash: WeakHash(pos), Ply: ply}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
			return existing, true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return Signature{}, false
}

// Forget drops every signature recorded under id.
func (d *DuplicateDetector) Forget(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for h, sigs := range d.hashTable {
		kept := sigs[:0]
		for _, s := range sigs {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			delete(d.hashTable, h)
			continue
		}
		d.hashTable[h] = kept
	}
}

func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.exactPly && a.Ply != b.Ply {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	count := 0
	for _, sigs := range d.hashTable {
		var distinct []Signature
	next:
		for _, s := range sigs {
			for _, u := range distinct {
				if d.signaturesMatch(s, u) {
					continue next
				}
			}
			distinct = append(distinct, s)
		}
		count += len(distinct)
	}
	return count
}
