package worker

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessmodel-go/internal/chess"
)

// indexFunc maps a square to its dense index.
func indexFunc(item WorkItem[chess.Square]) Result[int] {
	return Result[int]{Value: item.Value.Index(), Index: item.Index}
}

// countingFunc returns a process function that increments a counter.
func countingFunc(counter *int32) ProcessFunc[chess.Square, int] {
	return func(item WorkItem[chess.Square]) Result[int] {
		atomic.AddInt32(counter, 1)
		return indexFunc(item)
	}
}

// collectResults drains the result channel and returns the count.
func collectResults[R any](pool *Pool[chess.Square, R]) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start()

	squares := chess.AllSquares()[:10]
	for i, sq := range squares {
		if !pool.TrySubmit(WorkItem[chess.Square]{Value: sq, Index: i}) {
			t.Fatalf("TrySubmit(%v) refused with room in the buffer", sq)
		}
	}

	go pool.Close()

	if got := collectResults(pool); got != len(squares) {
		t.Errorf("results = %d; want %d", got, len(squares))
	}
	if got := atomic.LoadInt32(&processed); int(got) != len(squares) {
		t.Errorf("processed = %d; want %d", got, len(squares))
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowFunc := func(item WorkItem[chess.Square]) Result[int] {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return indexFunc(item)
	}

	pool := NewPool(slowFunc, WithWorkers(2), WithBufferSize(64))
	pool.Start()

	for i, sq := range chess.AllSquares() {
		pool.TrySubmit(WorkItem[chess.Square]{Value: sq, Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= 64 {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(indexFunc, WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}
	pool.Close()
}

// TestPoolTrySubmit tests non-blocking submission.
func TestPoolTrySubmit(t *testing.T) {
	slowFunc := func(item WorkItem[chess.Square]) Result[int] {
		time.Sleep(100 * time.Millisecond)
		return Result[int]{}
	}

	pool := NewPool(slowFunc, WithWorkers(1), WithBufferSize(2))
	pool.Start()

	a1 := chess.MustSquare("A_1")
	if !pool.TrySubmit(WorkItem[chess.Square]{Value: a1, Index: 0}) {
		t.Error("first TrySubmit should succeed")
	}
	if !pool.TrySubmit(WorkItem[chess.Square]{Value: a1, Index: 1}) {
		t.Error("second TrySubmit should succeed")
	}

	// Timing-dependent; only checks that a full buffer does not block.
	pool.TrySubmit(WorkItem[chess.Square]{Value: a1, Index: 2})

	pool.Stop()
	if pool.TrySubmit(WorkItem[chess.Square]{Value: a1, Index: 3}) {
		t.Error("TrySubmit after Stop should return false")
	}

	go pool.Close()
	collectResults(pool)
}

// TestPoolOptions tests the functional options.
func TestPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 16},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 16},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 16},
		{"negative workers ignored", []PoolOption{WithWorkers(-1)}, 1, 16},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(indexFunc, tt.opts...)
			if pool.numWorkers != tt.wantWorkers {
				t.Errorf("numWorkers = %d; want %d", pool.numWorkers, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	squares := chess.AllSquares()
	pool := NewPool(countingFunc(&counter), WithWorkers(8), WithBufferSize(len(squares)))
	pool.Start()

	go func() {
		for i, sq := range squares {
			pool.TrySubmit(WorkItem[chess.Square]{Value: sq, Index: i})
		}
		pool.Close()
	}()

	seen := make(map[int]bool)
	for r := range pool.Results() {
		seen[r.Value] = true
	}

	if got := atomic.LoadInt32(&counter); int(got) != len(squares) {
		t.Errorf("processed = %d; want %d", got, len(squares))
	}
	if len(seen) != len(squares) {
		t.Errorf("distinct results = %d; want %d", len(seen), len(squares))
	}
}

// TestMapPreservesOrder checks results come back in input order whatever
// order the workers finish in.
func TestMapPreservesOrder(t *testing.T) {
	squares := chess.AllSquares()
	want := make([]string, len(squares))
	for i, sq := range squares {
		want[i] = sq.String()
	}

	for _, n := range []int{0, 1, 3, 16, 100} {
		got, err := Map(squares, n, func(sq chess.Square) (string, error) {
			if sq.Index()%3 == 0 {
				time.Sleep(time.Millisecond)
			}
			return sq.String(), nil
		})
		if err != nil {
			t.Fatalf("Map with %d workers: %v", n, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Map with %d workers mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestMapEmpty(t *testing.T) {
	got, err := Map(nil, 4, func(sq chess.Square) (int, error) { return sq.Index(), nil })
	if err != nil || len(got) != 0 {
		t.Errorf("Map(nil) = %v, %v; want empty, nil", got, err)
	}
}

func TestMapReturnsFirstError(t *testing.T) {
	errEdge := errors.New("edge square")
	_, err := Map(chess.AllSquares(), 4, func(sq chess.Square) (int, error) {
		if sq.Column == chess.ColH {
			return 0, errEdge
		}
		return sq.Index(), nil
	})
	if !errors.Is(err, errEdge) {
		t.Errorf("Map() error = %v; want %v", err, errEdge)
	}
}

func TestMapStopsAfterFailure(t *testing.T) {
	errFirst := errors.New("first square")
	var calls int32
	_, err := Map(chess.AllSquares(), 1, func(sq chess.Square) (int, error) {
		atomic.AddInt32(&calls, 1)
		if sq.Index() == 0 {
			return 0, errFirst
		}
		time.Sleep(time.Millisecond)
		return sq.Index(), nil
	})
	if !errors.Is(err, errFirst) {
		t.Fatalf("Map() error = %v; want %v", err, errFirst)
	}
	if got := atomic.LoadInt32(&calls); got >= 64 {
		t.Errorf("fn called %d times; want the pool to stop before the last square", got)
	}
}
