// Package worker provides a generic worker pool for fanning independent,
// read-only computations out over goroutines.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"
)

// WorkItem is one unit of input.
type WorkItem[T any] struct {
	Value T
	Index int // Original index for ordering results
}

// Result is the output produced for one WorkItem.
type Result[R any] struct {
	Value R
	Index int
	Err   error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc[T, R any] func(item WorkItem[T]) Result[R]

// Pool manages a pool of workers.
type Pool[T, R any] struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem[T]
	resultChan  chan Result[R]
	processFunc ProcessFunc[T, R]
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*poolSettings)

type poolSettings struct {
	numWorkers int
	bufferSize int
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(s *poolSettings) {
		if n >= 1 {
			s.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(s *poolSettings) {
		if size >= 1 {
			s.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool. processFunc is required; other settings
// have sensible defaults. Default: 1 worker, buffer size of 16.
func NewPool[T, R any](processFunc ProcessFunc[T, R], opts ...PoolOption) *Pool[T, R] {
	s := poolSettings{numWorkers: 1, bufferSize: 16}
	for _, opt := range opts {
		opt(&s)
	}
	return &Pool[T, R]{
		numWorkers:  s.numWorkers,
		bufferSize:  s.bufferSize,
		workChan:    make(chan WorkItem[T], s.bufferSize),
		resultChan:  make(chan Result[R], s.bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool[T, R]) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool[T, R]) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// TrySubmit attempts to submit a work item without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool[T, R]) TrySubmit(item WorkItem[T]) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool[T, R]) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool[T, R]) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool[T, R]) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool[T, R]) Results() <-chan Result[R] {
	return p.resultChan
}

// Map runs fn over inputs on a pool of n workers and returns the results in
// input order. The first failure stops the pool: inputs not yet started are
// skipped and the error with the lowest input index among those run is
// returned.
func Map[T, R any](inputs []T, n int, fn func(T) (R, error)) ([]R, error) {
	var pool *Pool[T, R]
	pool = NewPool(func(item WorkItem[T]) Result[R] {
		v, err := fn(item.Value)
		if err != nil {
			pool.Stop()
		}
		return Result[R]{Value: v, Index: item.Index, Err: err}
	}, WithWorkers(n), WithBufferSize(len(inputs)))
	pool.Start()

	go func() {
		// The buffer holds every input, so TrySubmit only fails once stopped.
		for i, in := range inputs {
			if !pool.TrySubmit(WorkItem[T]{Value: in, Index: i}) {
				break
			}
		}
		pool.Close()
	}()

	collected := make([]Result[R], 0, len(inputs))
	for r := range pool.Results() {
		collected = append(collected, r)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].Index < collected[j].Index })

	out := make([]R, len(collected))
	for i, r := range collected {
		if r.Err != nil {
			return nil, r.Err
		}
		out[i] = r.Value
	}
	return out, nil
}
