// Package worker provides a worker pool for replaying input lines in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/output"
)

// WorkItem is one input line to replay.
type WorkItem struct {
	Text  string
	Line  int    // 1-based line number in File
	File  string // empty for stdin
	Index int    // submission order across all inputs
}

// ProcessResult is the outcome of replaying a work item.
type ProcessResult struct {
	Index        int
	Result       *output.Result
	Board        *chess.Board // final position (nil if the line failed to load)
	ShouldOutput bool
	OutputToDup  bool // write to the duplicate stream instead
	Error        error
}

// ProcessFunc replays one work item. Each call owns its boards; nothing is
// shared between workers.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed number of workers over a channel of work items.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with numWorkers workers and channels of bufferSize.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a work item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip the items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// InOrder calls fn for each result in Index order, holding back results
// that arrive early. Indexes must start at 0 and have no gaps; results
// still held when the channel closes are delivered in order.
func InOrder(results <-chan ProcessResult, fn func(ProcessResult)) {
	pending := make(map[int]ProcessResult)
	next := 0
	for r := range results {
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			fn(ready)
			next++
		}
	}
	// Gaps left by a stopped pool.
	for len(pending) > 0 {
		if ready, ok := pending[next]; ok {
			delete(pending, next)
			fn(ready)
		}
		next++
	}
}
