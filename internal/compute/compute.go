package compute

import (
	"runtime"
	"sync"
)

// Pool dispatches per-cell kernels across worker goroutines. A call to
// ParallelFor returns only after every worker has finished, so consecutive
// calls are separated by a full barrier: a later stage never observes a
// partially written buffer from an earlier one.
type Pool struct {
	workers int
}

func NewPool() *Pool {
	return &Pool{workers: runtime.NumCPU()}
}

func NewPoolWith(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

func (p *Pool) Workers() int { return p.workers }

// ParallelFor splits [0, n) into contiguous chunks and runs fn over each
// chunk concurrently. Small ranges run serially.
func (p *Pool) ParallelFor(n, minChunk int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if n <= minChunk || p.workers <= 1 {
		fn(0, n)
		return
	}

	workers := p.workers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			if s < e {
				fn(s, e)
			}
		}(start, end)
	}

	wg.Wait()
}

var defaultPool = NewPool()

// ParallelFor runs fn over [0, n) on the shared process-wide pool.
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	defaultPool.ParallelFor(n, minChunk, fn)
}
