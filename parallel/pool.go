package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of workers that split an index range between
// them on demand. Each worker claims the next unassigned index once it
// finishes the previous one, so uneven per-index cost does not leave
// workers idle while others still hold a static share.
type Pool struct {
	workers int
}

// Start returns a pool of numWorkers workers. A value below one selects
// runtime.GOMAXPROCS(0).
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	return &Pool{workers: numWorkers}
}

// Workers reports the pool size.
func (p *Pool) Workers() int {
	return p.workers
}

// Range calls fn exactly once for every index in [0, n) and returns
// when all calls have completed.
func (p *Pool) Range(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	if p.workers == 1 || n == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var (
		wg   sync.WaitGroup
		next atomic.Int64
	)
	for range min(p.workers, n) {
		wg.Go(func() {
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return
				}
				fn(i)
			}
		})
	}

	wg.Wait()
}
