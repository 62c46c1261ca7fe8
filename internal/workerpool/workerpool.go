// Copyright 2026 go-mergesort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for fanning
// independent work items out across CPUs. Workers are spawned once and
// reused, so a caller can push thousands of short tasks (for example
// the cells of a verification grid) without paying goroutine spawn or
// channel allocation costs per task.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForAtomic(len(cells), func(i int) {
//	    runCell(cells[i])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers live from New until Close
// and execute whatever tasks the Parallel* methods feed them.
type Pool struct {
	numWorkers int
	taskC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one unit of queued work plus the barrier it reports to.
type task struct {
	run  func()
	done *sync.WaitGroup
}

// New creates a pool with the given number of workers, spawned
// immediately. If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Room for every worker to have one task queued behind the
		// one it is running.
		taskC: make(chan task, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for t := range p.taskC {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down. Queued work still completes. Close may be
// called more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.taskC)
	})
}

// ParallelFor splits [0, n) into one contiguous chunk per worker and
// calls fn(start, end) for each chunk. Blocks until every chunk is
// done. On a closed pool it degrades to a single sequential call.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= n {
			wg.Done()
			continue
		}

		p.taskC <- task{
			run:  func() { fn(start, end) },
			done: &wg,
		}
	}

	wg.Wait()
}

// ParallelForAtomic hands out indices in [0, n) one at a time through
// an atomic counter, which balances load when task cost varies wildly
// across indices. Blocks until every index has been processed. On a
// closed pool it degrades to a sequential loop.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.taskC <- task{
			run: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			done: &wg,
		}
	}

	wg.Wait()
}
