// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides the two kinds of parallelism the matrix engine
// needs.
//
// Pool is a persistent set of goroutines for flat data-parallel loops, such as
// splitting an element-wise add into blocks or a transpose into row strips. It
// is created once and reused, so per-call goroutine spawning does not dominate
// mid-sized operations.
//
// ForkJoin runs two closures in parallel when a spawn permit is available and
// sequentially otherwise. It is meant for recursive divide-and-conquer, where a
// bounded blocking pool would deadlock once every worker waits on its children.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(rows, func(start, end int) {
//	    processRows(start, end)
//	})
//
// Tasks handed to a Pool must not call back into the same Pool.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	tasks      chan task

	// mu is held for reading across every send so Close cannot close tasks
	// under a sender.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New creates a pool with numWorkers goroutines that persist until Close.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes. Calling Close more
// than once is safe; a closed pool runs every loop on the caller's goroutine.
//
// Close may run concurrently with ParallelFor: loops that started sending
// before Close finish on the workers, later ones run inline.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
}

// open reports whether the pool accepts tasks. On true the caller holds the
// read lock and must call p.mu.RUnlock once it has sent its tasks.
func (p *Pool) open() bool {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	return true
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous ranges and calls
// fn(start, end) for each range on a worker. Blocks until all ranges finish.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || !p.open() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.tasks <- task{run: func() { fn(start, end) }, done: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// ParallelForBatched hands out [0, n) in batches of batchSize through an atomic
// counter, so workers that finish early pick up more batches. Use it when the
// cost per batch is uneven. fn receives (start, end) of one batch.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 || !p.open() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			run: func() {
				for {
					start := int(next.Add(1)-1) * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			done: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}
