// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ForkJoin runs pairs of closures in parallel while spawn permits last.
//
// Join never blocks waiting for a permit: when none is free the two closures
// run one after the other on the calling goroutine. That makes it safe to call
// Join from inside a closure that is itself running under Join, to any depth.
//
// A nil *ForkJoin is valid and always runs sequentially.
type ForkJoin struct {
	// maxParallelism: 0 = disabled, -1 = unlimited, >0 = extra goroutines allowed
	maxParallelism int
	sem            *semaphore.Weighted
}

// NewForkJoin creates a ForkJoin allowing up to maxParallelism goroutines in
// flight beyond the callers. Zero disables spawning and a negative value
// removes the limit.
func NewForkJoin(maxParallelism int) *ForkJoin {
	f := &ForkJoin{maxParallelism: maxParallelism}
	if maxParallelism > 0 {
		f.sem = semaphore.NewWeighted(int64(maxParallelism))
	}
	return f
}

// NewDefaultForkJoin sizes the permit count to GOMAXPROCS.
func NewDefaultForkJoin() *ForkJoin {
	return NewForkJoin(runtime.GOMAXPROCS(0))
}

// MaxParallelism returns the configured permit count.
func (f *ForkJoin) MaxParallelism() int {
	if f == nil {
		return 0
	}
	return f.maxParallelism
}

func (f *ForkJoin) tryAcquire() bool {
	switch {
	case f == nil || f.maxParallelism == 0:
		return false
	case f.maxParallelism < 0:
		return true
	default:
		return f.sem.TryAcquire(1)
	}
}

func (f *ForkJoin) release() {
	if f.sem != nil {
		f.sem.Release(1)
	}
}

// Join runs a and b and returns once both have finished. a runs on a new
// goroutine if a permit is available; b always runs on the caller. The permit
// is back in the pool by the time Join returns.
func (f *ForkJoin) Join(a, b func()) {
	if !f.tryAcquire() {
		a()
		b()
		return
	}

	var wg sync.WaitGroup
	wg.Go(func() {
		defer f.release()
		a()
	})
	b()
	wg.Wait()
}

// JoinAll runs every task, forking pairwise so at most len(tasks)-1 goroutines
// are requested.
func (f *ForkJoin) JoinAll(tasks ...func()) {
	switch len(tasks) {
	case 0:
		return
	case 1:
		tasks[0]()
		return
	}
	mid := len(tasks) / 2
	f.Join(
		func() { f.JoinAll(tasks[:mid]...) },
		func() { f.JoinAll(tasks[mid:]...) },
	)
}
