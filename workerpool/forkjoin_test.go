// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"slices"
	"sync/atomic"
	"testing"
	"time"
)

func TestJoinRunsBoth(t *testing.T) {
	for _, maxPar := range []int{-1, 0, 1, 4} {
		f := NewForkJoin(maxPar)
		var a, b atomic.Bool
		f.Join(func() { a.Store(true) }, func() { b.Store(true) })
		if !a.Load() || !b.Load() {
			t.Errorf("maxParallelism=%d: a=%v b=%v, want both true", maxPar, a.Load(), b.Load())
		}
	}
}

func TestNilForkJoinIsSequential(t *testing.T) {
	var f *ForkJoin
	var order []int
	f.Join(func() { order = append(order, 1) }, func() { order = append(order, 2) })
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
	if f.MaxParallelism() != 0 {
		t.Errorf("MaxParallelism() = %d, want 0", f.MaxParallelism())
	}
}

// fib recurses through Join at every level; with a tiny permit count almost
// every Join runs inline, which must not deadlock.
func fib(f *ForkJoin, n int) int {
	if n < 2 {
		return n
	}
	var x, y int
	f.Join(func() { x = fib(f, n-1) }, func() { y = fib(f, n-2) })
	return x + y
}

func TestNestedJoinDoesNotDeadlock(t *testing.T) {
	for _, maxPar := range []int{0, 1, 2, 8} {
		f := NewForkJoin(maxPar)
		done := make(chan int, 1)
		go func() { done <- fib(f, 18) }()

		select {
		case got := <-done:
			if got != 2584 {
				t.Errorf("maxParallelism=%d: fib(18) = %d, want 2584", maxPar, got)
			}
		case <-time.After(30 * time.Second):
			t.Fatalf("maxParallelism=%d: nested Join deadlocked", maxPar)
		}
	}
}

func TestJoinRespectsPermits(t *testing.T) {
	f := NewForkJoin(2)

	var inFlight, peak atomic.Int32
	work := func() {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
	}

	tasks := make([]func(), 16)
	for i := range tasks {
		tasks[i] = work
	}
	f.JoinAll(tasks...)

	// Two spawned goroutines plus the caller.
	if got := peak.Load(); got > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", got)
	}
}

func TestZeroParallelismRunsInOrder(t *testing.T) {
	f := NewForkJoin(0)
	var order []int
	for range 3 {
		f.Join(func() { order = append(order, 1) }, func() { order = append(order, 2) })
	}
	if want := []int{1, 2, 1, 2, 1, 2}; !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestJoinReturnsPermit(t *testing.T) {
	// a blocks until b runs, so each Join only finishes if a was spawned.
	for _, maxPar := range []int{-1, 1} {
		f := NewForkJoin(maxPar)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for range 5 {
				ready := make(chan struct{})
				f.Join(func() { <-ready }, func() { close(ready) })
			}
		}()

		select {
		case <-done:
		case <-time.After(30 * time.Second):
			t.Fatalf("maxParallelism=%d: Join did not spawn after an earlier Join finished", maxPar)
		}
	}
}

func TestJoinAll(t *testing.T) {
	f := NewDefaultForkJoin()
	for _, n := range []int{0, 1, 2, 7} {
		var count atomic.Int32
		tasks := make([]func(), n)
		for i := range tasks {
			tasks[i] = func() { count.Add(1) }
		}
		f.JoinAll(tasks...)
		if int(count.Load()) != n {
			t.Errorf("JoinAll(%d tasks) ran %d", n, count.Load())
		}
	}
}
