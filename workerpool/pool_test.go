// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{0, 1, 3, 4, 5, 100, 1001} {
		results := make([]int, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				results[i] += i * 2
			}
		})

		for i := range n {
			if results[i] != i*2 {
				t.Errorf("n=%d: results[%d] = %d, want %d", n, i, results[i], i*2)
			}
		}
	}
}

func TestParallelForBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	var calls atomic.Int32
	pool.ParallelForBatched(n, 7, func(start, end int) {
		calls.Add(1)
		if end-start > 7 {
			t.Errorf("batch [%d, %d) larger than 7", start, end)
		}
		for i := start; i < end; i++ {
			results[i]++
		}
	})

	for i := range n {
		if results[i] != 1 {
			t.Errorf("results[%d] = %d, want 1", i, results[i])
		}
	}
	if got := calls.Load(); got != 15 {
		t.Errorf("batch calls = %d, want 15", got)
	}
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // safe to call twice

	var sum atomic.Int64
	pool.ParallelFor(10, func(start, end int) {
		if start != 0 || end != 10 {
			t.Errorf("closed pool range = [%d, %d), want [0, 10)", start, end)
		}
		for i := start; i < end; i++ {
			sum.Add(int64(i))
		}
	})
	if sum.Load() != 45 {
		t.Errorf("sum = %d, want 45", sum.Load())
	}

	pool.ParallelForBatched(10, 3, func(start, end int) {
		sum.Add(int64(end - start))
	})
	if sum.Load() != 55 {
		t.Errorf("sum = %d, want 55", sum.Load())
	}
}

func TestCloseDuringParallelFor(t *testing.T) {
	for range 50 {
		pool := New(4)

		var wg sync.WaitGroup
		var total atomic.Int64
		for range 8 {
			wg.Go(func() {
				for range 20 {
					pool.ParallelFor(64, func(start, end int) {
						total.Add(int64(end - start))
					})
					pool.ParallelForBatched(64, 5, func(start, end int) {
						total.Add(int64(end - start))
					})
				}
			})
		}
		wg.Go(pool.Close)
		wg.Wait()

		// Every loop covers its whole range whether it ran on the workers or inline.
		if want := int64(8 * 20 * 2 * 64); total.Load() != want {
			t.Fatalf("total = %d, want %d", total.Load(), want)
		}
	}
}

func TestPoolReuse(t *testing.T) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	var total atomic.Int64
	for range 100 {
		pool.ParallelFor(64, func(start, end int) {
			total.Add(int64(end - start))
		})
	}
	if total.Load() != 6400 {
		t.Errorf("total = %d, want 6400", total.Load())
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	data := make([]float32, 1<<16)
	b.SetBytes(int64(len(data) * 4))
	for b.Loop() {
		pool.ParallelFor(len(data), func(start, end int) {
			for i := start; i < end; i++ {
				data[i] += 1
			}
		})
	}
}
