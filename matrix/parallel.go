// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matrix

import (
	"sync"
	"sync/atomic"

	"github.com/ajroetker/linalg/workerpool"
)

var (
	// defaultPool is shared by every flat parallel loop in the package and is
	// started on first use.
	defaultPool  = sync.OnceValue(func() *workerpool.Pool { return workerpool.New(0) })
	poolOverride atomic.Pointer[workerpool.Pool]

	forkJoin atomic.Pointer[workerpool.ForkJoin]
)

func init() {
	forkJoin.Store(workerpool.NewDefaultForkJoin())
}

// SetPool makes the package run its data-parallel loops (element-wise blocks,
// multiplication rows, transpose strips) on p. Passing nil restores the
// package's own GOMAXPROCS-sized pool. The caller keeps ownership of p.
func SetPool(p *workerpool.Pool) {
	poolOverride.Store(p)
}

// SetMaxParallelism bounds how many extra goroutines Strassen's recursion may
// have in flight. Zero makes the recursion sequential and a negative value
// removes the bound. The default is GOMAXPROCS.
func SetMaxParallelism(n int) {
	forkJoin.Store(workerpool.NewForkJoin(n))
}

func pool() *workerpool.Pool {
	if p := poolOverride.Load(); p != nil {
		return p
	}
	return defaultPool()
}
