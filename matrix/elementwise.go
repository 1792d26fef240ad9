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
	"fmt"

	"github.com/ajroetker/linalg/lanes"
)

func sameShape[T lanes.Element](op string, a, b *Matrix[T]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return fmt.Errorf("matrix: %s %dx%d and %dx%d: %w", op, a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	return nil
}

// Add returns m + o as a new matrix.
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) {
	if err := sameShape("add", m, o); err != nil {
		return nil, err
	}
	return add(m, o), nil
}

// Sub returns m - o as a new matrix.
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) {
	if err := sameShape("sub", m, o); err != nil {
		return nil, err
	}
	return sub(m, o), nil
}

// AddAssign adds o to m in place.
func (m *Matrix[T]) AddAssign(o *Matrix[T]) error {
	if err := sameShape("add assign", m, o); err != nil {
		return err
	}
	k := kernelsFor[T]().pick(len(m.data), SIMDElementwiseThreshold)
	forEachBlock(k, len(m.data), func(start, end int) {
		k.addInPlace(m.data[start:end], o.data[start:end])
	})
	return nil
}

// SubAssign subtracts o from m in place.
func (m *Matrix[T]) SubAssign(o *Matrix[T]) error {
	if err := sameShape("sub assign", m, o); err != nil {
		return err
	}
	k := kernelsFor[T]().pick(len(m.data), SIMDElementwiseThreshold)
	forEachBlock(k, len(m.data), func(start, end int) {
		k.subInPlace(m.data[start:end], o.data[start:end])
	})
	return nil
}

// Scale returns m with every element multiplied by s.
func (m *Matrix[T]) Scale(s T) *Matrix[T] {
	out := zeros[T](m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = v * s
	}
	return out
}

// add and sub assume equal shapes and always allocate the result.
func add[T lanes.Element](a, b *Matrix[T]) *Matrix[T] {
	out := zeros[T](a.rows, a.cols)
	k := kernelsFor[T]().pick(len(out.data), SIMDElementwiseThreshold)
	forEachBlock(k, len(out.data), func(start, end int) {
		k.addTo(out.data[start:end], a.data[start:end], b.data[start:end])
	})
	return out
}

func sub[T lanes.Element](a, b *Matrix[T]) *Matrix[T] {
	out := zeros[T](a.rows, a.cols)
	k := kernelsFor[T]().pick(len(out.data), SIMDElementwiseThreshold)
	forEachBlock(k, len(out.data), func(start, end int) {
		k.subTo(out.data[start:end], a.data[start:end], b.data[start:end])
	})
	return out
}

// forEachBlock calls fn over disjoint ranges covering [0, n). The scalar table
// gets one range on the caller. The vector table splits into blocks of
// laneSize*ElementwiseBlockLanes elements spread over the pool, so only the
// final range can end in a partial lane.
func forEachBlock[T lanes.Element](k *kernels[T], n int, fn func(start, end int)) {
	if n == 0 {
		return
	}
	if k.scalar == nil {
		fn(0, n)
		return
	}

	block := k.laneSize * ElementwiseBlockLanes
	numBlocks := (n + block - 1) / block
	pool().ParallelFor(numBlocks, func(first, last int) {
		fn(first*block, min(last*block, n))
	})
}
