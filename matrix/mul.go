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
	"context"
	"fmt"
	"log/slog"

	"github.com/ajroetker/linalg/lanes"
)

// Mul returns the matrix product m * o. It fails with ErrIncompatibleDimensions
// unless m.Cols() == o.Rows(). The strategy is chosen by SelectMulPath.
func (m *Matrix[T]) Mul(o *Matrix[T]) (*Matrix[T], error) {
	if m.cols != o.rows {
		return nil, fmt.Errorf("matrix: mul %dx%d * %dx%d: %w", m.rows, m.cols, o.rows, o.cols, ErrIncompatibleDimensions)
	}

	kern := kernelsFor[T]()
	path := choosePath(kern, m.rows, m.cols, o.cols)
	if l, ok := debugEnabled(); ok {
		l.LogAttrs(context.Background(), slog.LevelDebug, "matrix multiply",
			slog.String("path", path.String()),
			slog.String("type", kern.name),
			slog.Int("m", m.rows),
			slog.Int("k", m.cols),
			slog.Int("n", o.cols),
			slog.String("lanes", lanes.CurrentName()))
	}
	return mulPath(kern, path, m, o), nil
}

// mul dispatches an already validated product. Strassen's recursion
// re-enters here for each of its seven products.
func mul[T lanes.Element](kern *kernels[T], a, b *Matrix[T]) *Matrix[T] {
	return mulPath(kern, choosePath(kern, a.rows, a.cols, b.cols), a, b)
}

func mulPath[T lanes.Element](kern *kernels[T], path MulPath, a, b *Matrix[T]) *Matrix[T] {
	switch path {
	case MulStrassen:
		return mulStrassen(kern, a, b)
	case MulSIMD:
		return mulSIMD(kern, a, b)
	default:
		return mulScalar(a, b)
	}
}

// mulScalar is the reference triple loop, accumulating from zero in p order.
func mulScalar[T lanes.Element](a, b *Matrix[T]) *Matrix[T] {
	m, k, n := a.rows, a.cols, b.cols
	out := zeros[T](m, n)
	for i := range m {
		for j := range n {
			var sum T
			for p := range k {
				sum += a.data[i*k+p] * b.data[p*n+j]
			}
			out.data[i*n+j] = sum
		}
	}
	return out
}

// mulSIMD transposes b so that every output cell is a dot product of two
// contiguous rows, then splits the output rows over the pool.
func mulSIMD[T lanes.Element](kern *kernels[T], a, b *Matrix[T]) *Matrix[T] {
	m, k, n := a.rows, a.cols, b.cols
	bt := b.Transpose()
	out := zeros[T](m, n)

	pool().ParallelFor(m, func(start, end int) {
		for i := start; i < end; i++ {
			row := a.data[i*k : (i+1)*k]
			dst := out.data[i*n : (i+1)*n]
			for j := range n {
				dst[j] = kern.dot(row, bt.data[j*k:(j+1)*k])
			}
		}
	})
	return out
}
