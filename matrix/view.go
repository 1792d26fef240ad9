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
	"strings"

	"github.com/ajroetker/linalg/lanes"
)

// View is a read-only rectangular window into a Matrix. It does not copy: it
// observes later writes to the source through Set or the compound-assign
// methods.
//
// Rows of a view are contiguous runs of the source buffer stride elements
// apart, so any row range combined with any column range yields a true
// rectangle.
type View[T lanes.Element] struct {
	rows, cols int
	stride     int
	// data starts at the view's (0, 0) element and ends just past its last one.
	data []T
}

// View returns the window over rows [r0, r1) and columns [c0, c1).
// Ranges must satisfy 0 <= r0 <= r1 <= Rows() and 0 <= c0 <= c1 <= Cols();
// otherwise the error wraps ErrIndexOutOfRange. Empty ranges give an empty view.
func (m *Matrix[T]) View(r0, r1, c0, c1 int) (View[T], error) {
	if r0 < 0 || r0 > r1 || r1 > m.rows || c0 < 0 || c0 > c1 || c1 > m.cols {
		return View[T]{}, fmt.Errorf("matrix: view [%d:%d, %d:%d] of %dx%d: %w",
			r0, r1, c0, c1, m.rows, m.cols, ErrIndexOutOfRange)
	}

	v := View[T]{rows: r1 - r0, cols: c1 - c0, stride: m.cols}
	if v.rows == 0 || v.cols == 0 {
		return v, nil
	}
	start := r0*m.cols + c0
	end := (r1-1)*m.cols + c1
	v.data = m.data[start:end:end]
	return v, nil
}

// Rows returns the number of rows in the view.
func (v View[T]) Rows() int { return v.rows }

// Cols returns the number of columns in the view.
func (v View[T]) Cols() int { return v.cols }

// Shape returns (rows, cols).
func (v View[T]) Shape() (rows, cols int) { return v.rows, v.cols }

func (v View[T]) row(i int) []T {
	if v.cols == 0 {
		return nil
	}
	off := i * v.stride
	return v.data[off : off+v.cols]
}

// At returns element (r, c) of the view.
func (v View[T]) At(r, c int) (T, error) {
	if r < 0 || r >= v.rows || c < 0 || c >= v.cols {
		var zero T
		return zero, fmt.Errorf("matrix: view at (%d, %d) of %dx%d: %w", r, c, v.rows, v.cols, ErrIndexOutOfRange)
	}
	return v.data[r*v.stride+c], nil
}

// ToMatrix copies the view into a new, independently owned matrix.
func (v View[T]) ToMatrix() *Matrix[T] {
	m := zeros[T](v.rows, v.cols)
	for i := range v.rows {
		copy(m.data[i*v.cols:], v.row(i))
	}
	return m
}

// Equal reports whether o has the same shape and identical elements.
func (v View[T]) Equal(o View[T]) bool {
	if v.rows != o.rows || v.cols != o.cols {
		return false
	}
	for i := range v.rows {
		a, b := v.row(i), o.row(i)
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

// String renders the view like Matrix.String.
func (v View[T]) String() string {
	var sb strings.Builder
	for i := range v.rows {
		writeRow(&sb, v.row(i))
	}
	return sb.String()
}
