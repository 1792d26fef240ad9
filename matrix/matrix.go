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
	"math"
	"slices"
	"strings"

	"github.com/ajroetker/linalg/lanes"
)

// Matrix is a dense rows x cols matrix stored row-major in a single buffer.
// Element (r, c) lives at data[r*cols+c] and len(data) == rows*cols always.
//
// The zero value is a valid 0x0 matrix. Every operation that returns a
// *Matrix allocates a fresh buffer; none alias their inputs.
type Matrix[T lanes.Element] struct {
	rows, cols int
	data       []T
}

// New builds a matrix from a rectangular literal, copying the rows.
// Ragged input fails with ErrDataLengthMismatch.
//
//	m, err := matrix.New([][]int32{{1, 2, 3}, {4, 5, 6}})
func New[T lanes.Element](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return &Matrix[T]{}, nil
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("matrix: new: row %d has %d elements, row 0 has %d: %w",
				i, len(row), cols, ErrDataLengthMismatch)
		}
		data = append(data, row...)
	}
	return &Matrix[T]{rows: len(rows), cols: cols, data: data}, nil
}

// FromSlice wraps data as a rows x cols matrix. The matrix takes ownership of
// data; the caller must not modify it afterwards.
func FromSlice[T lanes.Element](rows, cols int, data []T) (*Matrix[T], error) {
	if !validShape(rows, cols) {
		return nil, fmt.Errorf("matrix: from slice %dx%d: %w", rows, cols, ErrInvalidShape)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("matrix: from slice %dx%d with %d elements: %w",
			rows, cols, len(data), ErrDataLengthMismatch)
	}
	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}

// Zeros returns a rows x cols matrix filled with the zero value of T.
func Zeros[T lanes.Element](rows, cols int) (*Matrix[T], error) {
	if !validShape(rows, cols) {
		return nil, fmt.Errorf("matrix: zeros %dx%d: %w", rows, cols, ErrInvalidShape)
	}
	return zeros[T](rows, cols), nil
}

// Identity returns the n x n identity matrix.
func Identity[T lanes.Element](n int) (*Matrix[T], error) {
	if !validShape(n, n) {
		return nil, fmt.Errorf("matrix: identity %d: %w", n, ErrInvalidShape)
	}
	m := zeros[T](n, n)
	for i := range n {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// validShape reports whether both dimensions are non-negative and rows*cols
// fits in an int.
func validShape(rows, cols int) bool {
	if rows < 0 || cols < 0 {
		return false
	}
	return cols == 0 || rows <= math.MaxInt/cols
}

func zeros[T lanes.Element](rows, cols int) *Matrix[T] {
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// Len returns rows*cols.
func (m *Matrix[T]) Len() int { return len(m.data) }

// Data returns a copy of the row-major buffer.
func (m *Matrix[T]) Data() []T { return slices.Clone(m.data) }

func (m *Matrix[T]) inBounds(r, c int) bool {
	return r >= 0 && r < m.rows && c >= 0 && c < m.cols
}

// At returns element (r, c).
func (m *Matrix[T]) At(r, c int) (T, error) {
	if !m.inBounds(r, c) {
		var zero T
		return zero, fmt.Errorf("matrix: at (%d, %d) of %dx%d: %w", r, c, m.rows, m.cols, ErrIndexOutOfRange)
	}
	return m.data[r*m.cols+c], nil
}

// Set writes element (r, c).
func (m *Matrix[T]) Set(r, c int, v T) error {
	if !m.inBounds(r, c) {
		return fmt.Errorf("matrix: set (%d, %d) of %dx%d: %w", r, c, m.rows, m.cols, ErrIndexOutOfRange)
	}
	m.data[r*m.cols+c] = v
	return nil
}

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: slices.Clone(m.data)}
}

// Equal reports whether o has the same shape and identical elements.
// Floating-point elements are compared with ==, so NaN is never equal.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.rows == o.rows && m.cols == o.cols && slices.Equal(m.data, o.data)
}

// String renders each row as "[a, b, c]" followed by a newline.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for r := range m.rows {
		writeRow(&sb, m.data[r*m.cols:(r+1)*m.cols])
	}
	return sb.String()
}

func writeRow[T lanes.Element](sb *strings.Builder, row []T) {
	sb.WriteByte('[')
	for i, v := range row {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(sb, v)
	}
	sb.WriteString("]\n")
}
