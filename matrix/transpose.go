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

import "github.com/ajroetker/linalg/lanes"

// Transpose returns a new Cols() x Rows() matrix with element (j, i) equal to
// m's element (i, j). Large matrices are transposed in parallel row strips.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := zeros[T](m.cols, m.rows)
	if len(m.data) < MinTransposeParallelOps {
		transposeRows(m.data, 0, m.rows, m.rows, m.cols, out.data)
		return out
	}

	// Each strip of source rows fills a disjoint column band of out.
	pool().ParallelForBatched(m.rows, TransposeRowsPerStrip, func(rowStart, rowEnd int) {
		transposeRows(m.data, rowStart, rowEnd, m.rows, m.cols, out.data)
	})
	return out
}

// transposeRows writes source rows [rowStart, rowEnd) of the rows x cols
// matrix src into dst, which is cols x rows.
func transposeRows[T lanes.Element](src []T, rowStart, rowEnd, rows, cols int, dst []T) {
	for i := rowStart; i < rowEnd; i++ {
		row := src[i*cols : (i+1)*cols]
		for j, v := range row {
			dst[j*rows+i] = v
		}
	}
}

// submatrix returns an owned copy of the rows x cols block starting at (r0, c0).
// The caller guarantees the block lies inside m.
func (m *Matrix[T]) submatrix(r0, c0, rows, cols int) *Matrix[T] {
	out := zeros[T](rows, cols)
	for i := range rows {
		off := (r0+i)*m.cols + c0
		copy(out.data[i*cols:(i+1)*cols], m.data[off:off+cols])
	}
	return out
}
