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

// mulStrassen multiplies two n x n matrices, n a power of two, with seven
// half-size products instead of eight:
//
//	P1 = A11 (B12 - B22)       P5 = (A11 + A22)(B11 + B22)
//	P2 = (A11 + A12) B22       P6 = (A12 - A22)(B21 + B22)
//	P3 = (A21 + A22) B11       P7 = (A11 - A21)(B11 + B12)
//	P4 = A22 (B21 - B11)
//
//	C11 = P5 + P4 - P2 + P6    C12 = P1 + P2
//	C21 = P3 + P4              C22 = P5 + P1 - P3 - P7
//
// Products are computed as {P1, P2} || {P3, P4}, then {P5, P6} || P7. Each
// quadrant is an owned copy and each product a fresh matrix, so the parallel
// branches share nothing mutable.
func mulStrassen[T lanes.Element](kern *kernels[T], a, b *Matrix[T]) *Matrix[T] {
	n := a.rows
	h := n / 2

	a11, a12, a21, a22 := a.submatrix(0, 0, h, h), a.submatrix(0, h, h, h), a.submatrix(h, 0, h, h), a.submatrix(h, h, h, h)
	b11, b12, b21, b22 := b.submatrix(0, 0, h, h), b.submatrix(0, h, h, h), b.submatrix(h, 0, h, h), b.submatrix(h, h, h, h)

	var p1, p2, p3, p4, p5, p6, p7 *Matrix[T]
	fj := forkJoin.Load()

	fj.Join(
		func() {
			p1 = mul(kern, a11, sub(b12, b22))
			p2 = mul(kern, add(a11, a12), b22)
		},
		func() {
			p3 = mul(kern, add(a21, a22), b11)
			p4 = mul(kern, a22, sub(b21, b11))
		},
	)
	fj.Join(
		func() {
			p5 = mul(kern, add(a11, a22), add(b11, b22))
			p6 = mul(kern, sub(a12, a22), add(b21, b22))
		},
		func() {
			p7 = mul(kern, sub(a11, a21), add(b11, b12))
		},
	)

	c11 := add(sub(add(p5, p4), p2), p6)
	c12 := add(p1, p2)
	c21 := add(p3, p4)
	c22 := sub(sub(add(p5, p1), p3), p7)

	out := zeros[T](n, n)
	out.place(0, 0, c11)
	out.place(0, h, c12)
	out.place(h, 0, c21)
	out.place(h, h, c22)
	return out
}

// place copies q into m with q's (0, 0) at (r0, c0).
func (m *Matrix[T]) place(r0, c0 int, q *Matrix[T]) {
	for i := range q.rows {
		dst := m.data[(r0+i)*m.cols+c0:]
		copy(dst[:q.cols], q.data[i*q.cols:(i+1)*q.cols])
	}
}
