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

package vec

import "github.com/ajroetker/linalg/lanes"

// ScalarAddTo computes dst[i] = a[i] + b[i] one element at a time over the
// shortest of the three slices.
func ScalarAddTo[T lanes.Element](dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	dst, a, b = dst[:n], a[:n], b[:n]
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// ScalarSubTo computes dst[i] = a[i] - b[i] one element at a time over the
// shortest of the three slices.
func ScalarSubTo[T lanes.Element](dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	dst, a, b = dst[:n], a[:n], b[:n]
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// ScalarAddInPlace computes dst[i] += s[i] over the shorter slice.
func ScalarAddInPlace[T lanes.Element](dst, s []T) {
	ScalarAddTo(dst, dst, s)
}

// ScalarSubInPlace computes dst[i] -= s[i] over the shorter slice.
func ScalarSubInPlace[T lanes.Element](dst, s []T) {
	ScalarSubTo(dst, dst, s)
}

// ScalarDot returns the dot product of a and b over the shorter slice,
// summed sequentially from zero.
func ScalarDot[T lanes.Element](a, b []T) T {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
