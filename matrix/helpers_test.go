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
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/linalg/lanes"
)

// fromInt converts a small integer to T. Complex types get a non-zero
// imaginary part so the complex multiply is exercised.
func fromInt[T lanes.Element](v int) T {
	var out T
	switch p := any(&out).(type) {
	case *int32:
		*p = int32(v)
	case *int64:
		*p = int64(v)
	case *uint32:
		*p = uint32(v)
	case *uint64:
		*p = uint64(v)
	case *float32:
		*p = float32(v)
	case *float64:
		*p = float64(v)
	case *complex64:
		*p = complex(float32(v), float32(v%3))
	case *complex128:
		*p = complex(float64(v), float64(v%3))
	}
	return out
}

// randMatrix fills a rows x cols matrix with small integers in [-8, 8], which
// keeps integer products far from overflow.
func randMatrix[T lanes.Element](r *rand.Rand, rows, cols int) *Matrix[T] {
	m := zeros[T](rows, cols)
	for i := range m.data {
		m.data[i] = fromInt[T](r.IntN(17) - 8)
	}
	return m
}

func mustNew[T lanes.Element](t testing.TB, rows [][]T) *Matrix[T] {
	t.Helper()
	m, err := New(rows)
	if err != nil {
		t.Fatalf("New(%v): %v", rows, err)
	}
	return m
}

func magnitude[T lanes.Element](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	return 0
}

// closeEnough compares integers exactly and floating-point or complex values
// with a relative tolerance.
func closeEnough[T lanes.Element](want, got T, tol float64) bool {
	switch any(want).(type) {
	case float32, float64, complex64, complex128:
		return magnitude(want-got) <= tol*(1+magnitude(want))
	}
	return want == got
}

func requireClose[T lanes.Element](t *testing.T, want, got *Matrix[T], tol float64) {
	t.Helper()
	if want.rows != got.rows || want.cols != got.cols {
		t.Fatalf("shape = %dx%d, want %dx%d", got.rows, got.cols, want.rows, want.cols)
	}
	for i := range want.data {
		if !closeEnough(want.data[i], got.data[i], tol) {
			t.Fatalf("element (%d, %d) = %v, want %v", i/want.cols, i%want.cols, got.data[i], want.data[i])
		}
	}
}

// lanesRunnable reports whether the vector tables can execute here. Array
// lanes run anywhere; archsimd lanes need the detected vector unit.
func lanesRunnable() bool {
	return !lanes.NativeRegisters || lanes.HasHardwareSupport()
}

func requireVectorKernels[T lanes.Element](t *testing.T) *kernels[T] {
	t.Helper()
	k := kernelsFor[T]()
	if !lanesRunnable() {
		t.Skipf("%s: no vector unit (level %s)", k.name, lanes.CurrentName())
	}
	return k
}
