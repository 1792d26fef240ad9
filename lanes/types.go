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

// Package lanes describes, per element type, how values are packed into vector
// registers and which register operations are available on the running CPU.
//
// Every supported element type has an Ops implementation with a fixed lane
// count and prefetch distance. Whether the vectorized kernels should be used is
// decided at runtime by HasHardwareSupport, so one binary runs on machines with
// and without wide vector units. Scalar[T] is the one-lane fallback that every
// type can use.
//
// Basic usage:
//
//	var ops lanes.F32
//	w := ops.LaneSize()
//	for i := 0; i+w <= len(a); i += w {
//	    ops.Store(dst[i:], ops.Add(ops.Load(a[i:]), ops.Load(b[i:])))
//	}
//	// remainder handled by the caller with scalar code
package lanes

//go:generate go run ../cmd/lanegen -kind lanes -output .

// Floats is a constraint for floating-point element types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	int32 | int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	uint32 | uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Complexes is a constraint for complex element types.
type Complexes interface {
	complex64 | complex128
}

// Element is the set of types a matrix can hold.
//
// The set is closed (no ~ approximations) so that kernels can be selected with a
// plain type switch on the element type.
type Element interface {
	Integers | Floats | Complexes
}

// Ops is the lane contract for element type T packed into register type V.
//
// Load and Store always move exactly LaneSize elements; the slices passed in must
// hold at least that many. Callers process the remainder of a buffer that does not
// fill a whole lane with scalar arithmetic.
type Ops[T Element, V any] interface {
	// LaneSize returns the number of elements per register.
	LaneSize() int

	// PrefetchDistance returns how many lanes ahead a streaming loop should prefetch.
	PrefetchDistance() int

	// HasHardwareSupport reports whether the running CPU has the vector unit these
	// ops are tuned for and the build backs lanes with native registers.
	HasHardwareSupport() bool

	Load(src []T) V
	Store(dst []T, v V)
	Add(a, b V) V
	Sub(a, b V) V
	Mul(a, b V) V
	Broadcast(s T) V

	// HorizontalSum reduces all lanes of v to a single value.
	HorizontalSum(v V) T

	// Prefetch hints that src[0] will be read soon.
	Prefetch(src []T)
}
