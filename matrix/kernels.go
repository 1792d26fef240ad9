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
	"github.com/ajroetker/linalg/lanes"
	"github.com/ajroetker/linalg/lanes/vec"
)

// kernels holds the slice kernels for one element type, so the engines can
// stay generic over T alone and never name a register type. Every function is
// a concrete typed kernel, never a call through the lanes.Ops interface.
type kernels[T lanes.Element] struct {
	name     string
	laneSize int
	hardware func() bool

	// scalar is the one-lane table for the same type; nil on the scalar table.
	scalar *kernels[T]

	addTo      func(dst, a, b []T)
	subTo      func(dst, a, b []T)
	addInPlace func(dst, s []T)
	subInPlace func(dst, s []T)
	dot        func(a, b []T) T
}

// newKernels builds the vector table from the typed lane kernels of ops and
// attaches the scalar loops as its fallback.
func newKernels[T lanes.Element, V any](name string, ops lanes.Ops[T, V],
	addTo, subTo func(dst, a, b []T),
	addInPlace, subInPlace func(dst, s []T),
	dot func(a, b []T) T,
) *kernels[T] {
	var one lanes.Scalar[T]
	return &kernels[T]{
		name:       name,
		laneSize:   ops.LaneSize(),
		hardware:   ops.HasHardwareSupport,
		addTo:      addTo,
		subTo:      subTo,
		addInPlace: addInPlace,
		subInPlace: subInPlace,
		dot:        dot,
		scalar: &kernels[T]{
			name:       name,
			laneSize:   one.LaneSize(),
			hardware:   one.HasHardwareSupport,
			addTo:      vec.ScalarAddTo[T],
			subTo:      vec.ScalarSubTo[T],
			addInPlace: vec.ScalarAddInPlace[T],
			subInPlace: vec.ScalarSubInPlace[T],
			dot:        vec.ScalarDot[T],
		},
	}
}

var (
	float32Kernels = newKernels[float32, lanes.Float32x8]("float32", lanes.F32{},
		vec.AddToFloat32, vec.SubToFloat32, vec.AddInPlaceFloat32, vec.SubInPlaceFloat32, vec.DotFloat32)
	float64Kernels = newKernels[float64, lanes.Float64x4]("float64", lanes.F64{},
		vec.AddToFloat64, vec.SubToFloat64, vec.AddInPlaceFloat64, vec.SubInPlaceFloat64, vec.DotFloat64)
	int32Kernels = newKernels[int32, lanes.Int32x8]("int32", lanes.I32{},
		vec.AddToInt32, vec.SubToInt32, vec.AddInPlaceInt32, vec.SubInPlaceInt32, vec.DotInt32)
	uint32Kernels = newKernels[uint32, lanes.Uint32x8]("uint32", lanes.U32{},
		vec.AddToUint32, vec.SubToUint32, vec.AddInPlaceUint32, vec.SubInPlaceUint32, vec.DotUint32)
	int64Kernels = newKernels[int64, lanes.Int64x4]("int64", lanes.I64{},
		vec.AddToInt64, vec.SubToInt64, vec.AddInPlaceInt64, vec.SubInPlaceInt64, vec.DotInt64)
	uint64Kernels = newKernels[uint64, lanes.Uint64x4]("uint64", lanes.U64{},
		vec.AddToUint64, vec.SubToUint64, vec.AddInPlaceUint64, vec.SubInPlaceUint64, vec.DotUint64)
	complex64Kernels = newKernels[complex64, lanes.Complex64x4]("complex64", lanes.C64{},
		vec.AddToComplex64, vec.SubToComplex64, vec.AddInPlaceComplex64, vec.SubInPlaceComplex64, vec.DotComplex64)
	complex128Kernels = newKernels[complex128, lanes.Complex128x2]("complex128", lanes.C128{},
		vec.AddToComplex128, vec.SubToComplex128, vec.AddInPlaceComplex128, vec.SubInPlaceComplex128, vec.DotComplex128)
)

// kernelsFor returns the kernel table for T. Element is a closed type set, so
// the switch is exhaustive.
func kernelsFor[T lanes.Element]() *kernels[T] {
	var zero T
	var k any
	switch any(zero).(type) {
	case float32:
		k = float32Kernels
	case float64:
		k = float64Kernels
	case int32:
		k = int32Kernels
	case uint32:
		k = uint32Kernels
	case int64:
		k = int64Kernels
	case uint64:
		k = uint64Kernels
	case complex64:
		k = complex64Kernels
	case complex128:
		k = complex128Kernels
	}
	return k.(*kernels[T])
}

// pick returns the vector table when n elements justify it and the CPU can
// run it, and the scalar table otherwise.
func (k *kernels[T]) pick(n, threshold int) *kernels[T] {
	if k.scalar == nil || (n >= threshold && k.hardware()) {
		return k
	}
	return k.scalar
}
