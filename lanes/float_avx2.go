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

//go:build amd64 && goexperiment.simd

package lanes

import "simd/archsimd"

// This file backs the float lanes with archsimd registers. The methods are only
// reached when HasHardwareSupport reported AVX2, which implies the AVX
// instructions archsimd emits for 256-bit vectors.

// NativeRegisters reports whether this build backs lanes with hardware vector
// registers. When false every lane type is a plain Go array and the kernels
// compiled from it are no faster than scalar loops.
const NativeRegisters = true

// Float32x8 holds 8 float32 lanes in a YMM register.
type Float32x8 struct{ v archsimd.Float32x8 }

// Float64x4 holds 4 float64 lanes in a YMM register.
type Float64x4 struct{ v archsimd.Float64x4 }

func (F32) Load(src []float32) Float32x8 {
	return Float32x8{v: archsimd.LoadFloat32x8Slice(src[:8])}
}

func (F32) Store(dst []float32, v Float32x8) { v.v.StoreSlice(dst[:8]) }

func (F32) Add(a, b Float32x8) Float32x8 { return Float32x8{v: a.v.Add(b.v)} }

func (F32) Sub(a, b Float32x8) Float32x8 { return Float32x8{v: a.v.Sub(b.v)} }

func (F32) Mul(a, b Float32x8) Float32x8 { return Float32x8{v: a.v.Mul(b.v)} }

func (F32) Broadcast(s float32) Float32x8 {
	return Float32x8{v: archsimd.BroadcastFloat32x8(s)}
}

func (F32) HorizontalSum(v Float32x8) float32 {
	var buf [8]float32
	v.v.StoreSlice(buf[:])
	return sum8(&buf)
}

func (F64) Load(src []float64) Float64x4 {
	return Float64x4{v: archsimd.LoadFloat64x4Slice(src[:4])}
}

func (F64) Store(dst []float64, v Float64x4) { v.v.StoreSlice(dst[:4]) }

func (F64) Add(a, b Float64x4) Float64x4 { return Float64x4{v: a.v.Add(b.v)} }

func (F64) Sub(a, b Float64x4) Float64x4 { return Float64x4{v: a.v.Sub(b.v)} }

func (F64) Mul(a, b Float64x4) Float64x4 { return Float64x4{v: a.v.Mul(b.v)} }

func (F64) Broadcast(s float64) Float64x4 {
	return Float64x4{v: archsimd.BroadcastFloat64x4(s)}
}

func (F64) HorizontalSum(v Float64x4) float64 {
	var buf [4]float64
	v.v.StoreSlice(buf[:])
	return sum4(&buf)
}
