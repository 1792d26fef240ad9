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

//go:build !amd64 || !goexperiment.simd

package lanes

// NativeRegisters reports whether this build backs lanes with hardware vector
// registers. When false every lane type is a plain Go array and the kernels
// compiled from it are no faster than scalar loops.
const NativeRegisters = false

// Float32x8 holds 8 float32 lanes.
type Float32x8 struct{ v [8]float32 }

// Float64x4 holds 4 float64 lanes.
type Float64x4 struct{ v [4]float64 }

func (F32) Load(src []float32) Float32x8 { return Float32x8{v: [8]float32(src)} }

func (F32) Store(dst []float32, v Float32x8) { *(*[8]float32)(dst) = v.v }

func (F32) Add(a, b Float32x8) Float32x8 {
	for i := range a.v {
		a.v[i] += b.v[i]
	}
	return a
}

func (F32) Sub(a, b Float32x8) Float32x8 {
	for i := range a.v {
		a.v[i] -= b.v[i]
	}
	return a
}

func (F32) Mul(a, b Float32x8) Float32x8 {
	for i := range a.v {
		a.v[i] *= b.v[i]
	}
	return a
}

func (F32) Broadcast(s float32) Float32x8 {
	return Float32x8{v: [8]float32{s, s, s, s, s, s, s, s}}
}

func (F32) HorizontalSum(v Float32x8) float32 { return sum8(&v.v) }

func (F64) Load(src []float64) Float64x4 { return Float64x4{v: [4]float64(src)} }

func (F64) Store(dst []float64, v Float64x4) { *(*[4]float64)(dst) = v.v }

func (F64) Add(a, b Float64x4) Float64x4 {
	for i := range a.v {
		a.v[i] += b.v[i]
	}
	return a
}

func (F64) Sub(a, b Float64x4) Float64x4 {
	for i := range a.v {
		a.v[i] -= b.v[i]
	}
	return a
}

func (F64) Mul(a, b Float64x4) Float64x4 {
	for i := range a.v {
		a.v[i] *= b.v[i]
	}
	return a
}

func (F64) Broadcast(s float64) Float64x4 {
	return Float64x4{v: [4]float64{s, s, s, s}}
}

func (F64) HorizontalSum(v Float64x4) float64 { return sum4(&v.v) }
