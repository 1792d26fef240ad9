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

package lanes

// F32 is the lane contract for float32: 8 lanes per 256-bit register.
// The register layout lives in float_generic.go or float_avx2.go depending on
// whether the build has GOEXPERIMENT=simd.
type F32 struct{}

func (F32) LaneSize() int { return 8 }

func (F32) PrefetchDistance() int { return 4 }

func (F32) HasHardwareSupport() bool { return hardware }

func (F32) Prefetch(src []float32) { prefetch(src) }

// F64 is the lane contract for float64: 4 lanes per 256-bit register.
type F64 struct{}

func (F64) LaneSize() int { return 4 }

func (F64) PrefetchDistance() int { return 6 }

func (F64) HasHardwareSupport() bool { return hardware }

func (F64) Prefetch(src []float64) { prefetch(src) }

// sum8 adds eight values in the same pairwise order as a hadd-based reduction.
func sum8[T Floats](v *[8]T) T {
	return ((v[0] + v[1]) + (v[2] + v[3])) + ((v[4] + v[5]) + (v[6] + v[7]))
}

func sum4[T Floats](v *[4]T) T {
	return (v[0] + v[1]) + (v[2] + v[3])
}
