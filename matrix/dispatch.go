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

// Size-based dispatch thresholds.
// Tuned empirically - adjust based on benchmarks on target hardware.
const (
	// SIMDElementwiseThreshold is the element count from which add and
	// subtract use the blocked parallel lane kernels.
	SIMDElementwiseThreshold = 512 * 512 // 262144 elements

	// ElementwiseBlockLanes is the number of lanes in one element-wise block.
	// A block of LaneSize*ElementwiseBlockLanes elements is one parallel task.
	ElementwiseBlockLanes = 128

	// SIMDMulThreshold is the output size (rows*cols) from which Mul uses the
	// transposed-rhs lane dot product.
	SIMDMulThreshold = 256 * 256 // 65536 cells

	// SIMDMinInner is the smallest inner dimension worth a lane dot product.
	SIMDMinInner = 16

	// StrassenCutover is the smallest power-of-two square size multiplied with
	// Strassen's algorithm. Below it the recursion falls back to the other paths.
	StrassenCutover = 128

	// MinTransposeParallelOps is the element count from which Transpose splits
	// the source into row strips processed concurrently.
	MinTransposeParallelOps = 64 * 64

	// TransposeRowsPerStrip defines how many rows each worker processes.
	TransposeRowsPerStrip = 64
)

// MulPath identifies the strategy Mul uses for a given shape.
type MulPath int

const (
	// MulScalar is the triple loop.
	MulScalar MulPath = iota
	// MulSIMD transposes rhs and computes each cell as a lane dot product.
	MulSIMD
	// MulStrassen splits into quadrants and recurses through seven products.
	MulStrassen
)

// String returns a human-readable name for the path.
func (p MulPath) String() string {
	switch p {
	case MulScalar:
		return "scalar"
	case MulSIMD:
		return "simd"
	case MulStrassen:
		return "strassen"
	default:
		return "unknown"
	}
}

// SelectMulPath returns the path Mul takes for an m x k by k x n product of
// element type T on the running CPU.
//
// Precedence:
//   - Strassen: m == k == n, a power of two, and at least StrassenCutover
//   - SIMD: m*n >= SIMDMulThreshold, k >= SIMDMinInner and T has hardware support
//   - Scalar otherwise
func SelectMulPath[T lanes.Element](m, k, n int) MulPath {
	return choosePath(kernelsFor[T](), m, k, n)
}

func choosePath[T lanes.Element](kern *kernels[T], m, k, n int) MulPath {
	if m == k && k == n && n >= StrassenCutover && isPowerOfTwo(n) {
		return MulStrassen
	}
	if m*n >= SIMDMulThreshold && k >= SIMDMinInner && kern.hardware() {
		return MulSIMD
	}
	return MulScalar
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
