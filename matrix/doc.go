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

// Package matrix implements a generic dense row-major matrix with element-wise
// arithmetic, multiplication, transpose and read-only strided views.
//
// Supported element types are the fixed-width integers, float32, float64,
// complex64 and complex128 (see lanes.Element). For every call the engine picks
// an execution strategy from the element type and the problem size:
//
//   - Element-wise add and subtract switch from scalar loops to blocked,
//     parallel lane kernels once the matrix holds SIMDElementwiseThreshold
//     elements and the CPU has a usable vector unit.
//   - Multiplication uses Strassen's algorithm for square power-of-two operands
//     of at least StrassenCutover rows, a transposed-rhs lane dot product for
//     large outputs, and a scalar triple loop otherwise.
//
// All strategies agree exactly for integer types. Floating-point and complex
// results agree up to rounding, since the accumulation order differs.
//
// Shape errors are returned, never panicked, and match one of the sentinel
// errors with errors.Is:
//
//	c, err := a.Mul(b)
//	if errors.Is(err, matrix.ErrIncompatibleDimensions) {
//	    ...
//	}
//
// A Matrix is not safe for concurrent mutation. Concurrent reads are fine.
package matrix
