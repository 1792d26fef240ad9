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

import "errors"

// Every sentinel is prefixed "matrix:" and returned wrapped with the operation
// and shapes involved. Match with errors.Is.
var (
	// ErrDimensionMismatch is returned by element-wise operations whose
	// operands differ in rows or columns.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIncompatibleDimensions is returned by Mul when lhs columns differ
	// from rhs rows.
	ErrIncompatibleDimensions = errors.New("matrix: incompatible dimensions for multiplication")

	// ErrDataLengthMismatch is returned when a supplied buffer or literal does
	// not hold exactly rows*cols elements.
	ErrDataLengthMismatch = errors.New("matrix: data length does not match shape")

	// ErrIndexOutOfRange indicates a row or column index, or a view range,
	// outside the matrix.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidShape is returned when a requested dimension is negative or
	// rows*cols overflows int.
	ErrInvalidShape = errors.New("matrix: invalid shape")
)
