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

// Package vec provides element-wise slice arithmetic and dot products on top
// of the lane contracts in package lanes.
//
// Every element type has concrete lane kernels (AddToFloat32, SubInPlaceInt64,
// DotComplex64, ...) generated from one template, so the lane operations of
// the concrete ops type inline into the loop. The kernels process full lanes,
// prefetch PrefetchDistance lanes ahead once per cache line, and finish the
// tail that does not fill a lane with scalar code.
//
// The generic AddTo, SubTo, AddInPlace, SubInPlace and Dot pick the lane kernel
// for T when lanes.HasHardwareSupport reports a vector unit, and the Scalar*
// loops otherwise. Callers that make that choice themselves, such as the
// matrix engines, bind the typed kernels directly.
//
// Example:
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	result := vec.Dot(a, b)  // 1*4 + 2*5 + 3*6 = 32
package vec

//go:generate go run ../../cmd/lanegen -kind kernels -output .
