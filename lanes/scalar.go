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

// Scalar is the one-lane fallback available for every element type.
// It satisfies Ops[T, T] and never claims hardware support, so engines that
// receive it always take their scalar path.
type Scalar[T Element] struct{}

func (Scalar[T]) LaneSize() int { return 1 }

func (Scalar[T]) PrefetchDistance() int { return 0 }

func (Scalar[T]) HasHardwareSupport() bool { return false }

func (Scalar[T]) Load(src []T) T { return src[0] }

func (Scalar[T]) Store(dst []T, v T) { dst[0] = v }

func (Scalar[T]) Add(a, b T) T { return a + b }

func (Scalar[T]) Sub(a, b T) T { return a - b }

func (Scalar[T]) Mul(a, b T) T { return a * b }

func (Scalar[T]) Broadcast(s T) T { return s }

func (Scalar[T]) HorizontalSum(v T) T { return v }

func (Scalar[T]) Prefetch(src []T) {}
