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

import "unsafe"

// prefetch issues a read prefetch for the cache line holding src[0].
// Empty slices are ignored so streaming loops can prefetch past the end.
func prefetch[T Element](src []T) {
	if len(src) == 0 {
		return
	}
	prefetchT0(unsafe.Pointer(unsafe.SliceData(src)))
}
