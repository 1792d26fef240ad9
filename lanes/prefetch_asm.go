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

//go:build (amd64 || arm64) && !noasm

package lanes

import "unsafe"

// prefetchT0 prefetches the cache line at addr into all cache levels
// (PREFETCHT0 on amd64, PRFM PLDL1KEEP on arm64).
//
//go:noescape
func prefetchT0(addr unsafe.Pointer)
