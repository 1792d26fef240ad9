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

import (
	"os"
	"strconv"
)

// Level represents the vector instruction set detected at startup.
type Level int

const (
	// LevelScalar indicates no usable vector unit, pure Go loops.
	LevelScalar Level = iota

	// LevelAVX2 indicates AVX2 instructions (256-bit).
	LevelAVX2

	// LevelAVX512 indicates AVX-512 Foundation (512-bit). The lane widths stay
	// at 256 bits; the level is reported for diagnostics.
	LevelAVX512

	// LevelNEON indicates ARM NEON / ASIMD (128-bit).
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected vector level for this process.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// hardware is true when currentLevel is anything but LevelScalar and the lanes
// of this build sit in vector registers.
var hardware bool

// CurrentLevel returns the vector instruction set in use.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentName returns the name of the vector instruction set in use.
func CurrentName() string {
	return currentLevel.String()
}

// HasHardwareSupport reports whether vectorized kernels should be used at all.
// It requires both a detected vector unit and NativeRegisters, so a CPU level
// reported for diagnostics (NEON on arm64) does not by itself enable them.
// The per-type Ops.HasHardwareSupport methods answer the same question for a
// single element type.
func HasHardwareSupport() bool {
	return hardware
}

// NoSimdEnv checks if the LINALG_NO_SIMD environment variable is set.
// When set, every type reports no hardware support regardless of the CPU.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("LINALG_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setLevel(l Level) {
	currentLevel = l
	hardware = l != LevelScalar && NativeRegisters
}

func setScalarMode() {
	setLevel(LevelScalar)
}
