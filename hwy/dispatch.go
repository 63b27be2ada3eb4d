// Copyright 2025 go-vecn Authors
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

package hwy

import (
	"os"
	"strconv"
	"sync/atomic"
)

// DispatchLevel represents the SIMD instruction set detected for this process.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Path selects which of the two arithmetic bodies runs.
type Path int32

const (
	// PathScalar runs the plain sequential loop over every element.
	PathScalar Path = iota

	// PathSIMD runs whole lane blocks through the block kernels and the
	// remainder through scalar code.
	PathSIMD
)

// String returns "scalar" or "simd".
func (p Path) String() string {
	switch p {
	case PathScalar:
		return "scalar"
	case PathSIMD:
		return "simd"
	default:
		return "unknown"
	}
}

// The detected level and its register width. Set once by init.
var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// registerWidth is the vector register size in bytes for each level. Scalar
// reports 16 so MaxLanes stays meaningful.
var registerWidth = [...]int{
	DispatchScalar: 16,
	DispatchSSE2:   16,
	DispatchAVX2:   32,
	DispatchAVX512: 64,
	DispatchNEON:   16,
}

func setLevel(l DispatchLevel) {
	currentLevel = l
	currentWidth = registerWidth[l]
	currentName = l.String()
}

// detectedPath is the path chosen at start-up; forcedPath overrides it when
// non-negative.
var (
	detectedPath = PathSIMD
	forcedPath   atomic.Int32
)

func init() {
	forcedPath.Store(-1)
	if NoSimdEnv() {
		detectedPath = PathScalar
		setLevel(DispatchScalar)
		return
	}
	// detectLevel is provided per architecture.
	setLevel(detectLevel())
}

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// CurrentPath returns the arithmetic body used by Add, Sum and friends.
func CurrentPath() Path {
	if p := forcedPath.Load(); p >= 0 {
		return Path(p)
	}
	return detectedPath
}

// ForcePath overrides the start-up path selection until ResetPath is called.
// It is intended for tests and debugging: results do not depend on the path.
//
//	hwy.ForcePath(hwy.PathScalar)
//	defer hwy.ResetPath()
func ForcePath(p Path) {
	forcedPath.Store(int32(p))
	Logger().Info("hwy: arithmetic path forced", "path", p.String())
}

// ResetPath drops any ForcePath override.
func ResetPath() {
	forcedPath.Store(-1)
	Logger().Info("hwy: arithmetic path reset", "path", detectedPath.String())
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the scalar path and scalar dispatch level are used regardless of
// CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// CPUFeatures lists the instruction set extensions reported by the CPU, as
// seen by golang.org/x/sys/cpu. The list is for diagnostics: a feature can be
// present while the build has no kernels for it.
func CPUFeatures() []string {
	return cpuFeatures()
}

// feature is one CPU flag as read from golang.org/x/sys/cpu.
type feature struct {
	name    string
	present bool
}

func presentFeatures(fs []feature) []string {
	var names []string
	for _, f := range fs {
		if f.present {
			names = append(names, f.name)
		}
	}
	return names
}

// MaxLanes returns the number of lanes of type T that fit in the register
// width of the detected dispatch level.
//
// This is the hardware view. The chunk size used by the arithmetic engine is
// DeduceLanes, which always reasons about the 32-byte reference width.
func MaxLanes[T Lanes]() int {
	return currentWidth / SizeOf[T]()
}
