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
	"fmt"
	"math/bits"
	"sync"
)

// ReferenceWidth is the register width in bytes that lane deduction reasons
// about (256 bits). It is fixed so that chunking, and therefore the order of
// reductions, is the same on every machine.
const ReferenceWidth = 32

// legalLanes are the lane counts a chunk may have.
var legalLanes = [...]int{1, 2, 4, 8, 16, 32, 64}

// IsLegalLanes reports whether lanes is a supported hardware lane count.
// Zero, meaning "no chunking", is not a lane count and reports false.
func IsLegalLanes(lanes int) bool {
	for _, l := range legalLanes {
		if l == lanes {
			return true
		}
	}
	return false
}

// DeduceLanes returns the number of elements of elemSize bytes that form one
// chunk of a vector of length n.
//
// Power-of-two lengths use one chunk of n lanes, capped to what fits in
// ReferenceWidth. Other lengths use half of the next power of two, capped the
// same way, so that at least one whole chunk fits. A result below 2 for a
// non-power-of-two length means no chunking: everything is remainder.
//
// Examples for 4-byte elements: n=3 -> 2, n=5 -> 4, n=8 -> 8, n=18 -> 8.
//
// DeduceLanes panics if elemSize is not in (0, ReferenceWidth]; element sizes
// are fixed by the type system, so this is a configuration error.
func DeduceLanes(elemSize, n int) int {
	if elemSize <= 0 || elemSize > ReferenceWidth {
		panic(fmt.Sprintf("hwy: unsupported element size %d bytes", elemSize))
	}
	if n <= 0 {
		return 0
	}
	maxLanes := ReferenceWidth / elemSize

	if n&(n-1) == 0 {
		return min(n, maxLanes)
	}

	lanes := nextPow2(n) / 2
	if lanes > maxLanes {
		lanes = maxLanes
	}
	if lanes < 2 {
		return 0
	}
	return lanes
}

// nextPow2 returns the smallest power of two >= n, for n >= 1.
func nextPow2(n int) int {
	return 1 << bits.Len(uint(n-1))
}

// Layout describes how a vector of N elements is split into chunks.
type Layout struct {
	// Lanes is the number of elements per chunk; 0 when nothing is chunked.
	Lanes int
	// Vectors is the number of whole chunks, N / Lanes.
	Vectors int
	// Remainder is the number of trailing scalar elements, N mod Lanes.
	Remainder int
}

// NewLayout derives the layout for n elements of elemSize bytes.
func NewLayout(elemSize, n int) Layout {
	lanes := DeduceLanes(elemSize, n)
	if lanes == 0 {
		return Layout{Remainder: max(n, 0)}
	}
	return Layout{
		Lanes:     lanes,
		Vectors:   n / lanes,
		Remainder: n % lanes,
	}
}

// Len returns the number of elements covered by the layout.
func (l Layout) Len() int {
	return l.Vectors*l.Lanes + l.Remainder
}

// ChunkLen returns the number of elements covered by whole chunks.
func (l Layout) ChunkLen() int {
	return l.Vectors * l.Lanes
}

// String implements fmt.Stringer.
func (l Layout) String() string {
	return fmt.Sprintf("%d x %d lanes + %d", l.Vectors, l.Lanes, l.Remainder)
}

type layoutKey struct {
	size, n int
}

// layouts caches resolved layouts so each (element size, length) pair is
// deduced once per process.
var layouts sync.Map // layoutKey -> Layout

// LayoutOf returns the cached layout for n elements of type T.
func LayoutOf[T Lanes](n int) Layout {
	key := layoutKey{size: SizeOf[T](), n: n}
	if l, ok := layouts.Load(key); ok {
		return l.(Layout)
	}
	l := NewLayout(key.size, n)
	if prev, loaded := layouts.LoadOrStore(key, l); loaded {
		return prev.(Layout)
	}
	Logger().Debug("hwy: layout resolved",
		"elemSize", key.size,
		"n", n,
		"lanes", l.Lanes,
		"vectors", l.Vectors,
		"remainder", l.Remainder)
	return l
}
