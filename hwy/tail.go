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

import "fmt"

// Partition is a copy of a buffer split into whole chunks followed by the
// scalar remainder. Both regions live in one backing array, in source order,
// so Slice returns the reassembled buffer without copying.
type Partition[T Lanes] struct {
	buf    []T
	layout Layout
}

// Split copies the first l.Len() elements of src into a new Partition.
// The source is not modified.
//
// Split panics if src is shorter than the layout.
func Split[T Lanes](src []T, l Layout) Partition[T] {
	n := l.Len()
	if len(src) < n {
		panic(fmt.Sprintf("hwy: Split: source has %d elements, layout needs %d", len(src), n))
	}
	buf := make([]T, n)
	copy(buf, src[:n])
	return Partition[T]{buf: buf, layout: l}
}

// Layout returns the layout the partition was split with.
func (p Partition[T]) Layout() Layout {
	return p.layout
}

// Chunks returns the region holding every whole chunk.
func (p Partition[T]) Chunks() []T {
	return p.buf[:p.layout.ChunkLen():p.layout.ChunkLen()]
}

// Chunk returns lane block i. The returned slice has exactly Lanes elements
// and capacity, so appending to it can never spill into the next chunk.
func (p Partition[T]) Chunk(i int) []T {
	lanes := p.layout.Lanes
	off := i * lanes
	return p.buf[off : off+lanes : off+lanes]
}

// Remainder returns the region holding the trailing scalar elements.
func (p Partition[T]) Remainder() []T {
	return p.buf[p.layout.ChunkLen():]
}

// Slice returns the whole buffer, chunks followed by the remainder.
func (p Partition[T]) Slice() []T {
	return p.buf
}

// ProcessChunks walks a layout the way the SIMD body does:
//   - fullFn(offset) for each whole chunk, in index order;
//   - tailFn(offset, count) once for the remainder, if any.
//
// Example:
//
//	l := hwy.LayoutOf[float32](len(data))
//	hwy.ProcessChunks(l,
//	    func(offset int) {
//	        // data[offset : offset+l.Lanes] is one lane block
//	    },
//	    func(offset, count int) {
//	        // data[offset : offset+count] is the scalar tail
//	    },
//	)
func ProcessChunks(l Layout, fullFn func(offset int), tailFn func(offset, count int)) {
	for i := range l.Vectors {
		fullFn(i * l.Lanes)
	}
	if l.Remainder > 0 {
		tailFn(l.ChunkLen(), l.Remainder)
	}
}

// ProcessWithTail is ProcessChunks for a buffer of size elements of type T,
// using the cached layout for that size.
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	ProcessChunks(LayoutOf[T](size), fullFn, tailFn)
}

// AlignedSize rounds size up to a whole number of chunks of the layout for
// size elements of type T. Sizes that are not chunked are returned unchanged.
func AlignedSize[T Lanes](size int) int {
	lanes := LayoutOf[T](size).Lanes
	if lanes == 0 {
		return size
	}
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned reports whether size elements of type T split into whole chunks
// with no remainder.
func IsAligned[T Lanes](size int) bool {
	return LayoutOf[T](size).Remainder == 0
}
