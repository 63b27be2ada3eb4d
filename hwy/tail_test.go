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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func iota32(n int) []int32 {
	s := make([]int32, n)
	for i := range s {
		s[i] = int32(i + 1)
	}
	return s
}

func TestSplit(t *testing.T) {
	for n := 0; n <= 40; n++ {
		src := iota32(n)
		l := LayoutOf[int32](n)
		p := Split(src, l)

		if diff := cmp.Diff(src, p.Slice()); diff != "" {
			t.Fatalf("n=%d: Split changed order (-src +split):\n%s", n, diff)
		}
		if got := len(p.Chunks()) + len(p.Remainder()); got != n {
			t.Errorf("n=%d: regions cover %d elements", n, got)
		}
		for i := range l.Vectors {
			chunk := p.Chunk(i)
			if len(chunk) != l.Lanes || cap(chunk) != l.Lanes {
				t.Errorf("n=%d: chunk %d has len %d cap %d, want %d", n, i, len(chunk), cap(chunk), l.Lanes)
			}
			if chunk[0] != src[i*l.Lanes] {
				t.Errorf("n=%d: chunk %d starts at %d, want %d", n, i, chunk[0], src[i*l.Lanes])
			}
		}
		if l.Remainder > 0 && p.Remainder()[0] != src[l.ChunkLen()] {
			t.Errorf("n=%d: remainder starts at %d, want %d", n, p.Remainder()[0], src[l.ChunkLen()])
		}
	}
}

func TestSplitLeavesSourceUntouched(t *testing.T) {
	src := iota32(18)
	want := iota32(18)
	p := Split(src, LayoutOf[int32](len(src)))
	for i := range p.Slice() {
		p.Slice()[i] = -1
	}
	if diff := cmp.Diff(want, src); diff != "" {
		t.Errorf("source modified through partition (-want +got):\n%s", diff)
	}
}

func TestSplitShortSource(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Split with short source did not panic")
		}
	}()
	Split(iota32(3), LayoutOf[int32](5))
}

func TestProcessChunks(t *testing.T) {
	l := LayoutOf[float32](18)
	var full []int
	var tailOffset, tailCount int
	ProcessChunks(l,
		func(offset int) { full = append(full, offset) },
		func(offset, count int) { tailOffset, tailCount = offset, count },
	)
	if diff := cmp.Diff([]int{0, 8}, full); diff != "" {
		t.Errorf("chunk offsets (-want +got):\n%s", diff)
	}
	if tailOffset != 16 || tailCount != 2 {
		t.Errorf("tail = (%d, %d), want (16, 2)", tailOffset, tailCount)
	}
}

func TestProcessWithTailNoRemainder(t *testing.T) {
	calls := 0
	ProcessWithTail[float64](8,
		func(offset int) { calls++ },
		func(offset, count int) { t.Errorf("tailFn called with (%d, %d)", offset, count) },
	)
	if calls != 2 {
		t.Errorf("fullFn called %d times, want 2", calls)
	}
}

func TestAlignedSize(t *testing.T) {
	tests := []struct {
		size, want int
	}{
		{0, 0},
		{3, 4},
		{5, 8},
		{8, 8},
		{18, 24},
	}
	for _, tt := range tests {
		if got := AlignedSize[float32](tt.size); got != tt.want {
			t.Errorf("AlignedSize[float32](%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
	if !IsAligned[float32](16) {
		t.Error("IsAligned[float32](16) = false")
	}
	if IsAligned[float32](18) {
		t.Error("IsAligned[float32](18) = true")
	}
}
