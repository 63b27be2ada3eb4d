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

package vec

import (
	"fmt"

	"github.com/ajroetker/go-vecn/hwy"
	"github.com/ajroetker/go-vecn/hwy/contrib/workerpool"
)

// Batch operations run one vector operation over many vectors, spreading the
// vectors across pool. pool may be nil. Each result equals the single-vector
// operation on the same inputs.

// batchGrain is the number of vectors a worker claims at a time in the
// work-stealing batch operations.
const batchGrain = 64

func checkBatch(name string, lens ...int) {
	for _, l := range lens[1:] {
		if l != lens[0] {
			panic(fmt.Errorf("%w: %s: batch lengths %v", hwy.ErrLengthMismatch, name, lens))
		}
	}
}

// ApplyBatch sets dst[i] = a[i] op b[i] for every i.
func ApplyBatch[T hwy.Lanes, D Dim](pool *workerpool.Pool, op hwy.Op, dst, a, b []Vec[T, D]) {
	checkBatch("ApplyBatch", len(dst), len(a), len(b))
	pool.Range(len(a), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = a[i].apply(op, b[i])
		}
	})
}

// SumBatch sets out[i] = vs[i].Sum().
func SumBatch[T hwy.Lanes, D Dim](pool *workerpool.Pool, out []T, vs []Vec[T, D]) {
	checkBatch("SumBatch", len(out), len(vs))
	pool.Range(len(vs), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = vs[i].Sum()
		}
	})
}

// DotBatch sets out[i] = query.Dot(data[i]).
func DotBatch[T hwy.Lanes, D Dim](pool *workerpool.Pool, out []T, query Vec[T, D], data []Vec[T, D]) {
	checkBatch("DotBatch", len(out), len(data))
	pool.Range(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = query.Dot(data[i])
		}
	})
}

// DistanceSquaredBatch sets out[i] = query.DistanceSquared(data[i]). Workers
// claim batchGrain vectors at a time.
func DistanceSquaredBatch[T hwy.Lanes, D Dim](pool *workerpool.Pool, out []T, query Vec[T, D], data []Vec[T, D]) {
	checkBatch("DistanceSquaredBatch", len(out), len(data))
	pool.Each(len(data), batchGrain, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = query.DistanceSquared(data[i])
		}
	})
}

// Nearest returns the index of the vector in data closest to query. Vectors
// whose distance is NaN are skipped. It returns -1 when data is empty or every
// distance is NaN. Ties go to the lowest index.
func Nearest[T hwy.Lanes, D Dim](pool *workerpool.Pool, query Vec[T, D], data []Vec[T, D]) int {
	dist := make([]T, len(data))
	DistanceSquaredBatch(pool, dist, query, data)
	best := -1
	for i, d := range dist {
		if d != d {
			continue
		}
		if best < 0 || d < dist[best] {
			best = i
		}
	}
	return best
}
