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

import "github.com/ajroetker/go-vecn/hwy"

func (v Vec[T, D]) apply(op hwy.Op, o Vec[T, D]) Vec[T, D] {
	out := make([]T, LenOf[D]())
	hwy.Apply(op, out, v.elems(), o.elems())
	return newVec[T, D](out)
}

// Add returns v + o elementwise.
//
// Example:
//
//	a := vec.FromArray[uint32, vec.D3](1, 2, 3)
//	a.Add(a)  // [2 4 6]
func (v Vec[T, D]) Add(o Vec[T, D]) Vec[T, D] { return v.apply(hwy.OpAdd, o) }

// Sub returns v - o elementwise.
func (v Vec[T, D]) Sub(o Vec[T, D]) Vec[T, D] { return v.apply(hwy.OpSub, o) }

// Mul returns v * o elementwise.
func (v Vec[T, D]) Mul(o Vec[T, D]) Vec[T, D] { return v.apply(hwy.OpMul, o) }

// Div returns v / o elementwise. Integer division by zero panics as the Go
// operator does; float division follows IEEE 754.
func (v Vec[T, D]) Div(o Vec[T, D]) Vec[T, D] { return v.apply(hwy.OpDiv, o) }

// Rem returns v % o elementwise (math.Mod for floats).
func (v Vec[T, D]) Rem(o Vec[T, D]) Vec[T, D] { return v.apply(hwy.OpRem, o) }

// Scale returns v * s for every element.
func (v Vec[T, D]) Scale(s T) Vec[T, D] { return v.Mul(Splat[T, D](s)) }

// Sum returns the sum of the elements, folded in index order from zero.
func (v Vec[T, D]) Sum() T { return hwy.Sum(v.elems()) }

// Product returns the product of the elements, folded in index order from
// one.
func (v Vec[T, D]) Product() T { return hwy.Product(v.elems()) }

// Dot returns the sum of v[i] * o[i].
func (v Vec[T, D]) Dot(o Vec[T, D]) T { return v.Mul(o).Sum() }

// MagnitudeSquared returns v.Dot(v).
func (v Vec[T, D]) MagnitudeSquared() T { return v.Dot(v) }

// DistanceSquared returns the squared magnitude of v - o.
func (v Vec[T, D]) DistanceSquared(o Vec[T, D]) T { return v.Sub(o).MagnitudeSquared() }
