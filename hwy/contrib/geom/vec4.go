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

package geom

import (
	"github.com/ajroetker/go-vecn/hwy"
	"github.com/ajroetker/go-vecn/hwy/contrib/vec"
	"github.com/ajroetker/go-vecn/hwy/num"
)

// Vec4 is a 4-component vector with named fields.
type Vec4[T hwy.Lanes] struct {
	X, Y, Z, W T
}

// FromXYZW returns {x, y, z, w}.
func FromXYZW[T hwy.Lanes](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Vec4FromArray converts a 4-element array.
func Vec4FromArray[T hwy.Lanes](a [4]T) Vec4[T] {
	return Vec4[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// Vec4FromVec converts a generic vector of length 4.
func Vec4FromVec[T hwy.Lanes](v vec.Vec[T, vec.D4]) Vec4[T] {
	return Vec4[T]{X: v.AtUnchecked(0), Y: v.AtUnchecked(1), Z: v.AtUnchecked(2), W: v.AtUnchecked(3)}
}

// Splat4 returns a vector with all four components set to value.
func Splat4[T hwy.Lanes](value T) Vec4[T] {
	return Vec4[T]{X: value, Y: value, Z: value, W: value}
}

// Zero4 returns the zero vector.
func Zero4[T hwy.Lanes]() Vec4[T] { return Splat4(num.Zero[T]()) }

// One4 returns {1, 1, 1, 1}.
func One4[T hwy.Lanes]() Vec4[T] { return Splat4(num.One[T]()) }

// ToArray returns {X, Y, Z, W}.
func (v Vec4[T]) ToArray() [4]T { return [4]T{v.X, v.Y, v.Z, v.W} }

// ToVec converts to the generic vector.
func (v Vec4[T]) ToVec() vec.Vec[T, vec.D4] {
	return vec.FromArray[T, vec.D4](v.X, v.Y, v.Z, v.W)
}

// Len returns 4.
func (v Vec4[T]) Len() int { return 4 }

// XYZ drops W.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{X: v.X, Y: v.Y, Z: v.Z} }

// Add returns the componentwise sum v + o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] { return Vec4FromVec(v.ToVec().Add(o.ToVec())) }

// Sub returns the componentwise difference v - o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] { return Vec4FromVec(v.ToVec().Sub(o.ToVec())) }

// Mul returns the componentwise product v * o.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] { return Vec4FromVec(v.ToVec().Mul(o.ToVec())) }

// Div returns the componentwise quotient v / o. Integer division by zero panics.
func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] { return Vec4FromVec(v.ToVec().Div(o.ToVec())) }

// Rem returns the componentwise remainder of v / o (math.Mod for floats).
func (v Vec4[T]) Rem(o Vec4[T]) Vec4[T] { return Vec4FromVec(v.ToVec().Rem(o.ToVec())) }

// Scale multiplies every component by s.
func (v Vec4[T]) Scale(s T) Vec4[T] { return Vec4FromVec(v.ToVec().Scale(s)) }

// Sum returns the sum of the components.
func (v Vec4[T]) Sum() T { return v.ToVec().Sum() }

// Product returns the product of the components.
func (v Vec4[T]) Product() T { return v.ToVec().Product() }

// Dot returns the dot product of v and o.
func (v Vec4[T]) Dot(o Vec4[T]) T { return v.ToVec().Dot(o.ToVec()) }

// MagnitudeSquared returns v · v.
func (v Vec4[T]) MagnitudeSquared() T { return v.ToVec().MagnitudeSquared() }

// DistanceSquared returns the squared Euclidean distance between v and o.
func (v Vec4[T]) DistanceSquared(o Vec4[T]) T { return v.ToVec().DistanceSquared(o.ToVec()) }
