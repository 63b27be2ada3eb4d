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

// Vec3 is a 3-component vector with named fields.
type Vec3[T hwy.Lanes] struct {
	X, Y, Z T
}

// FromXY returns {x, y, 0}.
func FromXY[T hwy.Lanes](x, y T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: num.Zero[T]()}
}

// FromXYZ returns {x, y, z}.
func FromXYZ[T hwy.Lanes](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Vec3FromArray converts a 3-element array.
func Vec3FromArray[T hwy.Lanes](a [3]T) Vec3[T] {
	return Vec3[T]{X: a[0], Y: a[1], Z: a[2]}
}

// Vec3FromVec converts a generic vector of length 3.
func Vec3FromVec[T hwy.Lanes](v vec.Vec[T, vec.D3]) Vec3[T] {
	return Vec3[T]{X: v.AtUnchecked(0), Y: v.AtUnchecked(1), Z: v.AtUnchecked(2)}
}

// Splat3 returns {value, value, value}.
func Splat3[T hwy.Lanes](value T) Vec3[T] {
	return Vec3[T]{X: value, Y: value, Z: value}
}

// Zero3 returns the zero vector.
func Zero3[T hwy.Lanes]() Vec3[T] { return Splat3(num.Zero[T]()) }

// One3 returns {1, 1, 1}.
func One3[T hwy.Lanes]() Vec3[T] { return Splat3(num.One[T]()) }

// ToArray returns {X, Y, Z}.
func (v Vec3[T]) ToArray() [3]T { return [3]T{v.X, v.Y, v.Z} }

// ToVec converts to the generic vector.
func (v Vec3[T]) ToVec() vec.Vec[T, vec.D3] {
	return vec.FromArray[T, vec.D3](v.X, v.Y, v.Z)
}

// Len returns 3.
func (v Vec3[T]) Len() int { return 3 }

// XY drops Z.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{X: v.X, Y: v.Y} }

// Add returns the componentwise sum v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3FromVec(v.ToVec().Add(o.ToVec())) }

// Sub returns the componentwise difference v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3FromVec(v.ToVec().Sub(o.ToVec())) }

// Mul returns the componentwise product v * o.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] { return Vec3FromVec(v.ToVec().Mul(o.ToVec())) }

// Div returns the componentwise quotient v / o. Integer division by zero panics.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] { return Vec3FromVec(v.ToVec().Div(o.ToVec())) }

// Rem returns the componentwise remainder of v / o (math.Mod for floats).
func (v Vec3[T]) Rem(o Vec3[T]) Vec3[T] { return Vec3FromVec(v.ToVec().Rem(o.ToVec())) }

// Scale multiplies every component by s.
func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3FromVec(v.ToVec().Scale(s)) }

// Sum returns the sum of the components.
func (v Vec3[T]) Sum() T { return v.ToVec().Sum() }

// Product returns the product of the components.
func (v Vec3[T]) Product() T { return v.ToVec().Product() }

// Dot returns the dot product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T { return v.ToVec().Dot(o.ToVec()) }

// MagnitudeSquared returns v · v.
func (v Vec3[T]) MagnitudeSquared() T { return v.ToVec().MagnitudeSquared() }

// DistanceSquared returns the squared Euclidean distance between v and o.
func (v Vec3[T]) DistanceSquared(o Vec3[T]) T { return v.ToVec().DistanceSquared(o.ToVec()) }

// Cross returns the cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}
