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

// Package geom provides 2-, 3- and 4-component vectors with named fields,
// quaternions and Euler angles.
//
// The fixed-arity vectors are thin wrappers: arithmetic converts to the
// generic vec.Vec, runs there, and converts back, so results are identical
// to the generic vector's.
package geom

import (
	"github.com/ajroetker/go-vecn/hwy"
	"github.com/ajroetker/go-vecn/hwy/contrib/vec"
	"github.com/ajroetker/go-vecn/hwy/num"
)

// Vec2 is a 2-component vector with named fields.
type Vec2[T hwy.Lanes] struct {
	X, Y T
}

// Vec2FromArray converts a 2-element array.
func Vec2FromArray[T hwy.Lanes](a [2]T) Vec2[T] {
	return Vec2[T]{X: a[0], Y: a[1]}
}

// Vec2FromVec converts a generic vector of length 2.
func Vec2FromVec[T hwy.Lanes](v vec.Vec[T, vec.D2]) Vec2[T] {
	return Vec2[T]{X: v.AtUnchecked(0), Y: v.AtUnchecked(1)}
}

// Splat2 returns {value, value}.
func Splat2[T hwy.Lanes](value T) Vec2[T] {
	return Vec2[T]{X: value, Y: value}
}

// Zero2 returns the zero vector.
func Zero2[T hwy.Lanes]() Vec2[T] { return Splat2(num.Zero[T]()) }

// One2 returns {1, 1}.
func One2[T hwy.Lanes]() Vec2[T] { return Splat2(num.One[T]()) }

// ToArray returns {X, Y}.
func (v Vec2[T]) ToArray() [2]T { return [2]T{v.X, v.Y} }

// ToVec converts to the generic vector.
func (v Vec2[T]) ToVec() vec.Vec[T, vec.D2] {
	return vec.FromArray[T, vec.D2](v.X, v.Y)
}

// Len returns 2.
func (v Vec2[T]) Len() int { return 2 }

// Extend returns {X, Y, z}.
func (v Vec2[T]) Extend(z T) Vec3[T] { return Vec3[T]{X: v.X, Y: v.Y, Z: z} }

// Add returns the componentwise sum v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2FromVec(v.ToVec().Add(o.ToVec())) }

// Sub returns the componentwise difference v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2FromVec(v.ToVec().Sub(o.ToVec())) }

// Mul returns the componentwise product v * o.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return Vec2FromVec(v.ToVec().Mul(o.ToVec())) }

// Div returns the componentwise quotient v / o. Integer division by zero panics.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] { return Vec2FromVec(v.ToVec().Div(o.ToVec())) }

// Rem returns the componentwise remainder of v / o (math.Mod for floats).
func (v Vec2[T]) Rem(o Vec2[T]) Vec2[T] { return Vec2FromVec(v.ToVec().Rem(o.ToVec())) }

// Scale multiplies every component by s.
func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2FromVec(v.ToVec().Scale(s)) }

// Sum returns the sum of the components.
func (v Vec2[T]) Sum() T { return v.ToVec().Sum() }

// Product returns the product of the components.
func (v Vec2[T]) Product() T { return v.ToVec().Product() }

// Dot returns the dot product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T { return v.ToVec().Dot(o.ToVec()) }

// MagnitudeSquared returns v · v.
func (v Vec2[T]) MagnitudeSquared() T { return v.ToVec().MagnitudeSquared() }

// DistanceSquared returns the squared Euclidean distance between v and o.
func (v Vec2[T]) DistanceSquared(o Vec2[T]) T { return v.ToVec().DistanceSquared(o.ToVec()) }
