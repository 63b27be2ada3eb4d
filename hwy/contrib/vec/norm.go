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
	"github.com/ajroetker/go-vecn/hwy"
	"github.com/ajroetker/go-vecn/hwy/num"
)

// These need a square root or an angle factor, so they are only defined for
// float elements.

// Magnitude returns the Euclidean length of v: Sqrt(v.MagnitudeSquared()).
//
// Example:
//
//	v := vec.FromArray[float32, vec.D3](1, 2, 3)
//	vec.Magnitude(v)  // sqrt(14)
func Magnitude[T hwy.Floats, D Dim](v Vec[T, D]) T {
	return num.Sqrt(v.MagnitudeSquared())
}

// Distance returns the Euclidean distance between a and b.
func Distance[T hwy.Floats, D Dim](a, b Vec[T, D]) T {
	return num.Sqrt(a.DistanceSquared(b))
}

// Normalize returns v divided by its magnitude. The zero vector yields NaN
// elements, as the division does.
func Normalize[T hwy.Floats, D Dim](v Vec[T, D]) Vec[T, D] {
	return v.Div(Splat[T, D](Magnitude(v)))
}

// ToDegrees converts every element from radians to degrees.
func ToDegrees[T hwy.Floats, D Dim](v Vec[T, D]) Vec[T, D] {
	return v.Scale(num.DegreesPerRadian[T]())
}

// ToRadians converts every element from degrees to radians.
func ToRadians[T hwy.Floats, D Dim](v Vec[T, D]) Vec[T, D] {
	return v.Scale(num.RadiansPerDegree[T]())
}
