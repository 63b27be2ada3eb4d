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

package num

import (
	"math"
	"unsafe"
)

// float32 results are computed in float64 and rounded once. For Sqrt this is
// the correctly rounded float32 square root.

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Abs returns |x|.
func Abs[T Float](x T) T {
	return T(math.Abs(float64(x)))
}

// Copysign returns a value with the magnitude of f and the sign of sign.
func Copysign[T Float](f, sign T) T {
	return T(math.Copysign(float64(f), float64(sign)))
}

// Sin returns the sine of the radian argument x.
func Sin[T Float](x T) T {
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[T Float](x T) T {
	return T(math.Cos(float64(x)))
}

// SinCos returns Sin(x), Cos(x).
func SinCos[T Float](x T) (sin, cos T) {
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// Asin returns the arcsine, in radians, of x.
func Asin[T Float](x T) T {
	return T(math.Asin(float64(x)))
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant.
func Atan2[T Float](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

// Pi returns π rounded to T.
func Pi[T Float]() T { return T(math.Pi) }

// FracPi2 returns π/2 rounded to T.
func FracPi2[T Float]() T { return T(math.Pi / 2) }

// E returns Euler's number rounded to T.
func E[T Float]() T { return T(math.E) }

// DegreesPerRadian returns 180/π rounded to T.
func DegreesPerRadian[T Float]() T { return T(180 / math.Pi) }

// RadiansPerDegree returns π/180 rounded to T.
func RadiansPerDegree[T Float]() T { return T(math.Pi / 180) }

// Inf returns positive infinity.
func Inf[T Float]() T { return T(math.Inf(1)) }

// NaN returns a quiet NaN.
func NaN[T Float]() T { return T(math.NaN()) }

// Epsilon returns the difference between 1 and the next representable value
// of T.
func Epsilon[T Float]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(math.Nextafter32(1, 2) - 1)
	}
	return T(math.Nextafter(1, 2) - 1)
}
