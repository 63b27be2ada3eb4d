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
	"github.com/ajroetker/go-vecn/hwy/num"
)

// Metric is implemented by Vec2, Vec3 and Vec4.
type Metric[T hwy.Lanes, V any] interface {
	MagnitudeSquared() T
	DistanceSquared(V) T
	Scale(T) V
}

// The functions below need float elements. The element type cannot be
// inferred from the vector alone, so pass it explicitly:
//
//	geom.Magnitude[float32](v)

// Magnitude returns the Euclidean length of v.
func Magnitude[T hwy.Floats, V Metric[T, V]](v V) T {
	return num.Sqrt(v.MagnitudeSquared())
}

// Distance returns the Euclidean distance between a and b.
func Distance[T hwy.Floats, V Metric[T, V]](a, b V) T {
	return num.Sqrt(a.DistanceSquared(b))
}

// ToDegrees converts every component from radians to degrees.
func ToDegrees[T hwy.Floats, V Metric[T, V]](v V) V {
	return v.Scale(num.DegreesPerRadian[T]())
}

// ToRadians converts every component from degrees to radians.
func ToRadians[T hwy.Floats, V Metric[T, V]](v V) V {
	return v.Scale(num.RadiansPerDegree[T]())
}
