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

// Quaternion is a rotation quaternion x*i + y*j + z*k + w.
type Quaternion[T hwy.Floats] struct {
	X, Y, Z, W T
}

// EulerAngles are Tait-Bryan angles in radians: roll about x, pitch about y,
// yaw about z.
type EulerAngles[T hwy.Floats] struct {
	Pitch, Yaw, Roll T
}

// NewEulerAngles returns {pitch, yaw, roll}.
func NewEulerAngles[T hwy.Floats](pitch, yaw, roll T) EulerAngles[T] {
	return EulerAngles[T]{Pitch: pitch, Yaw: yaw, Roll: roll}
}

// QuaternionFromXYZW returns {x, y, z, w}.
func QuaternionFromXYZW[T hwy.Floats](x, y, z, w T) Quaternion[T] {
	return Quaternion[T]{X: x, Y: y, Z: z, W: w}
}

// SplatQuaternion returns {v, v, v, v}.
func SplatQuaternion[T hwy.Floats](v T) Quaternion[T] {
	return Quaternion[T]{X: v, Y: v, Z: v, W: v}
}

// ZeroQuaternion returns {0, 0, 0, 0}.
func ZeroQuaternion[T hwy.Floats]() Quaternion[T] {
	return Quaternion[T]{}
}

// OneQuaternion returns {1, 1, 1, 1}. It is not a rotation; see
// IdentityQuaternion.
func OneQuaternion[T hwy.Floats]() Quaternion[T] {
	return SplatQuaternion(num.One[T]())
}

// IdentityQuaternion returns the rotation that does nothing: {0, 0, 0, 1}.
func IdentityQuaternion[T hwy.Floats]() Quaternion[T] {
	return Quaternion[T]{W: num.One[T]()}
}

// ToVec4 returns the components as {X, Y, Z, W}.
func (q Quaternion[T]) ToVec4() Vec4[T] {
	return Vec4[T]{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// Dot returns the four-component dot product.
func (q Quaternion[T]) Dot(o Quaternion[T]) T {
	return q.ToVec4().Dot(o.ToVec4())
}

// Norm returns the length of q.
func (q Quaternion[T]) Norm() T {
	return num.Sqrt(q.Dot(q))
}

// Conjugate returns {-x, -y, -z, w}.
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Mul returns the Hamilton product q * o (apply o, then q).
func (q Quaternion[T]) Mul(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// QuaternionFromEuler converts Tait-Bryan angles to a unit quaternion.
func QuaternionFromEuler[T hwy.Floats](a EulerAngles[T]) Quaternion[T] {
	sinYaw, cosYaw := num.SinCos(a.Yaw * 0.5)
	sinPitch, cosPitch := num.SinCos(a.Pitch * 0.5)
	sinRoll, cosRoll := num.SinCos(a.Roll * 0.5)

	return Quaternion[T]{
		X: sinRoll*cosPitch*cosYaw - cosRoll*sinPitch*sinYaw,
		Y: cosRoll*sinPitch*cosYaw + sinRoll*cosPitch*sinYaw,
		Z: cosRoll*cosPitch*sinYaw - sinRoll*sinPitch*cosYaw,
		W: cosRoll*cosPitch*cosYaw + sinRoll*sinPitch*sinYaw,
	}
}

// EulerFromQuaternion converts a unit quaternion to Tait-Bryan angles.
// At the poles (|sin pitch| >= 1) pitch is clamped to ±π/2.
func EulerFromQuaternion[T hwy.Floats](q Quaternion[T]) EulerAngles[T] {
	sinRollCosPitch := 2 * (q.W*q.X + q.Y*q.Z)
	cosRollCosPitch := 1 - 2*(q.X*q.X+q.Y*q.Y)
	roll := num.Atan2(sinRollCosPitch, cosRollCosPitch)

	sinPitch := 2 * (q.W*q.Y - q.Z*q.X)
	var pitch T
	if num.Abs(sinPitch) >= 1 {
		pitch = num.Copysign(num.FracPi2[T](), sinPitch)
	} else {
		pitch = num.Asin(sinPitch)
	}

	sinYawCosPitch := 2 * (q.W*q.Z + q.X*q.Y)
	cosYawCosPitch := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	yaw := num.Atan2(sinYawCosPitch, cosYawCosPitch)

	return EulerAngles[T]{Pitch: pitch, Yaw: yaw, Roll: roll}
}
