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

// Package num holds the per-type scalar tables used by the vector engine:
// additive and multiplicative identities, and the handful of real-valued
// functions and constants (square root, degree/radian factors, the trig used
// by quaternion conversions).
package num

// Number is any integer or floating-point type.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64
}

// Float is any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Zero returns the additive identity of T: Zero() + x == x.
func Zero[T Number]() T {
	return 0
}

// One returns the multiplicative identity of T: One() * x == x.
func One[T Number]() T {
	return 1
}

// IsZero reports whether x equals the additive identity.
// For floats, -0 is zero.
func IsZero[T Number](x T) bool {
	return x == 0
}

// IsOne reports whether x equals the multiplicative identity.
func IsOne[T Number](x T) bool {
	return x == 1
}
