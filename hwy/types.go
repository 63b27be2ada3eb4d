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

// Package hwy is the lane-deduction and dual-path arithmetic engine behind
// the fixed-length vectors of go-vecn.
//
// For a given element type and vector length it decides how many elements
// form one SIMD group (DeduceLanes), splits a buffer into whole lane blocks
// plus a scalar remainder (Split), and runs every elementwise operation and
// reduction through one of two interchangeable bodies:
//
//   - the scalar body, a plain sequential loop over every element;
//   - the SIMD body, which hands each whole lane block to a hardware kernel
//     (simd/archsimd on AVX2 builds, a portable lane-block kernel elsewhere)
//     and finishes the remainder with scalar code.
//
// Both bodies produce bit-identical results. The body in use is chosen once
// at start-up (HWY_NO_SIMD selects the scalar body) and can be overridden
// with ForcePath.
//
// Basic usage:
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	dst := make([]float32, 3)
//	hwy.Add(dst, a, b)     // dst = {5, 7, 9}
//	total := hwy.Sum(dst)  // 21
package hwy

import (
	"reflect"
	"unsafe"
)

// The element constraints list exact types on purpose: defined types such as
// `type Celsius float32` are not vector elements, which keeps the set closed.

// Floats is a constraint for floating-point types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	int8 | int16 | int32 | int64 | int
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64 | uint | uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

var elementKinds = map[reflect.Kind]bool{
	reflect.Int8:    true,
	reflect.Int16:   true,
	reflect.Int32:   true,
	reflect.Int64:   true,
	reflect.Int:     true,
	reflect.Uint8:   true,
	reflect.Uint16:  true,
	reflect.Uint32:  true,
	reflect.Uint64:  true,
	reflect.Uint:    true,
	reflect.Uintptr: true,
	reflect.Float32: true,
	reflect.Float64: true,
}

// IsElement reports whether t is one of the types accepted by Lanes.
// Only the predeclared types qualify; a defined type with a numeric
// underlying type does not.
func IsElement(t reflect.Type) bool {
	if t == nil || t.PkgPath() != "" || t.Name() == "" {
		return false
	}
	return elementKinds[t.Kind()]
}

// SizeOf returns the size in bytes of one element of type T.
func SizeOf[T Lanes]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}
