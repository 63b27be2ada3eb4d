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

// Package vec provides Vec, a fixed-length generic vector whose arithmetic
// runs through the hwy dual-path engine.
//
// The length is a type parameter (see Dim), so a Vec[float32, D3] and a
// Vec[float32, D4] are different types:
//
//	a := vec.FromArray[float32, vec.D3](1, 2, 3)
//	b := a.Add(a)                 // [2 4 6]
//	m := vec.Magnitude(a)         // sqrt(14)
//
// Vec values are immutable. Every operation returns a new vector, so a Vec
// can be copied and shared freely.
package vec

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"unsafe"

	"github.com/ajroetker/go-vecn/hwy"
	"github.com/ajroetker/go-vecn/hwy/num"
)

var (
	// ErrShortSlice is returned by FromSlice when the source has fewer than
	// N elements.
	ErrShortSlice = errors.New("vec: slice shorter than vector length")

	// ErrIndexOutOfRange is the panic value (wrapped) of Get for an index
	// outside [0, N).
	ErrIndexOutOfRange = errors.New("vec: index out of range")

	// ErrArrayLength is the panic value (wrapped) of FromArray when the
	// number of values is not exactly N.
	ErrArrayLength = errors.New("vec: wrong number of elements")
)

// Vec is a vector of exactly D.Len() elements of type T.
//
// The zero value is the all-zero vector.
type Vec[T hwy.Lanes, D Dim] struct {
	// data is nil for the zero value, otherwise exactly D.Len() elements
	// that are never written after construction.
	data []T
}

func newVec[T hwy.Lanes, D Dim](data []T) Vec[T, D] {
	return Vec[T, D]{data: data}
}

// elems returns the backing elements, materializing zeros for the zero value.
// Callers must not write to the result.
func (v Vec[T, D]) elems() []T {
	if v.data == nil {
		return make([]T, LenOf[D]())
	}
	return v.data
}

// FromArray builds a vector from exactly N values, in order.
//
// FromArray panics with an error wrapping ErrArrayLength if it is not given
// exactly N values.
func FromArray[T hwy.Lanes, D Dim](values ...T) Vec[T, D] {
	n := LenOf[D]()
	if len(values) != n {
		panic(fmt.Errorf("%w: got %d, want %d", ErrArrayLength, len(values), n))
	}
	data := make([]T, n)
	copy(data, values)
	return newVec[T, D](data)
}

// FromSlice builds a vector from the first N elements of s.
// It returns an error wrapping ErrShortSlice if len(s) < N.
func FromSlice[T hwy.Lanes, D Dim](s []T) (Vec[T, D], error) {
	n := LenOf[D]()
	if len(s) < n {
		return Vec[T, D]{}, fmt.Errorf("%w: got %d elements, need %d", ErrShortSlice, len(s), n)
	}
	data := make([]T, n)
	copy(data, s[:n])
	return newVec[T, D](data), nil
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice[T hwy.Lanes, D Dim](s []T) Vec[T, D] {
	v, err := FromSlice[T, D](s)
	if err != nil {
		panic(err)
	}
	return v
}

// Splat returns a vector with every element set to value.
func Splat[T hwy.Lanes, D Dim](value T) Vec[T, D] {
	data := make([]T, LenOf[D]())
	hwy.Fill(data, value)
	return newVec[T, D](data)
}

// Zero returns the vector of additive identities.
func Zero[T hwy.Lanes, D Dim]() Vec[T, D] {
	return Splat[T, D](num.Zero[T]())
}

// One returns the vector of multiplicative identities.
func One[T hwy.Lanes, D Dim]() Vec[T, D] {
	return Splat[T, D](num.One[T]())
}

// Len returns N.
func (v Vec[T, D]) Len() int {
	return LenOf[D]()
}

// IsEmpty reports whether N is zero.
func (v Vec[T, D]) IsEmpty() bool {
	return LenOf[D]() == 0
}

// At returns element i and true, or the zero value and false if i is out of
// range.
func (v Vec[T, D]) At(i int) (T, bool) {
	if i < 0 || i >= LenOf[D]() {
		var zero T
		return zero, false
	}
	if v.data == nil {
		var zero T
		return zero, true
	}
	return v.data[i], true
}

// Get returns element i. It panics with an error wrapping ErrIndexOutOfRange
// if i is out of range.
func (v Vec[T, D]) Get(i int) T {
	x, ok := v.At(i)
	if !ok {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, LenOf[D]()))
	}
	return x
}

// AtUnchecked returns element i without a bounds check.
//
// The caller must guarantee 0 <= i < N. Any other index reads arbitrary
// memory; the behavior is undefined.
func (v Vec[T, D]) AtUnchecked(i int) T {
	base := unsafe.Pointer(unsafe.SliceData(v.elems()))
	var zero T
	return *(*T)(unsafe.Add(base, uintptr(i)*unsafe.Sizeof(zero)))
}

// With returns a copy of v with element i replaced by x.
// It panics with an error wrapping ErrIndexOutOfRange if i is out of range.
func (v Vec[T, D]) With(i int, x T) Vec[T, D] {
	n := LenOf[D]()
	if i < 0 || i >= n {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n))
	}
	data := v.ToArray()
	data[i] = x
	return newVec[T, D](data)
}

// ToArray returns a fresh copy of the elements.
func (v Vec[T, D]) ToArray() []T {
	data := make([]T, LenOf[D]())
	copy(data, v.data)
	return data
}

// All iterates over index/element pairs from first to last.
func (v Vec[T, D]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.elems() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Backward iterates over index/element pairs from last to first.
func (v Vec[T, D]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		data := v.elems()
		for i := len(data) - 1; i >= 0; i-- {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}

// Values iterates over the elements from first to last.
func (v Vec[T, D]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.elems() {
			if !yield(x) {
				return
			}
		}
	}
}

// Equal reports whether v and o hold the same elements. Float elements are
// compared with ==, so NaN is never equal and -0 equals +0.
func (v Vec[T, D]) Equal(o Vec[T, D]) bool {
	a, b := v.elems(), o.elems()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String formats the vector as "[x0 x1 ...]".
func (v Vec[T, D]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.elems() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(']')
	return sb.String()
}
