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

package hwy

import (
	"errors"
	"fmt"
	"math"

	"github.com/ajroetker/go-vecn/hwy/num"
)

// This file provides the scalar body of every operation. It is also the
// reference the SIMD body is tested against: each element is combined with
// exactly one Go operator of type T, so division by zero, overflow and NaN
// behave as they do for a single scalar operation.

// ErrLengthMismatch is the panic value (wrapped) raised when the slices given
// to an operation do not have the same length.
var ErrLengthMismatch = errors.New("hwy: length mismatch")

// Op is a binary elementwise operation.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	// OpRem is the truncated remainder: % for integers, math.Mod for floats.
	OpRem
)

// String returns the operator symbol.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpRem:
		return "%"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Scalar applies op to a single pair of elements.
func Scalar[T Lanes](op Op, a, b T) T {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpRem:
		return remHelper(a, b)
	default:
		panic(fmt.Sprintf("hwy: unknown operation %v", op))
	}
}

func remHelper[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		// fmod is exact, so computing it in float64 and rounding back is
		// lossless.
		return any(float32(math.Mod(float64(av), float64(any(b).(float32))))).(T)
	case float64:
		return any(math.Mod(av, any(b).(float64))).(T)
	case int8:
		return any(av % any(b).(int8)).(T)
	case int16:
		return any(av % any(b).(int16)).(T)
	case int32:
		return any(av % any(b).(int32)).(T)
	case int64:
		return any(av % any(b).(int64)).(T)
	case int:
		return any(av % any(b).(int)).(T)
	case uint8:
		return any(av % any(b).(uint8)).(T)
	case uint16:
		return any(av % any(b).(uint16)).(T)
	case uint32:
		return any(av % any(b).(uint32)).(T)
	case uint64:
		return any(av % any(b).(uint64)).(T)
	case uint:
		return any(av % any(b).(uint)).(T)
	case uintptr:
		return any(av % any(b).(uintptr)).(T)
	default:
		return a
	}
}

func checkLengths(name string, dst, a, b int) {
	if dst != a || a != b {
		panic(fmt.Errorf("%w: %s: dst=%d a=%d b=%d", ErrLengthMismatch, name, dst, a, b))
	}
}

// ScalarArith is the scalar body: one sequential loop over every element,
// ignoring chunking entirely.
type ScalarArith[T Lanes] struct{}

// Path returns PathScalar.
func (ScalarArith[T]) Path() Path { return PathScalar }

// Apply computes dst[i] = a[i] op b[i]. dst may alias a or b.
func (ScalarArith[T]) Apply(op Op, dst, a, b []T) {
	checkLengths(op.String(), len(dst), len(a), len(b))
	switch op {
	case OpAdd:
		for i := range dst {
			dst[i] = a[i] + b[i]
		}
	case OpSub:
		for i := range dst {
			dst[i] = a[i] - b[i]
		}
	case OpMul:
		for i := range dst {
			dst[i] = a[i] * b[i]
		}
	case OpDiv:
		for i := range dst {
			dst[i] = a[i] / b[i]
		}
	default:
		for i := range dst {
			dst[i] = Scalar(op, a[i], b[i])
		}
	}
}

// Sum folds a left to right starting from the additive identity.
func (ScalarArith[T]) Sum(a []T) T {
	acc := num.Zero[T]()
	for _, x := range a {
		acc = acc + x
	}
	return acc
}

// Product folds a left to right starting from the multiplicative identity.
func (ScalarArith[T]) Product(a []T) T {
	acc := num.One[T]()
	for _, x := range a {
		acc = acc * x
	}
	return acc
}
