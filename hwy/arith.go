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

import "github.com/ajroetker/go-vecn/hwy/num"

// Arith is one body of the arithmetic engine. ScalarArith and SIMDArith
// implement it and must agree bit for bit on every input.
type Arith[T Lanes] interface {
	// Path identifies the body.
	Path() Path

	// Apply computes dst[i] = a[i] op b[i]. All three slices must have the
	// same length; dst may alias a or b.
	Apply(op Op, dst, a, b []T)

	// Sum returns Zero + a[0] + a[1] + ... folded left to right.
	Sum(a []T) T

	// Product returns One * a[0] * a[1] * ... folded left to right.
	Product(a []T) T
}

// ArithFor returns the body selected by CurrentPath.
func ArithFor[T Lanes]() Arith[T] {
	if CurrentPath() == PathScalar {
		return ScalarArith[T]{}
	}
	return SIMDArith[T]{}
}

// SIMDArith is the hardware body. Each whole chunk of the layout deduced for
// the operand length is handed to one lane-block kernel; the remainder uses
// the scalar operator.
type SIMDArith[T Lanes] struct{}

// Path returns PathSIMD.
func (SIMDArith[T]) Path() Path { return PathSIMD }

// Apply computes dst[i] = a[i] op b[i] chunk by chunk. dst may alias a or b.
func (SIMDArith[T]) Apply(op Op, dst, a, b []T) {
	checkLengths(op.String(), len(dst), len(a), len(b))
	l := LayoutOf[T](len(a))

	// The partition of a doubles as the output buffer, so dst is written only
	// once every input element has been read.
	p := Split(a, l)
	if l.Vectors > 0 {
		kernel := blockKernel[T](op, l.Lanes)
		for i := range l.Vectors {
			off := i * l.Lanes
			kernel(p.Chunk(i), b[off:off+l.Lanes:off+l.Lanes])
		}
	}

	rem := p.Remainder()
	bRem := b[l.ChunkLen():]
	for i := range rem {
		rem[i] = Scalar(op, rem[i], bRem[i])
	}

	copy(dst, p.Slice())
}

// Sum reduces each chunk in index order with an ordered lane fold, then
// folds in the remainder.
func (SIMDArith[T]) Sum(a []T) T {
	return reduce(OpAdd, num.Zero[T](), a)
}

// Product reduces like Sum, starting from One.
func (SIMDArith[T]) Product(a []T) T {
	return reduce(OpMul, num.One[T](), a)
}

func reduce[T Lanes](op Op, acc T, a []T) T {
	l := LayoutOf[T](len(a))
	ProcessChunks(l,
		func(offset int) {
			acc = reduceBlock(op, acc, a[offset:offset+l.Lanes:offset+l.Lanes])
		},
		func(offset, count int) {
			for _, x := range a[offset : offset+count] {
				acc = Scalar(op, acc, x)
			}
		},
	)
	return acc
}

// Apply runs op over a and b into dst using the current path.
//
// Apply panics with an error wrapping ErrLengthMismatch if the slices differ
// in length.
func Apply[T Lanes](op Op, dst, a, b []T) {
	ArithFor[T]().Apply(op, dst, a, b)
}

// Add computes dst[i] = a[i] + b[i].
func Add[T Lanes](dst, a, b []T) { Apply(OpAdd, dst, a, b) }

// Sub computes dst[i] = a[i] - b[i].
func Sub[T Lanes](dst, a, b []T) { Apply(OpSub, dst, a, b) }

// Mul computes dst[i] = a[i] * b[i].
func Mul[T Lanes](dst, a, b []T) { Apply(OpMul, dst, a, b) }

// Div computes dst[i] = a[i] / b[i]. Integer division by zero panics exactly
// as the Go operator does.
func Div[T Lanes](dst, a, b []T) { Apply(OpDiv, dst, a, b) }

// Rem computes dst[i] = a[i] % b[i]; math.Mod for floats.
func Rem[T Lanes](dst, a, b []T) { Apply(OpRem, dst, a, b) }

// Sum returns the ordered sum of a using the current path.
func Sum[T Lanes](a []T) T { return ArithFor[T]().Sum(a) }

// Product returns the ordered product of a using the current path.
func Product[T Lanes](a []T) T { return ArithFor[T]().Product(a) }

// Fill sets every element of dst to value.
func Fill[T Lanes](dst []T, value T) {
	for i := range dst {
		dst[i] = value
	}
}
