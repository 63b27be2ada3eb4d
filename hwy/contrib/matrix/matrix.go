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

// Package matrix provides a fixed-size row-major matrix stored as one flat
// buffer of Rows*Columns elements. Elementwise arithmetic runs through the hwy
// engine exactly like vec.Vec.
package matrix

import (
	"fmt"
	"strings"

	"github.com/ajroetker/go-vecn/hwy"
	"github.com/ajroetker/go-vecn/hwy/contrib/vec"
	"github.com/ajroetker/go-vecn/hwy/num"
)

// Matrix is an R x C matrix, R and C given as vec.Dim tags.
// Like vec.Vec it is immutable and its zero value is the zero matrix.
type Matrix[T hwy.Lanes, R, C vec.Dim] struct {
	data []T
}

func size[R, C vec.Dim]() int {
	return vec.LenOf[R]() * vec.LenOf[C]()
}

func (m Matrix[T, R, C]) elems() []T {
	if m.data == nil {
		return make([]T, size[R, C]())
	}
	return m.data
}

// Splat returns a matrix with every element set to value.
func Splat[T hwy.Lanes, R, C vec.Dim](value T) Matrix[T, R, C] {
	data := make([]T, size[R, C]())
	hwy.Fill(data, value)
	return Matrix[T, R, C]{data: data}
}

// Zero returns the matrix of additive identities.
func Zero[T hwy.Lanes, R, C vec.Dim]() Matrix[T, R, C] {
	return Splat[T, R, C](num.Zero[T]())
}

// One returns the matrix with every element set to the multiplicative
// identity. For the identity matrix use Identity.
func One[T hwy.Lanes, R, C vec.Dim]() Matrix[T, R, C] {
	return Splat[T, R, C](num.One[T]())
}

// Identity returns the N x N identity matrix.
func Identity[T hwy.Lanes, N vec.Dim]() Matrix[T, N, N] {
	n := vec.LenOf[N]()
	data := make([]T, n*n)
	for i := range n {
		data[i*n+i] = num.One[T]()
	}
	return Matrix[T, N, N]{data: data}
}

// FromRows builds a matrix from row-major values; there must be exactly
// Rows*Columns of them.
func FromRows[T hwy.Lanes, R, C vec.Dim](values ...T) (Matrix[T, R, C], error) {
	n := size[R, C]()
	if len(values) != n {
		return Matrix[T, R, C]{}, fmt.Errorf("%w: got %d, want %d", vec.ErrArrayLength, len(values), n)
	}
	data := make([]T, n)
	copy(data, values)
	return Matrix[T, R, C]{data: data}, nil
}

// Rows returns the number of rows.
func (m Matrix[T, R, C]) Rows() int { return vec.LenOf[R]() }

// Columns returns the number of columns.
func (m Matrix[T, R, C]) Columns() int { return vec.LenOf[C]() }

// At returns the element at row r, column c.
// It panics with an error wrapping vec.ErrIndexOutOfRange when out of range.
func (m Matrix[T, R, C]) At(r, c int) T {
	rows, cols := m.Rows(), m.Columns()
	if r < 0 || r >= rows || c < 0 || c >= cols {
		panic(fmt.Errorf("%w: (%d, %d) in %dx%d", vec.ErrIndexOutOfRange, r, c, rows, cols))
	}
	return m.elems()[r*cols+c]
}

// Row returns row r as a vector.
func (m Matrix[T, R, C]) Row(r int) vec.Vec[T, C] {
	cols := m.Columns()
	if r < 0 || r >= m.Rows() {
		panic(fmt.Errorf("%w: row %d of %d", vec.ErrIndexOutOfRange, r, m.Rows()))
	}
	return vec.MustFromSlice[T, C](m.elems()[r*cols:])
}

// Column returns column c as a vector.
func (m Matrix[T, R, C]) Column(c int) vec.Vec[T, R] {
	rows, cols := m.Rows(), m.Columns()
	if c < 0 || c >= cols {
		panic(fmt.Errorf("%w: column %d of %d", vec.ErrIndexOutOfRange, c, cols))
	}
	data := m.elems()
	col := make([]T, rows)
	for r := range rows {
		col[r] = data[r*cols+c]
	}
	return vec.MustFromSlice[T, R](col)
}

// Transpose returns the C x R transpose.
func (m Matrix[T, R, C]) Transpose() Matrix[T, C, R] {
	rows, cols := m.Rows(), m.Columns()
	src := m.elems()
	out := make([]T, len(src))
	for r := range rows {
		for c := range cols {
			out[c*rows+r] = src[r*cols+c]
		}
	}
	return Matrix[T, C, R]{data: out}
}

// MulVec returns the matrix-vector product m * v.
func (m Matrix[T, R, C]) MulVec(v vec.Vec[T, C]) vec.Vec[T, R] {
	rows := m.Rows()
	out := make([]T, rows)
	for r := range rows {
		out[r] = m.Row(r).Dot(v)
	}
	return vec.MustFromSlice[T, R](out)
}

func (m Matrix[T, R, C]) apply(op hwy.Op, o Matrix[T, R, C]) Matrix[T, R, C] {
	out := make([]T, size[R, C]())
	hwy.Apply(op, out, m.elems(), o.elems())
	return Matrix[T, R, C]{data: out}
}

// Add returns m + o elementwise.
func (m Matrix[T, R, C]) Add(o Matrix[T, R, C]) Matrix[T, R, C] { return m.apply(hwy.OpAdd, o) }

// Sub returns m - o elementwise.
func (m Matrix[T, R, C]) Sub(o Matrix[T, R, C]) Matrix[T, R, C] { return m.apply(hwy.OpSub, o) }

// Hadamard returns the elementwise product of m and o.
func (m Matrix[T, R, C]) Hadamard(o Matrix[T, R, C]) Matrix[T, R, C] {
	return m.apply(hwy.OpMul, o)
}

// Equal reports whether m and o hold the same elements.
func (m Matrix[T, R, C]) Equal(o Matrix[T, R, C]) bool {
	a, b := m.elems(), o.elems()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String formats the matrix one row per line.
func (m Matrix[T, R, C]) String() string {
	var sb strings.Builder
	for r := range m.Rows() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(m.Row(r).String())
	}
	return sb.String()
}
