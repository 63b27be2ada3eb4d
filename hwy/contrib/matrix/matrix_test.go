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

package matrix

import (
	"errors"
	"testing"

	"github.com/ajroetker/go-vecn/hwy"
	"github.com/ajroetker/go-vecn/hwy/contrib/vec"
	"github.com/google/go-cmp/cmp"
)

func mustRows[T hwy.Lanes, R, C vec.Dim](t *testing.T, values ...T) Matrix[T, R, C] {
	t.Helper()
	m, err := FromRows[T, R, C](values...)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return m
}

func TestIdentity(t *testing.T) {
	id := Identity[float32, vec.D3]()
	want := mustRows[float32, vec.D3, vec.D3](t,
		1, 0, 0,
		0, 1, 0,
		0, 0, 1)
	if !id.Equal(want) {
		t.Errorf("Identity =\n%v", id)
	}
	v := vec.FromArray[float32, vec.D3](4, -5, 6)
	if got := id.MulVec(v); !got.Equal(v) {
		t.Errorf("I * v = %v, want %v", got, v)
	}
}

func TestMulVec(t *testing.T) {
	for _, p := range []hwy.Path{hwy.PathScalar, hwy.PathSIMD} {
		t.Run(p.String(), func(t *testing.T) {
			hwy.ForcePath(p)
			defer hwy.ResetPath()

			m := mustRows[int32, vec.D2, vec.D3](t,
				1, 2, 3,
				4, 5, 6)
			v := vec.FromArray[int32, vec.D3](1, 0, -1)
			if diff := cmp.Diff([]int32{-2, -2}, m.MulVec(v).ToArray()); diff != "" {
				t.Errorf("MulVec (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTranspose(t *testing.T) {
	m := mustRows[int64, vec.D2, vec.D3](t,
		1, 2, 3,
		4, 5, 6)
	tr := m.Transpose()
	if tr.Rows() != 3 || tr.Columns() != 2 {
		t.Fatalf("Transpose is %dx%d", tr.Rows(), tr.Columns())
	}
	want := mustRows[int64, vec.D3, vec.D2](t,
		1, 4,
		2, 5,
		3, 6)
	if !tr.Equal(want) {
		t.Errorf("Transpose =\n%v\nwant\n%v", tr, want)
	}
	if !tr.Transpose().Equal(m) {
		t.Error("double transpose differs from the original")
	}
	if !m.Row(1).Equal(tr.Column(1)) {
		t.Errorf("Row(1) = %v, transposed Column(1) = %v", m.Row(1), tr.Column(1))
	}
}

func TestElementwise(t *testing.T) {
	a := mustRows[float64, vec.D2, vec.D2](t, 1, 2, 3, 4)
	b := mustRows[float64, vec.D2, vec.D2](t, 10, 20, 30, 40)
	if got := a.Add(b); !got.Equal(mustRows[float64, vec.D2, vec.D2](t, 11, 22, 33, 44)) {
		t.Errorf("Add =\n%v", got)
	}
	if got := b.Sub(a); !got.Equal(mustRows[float64, vec.D2, vec.D2](t, 9, 18, 27, 36)) {
		t.Errorf("Sub =\n%v", got)
	}
	if got := a.Hadamard(b); !got.Equal(mustRows[float64, vec.D2, vec.D2](t, 10, 40, 90, 160)) {
		t.Errorf("Hadamard =\n%v", got)
	}
	if got := a.Hadamard(One[float64, vec.D2, vec.D2]()); !got.Equal(a) {
		t.Errorf("a ∘ One =\n%v", got)
	}

	var zero Matrix[float64, vec.D2, vec.D2]
	if !zero.Equal(Zero[float64, vec.D2, vec.D2]()) {
		t.Error("zero value differs from Zero")
	}
	if got := zero.Add(a); !got.Equal(a) {
		t.Errorf("zero value + a =\n%v", got)
	}
}

func TestFromRowsWrongLength(t *testing.T) {
	_, err := FromRows[int32, vec.D2, vec.D2](1, 2, 3)
	if !errors.Is(err, vec.ErrArrayLength) {
		t.Errorf("FromRows with 3 values: err = %v, want ErrArrayLength", err)
	}
}

func TestAt(t *testing.T) {
	m := mustRows[uint8, vec.D2, vec.D3](t,
		1, 2, 3,
		4, 5, 6)
	if m.At(1, 2) != 6 || m.At(0, 1) != 2 {
		t.Errorf("At returned %v, %v", m.At(1, 2), m.At(0, 1))
	}
	for _, rc := range [][2]int{{2, 0}, {0, 3}, {-1, 0}} {
		func() {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, vec.ErrIndexOutOfRange) {
					t.Errorf("At(%d, %d): recovered %v, want ErrIndexOutOfRange", rc[0], rc[1], err)
				}
			}()
			m.At(rc[0], rc[1])
		}()
	}
}

func TestString(t *testing.T) {
	m := Splat[int16, vec.D2, vec.D2](7)
	if got, want := m.String(), "[7 7]\n[7 7]"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
