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

//go:build amd64 && goexperiment.simd

package hwy

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

type kernelCase struct {
	name  string
	check func(t *testing.T)
}

// hasKernel asserts that op on blocks of lanes elements of T runs on an
// archsimd register and agrees with Scalar on random data.
func hasKernel[T Lanes](op Op, lanes int) kernelCase {
	var zero T
	return kernelCase{
		name: fmt.Sprintf("%T/%v/x%d", zero, op, lanes),
		check: func(t *testing.T) {
			k := hardwareKernel[T](op, lanes)
			if k == nil {
				t.Fatalf("no hardware kernel for %T %v x%d", zero, op, lanes)
			}
			r := rand.New(rand.NewPCG(uint64(lanes), uint64(op)))
			a, b := randomSlice[T](r, lanes), randomSlice[T](r, lanes)
			got := append([]T(nil), a...)
			k(got, b)
			for i := range got {
				if want := Scalar(op, a[i], b[i]); !sameBits(got[i], want) {
					t.Errorf("lane %d: got %v, want %v", i, got[i], want)
				}
			}
		},
	}
}

func TestHardwareKernels(t *testing.T) {
	if CurrentLevel() != DispatchAVX2 && CurrentLevel() != DispatchAVX512 {
		t.Skipf("dispatch level %v has no archsimd kernels", CurrentLevel())
	}
	cases := []kernelCase{
		hasKernel[uint32](OpAdd, 8),
		hasKernel[uint32](OpAdd, 4),
		hasKernel[uint32](OpMul, 8),
		hasKernel[int32](OpMul, 8),
		hasKernel[int32](OpSub, 4),
		hasKernel[int16](OpAdd, 16),
		hasKernel[uint16](OpMul, 8),
		hasKernel[int8](OpAdd, 32),
		hasKernel[uint8](OpSub, 16),
		hasKernel[int64](OpAdd, 4),
		hasKernel[uint64](OpAdd, 4),
		hasKernel[uint64](OpSub, 2),
		hasKernel[int](OpAdd, 4),
		hasKernel[uint](OpSub, 2),
		hasKernel[uintptr](OpAdd, 4),
		hasKernel[float32](OpAdd, 8),
		hasKernel[float32](OpDiv, 4),
		hasKernel[float64](OpMul, 4),
		hasKernel[float64](OpDiv, 2),
	}
	if CurrentLevel() == DispatchAVX512 {
		cases = append(cases,
			hasKernel[int64](OpMul, 4),
			hasKernel[uint64](OpMul, 2),
			hasKernel[int](OpMul, 4),
		)
	}
	for _, c := range cases {
		t.Run(c.name, c.check)
	}
}

func TestNoHardwareKernel(t *testing.T) {
	tests := []struct {
		name string
		k    bool
	}{
		{"int32 div", hardwareKernel[int32](OpDiv, 8) != nil},
		{"uint8 mul", hardwareKernel[uint8](OpMul, 32) != nil},
		{"float32 rem", hardwareKernel[float32](OpRem, 8) != nil},
		{"float32 x2", hardwareKernel[float32](OpAdd, 2) != nil},
		{"uint32 x16", hardwareKernel[uint32](OpAdd, 16) != nil},
	}
	for _, tt := range tests {
		if tt.k {
			t.Errorf("%s: unexpected hardware kernel", tt.name)
		}
	}
	if CurrentLevel() == DispatchAVX2 && hardwareKernel[int64](OpMul, 4) != nil {
		t.Error("int64 mul x4 has a kernel without AVX-512")
	}
}
