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

// A block kernel combines one lane block in place: acc[i] = acc[i] op b[i],
// with len(acc) == len(b) == lanes. The slices it receives are views that are
// only valid for the duration of the call.
type blockKernelFunc[T Lanes] func(acc, b []T)

// blockKernel returns the kernel for op on blocks of the given lane count:
// the hardware kernel when this build and CPU provide one, the portable
// lane-block kernel otherwise.
func blockKernel[T Lanes](op Op, lanes int) blockKernelFunc[T] {
	if k := hardwareKernel[T](op, lanes); k != nil {
		return k
	}
	switch op {
	case OpAdd:
		return addBlock[T]
	case OpSub:
		return subBlock[T]
	case OpMul:
		return mulBlock[T]
	case OpDiv:
		return divBlock[T]
	default:
		return func(acc, b []T) {
			b = b[:len(acc)]
			for i := range acc {
				acc[i] = Scalar(op, acc[i], b[i])
			}
		}
	}
}

// The portable kernels re-slice b to len(acc) so the loop body is free of
// bounds checks, which lets the compiler keep the block in registers.

func addBlock[T Lanes](acc, b []T) {
	b = b[:len(acc)]
	for i := range acc {
		acc[i] += b[i]
	}
}

func subBlock[T Lanes](acc, b []T) {
	b = b[:len(acc)]
	for i := range acc {
		acc[i] -= b[i]
	}
}

func mulBlock[T Lanes](acc, b []T) {
	b = b[:len(acc)]
	for i := range acc {
		acc[i] *= b[i]
	}
}

func divBlock[T Lanes](acc, b []T) {
	b = b[:len(acc)]
	for i := range acc {
		acc[i] /= b[i]
	}
}

// reduceBlock folds one lane block into acc in lane order. It is the ordered
// reduction: acc op block[0] op block[1] ..., never a pairwise tree, so that
// float rounding matches the scalar body.
func reduceBlock[T Lanes](op Op, acc T, block []T) T {
	switch op {
	case OpAdd:
		for _, x := range block {
			acc += x
		}
	case OpMul:
		for _, x := range block {
			acc *= x
		}
	default:
		for _, x := range block {
			acc = Scalar(op, acc, x)
		}
	}
	return acc
}
