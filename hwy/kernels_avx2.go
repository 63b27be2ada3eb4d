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
	"simd/archsimd"
	"unsafe"
)

// Lane blocks of 16 or 32 bytes map to one archsimd register op:
//
//	float32, float64   add, sub, mul, div
//	int16..int64 (u)   add, sub, mul (64-bit mul needs AVX-512 VPMULLQ)
//	int8, uint8        add, sub (x86 has no byte multiply)
//
// int, uint and uintptr reuse the 64-bit kernels. Integer division and
// remainder, float remainder and 8-byte blocks (such as two float32 lanes)
// have no instruction and use the portable lane-block kernels. Integer lanes
// wrap on overflow and IEEE float ops round exactly like scalar Go, so the
// results are bit-identical to the scalar body.

func hardwareKernel[T Lanes](op Op, lanes int) blockKernelFunc[T] {
	if currentLevel != DispatchAVX2 && currentLevel != DispatchAVX512 {
		return nil
	}
	var zero T
	var k any
	switch any(zero).(type) {
	case float32:
		k = float32Kernel(op, lanes)
	case float64:
		k = float64Kernel(op, lanes)
	case int8:
		k = int8Kernel(op, lanes)
	case uint8:
		k = uint8Kernel(op, lanes)
	case int16:
		k = int16Kernel(op, lanes)
	case uint16:
		k = uint16Kernel(op, lanes)
	case int32:
		k = int32Kernel(op, lanes)
	case uint32:
		k = uint32Kernel(op, lanes)
	case int64:
		k = int64Kernel(op, lanes)
	case uint64:
		k = uint64Kernel(op, lanes)
	case int:
		k = reinterpretKernel[int](int64Kernel(op, lanes))
	case uint:
		k = reinterpretKernel[uint](uint64Kernel(op, lanes))
	case uintptr:
		k = reinterpretKernel[uintptr](uint64Kernel(op, lanes))
	}
	kernel, _ := k.(blockKernelFunc[T])
	return kernel
}

// reinterpretKernel runs a kernel for To on blocks of From, which must have
// the same size and integer representation.
func reinterpretKernel[From, To Lanes](k blockKernelFunc[To]) blockKernelFunc[From] {
	if k == nil {
		return nil
	}
	return func(acc, b []From) {
		k(unsafe.Slice((*To)(unsafe.Pointer(unsafe.SliceData(acc))), len(acc)),
			unsafe.Slice((*To)(unsafe.Pointer(unsafe.SliceData(b))), len(b)))
	}
}

func float32Kernel(op Op, lanes int) blockKernelFunc[float32] {
	switch lanes {
	case 8:
		switch op {
		case OpAdd:
			return func(acc, b []float32) {
				archsimd.LoadFloat32x8Slice(acc).Add(archsimd.LoadFloat32x8Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []float32) {
				archsimd.LoadFloat32x8Slice(acc).Sub(archsimd.LoadFloat32x8Slice(b)).StoreSlice(acc)
			}
		case OpMul:
			return func(acc, b []float32) {
				archsimd.LoadFloat32x8Slice(acc).Mul(archsimd.LoadFloat32x8Slice(b)).StoreSlice(acc)
			}
		case OpDiv:
			return func(acc, b []float32) {
				archsimd.LoadFloat32x8Slice(acc).Div(archsimd.LoadFloat32x8Slice(b)).StoreSlice(acc)
			}
		}
	case 4:
		switch op {
		case OpAdd:
			return func(acc, b []float32) {
				archsimd.LoadFloat32x4Slice(acc).Add(archsimd.LoadFloat32x4Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []float32) {
				archsimd.LoadFloat32x4Slice(acc).Sub(archsimd.LoadFloat32x4Slice(b)).StoreSlice(acc)
			}
		case OpMul:
			return func(acc, b []float32) {
				archsimd.LoadFloat32x4Slice(acc).Mul(archsimd.LoadFloat32x4Slice(b)).StoreSlice(acc)
			}
		case OpDiv:
			return func(acc, b []float32) {
				archsimd.LoadFloat32x4Slice(acc).Div(archsimd.LoadFloat32x4Slice(b)).StoreSlice(acc)
			}
		}
	}
	return nil
}

func float64Kernel(op Op, lanes int) blockKernelFunc[float64] {
	switch lanes {
	case 4:
		switch op {
		case OpAdd:
			return func(acc, b []float64) {
				archsimd.LoadFloat64x4Slice(acc).Add(archsimd.LoadFloat64x4Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []float64) {
				archsimd.LoadFloat64x4Slice(acc).Sub(archsimd.LoadFloat64x4Slice(b)).StoreSlice(acc)
			}
		case OpMul:
			return func(acc, b []float64) {
				archsimd.LoadFloat64x4Slice(acc).Mul(archsimd.LoadFloat64x4Slice(b)).StoreSlice(acc)
			}
		case OpDiv:
			return func(acc, b []float64) {
				archsimd.LoadFloat64x4Slice(acc).Div(archsimd.LoadFloat64x4Slice(b)).StoreSlice(acc)
			}
		}
	case 2:
		switch op {
		case OpAdd:
			return func(acc, b []float64) {
				archsimd.LoadFloat64x2Slice(acc).Add(archsimd.LoadFloat64x2Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []float64) {
				archsimd.LoadFloat64x2Slice(acc).Sub(archsimd.LoadFloat64x2Slice(b)).StoreSlice(acc)
			}
		case OpMul:
			return func(acc, b []float64) {
				archsimd.LoadFloat64x2Slice(acc).Mul(archsimd.LoadFloat64x2Slice(b)).StoreSlice(acc)
			}
		case OpDiv:
			return func(acc, b []float64) {
				archsimd.LoadFloat64x2Slice(acc).Div(archsimd.LoadFloat64x2Slice(b)).StoreSlice(acc)
			}
		}
	}
	return nil
}

func int8Kernel(op Op, lanes int) blockKernelFunc[int8] {
	switch lanes {
	case 32:
		switch op {
		case OpAdd:
			return func(acc, b []int8) {
				archsimd.LoadInt8x32Slice(acc).Add(archsimd.LoadInt8x32Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []int8) {
				archsimd.LoadInt8x32Slice(acc).Sub(archsimd.LoadInt8x32Slice(b)).StoreSlice(acc)
			}
		}
	case 16:
		switch op {
		case OpAdd:
			return func(acc, b []int8) {
				archsimd.LoadInt8x16Slice(acc).Add(archsimd.LoadInt8x16Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []int8) {
				archsimd.LoadInt8x16Slice(acc).Sub(archsimd.LoadInt8x16Slice(b)).StoreSlice(acc)
			}
		}
	}
	return nil
}

func uint8Kernel(op Op, lanes int) blockKernelFunc[uint8] {
	switch lanes {
	case 32:
		switch op {
		case OpAdd:
			return func(acc, b []uint8) {
				archsimd.LoadUint8x32Slice(acc).Add(archsimd.LoadUint8x32Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []uint8) {
				archsimd.LoadUint8x32Slice(acc).Sub(archsimd.LoadUint8x32Slice(b)).StoreSlice(acc)
			}
		}
	case 16:
		switch op {
		case OpAdd:
			return func(acc, b []uint8) {
				archsimd.LoadUint8x16Slice(acc).Add(archsimd.LoadUint8x16Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []uint8) {
				archsimd.LoadUint8x16Slice(acc).Sub(archsimd.LoadUint8x16Slice(b)).StoreSlice(acc)
			}
		}
	}
	return nil
}

func int16Kernel(op Op, lanes int) blockKernelFunc[int16] {
	switch lanes {
	case 16:
		switch op {
		case OpAdd:
			return func(acc, b []int16) {
				archsimd.LoadInt16x16Slice(acc).Add(archsimd.LoadInt16x16Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []int16) {
				archsimd.LoadInt16x16Slice(acc).Sub(archsimd.LoadInt16x16Slice(b)).StoreSlice(acc)
			}
		case OpMul:
			return func(acc, b []int16) {
				archsimd.LoadInt16x16Slice(acc).Mul(archsimd.LoadInt16x16Slice(b)).StoreSlice(acc)
			}
		}
	case 8:
		switch op {
		case OpAdd:
			return func(acc, b []int16) {
				archsimd.LoadInt16x8Slice(acc).Add(archsimd.LoadInt16x8Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []int16) {
				archsimd.LoadInt16x8Slice(acc).Sub(archsimd.LoadInt16x8Slice(b)).StoreSlice(acc)
			}
		case OpMul:
			return func(acc, b []int16) {
				archsimd.LoadInt16x8Slice(acc).Mul(archsimd.LoadInt16x8Slice(b)).StoreSlice(acc)
			}
		}
	}
	return nil
}

func uint16Kernel(op Op, lanes int) blockKernelFunc[uint16] {
	switch lanes {
	case 16:
		switch op {
		case OpAdd:
			return func(acc, b []uint16) {
				archsimd.LoadUint16x16Slice(acc).Add(archsimd.LoadUint16x16Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []uint16) {
				archsimd.LoadUint16x16Slice(acc).Sub(archsimd.LoadUint16x16Slice(b)).StoreSlice(acc)
			}
		case OpMul:
			return func(acc, b []uint16) {
				archsimd.LoadUint16x16Slice(acc).Mul(archsimd.LoadUint16x16Slice(b)).StoreSlice(acc)
			}
		}
	case 8:
		switch op {
		case OpAdd:
			return func(acc, b []uint16) {
				archsimd.LoadUint16x8Slice(acc).Add(archsimd.LoadUint16x8Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []uint16) {
				archsimd.LoadUint16x8Slice(acc).Sub(archsimd.LoadUint16x8Slice(b)).StoreSlice(acc)
			}
		case OpMul:
			return func(acc, b []uint16) {
				archsimd.LoadUint16x8Slice(acc).Mul(archsimd.LoadUint16x8Slice(b)).StoreSlice(acc)
			}
		}
	}
	return nil
}

func int32Kernel(op Op, lanes int) blockKernelFunc[int32] {
	switch lanes {
	case 8:
		switch op {
		case OpAdd:
			return func(acc, b []int32) {
				archsimd.LoadInt32x8Slice(acc).Add(archsimd.LoadInt32x8Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []int32) {
				archsimd.LoadInt32x8Slice(acc).Sub(archsimd.LoadInt32x8Slice(b)).StoreSlice(acc)
			}
		case OpMul:
			return func(acc, b []int32) {
				archsimd.LoadInt32x8Slice(acc).Mul(archsimd.LoadInt32x8Slice(b)).StoreSlice(acc)
			}
		}
	case 4:
		switch op {
		case OpAdd:
			return func(acc, b []int32) {
				archsimd.LoadInt32x4Slice(acc).Add(archsimd.LoadInt32x4Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []int32) {
				archsimd.LoadInt32x4Slice(acc).Sub(archsimd.LoadInt32x4Slice(b)).StoreSlice(acc)
			}
		case OpMul:
			return func(acc, b []int32) {
				archsimd.LoadInt32x4Slice(acc).Mul(archsimd.LoadInt32x4Slice(b)).StoreSlice(acc)
			}
		}
	}
	return nil
}

func uint32Kernel(op Op, lanes int) blockKernelFunc[uint32] {
	switch lanes {
	case 8:
		switch op {
		case OpAdd:
			return func(acc, b []uint32) {
				archsimd.LoadUint32x8Slice(acc).Add(archsimd.LoadUint32x8Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []uint32) {
				archsimd.LoadUint32x8Slice(acc).Sub(archsimd.LoadUint32x8Slice(b)).StoreSlice(acc)
			}
		case OpMul:
			return func(acc, b []uint32) {
				archsimd.LoadUint32x8Slice(acc).Mul(archsimd.LoadUint32x8Slice(b)).StoreSlice(acc)
			}
		}
	case 4:
		switch op {
		case OpAdd:
			return func(acc, b []uint32) {
				archsimd.LoadUint32x4Slice(acc).Add(archsimd.LoadUint32x4Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []uint32) {
				archsimd.LoadUint32x4Slice(acc).Sub(archsimd.LoadUint32x4Slice(b)).StoreSlice(acc)
			}
		case OpMul:
			return func(acc, b []uint32) {
				archsimd.LoadUint32x4Slice(acc).Mul(archsimd.LoadUint32x4Slice(b)).StoreSlice(acc)
			}
		}
	}
	return nil
}

func int64Kernel(op Op, lanes int) blockKernelFunc[int64] {
	switch lanes {
	case 4:
		switch op {
		case OpAdd:
			return func(acc, b []int64) {
				archsimd.LoadInt64x4Slice(acc).Add(archsimd.LoadInt64x4Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []int64) {
				archsimd.LoadInt64x4Slice(acc).Sub(archsimd.LoadInt64x4Slice(b)).StoreSlice(acc)
			}
		case OpMul:
			if currentLevel != DispatchAVX512 {
				return nil
			}
			return func(acc, b []int64) {
				archsimd.LoadInt64x4Slice(acc).Mul(archsimd.LoadInt64x4Slice(b)).StoreSlice(acc)
			}
		}
	case 2:
		switch op {
		case OpAdd:
			return func(acc, b []int64) {
				archsimd.LoadInt64x2Slice(acc).Add(archsimd.LoadInt64x2Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []int64) {
				archsimd.LoadInt64x2Slice(acc).Sub(archsimd.LoadInt64x2Slice(b)).StoreSlice(acc)
			}
		case OpMul:
			if currentLevel != DispatchAVX512 {
				return nil
			}
			return func(acc, b []int64) {
				archsimd.LoadInt64x2Slice(acc).Mul(archsimd.LoadInt64x2Slice(b)).StoreSlice(acc)
			}
		}
	}
	return nil
}

func uint64Kernel(op Op, lanes int) blockKernelFunc[uint64] {
	switch lanes {
	case 4:
		switch op {
		case OpAdd:
			return func(acc, b []uint64) {
				archsimd.LoadUint64x4Slice(acc).Add(archsimd.LoadUint64x4Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []uint64) {
				archsimd.LoadUint64x4Slice(acc).Sub(archsimd.LoadUint64x4Slice(b)).StoreSlice(acc)
			}
		case OpMul:
			if currentLevel != DispatchAVX512 {
				return nil
			}
			return func(acc, b []uint64) {
				archsimd.LoadUint64x4Slice(acc).Mul(archsimd.LoadUint64x4Slice(b)).StoreSlice(acc)
			}
		}
	case 2:
		switch op {
		case OpAdd:
			return func(acc, b []uint64) {
				archsimd.LoadUint64x2Slice(acc).Add(archsimd.LoadUint64x2Slice(b)).StoreSlice(acc)
			}
		case OpSub:
			return func(acc, b []uint64) {
				archsimd.LoadUint64x2Slice(acc).Sub(archsimd.LoadUint64x2Slice(b)).StoreSlice(acc)
			}
		case OpMul:
			if currentLevel != DispatchAVX512 {
				return nil
			}
			return func(acc, b []uint64) {
				archsimd.LoadUint64x2Slice(acc).Mul(archsimd.LoadUint64x2Slice(b)).StoreSlice(acc)
			}
		}
	}
	return nil
}
