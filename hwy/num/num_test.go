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

package num

import (
	"math"
	"testing"
)

func checkIdentities[T Number](t *testing.T, samples ...T) {
	t.Helper()
	for _, x := range samples {
		if Zero[T]()+x != x {
			t.Errorf("%T: Zero + %v = %v", x, x, Zero[T]()+x)
		}
		if One[T]()*x != x {
			t.Errorf("%T: One * %v = %v", x, x, One[T]()*x)
		}
	}
	if !IsZero(Zero[T]()) || IsZero(One[T]()) {
		t.Errorf("%T: IsZero misreports the identities", Zero[T]())
	}
	if !IsOne(One[T]()) || IsOne(Zero[T]()) {
		t.Errorf("%T: IsOne misreports the identities", Zero[T]())
	}
}

func TestIdentities(t *testing.T) {
	checkIdentities[int8](t, -128, -1, 0, 1, 127)
	checkIdentities[int16](t, math.MinInt16, 7, math.MaxInt16)
	checkIdentities[int32](t, math.MinInt32, -3, math.MaxInt32)
	checkIdentities[int64](t, math.MinInt64, 42, math.MaxInt64)
	checkIdentities[int](t, -5, 0, 5)
	checkIdentities[uint8](t, 0, 1, 255)
	checkIdentities[uint16](t, 0, math.MaxUint16)
	checkIdentities[uint32](t, 0, 18, math.MaxUint32)
	checkIdentities[uint64](t, 0, math.MaxUint64)
	checkIdentities[uint](t, 0, 9)
	checkIdentities[uintptr](t, 0, 1024)
	checkIdentities[float32](t, -1.5, 0, 3.25, math.MaxFloat32, math.SmallestNonzeroFloat32)
	checkIdentities[float64](t, -1.5, 0, 3.25, math.MaxFloat64, math.SmallestNonzeroFloat64)
}

// The float32 multiplicative identity must be exactly 1, not an approximation.
func TestOneFloat32IsExact(t *testing.T) {
	if got := math.Float32bits(One[float32]()); got != math.Float32bits(1) {
		t.Errorf("One[float32]() bits = %#x, want %#x", got, math.Float32bits(1))
	}
	if One[float32]()*1.1 != 1.1 {
		t.Errorf("One[float32]() * 1.1 = %v", One[float32]()*1.1)
	}
}

func TestNegativeZeroIsZero(t *testing.T) {
	if !IsZero(math.Copysign(0, -1)) {
		t.Error("IsZero(-0) = false")
	}
}

type meters float64

func TestDefinedTypes(t *testing.T) {
	if One[meters]() != 1 || Zero[meters]() != 0 {
		t.Error("identities wrong for a defined float type")
	}
	if got := Sqrt(meters(9)); got != 3 {
		t.Errorf("Sqrt(meters(9)) = %v", got)
	}
	if Epsilon[meters]() != meters(Epsilon[float64]()) {
		t.Errorf("Epsilon[meters]() = %v, want %v", Epsilon[meters](), Epsilon[float64]())
	}
}

func TestReal(t *testing.T) {
	if got := Sqrt[float32](14); got != float32(math.Sqrt(14)) {
		t.Errorf("Sqrt[float32](14) = %v", got)
	}
	if got := Abs[float64](-2.5); got != 2.5 {
		t.Errorf("Abs(-2.5) = %v", got)
	}
	if got := Copysign[float32](3, -1); got != -3 {
		t.Errorf("Copysign(3, -1) = %v", got)
	}
	s, c := SinCos[float64](math.Pi / 6)
	if math.Abs(s-0.5) > 1e-15 || math.Abs(c-math.Sqrt(3)/2) > 1e-15 {
		t.Errorf("SinCos(pi/6) = %v, %v", s, c)
	}
	if math.Abs(s-Sin(math.Pi/6)) > 1e-15 || math.Abs(c-Cos(math.Pi/6)) > 1e-15 {
		t.Error("SinCos disagrees with Sin and Cos")
	}
	if got := Asin[float64](1); math.Abs(got-FracPi2[float64]()) > 1e-15 {
		t.Errorf("Asin(1) = %v, want pi/2", got)
	}
	if got := Atan2[float64](1, 1); math.Abs(got-math.Pi/4) > 1e-15 {
		t.Errorf("Atan2(1, 1) = %v", got)
	}
}

func TestConstants(t *testing.T) {
	if Pi[float32]() != float32(math.Pi) || E[float64]() != math.E {
		t.Error("Pi or E has the wrong value")
	}
	if got := DegreesPerRadian[float64]() * RadiansPerDegree[float64](); math.Abs(got-1) > 1e-15 {
		t.Errorf("DegreesPerRadian * RadiansPerDegree = %v", got)
	}
	if !math.IsInf(float64(Inf[float32]()), 1) || !math.IsNaN(NaN[float64]()) {
		t.Error("Inf or NaN has the wrong value")
	}
	if Epsilon[float32]() != 0x1p-23 {
		t.Errorf("Epsilon[float32]() = %v", Epsilon[float32]())
	}
	if Epsilon[float64]() != 0x1p-52 {
		t.Errorf("Epsilon[float64]() = %v", Epsilon[float64]())
	}
}
