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
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"
)

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("HWY_NO_SIMD=%q: NoSimdEnv() = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestForcePath(t *testing.T) {
	defer ResetPath()
	detected := CurrentPath()

	ForcePath(PathScalar)
	if got := CurrentPath(); got != PathScalar {
		t.Errorf("CurrentPath() = %v after ForcePath(scalar)", got)
	}
	ForcePath(PathSIMD)
	if got := CurrentPath(); got != PathSIMD {
		t.Errorf("CurrentPath() = %v after ForcePath(simd)", got)
	}
	ResetPath()
	if got := CurrentPath(); got != detected {
		t.Errorf("CurrentPath() = %v after ResetPath, want %v", got, detected)
	}
}

func TestDispatchInfo(t *testing.T) {
	if NoSimdEnv() && CurrentLevel() != DispatchScalar {
		t.Errorf("HWY_NO_SIMD set but CurrentLevel() = %v", CurrentLevel())
	}
	if CurrentWidth() < 16 {
		t.Errorf("CurrentWidth() = %d, want >= 16", CurrentWidth())
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %q", CurrentName(), CurrentLevel())
	}
	if got := MaxLanes[float32](); got != CurrentWidth()/4 {
		t.Errorf("MaxLanes[float32]() = %d, want %d", got, CurrentWidth()/4)
	}
	if PathScalar.String() != "scalar" || PathSIMD.String() != "simd" {
		t.Errorf("Path strings = %q, %q", PathScalar, PathSIMD)
	}
	seen := map[string]bool{}
	for _, f := range CPUFeatures() {
		if f == "" || seen[f] {
			t.Errorf("CPUFeatures() = %q has empty or repeated names", CPUFeatures())
		}
		seen[f] = true
	}
	if CurrentLevel() == DispatchAVX2 && !seen["avx2"] {
		t.Errorf("level avx2 but CPUFeatures() = %q", CPUFeatures())
	}
	if DispatchLevel(99).String() != "unknown" {
		t.Errorf("DispatchLevel(99).String() = %q", DispatchLevel(99).String())
	}
}

func TestIsElement(t *testing.T) {
	type celsius float32
	for _, typ := range []reflect.Type{
		reflect.TypeFor[int8](), reflect.TypeFor[int16](), reflect.TypeFor[int32](),
		reflect.TypeFor[int64](), reflect.TypeFor[int](), reflect.TypeFor[uint8](),
		reflect.TypeFor[uint16](), reflect.TypeFor[uint32](), reflect.TypeFor[uint64](),
		reflect.TypeFor[uint](), reflect.TypeFor[uintptr](), reflect.TypeFor[float32](),
		reflect.TypeFor[float64](),
	} {
		if !IsElement(typ) {
			t.Errorf("IsElement(%v) = false", typ)
		}
	}
	for _, typ := range []reflect.Type{
		nil, reflect.TypeFor[celsius](), reflect.TypeFor[bool](), reflect.TypeFor[string](),
		reflect.TypeFor[complex64](), reflect.TypeFor[[4]float32](),
	} {
		if IsElement(typ) {
			t.Errorf("IsElement(%v) = true", typ)
		}
	}
}

func TestSizeOf(t *testing.T) {
	if SizeOf[int8]() != 1 || SizeOf[uint16]() != 2 || SizeOf[float32]() != 4 || SizeOf[float64]() != 8 {
		t.Error("SizeOf returned an unexpected size")
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	// A length no other test uses, so the layout is resolved here.
	LayoutOf[int16](12345)
	out := buf.String()
	if !strings.Contains(out, "hwy: dispatch") {
		t.Errorf("SetLogger did not log dispatch info:\n%s", out)
	}
	if !strings.Contains(out, "hwy: layout resolved") || !strings.Contains(out, "n=12345") {
		t.Errorf("LayoutOf did not log the new layout:\n%s", out)
	}

	buf.Reset()
	LayoutOf[int16](12345)
	if buf.Len() != 0 {
		t.Errorf("cached layout logged again:\n%s", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("nil logger is enabled")
	}
}
