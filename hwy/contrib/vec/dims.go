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

package vec

// Dim is a type-level vector length. Implementations are zero-size types
// whose Len method returns a constant, so the length is part of the Vec type
// and vectors of different lengths cannot be mixed.
//
// Declare your own for lengths not provided here:
//
//	type D18 struct{}
//
//	func (D18) Len() int { return 18 }
type Dim interface {
	Len() int
}

// D0 is the empty dimension.
type D0 struct{}

// D1 is a length of 1.
type D1 struct{}

// D2 is a length of 2.
type D2 struct{}

// D3 is a length of 3.
type D3 struct{}

// D4 is a length of 4.
type D4 struct{}

// D8 is a length of 8.
type D8 struct{}

// D16 is a length of 16.
type D16 struct{}

// D32 is a length of 32.
type D32 struct{}

// D64 is a length of 64.
type D64 struct{}

func (D0) Len() int  { return 0 }
func (D1) Len() int  { return 1 }
func (D2) Len() int  { return 2 }
func (D3) Len() int  { return 3 }
func (D4) Len() int  { return 4 }
func (D8) Len() int  { return 8 }
func (D16) Len() int { return 16 }
func (D32) Len() int { return 32 }
func (D64) Len() int { return 64 }

// LenOf returns the length carried by D.
func LenOf[D Dim]() int {
	var d D
	return d.Len()
}
