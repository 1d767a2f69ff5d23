// Copyright 2026 go-intmath Authors
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

// Package intmath provides floored root and logarithm operations for
// fixed-width integer types.
//
// The math package defines these functions for float64 only, which
// pushes integer-heavy code through a cast-compute-cast dance at every
// call site. This package does the round trip once, for all ten
// integer types:
//
//	r := intmath.Sqrt(uint(50))  // 7
//	k := intmath.Log2(uint16(8)) // 3
//
// Every operation is a pure function returning the argument's own type
// with the fractional part truncated toward zero. Because inputs are
// non-negative, the truncated value is also the mathematical floor.
// Results are exact for the full 64-bit range: the float64
// intermediate is refined in the integer domain, so operands above
// 2^53 do not drift off the true floor.
//
// A negative operand, or zero passed to a logarithm, is treated as a
// logic error in the caller: the operation panics with a *DomainError
// rather than clamping or returning a NaN-like sentinel.
package intmath

// SignedInts is a constraint for signed integer types, including the
// pointer-sized int.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types, including
// the pointer-sized uint.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all fixed-width integer types.
type Integers interface {
	SignedInts | UnsignedInts
}
