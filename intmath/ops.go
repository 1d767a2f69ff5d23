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

package intmath

// Sqrt returns the floored square root of v.
//
// Sqrt(0) is 0. Sqrt panics with a *DomainError if v is negative.
func Sqrt[T Integers](v T) T {
	if v < 0 {
		panic(&DomainError{Op: "sqrt", Value: int64(v)})
	}
	return T(floorSqrt(uint64(v)))
}

// Cbrt returns the floored cube root of v.
//
// Cbrt(0) is 0. The cube root of a negative number is mathematically
// defined, but Cbrt keeps the same non-negative domain as the other
// operations and panics with a *DomainError if v is negative.
func Cbrt[T Integers](v T) T {
	if v < 0 {
		panic(&DomainError{Op: "cbrt", Value: int64(v)})
	}
	return T(floorCbrt(uint64(v)))
}

// Log returns the floored logarithm of v in the given integer base.
//
// The base must be at least 2 and v must be positive; Log panics with
// a *DomainError otherwise. Zero is rejected rather than mapped to an
// extreme sentinel value.
func Log[T Integers](v T, base uint64) T {
	if base < 2 {
		panic(&DomainError{Op: "log base", Value: int64(base)})
	}
	if v <= 0 {
		panic(&DomainError{Op: "log", Value: int64(v)})
	}
	return T(floorLog(uint64(v), base))
}

// Log2 returns the floored base-2 logarithm of v.
//
// Log2 panics with a *DomainError if v is not positive.
func Log2[T Integers](v T) T {
	return Log(v, 2)
}

// Log10 returns the floored base-10 logarithm of v.
//
// Log10 panics with a *DomainError if v is not positive.
func Log10[T Integers](v T) T {
	return Log(v, 10)
}

// Ln returns the floored natural logarithm of v.
//
// Ln panics with a *DomainError if v is not positive.
func Ln[T Integers](v T) T {
	if v <= 0 {
		panic(&DomainError{Op: "ln", Value: int64(v)})
	}
	return T(floorLn(uint64(v)))
}
