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

import (
	"math"
	"math/bits"
)

// This file keeps the float64 round trips honest. float64 carries 53
// mantissa bits, so for operands above 2^53 the seed from the math
// package can land one off the true floor in either direction. Each
// function walks the seed back onto the exact integer floor, so the
// public operations stay correct over the full 64-bit range.

const (
	maxSqrt64 = 1<<32 - 1 // floorSqrt(math.MaxUint64)
	maxCbrt64 = 2642245   // floorCbrt(math.MaxUint64)
)

// floorSqrt returns the largest r with r*r <= x.
func floorSqrt(x uint64) uint64 {
	r := uint64(math.Sqrt(float64(x)))
	if r > maxSqrt64 {
		r = maxSqrt64
	}
	for r*r > x {
		r--
	}
	// (r+1)^2 overflows only past maxSqrt64, where it cannot be <= x.
	for r < maxSqrt64 && (r+1)*(r+1) <= x {
		r++
	}
	return r
}

// floorCbrt returns the largest r with r*r*r <= x.
func floorCbrt(x uint64) uint64 {
	r := uint64(math.Cbrt(float64(x)))
	if r > maxCbrt64 {
		r = maxCbrt64
	}
	for r*r*r > x {
		r--
	}
	for r < maxCbrt64 && (r+1)*(r+1)*(r+1) <= x {
		r++
	}
	return r
}

// floorLog2 returns the largest r with 2^r <= x, for x >= 1. The bit
// length of x gives the floor directly, no float arithmetic involved.
func floorLog2(x uint64) uint64 {
	return uint64(bits.Len64(x) - 1)
}

// floorLog returns the largest r with base^r <= x, for x >= 1 and
// base >= 2.
func floorLog(x, base uint64) uint64 {
	if base == 2 {
		return floorLog2(x)
	}
	r := uint64(math.Log(float64(x)) / math.Log(float64(base)))
	for r > 0 && !powAtMost(base, r, x) {
		r--
	}
	for powAtMost(base, r+1, x) {
		r++
	}
	return r
}

// powAtMost reports whether base^exp <= limit, without overflowing:
// the running product only grows while it still fits under limit.
func powAtMost(base, exp, limit uint64) bool {
	p := uint64(1)
	for ; exp > 0; exp-- {
		if p > limit/base {
			return false
		}
		p *= base
	}
	return p <= limit
}

// lnBounds[k] is the smallest integer x with ln(x) >= k, i.e.
// ceil(e^k). e^k is irrational for k >= 1, so over the integers
// ln(x) >= k holds exactly when x >= ceil(e^k). ln(math.MaxUint64) is
// about 44.36, so 45 entries cover the full range.
var lnBounds = [45]uint64{
	1, 3, 8, 21, 55, 149, 404, 1097, 2981, 8104,
	22027, 59875, 162755, 442414, 1202605, 3269018, 8886111,
	24154953, 65659970, 178482301, 485165196, 1318815735,
	3584912847, 9744803447, 26489122130, 72004899338,
	195729609429, 532048240602, 1446257064292, 3931334297145,
	10686474581525, 29048849665248, 78962960182681,
	214643579785917, 583461742527455, 1586013452313431,
	4311231547115196, 11719142372802612, 31855931757113757,
	86593400423993747, 235385266837019986, 639843493530054950,
	1739274941520501048, 4727839468229346562, 12851600114359308276,
}

// floorLn returns the largest r with e^r <= x, for x >= 1.
func floorLn(x uint64) uint64 {
	r := uint64(len(lnBounds) - 1)
	for lnBounds[r] > x {
		r--
	}
	return r
}
