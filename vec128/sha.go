// Copyright 2026 go-vec128 Authors
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

//go:build !vec128_base && !vec128_nocrypto

package vec128

import (
	"encoding/binary"
	"math/bits"
)

// SHA sigma primitives with the semantics of the POWER8 vshasigmaw
// and vshasigmad instructions. Two small integer selectors choose
// among the four sigma variants: fn picks the lowercase (message
// schedule) or uppercase (compression) family, and mask selects per
// lane between the 0 and 1 variant of that family. Passing mask 0 or
// SigmaAll applies one variant to every lane.

// SigmaAll selects the 1 variant in every lane.
const SigmaAll = 0xf

// Selector values for the fn argument.
const (
	// SigmaLower selects the lowercase sigma family.
	SigmaLower = 0
	// SigmaUpper selects the uppercase Sigma family.
	SigmaUpper = 1
)

// SHA256Sigma applies a SHA-256 sigma function to each 32-bit lane of
// v. Word lane i uses bit i of mask to choose between the 0 and 1
// variant.
func SHA256Sigma[T Lanes](v Vec[T], fn, mask int) Vec[T] {
	r := regOrder(v.r)
	for lane := 0; lane < 4; lane++ {
		w := binary.BigEndian.Uint32(r[lane*4:])
		if fn&1 == SigmaLower {
			if mask>>uint(lane)&1 == 0 {
				w = bits.RotateLeft32(w, -7) ^ bits.RotateLeft32(w, -18) ^ w>>3
			} else {
				w = bits.RotateLeft32(w, -17) ^ bits.RotateLeft32(w, -19) ^ w>>10
			}
		} else {
			if mask>>uint(lane)&1 == 0 {
				w = bits.RotateLeft32(w, -2) ^ bits.RotateLeft32(w, -13) ^ bits.RotateLeft32(w, -22)
			} else {
				w = bits.RotateLeft32(w, -6) ^ bits.RotateLeft32(w, -11) ^ bits.RotateLeft32(w, -25)
			}
		}
		binary.BigEndian.PutUint32(r[lane*4:], w)
	}
	return Vec[T]{r: regOrder(r)}
}

// SHA512Sigma applies a SHA-512 sigma function to each 64-bit lane of
// v. Doubleword lane j uses bit 2j of mask, following the hardware's
// selector layout.
func SHA512Sigma[T Lanes](v Vec[T], fn, mask int) Vec[T] {
	r := regOrder(v.r)
	for lane := 0; lane < 2; lane++ {
		w := binary.BigEndian.Uint64(r[lane*8:])
		if fn&1 == SigmaLower {
			if mask>>uint(2*lane)&1 == 0 {
				w = bits.RotateLeft64(w, -1) ^ bits.RotateLeft64(w, -8) ^ w>>7
			} else {
				w = bits.RotateLeft64(w, -19) ^ bits.RotateLeft64(w, -61) ^ w>>6
			}
		} else {
			if mask>>uint(2*lane)&1 == 0 {
				w = bits.RotateLeft64(w, -28) ^ bits.RotateLeft64(w, -34) ^ bits.RotateLeft64(w, -39)
			} else {
				w = bits.RotateLeft64(w, -14) ^ bits.RotateLeft64(w, -18) ^ bits.RotateLeft64(w, -41)
			}
		}
		binary.BigEndian.PutUint64(r[lane*8:], w)
	}
	return Vec[T]{r: regOrder(r)}
}
