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

import "math/bits"

// AES round primitives with the semantics of the POWER8 vcipher
// instruction family. The instructions operate on the register's
// logical big-endian byte order, so on little-endian builds the image
// is reversed into state order and back around each round; callers
// that load state and keys with the big-endian-semantics memory
// operations get standard AES behavior on any host.
//
// These symbols exist only at the crypto tier. A build without the
// tier has no fallback stub; callers fail to compile instead.

// AESEncrypt performs one round of AES encryption of state using the
// round key: SubBytes, ShiftRows, MixColumns, AddRoundKey. The result
// keeps state's lane typing.
func AESEncrypt[T1, T2 Lanes](state Vec[T1], key Vec[T2]) Vec[T1] {
	s := regOrder(state.r)
	k := regOrder(key.r)
	s = subShiftRows(s)
	s = mixColumns(s)
	for i := range s {
		s[i] ^= k[i]
	}
	return Vec[T1]{r: regOrder(s)}
}

// AESEncryptLast performs the final round of AES encryption of state
// using the round key: SubBytes, ShiftRows, AddRoundKey.
func AESEncryptLast[T1, T2 Lanes](state Vec[T1], key Vec[T2]) Vec[T1] {
	s := regOrder(state.r)
	k := regOrder(key.r)
	s = subShiftRows(s)
	for i := range s {
		s[i] ^= k[i]
	}
	return Vec[T1]{r: regOrder(s)}
}

// AESDecrypt performs one round of AES decryption of state using the
// round key: InvShiftRows, InvSubBytes, AddRoundKey, InvMixColumns.
// The key XOR lands before InvMixColumns, so a decryption loop uses
// the encryption schedule's round keys untransformed.
func AESDecrypt[T1, T2 Lanes](state Vec[T1], key Vec[T2]) Vec[T1] {
	s := regOrder(state.r)
	k := regOrder(key.r)
	s = invSubShiftRows(s)
	for i := range s {
		s[i] ^= k[i]
	}
	s = invMixColumns(s)
	return Vec[T1]{r: regOrder(s)}
}

// AESDecryptLast performs the final round of AES decryption of state
// using the round key: InvShiftRows, InvSubBytes, AddRoundKey.
func AESDecryptLast[T1, T2 Lanes](state Vec[T1], key Vec[T2]) Vec[T1] {
	s := regOrder(state.r)
	k := regOrder(key.r)
	s = invSubShiftRows(s)
	for i := range s {
		s[i] ^= k[i]
	}
	return Vec[T1]{r: regOrder(s)}
}

// regOrder converts between the native register image and the
// logical big-endian byte order the crypto instructions operate on.
// It is its own inverse.
func regOrder(r [16]byte) [16]byte {
	if bigEndian {
		return r
	}
	var out [16]byte
	for i := range out {
		out[i] = r[15-i]
	}
	return out
}

// The AES state is column major: byte r+4c holds row r, column c.

// subShiftRows applies SubBytes and ShiftRows (row r rotates left by
// r columns); the two commute, so one pass suffices.
func subShiftRows(s [16]byte) [16]byte {
	var out [16]byte
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r+4*c] = sbox[s[r+4*((c+r)&3)]]
		}
	}
	return out
}

// invSubShiftRows applies InvShiftRows (row r rotates right by r
// columns) and InvSubBytes.
func invSubShiftRows(s [16]byte) [16]byte {
	var out [16]byte
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r+4*c] = invSbox[s[r+4*((c-r+4)&3)]]
		}
	}
	return out
}

func mixColumns(s [16]byte) [16]byte {
	var out [16]byte
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		out[4*c] = xtime(a0) ^ xtime(a1) ^ a1 ^ a2 ^ a3
		out[4*c+1] = a0 ^ xtime(a1) ^ xtime(a2) ^ a2 ^ a3
		out[4*c+2] = a0 ^ a1 ^ xtime(a2) ^ xtime(a3) ^ a3
		out[4*c+3] = xtime(a0) ^ a0 ^ a1 ^ a2 ^ xtime(a3)
	}
	return out
}

func invMixColumns(s [16]byte) [16]byte {
	var out [16]byte
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		out[4*c] = mul14(a0) ^ mul11(a1) ^ mul13(a2) ^ mul9(a3)
		out[4*c+1] = mul9(a0) ^ mul14(a1) ^ mul11(a2) ^ mul13(a3)
		out[4*c+2] = mul13(a0) ^ mul9(a1) ^ mul14(a2) ^ mul11(a3)
		out[4*c+3] = mul11(a0) ^ mul13(a1) ^ mul9(a2) ^ mul14(a3)
	}
	return out
}

// xtime multiplies by x in GF(2^8) mod x^8+x^4+x^3+x+1.
func xtime(b byte) byte {
	return b<<1 ^ byte(int8(b)>>7)&0x1b
}

func mul9(b byte) byte {
	return xtime(xtime(xtime(b))) ^ b
}

func mul11(b byte) byte {
	x2 := xtime(b)
	return xtime(xtime(x2)) ^ x2 ^ b
}

func mul13(b byte) byte {
	x4 := xtime(xtime(b))
	return xtime(x4) ^ x4 ^ b
}

func mul14(b byte) byte {
	x2 := xtime(b)
	x4 := xtime(x2)
	return xtime(x4) ^ x4 ^ x2
}

// sbox and invSbox are derived at init from the GF(2^8) inverse and
// the affine transform, avoiding a hand-typed table.
var sbox, invSbox [256]byte

func init() {
	var exp, log [256]byte
	x := byte(1)
	for i := 0; i < 255; i++ {
		exp[i] = x
		log[x] = byte(i)
		x ^= xtime(x) // multiply by the generator 0x03
	}
	for i := 1; i < 256; i++ {
		inv := exp[(255-int(log[i]))%255]
		sbox[i] = affine(inv)
	}
	sbox[0] = affine(0)
	for i := 0; i < 256; i++ {
		invSbox[sbox[i]] = byte(i)
	}
}

func affine(b byte) byte {
	return b ^ bits.RotateLeft8(b, 1) ^ bits.RotateLeft8(b, 2) ^
		bits.RotateLeft8(b, 3) ^ bits.RotateLeft8(b, 4) ^ 0x63
}
