//go:build vec128_base

package vec128

import "unsafe"

// Native-order loads and stores under the baseline tier, which has
// aligned 16-byte accesses only. Unaligned windows take the classic
// slow paths: load low, load high, permute them together; store by
// rotating into alignment and emitting lane-partial stores of
// progressively smaller granularity so that only the destination's
// 16 bytes are touched.
//
// The baseline access instructions are modeled on a 32-byte staging
// image whose byte 0 sits on the 16-byte boundary at or below the
// buffer address, which keeps the emulation in bounds for any
// alignment.

// Load reads 16 bytes from src in native byte order.
func Load(src []byte) Vec[uint32] {
	return LoadAt(src, 0)
}

// LoadAt reads 16 bytes starting at off from src in native byte
// order.
func LoadAt(src []byte, off int) Vec[uint32] {
	var v Vec[uint32]
	p := src[off : off+16]
	sh := alignOffset(p)
	if sh == 0 {
		copy(v.r[:], p)
		return v
	}

	var stage [32]byte
	copy(stage[sh:sh+16], p)

	// low and high aligned halves, combined through the
	// alignment-derived permutation.
	low := stage[0:16]
	high := stage[16:32]
	perm := lvsl(sh)
	for i := range v.r {
		k := perm[i]
		if k < 16 {
			v.r[i] = low[k]
		} else {
			v.r[i] = high[k-16]
		}
	}
	return v
}

// Store writes v's 16 bytes to dst in native byte order.
func Store[T Lanes](v Vec[T], dst []byte) {
	StoreAt(v, dst, 0)
}

// StoreAt writes v's 16 bytes starting at off into dst in native
// byte order. Unaligned destinations go through the partial-store
// ladder; no byte outside the 16-byte window is written.
func StoreAt[T Lanes](v Vec[T], dst []byte, off int) {
	p := dst[off : off+16]
	sh := alignOffset(p)
	if sh == 0 {
		copy(p, v.r[:])
		return
	}

	// Rotate the value into store alignment.
	perm := lvsr(sh)
	var t2 [16]byte
	for i := range t2 {
		t2[i] = v.r[perm[i]&15]
	}

	// Partial stores: whole window attempted as byte, halfword, and
	// word elements at offsets chosen so their union is exactly the
	// destination window.
	var stage [32]byte
	steByte(&stage, t2, sh+0)
	steHalf(&stage, t2, sh+1)
	steWord(&stage, t2, sh+3)
	steWord(&stage, t2, sh+4)
	steWord(&stage, t2, sh+8)
	steWord(&stage, t2, sh+12)
	steHalf(&stage, t2, sh+14)
	steByte(&stage, t2, sh+15)

	copy(p, stage[sh:sh+16])
}

// alignOffset returns the buffer address modulo 16.
func alignOffset(p []byte) int {
	return int(uintptr(unsafe.Pointer(&p[0])) & 15)
}

// lvsl returns the load-alignment permutation {sh, sh+1, ..., sh+15}.
func lvsl(sh int) [16]byte {
	var m [16]byte
	for i := range m {
		m[i] = byte(sh + i)
	}
	return m
}

// lvsr returns the store-alignment permutation {16-sh, ..., 31-sh}.
func lvsr(sh int) [16]byte {
	var m [16]byte
	for i := range m {
		m[i] = byte(16 - sh + i)
	}
	return m
}

// steByte stores the byte element covering stage offset ea.
func steByte(stage *[32]byte, t2 [16]byte, ea int) {
	stage[ea] = t2[ea&15]
}

// steHalf stores the halfword element covering stage offset ea,
// aligned down to the element boundary.
func steHalf(stage *[32]byte, t2 [16]byte, ea int) {
	ea &^= 1
	k := ea & 15
	stage[ea] = t2[k]
	stage[ea+1] = t2[k+1]
}

// steWord stores the word element covering stage offset ea, aligned
// down to the element boundary.
func steWord(stage *[32]byte, t2 [16]byte, ea int) {
	ea &^= 3
	k := ea & 15
	copy(stage[ea:ea+4], t2[k:k+4])
}
