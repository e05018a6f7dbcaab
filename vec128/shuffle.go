package vec128

// This file provides the byte permutation operations. Permutation is
// the one place the layer interprets vector contents, and Reverse is
// the single primitive every big-endian-semantics memory operation
// composes with on little-endian builds.

// reverseMask is the end-to-end byte reversal permutation.
var reverseMask = [16]byte{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}

// Reverse returns v with its byte order reversed end to end
// (byte 0 swaps with byte 15, byte 1 with byte 14, and so on).
// Reverse is an involution: Reverse(Reverse(v)) == v.
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	return Vec[T]{r: permute(v.r, v.r, reverseMask)}
}

// Permute returns a new vector selecting bytes from v: output byte i
// is v's byte at index mask byte i. Indices are taken modulo 16, as
// the hardware does; a mask meant for a two-source permute selects
// from v twice. The result keeps v's lane typing.
func Permute[T, M Lanes](v Vec[T], mask Vec[M]) Vec[T] {
	return Vec[T]{r: permute(v.r, v.r, mask.r)}
}

// Permute2 returns a new vector selecting bytes from the logical
// concatenation of a then b: output byte i is concatenation byte at
// index mask byte i, taken modulo 32. The result keeps a's lane
// typing; b and mask are reinterpreted as bytes.
func Permute2[T1, T2, M Lanes](a Vec[T1], b Vec[T2], mask Vec[M]) Vec[T1] {
	return Vec[T1]{r: permute(a.r, b.r, mask.r)}
}

func permute(a, b, mask [16]byte) [16]byte {
	var out [16]byte
	for i := range out {
		k := mask[i] & 31
		if k < 16 {
			out[i] = a[k]
		} else {
			out[i] = b[k-16]
		}
	}
	return out
}
