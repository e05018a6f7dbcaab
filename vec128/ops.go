package vec128

// This file provides the logical, arithmetic, and block-shift
// operations. Every operation returns a vector typed like its first
// argument; other arguments are implicitly reinterpreted to match.
// Callers track the true lane semantics themselves.

// And returns the bitwise AND of a and b, typed like a.
func And[T1, T2 Lanes](a Vec[T1], b Vec[T2]) Vec[T1] {
	var out Vec[T1]
	for i := range out.r {
		out.r[i] = a.r[i] & b.r[i]
	}
	return out
}

// Xor returns the bitwise XOR of a and b, typed like a.
func Xor[T1, T2 Lanes](a Vec[T1], b Vec[T2]) Vec[T1] {
	var out Vec[T1]
	for i := range out.r {
		out.r[i] = a.r[i] ^ b.r[i]
	}
	return out
}

// Add returns the lane-wise modular sum of a and b. The lane width is
// whatever a's type implies; b is reinterpreted to that width.
func Add[T1, T2 Lanes](a Vec[T1], b Vec[T2]) Vec[T1] {
	var out Vec[T1]
	switch laneSize[T1]() {
	case 1:
		for i := 0; i < 16; i++ {
			out.r[i] = a.r[i] + b.r[i]
		}
	case 2:
		for i := 0; i < 16; i += 2 {
			nativeOrder.PutUint16(out.r[i:], nativeOrder.Uint16(a.r[i:])+nativeOrder.Uint16(b.r[i:]))
		}
	case 4:
		for i := 0; i < 16; i += 4 {
			nativeOrder.PutUint32(out.r[i:], nativeOrder.Uint32(a.r[i:])+nativeOrder.Uint32(b.r[i:]))
		}
	case 8:
		for i := 0; i < 16; i += 8 {
			nativeOrder.PutUint64(out.r[i:], nativeOrder.Uint64(a.r[i:])+nativeOrder.Uint64(b.r[i:]))
		}
	}
	return out
}

// ShiftLeft2 concatenates a then b and returns the 16-byte window
// shifted left by n bytes (n is masked to [0,15]).
//
// The contract is always big-endian style: callers reason about the
// concatenation as if on a big-endian host, and the same call yields
// the same logical result on either byte order. On little-endian
// builds this is achieved by swapping the operands and complementing
// the shift amount before issuing the underlying double-shift.
func ShiftLeft2[T1, T2 Lanes](a Vec[T1], b Vec[T2], n int) Vec[T1] {
	n &= 15
	if bigEndian {
		return Vec[T1]{r: sldBE(a.r, b.r, n)}
	}
	return Vec[T1]{r: sldLE(b.r, a.r, 16-n)}
}

// ShiftLeft returns v shifted left by n bytes with zeros shifted in,
// as ShiftLeft2 with an implicit all-zero second vector.
func ShiftLeft[T Lanes](v Vec[T], n int) Vec[T] {
	n &= 15
	zero := Xor(v, v)
	if bigEndian {
		return Vec[T]{r: sldBE(v.r, zero.r, n)}
	}
	return Vec[T]{r: sldLE(zero.r, v.r, 16-n)}
}

// ShiftRight2 concatenates a then b and returns the 16-byte window
// shifted right by n bytes (n is masked to [0,15]): the window ends n
// bytes before the end of the concatenation. The big-endian calling
// contract of ShiftLeft2 applies.
func ShiftRight2[T1, T2 Lanes](a Vec[T1], b Vec[T2], n int) Vec[T1] {
	n &= 15
	if bigEndian {
		return Vec[T1]{r: sldBE(a.r, b.r, 16-n)}
	}
	return Vec[T1]{r: sldLE(b.r, a.r, n)}
}

// ShiftRight returns v shifted right by n bytes with zeros shifted
// in, as ShiftRight2 with an implicit all-zero first vector.
func ShiftRight[T Lanes](v Vec[T], n int) Vec[T] {
	n &= 15
	zero := Xor(v, v)
	if bigEndian {
		return Vec[T]{r: sldBE(zero.r, v.r, 16-n)}
	}
	return Vec[T]{r: sldLE(v.r, zero.r, n)}
}

// sldBE models the shift-left-double instruction on a big-endian
// register image: the n-byte window into x then y. n is in [0,16].
func sldBE(x, y [16]byte, n int) [16]byte {
	var out [16]byte
	for i := range out {
		k := i + n
		if k < 16 {
			out[i] = x[k]
		} else {
			out[i] = y[k-16]
		}
	}
	return out
}

// sldLE models the same instruction on a little-endian register
// image, where the image holds the register bytes in reversed order:
// the window lands at 16-n from the concatenation of y then x.
// n is in [0,16].
func sldLE(x, y [16]byte, n int) [16]byte {
	var out [16]byte
	for i := range out {
		k := 16 - n + i
		if k < 16 {
			out[i] = y[k]
		} else {
			out[i] = x[k-16]
		}
	}
	return out
}
