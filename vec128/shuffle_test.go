package vec128

import (
	"bytes"
	"testing"
)

func seqVec() Vec[uint8] {
	var b [16]byte
	for i := range b {
		b[i] = byte(i * 7)
	}
	return Reinterpret[uint8](Load(b[:]))
}

func maskVec(idx ...byte) Vec[uint8] {
	var b [16]byte
	copy(b[:], idx)
	return Reinterpret[uint8](Load(b[:]))
}

func TestReverseInvolution(t *testing.T) {
	tests := []struct {
		name string
		fill func(i int) byte
	}{
		{name: "sequential", fill: func(i int) byte { return byte(i) }},
		{name: "zero", fill: func(i int) byte { return 0 }},
		{name: "pattern", fill: func(i int) byte { return byte(i*37 + 11) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b [16]byte
			for i := range b {
				b[i] = tt.fill(i)
			}
			v := Load(b[:])
			rr := Reverse(Reverse(v))
			if rr.Bytes() != v.Bytes() {
				t.Errorf("Reverse(Reverse(v)) = %x, want %x", rr.Bytes(), v.Bytes())
			}
		})
	}
}

func TestReverseSwapsEnds(t *testing.T) {
	v := seqVec()
	r := Reverse(v)
	in := v.Bytes()
	out := r.Bytes()
	for i := 0; i < 16; i++ {
		if out[i] != in[15-i] {
			t.Fatalf("byte %d = %#x, want %#x", i, out[i], in[15-i])
		}
	}
}

func TestPermuteReverseMaskEqualsReverse(t *testing.T) {
	v := seqVec()
	mask := maskVec(15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0)
	got := Permute(v, mask)
	want := Reverse(v)
	if got.Bytes() != want.Bytes() {
		t.Errorf("Permute(v, {15..0}) = %x, want %x", got.Bytes(), want.Bytes())
	}
}

func TestPermute2IdentitySelection(t *testing.T) {
	a := seqVec()
	b := Reverse(a)

	lo := maskVec(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	if got := Permute2(a, b, lo); got.Bytes() != a.Bytes() {
		t.Errorf("mask [0..15] selected %x, want first source %x", got.Bytes(), a.Bytes())
	}

	hi := maskVec(16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31)
	if got := Permute2(a, b, hi); got.Bytes() != b.Bytes() {
		t.Errorf("mask [16..31] selected %x, want second source %x", got.Bytes(), b.Bytes())
	}
}

func TestPermuteIndicesWrap(t *testing.T) {
	v := seqVec()
	// Indices are taken modulo the source width, as the hardware does.
	wrapped := maskVec(32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47)
	plain := maskVec(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	if got, want := Permute(v, wrapped), Permute(v, plain); got.Bytes() != want.Bytes() {
		t.Errorf("wrapped mask = %x, want %x", got.Bytes(), want.Bytes())
	}
}

func TestPermuteKeepsLaneTyping(t *testing.T) {
	var b [16]byte
	for i := range b {
		b[i] = byte(i)
	}
	v := Load(b[:]) // Vec[uint32]
	mask := maskVec(3, 2, 1, 0, 7, 6, 5, 4, 11, 10, 9, 8, 15, 14, 13, 12)
	got := Permute(v, mask)
	if got.NumLanes() != 4 {
		t.Fatalf("NumLanes = %d, want 4", got.NumLanes())
	}
	want := []byte{3, 2, 1, 0, 7, 6, 5, 4, 11, 10, 9, 8, 15, 14, 13, 12}
	g := got.Bytes()
	if !bytes.Equal(g[:], want) {
		t.Errorf("Permute = %x, want %x", g, want)
	}
}
