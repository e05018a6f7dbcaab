package vec128_test

import (
	"fmt"

	"github.com/go-simd/go-vec128/vec128"
)

func ExampleXor() {
	block := []byte("ABCDEFGHIJKLMNOP")
	key := make([]byte, 16)
	for i := range key {
		key[i] = 0x20
	}

	a := vec128.LoadBE(block)
	b := vec128.LoadBE(key)

	out := make([]byte, 16)
	vec128.StoreBE(vec128.Xor(a, b), out)
	fmt.Printf("%s\n", out)
	// Output: abcdefghijklmnop
}

func ExampleReverse() {
	v := vec128.LoadBE([]byte("0123456789abcdef"))
	out := make([]byte, 16)
	vec128.StoreBE(vec128.Reverse(v), out)
	fmt.Printf("%s\n", out)
	// Output: fedcba9876543210
}

func ExampleShiftLeft2() {
	a := vec128.Load([]byte("0123456789abcdef"))
	b := vec128.Load([]byte("ghijklmnopqrstuv"))
	out := make([]byte, 16)
	vec128.Store(vec128.ShiftLeft2(a, b, 4), out)
	fmt.Printf("%s\n", out)
	// Output: 456789abcdefghij
}
