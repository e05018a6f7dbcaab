// Package vec128 provides portable 128-bit vector primitives for
// block-cipher and hash implementations.
//
// It follows the design of the PowerPC AltiVec/VSX crypto layers: one
// vocabulary of operations (load, store, shift, permute, AES round,
// SHA sigma) whose results are bit-identical regardless of host byte
// order or which capability tier the build selected. Capability tiers
// are resolved entirely at build time via build tags; there is no
// runtime dispatch on any operation.
//
// Basic usage:
//
//	import "github.com/go-simd/go-vec128/vec128"
//
//	// Load two blocks in big-endian semantics
//	a := vec128.LoadBE(block)
//	b := vec128.LoadBE(key)
//
//	// Combine and store
//	vec128.StoreBE(vec128.Xor(a, b), out)
package vec128

import "unsafe"

// Lanes is a constraint for the lane widths a 128-bit vector can carry.
type Lanes interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Vec is an opaque 128-bit vector value typed by lane width. The bit
// pattern is never interpreted except by the explicit reverse/permute
// operations; lane typing only determines arithmetic granularity.
//
// Vec instances should not be created directly; use Load, LoadBE, or
// an arithmetic operation instead. Values are pure: no operation
// mutates its arguments.
type Vec[T Lanes] struct {
	// r is the register image: the 16 bytes a native-order store
	// would write for this value.
	r [16]byte
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return 16 / laneSize[T]()
}

// Bytes returns the register image as a native-order store would
// write it. This is primarily for testing and debugging.
func (v Vec[T]) Bytes() [16]byte {
	return v.r
}

// Reinterpret returns v with its 128 bits unchanged but typed with
// lane width U. The cast is free and never fails; callers are
// responsible for tracking whether the reinterpretation is
// numerically meaningful.
func Reinterpret[U, T Lanes](v Vec[T]) Vec[U] {
	return Vec[U]{r: v.r}
}

// laneSize returns the width of one lane of type T in bytes.
func laneSize[T Lanes]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}
