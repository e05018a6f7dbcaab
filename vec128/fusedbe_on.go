//go:build !vec128_base && !vec128_nofusedbe

package vec128

// hasFusedBE selects the single-instruction byte-reversed load/store
// forms for the big-endian-semantics memory operations. The
// vec128_nofusedbe tag models a down-level toolchain that lacks them,
// forcing the composed native-op-plus-Reverse path instead. Both
// paths are bit-identical; tests cross-check them.
const hasFusedBE = true
