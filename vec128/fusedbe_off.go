//go:build vec128_base || vec128_nofusedbe

package vec128

const hasFusedBE = false
