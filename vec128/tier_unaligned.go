//go:build !vec128_base && vec128_nocrypto

package vec128

const compiledTier = TierUnaligned
