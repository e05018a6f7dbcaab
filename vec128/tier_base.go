//go:build vec128_base

package vec128

// The baseline tag wins over everything else: without the extended
// load/store tier there is no crypto tier either.
const compiledTier = TierBaseline
