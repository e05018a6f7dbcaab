package vec128

// Tier is a capability threshold gating which operations exist in a
// build. Each tier presumes the previous one: crypto acceleration
// requires unaligned load/store, which requires the baseline vector
// operations.
//
// Tiers are fixed at build time via build tags:
//
//	(default)         TierCrypto: every operation compiled
//	vec128_nocrypto   TierUnaligned: AES/SHA operations absent
//	vec128_base       TierBaseline: aligned-only fast path; AES/SHA
//	                  operations absent regardless of other tags
//
// Symbols above the compiled tier do not exist at all; calling one is
// a compile error, not a runtime failure.
type Tier int

const (
	// TierBaseline provides the vector register model, permute,
	// logic/arithmetic, shifts, and aligned load/store with a
	// slow unaligned fallback.
	TierBaseline Tier = iota

	// TierUnaligned adds single-instruction unaligned load/store
	// and the fused byte-reversed load/store forms.
	TierUnaligned

	// TierCrypto adds the AES round and SHA sigma primitives.
	TierCrypto
)

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case TierBaseline:
		return "baseline"
	case TierUnaligned:
		return "unaligned"
	case TierCrypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// CurrentTier returns the capability tier this build was compiled
// with. It is a build-time constant, never a runtime probe.
func CurrentTier() Tier {
	return compiledTier
}

// HostTier re-derives the tier natively available on the running
// host, clamped to the compiled tier. On ppc64/ppc64le this consults
// the CPU feature flags, mirroring the rule that a build
// configuration may claim more than the actual target provides; on
// every other architecture all tiers are emulated in portable code,
// so the compiled tier is reported as-is.
//
// HostTier is informational only. No operation branches on it.
func HostTier() Tier {
	if hostCryptoCapable() {
		return compiledTier
	}
	if compiledTier > TierUnaligned {
		return TierUnaligned
	}
	return compiledTier
}

// BigEndian reports whether the build target stores vectors most
// significant byte first.
func BigEndian() bool {
	return bigEndian
}
