//go:build ppc64 || ppc64le

package vec128

import "golang.org/x/sys/cpu"

// On POWER the tiers correspond to real silicon. A build flag can
// request the crypto tier for a host that only has the older vector
// facility, so the effective capability is re-derived from the CPU
// feature flags rather than trusted from the build configuration.
func hostCryptoCapable() bool {
	return cpu.PPC64.IsPOWER8 || cpu.PPC64.IsPOWER9
}
