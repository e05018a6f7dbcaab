//go:build !ppc64 && !ppc64le

package vec128

// Away from POWER every tier is emulated in portable code, so the
// compiled tier is always effective.
func hostCryptoCapable() bool {
	return true
}
