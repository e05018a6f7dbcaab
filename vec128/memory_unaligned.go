//go:build !vec128_base

package vec128

// Native-order loads and stores under the extended load/store tier:
// one direct access regardless of alignment.

// Load reads 16 bytes from src in native byte order. src need not be
// aligned.
func Load(src []byte) Vec[uint32] {
	return LoadAt(src, 0)
}

// LoadAt reads 16 bytes starting at off from src in native byte
// order. The address need not be aligned.
func LoadAt(src []byte, off int) Vec[uint32] {
	var v Vec[uint32]
	copy(v.r[:], src[off:off+16])
	return v
}

// Store writes v's 16 bytes to dst in native byte order. dst need not
// be aligned.
//
// Native stores never route through the big-endian path; keeping the
// fast path free of Reverse is the point of having both forms.
func Store[T Lanes](v Vec[T], dst []byte) {
	StoreAt(v, dst, 0)
}

// StoreAt writes v's 16 bytes starting at off into dst in native byte
// order. The address need not be aligned.
func StoreAt[T Lanes](v Vec[T], dst []byte, off int) {
	copy(dst[off:off+16], v.r[:])
}
