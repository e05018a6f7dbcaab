package vec128

// Big-endian-semantics loads and stores. These always produce or
// consume byte order as if the host were big-endian, whatever the
// actual build target. On little-endian builds they either compose
// the native operation with Reverse, or use the fused byte-reversed
// form when the build has it; the two are bit-identical.
//
// No load or store validates offsets or lengths. The caller
// guarantees the 16-byte window lies within the buffer.

// LoadBE reads 16 bytes from src in big-endian semantics.
func LoadBE(src []byte) Vec[uint32] {
	return LoadBEAt(src, 0)
}

// LoadBEAt reads 16 bytes starting at off from src in big-endian
// semantics.
func LoadBEAt(src []byte, off int) Vec[uint32] {
	if hasFusedBE {
		return loadReversed(src, off)
	}
	if bigEndian {
		return LoadAt(src, off)
	}
	return Reinterpret[uint32](Reverse(Reinterpret[uint8](LoadAt(src, off))))
}

// StoreBE writes v's 16 bytes to dst in big-endian semantics.
func StoreBE[T Lanes](v Vec[T], dst []byte) {
	StoreBEAt(v, dst, 0)
}

// StoreBEAt writes v's 16 bytes starting at off into dst in
// big-endian semantics.
func StoreBEAt[T Lanes](v Vec[T], dst []byte, off int) {
	if hasFusedBE {
		storeReversed(v.r, dst, off)
		return
	}
	if bigEndian {
		StoreAt(v, dst, off)
		return
	}
	StoreAt(Reverse(v), dst, off)
}

// loadReversed models the fused byte-reversed load: the register
// image ends up holding src's bytes most significant first.
func loadReversed(src []byte, off int) Vec[uint32] {
	var v Vec[uint32]
	if bigEndian {
		copy(v.r[:], src[off:off+16])
		return v
	}
	for i := 0; i < 16; i++ {
		v.r[i] = src[off+15-i]
	}
	return v
}

// storeReversed models the fused byte-reversed store.
func storeReversed(r [16]byte, dst []byte, off int) {
	if bigEndian {
		copy(dst[off:off+16], r[:])
		return
	}
	for i := 0; i < 16; i++ {
		dst[off+i] = r[15-i]
	}
}
