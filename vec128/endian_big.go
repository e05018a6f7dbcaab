//go:build mips || mips64 || ppc64 || s390x

package vec128

import "encoding/binary"

// bigEndian reports the byte order of the build target. It is a
// compile-time constant so dead branches are eliminated.
const bigEndian = true

// nativeOrder is the byte order lane arithmetic reads lanes with.
var nativeOrder = binary.BigEndian
