//go:build 386 || amd64 || arm || arm64 || loong64 || mipsle || mips64le || ppc64le || riscv64 || wasm

package vec128

import "encoding/binary"

// bigEndian reports the byte order of the build target. It is a
// compile-time constant so dead branches are eliminated.
const bigEndian = false

// nativeOrder is the byte order lane arithmetic reads lanes with.
var nativeOrder = binary.LittleEndian
