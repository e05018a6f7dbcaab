// Copyright 2026 go-vec128 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command vecinfo reports the vector capability configuration of the
// build it was compiled into.
//
// Usage:
//
//	vecinfo             # print tier and byte-order information
//	vecinfo -selftest   # additionally run quick consistency checks
//
// The reported tier is fixed at build time; rebuild with
// -tags vec128_nocrypto or -tags vec128_base to see the reduced
// configurations.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-simd/go-vec128/vec128"
)

var (
	selftest = flag.Bool("selftest", false, "Run quick consistency checks on the always-present operations")
	quiet    = flag.Bool("q", false, "Suppress the configuration report (useful with -selftest)")
)

func main() {
	flag.Parse()

	if !*quiet {
		order := "little-endian"
		if vec128.BigEndian() {
			order = "big-endian"
		}
		fmt.Printf("target:        %s/%s (%s)\n", runtime.GOOS, runtime.GOARCH, order)
		fmt.Printf("compiled tier: %s\n", vec128.CurrentTier())
		fmt.Printf("host tier:     %s\n", vec128.HostTier())
	}

	if *selftest {
		if err := runSelftest(); err != nil {
			fmt.Fprintf(os.Stderr, "selftest: FAIL: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("selftest: ok")
	}
}

// runSelftest exercises the operations present at every tier.
func runSelftest() error {
	src := []byte("0123456789abcdefghijklmnopqrstuv")

	// Load/store round trip at every offset.
	for off := 0; off <= 16; off++ {
		v := vec128.LoadAt(src, off)
		out := make([]byte, 48)
		vec128.StoreAt(v, out, off)
		if !bytes.Equal(out[off:off+16], src[off:off+16]) {
			return fmt.Errorf("load/store round trip failed at offset %d", off)
		}
	}

	// Reverse is an involution.
	v := vec128.Load(src)
	if vec128.Reverse(vec128.Reverse(v)).Bytes() != v.Bytes() {
		return fmt.Errorf("reverse involution failed")
	}

	// Two-vector shift window.
	a := vec128.Load(src[:16])
	b := vec128.Load(src[16:])
	got := make([]byte, 16)
	vec128.Store(vec128.ShiftLeft2(a, b, 4), got)
	if !bytes.Equal(got, src[4:20]) {
		return fmt.Errorf("shift window: got %q, want %q", got, src[4:20])
	}

	// Big-endian load against its reverse composition.
	be := vec128.LoadBE(src[:16])
	composed := vec128.Load(src[:16])
	if !vec128.BigEndian() {
		composed = vec128.Reverse(composed)
	}
	if be.Bytes() != composed.Bytes() {
		return fmt.Errorf("big-endian load does not match reverse composition")
	}

	// Xor self-inverse.
	z := vec128.Xor(vec128.Xor(a, b), b)
	if z.Bytes() != a.Bytes() {
		return fmt.Errorf("xor self-inverse failed")
	}

	return nil
}
