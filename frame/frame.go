// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame implements §4.I's magic-byte sniffing and delegates actual
// decompression to github.com/klauspost/compress, the library
// other_examples/tmpim-anvil uses for exactly this purpose (gzip- and
// zlib-framed NBT region chunks). The core codec in borrow/owned never
// sees compressed bytes; this package's job is entirely to turn whatever
// framing the caller handed it into a plain buffer before parsing starts.
package frame

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Format identifies the framing detected on a buffer's first bytes.
type Format int

const (
	Raw Format = iota
	Gzip
	Zlib
)

func (f Format) String() string {
	switch f {
	case Gzip:
		return "gzip"
	case Zlib:
		return "zlib"
	default:
		return "raw"
	}
}

// Detect peeks at the first two bytes of b and reports the framing, per
// §4.I: 1F 8B is gzip's magic, 78 01/78 9C/78 DA are zlib's three standard
// compression-level headers, anything else is treated as raw NBT.
func Detect(b []byte) Format {
	if len(b) < 2 {
		return Raw
	}
	if b[0] == 0x1F && b[1] == 0x8B {
		return Gzip
	}
	if b[0] == 0x78 && (b[1] == 0x01 || b[1] == 0x9C || b[1] == 0xDA) {
		return Zlib
	}
	return Raw
}

// Decompress detects b's framing and returns the decompressed payload,
// or b itself (unmodified) if it's raw.
func Decompress(b []byte) ([]byte, error) {
	switch Detect(b) {
	case Gzip:
		zr, err := gzip.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case Zlib:
		zr, err := zlib.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	default:
		return b, nil
	}
}
