// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package endian converts between the big-endian wire form of NBT's
// IntArray/LongArray payloads and native int32/int64 slices. The borrow
// parser records these payloads as raw borrowed byte slices; conversion
// only happens when a caller actually asks for the typed array, and it
// happens into a freshly allocated, owned slice since the source bytes
// may be unaligned.
package endian

// Int32s decodes n big-endian int32 values from src into a newly
// allocated slice. src must be exactly 4*n bytes; the loop is a fixed
// stride over a byte slice with no data-dependent branch, which is what
// lets the compiler auto-vectorize it.
func Int32s(src []byte) []int32 {
	n := len(src) / 4
	out := make([]int32, n)
	for i := 0; i < n; i++ {
		o := i * 4
		out[i] = int32(uint32(src[o])<<24 | uint32(src[o+1])<<16 | uint32(src[o+2])<<8 | uint32(src[o+3]))
	}
	return out
}

// Int64s decodes n big-endian int64 values from src into a newly
// allocated slice. src must be exactly 8*n bytes.
func Int64s(src []byte) []int64 {
	n := len(src) / 8
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		o := i * 8
		out[i] = int64(
			uint64(src[o])<<56 | uint64(src[o+1])<<48 | uint64(src[o+2])<<40 | uint64(src[o+3])<<32 |
				uint64(src[o+4])<<24 | uint64(src[o+5])<<16 | uint64(src[o+6])<<8 | uint64(src[o+7]))
	}
	return out
}

// PutInt32s encodes src as big-endian bytes into dst, which must be
// exactly 4*len(src) bytes long. It is the inverse of Int32s, used by the
// writer.
func PutInt32s(dst []byte, src []int32) {
	for i, v := range src {
		o := i * 4
		u := uint32(v)
		dst[o] = byte(u >> 24)
		dst[o+1] = byte(u >> 16)
		dst[o+2] = byte(u >> 8)
		dst[o+3] = byte(u)
	}
}

// PutInt64s encodes src as big-endian bytes into dst, which must be
// exactly 8*len(src) bytes long. It is the inverse of Int64s, used by the
// writer.
func PutInt64s(dst []byte, src []int64) {
	for i, v := range src {
		o := i * 8
		u := uint64(v)
		dst[o] = byte(u >> 56)
		dst[o+1] = byte(u >> 48)
		dst[o+2] = byte(u >> 40)
		dst[o+3] = byte(u >> 32)
		dst[o+4] = byte(u >> 24)
		dst[o+5] = byte(u >> 16)
		dst[o+6] = byte(u >> 8)
		dst[o+7] = byte(u)
	}
}
