// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owned

import (
	"io"
	"math"

	"github.com/nbtgo/nbt/internal/endian"
	"github.com/nbtgo/nbt/internal/mutf8"
	"github.com/nbtgo/nbt/internal/tape"
)

// WriteAbsent writes the one-byte encoding of an absent document.
func WriteAbsent(w io.Writer) error {
	_, err := w.Write([]byte{tape.KindEnd})
	return err
}

// Write serializes the document per §4.H: root kind + u16-length-prefixed
// name + compound body, all multi-byte integers big-endian, strings
// re-encoded to their minimal MUTF-8 form.
func (n *BaseNbt) Write(w io.Writer) error {
	s := &sink{w: w}
	s.putByte(tape.KindCompound)
	s.putName(n.Name)
	writeCompoundBody(s, n.Root.Compound)
	return s.err
}

type sink struct {
	w   io.Writer
	err error
}

func (s *sink) putByte(b byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write([]byte{b})
}

func (s *sink) putBytes(b []byte) {
	if s.err != nil || len(b) == 0 {
		return
	}
	_, s.err = s.w.Write(b)
}

func (s *sink) putU16(v uint16) { s.putBytes([]byte{byte(v >> 8), byte(v)}) }

func (s *sink) putI32(v int32) {
	u := uint32(v)
	s.putBytes([]byte{byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)})
}

func (s *sink) putU64(v uint64) {
	s.putBytes([]byte{
		byte(v >> 56), byte(v >> 48), byte(v >> 40), byte(v >> 32),
		byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v),
	})
}

func (s *sink) putName(name string) {
	enc := mutf8.Encode(name)
	s.putU16(uint16(len(enc)))
	s.putBytes(enc)
}

func (s *sink) putStr(str string) {
	enc := mutf8.Encode(str)
	s.putU16(uint16(len(enc)))
	s.putBytes(enc)
}

func writeCompoundBody(s *sink, children []NamedTag) {
	for _, c := range children {
		s.putByte(c.Tag.Kind)
		s.putName(c.Name)
		writeValue(s, c.Tag)
	}
	s.putByte(tape.KindEnd)
}

func writeValue(s *sink, t Tag) {
	switch t.Kind {
	case KindByte:
		s.putByte(byte(t.Byte))
	case KindShort:
		s.putBytes([]byte{byte(uint16(t.Short) >> 8), byte(t.Short)})
	case KindInt:
		s.putI32(t.Int)
	case KindLong:
		s.putU64(uint64(t.Long))
	case KindFloat:
		u := math.Float32bits(t.Float)
		s.putBytes([]byte{byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)})
	case KindDouble:
		s.putU64(math.Float64bits(t.Double))
	case KindString:
		s.putStr(t.Str)
	case KindByteArray:
		s.putI32(int32(len(t.ByteArray)))
		s.putBytes(t.ByteArray)
	case KindIntArray:
		s.putI32(int32(len(t.IntArray)))
		buf := make([]byte, 4*len(t.IntArray))
		endian.PutInt32s(buf, t.IntArray)
		s.putBytes(buf)
	case KindLongArray:
		s.putI32(int32(len(t.LongArray)))
		buf := make([]byte, 8*len(t.LongArray))
		endian.PutInt64s(buf, t.LongArray)
		s.putBytes(buf)
	case KindList:
		s.putByte(t.ElemKind)
		s.putI32(int32(len(t.List)))
		for _, e := range t.List {
			writeValue(s, e)
		}
	case KindCompound:
		writeCompoundBody(s, t.Compound)
	}
}
