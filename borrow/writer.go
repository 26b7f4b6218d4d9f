// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package borrow

import (
	"io"

	"github.com/nbtgo/nbt/internal/tape"
)

// WriteAbsent writes the one-byte encoding of an absent document (§8, S1).
func WriteAbsent(w io.Writer) error {
	_, err := w.Write([]byte{tape.KindEnd})
	return err
}

// Write re-serializes the document directly from its tape and source
// buffer -- no intermediate tree is built. This is the symmetric counterpart
// to Read: a parsed BaseNbt writes back out without ever decoding a string
// or swapping an array's endianness, since both are stored as raw wire
// bytes already.
func (n *BaseNbt) Write(w io.Writer) error {
	bw := &sink{w: w}
	bw.putByte(tape.KindCompound)
	bw.putU16(uint16(n.nameLen))
	bw.putBytes(n.NameBytes())
	writeCompoundBody(bw, n.tp, n.buf, 0)
	return bw.err
}

// sink is a sticky-error byte writer: once a Write call fails, every
// subsequent call is a no-op so callers don't need an `if err != nil`
// after every field. (Cursor, on the read side, returns its error per
// call instead.)
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

func (s *sink) putU16(v uint16) {
	s.putBytes([]byte{byte(v >> 8), byte(v)})
}

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

func writeCompoundBody(s *sink, tp *tape.Tape, buf []byte, headerIdx int32) {
	e := tp.Entries[headerIdx]
	for i := e.NamesStart; i < e.NamesEnd; i++ {
		nr := tp.Names[i]
		child := tp.Entries[nr.Child]
		s.putByte(child.Kind)
		s.putU16(uint16(nr.Length))
		s.putBytes(buf[nr.Offset : nr.Offset+nr.Length])
		writeValue(s, tp, buf, nr.Child)
	}
	s.putByte(tape.KindEnd)
}

func writeValue(s *sink, tp *tape.Tape, buf []byte, idx int32) {
	e := tp.Entries[idx]
	switch e.Kind {
	case tape.KindByte:
		s.putByte(byte(e.Scalar))
	case tape.KindShort:
		s.putBytes([]byte{byte(e.Scalar >> 8), byte(e.Scalar)})
	case tape.KindInt:
		s.putI32(int32(e.Scalar))
	case tape.KindLong:
		s.putU64(e.Scalar)
	case tape.KindFloat:
		s.putBytes([]byte{byte(e.Scalar >> 24), byte(e.Scalar >> 16), byte(e.Scalar >> 8), byte(e.Scalar)})
	case tape.KindDouble:
		s.putU64(e.Scalar)
	case tape.KindString:
		s.putU16(uint16(e.Length))
		s.putBytes(buf[e.Offset : e.Offset+e.Length])
	case tape.KindByteArray:
		s.putI32(int32(e.Length))
		s.putBytes(buf[e.Offset : e.Offset+e.Length])
	case tape.KindIntArray:
		s.putI32(int32(e.Length))
		s.putBytes(buf[e.Offset : e.Offset+e.Length*4])
	case tape.KindLongArray:
		s.putI32(int32(e.Length))
		s.putBytes(buf[e.Offset : e.Offset+e.Length*8])
	case tape.KindList:
		s.putByte(e.ElemKind)
		s.putI32(int32(e.Length))
		child := idx + 1
		for i := int32(0); i < int32(e.Length); i++ {
			writeValue(s, tp, buf, child)
			child = nextSibling(tp, child)
		}
	case tape.KindCompound:
		writeCompoundBody(s, tp, buf, idx)
	}
}
