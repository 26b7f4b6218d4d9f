// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tape holds the flat, fixed-stride representation the borrow
// parser builds a document into: one Entry per tag, plus a side array of
// name references for compound children. Navigation over a Tape never
// walks a pointer chain — every composite knows the tape index of its
// own terminator, so skipping a subtree the caller isn't interested in is
// an index comparison, not a recursive walk.
package tape

// Wire tag kinds, fixed by the NBT format. KindEnd doubles as the tape's
// internal terminator marker: a compound or list frame's closing entry
// always carries KindEnd, matching the wire's own use of tag 0 to close a
// compound (lists don't have a wire terminator, but the parser still
// emits one into the tape so both composite kinds skip identically).
const (
	KindEnd byte = iota
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindByteArray
	KindString
	KindList
	KindCompound
	KindIntArray
	KindLongArray
)

// KindName renders a wire kind for diagnostics and SNBT-ish dumps.
func KindName(k byte) string {
	switch k {
	case KindEnd:
		return "End"
	case KindByte:
		return "Byte"
	case KindShort:
		return "Short"
	case KindInt:
		return "Int"
	case KindLong:
		return "Long"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindByteArray:
		return "ByteArray"
	case KindString:
		return "String"
	case KindList:
		return "List"
	case KindCompound:
		return "Compound"
	case KindIntArray:
		return "IntArray"
	case KindLongArray:
		return "LongArray"
	default:
		return "Unknown"
	}
}

// Entry is one tape record. Which fields are meaningful depends on Kind:
//
//   - KindByte..KindDouble: Scalar holds the value, widened to 64 bits
//     (floats keep their IEEE bit pattern in the low 32/64 bits).
//   - KindString, KindByteArray, KindIntArray, KindLongArray: Offset and
//     Length describe a borrowed slice of the source buffer (Length is a
//     byte count for String/ByteArray, an element count for the int/long
//     arrays).
//   - KindList: ElemKind is the element kind, Length is the element
//     count, and End is the tape index of this list's terminator entry.
//   - KindCompound: End is the tape index of this compound's terminator
//     entry, and NamesStart/NamesEnd bound this compound's slice of the
//     sibling Tape's Names array.
//   - KindEnd: a terminator; carries no payload.
//
// A real cache-optimized tape would bit-pack this into 16 bytes; Go has
// no ergonomic equivalent of a #[repr(packed)] union, and reaching for
// unsafe to force one here would buy cache locality we have no way to
// measure in this exercise while costing real readability, so Entry stays
// a plain struct of typed fields. It is still fixed-width and allocation-
// free per tag, which is the property that actually matters for parsing
// without a heap allocation per node.
type Entry struct {
	Kind     byte
	ElemKind byte
	Scalar   uint64
	Offset   uint32
	Length   uint32
	End      int32
	NamesStart int32
	NamesEnd   int32
}

// NameRef is one entry in a compound's name index: the raw (undecoded)
// MUTF-8 name bytes in the source buffer, and the tape index of the
// corresponding child entry.
type NameRef struct {
	Offset, Length uint32
	Child          int32
}

// Tape is the parsed document: a flat entry array plus the side array of
// compound name references that Entry.NamesStart/NamesEnd slice into.
type Tape struct {
	Entries []Entry
	Names   []NameRef
}

// New allocates a Tape sized for a source buffer of length bufLen. The
// capacity hint follows the parser's empirical lower bound of one tag per
// two bytes of input, which avoids reallocation for the overwhelming
// majority of real-world documents without over-committing memory for
// small ones.
func New(bufLen int) *Tape {
	hint := bufLen / 2
	if hint < 16 {
		hint = 16
	}
	return &Tape{
		Entries: make([]Entry, 0, hint),
		Names:   make([]NameRef, 0, hint/2),
	}
}
