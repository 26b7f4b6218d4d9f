// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package owned implements the detached half of the codec: a tagged-union
// tree that materializes every value (MUTF-8 strings decoded eagerly,
// arrays copied and byte-swapped) and no longer references the source
// buffer once built.
package owned

import "github.com/nbtgo/nbt/internal/tape"

// Wire kinds, re-exported from the tape package so callers never need to
// import internal/tape just to switch on Tag.Kind.
const (
	KindEnd       = tape.KindEnd
	KindByte      = tape.KindByte
	KindShort     = tape.KindShort
	KindInt       = tape.KindInt
	KindLong      = tape.KindLong
	KindFloat     = tape.KindFloat
	KindDouble    = tape.KindDouble
	KindByteArray = tape.KindByteArray
	KindString    = tape.KindString
	KindList      = tape.KindList
	KindCompound  = tape.KindCompound
	KindIntArray  = tape.KindIntArray
	KindLongArray = tape.KindLongArray
)

// Tag is one node of an owned tree: a tagged union keyed by Kind, modeled
// on landru27-nbt's NBT{Type, Name, Data} but with a typed field per
// variant instead of an interface{} payload, since the set of wire kinds
// is closed and known at compile time -- a type switch over an interface{}
// would just be re-deriving the Kind discriminant we already have.
type Tag struct {
	Kind byte

	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64

	Str string // KindString

	ByteArray []byte
	IntArray  []int32
	LongArray []int64

	ElemKind byte  // meaningful only when Kind == KindList
	List     []Tag // KindList

	Compound []NamedTag // KindCompound, insertion order preserved
}

// NamedTag is one (name, value) child of a compound. Duplicate names are
// allowed; lookup is a linear scan in insertion order, matching the
// borrow navigator's policy (§4.F, §4.G: "first match wins").
type NamedTag struct {
	Name string
	Tag  Tag
}

// Get returns the first child named name, in insertion order.
func (t Tag) Get(name string) (Tag, bool) {
	for _, c := range t.Compound {
		if c.Name == name {
			return c.Tag, true
		}
	}
	return Tag{}, false
}
