// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package borrow

import (
	"bytes"
	"math"

	"github.com/nbtgo/nbt/internal/endian"
	"github.com/nbtgo/nbt/internal/mutf8"
	"github.com/nbtgo/nbt/internal/tape"
)

func decodeName(raw []byte) (string, error) {
	return mutf8.Decode(raw)
}

// Compound is a view over one compound entry in a tape: its name index
// range, the source buffer, and the tape it belongs to.
type Compound struct {
	tp  *tape.Tape
	buf []byte
	idx int32
}

func (c Compound) entry() tape.Entry { return c.tp.Entries[c.idx] }

// Len returns the number of direct children.
func (c Compound) Len() int {
	e := c.entry()
	return int(e.NamesEnd - e.NamesStart)
}

// Get performs the linear, raw-byte scan described in §3's name index: the
// query name is re-encoded to MUTF-8 once (ASCII names round-trip
// byte-for-byte) and compared against each child's undecoded name bytes, so
// a miss costs no UTF-8 decode at all.
func (c Compound) Get(name string) (TagView, bool) {
	want := mutf8.Encode(name)
	e := c.entry()
	for i := e.NamesStart; i < e.NamesEnd; i++ {
		nr := c.tp.Names[i]
		if bytes.Equal(c.buf[nr.Offset:nr.Offset+nr.Length], want) {
			return TagView{tp: c.tp, buf: c.buf, idx: nr.Child}, true
		}
	}
	return TagView{}, false
}

// NameAt returns the raw (undecoded) name bytes of the i-th child, in
// insertion order.
func (c Compound) NameAt(i int) []byte {
	nr := c.tp.Names[c.entry().NamesStart+int32(i)]
	return c.buf[nr.Offset : nr.Offset+nr.Length]
}

// TagAt returns the i-th child's view, in insertion order.
func (c Compound) TagAt(i int) TagView {
	nr := c.tp.Names[c.entry().NamesStart+int32(i)]
	return TagView{tp: c.tp, buf: c.buf, idx: nr.Child}
}

func (c Compound) typed(name string, kind byte) (TagView, bool) {
	v, ok := c.Get(name)
	if !ok || v.Kind() != kind {
		return TagView{}, false
	}
	return v, true
}

func (c Compound) Byte(name string) (int8, bool) {
	v, ok := c.typed(name, tape.KindByte)
	if !ok {
		return 0, false
	}
	return v.Byte()
}

func (c Compound) Short(name string) (int16, bool) {
	v, ok := c.typed(name, tape.KindShort)
	if !ok {
		return 0, false
	}
	return v.Short()
}

func (c Compound) Int(name string) (int32, bool) {
	v, ok := c.typed(name, tape.KindInt)
	if !ok {
		return 0, false
	}
	return v.Int()
}

func (c Compound) Long(name string) (int64, bool) {
	v, ok := c.typed(name, tape.KindLong)
	if !ok {
		return 0, false
	}
	return v.Long()
}

func (c Compound) Float(name string) (float32, bool) {
	v, ok := c.typed(name, tape.KindFloat)
	if !ok {
		return 0, false
	}
	return v.Float()
}

func (c Compound) Double(name string) (float64, bool) {
	v, ok := c.typed(name, tape.KindDouble)
	if !ok {
		return 0, false
	}
	return v.Double()
}

// String returns the lazily MUTF-8-decoded value, or ok==false if the name
// is missing, the kind mismatches, or the bytes are not valid MUTF-8. Use
// TagView.String via Get if distinguishing a decode failure matters.
func (c Compound) String(name string) (string, bool) {
	v, ok := c.typed(name, tape.KindString)
	if !ok {
		return "", false
	}
	s, err := v.String()
	if err != nil {
		return "", false
	}
	return s, true
}

func (c Compound) ByteArray(name string) ([]byte, bool) {
	v, ok := c.typed(name, tape.KindByteArray)
	if !ok {
		return nil, false
	}
	return v.ByteArray()
}

func (c Compound) IntArray(name string) ([]int32, bool) {
	v, ok := c.typed(name, tape.KindIntArray)
	if !ok {
		return nil, false
	}
	return v.IntArray()
}

func (c Compound) LongArray(name string) ([]int64, bool) {
	v, ok := c.typed(name, tape.KindLongArray)
	if !ok {
		return nil, false
	}
	return v.LongArray()
}

func (c Compound) List(name string) (List, bool) {
	v, ok := c.typed(name, tape.KindList)
	if !ok {
		return List{}, false
	}
	return v.List()
}

func (c Compound) Compound(name string) (Compound, bool) {
	v, ok := c.typed(name, tape.KindCompound)
	if !ok {
		return Compound{}, false
	}
	return v.Compound()
}

// List is a view over one list entry. Indexed access is O(1) for
// fixed-width element kinds (every scalar, array and string kind occupies
// exactly one tape entry) and an O(n) sibling walk otherwise, since a
// compound or list element's own subtree width varies per element (§4.F,
// §9 "List of List / List of Compound").
type List struct {
	tp  *tape.Tape
	buf []byte
	idx int32
}

func (l List) entry() tape.Entry { return l.tp.Entries[l.idx] }

// Len returns the element count.
func (l List) Len() int { return int(l.entry().Length) }

// ElemKind returns the wire kind shared by every element.
func (l List) ElemKind() byte { return l.entry().ElemKind }

func fixedWidth(kind byte) bool {
	return kind != tape.KindList && kind != tape.KindCompound
}

// nextSibling returns the tape index immediately following the subtree
// rooted at idx, whether idx is a leaf (stride 1) or a composite (jump past
// its terminator).
func nextSibling(tp *tape.Tape, idx int32) int32 {
	e := tp.Entries[idx]
	if e.Kind == tape.KindCompound || e.Kind == tape.KindList {
		return e.End + 1
	}
	return idx + 1
}

// Get returns the i-th element's view.
func (l List) Get(i int) (TagView, bool) {
	e := l.entry()
	if i < 0 || i >= int(e.Length) {
		return TagView{}, false
	}
	if fixedWidth(e.ElemKind) {
		return TagView{tp: l.tp, buf: l.buf, idx: l.idx + 1 + int32(i)}, true
	}
	idx := l.idx + 1
	for j := 0; j < i; j++ {
		idx = nextSibling(l.tp, idx)
	}
	return TagView{tp: l.tp, buf: l.buf, idx: idx}, true
}

func typedList[T any](l List, extract func(TagView) (T, bool)) ([]T, bool) {
	n := l.Len()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		v, ok := l.Get(i)
		if !ok {
			return nil, false
		}
		val, ok := extract(v)
		if !ok {
			return nil, false
		}
		out[i] = val
	}
	return out, true
}

func (l List) Bytes() ([]int8, bool)        { return typedList(l, TagView.Byte) }
func (l List) Shorts() ([]int16, bool)      { return typedList(l, TagView.Short) }
func (l List) Ints() ([]int32, bool)        { return typedList(l, TagView.Int) }
func (l List) Longs() ([]int64, bool)       { return typedList(l, TagView.Long) }
func (l List) Floats() ([]float32, bool)    { return typedList(l, TagView.Float) }
func (l List) Doubles() ([]float64, bool)   { return typedList(l, TagView.Double) }
func (l List) Strings() ([]string, bool)    { return typedList(l, TagView.Str) }
func (l List) ByteArrays() ([][]byte, bool) { return typedList(l, TagView.ByteArray) }
func (l List) IntArrays() ([][]int32, bool) { return typedList(l, TagView.IntArray) }
func (l List) LongArrays() ([][]int64, bool) {
	return typedList(l, TagView.LongArray)
}
func (l List) Lists() ([]List, bool)         { return typedList(l, TagView.List) }
func (l List) Compounds() ([]Compound, bool) { return typedList(l, TagView.Compound) }

// TagView is a single tagged value inside a tape, either a direct child of
// a compound or an element of a list.
type TagView struct {
	tp  *tape.Tape
	buf []byte
	idx int32
}

func (v TagView) entry() tape.Entry { return v.tp.Entries[v.idx] }

// Kind returns the wire kind of the viewed value.
func (v TagView) Kind() byte { return v.entry().Kind }

func (v TagView) Byte() (int8, bool) {
	e := v.entry()
	if e.Kind != tape.KindByte {
		return 0, false
	}
	return int8(int64(e.Scalar)), true
}

func (v TagView) Short() (int16, bool) {
	e := v.entry()
	if e.Kind != tape.KindShort {
		return 0, false
	}
	return int16(int64(e.Scalar)), true
}

func (v TagView) Int() (int32, bool) {
	e := v.entry()
	if e.Kind != tape.KindInt {
		return 0, false
	}
	return int32(int64(e.Scalar)), true
}

func (v TagView) Long() (int64, bool) {
	e := v.entry()
	if e.Kind != tape.KindLong {
		return 0, false
	}
	return int64(e.Scalar), true
}

func (v TagView) Float() (float32, bool) {
	e := v.entry()
	if e.Kind != tape.KindFloat {
		return 0, false
	}
	return math.Float32frombits(uint32(e.Scalar)), true
}

func (v TagView) Double() (float64, bool) {
	e := v.entry()
	if e.Kind != tape.KindDouble {
		return 0, false
	}
	return math.Float64frombits(e.Scalar), true
}

// Str is the Option-style accessor: it reports ok==false for both "wrong
// kind" and "invalid MUTF-8", matching the rest of the typed-accessor
// family. Use String to distinguish the latter.
func (v TagView) Str() (string, bool) {
	s, err := v.String()
	return s, err == nil
}

var errWrongKind = &wrongKindError{}

type wrongKindError struct{}

func (*wrongKindError) Error() string { return "nbt: wrong tag kind" }

// String decodes the MUTF-8 payload, returning the decode error (if any)
// rather than folding it into a bool, since this is the one accessor where
// a value can be present, correctly typed, and still fail.
func (v TagView) String() (string, error) {
	e := v.entry()
	if e.Kind != tape.KindString {
		return "", errWrongKind
	}
	return mutf8.Decode(v.buf[e.Offset : e.Offset+e.Length])
}

// ByteArray returns the raw payload bytes, a zero-copy view into the
// source buffer: no endianness conversion is needed for single-byte
// elements.
func (v TagView) ByteArray() ([]byte, bool) {
	e := v.entry()
	if e.Kind != tape.KindByteArray {
		return nil, false
	}
	return v.buf[e.Offset : e.Offset+e.Length], true
}

// IntArray performs the access-time endianness swap into a freshly
// allocated, owned slice (§4.C).
func (v TagView) IntArray() ([]int32, bool) {
	e := v.entry()
	if e.Kind != tape.KindIntArray {
		return nil, false
	}
	return endian.Int32s(v.buf[e.Offset : e.Offset+e.Length*4]), true
}

// LongArray performs the access-time endianness swap into a freshly
// allocated, owned slice (§4.C).
func (v TagView) LongArray() ([]int64, bool) {
	e := v.entry()
	if e.Kind != tape.KindLongArray {
		return nil, false
	}
	return endian.Int64s(v.buf[e.Offset : e.Offset+e.Length*8]), true
}

func (v TagView) List() (List, bool) {
	e := v.entry()
	if e.Kind != tape.KindList {
		return List{}, false
	}
	return List{tp: v.tp, buf: v.buf, idx: v.idx}, true
}

func (v TagView) Compound() (Compound, bool) {
	e := v.entry()
	if e.Kind != tape.KindCompound {
		return Compound{}, false
	}
	return Compound{tp: v.tp, buf: v.buf, idx: v.idx}, true
}
