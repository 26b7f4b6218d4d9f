// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owned

import (
	"github.com/nbtgo/nbt"
	"github.com/nbtgo/nbt/borrow"
	"github.com/nbtgo/nbt/internal/tape"
)

// BaseNbt is a fully materialized document: the root compound's decoded
// name plus its owned tag tree.
type BaseNbt struct {
	Name string
	Root Tag
}

type options struct {
	maxDepth int
}

// ReadOption configures Read, mirroring borrow.ReadOption.
type ReadOption func(*options)

// MaxDepth caps nesting depth; see borrow.MaxDepth. The default is
// borrow.DefaultMaxDepth.
func MaxDepth(n int) ReadOption {
	return func(o *options) { o.maxDepth = n }
}

func buildOptions(opts []ReadOption) options {
	o := options{maxDepth: borrow.DefaultMaxDepth}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Read parses a named root compound into an owned tree. Per §4.G, this
// runs the borrow parser and converts rather than duplicating the parsing
// logic in a second single-pass walk: both are sanctioned by the spec, and
// reusing the borrow parser guarantees borrow/owned equivalence (§8
// property 2) by construction instead of by separately-maintained code.
func Read(c *nbt.Cursor, opts ...ReadOption) (*BaseNbt, error) {
	o := buildOptions(opts)
	doc, err := borrow.Read(c, borrow.MaxDepth(o.maxDepth))
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	name, err := doc.Name()
	if err != nil {
		return nil, err
	}
	root, err := convertCompound(doc.Root())
	if err != nil {
		return nil, err
	}
	return &BaseNbt{Name: name, Root: root}, nil
}

func convertCompound(c borrow.Compound) (Tag, error) {
	n := c.Len()
	children := make([]NamedTag, 0, n)
	for i := 0; i < n; i++ {
		name, err := decodeNameBytes(c.NameAt(i))
		if err != nil {
			return Tag{}, err
		}
		val, err := convertValue(c.TagAt(i))
		if err != nil {
			return Tag{}, err
		}
		children = append(children, NamedTag{Name: name, Tag: val})
	}
	return Tag{Kind: KindCompound, Compound: children}, nil
}

func convertValue(v borrow.TagView) (Tag, error) {
	switch v.Kind() {
	case tape.KindByte:
		x, _ := v.Byte()
		return Tag{Kind: KindByte, Byte: x}, nil
	case tape.KindShort:
		x, _ := v.Short()
		return Tag{Kind: KindShort, Short: x}, nil
	case tape.KindInt:
		x, _ := v.Int()
		return Tag{Kind: KindInt, Int: x}, nil
	case tape.KindLong:
		x, _ := v.Long()
		return Tag{Kind: KindLong, Long: x}, nil
	case tape.KindFloat:
		x, _ := v.Float()
		return Tag{Kind: KindFloat, Float: x}, nil
	case tape.KindDouble:
		x, _ := v.Double()
		return Tag{Kind: KindDouble, Double: x}, nil
	case tape.KindString:
		s, err := v.String()
		if err != nil {
			return Tag{}, err
		}
		return Tag{Kind: KindString, Str: s}, nil
	case tape.KindByteArray:
		raw, _ := v.ByteArray()
		out := make([]byte, len(raw))
		copy(out, raw)
		return Tag{Kind: KindByteArray, ByteArray: out}, nil
	case tape.KindIntArray:
		x, _ := v.IntArray()
		return Tag{Kind: KindIntArray, IntArray: x}, nil
	case tape.KindLongArray:
		x, _ := v.LongArray()
		return Tag{Kind: KindLongArray, LongArray: x}, nil
	case tape.KindList:
		l, _ := v.List()
		return convertList(l)
	case tape.KindCompound:
		cm, _ := v.Compound()
		return convertCompound(cm)
	default:
		return Tag{}, nbt.ErrUnknownTag(v.Kind())
	}
}

func convertList(l borrow.List) (Tag, error) {
	n := l.Len()
	elems := make([]Tag, 0, n)
	for i := 0; i < n; i++ {
		v, _ := l.Get(i)
		t, err := convertValue(v)
		if err != nil {
			return Tag{}, err
		}
		elems = append(elems, t)
	}
	return Tag{Kind: KindList, ElemKind: l.ElemKind(), List: elems}, nil
}
