// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package borrow implements the zero-copy half of the codec: a single-pass
// parser that builds a tape over a caller-owned buffer, and a navigator that
// walks the tape and reads the buffer only to compare child names, return
// zero-copy byte views, decode a string or swap an array's endianness on
// demand.
package borrow

import (
	"github.com/nbtgo/nbt"
	"github.com/nbtgo/nbt/internal/tape"
)

// BaseNbt is a parsed document: a tape over buf, plus the root compound's
// name (recorded, never scaffolding to discard -- every NBT reader in the
// wild treats the root name as real data).
type BaseNbt struct {
	tp       *tape.Tape
	buf      []byte
	nameOff  uint32
	nameLen  uint32
}

// Root returns the navigable view of the document's outermost compound.
func (n *BaseNbt) Root() Compound {
	return Compound{tp: n.tp, buf: n.buf, idx: 0}
}

// NameBytes returns the root compound's name as raw, undecoded MUTF-8 bytes.
func (n *BaseNbt) NameBytes() []byte {
	return n.buf[n.nameOff : n.nameOff+n.nameLen]
}

// Name decodes and returns the root compound's name.
func (n *BaseNbt) Name() (string, error) {
	return decodeName(n.NameBytes())
}

// Tape exposes the underlying tape, mostly for the writer and for tests
// that want to assert on tape shape directly.
func (n *BaseNbt) Tape() *tape.Tape { return n.tp }

// Buf exposes the underlying source buffer the tape borrows from.
func (n *BaseNbt) Buf() []byte { return n.buf }

// Read parses a named root compound from c, following §4.E of the wire
// grammar: kind byte 0 means the document is Absent (returns nil, nil);
// kind byte 10 means a named root Compound follows; anything else is
// UnknownTag.
func Read(c *nbt.Cursor, opts ...ReadOption) (*BaseNbt, error) {
	return read(c, true, buildOptions(opts))
}

// ReadUnnamed parses a root compound that has no name prefix on the wire,
// for protocols (newer network NBT) that omit it. The returned BaseNbt's
// name is always empty.
func ReadUnnamed(c *nbt.Cursor, opts ...ReadOption) (*BaseNbt, error) {
	return read(c, false, buildOptions(opts))
}

func read(c *nbt.Cursor, named bool, o options) (*BaseNbt, error) {
	kind, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	if kind == tape.KindEnd {
		return nil, nil
	}
	if kind != tape.KindCompound {
		return nil, nbt.ErrUnknownTag(kind)
	}

	var nameOff, nameLen uint32
	if named {
		nameOff, nameLen, err = readName(c)
		if err != nil {
			return nil, err
		}
	} else {
		nameOff = uint32(c.Offset())
	}

	tp := tape.New(len(c.Bytes()))
	p := &parser{c: c, tp: tp, maxDepth: o.maxDepth}

	rootIdx := p.pushEntry(tape.Entry{Kind: tape.KindCompound})
	p.stack = append(p.stack, frame{headerIdx: rootIdx})

	if err := p.run(); err != nil {
		return nil, err
	}

	return &BaseNbt{tp: tp, buf: c.Bytes(), nameOff: nameOff, nameLen: nameLen}, nil
}

// readName reads a u16-length-prefixed name and returns its (offset, length)
// into the cursor's backing buffer -- a zero-copy view, not a decode.
func readName(c *nbt.Cursor) (off, length uint32, err error) {
	n, err := c.ReadU16()
	if err != nil {
		return 0, 0, err
	}
	off = uint32(c.Offset())
	if _, err := c.ReadSlice(int(n)); err != nil {
		return 0, 0, err
	}
	return off, uint32(n), nil
}

// frame is one level of the parser's explicit stack. A frame with
// isList == false is "inside a compound"; remaining/elemKind are only
// meaningful when isList is true. nameOff/nameLen/hasName describe the name
// this frame's own composite was inserted under in its parent (hasName is
// false for the root and for elements of a list, which are unnamed).
type frame struct {
	isList    bool
	headerIdx int32
	elemKind  byte
	remaining int32
	children  []tape.NameRef
	hasName   bool
	nameOff   uint32
	nameLen   uint32
}

// parser runs the iterative frame-stack machine described in §4.E. It never
// recurses: nesting depth is bounded by len(stack), checked against
// maxDepth on every push.
type parser struct {
	c        *nbt.Cursor
	tp       *tape.Tape
	maxDepth int
	stack    []frame
}

func (p *parser) pushEntry(e tape.Entry) int32 {
	idx := int32(len(p.tp.Entries))
	p.tp.Entries = append(p.tp.Entries, e)
	return idx
}

func (p *parser) run() error {
	for len(p.stack) > 0 {
		top := &p.stack[len(p.stack)-1]
		if top.isList {
			if err := p.stepList(top); err != nil {
				return err
			}
			continue
		}
		if err := p.stepCompound(top); err != nil {
			return err
		}
	}
	return nil
}

// stepCompound processes exactly one tag inside the compound frame on top
// of the stack: either its terminator (closing the frame) or one child.
func (p *parser) stepCompound(top *frame) error {
	kind, err := p.c.ReadByte()
	if err != nil {
		return err
	}
	if kind == tape.KindEnd {
		p.closeCompound(top)
		return nil
	}
	if kind > tape.KindLongArray {
		return nbt.ErrUnknownTag(kind)
	}

	nameOff, nameLen, err := readName(p.c)
	if err != nil {
		return err
	}

	if isComposite(kind) {
		_, err := p.startComposite(kind, true, nameOff, nameLen)
		return err
	}

	idx, err := p.appendLeaf(kind)
	if err != nil {
		return err
	}
	top.children = append(top.children, tape.NameRef{Offset: nameOff, Length: nameLen, Child: idx})
	return nil
}

// stepList processes exactly one element of the list frame on top of the
// stack: either its terminator (closing the frame) or one element.
func (p *parser) stepList(top *frame) error {
	if top.remaining == 0 {
		p.closeList(top)
		return nil
	}
	top.remaining--
	kind := top.elemKind
	if isComposite(kind) {
		_, err := p.startComposite(kind, false, 0, 0)
		return err
	}
	_, err := p.appendLeaf(kind)
	return err
}

func (p *parser) closeCompound(top *frame) {
	namesStart := int32(len(p.tp.Names))
	p.tp.Names = append(p.tp.Names, top.children...)
	namesEnd := int32(len(p.tp.Names))
	endIdx := p.pushEntry(tape.Entry{Kind: tape.KindEnd})

	p.tp.Entries[top.headerIdx].End = endIdx
	p.tp.Entries[top.headerIdx].NamesStart = namesStart
	p.tp.Entries[top.headerIdx].NamesEnd = namesEnd

	p.popAndRecord(top)
}

func (p *parser) closeList(top *frame) {
	endIdx := p.pushEntry(tape.Entry{Kind: tape.KindEnd})
	p.tp.Entries[top.headerIdx].End = endIdx
	p.popAndRecord(top)
}

// popAndRecord pops the completed frame and, if it was inserted under a
// name in its parent compound (i.e. not the root, not a list element),
// records that NameRef into the new top of the stack. This has to happen
// here rather than at push time: the parent doesn't know the child's full
// tape extent until the child itself closes.
func (p *parser) popAndRecord(top *frame) {
	headerIdx, hasName, nameOff, nameLen := top.headerIdx, top.hasName, top.nameOff, top.nameLen
	p.stack = p.stack[:len(p.stack)-1]
	if hasName && len(p.stack) > 0 {
		parent := &p.stack[len(p.stack)-1]
		parent.children = append(parent.children, tape.NameRef{Offset: nameOff, Length: nameLen, Child: headerIdx})
	}
}

func isComposite(kind byte) bool {
	return kind == tape.KindList || kind == tape.KindCompound
}

// startComposite reads a composite tag's own header (a list's element kind
// and length; nothing extra for a compound) and either closes it
// immediately (an empty list) or pushes a frame for the caller's main loop
// to keep driving.
func (p *parser) startComposite(kind byte, hasName bool, nameOff, nameLen uint32) (int32, error) {
	if kind == tape.KindCompound {
		idx := p.pushEntry(tape.Entry{Kind: tape.KindCompound})
		if err := p.push(frame{headerIdx: idx, hasName: hasName, nameOff: nameOff, nameLen: nameLen}); err != nil {
			return 0, err
		}
		return idx, nil
	}

	elemKind, err := p.c.ReadByte()
	if err != nil {
		return 0, err
	}
	if elemKind > tape.KindLongArray {
		return 0, nbt.ErrUnknownTag(elemKind)
	}
	n, err := p.c.ReadI32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, nbt.ErrNegativeLength
	}

	idx := p.pushEntry(tape.Entry{Kind: tape.KindList, ElemKind: elemKind, Length: uint32(n)})

	// Open question resolved per design notes: element kind 0 with
	// non-zero length is treated the same as length 0 -- an empty list.
	if n == 0 || elemKind == tape.KindEnd {
		endIdx := p.pushEntry(tape.Entry{Kind: tape.KindEnd})
		p.tp.Entries[idx].End = endIdx
		p.tp.Entries[idx].Length = 0
		if hasName {
			top := &p.stack[len(p.stack)-1]
			top.children = append(top.children, tape.NameRef{Offset: nameOff, Length: nameLen, Child: idx})
		}
		return idx, nil
	}

	if err := p.push(frame{isList: true, headerIdx: idx, elemKind: elemKind, remaining: n, hasName: hasName, nameOff: nameOff, nameLen: nameLen}); err != nil {
		return 0, err
	}
	return idx, nil
}

func (p *parser) push(f frame) error {
	if len(p.stack) >= p.maxDepth {
		return nbt.ErrMaxDepthExceeded
	}
	p.stack = append(p.stack, f)
	return nil
}

// appendLeaf reads a non-composite tag's payload and appends its tape
// entry, returning the new entry's tape index.
func (p *parser) appendLeaf(kind byte) (int32, error) {
	switch kind {
	case tape.KindByte:
		b, err := p.c.ReadByte()
		if err != nil {
			return 0, err
		}
		return p.pushEntry(tape.Entry{Kind: kind, Scalar: uint64(int64(int8(b)))}), nil
	case tape.KindShort:
		v, err := p.c.ReadI16()
		if err != nil {
			return 0, err
		}
		return p.pushEntry(tape.Entry{Kind: kind, Scalar: uint64(int64(v))}), nil
	case tape.KindInt:
		v, err := p.c.ReadI32()
		if err != nil {
			return 0, err
		}
		return p.pushEntry(tape.Entry{Kind: kind, Scalar: uint64(int64(v))}), nil
	case tape.KindLong:
		v, err := p.c.ReadI64()
		if err != nil {
			return 0, err
		}
		return p.pushEntry(tape.Entry{Kind: kind, Scalar: uint64(v)}), nil
	case tape.KindFloat:
		v, err := p.c.ReadU32()
		if err != nil {
			return 0, err
		}
		return p.pushEntry(tape.Entry{Kind: kind, Scalar: uint64(v)}), nil
	case tape.KindDouble:
		v, err := p.c.ReadU64()
		if err != nil {
			return 0, err
		}
		return p.pushEntry(tape.Entry{Kind: kind, Scalar: v}), nil
	case tape.KindString:
		n, err := p.c.ReadU16()
		if err != nil {
			return 0, err
		}
		off := uint32(p.c.Offset())
		if _, err := p.c.ReadSlice(int(n)); err != nil {
			return 0, err
		}
		return p.pushEntry(tape.Entry{Kind: kind, Offset: off, Length: uint32(n)}), nil
	case tape.KindByteArray, tape.KindIntArray, tape.KindLongArray:
		return p.appendArray(kind)
	default:
		return 0, nbt.ErrUnknownTag(kind)
	}
}

func elemSize(kind byte) int64 {
	switch kind {
	case tape.KindIntArray:
		return 4
	case tape.KindLongArray:
		return 8
	default:
		return 1
	}
}

func (p *parser) appendArray(kind byte) (int32, error) {
	n, err := p.c.ReadI32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, nbt.ErrNegativeLength
	}
	// 64-bit multiply avoids overflow even at n == math.MaxInt32.
	need := int64(n) * elemSize(kind)
	if need > int64(p.c.Remaining()) {
		return 0, nbt.ErrUnexpectedEOF
	}
	off := uint32(p.c.Offset())
	if _, err := p.c.ReadSlice(int(need)); err != nil {
		return 0, err
	}
	return p.pushEntry(tape.Entry{Kind: kind, Offset: off, Length: uint32(n)}), nil
}
