// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nbt

import "math"

// Cursor is a bounded sequential reader over an immutable byte slice. It
// never copies the source: multi-byte reads return sub-slice views, and
// scalar reads decode in place. Every method that can run off the end of
// the buffer returns ErrUnexpectedEOF instead of panicking, so untrusted
// input can be fed to it directly.
//
// Modeled on the teacher's internal/bzip2.bitReader, but byte- rather than
// bit-granular, and with per-call error returns instead of a sticky Err()
// field: the borrow parser needs to distinguish "ran off the end" from
// other failures at each call site, not just at the end of a read loop.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps buf for sequential, bounds-checked reading. buf is not
// copied; the returned Cursor's views stay valid exactly as long as buf
// does.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{data: buf}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Bytes returns the entire backing slice the cursor was created over.
func (c *Cursor) Bytes() []byte { return c.data }

func (c *Cursor) need(n int) error {
	if n < 0 || n > c.Remaining() {
		return ErrUnexpectedEOF
	}
	return nil
}

// ReadByte reads a single byte.
func (c *Cursor) ReadByte() (byte, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// Skip advances the cursor by n bytes without returning them.
func (c *Cursor) Skip(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// ReadSlice returns a zero-copy view of the next n bytes and advances past
// them.
func (c *Cursor) ReadSlice(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	s := c.data[c.pos : c.pos+n]
	c.pos += n
	return s, nil
}

// ReadU16 reads a big-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := uint16(c.data[c.pos])<<8 | uint16(c.data[c.pos+1])
	c.pos += 2
	return v, nil
}

// ReadI16 reads a big-endian int16.
func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

// ReadU32 reads a big-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := uint32(c.data[c.pos])<<24 | uint32(c.data[c.pos+1])<<16 |
		uint32(c.data[c.pos+2])<<8 | uint32(c.data[c.pos+3])
	c.pos += 4
	return v, nil
}

// ReadI32 reads a big-endian int32.
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// ReadU64 reads a big-endian uint64.
func (c *Cursor) ReadU64() (uint64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	v := uint64(c.data[c.pos])<<56 | uint64(c.data[c.pos+1])<<48 |
		uint64(c.data[c.pos+2])<<40 | uint64(c.data[c.pos+3])<<32 |
		uint64(c.data[c.pos+4])<<24 | uint64(c.data[c.pos+5])<<16 |
		uint64(c.data[c.pos+6])<<8 | uint64(c.data[c.pos+7])
	c.pos += 8
	return v, nil
}

// ReadI64 reads a big-endian int64.
func (c *Cursor) ReadI64() (int64, error) {
	v, err := c.ReadU64()
	return int64(v), err
}

// ReadF32 reads a big-endian IEEE-754 single-precision float.
func (c *Cursor) ReadF32() (float32, error) {
	v, err := c.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadF64 reads a big-endian IEEE-754 double-precision float.
func (c *Cursor) ReadF64() (float64, error) {
	v, err := c.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
