// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package borrow_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/nbtgo/nbt"
	"github.com/nbtgo/nbt/borrow"
)

// S1 -- Empty root: 00 -> Absent; writing Absent yields 00.
func TestS1EmptyRoot(t *testing.T) {
	doc, err := borrow.Read(nbt.NewCursor([]byte{0x00}))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if doc != nil {
		t.Fatalf("Read(00) = %+v, want Absent (nil)", doc)
	}
	var buf bytes.Buffer
	if err := borrow.WriteAbsent(&buf); err != nil {
		t.Fatalf("WriteAbsent: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x00}) {
		t.Errorf("WriteAbsent = % x, want 00", buf.Bytes())
	}
}

// S2 -- Minimal named compound: 0A 00 00 00.
func TestS2MinimalNamedCompound(t *testing.T) {
	in := []byte{0x0A, 0x00, 0x00, 0x00}
	doc, err := borrow.Read(nbt.NewCursor(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if name, _ := doc.Name(); name != "" {
		t.Errorf("Name() = %q, want empty", name)
	}
	if got := doc.Root().Len(); got != 0 {
		t.Errorf("Root().Len() = %d, want 0", got)
	}
	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), in) {
		t.Errorf("round trip = % x, want % x", buf.Bytes(), in)
	}
}

// S3 -- Single short: {foo: 7}.
func TestS3SingleShort(t *testing.T) {
	in := []byte{
		0x0A, 0x00, 0x00,
		0x02, 0x00, 0x03, 'f', 'o', 'o', 0x00, 0x07,
		0x00,
	}
	doc, err := borrow.Read(nbt.NewCursor(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	v, ok := doc.Root().Short("foo")
	if !ok || v != 7 {
		t.Errorf("Short(foo) = (%d, %v), want (7, true)", v, ok)
	}
	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), in) {
		t.Errorf("round trip = % x, want % x", buf.Bytes(), in)
	}
}

// S4 -- Nested list of compounds: {l: [{x:1}, {x:2}]}.
func TestS4NestedListOfCompounds(t *testing.T) {
	in := []byte{
		0x0A, 0x00, 0x00,
		0x09, 0x00, 0x01, 'l', 0x0A, 0x00, 0x00, 0x00, 0x02,
		0x03, 0x00, 0x01, 'x', 0x00, 0x00, 0x00, 0x01, 0x00,
		0x03, 0x00, 0x01, 'x', 0x00, 0x00, 0x00, 0x02, 0x00,
		0x00,
	}
	doc, err := borrow.Read(nbt.NewCursor(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	list, ok := doc.Root().List("l")
	if !ok {
		t.Fatalf("List(l) missing")
	}
	if list.Len() != 2 || list.ElemKind() != 10 {
		t.Fatalf("list = len %d elemKind %d, want len 2 elemKind 10", list.Len(), list.ElemKind())
	}
	compounds, ok := list.Compounds()
	if !ok || len(compounds) != 2 {
		t.Fatalf("Compounds() = (%v, %v)", compounds, ok)
	}
	x, ok := compounds[1].Int("x")
	if !ok || x != 2 {
		t.Errorf("compounds[1].Int(x) = (%d, %v), want (2, true)", x, ok)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), in) {
		t.Errorf("round trip = % x, want % x", buf.Bytes(), in)
	}
}

// S5 -- astral-character string, CESU-8 encoded on the wire.
func TestS5AstralString(t *testing.T) {
	in := []byte{
		0x0A, 0x00, 0x00,
		0x08, 0x00, 0x01, 's', 0x00, 0x06, 0xED, 0xA0, 0x81, 0xED, 0xB0, 0xB7,
		0x00,
	}
	doc, err := borrow.Read(nbt.NewCursor(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	got, ok := doc.Root().String("s")
	if !ok {
		t.Fatalf("String(s) missing")
	}
	if want := "\U00010437"; got != want {
		t.Errorf("String(s) = %q (% x), want %q", got, []byte(got), want)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), in) {
		t.Errorf("round trip = % x, want % x", buf.Bytes(), in)
	}
}

// S6 -- malformed: ByteArray declaring length -1 fails with NegativeLength.
func TestS6NegativeArrayLength(t *testing.T) {
	in := []byte{
		0x0A, 0x00, 0x00,
		0x07, 0x00, 0x01, 'a', 0xFF, 0xFF, 0xFF, 0xFF,
	}
	_, err := borrow.Read(nbt.NewCursor(in))
	if !errors.Is(err, nbt.ErrNegativeLength) {
		t.Errorf("Read: err = %v, want NegativeLength", err)
	}
}

func TestReadUnnamed(t *testing.T) {
	// Same as S2 but without the name length/bytes prefix.
	in := []byte{0x0A, 0x00}
	doc, err := borrow.Read(nbt.NewCursor(append([]byte{0x0A}, 0x00, 0x00, 0x00)))
	if err != nil {
		t.Fatalf("Read (control): %v", err)
	}
	if doc == nil {
		t.Fatal("Read (control) returned Absent")
	}

	doc2, err := borrow.ReadUnnamed(nbt.NewCursor(in))
	if err != nil {
		t.Fatalf("ReadUnnamed: %v", err)
	}
	if name, _ := doc2.Name(); name != "" {
		t.Errorf("Name() = %q, want empty", name)
	}
	if doc2.Root().Len() != 0 {
		t.Errorf("Root().Len() = %d, want 0", doc2.Root().Len())
	}
}

func TestMaxDepthExceeded(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(0x0A)
	buf.Write([]byte{0x00, 0x00}) // root name ""
	depth := 600
	for i := 0; i < depth; i++ {
		buf.WriteByte(0x0A)             // Compound
		buf.Write([]byte{0x00, 0x00}) // name ""
	}
	for i := 0; i < depth+1; i++ {
		buf.WriteByte(0x00) // closing terminators
	}

	_, err := borrow.Read(nbt.NewCursor(buf.Bytes()), borrow.MaxDepth(16))
	if !errors.Is(err, nbt.ErrMaxDepthExceeded) {
		t.Errorf("Read: err = %v, want MaxDepthExceeded", err)
	}
}

func TestUnknownTag(t *testing.T) {
	in := []byte{0x0A, 0x00, 0x00, 0xFE, 0x00, 0x00}
	_, err := borrow.Read(nbt.NewCursor(in))
	var e *nbt.Error
	if !errors.As(err, &e) || e.Kind != nbt.UnknownTag || e.Tag != 0xFE {
		t.Errorf("Read: err = %v, want UnknownTag(0xFE)", err)
	}
}

func TestEmptyListElementKindZero(t *testing.T) {
	// §9 open question: element kind 0 with non-zero declared length is
	// treated as an empty list.
	in := []byte{
		0x0A, 0x00, 0x00,
		0x09, 0x00, 0x01, 'l', 0x00, 0x00, 0x00, 0x00, 0x05,
		0x00,
	}
	doc, err := borrow.Read(nbt.NewCursor(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	list, ok := doc.Root().List("l")
	if !ok || list.Len() != 0 {
		t.Errorf("List(l) = (len %d, %v), want (0, true)", list.Len(), ok)
	}
}

func TestArrayLengthOverflowBound(t *testing.T) {
	in := []byte{
		0x0A, 0x00, 0x00,
		0x0B, 0x00, 0x01, 'a', 0x7F, 0xFF, 0xFF, 0xFF, // IntArray, n = MaxInt32
	}
	_, err := borrow.Read(nbt.NewCursor(in))
	if !errors.Is(err, nbt.ErrUnexpectedEOF) {
		t.Errorf("Read: err = %v, want UnexpectedEOF", err)
	}
}

func TestDuplicateNamesFirstMatchWins(t *testing.T) {
	in := []byte{
		0x0A, 0x00, 0x00,
		0x01, 0x00, 0x01, 'a', 0x01,
		0x01, 0x00, 0x01, 'a', 0x02,
		0x00,
	}
	doc, err := borrow.Read(nbt.NewCursor(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	v, ok := doc.Root().Byte("a")
	if !ok || v != 1 {
		t.Errorf("Byte(a) = (%d, %v), want (1, true) -- first match wins", v, ok)
	}
	if doc.Root().Len() != 2 {
		t.Errorf("Len() = %d, want 2 (duplicates both kept)", doc.Root().Len())
	}
}
