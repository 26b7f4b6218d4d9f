// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owned_test

import (
	"bytes"
	"testing"

	"github.com/nbtgo/nbt"
	"github.com/nbtgo/nbt/owned"
)

func TestS1EmptyRoot(t *testing.T) {
	doc, err := owned.Read(nbt.NewCursor([]byte{0x00}))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if doc != nil {
		t.Fatalf("Read(00) = %+v, want Absent", doc)
	}
	var buf bytes.Buffer
	if err := owned.WriteAbsent(&buf); err != nil {
		t.Fatalf("WriteAbsent: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x00}) {
		t.Errorf("WriteAbsent = % x, want 00", buf.Bytes())
	}
}

func TestS3SingleShortRoundTrip(t *testing.T) {
	in := []byte{
		0x0A, 0x00, 0x00,
		0x02, 0x00, 0x03, 'f', 'o', 'o', 0x00, 0x07,
		0x00,
	}
	doc, err := owned.Read(nbt.NewCursor(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	v, ok := doc.Root.Get("foo")
	if !ok || v.Kind != owned.KindShort || v.Short != 7 {
		t.Errorf("Get(foo) = (%+v, %v), want Short(7)", v, ok)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), in) {
		t.Errorf("round trip = % x, want % x", buf.Bytes(), in)
	}
}

func TestS4NestedListOfCompounds(t *testing.T) {
	in := []byte{
		0x0A, 0x00, 0x00,
		0x09, 0x00, 0x01, 'l', 0x0A, 0x00, 0x00, 0x00, 0x02,
		0x03, 0x00, 0x01, 'x', 0x00, 0x00, 0x00, 0x01, 0x00,
		0x03, 0x00, 0x01, 'x', 0x00, 0x00, 0x00, 0x02, 0x00,
		0x00,
	}
	doc, err := owned.Read(nbt.NewCursor(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	l, ok := doc.Root.Get("l")
	if !ok || l.Kind != owned.KindList || len(l.List) != 2 {
		t.Fatalf("Get(l) = (%+v, %v)", l, ok)
	}
	x, ok := l.List[1].Get("x")
	if !ok || x.Int != 2 {
		t.Errorf("l.List[1].Get(x) = (%+v, %v), want Int(2)", x, ok)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), in) {
		t.Errorf("round trip = % x, want % x", buf.Bytes(), in)
	}
}

// S5 -- astral string round trip through the owned tree: decode eagerly to
// four-byte UTF-8, re-encode to the six-byte CESU-8 wire form.
func TestS5AstralStringRoundTrip(t *testing.T) {
	in := []byte{
		0x0A, 0x00, 0x00,
		0x08, 0x00, 0x01, 's', 0x00, 0x06, 0xED, 0xA0, 0x81, 0xED, 0xB0, 0xB7,
		0x00,
	}
	doc, err := owned.Read(nbt.NewCursor(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	v, ok := doc.Root.Get("s")
	if !ok || v.Str != "\U00010437" {
		t.Errorf("Get(s) = (%q, %v), want %q", v.Str, ok, "\U00010437")
	}
	if got := []byte(v.Str); !bytes.Equal(got, []byte{0xF0, 0x90, 0x90, 0xB7}) {
		t.Errorf("decoded UTF-8 bytes = % x, want F0 90 90 B7", got)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), in) {
		t.Errorf("round trip = % x, want % x", buf.Bytes(), in)
	}
}

func TestArraysRoundTrip(t *testing.T) {
	doc := &owned.BaseNbt{
		Name: "root",
		Root: owned.Tag{
			Kind: owned.KindCompound,
			Compound: []owned.NamedTag{
				{Name: "bytes", Tag: owned.Tag{Kind: owned.KindByteArray, ByteArray: []byte{1, 2, 3}}},
				{Name: "ints", Tag: owned.Tag{Kind: owned.KindIntArray, IntArray: []int32{1, -2, 1 << 30}}},
				{Name: "longs", Tag: owned.Tag{Kind: owned.KindLongArray, LongArray: []int64{1, -2, 1 << 40}}},
			},
		},
	}
	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	round, err := owned.Read(nbt.NewCursor(buf.Bytes()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	ints, ok := round.Root.Get("ints")
	if !ok || len(ints.IntArray) != 3 || ints.IntArray[2] != 1<<30 {
		t.Errorf("ints = %+v", ints)
	}
	longs, ok := round.Root.Get("longs")
	if !ok || len(longs.LongArray) != 3 || longs.LongArray[2] != 1<<40 {
		t.Errorf("longs = %+v", longs)
	}
}

func TestTagStringRendering(t *testing.T) {
	tag := owned.Tag{
		Kind: owned.KindCompound,
		Compound: []owned.NamedTag{
			{Name: "x", Tag: owned.Tag{Kind: owned.KindInt, Int: 2}},
			{Name: "name", Tag: owned.Tag{Kind: owned.KindString, Str: "ok"}},
		},
	}
	got := tag.String()
	want := `{"x":2,"name":"ok"}`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
