// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"github.com/nbtgo/nbt"
	"github.com/nbtgo/nbt/borrow"
	"github.com/nbtgo/nbt/owned"
)

// ReadBorrow decompresses b per Detect/Decompress and parses the result as
// a borrow document. This is the entry point tmpim-anvil's
// NewRegionChunkReader models: a single call from possibly-compressed
// bytes straight to a navigable view, as opposed to borrow.Read, which
// takes an already-decompressed buffer (NewGzipReader's half of that
// split).
//
// It lives here rather than on the root package because both borrow and
// owned import the root package for Cursor and Error; a root-level
// ReadFrame would have to import them right back.
func ReadBorrow(b []byte, opts ...borrow.ReadOption) (*borrow.BaseNbt, error) {
	plain, err := Decompress(b)
	if err != nil {
		return nil, nbt.ErrIO(err)
	}
	return borrow.Read(nbt.NewCursor(plain), opts...)
}

// ReadOwned is ReadBorrow's owned-tree counterpart.
func ReadOwned(b []byte, opts ...owned.ReadOption) (*owned.BaseNbt, error) {
	plain, err := Decompress(b)
	if err != nil {
		return nil, nbt.ErrIO(err)
	}
	return owned.Read(nbt.NewCursor(plain), opts...)
}
