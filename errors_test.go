// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nbt_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nbtgo/nbt"
)

func TestErrorIsIgnoresPayload(t *testing.T) {
	a := nbt.ErrUnknownTag(0x05)
	b := nbt.ErrUnknownTag(0xfe)
	if !errors.Is(a, b) {
		t.Fatal("two UnknownTag errors with different Tag payloads should compare equal via errors.Is")
	}
	if errors.Is(a, nbt.ErrNegativeLength) {
		t.Fatal("UnknownTag should not match NegativeLength")
	}
}

func TestErrorIOUnwraps(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	wrapped := nbt.ErrIO(cause)
	if !errors.Is(wrapped, cause) {
		t.Fatal("ErrIO should unwrap to its cause for errors.Is")
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  *nbt.Error
		want string
	}{
		{nbt.ErrUnexpectedEOF, "nbt: unexpected EOF"},
		{nbt.ErrUnknownTag(0xab), "nbt: unknown tag 0xab"},
		{nbt.ErrMaxDepthExceeded, "nbt: max depth exceeded"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("Error() = %q, want %q", got, c.want)
		}
	}
}
