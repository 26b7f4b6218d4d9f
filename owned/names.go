// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owned

import "github.com/nbtgo/nbt/internal/mutf8"

func decodeNameBytes(raw []byte) (string, error) {
	return mutf8.Decode(raw)
}
