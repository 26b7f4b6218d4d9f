// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owned

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders t in a compact SNBT-ish textual form, modeled on
// landru27-nbt's NBTTAG.String() tag-name rendering. It exists for
// diagnostics (cmd/nbtutil dump) and is never used by the codec itself --
// parsing and writing always go through the tape/tree paths above.
func (t Tag) String() string {
	switch t.Kind {
	case KindEnd:
		return ""
	case KindByte:
		return strconv.FormatInt(int64(t.Byte), 10) + "b"
	case KindShort:
		return strconv.FormatInt(int64(t.Short), 10) + "s"
	case KindInt:
		return strconv.FormatInt(int64(t.Int), 10)
	case KindLong:
		return strconv.FormatInt(t.Long, 10) + "L"
	case KindFloat:
		return strconv.FormatFloat(float64(t.Float), 'g', -1, 32) + "f"
	case KindDouble:
		return strconv.FormatFloat(t.Double, 'g', -1, 64) + "d"
	case KindString:
		return strconv.Quote(t.Str)
	case KindByteArray:
		return arrayString("B", len(t.ByteArray), func(i int) string {
			return strconv.FormatInt(int64(t.ByteArray[i]), 10)
		})
	case KindIntArray:
		return arrayString("I", len(t.IntArray), func(i int) string {
			return strconv.FormatInt(int64(t.IntArray[i]), 10)
		})
	case KindLongArray:
		return arrayString("L", len(t.LongArray), func(i int) string {
			return strconv.FormatInt(t.LongArray[i], 10)
		})
	case KindList:
		parts := make([]string, len(t.List))
		for i, e := range t.List {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ",") + "]"
	case KindCompound:
		parts := make([]string, len(t.Compound))
		for i, c := range t.Compound {
			parts[i] = fmt.Sprintf("%s:%s", strconv.Quote(c.Name), c.Tag.String())
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return fmt.Sprintf("<unknown tag 0x%02x>", t.Kind)
	}
}

func arrayString(prefix string, n int, at func(int) string) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = at(i)
	}
	return "[" + prefix + ";" + strings.Join(parts, ",") + "]"
}
