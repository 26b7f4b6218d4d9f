// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package borrow

// DefaultMaxDepth bounds the borrow parser's frame stack when the caller
// doesn't supply MaxDepth explicitly.
const DefaultMaxDepth = 512

type options struct {
	maxDepth int
}

// ReadOption configures Read/ReadUnnamed in the functional-option style;
// owned.ReadOption mirrors it.
type ReadOption func(*options)

// MaxDepth caps the nesting depth (compound/list frame stack size) the
// parser will tolerate before failing with MaxDepthExceeded. The default is
// DefaultMaxDepth.
func MaxDepth(n int) ReadOption {
	return func(o *options) { o.maxDepth = n }
}

func buildOptions(opts []ReadOption) options {
	o := options{maxDepth: DefaultMaxDepth}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
