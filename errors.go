// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nbt

import "fmt"

// ErrorKind enumerates the closed set of ways decoding or access-time
// conversion can fail. It is the only thing callers should switch on;
// the wrapped message text is for humans, not control flow.
type ErrorKind int

const (
	// UnexpectedEOF means the cursor ran off the end of the buffer.
	UnexpectedEOF ErrorKind = iota
	// UnknownTag means a kind byte fell outside 0..=12, or the root
	// kind was neither 0 nor 10.
	UnknownTag
	// NegativeLength means a length prefix read as negative.
	NegativeLength
	// MaxDepthExceeded means the configured nesting limit was hit.
	MaxDepthExceeded
	// InvalidString means MUTF-8 decoding failed at access time. Parsing
	// itself never raises this kind.
	InvalidString
	// IO wraps an error from an underlying reader or writer when
	// streaming rather than parsing a pre-materialized slice.
	IO
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedEOF:
		return "unexpected EOF"
	case UnknownTag:
		return "unknown tag"
	case NegativeLength:
		return "negative length"
	case MaxDepthExceeded:
		return "max depth exceeded"
	case InvalidString:
		return "invalid string"
	case IO:
		return "io"
	default:
		return "unknown error kind"
	}
}

// Error is the single error type returned by this module. Tag is only
// meaningful for UnknownTag; Err is only meaningful for IO.
type Error struct {
	Kind ErrorKind
	Tag  byte
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnknownTag:
		return fmt.Sprintf("nbt: unknown tag 0x%02x", e.Tag)
	case IO:
		return fmt.Sprintf("nbt: io: %v", e.Err)
	default:
		return "nbt: " + e.Kind.String()
	}
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As, relevant only
// to IO errors.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, letting
// callers write errors.Is(err, nbt.ErrUnexpectedEOF) style checks against
// the sentinels below without caring about Tag/Err payloads.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel values for errors.Is comparisons; none carry a Tag or Err.
var (
	ErrUnexpectedEOF    = &Error{Kind: UnexpectedEOF}
	ErrNegativeLength   = &Error{Kind: NegativeLength}
	ErrMaxDepthExceeded = &Error{Kind: MaxDepthExceeded}
	ErrInvalidString    = &Error{Kind: InvalidString}
)

// ErrUnknownTag builds an UnknownTag error carrying the offending byte.
func ErrUnknownTag(tag byte) *Error { return &Error{Kind: UnknownTag, Tag: tag} }

// ErrIO wraps an I/O error encountered while streaming.
func ErrIO(err error) *Error { return &Error{Kind: IO, Err: err} }
