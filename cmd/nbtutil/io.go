// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/cenkalti/backoff/v3"
	"github.com/grailbio/base/file"
)

// openInput reads name fully into memory, matching openFileOrURL's
// local/S3 handling but without the streaming reader: NBT documents are
// parsed from a single materialized buffer (§4.A/§4.E), not streamed.
// Remote opens (S3, http via grailbio's "https" scheme) are wrapped in a
// retry/backoff loop since they're the one operation here with transient
// failure modes worth retrying; local file opens are not retried.
func openInput(ctx context.Context, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}

	var data []byte
	op := func() error {
		f, err := file.Open(ctx, name)
		if err != nil {
			return err
		}
		defer f.Close(ctx)
		data, err = io.ReadAll(f.Reader(ctx))
		return err
	}

	if isRemote(name) {
		b := backoff.NewExponentialBackOff()
		b.MaxElapsedTime = 0
		return data, backoff.Retry(op, backoff.WithMaxRetries(b, 3))
	}
	return data, op()
}

// createOutput opens name for writing, or stdout if name is empty or "-".
func createOutput(ctx context.Context, name string) (io.Writer, func() error, error) {
	if name == "" || name == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := file.Create(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	return f.Writer(ctx), func() error { return f.Close(ctx) }, nil
}

func isRemote(name string) bool {
	return strings.HasPrefix(name, "s3://") ||
		strings.HasPrefix(name, "http://") ||
		strings.HasPrefix(name, "https://")
}
