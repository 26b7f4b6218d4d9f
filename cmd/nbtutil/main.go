// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command nbtutil inspects and converts NBT documents. Files may be local,
// on S3, or an http(s) URL, mirroring cmd/pbzip2's openFileOrURL/createFile
// split.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/file/s3file"
	"github.com/spf13/cobra"
)

func init() {
	file.RegisterImplementation("s3", func() file.Implementation {
		return s3file.NewImplementation(
			s3file.NewDefaultProvider(session.Options{}), s3file.Options{})
	})
}

func main() {
	root := &cobra.Command{
		Use:   "nbtutil",
		Short: "inspect and convert Named Binary Tag documents",
	}
	root.AddCommand(newDumpCmd(), newGetCmd(), newConvertCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
