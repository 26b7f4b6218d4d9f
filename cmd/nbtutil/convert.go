// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/nbtgo/nbt/frame"
	"github.com/schollz/progressbar/v2"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
)

type convertFlags struct {
	progress bool
	gzipOut  bool
}

func newConvertCmd() *cobra.Command {
	cl := &convertFlags{}
	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "re-frame an NBT document (decompress, or re-gzip)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, cl, args[0], args[1])
		},
	}
	cmd.Flags().BoolVar(&cl.progress, "progress", true, "display a progress bar")
	cmd.Flags().BoolVar(&cl.gzipOut, "gzip", false, "gzip the output")
	return cmd
}

func runConvert(cmd *cobra.Command, cl *convertFlags, in, out string) error {
	ctx := cmd.Context()
	raw, err := openInput(ctx, in)
	if err != nil {
		return err
	}

	plain, err := frame.Decompress(raw)
	if err != nil {
		return err
	}

	w, closeOutput, err := createOutput(ctx, out)
	if err != nil {
		return err
	}
	defer closeOutput()

	var bar *progressbar.ProgressBar
	isTTY := terminal.IsTerminal(int(os.Stdout.Fd()))
	if cl.progress && (out != "" && out != "-" || !isTTY) {
		bar = progressbar.NewOptions64(int64(len(plain)),
			progressbar.OptionSetBytes64(int64(len(plain))),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetPredictTime(true))
	}

	var src io.Reader = bytes.NewReader(plain)
	if bar != nil {
		src = io.TeeReader(src, progressWriter{bar})
	}

	if cl.gzipOut {
		zw := gzip.NewWriter(w)
		if _, err := io.Copy(zw, src); err != nil {
			return err
		}
		return zw.Close()
	}
	_, err = io.Copy(w, src)
	return err
}

// progressWriter adapts a progressbar.ProgressBar (which tracks bytes via
// Add) to io.Writer so it can sit behind an io.TeeReader, the same
// plumbing shape as cmd/pbzip2's progress-bar goroutine, just driven by
// bytes copied instead of decompression-block events.
type progressWriter struct {
	bar *progressbar.ProgressBar
}

func (p progressWriter) Write(b []byte) (int, error) {
	p.bar.Add(len(b))
	return len(b), nil
}
