// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/nbtgo/nbt/frame"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "print an NBT document in SNBT-ish form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := openInput(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			doc, err := frame.ReadOwned(raw)
			if err != nil {
				return err
			}
			if doc == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "<absent>")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q: %s\n", doc.Name, doc.Root.String())
			return nil
		},
	}
}
