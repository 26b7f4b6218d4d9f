// Copyright 2024 The nbtgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/nbtgo/nbt/frame"
	"github.com/nbtgo/nbt/owned"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <dotted.path>",
		Short: "print the value at a dotted compound path",
		Args:  cobra.ExactArgs(2),
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
				return fmt.Errorf("nbtutil: %s is an absent document", args[0])
			}
			tag, ok := lookupPath(doc.Root, args[1])
			if !ok {
				return fmt.Errorf("nbtutil: no such path %q", args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), tag.String())
			return nil
		},
	}
}

func lookupPath(root owned.Tag, path string) (owned.Tag, bool) {
	tag := root
	for _, key := range strings.Split(path, ".") {
		next, ok := tag.Get(key)
		if !ok {
			return owned.Tag{}, false
		}
		tag = next
	}
	return tag, true
}
