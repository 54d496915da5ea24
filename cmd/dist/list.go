// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/distkit/distkit/internal/catalog"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the distributions known to sim",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"name", "parameters", "defaults", "description"})
			table.SetAutoWrapText(false)
			for _, e := range catalog.Entries() {
				defaults := make([]string, len(e.Defaults))
				for i, d := range e.Defaults {
					defaults[i] = fmt.Sprint(d)
				}
				table.Append([]string{e.Name, strings.Join(e.Params, ", "), strings.Join(defaults, ", "), e.Doc})
			}
			table.Render()
		},
	}
}
