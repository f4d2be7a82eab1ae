// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.yaml.in/yamltree"
)

func newTreeCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the document tree in event notation",
		Long: `Print the document tree of a YAML file, one node per line.

If no file is provided, reads YAML from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := g.options(cmd)
			if err != nil {
				return err
			}
			name, text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			n, err := yamltree.Parse(text, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			log.Infof("%s: %s with depth %d", name, n.Kind(), yamltree.Depth(n))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), yamltree.Format(n))
			return err
		},
	}
}
