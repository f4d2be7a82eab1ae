// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.yaml.in/yamltree"
)

func newCheckCmd(g *globalFlags) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate YAML files",
		Long: `Load every file and report the first error found in each, with the
offending source line. Exits with a non-zero status if any file fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := g.options(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				in, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				text := string(in)
				if _, err := yamltree.Parse(text, opts...); err != nil {
					failed++
					writeDiagnostic(out, path, text, err)
					continue
				}
				log.Debugf("%s: ok", path)
				if !quiet {
					fmt.Fprintf(out, "%s: ok\n", path)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report files that fail")

	return cmd
}
