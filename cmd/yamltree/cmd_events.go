// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go.yaml.in/yamltree/internal/event"
)

func newEventsCmd() *cobra.Command {
	var positions bool

	cmd := &cobra.Command{
		Use:   "events [file]",
		Short: "Print the parse events of a YAML file",
		Long: `Print the events the tree builder receives for a YAML file, in
yaml-test-suite notation.

If no file is provided, reads YAML from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var b strings.Builder
			err = event.NewSource(text).Emit(event.ReceiverFunc(func(ev event.Event) {
				b.WriteString(event.Format(ev))
				if positions {
					fmt.Fprintf(&b, " @%d:%d", ev.Mark.Line, ev.Mark.Column)
				}
				b.WriteByte('\n')
			}))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}

	cmd.Flags().BoolVarP(&positions, "positions", "p", false, "append the line and column of each event")

	return cmd
}
