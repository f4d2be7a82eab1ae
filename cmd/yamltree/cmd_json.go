// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"go.yaml.in/yamltree"
)

func newJSONCmd(g *globalFlags) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Print the document tree as JSON",
		Long: `Print the document tree of a YAML file as JSON. Mapping keys keep
their order and every scalar becomes a JSON string.

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

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetEscapeHTML(false)
			if pretty {
				encoder.SetIndent("", "  ")
			}
			if err := encoder.Encode(jsonNode{n}); err != nil {
				return fmt.Errorf("failed to encode JSON: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the output")

	return cmd
}

// jsonNode marshals a tree with mapping keys in document order.
type jsonNode struct {
	yamltree.Node
}

func (n jsonNode) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, n.Node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n yamltree.Node) error {
	switch n := n.(type) {
	case *yamltree.Scalar:
		return writeJSONString(buf, n.Value)
	case *yamltree.Sequence:
		buf.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *yamltree.Map:
		buf.WriteByte('{')
		for i, e := range n.Entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, e.Key.Value); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, e.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unexpected node %T", n)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode ends with a newline.
	return nil
}
