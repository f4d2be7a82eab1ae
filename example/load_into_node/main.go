// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"go.yaml.in/yamltree"
)

func main() {
	fmt.Println("Example: Load into a document tree")

	yamlData := `# Application configuration
name: myapp
version: 1.0.0

# Server settings
server:
  host: localhost
  port: 8080
  debug: "true"

# List of enabled features
features:
  - auth
  - logging
  - metrics
`

	node, err := yamltree.Parse(yamlData)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Root node kind: %v at %s\n", node.Kind(), node.Pos())
	fmt.Printf("Nesting depth: %d\n\n", yamltree.Depth(node))

	fmt.Println("Nodes with their positions:")
	walk(node, 0)
}

func walk(n yamltree.Node, indent int) {
	pad := strings.Repeat("  ", indent)
	switch n := n.(type) {
	case *yamltree.Scalar:
		fmt.Printf("%s%q (%v) at %s\n", pad, n.Value, n.Style, n.Position)
	case *yamltree.Sequence:
		fmt.Printf("%ssequence of %d at %s\n", pad, n.Len(), n.Position)
		for _, item := range n.Items {
			walk(item, indent+1)
		}
	case *yamltree.Map:
		fmt.Printf("%smap of %d at %s\n", pad, n.Len(), n.Position)
		for _, e := range n.Entries {
			fmt.Printf("%s  %s:\n", pad, e.Key.Value)
			walk(e.Value, indent+2)
		}
	}
}
