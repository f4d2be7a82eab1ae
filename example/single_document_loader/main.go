// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"

	"go.yaml.in/yamltree"
)

func main() {
	fmt.Println("Example: Only the first document is loaded")

	multiDoc := `---
name: app1
version: 1.0.0
---
name: app2
version: 2.0.0
`

	node, err := yamltree.Parse(multiDoc)
	if err != nil {
		panic(err)
	}
	fmt.Println(yamltree.Format(node))

	fmt.Println("\nExample: Rejected documents")

	inputs := []string{
		"name: app1\nname: app2\n",
		"base: &base {a: 1}\ncopy: *base\n",
		"count: !!int 3\n",
		"? [a, b]\n: pair\n",
	}
	for _, in := range inputs {
		_, err := yamltree.Parse(in)
		var yerr *yamltree.Error
		if errors.As(err, &yerr) {
			fmt.Printf("%-20s %v\n", yerr.Kind, err)
		}
	}
}
