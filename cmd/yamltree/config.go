// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strconv"

	"go.yaml.in/yamltree"
)

// config holds the settings a --config file may provide.
type config struct {
	MaxDepth int
}

func defaultConfig() config {
	return config{}
}

// loadConfig reads a config file. The file is a YAML mapping and is itself
// loaded with yamltree, so it follows the same rules as any other input.
//
//	max-depth: 64
func loadConfig(path string) (config, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("read config: %w", err)
	}
	n, err := yamltree.Parse(string(in))
	if err != nil {
		return config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return parseConfig(path, n)
}

func parseConfig(path string, n yamltree.Node) (config, error) {
	cfg := defaultConfig()
	switch n := n.(type) {
	case *yamltree.Scalar:
		if n.Value == "" {
			return cfg, nil
		}
	case *yamltree.Map:
		for _, e := range n.Entries {
			switch e.Key.Value {
			case "max-depth":
				v, ok := e.Value.(*yamltree.Scalar)
				if !ok {
					return config{}, fmt.Errorf("config %s: %s: max-depth must be an integer", path, e.Key.Position)
				}
				depth, err := strconv.Atoi(v.Value)
				if err != nil || depth < 0 {
					return config{}, fmt.Errorf("config %s: %s: max-depth must be a non-negative integer, got %q", path, v.Position, v.Value)
				}
				cfg.MaxDepth = depth
			default:
				return config{}, fmt.Errorf("config %s: %s: field %s not found", path, e.Key.Position, e.Key.Value)
			}
		}
		return cfg, nil
	}
	return config{}, fmt.Errorf("config %s: %s: expected a mapping", path, n.Pos())
}
