// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package datatest runs table tests described in YAML files.
//
// A test file is a sequence of cases. Each case is written with its type as
// the only key:
//
//	- parse:
//	    name: plain scalar
//	    yaml: Hello World
//	    want: "=VAL :Hello World"
package datatest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// LoadYAMLFunc decodes a test file into generic values.
type LoadYAMLFunc func([]byte) (any, error)

// LoadYAML is the default LoadYAMLFunc.
func LoadYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// LoadTestCasesFromFile reads filename and returns its cases normalized
// to the {type: TYPE, ...} form. A nil loadYAML means LoadYAML.
func LoadTestCasesFromFile(filename string, loadYAML LoadYAMLFunc) ([]map[string]any, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if loadYAML == nil {
		loadYAML = LoadYAML
	}

	rawData, err := loadYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	rawCases, ok := rawData.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a sequence of cases, got %T", filename, rawData)
	}

	result := make([]map[string]any, 0, len(rawCases))
	for i, item := range rawCases {
		rawCase, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: case %d is %T, not a mapping", filename, i, item)
		}
		result = append(result, NormalizeTypeAsKey(rawCase))
	}
	return result, nil
}

// NormalizeTypeAsKey rewrites {TYPE: {fields...}} as {type: TYPE, fields...}.
// A "type" field inside the case is kept as "output_type". Maps of any
// other shape are returned unchanged.
func NormalizeTypeAsKey(itemMap map[string]any) map[string]any {
	if len(itemMap) != 1 {
		return itemMap
	}
	for key, value := range itemMap {
		subMap, ok := value.(map[string]any)
		if !ok || !IsTypeConstant(key) {
			return itemMap
		}
		newMap := map[string]any{"type": key}
		for k, v := range subMap {
			if k == "type" {
				newMap["output_type"] = v
			} else {
				newMap[k] = v
			}
		}
		return newMap
	}
	return itemMap
}

// IsTypeConstant reports whether s looks like a case type:
// UPPERCASE_WITH_UNDERSCORES or lowercase-with-hyphens.
func IsTypeConstant(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' || c == '-') {
			return false
		}
	}
	return true
}
