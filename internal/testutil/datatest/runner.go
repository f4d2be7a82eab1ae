// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package datatest

import (
	"testing"
)

// TestHandler runs a single test case.
type TestHandler func(t *testing.T, tc map[string]any)

// TestRunner dispatches cases to the handler registered for their type.
type TestRunner struct {
	handlers map[string]TestHandler
}

// NewTestRunner creates a new test runner.
func NewTestRunner() *TestRunner {
	return &TestRunner{
		handlers: make(map[string]TestHandler),
	}
}

// RegisterHandler registers a handler for a specific test type.
func (r *TestRunner) RegisterHandler(testType string, handler TestHandler) {
	r.handlers[testType] = handler
}

// RunWithCases runs every case as a subtest named after its "name" field.
func (r *TestRunner) RunWithCases(t *testing.T, cases []map[string]any) {
	t.Helper()

	for _, tc := range cases {
		name, _ := tc["name"].(string)
		if name == "" {
			name = "unnamed"
		}

		testType, _ := tc["type"].(string)
		if testType == "" {
			t.Fatalf("Test case %q missing 'type' field", name)
		}

		t.Run(name, func(t *testing.T) {
			handler, ok := r.handlers[testType]
			if !ok {
				t.Fatalf("Unknown test type: %s", testType)
			}
			handler(t, tc)
		})
	}
}

// RunTestCases loads the cases of filename and runs them with handlers.
func RunTestCases(t *testing.T, filename string, handlers map[string]TestHandler) {
	t.Helper()

	cases, err := LoadTestCasesFromFile(filename, nil)
	if err != nil {
		t.Fatalf("Failed to load test cases: %v", err)
	}

	runner := NewTestRunner()
	for testType, handler := range handlers {
		runner.RegisterHandler(testType, handler)
	}
	runner.RunWithCases(t, cases)
}

// GetString extracts a string field from a test case map.
func GetString(tc map[string]any, key string) (string, bool) {
	val, ok := tc[key]
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// GetInt extracts an int field from a test case map.
func GetInt(tc map[string]any, key string) (int, bool) {
	val, ok := tc[key]
	if !ok {
		return 0, false
	}
	intVal, ok := val.(int)
	return intVal, ok
}

// RequireString extracts a string field, failing the test if not present.
func RequireString(t *testing.T, tc map[string]any, key string) string {
	t.Helper()
	val, ok := GetString(tc, key)
	if !ok {
		t.Fatalf("Required field %q missing or not a string", key)
	}
	return val
}

// Input returns the document text of a case. It is the "yaml" field, or
// the expansion of a "generate" field (see GenerateData).
func Input(t *testing.T, tc map[string]any) string {
	t.Helper()
	if s, ok := GetString(tc, "yaml"); ok {
		return s
	}
	gen, ok := tc["generate"]
	if !ok {
		t.Fatalf("case has neither 'yaml' nor 'generate'")
	}
	data, err := GenerateData(gen)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return string(data)
}
