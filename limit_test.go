// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamltree_test

import (
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"go.yaml.in/yamltree"
	"go.yaml.in/yamltree/internal/testutil/assert"
	"go.yaml.in/yamltree/internal/testutil/datatest"
)

func TestLimits(t *testing.T) {
	datatest.RunTestCases(t, filepath.Join("testdata", "limit.yaml"), map[string]datatest.TestHandler{
		"limit-error": runLimitTest,
		"limit-pass":  runLimitTest,
	})
}

func runLimitTest(t *testing.T, tc map[string]any) {
	t.Helper()

	data, err := datatest.GenerateData(tc["data"])
	if err != nil {
		t.Fatalf("Failed to generate data: %v", err)
	}

	var opts []yamltree.Option
	if depth, ok := datatest.GetInt(tc, "max-depth"); ok {
		opts = append(opts, yamltree.WithMaxDepth(depth))
	}

	n, err := yamltree.Parse(string(data), opts...)
	if kind, ok := datatest.GetString(tc, "kind"); ok {
		var yerr *yamltree.Error
		assert.ErrorAs(t, err, &yerr)
		assert.Equal(t, kind, yerr.Kind.String())
		if want, ok := datatest.GetString(tc, "want"); ok {
			assert.Equal(t, want, err.Error())
		}
		return
	}
	assert.NoError(t, err)
	if depth, ok := datatest.GetInt(tc, "depth"); ok {
		assert.Equal(t, depth, yamltree.Depth(n))
	}
}

// Keep benchmark using hardcoded data for performance consistency
var limitTests = []struct {
	name string
	data string
}{
	{
		name: "1000kb of sequence items",
		data: strings.Repeat("- a\n", 1000*1024/4),
	},
	{
		name: "1000kb of flow sequence items",
		data: "[" + strings.Repeat("a,", 1000*1024/2-1) + "a]",
	},
	{
		name: "5000 nested flow mappings",
		data: strings.Repeat("{a: ", 5000) + "b" + strings.Repeat("}", 5000),
	},
	{
		name: "1000kb of distinct keys",
		data: distinctKeys(1000 * 1024 / 12),
	},
}

func distinctKeys(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString("k")
		b.WriteString(strconv.Itoa(i))
		b.WriteString(": v\n")
	}
	return b.String()
}

func BenchmarkParseLimits(b *testing.B) {
	for _, tc := range limitTests {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := yamltree.Parse(tc.data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
