// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Tree rendering in the yaml-test-suite event notation.

package tree

import "strings"

var valueEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\t", `\t`,
)

// Format renders n one node per line, using the notation of the
// yaml-test-suite event files:
//
//	+MAP
//	=VAL :key
//	+SEQ
//	=VAL 'quoted
//	-SEQ
//	-MAP
//
// The output has no trailing newline.
func Format(n Node) string {
	var b strings.Builder
	format(&b, n)
	return strings.TrimSuffix(b.String(), "\n")
}

func format(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Scalar:
		b.WriteString("=VAL ")
		b.WriteString(StyleIndicator(n.Style))
		b.WriteString(valueEscaper.Replace(n.Value))
		b.WriteByte('\n')
	case *Sequence:
		b.WriteString("+SEQ\n")
		for _, item := range n.Items {
			format(b, item)
		}
		b.WriteString("-SEQ\n")
	case *Map:
		b.WriteString("+MAP\n")
		for _, e := range n.Entries {
			format(b, e.Key)
			format(b, e.Value)
		}
		b.WriteString("-MAP\n")
	}
}

// StyleIndicator returns the one-character prefix used for a scalar style in
// the event notation.
func StyleIndicator(style ScalarStyle) string {
	switch style {
	case SingleQuotedStyle:
		return "'"
	case DoubleQuotedStyle:
		return `"`
	case LiteralStyle:
		return "|"
	case FoldedStyle:
		return ">"
	default:
		return ":"
	}
}

// Depth returns the number of nested containers on the deepest path of n.
// A scalar has depth 0.
func Depth(n Node) int {
	depth := 0
	switch n := n.(type) {
	case *Sequence:
		for _, item := range n.Items {
			depth = max(depth, Depth(item))
		}
		return depth + 1
	case *Map:
		for _, e := range n.Entries {
			depth = max(depth, Depth(e.Value))
		}
		return depth + 1
	}
	return depth
}
