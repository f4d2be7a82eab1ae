// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamltree

import "go.yaml.in/yamltree/internal/tree"

//-----------------------------------------------------------------------------
// Node-related type aliases and constants
//-----------------------------------------------------------------------------

type (
	// Node is a document tree node: a *Scalar, a *Sequence or a *Map.
	// See internal/tree.Node.
	Node = tree.Node
	// Scalar is a leaf value with its quoting style.
	// See internal/tree.Scalar.
	Scalar = tree.Scalar
	// Sequence is an ordered list of nodes.
	// See internal/tree.Sequence.
	Sequence = tree.Sequence
	// Map is an insertion-ordered mapping with unique scalar keys.
	// See internal/tree.Map.
	Map = tree.Map
	// Entry is a key/value pair of a Map.
	Entry = tree.Entry
	// Position is the source location of a node.
	Position = tree.Position
	// ScalarStyle is the quoting style of a scalar.
	ScalarStyle = tree.ScalarStyle
	// Kind identifies the variant of a Node.
	Kind = tree.Kind
)

// Re-export Kind constants
const (
	ScalarKind   = tree.ScalarKind
	SequenceKind = tree.SequenceKind
	MapKind      = tree.MapKind
)

// Re-export ScalarStyle constants
const (
	PlainStyle        = tree.PlainStyle
	SingleQuotedStyle = tree.SingleQuotedStyle
	DoubleQuotedStyle = tree.DoubleQuotedStyle
	LiteralStyle      = tree.LiteralStyle
	FoldedStyle       = tree.FoldedStyle
)

// Format renders n in the yaml-test-suite event notation, one node per line.
func Format(n Node) string {
	return tree.Format(n)
}

// Depth returns the number of nested containers on the deepest path of n.
func Depth(n Node) int {
	return tree.Depth(n)
}
