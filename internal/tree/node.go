// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package tree defines the document tree produced by the loader.
//
// A document is exactly one [Node]. Every node carries the [Position] of the
// event that started it. Containers own their children; there is no sharing
// between subtrees.
package tree

import (
	"fmt"
	"strings"
)

// Position holds the source location of a node. Sequences and maps take
// the position of their opening event, not the end of their content as some
// other YAML loaders report.
type Position struct {
	Index  int // Byte offset into the input (0-indexed).
	Line   int // Line (1-indexed).
	Column int // Column in characters (1-indexed).
}

func (p Position) String() string {
	if p.Line == 0 {
		return "<unknown position>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "line %d", p.Line)
	if p.Column != 0 {
		fmt.Fprintf(&b, ", column %d", p.Column)
	}
	return b.String()
}

// ScalarStyle is the quoting style a scalar was written in.
type ScalarStyle int8

// Scalar styles.
const (
	PlainStyle ScalarStyle = iota
	SingleQuotedStyle
	DoubleQuotedStyle
	LiteralStyle
	FoldedStyle
)

var styleStrings = []string{
	PlainStyle:        "Plain",
	SingleQuotedStyle: "Single",
	DoubleQuotedStyle: "Double",
	LiteralStyle:      "Literal",
	FoldedStyle:       "Folded",
}

func (s ScalarStyle) String() string {
	if s < 0 || int(s) >= len(styleStrings) {
		return fmt.Sprintf("ScalarStyle(%d)", s)
	}
	return styleStrings[s]
}

// Kind identifies the variant of a [Node].
type Kind int8

// Node kinds.
const (
	ScalarKind Kind = iota + 1
	SequenceKind
	MapKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "Scalar"
	case SequenceKind:
		return "Sequence"
	case MapKind:
		return "Map"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Node is one of [*Scalar], [*Sequence] or [*Map].
type Node interface {
	Kind() Kind
	Pos() Position
	node()
}

// Scalar is a leaf value.
type Scalar struct {
	Value    string
	Position Position
	Style    ScalarStyle
}

// NewScalar returns a scalar node.
func NewScalar(value string, pos Position, style ScalarStyle) *Scalar {
	return &Scalar{Value: value, Position: pos, Style: style}
}

func (*Scalar) Kind() Kind       { return ScalarKind }
func (s *Scalar) Pos() Position  { return s.Position }
func (*Scalar) node()            {}
func (s *Scalar) String() string { return s.Value }

// Sequence is an ordered list of nodes.
type Sequence struct {
	Items    []Node
	Position Position
}

// NewSequence returns an empty sequence node.
func NewSequence(pos Position) *Sequence {
	return &Sequence{Position: pos}
}

func (*Sequence) Kind() Kind      { return SequenceKind }
func (s *Sequence) Pos() Position { return s.Position }
func (*Sequence) node()           {}

// Append adds n at the end of the sequence.
func (s *Sequence) Append(n Node) {
	s.Items = append(s.Items, n)
}

// Len returns the number of items.
func (s *Sequence) Len() int { return len(s.Items) }
