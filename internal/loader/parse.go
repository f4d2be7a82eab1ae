// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yamltree/internal/event"
	"go.yaml.in/yamltree/internal/tree"
	"go.yaml.in/yamltree/option"
)

// Parse builds the document tree of text.
//
// Blank input yields an empty plain scalar. Only the first document of a
// multi-document stream is read. Every failure is returned as an *Error.
func Parse(text string, opts ...option.Option) (tree.Node, error) {
	l := New(opts...)
	if err := event.NewSource(text).Emit(l); err != nil {
		var se *event.ScanError
		if errors.As(err, &se) {
			return nil, &Error{Kind: ScanError, Pos: tree.Position(se.Mark), Err: se.Err}
		}
		return nil, &Error{Kind: ScanError, Err: err}
	}
	return l.Result()
}

// ParseReader reads r to the end and builds the document tree of its
// content.
func ParseReader(r io.Reader, opts ...option.Option) (tree.Node, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("yaml: read input: %w", err)
	}
	return Parse(string(in), opts...)
}
