// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package yamltree builds position-annotated document trees from a
// restricted subset of YAML.
//
// A document is exactly one Node. Scalars keep their value, quoting style and
// position; sequences keep their order; maps keep insertion order and reject
// duplicate keys. Aliases, anchors and explicit scalar tags are rejected.
//
//	node, err := yamltree.Parse("name: demo\ntags: [a, b]\n")
//	if errors.Is(err, yamltree.DuplicateKey) {
//		...
//	}
//
// This file contains:
// - Options API (WithMaxDepth)
// - Error type and kind re-exports from internal/loader
// - Parse API (Parse, ParseReader)
package yamltree

import (
	"io"

	"go.yaml.in/yamltree/internal/loader"
	"go.yaml.in/yamltree/option"
)

//-----------------------------------------------------------------------------
// Options
//-----------------------------------------------------------------------------

// Option configures a parse.
type Option = option.Option

// WithMaxDepth limits how many containers may be open at once. Documents
// nested deeper fail with DepthLimitExceeded. Zero means no limit, which
// is the default.
var WithMaxDepth = option.WithMaxDepth

//-----------------------------------------------------------------------------
// Errors
//-----------------------------------------------------------------------------

type (
	// Error is returned for every rejected document. It carries the kind
	// of failure and the position where it was detected.
	// See internal/loader.Error.
	Error = loader.Error
	// ErrorKind classifies an Error. Each kind is itself an error, usable
	// as the target of errors.Is.
	ErrorKind = loader.ErrorKind
)

// Re-export ErrorKind constants
const (
	UnexpectedStreamEnd = loader.UnexpectedStreamEnd
	AliasNotSupported   = loader.AliasNotSupported
	AnchorNotSupported  = loader.AnchorNotSupported
	TagsNotSupported    = loader.TagsNotSupported
	KeyNotScalar        = loader.KeyNotScalar
	DuplicateKey        = loader.DuplicateKey
	ScanError           = loader.ScanError
	DepthLimitExceeded  = loader.DepthLimitExceeded
)

//-----------------------------------------------------------------------------
// Parse API
//-----------------------------------------------------------------------------

// Parse builds the document tree of text.
//
// Blank input yields an empty plain scalar. Only the first document of a
// stream is read. On failure the returned error is an *Error describing the
// first problem found; no partial tree is returned.
func Parse(text string, opts ...Option) (Node, error) {
	return loader.Parse(text, opts...)
}

// ParseReader is like Parse but reads the document from r.
func ParseReader(r io.Reader, opts ...Option) (Node, error) {
	return loader.ParseReader(r, opts...)
}
