// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"fmt"
	"strings"

	"go.yaml.in/yamltree/internal/tree"
)

// ErrorKind classifies an [Error].
//
// ErrorKind implements error so that callers can test a returned error
// with errors.Is(err, DuplicateKey).
type ErrorKind int

// Error kinds.
const (
	_ ErrorKind = iota

	UnexpectedStreamEnd // The stream ended before a document was complete.
	AliasNotSupported   // An alias was referenced.
	AnchorNotSupported  // A node carried an anchor.
	TagsNotSupported    // A scalar carried an explicit tag.
	KeyNotScalar        // A mapping key was a sequence or a mapping.
	DuplicateKey        // A mapping key was already present in its mapping.
	ScanError           // The input is not well-formed YAML.
	DepthLimitExceeded  // Containers were nested deeper than allowed.
)

var kindMessages = []string{
	UnexpectedStreamEnd: "unexpected end of stream",
	AliasNotSupported:   "aliases are not supported",
	AnchorNotSupported:  "anchors are not supported",
	TagsNotSupported:    "tags are not supported",
	KeyNotScalar:        "mapping key is not a scalar",
	DuplicateKey:        "duplicate mapping key",
	ScanError:           "scan error",
	DepthLimitExceeded:  "maximum nesting depth exceeded",
}

var kindNames = []string{
	UnexpectedStreamEnd: "UnexpectedStreamEnd",
	AliasNotSupported:   "AliasNotSupported",
	AnchorNotSupported:  "AnchorNotSupported",
	TagsNotSupported:    "TagsNotSupported",
	KeyNotScalar:        "KeyNotScalar",
	DuplicateKey:        "DuplicateKey",
	ScanError:           "ScanError",
	DepthLimitExceeded:  "DepthLimitExceeded",
}

// String returns the name of the kind, e.g. "DuplicateKey".
func (k ErrorKind) String() string {
	if k <= 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindNames[k]
}

// Error returns the generic message of the kind.
func (k ErrorKind) Error() string {
	if k <= 0 || int(k) >= len(kindMessages) {
		return fmt.Sprintf("yaml: unknown error kind %d", int(k))
	}
	return "yaml: " + kindMessages[k]
}

// Error is the error returned for a document the loader rejects. It carries
// the position of the event that triggered it.
type Error struct {
	Kind ErrorKind
	Pos  tree.Position

	// Key is the offending key text (for DuplicateKey).
	Key string

	// Err is the underlying failure (for ScanError).
	Err error
}

func (e *Error) Error() string {
	if e.Kind == ScanError && e.Err != nil {
		return e.Err.Error()
	}
	var b strings.Builder
	b.WriteString("yaml: ")
	if e.Pos.Line != 0 {
		fmt.Fprintf(&b, "%s: ", e.Pos)
	}
	if int(e.Kind) > 0 && int(e.Kind) < len(kindMessages) {
		b.WriteString(kindMessages[e.Kind])
	} else {
		fmt.Fprintf(&b, "unknown error kind %d", int(e.Kind))
	}
	if e.Kind == DuplicateKey {
		fmt.Fprintf(&b, " %q", e.Key)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}
