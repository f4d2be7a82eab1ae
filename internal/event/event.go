// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package event defines the structural parse events consumed by the loader
// and the [Source] that produces them from YAML text.
package event

import (
	"fmt"
	"strings"
)

// Mark holds the position of an event in the input.
//
// It has the same layout as tree.Position so the two convert directly.
type Mark struct {
	Index  int // Byte offset (0-indexed).
	Line   int // Line (1-indexed).
	Column int // Column in characters (1-indexed).
}

func (m Mark) String() string {
	if m.Line == 0 {
		return "<unknown position>"
	}
	return fmt.Sprintf("line %d, column %d", m.Line, m.Column)
}

type Type int8

// Event types.
const (
	// An empty event.
	NoEvent Type = iota

	StreamStart   // A STREAM-START event.
	StreamEnd     // A STREAM-END event.
	DocumentStart // A DOCUMENT-START event.
	DocumentEnd   // A DOCUMENT-END event.
	Alias         // An ALIAS event.
	Scalar        // A SCALAR event.
	SequenceStart // A SEQUENCE-START event.
	SequenceEnd   // A SEQUENCE-END event.
	MappingStart  // A MAPPING-START event.
	MappingEnd    // A MAPPING-END event.
)

var typeStrings = []string{
	NoEvent:       "none",
	StreamStart:   "stream start",
	StreamEnd:     "stream end",
	DocumentStart: "document start",
	DocumentEnd:   "document end",
	Alias:         "alias",
	Scalar:        "scalar",
	SequenceStart: "sequence start",
	SequenceEnd:   "sequence end",
	MappingStart:  "mapping start",
	MappingEnd:    "mapping end",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeStrings) {
		return fmt.Sprintf("unknown event %d", t)
	}
	return typeStrings[t]
}

// ScalarStyle is the lexical style reported for a scalar.
type ScalarStyle int8

// Scalar styles.
const (
	// No style was reported.
	AnyScalarStyle ScalarStyle = iota

	PlainScalarStyle        // The plain scalar style.
	SingleQuotedScalarStyle // The single-quoted scalar style.
	DoubleQuotedScalarStyle // The double-quoted scalar style.
	LiteralScalarStyle      // The literal scalar style.
	FoldedScalarStyle       // The folded scalar style.
)

// Event holds a single parse event.
type Event struct {
	// The event type.
	Type Type

	// Where the event starts.
	Mark Mark

	// The anchor name (for Scalar, SequenceStart, MappingStart), or the
	// referenced anchor (for Alias). Empty means no anchor.
	Anchor string

	// The explicit tag (for Scalar, SequenceStart, MappingStart). Empty
	// means the source carried no tag.
	Tag string

	// The scalar value (for Scalar).
	Value string

	// The scalar style (for Scalar).
	Style ScalarStyle

	// Whether the collection is written in flow style (for SequenceStart,
	// MappingStart).
	Flow bool

	// Whether the document start/end indicator is implicit (for
	// DocumentStart, DocumentEnd).
	Implicit bool
}

// Receiver consumes events in document order.
type Receiver interface {
	OnEvent(ev Event)
}

// ReceiverFunc adapts a function to a [Receiver].
type ReceiverFunc func(ev Event)

func (f ReceiverFunc) OnEvent(ev Event) { f(ev) }

// Recorder is a [Receiver] that keeps every event it sees.
type Recorder struct {
	Events []Event
}

func (r *Recorder) OnEvent(ev Event) {
	r.Events = append(r.Events, ev)
}

// String returns the recorded events in the notation of [Format], one per
// line.
func (r *Recorder) String() string {
	lines := make([]string, len(r.Events))
	for i, ev := range r.Events {
		lines[i] = Format(ev)
	}
	return strings.Join(lines, "\n")
}

var valueEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\t", `\t`,
)

// Format formats an event in the yaml-test-suite notation for debugging and
// testing purposes.
func Format(e Event) string {
	var b strings.Builder
	switch e.Type {
	case StreamStart:
		b.WriteString("+STR")
	case StreamEnd:
		b.WriteString("-STR")
	case DocumentStart:
		b.WriteString("+DOC")
		if !e.Implicit {
			b.WriteString(" ---")
		}
	case DocumentEnd:
		b.WriteString("-DOC")
		if !e.Implicit {
			b.WriteString(" ...")
		}
	case Alias:
		b.WriteString("=ALI *")
		b.WriteString(e.Anchor)
	case Scalar:
		b.WriteString("=VAL")
		writeProperties(&b, e)
		switch e.Style {
		case LiteralScalarStyle:
			b.WriteString(" |")
		case FoldedScalarStyle:
			b.WriteString(" >")
		case SingleQuotedScalarStyle:
			b.WriteString(" '")
		case DoubleQuotedScalarStyle:
			b.WriteString(` "`)
		default:
			b.WriteString(" :")
		}
		b.WriteString(valueEscaper.Replace(e.Value))
	case SequenceStart:
		b.WriteString("+SEQ")
		writeProperties(&b, e)
		if e.Flow {
			b.WriteString(" []")
		}
	case SequenceEnd:
		b.WriteString("-SEQ")
	case MappingStart:
		b.WriteString("+MAP")
		writeProperties(&b, e)
		if e.Flow {
			b.WriteString(" {}")
		}
	case MappingEnd:
		b.WriteString("-MAP")
	}
	return b.String()
}

func writeProperties(b *strings.Builder, e Event) {
	if e.Anchor != "" {
		b.WriteString(" &")
		b.WriteString(e.Anchor)
	}
	if e.Tag != "" {
		b.WriteString(" <")
		b.WriteString(e.Tag)
		b.WriteString(">")
	}
}
