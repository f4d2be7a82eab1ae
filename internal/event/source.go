// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Event source: replays a composed YAML document as a parse event stream.

package event

import (
	"regexp"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ScanError is returned by [Source.Emit] when the input is not well-formed
// YAML. No event is emitted in that case.
type ScanError struct {
	Mark Mark
	Err  error
}

func (e *ScanError) Error() string {
	return e.Err.Error()
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Source produces the events of the first document of a YAML text.
//
// The stream has the framing of a single-document load:
//
//	+STR -STR               (no document in the input)
//	+STR +DOC ... -DOC      (otherwise; no stream end follows the document)
//
// Closing events carry the mark of the event that opened them.
type Source struct {
	text  string
	lines *lineIndex
}

// NewSource returns a source reading text.
func NewSource(text string) *Source {
	return &Source{text: text, lines: newLineIndex(text)}
}

// Emit composes the input and delivers its events to r in document order.
func (s *Source) Emit(r Receiver) error {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(s.text), &root); err != nil {
		return s.scanError(err)
	}

	r.OnEvent(Event{Type: StreamStart, Mark: s.lines.mark(1, 1)})
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		// Happens for empty, blank and comment-only input.
		r.OnEvent(Event{Type: StreamEnd, Mark: s.lines.end()})
		return nil
	}

	docMark := s.lines.mark(root.Line, root.Column)
	r.OnEvent(Event{
		Type:     DocumentStart,
		Mark:     docMark,
		Implicit: !strings.HasPrefix(s.text[docMark.Index:], "---"),
	})
	s.walk(root.Content[0], r)
	r.OnEvent(Event{Type: DocumentEnd, Mark: docMark, Implicit: true})
	return nil
}

func (s *Source) walk(n *yaml.Node, r Receiver) {
	mark := s.lines.mark(n.Line, n.Column)
	switch n.Kind {
	case yaml.AliasNode:
		r.OnEvent(Event{Type: Alias, Mark: mark, Anchor: n.Value})
	case yaml.ScalarNode:
		r.OnEvent(Event{
			Type:   Scalar,
			Mark:   mark,
			Anchor: n.Anchor,
			Tag:    explicitTag(n),
			Value:  n.Value,
			Style:  scalarStyle(n.Style),
		})
	case yaml.SequenceNode:
		r.OnEvent(Event{
			Type:   SequenceStart,
			Mark:   mark,
			Anchor: n.Anchor,
			Tag:    explicitTag(n),
			Flow:   n.Style&yaml.FlowStyle != 0,
		})
		for _, child := range n.Content {
			s.walk(child, r)
		}
		r.OnEvent(Event{Type: SequenceEnd, Mark: mark})
	case yaml.MappingNode:
		r.OnEvent(Event{
			Type:   MappingStart,
			Mark:   mark,
			Anchor: n.Anchor,
			Tag:    explicitTag(n),
			Flow:   n.Style&yaml.FlowStyle != 0,
		})
		for _, child := range n.Content {
			s.walk(child, r)
		}
		r.OnEvent(Event{Type: MappingEnd, Mark: mark})
	default:
		panic("internal error: unexpected node kind in document content (please report)")
	}
}

// explicitTag returns the tag of n if it was written in the source. The
// composer resolves implicit tags for every node; only TaggedStyle tells
// them apart.
func explicitTag(n *yaml.Node) string {
	if n.Style&yaml.TaggedStyle == 0 {
		return ""
	}
	return n.Tag
}

func scalarStyle(style yaml.Style) ScalarStyle {
	switch {
	case style&yaml.DoubleQuotedStyle != 0:
		return DoubleQuotedScalarStyle
	case style&yaml.SingleQuotedStyle != 0:
		return SingleQuotedScalarStyle
	case style&yaml.LiteralStyle != 0:
		return LiteralScalarStyle
	case style&yaml.FoldedStyle != 0:
		return FoldedScalarStyle
	}
	return PlainScalarStyle
}

var (
	errorLine = regexp.MustCompile(`^yaml: line (\d+):`)
	// Composer failures that refer to no source location.
	unlocatedError = regexp.MustCompile(`^yaml: (unknown anchor|anchor '.*' value contains itself)`)
)

// scanError attaches a mark to a composer failure. The composer only reports
// the line, so the mark points at its first character. Failures on the first
// line carry no line prefix at all.
func (s *Source) scanError(err error) error {
	var mark Mark
	msg := err.Error()
	if m := errorLine.FindStringSubmatch(msg); m != nil {
		if line, convErr := strconv.Atoi(m[1]); convErr == nil {
			mark = s.lines.mark(line, 1)
		}
	} else if strings.HasPrefix(msg, "yaml: ") && !unlocatedError.MatchString(msg) {
		mark = s.lines.mark(1, 1)
	}
	return &ScanError{Mark: mark, Err: err}
}
