// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package loader builds a document tree out of a parse event stream.
//
// The [Loader] is a stack machine. The top of its stack is the current state;
// the entries below it are the states that were current when each unfinished
// container was opened. Closing a container pops its parent back and folds
// the finished node into it.
package loader

import (
	"fmt"

	"go.yaml.in/yamltree/internal/event"
	"go.yaml.in/yamltree/internal/tree"
	"go.yaml.in/yamltree/option"
)

type stateKind int8

const (
	initialState stateKind = iota
	streamStartedState
	documentStartedState
	mapWaitForKeyState
	mapWaitForValueState
	sequenceWaitForValueState
	endDocumentState
	errorState
)

var stateStrings = []string{
	initialState:              "initial",
	streamStartedState:        "stream started",
	documentStartedState:      "document started",
	mapWaitForKeyState:        "map waiting for key",
	mapWaitForValueState:      "map waiting for value",
	sequenceWaitForValueState: "sequence waiting for value",
	endDocumentState:          "end document",
	errorState:                "error",
}

func (k stateKind) String() string {
	if k < 0 || int(k) >= len(stateStrings) {
		return fmt.Sprintf("unknown state %d", k)
	}
	return stateStrings[k]
}

// state is one entry of the loader stack. Which fields are set depends on
// kind.
type state struct {
	kind    stateKind
	mapping *tree.Map      // map states
	key     *tree.Scalar   // mapWaitForValueState
	seq     *tree.Sequence // sequenceWaitForValueState
	node    tree.Node      // endDocumentState
	err     *Error         // errorState
}

// Loader receives events and assembles the single document they describe.
//
// A Loader is used for one stream only. Once it records an error, every
// further event is ignored.
type Loader struct {
	stack    []state
	depth    int // unfinished containers
	maxDepth int
}

var _ event.Receiver = (*Loader)(nil)

// New returns a loader in its initial state.
func New(opts ...option.Option) *Loader {
	cfg := option.NewConfig(opts...)
	return &Loader{
		stack:    []state{{kind: initialState}},
		maxDepth: cfg.GetMaxDepth(),
	}
}

// OnEvent advances the loader by one event.
//
// It panics if the event can not occur in the current state, which means
// the event source broke its nesting or framing guarantees.
func (l *Loader) OnEvent(ev event.Event) {
	st := l.pop()
	if st.kind == errorState {
		l.push(st)
		return
	}
	next := l.next(st, ev)
	if next.kind == errorState {
		// The partial tree is discarded along with the suspended parents.
		l.stack = nil
		l.depth = 0
	}
	l.push(next)
}

// Depth returns the number of containers currently open.
func (l *Loader) Depth() int {
	return l.depth
}

// Result returns the completed document or the first error recorded. It
// consumes the loader.
//
// Result panics if the stream did not reach a complete document, which
// only happens when the event source stops before closing everything it
// opened.
func (l *Loader) Result() (tree.Node, error) {
	st := l.pop()
	switch st.kind {
	case endDocumentState:
		return st.node, nil
	case errorState:
		return nil, st.err
	}
	panic(fmt.Sprintf("internal error: loader finished in %s state (please report)", st.kind))
}

func (l *Loader) next(st state, ev event.Event) state {
	pos := tree.Position(ev.Mark)
	switch ev.Type {
	case event.NoEvent:
		return st
	case event.StreamStart:
		if st.kind != initialState {
			return unexpected(st, ev)
		}
		return state{kind: streamStartedState}
	case event.StreamEnd:
		if st.kind == streamStartedState {
			// Blank input is an empty plain scalar document.
			return state{kind: endDocumentState, node: tree.NewScalar("", pos, tree.PlainStyle)}
		}
		return failure(UnexpectedStreamEnd, pos)
	case event.DocumentStart:
		if st.kind != streamStartedState {
			return unexpected(st, ev)
		}
		return state{kind: documentStartedState}
	case event.DocumentEnd:
		if st.kind != endDocumentState {
			return unexpected(st, ev)
		}
		return st
	case event.Alias:
		return failure(AliasNotSupported, pos)
	case event.Scalar:
		return l.scalar(st, ev, pos)
	case event.SequenceStart, event.MappingStart:
		return l.startContainer(st, ev, pos)
	case event.SequenceEnd:
		if st.kind != sequenceWaitForValueState {
			return unexpected(st, ev)
		}
		return l.endContainer(st.seq)
	case event.MappingEnd:
		if st.kind != mapWaitForKeyState {
			return unexpected(st, ev)
		}
		return l.endContainer(st.mapping)
	}
	return unexpected(st, ev)
}

func (l *Loader) scalar(st state, ev event.Event, pos tree.Position) state {
	if ev.Anchor != "" {
		return failure(AnchorNotSupported, pos)
	}
	if ev.Tag != "" {
		return failure(TagsNotSupported, pos)
	}
	n := tree.NewScalar(ev.Value, pos, scalarStyle(ev.Style))
	switch st.kind {
	case mapWaitForKeyState:
		if st.mapping.ContainsKey(n.Value) {
			return state{kind: errorState, err: &Error{Kind: DuplicateKey, Pos: pos, Key: n.Value}}
		}
		return state{kind: mapWaitForValueState, mapping: st.mapping, key: n}
	case mapWaitForValueState, sequenceWaitForValueState, documentStartedState:
		return fold(st, n)
	}
	return unexpected(st, ev)
}

func (l *Loader) startContainer(st state, ev event.Event, pos tree.Position) state {
	if ev.Anchor != "" {
		return failure(AnchorNotSupported, pos)
	}
	switch st.kind {
	case documentStartedState, sequenceWaitForValueState, mapWaitForValueState:
	case mapWaitForKeyState:
		return failure(KeyNotScalar, pos)
	default:
		return unexpected(st, ev)
	}
	if l.maxDepth > 0 && l.depth >= l.maxDepth {
		return failure(DepthLimitExceeded, pos)
	}
	l.push(st)
	l.depth++
	if ev.Type == event.MappingStart {
		return state{kind: mapWaitForKeyState, mapping: tree.NewMap(pos)}
	}
	return state{kind: sequenceWaitForValueState, seq: tree.NewSequence(pos)}
}

func (l *Loader) endContainer(n tree.Node) state {
	parent := l.pop()
	l.depth--
	return fold(parent, n)
}

// fold hands a finished node to the state waiting for it.
func fold(parent state, n tree.Node) state {
	switch parent.kind {
	case documentStartedState:
		return state{kind: endDocumentState, node: n}
	case mapWaitForValueState:
		if !parent.mapping.Insert(parent.key, n) {
			panic("internal error: key inserted twice into mapping (please report)")
		}
		return state{kind: mapWaitForKeyState, mapping: parent.mapping}
	case sequenceWaitForValueState:
		parent.seq.Append(n)
		return parent
	}
	panic(fmt.Sprintf("internal error: cannot fold node into %s state (please report)", parent.kind))
}

func (l *Loader) push(st state) {
	l.stack = append(l.stack, st)
}

func (l *Loader) pop() state {
	if len(l.stack) == 0 {
		panic("internal error: loader state stack is empty (please report)")
	}
	st := l.stack[len(l.stack)-1]
	l.stack[len(l.stack)-1] = state{}
	l.stack = l.stack[:len(l.stack)-1]
	return st
}

func failure(kind ErrorKind, pos tree.Position) state {
	return state{kind: errorState, err: &Error{Kind: kind, Pos: pos}}
}

func unexpected(st state, ev event.Event) state {
	panic(fmt.Sprintf("internal error: unexpected %s event in %s state at %s (please report)", ev.Type, st.kind, ev.Mark))
}

// scalarStyle maps a reported style onto the tree styles. A scalar with no
// reported style is plain.
func scalarStyle(style event.ScalarStyle) tree.ScalarStyle {
	switch style {
	case event.SingleQuotedScalarStyle:
		return tree.SingleQuotedStyle
	case event.DoubleQuotedScalarStyle:
		return tree.DoubleQuotedStyle
	case event.LiteralScalarStyle:
		return tree.LiteralStyle
	case event.FoldedScalarStyle:
		return tree.FoldedStyle
	}
	return tree.PlainStyle
}
