// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"go.yaml.in/yamltree"
	"go.yaml.in/yamltree/internal/testutil/assert"
)

// run executes the yamltree command in-process and returns what it wrote to
// stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTreeStdin(t *testing.T) {
	out, err := run(t, "a: [b]\n", "tree")
	assert.NoError(t, err)
	assert.Equal(t, "+MAP\n=VAL :a\n+SEQ\n=VAL :b\n-SEQ\n-MAP\n", out)
}

func TestTreeFile(t *testing.T) {
	out, err := run(t, "", "tree", filepath.Join("testdata", "good.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, "+MAP\n=VAL :name\n=VAL :demo\n=VAL :ports\n+SEQ\n=VAL :80\n=VAL :443\n-SEQ\n-MAP\n", out)
}

func TestTreeError(t *testing.T) {
	_, err := run(t, "", "tree", filepath.Join("testdata", "dup.yaml"))
	assert.ErrorIs(t, err, yamltree.DuplicateKey)
	assert.ErrorMatches(t, `^testdata/dup.yaml: yaml: line 3, column 1: duplicate mapping key "name"$`, err)
}

func TestTreeMissingFile(t *testing.T) {
	_, err := run(t, "", "tree", filepath.Join("testdata", "missing.yaml"))
	assert.ErrorMatches(t, `^read file: `, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEvents(t *testing.T) {
	out, err := run(t, "a: b\n", "events")
	assert.NoError(t, err)
	assert.Equal(t, "+STR\n+DOC\n+MAP\n=VAL :a\n=VAL :b\n-MAP\n-DOC\n", out)

	out, err = run(t, "- &x 'y'\n", "events", "--positions")
	assert.NoError(t, err)
	assert.Equal(t, "+STR @1:1\n+DOC @1:1\n+SEQ @1:1\n=VAL &x 'y @1:3\n-SEQ @1:1\n-DOC @1:1\n", out)

	out, err = run(t, "", "events")
	assert.NoError(t, err)
	assert.Equal(t, "+STR\n-STR\n", out)
}

func TestJSON(t *testing.T) {
	out, err := run(t, "{b: [1, 'x'], a: {}, c: \"<&>\"}", "json")
	assert.NoError(t, err)
	assert.Equal(t, `{"b":["1","x"],"a":{},"c":"<&>"}`+"\n", out)

	out, err = run(t, "b: [1]\na: {}\n", "json", "--pretty")
	assert.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": [\n    \"1\"\n  ],\n  \"a\": {}\n}\n", out)

	out, err = run(t, "", "json")
	assert.NoError(t, err)
	assert.Equal(t, "\"\"\n", out)
}

func TestCheck(t *testing.T) {
	good := filepath.Join("testdata", "good.yaml")
	dup := filepath.Join("testdata", "dup.yaml")
	out, err := run(t, "", "check", good, dup)
	assert.ErrorMatches(t, `^1 of 2 files failed$`, err)
	want := `testdata/good.yaml: ok
testdata/dup.yaml: yaml: line 3, column 1: duplicate mapping key "name"
 3 | name: again
   | ^
`
	assert.Equal(t, want, out)

	out, err = run(t, "", "check", "-q", good)
	assert.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestCheckCaretColumn(t *testing.T) {
	tests := []struct {
		name    string
		content string
		snippet string
		caret   string
	}{{
		name:    "tab",
		content: "[\"a\tb\", &x c]\n",
		snippet: " 1 | [\"a b\", &x c]\n",
		caret:   "   |         ^\n",
	}, {
		name:    "wide",
		content: "キー: &a b\n",
		snippet: " 1 | キー: &a b\n",
		caret:   "   |       ^\n",
	}, {
		name:    "second line",
		content: "a: 1\nb: !!str 2\n",
		snippet: " 2 | b: !!str 2\n",
		caret:   "   |    ^\n",
	}, {
		name:    "first line syntax error",
		content: "a: b: c\n",
		snippet: " 1 | a: b: c\n",
		caret:   "   | ^\n",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "input.yaml", tt.content)
			out, err := run(t, "", "check", path)
			assert.NotNil(t, err)
			assert.Truef(t, strings.Contains(out, tt.snippet+tt.caret), "output:\n%s", out)
		})
	}
}

func TestCheckWithoutPosition(t *testing.T) {
	path := writeFile(t, "alias.yaml", "*nowhere\n")
	out, err := run(t, "", "check", path)
	assert.NotNil(t, err)
	assert.Equal(t, path+": yaml: unknown anchor 'nowhere' referenced\n", out)
}

func TestConfig(t *testing.T) {
	cfg := filepath.Join("testdata", "depth-config.yaml")
	_, err := run(t, "[[a]]", "tree", "--config", cfg)
	assert.ErrorIs(t, err, yamltree.DepthLimitExceeded)

	out, err := run(t, "[[a]]", "tree", "--config", cfg, "--max-depth", "0")
	assert.NoError(t, err)
	assert.Equal(t, "+SEQ\n+SEQ\n=VAL :a\n-SEQ\n-SEQ\n", out)

	_, err = run(t, "[[a]]", "tree", "--max-depth", "1")
	assert.ErrorIs(t, err, yamltree.DepthLimitExceeded)
}

func TestConfigErrors(t *testing.T) {
	_, err := run(t, "a", "tree", "--config", filepath.Join("testdata", "bad-config.yaml"))
	assert.ErrorMatches(t, `line 2, column 1: field colour not found`, err)

	path := writeFile(t, "config.yaml", "max-depth: deep\n")
	_, err = run(t, "a", "tree", "--config", path)
	assert.ErrorMatches(t, `max-depth must be a non-negative integer, got "deep"`, err)

	path = writeFile(t, "config.yaml", "max-depth: 1\nmax-depth: 2\n")
	_, err = run(t, "a", "tree", "--config", path)
	assert.ErrorIs(t, err, yamltree.DuplicateKey)

	path = writeFile(t, "config.yaml", "- max-depth\n")
	_, err = run(t, "a", "tree", "--config", path)
	assert.ErrorMatches(t, `expected a mapping`, err)

	path = writeFile(t, "config.yaml", "")
	_, err = run(t, "a", "tree", "--config", path)
	assert.NoError(t, err)
}

func TestDiagnostics(t *testing.T) {
	assert.Equal(t, 0, len(diagnostics("a: 1\nb: 2\n")))
	assert.NotNil(t, diagnostics("a: 1\n"))

	diags := diagnostics("a: 1\na: 2\n")
	assert.Equal(t, 1, len(diags))
	d := diags[0]
	assert.Equal(t, `line 2, column 1: duplicate mapping key "a"`, d.Message)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Equal(t, "yamltree", *d.Source)
	assert.Equal(t, "DuplicateKey", d.Code.Value)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 0},
		End:   protocol.Position{Line: 1, Character: 1},
	}, d.Range)
}

func TestDiagnosticsUTF16(t *testing.T) {
	diags := diagnostics("x: [😀, &a b]\n")
	assert.Equal(t, 1, len(diags))
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 0, Character: 8},
		End:   protocol.Position{Line: 0, Character: 9},
	}, diags[0].Range)
}

func TestDiagnosticsMaxDepth(t *testing.T) {
	assert.Equal(t, 0, len(diagnostics("[[a]]")))
	diags := diagnostics("[[a]]", yamltree.WithMaxDepth(1))
	assert.Equal(t, 1, len(diags))
	assert.Equal(t, "DepthLimitExceeded", diags[0].Code.Value)
}

type notification struct {
	method string
	params protocol.PublishDiagnosticsParams
}

func TestLanguageServerDocuments(t *testing.T) {
	ls := newLanguageServer("test")
	var sent []notification
	ctx := &glsp.Context{Notify: func(method string, params any) {
		sent = append(sent, notification{method, params.(protocol.PublishDiagnosticsParams)})
	}}

	const uri = "file:///tmp/doc.yaml"
	assert.NoError(t, ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "yaml", Version: 1, Text: "a: &x 1\n"},
	}))
	assert.Equal(t, 1, len(sent))
	assert.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, sent[0].method)
	assert.Equal(t, protocol.DocumentUri(uri), sent[0].params.URI)
	assert.Equal(t, protocol.UInteger(1), *sent[0].params.Version)
	assert.Equal(t, 1, len(sent[0].params.Diagnostics))

	change := &protocol.DidChangeTextDocumentParams{
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "a: 1\n"}},
	}
	change.TextDocument.URI = uri
	change.TextDocument.Version = 2
	assert.NoError(t, ls.textDocumentDidChange(ctx, change))
	assert.Equal(t, 2, len(sent))
	assert.Equal(t, 0, len(sent[1].params.Diagnostics))
	assert.Equal(t, "a: 1\n", ls.docs[uri])

	assert.NoError(t, ls.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	assert.Equal(t, 3, len(sent))
	assert.Equal(t, 0, len(sent[2].params.Diagnostics))
	_, open := ls.docs[uri]
	assert.False(t, open)
}

func TestLanguageServerSaveWithoutText(t *testing.T) {
	ls := newLanguageServer("test")
	var sent []notification
	ctx := &glsp.Context{Notify: func(method string, params any) {
		sent = append(sent, notification{method, params.(protocol.PublishDiagnosticsParams)})
	}}

	const uri = "file:///tmp/saved.yaml"
	assert.NoError(t, ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "yaml", Version: 1, Text: "a: b: c\n"},
	}))
	assert.Equal(t, 1, len(sent))

	assert.NoError(t, ls.textDocumentDidSave(ctx, &protocol.DidSaveTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	assert.Equal(t, 2, len(sent))
	assert.IsNil(t, sent[1].params.Version)
	assert.Equal(t, 1, len(sent[1].params.Diagnostics))
	assert.Equal(t, "ScanError", sent[1].params.Diagnostics[0].Code.Value)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 0, Character: 1},
	}, sent[1].params.Diagnostics[0].Range)

	// Unknown documents are ignored.
	assert.NoError(t, ls.textDocumentDidSave(ctx, &protocol.DidSaveTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///tmp/other.yaml"},
	}))
	assert.Equal(t, 2, len(sent))
}
