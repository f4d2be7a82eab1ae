// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"strings"
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"go.yaml.in/yamltree"
)

const lsName = "yamltree"

// languageServer publishes the tree builder's errors as diagnostics for
// every open document. Documents are synchronized in full.
type languageServer struct {
	handler protocol.Handler
	server  *server.Server
	version string
	opts    []yamltree.Option

	mu   sync.Mutex
	docs map[protocol.DocumentUri]string
}

func newLanguageServer(version string, opts ...yamltree.Option) *languageServer {
	ls := &languageServer{
		version: version,
		opts:    opts,
		docs:    make(map[protocol.DocumentUri]string),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *languageServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *languageServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *languageServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("client initialized")
	return nil
}

func (ls *languageServer) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *languageServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *languageServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	version := protocol.UInteger(params.TextDocument.Version)
	ls.update(ctx, params.TextDocument.URI, &version, params.TextDocument.Text)
	return nil
}

func (ls *languageServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		log.Warningf("%s: ignoring incremental change", params.TextDocument.URI)
		return nil
	}
	version := protocol.UInteger(params.TextDocument.Version)
	ls.update(ctx, params.TextDocument.URI, &version, textChange.Text)
	return nil
}

func (ls *languageServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := params.TextDocument.URI
	if params.Text != nil {
		ls.update(ctx, uri, nil, *params.Text)
		return nil
	}

	// Clients may leave the text out; republish from the last synchronized
	// content.
	ls.mu.Lock()
	text, open := ls.docs[uri]
	ls.mu.Unlock()
	if !open {
		log.Warningf("%s: save for a document that is not open", uri)
		return nil
	}
	ls.update(ctx, uri, nil, text)
	return nil
}

func (ls *languageServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	ls.mu.Lock()
	delete(ls.docs, uri)
	ls.mu.Unlock()

	// Clear whatever the client still shows for the closed document.
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *languageServer) update(ctx *glsp.Context, uri protocol.DocumentUri, version *protocol.UInteger, text string) {
	ls.mu.Lock()
	ls.docs[uri] = text
	ls.mu.Unlock()

	diags := diagnostics(text, ls.opts...)
	log.Debugf("%s: %d diagnostics", uri, len(diags))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Version:     version,
		Diagnostics: diags,
	})
}

// diagnostics loads text and returns its error, if any, as a diagnostic.
// The result is never nil so that publishing it clears stale diagnostics.
func diagnostics(text string, opts ...yamltree.Option) []protocol.Diagnostic {
	_, err := yamltree.Parse(text, opts...)
	if err == nil {
		return []protocol.Diagnostic{}
	}

	message := strings.TrimPrefix(err.Error(), "yaml: ")
	d := protocol.Diagnostic{
		Severity: severityPtr(protocol.DiagnosticSeverityError),
		Source:   stringPtr(lsName),
		Message:  message,
	}
	var yerr *yamltree.Error
	if errors.As(err, &yerr) {
		d.Code = &protocol.IntegerOrString{Value: yerr.Kind.String()}
		d.Range = lspRange(text, yerr.Pos)
	}
	return []protocol.Diagnostic{d}
}

// lspRange returns the range of the character at pos, or an empty range at
// pos when it is at the end of its line.
func lspRange(text string, pos yamltree.Position) protocol.Range {
	line, prefix, ok := sourceLine(text, pos)
	if !ok {
		return protocol.Range{}
	}
	start := protocol.Position{
		Line:      protocol.UInteger(pos.Line - 1),
		Character: protocol.UInteger(utf16Len(prefix)),
	}
	end := start
	if r, size := utf8.DecodeRuneInString(line[len(prefix):]); size > 0 {
		end.Character += protocol.UInteger(utf16.RuneLen(r))
	}
	return protocol.Range{Start: start, End: end}
}

func boolPtr(b bool) *bool {
	return &b
}

func stringPtr(s string) *string {
	return &s
}

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
