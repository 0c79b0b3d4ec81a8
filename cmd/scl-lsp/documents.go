package main

import (
	"context"
	"sync"

	"github.com/go-logr/logr"
	"github.com/signadot/scl-format/ir"
	"github.com/signadot/scl-format/parse"
	"github.com/signadot/scl-format/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an immutable snapshot of an open file.
type document struct {
	uri       string
	content   string
	version   int32
	node      *ir.Node
	positions map[*ir.Node]*token.Pos
	err       error
}

func newDocument(uri, content string, version int32) *document {
	positions := make(map[*ir.Node]*token.Pos)
	node, err := parse.Parse([]byte(content), parse.ParseComments(true), parse.ParsePositions(positions))
	return &document{
		uri:       uri,
		content:   content,
		version:   version,
		node:      node,
		positions: positions,
		err:       err,
	}
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if old := ds.docs[uri]; old != nil && old.version > version {
		return old
	}
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	return s.publishDiagnostics(ctx, doc)
}

// DidChange takes the last change as the full text: the server registers
// for full document sync.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc := s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	return s.publishDiagnostics(ctx, doc)
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.remove(uri)
	logr.FromContextOrDiscard(ctx).V(1).Info("closed", "uri", uri)
	// clear any diagnostics left in the client
	return s.notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
}

func (s *Server) notify(ctx context.Context, method string, params interface{}) error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Notify(ctx, method, params)
}
