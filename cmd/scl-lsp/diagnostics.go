package main

import (
	"context"
	"errors"

	"github.com/go-logr/logr"
	"github.com/signadot/scl-format/parse"
	"github.com/signadot/scl-format/token"
	"go.lsp.dev/protocol"
)

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) error {
	diags := diagnostics(doc)
	logr.FromContextOrDiscard(ctx).V(1).Info("diagnostics", "uri", doc.uri, "version", doc.version, "count", len(diags))
	return s.notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Version:     uint32(max(doc.version, 0)),
		Diagnostics: diags,
	})
}

// diagnostics reports the document's parse error, if any, at the
// position carried by the error.
func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err == nil {
		return res
	}
	msg := doc.err.Error()
	off := -1
	var (
		tErr *token.TokenizeErr
		pErr *parse.ParseErr
	)
	switch {
	case errors.As(doc.err, &tErr):
		off = tErr.Pos.I
		msg = tErr.Err.Error()
	case errors.As(doc.err, &pErr):
		off = pErr.Pos.I
		msg = pErr.Err.Error()
	}
	var rng protocol.Range
	if off >= 0 {
		start := toPosition(doc.content, off)
		end := start
		if off < len(doc.content) && doc.content[off] != '\n' {
			end.Character++
		}
		rng = protocol.Range{Start: start, End: end}
	}
	return append(res, protocol.Diagnostic{
		Range:    rng,
		Severity: protocol.DiagnosticSeverityError,
		Source:   "scl",
		Message:  msg,
	})
}
