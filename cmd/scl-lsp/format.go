package main

import (
	"bytes"
	"context"

	"github.com/go-logr/logr"
	"github.com/signadot/scl-format/encode"
	"github.com/signadot/scl-format/parse"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	formatted, ok := formatDocument(doc.content, int(params.Options.TabSize))
	if !ok {
		logr.FromContextOrDiscard(ctx).V(1).Info("not formatting", "uri", doc.uri)
		return nil, nil
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   toPosition(doc.content, len(doc.content)),
			},
			NewText: formatted,
		},
	}, nil
}

// formatDocument parses its own copy of content, keeping comments.
func formatDocument(content string, indent int) (string, bool) {
	node, err := parse.Parse([]byte(content), parse.ParseComments(true))
	if err != nil {
		return "", false
	}
	var buf bytes.Buffer
	err = encode.Encode(node, &buf,
		encode.Indent(indent),
		encode.EncodeComments(true),
	)
	if err != nil {
		return "", false
	}
	return buf.String(), true
}
