package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"
)

var typeSnippets = []struct {
	label, insert, doc string
}{
	{"bool", "bool { yes }", "boolean: yes, no, true or false"},
	{"str", `str { "" }`, "double quoted string"},
	{"num", "num { 0 }", "integer"},
	{"fl", "fl { 0.0 }", "float"},
	{"ml", "ml { '' }", "multiline string, no escapes"},
	{"class", "class {\n}", "nested entries"},
	{"list", "list(str) { }", "list of one scalar type"},
	{"dynamic", "dynamic { }", "type taken from the literal"},
}

var elemTypes = []string{"bool", "str", "num", "fl"}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	prefix := linePrefix(doc.content, toOffset(doc.content, params.Position))
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completions(prefix),
	}, nil
}

func completions(prefix string) []protocol.CompletionItem {
	items := []protocol.CompletionItem{}
	p := strings.TrimRight(prefix, " \t")
	switch {
	case strings.HasSuffix(p, "::"):
		sp := ""
		if p == prefix {
			sp = " "
		}
		for _, ts := range typeSnippets {
			items = append(items, protocol.CompletionItem{
				Label:      ts.label,
				Kind:       protocol.CompletionItemKindKeyword,
				InsertText: sp + ts.insert,
				Detail:     ts.doc,
			})
		}
	case strings.HasSuffix(p, "list("):
		for _, et := range elemTypes {
			items = append(items, protocol.CompletionItem{
				Label:      et,
				Kind:       protocol.CompletionItemKindKeyword,
				InsertText: et,
			})
		}
	case strings.HasSuffix(p, "{") && isBoolEntry(p):
		for _, b := range []string{"yes", "no", "true", "false"} {
			items = append(items, protocol.CompletionItem{
				Label:      b,
				Kind:       protocol.CompletionItemKindValue,
				InsertText: b,
			})
		}
	}
	return items
}

// isBoolEntry reports whether p ends with "bool {".
func isBoolEntry(p string) bool {
	p = strings.TrimRight(strings.TrimSuffix(p, "{"), " \t")
	return strings.HasSuffix(p, "bool") && strings.HasSuffix(strings.TrimRight(strings.TrimSuffix(p, "bool"), " \t"), "::")
}
