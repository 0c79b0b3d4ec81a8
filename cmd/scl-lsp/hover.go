package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/scl-format/encode"
	"github.com/signadot/scl-format/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	node := nodeAt(doc, toOffset(doc.content, params.Position))
	if node == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(node),
		},
	}, nil
}

// nodeAt finds the entry or list element starting nearest before off on
// the same line.  Entries are positioned at their key.
func nodeAt(doc *document, off int) *ir.Node {
	line := toPosition(doc.content, off).Line
	var (
		best    *ir.Node
		bestOff = -1
	)
	doc.node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Parent() == nil {
			return true, nil
		}
		pos := doc.positions[y]
		if pos == nil || pos.I > off || pos.I <= bestOff {
			return true, nil
		}
		if toPosition(doc.content, pos.I).Line != line {
			return true, nil
		}
		best, bestOff = y, pos.I
		return true, nil
	})
	return best
}

func typeName(y *ir.Node) string {
	if y.Type() == ir.ListType {
		et := y.ElemType()
		if et == ir.NullType {
			et = ir.StringType
		}
		return "list(" + et.Keyword() + ")"
	}
	return y.Type().Keyword()
}

func hoverText(y *ir.Node) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("**Path:** `%s`", y.Path()))
	parts = append(parts, fmt.Sprintf("**Type:** `%s`", typeName(y)))
	if v := valueInfo(y); v != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", v))
	}
	if y.Comment != nil && len(y.Comment.Head) != 0 {
		parts = append(parts, strings.Join(y.Comment.Head, "\n"))
	}
	return strings.Join(parts, "\n\n")
}

func valueInfo(y *ir.Node) string {
	switch y.Type() {
	case ir.ClassType:
		return fmt.Sprintf("class with %d entries", y.Len())
	case ir.ListType:
		return fmt.Sprintf("list with %d elements", y.Len())
	case ir.MLStringType:
		return fmt.Sprintf("%d lines", strings.Count(y.Str(), "\n")+1)
	}
	buf := &strings.Builder{}
	if err := encode.EncodeValue(y, buf); err != nil {
		return ""
	}
	return "`" + truncate(buf.String(), 50) + "`"
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	i := 0
	for j := range s {
		if i == n {
			return s[:j] + "..."
		}
		i++
	}
	return s
}
