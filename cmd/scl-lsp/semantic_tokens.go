package main

import (
	"context"
	"strings"

	"github.com/signadot/scl-format/token"
	"go.lsp.dev/protocol"
)

// indexes into semTokenTypes
const (
	semComment uint32 = iota
	semKeyword
	semString
	semNumber
	semOperator
	semProperty
)

func semType(tt token.TokenType) (uint32, bool) {
	switch {
	case tt == token.TComment:
		return semComment, true
	case tt.IsKeyword(), tt == token.TBoolean:
		return semKeyword, true
	case tt == token.TString, tt == token.TMLString:
		return semString, true
	case tt == token.TInteger, tt == token.TFloat:
		return semNumber, true
	case tt == token.TDoubleColon:
		return semOperator, true
	case tt == token.TIdent:
		return semProperty, true
	}
	return 0, false
}

type semToken struct {
	line, char, length uint32
	typ                uint32
}

// lexTokens highlights from the lexer, so a document with grammar errors
// is still colored.  Tokens spanning lines are split per line.
func lexTokens(content string) []semToken {
	toks, err := token.Tokenize(nil, []byte(content))
	if err != nil {
		return nil
	}
	var res []semToken
	for i := range toks {
		tok := &toks[i]
		typ, ok := semType(tok.Type)
		if !ok {
			continue
		}
		start := tok.Pos.I
		for start < tok.End {
			end := tok.End
			if j := strings.IndexByte(content[start:end], '\n'); j != -1 {
				end = start + j
			}
			if end > start {
				p := toPosition(content, start)
				res = append(res, semToken{
					line:   p.Line,
					char:   p.Character,
					length: uint32(utf16Len(content[start:end])),
					typ:    typ,
				})
			}
			start = end + 1
		}
	}
	return res
}

// encodeSemTokens produces the relative encoding: each token is 5 integers
// with line and start relative to the previous token.
func encodeSemTokens(toks []semToken) []uint32 {
	data := make([]uint32, 0, 5*len(toks))
	var prevLine, prevChar uint32
	for _, t := range toks {
		dl := t.line - prevLine
		dc := t.char
		if dl == 0 {
			dc = t.char - prevChar
		}
		data = append(data, dl, dc, t.length, t.typ, 0)
		prevLine, prevChar = t.line, t.char
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: encodeSemTokens(lexTokens(doc.content))}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	var in []semToken
	for _, t := range lexTokens(doc.content) {
		if t.line < params.Range.Start.Line || t.line > params.Range.End.Line {
			continue
		}
		in = append(in, t)
	}
	return &protocol.SemanticTokens{Data: encodeSemTokens(in)}, nil
}
