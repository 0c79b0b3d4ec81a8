package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/scl-format/debug"
	"github.com/signadot/scl-format/format"
	"github.com/signadot/scl-format/ir"
	"github.com/signadot/scl-format/token"
)

// Parse parses d into a document: a class node holding its entries.  On
// error the returned node is nil.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.SCLFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.JSONFormat, format.YAMLFormat:
		return parseInterchange(d, pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	if debug.Tokens() {
		debug.LogTokens(toks, "tokens")
	}
	root := ir.NewClass()
	trackPos(root, toks[0].Pos, pOpts)
	pi := 0
	if err := parseEntries(toks, root, &pi, pOpts, true); err != nil {
		if debug.Parse() {
			debug.Logf("parse failed: %v", err)
		}
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %d entries:\n%s", root.Len(), root)
	}
	return root, nil
}

func trackPos(node *ir.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}

// skip advances past comments and newlines.
func skip(toks []token.Token, pi *int) {
	for toks[*pi].Type.IsTrivia() {
		*pi++
	}
}

func expect(toks []token.Token, pi *int, tt token.TokenType) error {
	skip(toks, pi)
	t := &toks[*pi]
	if t.Type != tt {
		return parseErr(fmt.Errorf("%w %s, got %s", ErrExpected, tt, t.Type), t)
	}
	*pi++
	return nil
}

// parseEntries parses entries into class up to a closing brace, which is
// not consumed, or the end of input when top is set.
func parseEntries(toks []token.Token, class *ir.Node, pi *int, opts *parseOpts, top bool) error {
	var (
		pending []string
		last    *ir.Node
		header  = top && opts.comments
		nlRun   int
	)
	for {
		t := &toks[*pi]
		switch t.Type {
		case token.TComment:
			*pi++
			if !opts.comments {
				continue
			}
			txt := strings.TrimSpace(string(t.Bytes))
			if last != nil {
				addLineComment(last, txt)
				continue
			}
			pending = append(pending, txt)
			nlRun = 0
		case token.TNewline:
			*pi++
			last = nil
			if header && len(pending) > 0 {
				nlRun++
				if nlRun == 2 {
					class.Comment = &ir.Comment{Head: pending}
					pending = nil
					header = false
				}
			}
		case token.TEOF:
			if top {
				return nil
			}
			return parseErr(fmt.Errorf("%w %s, got %s", ErrExpected, token.TRCurl, t.Type), t)
		case token.TRCurl:
			if top {
				return parseErr(fmt.Errorf("%w entry, got %s", ErrExpected, t.Type), t)
			}
			return nil
		default:
			key, err := parseKey(toks, pi)
			if err != nil {
				return err
			}
			if err := expect(toks, pi, token.TDoubleColon); err != nil {
				return err
			}
			val, err := parseTyped(toks, pi, opts)
			if err != nil {
				return err
			}
			trackPos(val, t.Pos, opts)
			if len(pending) > 0 {
				val.Comment = &ir.Comment{Head: pending}
				pending = nil
			}
			if err := class.Put(key, val); err != nil {
				return parseErr(fmt.Errorf("%w: %w", ErrParse, err), t)
			}
			last = val
			header = false
		}
	}
}

func addLineComment(y *ir.Node, txt string) {
	if y.Comment == nil {
		y.Comment = &ir.Comment{}
	}
	if y.Comment.Line == "" {
		y.Comment.Line = txt
		return
	}
	y.Comment.Line += " " + txt
}

func parseKey(toks []token.Token, pi *int) (string, error) {
	t := &toks[*pi]
	switch {
	case t.Type == token.TIdent, t.Type == token.TString, t.Type.IsKeyword():
		*pi++
		return string(t.Bytes), nil
	case t.Type == token.TInteger:
		i, err := t.Int64()
		if err != nil {
			return "", parseErr(fmt.Errorf("%w %s: %w", ErrKey, t.Bytes, err), t)
		}
		*pi++
		return strconv.FormatInt(i, 10), nil
	}
	return "", parseErr(fmt.Errorf("%w: %s", ErrKey, t.Type), t)
}

func parseTyped(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	skip(toks, pi)
	t := &toks[*pi]
	if !t.Type.IsKeyword() {
		return nil, parseErr(fmt.Errorf("%w type keyword, got %s", ErrExpected, t.Type), t)
	}
	*pi++
	switch t.Type {
	case token.TClass:
		return parseClass(toks, pi, opts)
	case token.TList:
		return parseList(toks, pi, opts)
	case token.TDynamic:
		if err := expect(toks, pi, token.TLCurl); err != nil {
			return nil, err
		}
		skip(toks, pi)
		lit := &toks[*pi]
		res, err := literal(lit)
		if err != nil {
			return nil, parseErr(fmt.Errorf("%w, got %s", ErrDynamic, lit.Type), lit)
		}
		*pi++
		if err := expect(toks, pi, token.TRCurl); err != nil {
			return nil, err
		}
		return res, nil
	}
	var want []token.TokenType
	switch t.Type {
	case token.TBool:
		want = []token.TokenType{token.TBoolean}
	case token.TStr:
		want = []token.TokenType{token.TString}
	case token.TNum:
		want = []token.TokenType{token.TInteger}
	case token.TFl:
		want = []token.TokenType{token.TFloat, token.TInteger}
	case token.TMl:
		want = []token.TokenType{token.TMLString}
	}
	lit, err := braced(toks, pi, want)
	if err != nil {
		return nil, err
	}
	if t.Type == token.TFl {
		f, err := lit.Float64()
		if err != nil {
			return nil, parseErr(fmt.Errorf("%w: %w", ErrParse, err), lit)
		}
		return ir.FromFloat(f), nil
	}
	return literal(lit)
}

// braced parses "{" LITERAL "}" where the literal has one of the types in
// want.
func braced(toks []token.Token, pi *int, want []token.TokenType) (*token.Token, error) {
	if err := expect(toks, pi, token.TLCurl); err != nil {
		return nil, err
	}
	skip(toks, pi)
	lit := &toks[*pi]
	found := false
	for _, tt := range want {
		if lit.Type == tt {
			found = true
			break
		}
	}
	if !found {
		return nil, parseErr(fmt.Errorf("%w %s, got %s", ErrExpected, want[0], lit.Type), lit)
	}
	*pi++
	if err := expect(toks, pi, token.TRCurl); err != nil {
		return nil, err
	}
	return lit, nil
}

// literal converts a literal token into a node with the literal's own tag.
func literal(t *token.Token) (*ir.Node, error) {
	switch t.Type {
	case token.TBoolean:
		return ir.FromBool(t.Bool()), nil
	case token.TString:
		return ir.FromString(string(t.Bytes)), nil
	case token.TMLString:
		return ir.FromMLString(string(t.Bytes)), nil
	case token.TInteger:
		i, err := t.Int64()
		if err != nil {
			return nil, parseErr(fmt.Errorf("%w: %w", ErrParse, err), t)
		}
		return ir.FromInt(i), nil
	case token.TFloat:
		f, err := t.Float64()
		if err != nil {
			return nil, parseErr(fmt.Errorf("%w: %w", ErrParse, err), t)
		}
		return ir.FromFloat(f), nil
	}
	return nil, parseErr(fmt.Errorf("%w literal, got %s", ErrExpected, t.Type), t)
}

func parseClass(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	if err := expect(toks, pi, token.TLCurl); err != nil {
		return nil, err
	}
	res := ir.NewClass()
	if err := parseEntries(toks, res, pi, opts, false); err != nil {
		return nil, err
	}
	// parseEntries stops at the closing brace
	*pi++
	return res, nil
}

func parseList(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	if err := expect(toks, pi, token.TLParen); err != nil {
		return nil, err
	}
	skip(toks, pi)
	et := &toks[*pi]
	var elem ir.Type
	switch et.Type {
	case token.TNum:
		elem = ir.IntType
	case token.TFl:
		elem = ir.FloatType
	case token.TBool:
		elem = ir.BoolType
	case token.TStr:
		elem = ir.StringType
	default:
		return nil, parseErr(fmt.Errorf("%w %s", ErrListType, et.Type), et)
	}
	*pi++
	if err := expect(toks, pi, token.TRParen); err != nil {
		return nil, err
	}
	if err := expect(toks, pi, token.TLCurl); err != nil {
		return nil, err
	}
	res := ir.NewList(elem)
	for {
		skip(toks, pi)
		t := &toks[*pi]
		if t.Type == token.TRCurl {
			*pi++
			return res, nil
		}
		v, err := literal(t)
		if err != nil {
			return nil, parseErr(fmt.Errorf("%w: expected literal, got %s", ErrListElem, t.Type), t)
		}
		if err := res.Push(v); err != nil {
			return nil, parseErr(fmt.Errorf("%w: %w", ErrListElem, err), t)
		}
		trackPos(v, t.Pos, opts)
		*pi++
		skip(toks, pi)
		sep := &toks[*pi]
		switch sep.Type {
		case token.TComma:
			*pi++
		case token.TRCurl:
			*pi++
			return res, nil
		default:
			return nil, parseErr(fmt.Errorf("%w, got %s", ErrSeparator, sep.Type), sep)
		}
	}
}
