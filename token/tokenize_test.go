package token

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokSum struct {
	Type  TokenType
	Bytes string
}

func summarize(toks []Token) []tokSum {
	res := make([]tokSum, len(toks))
	for i := range toks {
		res[i] = tokSum{Type: toks[i].Type, Bytes: string(toks[i].Bytes)}
	}
	return res
}

func TestTokenizeEntries(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokSum
	}{
		{
			name:  "int entry",
			input: `port :: num { 8080 }`,
			expected: []tokSum{
				{TIdent, "port"}, {TDoubleColon, "::"}, {TNum, "num"},
				{TLCurl, "{"}, {TInteger, "8080"}, {TRCurl, "}"}, {TEOF, ""},
			},
		},
		{
			name:  "escapes",
			input: `"a\"b\\c\nd\te\q"`,
			expected: []tokSum{
				{TString, "a\"b\\c\nd\teq"}, {TEOF, ""},
			},
		},
		{
			name:  "empty string",
			input: `""`,
			expected: []tokSum{
				{TString, ""}, {TEOF, ""},
			},
		},
		{
			name:  "multiline verbatim",
			input: "'line1\n\\n line2'",
			expected: []tokSum{
				{TMLString, "line1\n\\n line2"}, {TEOF, ""},
			},
		},
		{
			name:  "comment and newline",
			input: "[ note ]\nx",
			expected: []tokSum{
				{TComment, " note "}, {TNewline, "\n"}, {TIdent, "x"}, {TEOF, ""},
			},
		},
		{
			name:  "booleans",
			input: "true yes false no True",
			expected: []tokSum{
				{TBoolean, "true"}, {TBoolean, "yes"}, {TBoolean, "false"},
				{TBoolean, "no"}, {TIdent, "True"}, {TEOF, ""},
			},
		},
		{
			name:  "keywords",
			input: "bool str num fl ml class list dynamic lists",
			expected: []tokSum{
				{TBool, "bool"}, {TStr, "str"}, {TNum, "num"}, {TFl, "fl"},
				{TMl, "ml"}, {TClass, "class"}, {TList, "list"},
				{TDynamic, "dynamic"}, {TIdent, "lists"}, {TEOF, ""},
			},
		},
		{
			name:  "numbers",
			input: "-5 3.25 -0.5 0.0 42",
			expected: []tokSum{
				{TInteger, "-5"}, {TFloat, "3.25"}, {TFloat, "-0.5"},
				{TFloat, "0.0"}, {TInteger, "42"}, {TEOF, ""},
			},
		},
		{
			name:  "digit led identifier",
			input: "3d_model 12ab-c 7",
			expected: []tokSum{
				{TIdent, "3d_model"}, {TIdent, "12ab-c"}, {TInteger, "7"}, {TEOF, ""},
			},
		},
		{
			name:  "list header",
			input: "list(fl){1,2.5,}",
			expected: []tokSum{
				{TList, "list"}, {TLParen, "("}, {TFl, "fl"}, {TRParen, ")"},
				{TLCurl, "{"}, {TInteger, "1"}, {TComma, ","}, {TFloat, "2.5"},
				{TComma, ","}, {TRCurl, "}"}, {TEOF, ""},
			},
		},
		{
			name:     "empty",
			input:    "",
			expected: []tokSum{{TEOF, ""}},
		},
		{
			name:     "only blanks",
			input:    " \t ",
			expected: []tokSum{{TEOF, ""}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(test.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(test.expected, summarize(toks)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
		line  int
		col   int
	}{
		{"unterminated comment", "a\n  [ open", ErrUnterminated, 2, 3},
		{"unterminated string", `x :: str { "abc`, ErrUnterminated, 1, 12},
		{"trailing backslash", `"abc\`, ErrUnterminated, 1, 1},
		{"unterminated ml", "\n\n'abc", ErrUnterminated, 3, 1},
		{"single colon", "a : b", ErrUnexpected, 1, 3},
		{"carriage return", "a\r\n", ErrUnexpected, 1, 2},
		{"at sign", "x :: num { @ }", ErrUnexpected, 1, 12},
		{"lone minus", "- 1", ErrUnexpected, 1, 1},
		{"second dot", "1.2.3", ErrUnexpected, 1, 4},
		{"int overflow", "99999999999999999999", ErrNumber, 1, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(test.input))
			if err == nil {
				t.Fatalf("expected error, got %d tokens", len(toks))
			}
			if toks != nil {
				t.Errorf("expected no tokens on error")
			}
			if !errors.Is(err, test.err) {
				t.Errorf("expected %v, got %v", test.err, err)
			}
			if !errors.Is(err, ErrLex) {
				t.Errorf("expected ErrLex, got %v", err)
			}
			var te *TokenizeErr
			if !errors.As(err, &te) {
				t.Fatalf("expected *TokenizeErr, got %T", err)
			}
			line, col := te.Pos.LineCol()
			if line != test.line || col != test.col {
				t.Errorf("position: want %d:%d got %d:%d", test.line, test.col, line, col)
			}
			if !strings.Contains(err.Error(), "line=") {
				t.Errorf("message lacks position: %s", err)
			}
		})
	}
}

func TestPositions(t *testing.T) {
	src := "a :: class {\n  [ c\n  d ]\n  b :: str { \"x\ny\" }\n}\n"
	toks, err := Tokenize(nil, []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string][2]int{
		"a":     {1, 1},
		"class": {1, 6},
		"b":     {4, 3},
		"x\ny":  {4, 14},
	}
	for i := range toks {
		tok := &toks[i]
		w, ok := want[string(tok.Bytes)]
		if !ok {
			continue
		}
		line, col := tok.Pos.LineCol()
		if line != w[0] || col != w[1] {
			t.Errorf("%q: want %d:%d got %d:%d", tok.Bytes, w[0], w[1], line, col)
		}
	}
	eof := toks[len(toks)-1]
	if eof.Type != TEOF || eof.Pos.Line() != 7 {
		t.Errorf("eof at line %d", eof.Pos.Line())
	}
}

func TestTokenEnd(t *testing.T) {
	src := `k :: str { "a\"b" } [ x ] 'm'`
	toks, err := Tokenize(nil, []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, tok := range toks {
		got = append(got, src[tok.Pos.I:tok.End])
	}
	want := []string{"k", "::", "str", "{", `"a\"b"`, "}", "[ x ]", "'m'", ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token spans (-want +got):\n%s", diff)
	}
}

func TestTokenValues(t *testing.T) {
	toks, err := Tokenize(nil, []byte("-12 2.5 no"))
	if err != nil {
		t.Fatal(err)
	}
	i, err := toks[0].Int64()
	if err != nil || i != -12 {
		t.Errorf("int: %d %v", i, err)
	}
	f, err := toks[1].Float64()
	if err != nil || f != 2.5 {
		t.Errorf("float: %g %v", f, err)
	}
	if toks[2].Bool() {
		t.Errorf("no should be false")
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{"", "plain", "a\"b", `back\slash`, "nl\nand\ttab", "[x]"} {
		toks, err := Tokenize(nil, []byte(Quote(s)))
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if toks[0].Type != TString || string(toks[0].Bytes) != s {
			t.Errorf("%q: got %s %q", s, toks[0].Type, toks[0].Bytes)
		}
	}
}

func TestKeyNeedsQuote(t *testing.T) {
	tests := map[string]bool{
		"name":     false,
		"_x":       false,
		"a-b_c9":   false,
		"class":    false,
		"3d":       false,
		"12ab":     false,
		"":         true,
		"42":       true,
		"1-a":      true,
		"yes":      true,
		"a b":      true,
		"-a":       true,
		"a.b":      true,
		"héllo":    true,
		"trueish":  false,
		"no_thing": false,
	}
	for key, want := range tests {
		if got := KeyNeedsQuote(key); got != want {
			t.Errorf("%q: want %v got %v", key, want, got)
		}
		if want {
			continue
		}
		toks, err := Tokenize(nil, []byte(key))
		if err != nil {
			t.Fatalf("%q: %v", key, err)
		}
		if len(toks) != 2 || !(toks[0].Type == TIdent || toks[0].Type.IsKeyword()) {
			t.Errorf("%q does not lex as a single key token", key)
		}
	}
}

func TestPrintTokens(t *testing.T) {
	toks, err := Tokenize(nil, []byte("a :: bool { yes }"))
	if err != nil {
		t.Fatal(err)
	}
	buf := &strings.Builder{}
	PrintTokens(buf, toks, "trace")
	out := buf.String()
	if !strings.HasPrefix(out, "trace (7 tokens)") {
		t.Errorf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "boolean") {
		t.Errorf("missing token type: %q", out)
	}
}
