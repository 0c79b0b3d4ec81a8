package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TIdent TokenType = iota
	TDoubleColon
	TBool
	TStr
	TNum
	TFl
	TMl
	TClass
	TList
	TDynamic
	TLCurl
	TRCurl
	TLParen
	TRParen
	TComma
	TString
	TMLString
	TInteger
	TFloat
	TBoolean
	TComment
	TNewline
	TEOF
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TIdent:       "identifier",
		TDoubleColon: "'::'",
		TBool:        "'bool'",
		TStr:         "'str'",
		TNum:         "'num'",
		TFl:          "'fl'",
		TMl:          "'ml'",
		TClass:       "'class'",
		TList:        "'list'",
		TDynamic:     "'dynamic'",
		TLCurl:       "'{'",
		TRCurl:       "'}'",
		TLParen:      "'('",
		TRParen:      "')'",
		TComma:       "','",
		TString:      "string",
		TMLString:    "multiline string",
		TInteger:     "integer",
		TFloat:       "float",
		TBoolean:     "boolean",
		TComment:     "comment",
		TNewline:     "newline",
		TEOF:         "end of input",
	}[t]
	if ok {
		return s
	}
	return "<unknown token>"
}

// IsKeyword reports whether t is one of the eight type keywords.
func (t TokenType) IsKeyword() bool {
	return t >= TBool && t <= TDynamic
}

// IsTrivia reports whether t carries no grammar meaning.
func (t TokenType) IsTrivia() bool {
	return t == TComment || t == TNewline
}

// Token is a lexical token.  Bytes holds the payload: the decoded contents
// of strings, the text of comments, numbers, identifiers and keywords.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
	// End is the offset just past the token's source text.
	End int
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// Int64 returns the value of a TInteger token.
func (t *Token) Int64() (int64, error) {
	return strconv.ParseInt(string(t.Bytes), 10, 64)
}

// Float64 returns the value of a TFloat or TInteger token.
func (t *Token) Float64() (float64, error) {
	return strconv.ParseFloat(string(t.Bytes), 64)
}

// Bool returns the value of a TBoolean token.
func (t *Token) Bool() bool {
	return boolWords[string(t.Bytes)]
}
