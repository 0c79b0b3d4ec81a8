package token

import "strings"

// Quote returns v as a quoted string literal that Tokenize decodes back to
// v.
func Quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// KeyNeedsQuote reports whether a class key must be written as a quoted
// string.  Keys which lex as a single identifier or type keyword may be
// written bare.
func KeyNeedsQuote(v string) bool {
	if v == "" || IsBoolWord(v) {
		return true
	}
	for i := 0; i < len(v); i++ {
		if !isIdentChar(v[i]) {
			return true
		}
	}
	if isIdentStart(v[0]) {
		return false
	}
	if !isDigit(v[0]) {
		return true
	}
	j := 0
	for j < len(v) && isDigit(v[j]) {
		j++
	}
	return j == len(v) || !isIdentStart(v[j])
}
