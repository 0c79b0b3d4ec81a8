package token

import (
	"bytes"
	"fmt"
	"strconv"
)

type tkState struct {
	d    []byte
	i    int
	doc  *PosDoc
	toks []Token
}

// Tokenize appends the tokens of src to dst.  The result always ends with
// a TEOF token.  On error, no tokens are returned and the error is a
// *TokenizeErr.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	ts := &tkState{
		d:    src,
		doc:  &PosDoc{d: src},
		toks: dst,
	}
	for {
		ts.skipBlanks()
		if ts.i >= len(ts.d) {
			break
		}
		if err := ts.next(); err != nil {
			return nil, err
		}
		ts.toks[len(ts.toks)-1].End = ts.i
	}
	ts.emit(TEOF, ts.i, nil)
	ts.toks[len(ts.toks)-1].End = ts.i
	return ts.toks, nil
}

func (ts *tkState) emit(tt TokenType, off int, b []byte) {
	ts.toks = append(ts.toks, Token{
		Type:  tt,
		Pos:   ts.doc.Pos(off),
		Bytes: b,
	})
}

func (ts *tkState) skipBlanks() {
	for ts.i < len(ts.d) {
		switch ts.d[ts.i] {
		case ' ', '\t':
			ts.i++
		default:
			return
		}
	}
}

// markLines records the newlines in d[start:end].
func (ts *tkState) markLines(start, end int) {
	for j := start; j < end; j++ {
		if ts.d[j] == '\n' {
			ts.doc.nl(j)
		}
	}
}

func (ts *tkState) next() error {
	d, i := ts.d, ts.i
	c := d[i]
	switch c {
	case '[':
		return ts.delimited(TComment, ']', "comment")
	case '\'':
		return ts.delimited(TMLString, '\'', "multiline string")
	case '"':
		return ts.quoted()
	case '\n':
		ts.doc.nl(i)
		ts.emit(TNewline, i, d[i:i+1])
		ts.i++
		return nil
	case ':':
		if i+1 < len(d) && d[i+1] == ':' {
			ts.emit(TDoubleColon, i, d[i:i+2])
			ts.i += 2
			return nil
		}
	case '{':
		return ts.single(TLCurl)
	case '}':
		return ts.single(TRCurl)
	case '(':
		return ts.single(TLParen)
	case ')':
		return ts.single(TRParen)
	case ',':
		return ts.single(TComma)
	case '-':
		if i+1 < len(d) && isDigit(d[i+1]) {
			return ts.number()
		}
	default:
		if isDigit(c) {
			j := i
			for j < len(d) && isDigit(d[j]) {
				j++
			}
			if j < len(d) && isIdentStart(d[j]) {
				ts.ident()
				return nil
			}
			return ts.number()
		}
		if isIdentStart(c) {
			ts.ident()
			return nil
		}
	}
	return NewTokenizeErr(fmt.Errorf("%w %q", ErrUnexpected, c), ts.doc.Pos(i))
}

func (ts *tkState) single(tt TokenType) error {
	ts.emit(tt, ts.i, ts.d[ts.i:ts.i+1])
	ts.i++
	return nil
}

// delimited scans verbatim text from the opening byte at ts.i up to the
// next close byte.
func (ts *tkState) delimited(tt TokenType, close byte, what string) error {
	start := ts.i
	j := bytes.IndexByte(ts.d[start+1:], close)
	if j == -1 {
		ts.markLines(start, len(ts.d))
		return unterminatedErr(what, ts.doc.Pos(start))
	}
	end := start + 1 + j
	ts.markLines(start, end)
	ts.emit(tt, start, ts.d[start+1:end])
	ts.i = end + 1
	return nil
}

func (ts *tkState) quoted() error {
	d := ts.d
	start := ts.i
	var buf []byte
	j := start + 1
	for {
		if j >= len(d) {
			ts.markLines(start, len(d))
			return unterminatedErr("string", ts.doc.Pos(start))
		}
		c := d[j]
		switch c {
		case '"':
			ts.markLines(start, j)
			if buf == nil {
				buf = []byte{}
			}
			ts.emit(TString, start, buf)
			ts.i = j + 1
			return nil
		case '\\':
			if j+1 >= len(d) {
				ts.markLines(start, len(d))
				return unterminatedErr("string", ts.doc.Pos(start))
			}
			switch e := d[j+1]; e {
			case 'n':
				buf = append(buf, '\n')
			case 't':
				buf = append(buf, '\t')
			default:
				buf = append(buf, e)
			}
			j += 2
		default:
			buf = append(buf, c)
			j++
		}
	}
}

func (ts *tkState) number() error {
	d := ts.d
	start := ts.i
	j := start
	if d[j] == '-' {
		j++
	}
	dot := false
	for j < len(d) {
		c := d[j]
		if isDigit(c) {
			j++
			continue
		}
		if c == '.' && !dot {
			dot = true
			j++
			continue
		}
		break
	}
	text := d[start:j]
	pos := ts.doc.Pos(start)
	if dot {
		if _, err := strconv.ParseFloat(string(text), 64); err != nil {
			return NewTokenizeErr(fmt.Errorf("%w %q: %w", ErrNumber, text, err), pos)
		}
		ts.emit(TFloat, start, text)
	} else {
		if _, err := strconv.ParseInt(string(text), 10, 64); err != nil {
			return NewTokenizeErr(fmt.Errorf("%w %q: %w", ErrNumber, text, err), pos)
		}
		ts.emit(TInteger, start, text)
	}
	ts.i = j
	return nil
}

func (ts *tkState) ident() {
	d := ts.d
	start := ts.i
	j := start
	for j < len(d) && isIdentChar(d[j]) {
		j++
	}
	word := d[start:j]
	tt := TIdent
	if kw, ok := keywords[string(word)]; ok {
		tt = kw
	} else if IsBoolWord(string(word)) {
		tt = TBoolean
	}
	ts.emit(tt, start, word)
	ts.i = j
}
