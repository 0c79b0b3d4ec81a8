package token

import (
	"fmt"
	"io"
	"strconv"
)

// PrintTokens writes one line per token to w.
func PrintTokens(w io.Writer, toks []Token, msg string) {
	fmt.Fprintf(w, "%s (%d tokens)\n", msg, len(toks))
	for i := range toks {
		tok := &toks[i]
		line, col := tok.Pos.LineCol()
		fmt.Fprintf(w, "\t%d:%d\t%-16s %s\n", line, col, tok.Type, strconv.Quote(string(tok.Bytes)))
	}
}
