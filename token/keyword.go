package token

var keywords = map[string]TokenType{
	"bool":    TBool,
	"str":     TStr,
	"num":     TNum,
	"fl":      TFl,
	"ml":      TMl,
	"class":   TClass,
	"list":    TList,
	"dynamic": TDynamic,
}

// the boolean spellings are reserved: they never lex as identifiers.
var boolWords = map[string]bool{
	"true":  true,
	"yes":   true,
	"false": false,
	"no":    false,
}

// Keyword returns the token type of a type keyword.
func Keyword(v string) (TokenType, bool) {
	t, ok := keywords[v]
	return t, ok
}

func IsBoolWord(v string) bool {
	_, ok := boolWords[v]
	return ok
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '-'
}
