// Package token provides the SCL tokenizer.
//
// Tokenize makes a single forward pass over a byte slice and returns the
// complete token sequence, terminated by TEOF.  Strings are decoded while
// lexing, so the Bytes of a TString token holds the escape-processed text,
// while TMLString and TComment tokens hold their text verbatim.  Numeric
// literals are range checked: an integer literal which does not fit in an
// int64 is a lexical error.
//
// Every token carries a *Pos giving its byte offset and, through the
// shared PosDoc, its 1-based line and column.
//
// Tokenize never returns a partial token sequence: on the first error it
// returns nil and a *TokenizeErr, which matches ErrLex under errors.Is.
package token
