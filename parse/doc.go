// Package parse parses SCL text into IR nodes.
//
// # Usage
//
//	doc, err := parse.Parse([]byte(`port :: num { 8080 }`))
//	if err != nil {
//	    return err
//	}
//	port := doc.Get("port").Int64()
//
//	// keep comments for re-encoding
//	doc, err = parse.ParseFile("app.scl", parse.ParseComments(true))
//
//	// JSON and YAML input share the same tree
//	doc, err = parse.Parse(data, parse.ParseJSON())
//
// The result is always a class node holding the document's entries, or an
// error and no node.  Lexical errors are *token.TokenizeErr, grammar
// errors *ParseErr, and both carry the offending position.
//
// # Related Packages
//
//   - github.com/signadot/scl-format/ir - IR representation
//   - github.com/signadot/scl-format/encode - Encode IR to text
//   - github.com/signadot/scl-format/token - Tokenization
package parse
