// Package eval evaluates expressions over SCL documents.
//
// Expressions use the expr language (github.com/expr-lang/expr).  The
// document's top level entries are variables, so `cfg.port > 1024` reads
// the entry port of the class cfg.  Keys which are not identifiers can be
// reached with $env["a key"] or the path helpers:
//
//	has(path)      true if path exists, eg has("cfg.items[2]")
//	typeof(path)   the type keyword of the value at path, eg "num"
//	getpath(path)  the value at path
//
// # Related Packages
//
//   - github.com/signadot/scl-format/gomap - Node to Go value conversion
//   - github.com/signadot/scl-format/ir - IR representation
package eval
