// Package encode encodes IR nodes to SCL text.
//
// # Usage
//
//	doc := ir.NewClass()
//	doc.Put("port", ir.FromInt(8080))
//	err := encode.Encode(doc, os.Stdout)
//	// port :: num { 8080 }
//
//	// two space indentation, true/false booleans
//	err = encode.Encode(doc, w, encode.Indent(2), encode.EncodeBools(encode.TrueFalse))
//
//	// ordered, indented JSON
//	err = encode.Encode(doc, w, encode.EncodeFormat(format.JSONFormat))
//
// SCL output is deterministic.  Parsing it yields a tree equal to the one
// encoded, for any indentation.  With EncodeComments, comments attached by
// parse.ParseComments are written back in place.
//
// # Related Packages
//
//   - github.com/signadot/scl-format/ir - IR representation
//   - github.com/signadot/scl-format/parse - Parse text to IR
package encode
