// Package libdiff computes differences between SCL documents.
//
// # Usage
//
//	// structural changes, in document order
//	for _, c := range libdiff.Diff(oldDoc, newDoc) {
//	    fmt.Println(c)
//	}
//
//	// line oriented diff of two texts
//	fmt.Print(libdiff.TextDiff(oldText, newText))
//
// Class entries are aligned by key sequence, so a renamed or moved key
// shows as a removal and an addition.  Lists and scalars are compared as
// whole values.
//
// # Related Packages
//
//   - github.com/signadot/scl-format/ir - IR representation
//   - github.com/signadot/scl-format/patch - Apply JSON patches
package libdiff
