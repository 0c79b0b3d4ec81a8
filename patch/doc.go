// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to SCL documents.
//
// Patches operate on the JSON form of a document.  Floats keep a fraction
// in that form, so a patched document keeps the types of the values the
// patch does not touch.  Entries of the source keep their order; entries
// added by the patch follow them.  Comments are not carried over and the
// source document is never modified.
package patch
