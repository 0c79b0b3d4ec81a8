// Package gomap converts between nodes and plain Go values.
//
// It is the bridge used for the JSON and YAML interchange formats and for
// evaluating expressions over documents.
package gomap
