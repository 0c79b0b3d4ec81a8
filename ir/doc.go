// Package ir provides the in-memory representation of SCL documents.
//
// # Overview
//
// A document is a tree of [Node] values rooted at a Class.  Every node has
// exactly one [Type]:
//
//   - NullType: no payload
//   - BoolType, IntType, FloatType: boolean, int64 and float64 payloads
//   - StringType: escape-processed text
//   - MLStringType: verbatim multiline text
//   - ListType: an element type plus an ordered sequence of scalar nodes
//   - ClassType: an ordered sequence of (key, node) entries
//
// # Construction
//
// Nodes are created with one factory per type and containers are filled
// with [Node.Put] and [Node.Push]:
//
//	doc := ir.NewClass()
//	doc.Put("name", ir.FromString("demo"))
//	items := ir.NewList(ir.FloatType)
//	items.Push(ir.FromInt(1)) // widened to 1.0
//	doc.Put("items", items)
//
// There is no other way to change a node once built, so the following hold
// for every tree:
//
//   - a list's element type never changes once established and every
//     element matches it, save that Int elements are widened into Float
//     lists and Str lists accept MultilineStr elements;
//   - class entries keep insertion order;
//   - every node has at most one parent and no node contains itself.
//
// # Duplicate keys
//
// Put does not reject duplicate keys.  All entries are kept in order and
// written back out by the encoder.  [Node.Get] returns the last entry with a
// key and [Node.GetAll] returns all of them.
//
// # Comments
//
// The Comment field carries comments recovered by the parser when asked
// for.  It is metadata only and does not take part in [Compare].
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation.
package ir
