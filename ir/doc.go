// Package ir provides the in-memory representation of parsed Styx
// documents.
//
// A [Document] owns an [Arena] holding every value node.  Nodes are
// addressed by stable [Ref] indices and read through borrowed handles:
// [Value], [Object] and [Sequence].  Handles stay valid for the lifetime of
// the document; after [Document.Release] they read as absent.
//
// Absence is uniform: accessors on missing or mismatched values return a
// zero handle and false rather than an error.
//
// # Paths
//
// [Resolve] walks a path such as "server.hosts[0].name" (see package
// kpath) from any value, with first-match key lookup.
//
// # Construction
//
// Documents are built by package parse through a [Builder], which is
// sealed by [Builder.Finish].
package ir
