// Package eval evaluates expr-lang expressions against Styx documents.
//
// The root entries of the document are the expression environment, with
// objects as maps, sequences as slices and scalars as strings.  Tags are
// dropped from the environment; the path functions see them:
//
//	get(path)   the value at path, nil when absent
//	has(path)   whether path resolves
//	tag(path)   the tag name at path, "" when untagged
//	unit(path)  whether the value at path is @
//	kind(path)  "None", "Scalar", "Sequence" or "Object", "" when absent
//	keys(path)  the keys of the object at path, in order
//
// Registered symbols such as getenv and toint are available in every
// evaluation.
//
// # Related Packages
//
//   - github.com/signadot/styx-format/go-styx/ir - Document model
package eval
