// Package encode exports parsed Styx documents to other notations.
//
// # Usage
//
//	// s-expression tree with spans, as used by conformance tooling
//	err := encode.EncodeDocument(doc, os.Stdout)
//
//	// JSON of a single value
//	err := encode.Encode(v, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
//	// colored s-expressions for a terminal
//	err := encode.EncodeDocument(doc, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// JSON and YAML represent a tagged value as an object with keys "$tag"
// and "$payload", the unit value as null and every scalar as a string.
// Nothing is ever written back as Styx text.
//
// # Related Packages
//
//   - github.com/signadot/styx-format/go-styx/ir - Document model
//   - github.com/signadot/styx-format/go-styx/format - Output notations
package encode
