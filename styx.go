// Package styx reads Styx documents.
//
// A document is parsed once into an arena of nodes and then queried
// through lightweight views:
//
//	doc, err := styx.ParseString("server {\n  host example.org\n}\n")
//	if err != nil {
//		return err
//	}
//	host, ok := styx.Get(doc, "server.host")
//
// The subpackages hold the pieces: token lexes, parse builds documents,
// ir holds the document model and path resolution, encode writes
// documents out as s-expressions, JSON or YAML.
package styx

import (
	"os"

	"github.com/signadot/styx-format/go-styx/ir"
	"github.com/signadot/styx-format/go-styx/parse"
)

func Parse(d []byte, opts ...parse.ParseOption) (*ir.Document, error) {
	return parse.Parse(d, opts...)
}

func ParseString(s string, opts ...parse.ParseOption) (*ir.Document, error) {
	return parse.ParseString(s, opts...)
}

// ParseFile reads and parses the file at path.
func ParseFile(path string, opts ...parse.ParseOption) (*ir.Document, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// Get resolves a path such as "a.b[2].c" from the root of doc.  Malformed
// paths resolve to nothing.
func Get(doc *ir.Document, path string) (ir.Value, bool) {
	return doc.Get(path)
}
