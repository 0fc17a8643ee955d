// Package format names the notations parsed Styx documents can be exported
// to.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	if err != nil {
//		return err
//	}
//	err = encode.Encode(doc.RootValue(), os.Stdout, encode.EncodeFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/styx-format/go-styx/encode - Export documents
package format
