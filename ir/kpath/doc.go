// Package kpath provides path parsing for addressing values in a Styx
// document.
//
// A path is a sequence of segments separated by '.':
//   - name - object key lookup
//   - "quoted name" - object key lookup for keys containing '.', '[' or spaces
//   - [index] - sequence index, which may follow a key or start a segment
//
// # Usage
//
//	kp, err := kpath.Parse("server.hosts[0].name")
//
//	parent := kp.Parent()
//	child := parent.Append(kpath.Field("port"))
//
// # Path Examples
//
//	"server.hosts[0].name"    // Object → sequence → object
//	"[2]"                     // index into the current value
//	"matrix[1][0]"            // nested sequences
//	`labels."app.kubernetes"` // key containing a dot
package kpath
