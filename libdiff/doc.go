// Package libdiff computes structural differences between Styx values.
//
// # Usage
//
//	changes := libdiff.Diff(a.RootValue(), b.RootValue())
//	for _, c := range changes {
//		fmt.Println(c)
//	}
//
//	// undo
//	back := libdiff.Reverse(changes)
//
// Each Change is addressed by a kpath relative to the compared values.
// Object entries are matched by key and sequence items by position after
// aligning both sequences on a summary of their items.  Scalars whose
// text differs only slightly are reported as text diffs.
//
// # Related Packages
//
//   - github.com/signadot/styx-format/go-styx/ir - Document model
//   - github.com/signadot/styx-format/go-styx/ir/kpath - Change paths
package libdiff
