package libdiff

import (
	"github.com/signadot/styx-format/go-styx/ir"
	"github.com/signadot/styx-format/go-styx/ir/kpath"
)

// MakeChange returns the change turning from into to as a whole: an
// insertion when from is absent, a deletion when to is absent and a
// replacement otherwise.
func MakeChange(path *kpath.KPath, from, to ir.Value) Change {
	switch {
	case !from.Exists():
		return Change{Op: Insert, Path: path, To: to}
	case !to.Exists():
		return Change{Op: Delete, Path: path, From: from}
	default:
		return Change{Op: Replace, Path: path, From: from, To: to}
	}
}

func makeTagChange(path *kpath.KPath, from, to ir.Value) Change {
	ft, _ := from.Tag()
	tt, _ := to.Tag()
	return Change{Op: Retag, Path: path, From: from, To: to, FromTag: ft, ToTag: tt}
}
