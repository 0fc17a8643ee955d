package libdiff

import (
	"strings"

	"github.com/signadot/styx-format/go-styx/ir"
	"github.com/signadot/styx-format/go-styx/ir/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString diffs two scalars.  Small edits are reported as a Text
// change, larger ones as a replacement.
func DiffString(path *kpath.KPath, from, to ir.Value) []Change {
	a, _ := from.Scalar()
	b, _ := to.Scalar()
	if a == b {
		return nil
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(a, "\n") && strings.Contains(b, "\n")
	diffs := diffCfg.DiffMain(a, b, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	diffSize := 0
	deleted := 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			// insert after delete is a replacement
			if n := len(diff.Text); n > deleted {
				diffSize += n - deleted
			}
			deleted = 0
		case diffpatch.DiffDelete:
			diffSize += len(diff.Text)
			deleted = len(diff.Text)
		case diffpatch.DiffEqual:
			deleted = 0
		}
	}
	if diffSize > min(len(a), len(b))/2 {
		return []Change{{Op: Replace, Path: path, From: from, To: to}}
	}
	return []Change{{Op: Text, Path: path, From: from, To: to, Diffs: diffs}}
}
