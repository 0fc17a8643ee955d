package libdiff

import (
	"strings"

	"github.com/signadot/styx-format/go-styx/ir"
	"github.com/signadot/styx-format/go-styx/ir/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffSequence aligns two sequences on item summaries: scalars summarize
// to their text, containers to their kind, all prefixed with the tag.
// Aligned items are diffed with df, which recurses into containers.  Runs
// of deletions directly followed by insertions pair up as replacements.
func DiffSequence(path *kpath.KPath, from, to ir.Value, df DiffFunc) []Change {
	fs, _ := from.Sequence()
	ts, _ := to.Sequence()
	m := map[string]rune{}
	fromRunes := mapValues(m, fs)
	toRunes := mapValues(m, ts)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var res []Change
	var pending []int
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				v, _ := fs.At(fi)
				res = append(res, MakeChange(path.Append(kpath.Index(fi)), v, ir.Value{}))
				pending = append(pending, len(res)-1)
				fi++
			}
		case diffpatch.DiffEqual:
			pending = nil
			for range diff.Text {
				fv, _ := fs.At(fi)
				tv, _ := ts.At(ti)
				res = append(res, df(path.Append(kpath.Index(fi)), fv, tv)...)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				v, _ := ts.At(ti)
				if len(pending) > 0 {
					c := &res[pending[0]]
					pending = pending[1:]
					c.Op = Replace
					c.To = v
				} else {
					res = append(res, MakeChange(path.Append(kpath.Index(ti)), ir.Value{}, v))
				}
				ti++
			}
			pending = nil
		}
	}
	return res
}

func mapValues(m map[string]rune, s ir.Sequence) []rune {
	rs := make([]rune, 0, s.Len())
	for _, v := range s.All() {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = nextRune(len(m))
			m[sum] = r
		}
		rs = append(rs, r)
	}
	return rs
}

func summaryStr(v ir.Value) string {
	tag, _ := v.Tag()
	switch v.Kind() {
	case ir.ScalarPayload:
		s, _ := v.Scalar()
		if strings.Contains(s, "\n") {
			return tag + "/scalar/m"
		}
		return tag + "/scalar-" + s
	default:
		return tag + "/" + v.Kind().String()
	}
}
