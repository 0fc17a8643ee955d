package libdiff

import (
	"github.com/signadot/styx-format/go-styx/ir"
	"github.com/signadot/styx-format/go-styx/ir/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffObject aligns the keys of two objects and recurses with df on the
// values of keys present in both.
func DiffObject(path *kpath.KPath, from, to ir.Value, df DiffFunc) []Change {
	fo, _ := from.Object()
	tobj, _ := to.Object()
	fieldMap := map[string]rune{}
	fromRunes := mapFieldsTo(fieldMap, fo)
	toRunes := mapFieldsTo(fieldMap, tobj)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var res []Change
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				k, v, _ := fo.At(fi)
				res = append(res, MakeChange(fieldPath(path, k), v, ir.Value{}))
				fi++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				k, fv, _ := fo.At(fi)
				_, tv, _ := tobj.At(ti)
				res = append(res, df(fieldPath(path, k), fv, tv)...)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				k, v, _ := tobj.At(ti)
				res = append(res, MakeChange(fieldPath(path, k), ir.Value{}, v))
				ti++
			}
		}
	}
	return res
}

func fieldPath(path *kpath.KPath, key ir.Value) *kpath.KPath {
	name, _ := key.Scalar()
	return path.Append(kpath.Field(name))
}

func mapFieldsTo(m map[string]rune, o ir.Object) []rune {
	rs := make([]rune, 0, o.Len())
	for _, f := range o.Keys() {
		r, ok := m[f]
		if !ok {
			r = nextRune(len(m))
			m[f] = r
		}
		rs = append(rs, r)
	}
	return rs
}
