package libdiff

import (
	"fmt"

	"github.com/signadot/styx-format/go-styx/ir"
	"github.com/signadot/styx-format/go-styx/ir/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is one difference.  From is absent for insertions and To for
// deletions.  Sequence paths index from for deletions and replacements
// and to for insertions.
type Change struct {
	Op   Op
	Path *kpath.KPath
	From ir.Value
	To   ir.Value
	// FromTag and ToTag are set for Retag; an empty name means no tag.
	FromTag, ToTag string
	// Diffs holds the text edits of a Text change.
	Diffs []diffpatch.Diff
}

func (c Change) String() string {
	path := c.Path.String()
	if path == "" {
		path = "."
	}
	switch c.Op {
	case Retag:
		return fmt.Sprintf("%s %s: %s -> %s", c.Op.Symbol(), path, tagString(c.FromTag), tagString(c.ToTag))
	case Text:
		return fmt.Sprintf("%s %s: %s", c.Op.Symbol(), path, textString(c.Diffs))
	case Insert:
		return fmt.Sprintf("%s %s: %s", c.Op.Symbol(), path, valueString(c.To))
	case Delete:
		return fmt.Sprintf("%s %s: %s", c.Op.Symbol(), path, valueString(c.From))
	default:
		return fmt.Sprintf("%s %s: %s -> %s", c.Op.Symbol(), path, valueString(c.From), valueString(c.To))
	}
}

// DiffFunc diffs two values found at path.
type DiffFunc func(path *kpath.KPath, from, to ir.Value) []Change

// Diff returns the changes turning from into to, nil when they are equal.
// Spans and the way scalars were written are ignored.
func Diff(from, to ir.Value) []Change {
	return diffValue(nil, from, to)
}

// DiffDocuments diffs the roots of two documents.
func DiffDocuments(from, to *ir.Document) []Change {
	return Diff(from.RootValue(), to.RootValue())
}

func diffValue(path *kpath.KPath, from, to ir.Value) []Change {
	if !from.Exists() || !to.Exists() {
		if !from.Exists() && !to.Exists() {
			return nil
		}
		return []Change{MakeChange(path, from, to)}
	}
	if ir.Equal(from, to) {
		return nil
	}
	if from.Kind() != to.Kind() {
		return []Change{MakeChange(path, from, to)}
	}
	var res []Change
	ft, _ := from.Tag()
	tt, _ := to.Tag()
	if ft != tt {
		res = append(res, makeTagChange(path, from, to))
	}
	switch from.Kind() {
	case ir.ScalarPayload:
		res = append(res, DiffString(path, from, to)...)
	case ir.SequencePayload:
		res = append(res, DiffSequence(path, from, to, diffValue)...)
	case ir.ObjectPayload:
		res = append(res, DiffObject(path, from, to, diffValue)...)
	}
	return res
}

// nextRune maps the n-th distinct summary to a rune, skipping surrogates
// which do not survive conversion to string.
func nextRune(n int) rune {
	r := rune(n)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}
