package libdiff

import diffpatch "github.com/sergi/go-diff/diffmatchpatch"

// Reverse returns the changes turning to back into from.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := c
		r.From, r.To = c.To, c.From
		r.FromTag, r.ToTag = c.ToTag, c.FromTag
		switch c.Op {
		case Delete:
			r.Op = Insert
		case Insert:
			r.Op = Delete
		case Text:
			r.Diffs = make([]diffpatch.Diff, len(c.Diffs))
			for j, d := range c.Diffs {
				switch d.Type {
				case diffpatch.DiffInsert:
					d.Type = diffpatch.DiffDelete
				case diffpatch.DiffDelete:
					d.Type = diffpatch.DiffInsert
				}
				r.Diffs[j] = d
			}
			// keep deletions ahead of the insertions they pair with
			for j := 0; j+1 < len(r.Diffs); j++ {
				if r.Diffs[j].Type == diffpatch.DiffInsert && r.Diffs[j+1].Type == diffpatch.DiffDelete {
					r.Diffs[j], r.Diffs[j+1] = r.Diffs[j+1], r.Diffs[j]
					j++
				}
			}
		}
		res[i] = r
	}
	return res
}
