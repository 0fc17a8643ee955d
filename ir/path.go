package ir

import (
	"github.com/signadot/styx-format/go-styx/ir/kpath"
)

// Resolve walks path from v.  Missing keys, out of range indices, kind
// mismatches and malformed paths all yield (Value{}, false).  The empty
// path yields v itself.
func Resolve(v Value, path string) (Value, bool) {
	if !v.Exists() {
		return Value{}, false
	}
	kp, err := kpath.Parse(path)
	if err != nil {
		return Value{}, false
	}
	return ResolveKPath(v, kp)
}

// ResolveKPath is like Resolve for an already parsed path.  Tagged values
// are traversed through their payload.
func ResolveKPath(v Value, kp *kpath.KPath) (Value, bool) {
	if !v.Exists() {
		return Value{}, false
	}
	for x := kp; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			o, ok := v.Object()
			if !ok {
				return Value{}, false
			}
			v, ok = o.Get(*x.Field)
			if !ok {
				return Value{}, false
			}
		case x.Index != nil:
			s, ok := v.Sequence()
			if !ok {
				return Value{}, false
			}
			v, ok = s.At(*x.Index)
			if !ok {
				return Value{}, false
			}
		default:
			return Value{}, false
		}
	}
	return v, true
}

// PathSegment is one step from a container to a child value.
type PathSegment struct {
	Container Value
	Segment   *kpath.KPath
	Child     Value
}

// Locate finds the innermost value whose span contains off, searching
// from the root of d.  It returns the chain of steps taken; the last
// step's Child is the innermost value.  Keys are reported as their
// entry's value.
func (d *Document) Locate(off int) []PathSegment {
	var res []PathSegment
	cur := d.RootValue()
	for cur.Exists() {
		next, step, ok := locateChild(cur, off)
		if !ok {
			break
		}
		res = append(res, step)
		cur = next
	}
	return res
}

func locateChild(v Value, off int) (Value, PathSegment, bool) {
	if o, ok := v.Object(); ok {
		for i := range o.Len() {
			k, val, _ := o.At(i)
			if k.Span().Contains(off) || val.Span().Contains(off) {
				name, _ := k.Scalar()
				return val, PathSegment{Container: v, Segment: kpath.Field(name), Child: val}, true
			}
		}
		return Value{}, PathSegment{}, false
	}
	if s, ok := v.Sequence(); ok {
		for i, item := range s.All() {
			if item.Span().Contains(off) {
				return item, PathSegment{Container: v, Segment: kpath.Index(i), Child: item}, true
			}
		}
	}
	return Value{}, PathSegment{}, false
}

// JoinSegments builds the path leading through steps.
func JoinSegments(steps []PathSegment) *kpath.KPath {
	var kp *kpath.KPath
	for _, s := range steps {
		kp = kp.Append(s.Segment)
	}
	return kp
}
