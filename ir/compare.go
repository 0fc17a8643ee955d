package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Spans and scalar kinds are ignored, so "a" and a compare equal.  Absent
// values sort first.  Tagless values sort before tagged ones, then tags
// order by name, then payloads by kind: None < Scalar < Sequence < Object.
func Compare(a, b Value) int {
	na, nb := a.node(), b.node()
	switch {
	case na == nil && nb == nil:
		return 0
	case na == nil:
		return -1
	case nb == nil:
		return 1
	}
	if na.hasTag != nb.hasTag {
		if !na.hasTag {
			return -1
		}
		return 1
	}
	if c := strings.Compare(na.tag, nb.tag); c != 0 {
		return c
	}
	if na.kind != nb.kind {
		return cmp.Compare(na.kind, nb.kind)
	}
	switch na.kind {
	case ScalarPayload:
		return strings.Compare(na.text, nb.text)
	case SequencePayload:
		return compareSequences(Sequence{a.d, a.r}, Sequence{b.d, b.r})
	case ObjectPayload:
		return compareObjects(Object{a.d, a.r}, Object{b.d, b.r})
	}
	return 0
}

func compareSequences(a, b Sequence) int {
	n := min(a.Len(), b.Len())
	for i := range n {
		va, _ := a.At(i)
		vb, _ := b.At(i)
		if c := Compare(va, vb); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

func compareObjects(a, b Object) int {
	n := min(a.Len(), b.Len())
	for i := range n {
		ka, va, _ := a.At(i)
		kb, vb, _ := b.At(i)
		if c := Compare(ka, kb); c != 0 {
			return c
		}
		if c := Compare(va, vb); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b Value) bool {
	if a.Hash() != b.Hash() {
		return false
	}
	return Compare(a, b) == 0
}
