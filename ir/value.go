package ir

import "strings"

// Value is a borrowed handle to a value in a Document.  The zero Value is
// absent: every accessor on it reports absence.
type Value struct {
	d *Document
	r Ref
}

func (v Value) node() *node {
	return v.d.node(v.r)
}

// Exists reports whether v refers to a value.
func (v Value) Exists() bool {
	return v.node() != nil
}

func (v Value) Ref() Ref {
	return v.r
}

func (v Value) Document() *Document {
	return v.d
}

// Kind returns the payload kind, NonePayload for absent values.
func (v Value) Kind() PayloadKind {
	n := v.node()
	if n == nil {
		return NonePayload
	}
	return n.kind
}

// IsUnit reports whether v is the unit value @: no tag and no payload.
func (v Value) IsUnit() bool {
	n := v.node()
	return n != nil && !n.hasTag && n.kind == NonePayload
}

// Tag returns a copy of the tag name.
func (v Value) Tag() (string, bool) {
	n := v.node()
	if n == nil || !n.hasTag {
		return "", false
	}
	return strings.Clone(n.tag), true
}

func (v Value) TagSpan() (Span, bool) {
	n := v.node()
	if n == nil || !n.hasTag {
		return Span{}, false
	}
	return n.tagSpan, true
}

// Scalar returns a copy of the scalar text.
func (v Value) Scalar() (string, bool) {
	n := v.node()
	if n == nil || n.kind != ScalarPayload {
		return "", false
	}
	return strings.Clone(n.text), true
}

// ScalarKind reports how a scalar value was written.  It is meaningless
// for other values.
func (v Value) ScalarKind() ScalarKind {
	n := v.node()
	if n == nil {
		return BareScalar
	}
	return n.skind
}

func (v Value) Span() Span {
	n := v.node()
	if n == nil {
		return Span{}
	}
	return n.span
}

func (v Value) Object() (Object, bool) {
	n := v.node()
	if n == nil || n.kind != ObjectPayload {
		return Object{}, false
	}
	return Object{d: v.d, r: v.r}, true
}

func (v Value) Sequence() (Sequence, bool) {
	n := v.node()
	if n == nil || n.kind != SequencePayload {
		return Sequence{}, false
	}
	return Sequence{d: v.d, r: v.r}, true
}

// Get resolves path starting at v.
func (v Value) Get(path string) (Value, bool) {
	return Resolve(v, path)
}

// text returns the scalar text without copying.
func (v Value) text() string {
	n := v.node()
	if n == nil {
		return ""
	}
	return n.text
}
