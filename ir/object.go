package ir

import "iter"

// Object is a borrowed view of an object payload.  Entries keep source
// order and keys may repeat.
type Object struct {
	d *Document
	r Ref
}

func (o Object) node() *node {
	return o.d.node(o.r)
}

func (o Object) Exists() bool {
	return o.node() != nil
}

// Value returns the value whose payload is o.
func (o Object) Value() Value {
	if o.node() == nil {
		return Value{}
	}
	return Value{d: o.d, r: o.r}
}

func (o Object) Len() int {
	n := o.node()
	if n == nil {
		return 0
	}
	return int(n.hi - n.lo)
}

func (o Object) entry(i int) (entry, bool) {
	n := o.node()
	if n == nil || i < 0 || i >= int(n.hi-n.lo) {
		return entry{}, false
	}
	return o.d.arena.entries[int(n.lo)+i], true
}

// Get returns the value of the first entry whose key is name.
func (o Object) Get(name string) (Value, bool) {
	n := o.node()
	if n == nil {
		return Value{}, false
	}
	ents := o.d.arena.entries[n.lo:n.hi]
	for _, e := range ents {
		k := &o.d.arena.nodes[e.key]
		if k.kind == ScalarPayload && k.text == name {
			return Value{d: o.d, r: e.val}, true
		}
	}
	return Value{}, false
}

// Index returns the position of the first entry whose key is name, or -1.
func (o Object) Index(name string) int {
	for i := range o.Len() {
		e, _ := o.entry(i)
		if k := o.d.arena.nodes[e.key]; k.kind == ScalarPayload && k.text == name {
			return i
		}
	}
	return -1
}

// At returns the i'th entry regardless of key duplication.
func (o Object) At(i int) (key, val Value, ok bool) {
	e, ok := o.entry(i)
	if !ok {
		return Value{}, Value{}, false
	}
	return Value{d: o.d, r: e.key}, Value{d: o.d, r: e.val}, true
}

func (o Object) KeyAt(i int) (Value, bool) {
	k, _, ok := o.At(i)
	return k, ok
}

func (o Object) ValueAt(i int) (Value, bool) {
	_, v, ok := o.At(i)
	return v, ok
}

// All iterates over the entries in source order.
func (o Object) All() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		for i := range o.Len() {
			k, v, _ := o.At(i)
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys returns copies of the key texts in source order.
func (o Object) Keys() []string {
	res := make([]string, 0, o.Len())
	for k := range o.All() {
		s, _ := k.Scalar()
		res = append(res, s)
	}
	return res
}

func (o Object) Separator() Separator {
	n := o.node()
	if n == nil {
		return NewlineSeparator
	}
	return n.sep
}

func (o Object) Span() Span {
	return o.Value().Span()
}

// Resolve resolves path starting at o.
func (o Object) Resolve(path string) (Value, bool) {
	return Resolve(o.Value(), path)
}

// Sequence is a borrowed view of a sequence payload.
type Sequence struct {
	d *Document
	r Ref
}

func (s Sequence) node() *node {
	return s.d.node(s.r)
}

func (s Sequence) Exists() bool {
	return s.node() != nil
}

func (s Sequence) Value() Value {
	if s.node() == nil {
		return Value{}
	}
	return Value{d: s.d, r: s.r}
}

func (s Sequence) Len() int {
	n := s.node()
	if n == nil {
		return 0
	}
	return int(n.hi - n.lo)
}

// At returns the i'th item, bounds checked.
func (s Sequence) At(i int) (Value, bool) {
	n := s.node()
	if n == nil || i < 0 || i >= int(n.hi-n.lo) {
		return Value{}, false
	}
	return Value{d: s.d, r: s.d.arena.items[int(n.lo)+i]}, true
}

func (s Sequence) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i := range s.Len() {
			v, _ := s.At(i)
			if !yield(i, v) {
				return
			}
		}
	}
}

func (s Sequence) Span() Span {
	return s.Value().Span()
}
