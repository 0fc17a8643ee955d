package ir

// Ref is the stable index of a value node within an Arena.
type Ref int32

type node struct {
	span    Span
	tagSpan Span
	tag     string
	hasTag  bool
	kind    PayloadKind
	skind   ScalarKind
	sep     Separator
	text    string
	// lo and hi delimit the node's entries (objects) or items
	// (sequences) in the arena.
	lo, hi int32
}

type entry struct {
	key, val Ref
}

// Arena holds every node of a document in contiguous slices.  Object
// entries and sequence items of one container are stored contiguously so
// that containers refer to them by range.
type Arena struct {
	nodes   []node
	entries []entry
	items   []Ref
}

func (a *Arena) NodeCount() int {
	return len(a.nodes)
}

func (a *Arena) add(n node) Ref {
	a.nodes = append(a.nodes, n)
	return Ref(len(a.nodes) - 1)
}

// EntryRef is an object entry under construction.
type EntryRef struct {
	Key   Ref
	Value Ref
}

// Builder allocates nodes while parsing.  Children are built before their
// containers, so a container's entries or items are appended in one block
// when it is closed.
type Builder struct {
	arena  *Arena
	src    string
	sealed bool
}

func NewBuilder(src string) *Builder {
	return &Builder{arena: &Arena{}, src: src}
}

func (b *Builder) check() {
	if b.sealed {
		panic("ir: Builder used after Finish")
	}
}

func (b *Builder) Unit(span Span) Ref {
	b.check()
	return b.arena.add(node{span: span, kind: NonePayload})
}

func (b *Builder) Scalar(text string, kind ScalarKind, span Span) Ref {
	b.check()
	return b.arena.add(node{span: span, kind: ScalarPayload, skind: kind, text: text})
}

func (b *Builder) Sequence(items []Ref, span Span) Ref {
	b.check()
	a := b.arena
	lo := int32(len(a.items))
	a.items = append(a.items, items...)
	return a.add(node{
		span: span,
		kind: SequencePayload,
		lo:   lo,
		hi:   int32(len(a.items)),
	})
}

func (b *Builder) Object(entries []EntryRef, sep Separator, span Span) Ref {
	b.check()
	a := b.arena
	lo := int32(len(a.entries))
	for _, e := range entries {
		a.entries = append(a.entries, entry{key: e.Key, val: e.Value})
	}
	return a.add(node{
		span: span,
		kind: ObjectPayload,
		sep:  sep,
		lo:   lo,
		hi:   int32(len(a.entries)),
	})
}

// Tag attaches a tag to r, extending its span to cover the tag.
func (b *Builder) Tag(r Ref, name string, span Span) {
	b.check()
	n := &b.arena.nodes[r]
	n.tag = name
	n.hasTag = true
	n.tagSpan = span
	n.span.Start = min(n.span.Start, span.Start)
	n.span.End = max(n.span.End, span.End)
}

// Scalar text and kind of r, if r is a scalar.
func (b *Builder) ScalarOf(r Ref) (string, ScalarKind, bool) {
	n := &b.arena.nodes[r]
	if n.kind != ScalarPayload {
		return "", 0, false
	}
	return n.text, n.skind, true
}

func (b *Builder) Span(r Ref) Span {
	return b.arena.nodes[r].span
}

// Finish seals the builder and returns a document rooted at the object
// root.
func (b *Builder) Finish(root Ref) *Document {
	b.check()
	if b.arena.nodes[root].kind != ObjectPayload {
		panic("ir: document root must be an object")
	}
	b.sealed = true
	d := &Document{arena: b.arena, root: root, src: b.src}
	b.arena = nil
	return d
}
