package ir

// Document is a parsed, immutable Styx document.  It owns the arena
// holding every value reachable from its root object; Value, Object and
// Sequence handles obtained from it borrow from that arena.
//
// A Document may be read concurrently.  Release must not be called while
// other goroutines still read from the document.
type Document struct {
	arena *Arena
	root  Ref
	src   string
}

// Root returns the root object, or the zero Object after Release.
func (d *Document) Root() Object {
	if d == nil || d.arena == nil {
		return Object{}
	}
	return Object{d: d, r: d.root}
}

// RootValue returns the root object as a Value.
func (d *Document) RootValue() Value {
	if d == nil || d.arena == nil {
		return Value{}
	}
	return Value{d: d, r: d.root}
}

// Get resolves path from the root object.
func (d *Document) Get(path string) (Value, bool) {
	return Resolve(d.RootValue(), path)
}

// At returns the value with reference r.
func (d *Document) At(r Ref) Value {
	if d == nil || d.arena == nil || r < 0 || int(r) >= len(d.arena.nodes) {
		return Value{}
	}
	return Value{d: d, r: r}
}

// Release drops the arena.  Handles obtained from d read as absent
// afterwards.
func (d *Document) Release() {
	if d == nil {
		return
	}
	d.arena = nil
	d.src = ""
}

// Released reports whether Release has been called.
func (d *Document) Released() bool {
	return d == nil || d.arena == nil
}

// Text returns the source text covered by s.
func (d *Document) Text(s Span) string {
	if d == nil || d.arena == nil || s.Start < 0 || s.End > len(d.src) || s.Start > s.End {
		return ""
	}
	return d.src[s.Start:s.End]
}

func (d *Document) NodeCount() int {
	if d == nil || d.arena == nil {
		return 0
	}
	return d.arena.NodeCount()
}

func (d *Document) node(r Ref) *node {
	if d == nil || d.arena == nil {
		return nil
	}
	return &d.arena.nodes[r]
}
