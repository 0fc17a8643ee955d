package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// buildDoc builds the document
//
//	name Alice
//	tags (developer rust python)
//	dup first
//	dup second
//	x @
//	t @int"5"
//	server {hosts ({name a} {name b})}
func buildDoc(t *testing.T) *Document {
	t.Helper()
	b := NewBuilder("")
	sc := func(s string) Ref { return b.Scalar(s, BareScalar, Span{}) }
	ent := func(k string, v Ref) EntryRef { return EntryRef{Key: sc(k), Value: v} }

	tags := b.Sequence([]Ref{sc("developer"), sc("rust"), sc("python")}, Span{})
	typed := b.Scalar("5", QuotedScalar, Span{Start: 4, End: 7})
	b.Tag(typed, "int", Span{Start: 0, End: 4})
	host := func(n string) Ref {
		return b.Object([]EntryRef{ent("name", sc(n))}, CommaSeparator, Span{})
	}
	hosts := b.Sequence([]Ref{host("a"), host("b")}, Span{})
	server := b.Object([]EntryRef{ent("hosts", hosts)}, CommaSeparator, Span{})
	root := b.Object([]EntryRef{
		ent("name", sc("Alice")),
		ent("tags", tags),
		ent("dup", sc("first")),
		ent("dup", sc("second")),
		ent("x", b.Unit(Span{})),
		ent("t", typed),
		ent("server", server),
	}, NewlineSeparator, Span{})
	return b.Finish(root)
}

func scalarOf(t *testing.T) func(Value, bool) string {
	return func(v Value, ok bool) string {
		t.Helper()
		if !ok {
			t.Fatalf("not found")
		}
		s, ok := v.Scalar()
		if !ok {
			t.Fatalf("%v is not a scalar", v.Kind())
		}
		return s
	}
}

func TestObjectAccess(t *testing.T) {
	d := buildDoc(t)
	scalar := scalarOf(t)
	root := d.Root()
	if got := root.Len(); got != 7 {
		t.Fatalf("len %d", got)
	}
	if got := scalar(root.Get("name")); got != "Alice" {
		t.Errorf("name: %q", got)
	}
	if got := scalar(root.Get("dup")); got != "first" {
		t.Errorf("first match: %q", got)
	}
	if got := scalar(root.ValueAt(3)); got != "second" {
		t.Errorf("index access: %q", got)
	}
	if got := root.Index("dup"); got != 2 {
		t.Errorf("Index: %d", got)
	}
	want := []string{"name", "tags", "dup", "dup", "x", "t", "server"}
	if diff := cmp.Diff(want, root.Keys()); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
	if _, ok := root.Get("nope"); ok {
		t.Errorf("missing key found")
	}
	if _, _, ok := root.At(7); ok {
		t.Errorf("out of range entry")
	}
	if root.Separator() != NewlineSeparator {
		t.Errorf("separator")
	}
}

func TestValueAccessors(t *testing.T) {
	d := buildDoc(t)
	scalar := scalarOf(t)
	x, _ := d.Get("x")
	if !x.IsUnit() || x.Kind() != NonePayload {
		t.Errorf("x should be unit")
	}
	tv, _ := d.Get("t")
	if tv.IsUnit() {
		t.Errorf("tagged value is not unit")
	}
	if tag, ok := tv.Tag(); !ok || tag != "int" {
		t.Errorf("tag %q %v", tag, ok)
	}
	if s, ok := tv.Scalar(); !ok || s != "5" || tv.ScalarKind() != QuotedScalar {
		t.Errorf("scalar %q %v %v", s, ok, tv.ScalarKind())
	}
	if got := tv.Span(); got != (Span{Start: 0, End: 7}) {
		t.Errorf("tag should extend span: %v", got)
	}
	tags, _ := d.Get("tags")
	if tags.IsUnit() {
		t.Errorf("sequence is not unit")
	}
	seq, ok := tags.Sequence()
	if !ok || seq.Len() != 3 {
		t.Fatalf("tags sequence")
	}
	if got := scalar(seq.At(1)); got != "rust" {
		t.Errorf("tags[1] = %q", got)
	}
	if _, ok := seq.At(3); ok {
		t.Errorf("out of bounds")
	}
	if _, ok := seq.At(-1); ok {
		t.Errorf("negative index")
	}
	if _, ok := tags.Object(); ok {
		t.Errorf("sequence is not an object")
	}
	if _, ok := tags.Scalar(); ok {
		t.Errorf("sequence is not a scalar")
	}
	if _, ok := tags.Tag(); ok {
		t.Errorf("untagged")
	}
}

func TestAbsent(t *testing.T) {
	var v Value
	if v.Exists() || v.IsUnit() || v.Kind() != NonePayload {
		t.Errorf("zero value")
	}
	if _, ok := v.Scalar(); ok {
		t.Error("scalar")
	}
	if _, ok := v.Tag(); ok {
		t.Error("tag")
	}
	if _, ok := v.Object(); ok {
		t.Error("object")
	}
	if _, ok := v.Sequence(); ok {
		t.Error("sequence")
	}
	if _, ok := v.Get(""); ok {
		t.Error("get on absent")
	}
	var o Object
	if o.Len() != 0 || len(o.Keys()) != 0 {
		t.Error("zero object")
	}
	if _, ok := o.Get("a"); ok {
		t.Error("zero object get")
	}
	var s Sequence
	if _, ok := s.At(0); ok || s.Len() != 0 {
		t.Error("zero sequence")
	}
	var d *Document
	if _, ok := d.Get("a"); ok || d.Root().Exists() {
		t.Error("nil document")
	}
}

func TestResolve(t *testing.T) {
	d := buildDoc(t)
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"name", "Alice", true},
		{"tags[1]", "rust", true},
		{"tags.[2]", "python", true},
		{"server.hosts[1].name", "b", true},
		{"dup", "first", true},
		{"t", "5", true},
		{"tags[99]", "", false},
		{"name[0]", "", false},
		{"tags.x", "", false},
		{"missing.x", "", false},
		{"server.hosts[", "", false},
		{"tags[x]", "", false},
		{"..", "", false},
		{"x.y", "", false},
	}
	for _, tc := range tests {
		v, ok := d.Get(tc.path)
		if ok != tc.ok {
			t.Errorf("%q: ok=%v", tc.path, ok)
			continue
		}
		if !ok {
			if v.Exists() {
				t.Errorf("%q: absent result exists", tc.path)
			}
			continue
		}
		if got, _ := v.Scalar(); got != tc.want {
			t.Errorf("%q: got %q want %q", tc.path, got, tc.want)
		}
	}
	root, ok := d.Get("")
	if !ok || root.Ref() != d.RootValue().Ref() {
		t.Errorf("empty path should resolve to root")
	}
}

func TestPathComposition(t *testing.T) {
	d := buildDoc(t)
	direct, ok1 := d.Get("server.hosts[1]")
	hosts, _ := d.Get("server.hosts")
	stepped, ok2 := hosts.Get("[1]")
	seq, _ := hosts.Sequence()
	indexed, ok3 := seq.At(1)
	if !ok1 || !ok2 || !ok3 {
		t.Fatalf("%v %v %v", ok1, ok2, ok3)
	}
	if direct.Ref() != stepped.Ref() || stepped.Ref() != indexed.Ref() {
		t.Errorf("refs differ: %d %d %d", direct.Ref(), stepped.Ref(), indexed.Ref())
	}
}

func TestRelease(t *testing.T) {
	d := buildDoc(t)
	name, _ := d.Get("name")
	kept, _ := name.Scalar()
	root := d.Root()
	d.Release()
	if !d.Released() {
		t.Fatal("not released")
	}
	if name.Exists() || root.Len() != 0 {
		t.Errorf("views should read as absent after release")
	}
	if kept != "Alice" {
		t.Errorf("copied text changed: %q", kept)
	}
	d.Release()
}

func TestBuilderSealed(t *testing.T) {
	b := NewBuilder("")
	b.Finish(b.Object(nil, CommaSeparator, Span{}))
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	b.Unit(Span{})
}

func TestCompareHash(t *testing.T) {
	d1, d2 := buildDoc(t), buildDoc(t)
	if !Equal(d1.RootValue(), d2.RootValue()) {
		t.Errorf("identical builds differ")
	}
	if d1.RootValue().Hash() != d2.RootValue().Hash() {
		t.Errorf("hash differs")
	}
	a, _ := d1.Get("dup")
	b, _ := d1.Root().ValueAt(3)
	if Compare(a, b) >= 0 || Compare(b, a) <= 0 {
		t.Errorf("first < second")
	}
	tags, _ := d1.Get("tags")
	if Compare(a, tags) >= 0 {
		t.Errorf("scalar < sequence")
	}
	tv, _ := d1.Get("t")
	if Compare(a, tv) >= 0 {
		t.Errorf("untagged < tagged")
	}
	if Compare(Value{}, a) >= 0 || Compare(Value{}, Value{}) != 0 {
		t.Errorf("absent first")
	}
}

func TestToPlain(t *testing.T) {
	d := buildDoc(t)
	srv, _ := d.Get("server")
	want := map[string]any{"hosts": []any{
		map[string]any{"name": "a"},
		map[string]any{"name": "b"},
	}}
	if diff := cmp.Diff(want, ToPlain(srv)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	tv, _ := d.Get("t")
	if got := ToPlain(tv); got != "5" {
		t.Errorf("tagged: %v", got)
	}
	if got := ToPlain(Value{}); got != nil {
		t.Errorf("absent: %v", got)
	}
	m := ToMap(d.Root())
	if m["dup"] != "first" || m["x"] != nil {
		t.Errorf("ToMap: %v", m)
	}
}
