package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/styx-format/go-styx/ir"
	"github.com/signadot/styx-format/go-styx/parse"
)

const sample = `name Alice
age 30
tags (dev ops)
server {
  host example.org
  tls @on{cert c.pem}
}
nothing @
get shadowed
`

func mustParse(t *testing.T, s string) *ir.Document {
	t.Helper()
	doc, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestEval(t *testing.T) {
	doc := mustParse(t, sample)
	t.Setenv("STYX_EVAL_TEST", "yes")
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{"env scalar", `name`, "Alice"},
		{"env nested", `server.host`, "example.org"},
		{"env sequence", `tags[1]`, "ops"},
		{"concat", `name + "@" + server.host`, "Alice@example.org"},
		{"len", `len(tags)`, 2},
		{"get", `get("server.tls.cert")`, "c.pem"},
		{"get missing", `get("server.port") == nil`, true},
		{"get object", `get("server.tls")`, map[string]any{"cert": "c.pem"}},
		{"has", `has("tags[1]") && !has("tags[2]")`, true},
		{"tag", `tag("server.tls")`, "on"},
		{"no tag", `tag("name")`, ""},
		{"unit", `unit("nothing") && !unit("name")`, true},
		{"kind", `kind("tags") + kind("nothing") + kind("nope")`, "SequenceNone"},
		{"keys", `keys("server")`, []any{"host", "tls"}},
		{"keys of scalar", `keys("name")`, []any{}},
		{"shadowed key", `get("get")`, "shadowed"},
		{"toint", `toint(age) + 1`, 31},
		{"getenv", `getenv("STYX_EVAL_TEST")`, "yes"},
		{"b64enc", `b64enc(name)`, "QWxpY2U="},
		{"tovalue", `tovalue("a 1\nb (x)").b[0]`, "x"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Eval(doc, tc.input)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	doc := mustParse(t, sample)
	for _, input := range []string{
		`name +`,
		`toint(name)`,
		`tovalue("a {")`,
		`undefined_fn(1)`,
	} {
		if _, err := Eval(doc, input); !errors.Is(err, ErrEval) {
			t.Errorf("%q: got %v", input, err)
		}
	}
	doc.Release()
	if _, err := Compile(doc, "1"); !errors.Is(err, ErrEval) {
		t.Errorf("released: %v", err)
	}
}

func TestProgramReuse(t *testing.T) {
	doc := mustParse(t, "n 2")
	p, err := Compile(doc, `toint(n) * 2`)
	if err != nil {
		t.Fatal(err)
	}
	for range 3 {
		got, err := p.Run()
		if err != nil || got != 4 {
			t.Errorf("got %v %v", got, err)
		}
	}
}

func TestRegister(t *testing.T) {
	if err := Register(OSEnv()); !errors.Is(err, ErrSymbolExists) {
		t.Errorf("got %v", err)
	}
	if err := Register(Symbol{Name: "get"}); !errors.Is(err, ErrSymbolExists) {
		t.Errorf("doc function: %v", err)
	}
	if _, ok := Lookup("toint"); !ok {
		t.Errorf("toint not registered")
	}
	var names []string
	for _, s := range Symbols() {
		names = append(names, s.Name)
	}
	if diff := cmp.Diff([]string{"b64enc", "getenv", "toint", "tovalue"}, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestToAny(t *testing.T) {
	doc := mustParse(t, "a @t(x {k v, k w} @)")
	v, _ := doc.Get("a")
	want := []any{"x", map[string]any{"k": "v"}, nil}
	if diff := cmp.Diff(want, ToAny(v)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
