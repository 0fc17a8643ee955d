package encode

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/styx-format/go-styx/format"
	"github.com/signadot/styx-format/go-styx/ir"
	"github.com/signadot/styx-format/go-styx/parse"
)

func mustParse(t *testing.T, s string) *ir.Document {
	t.Helper()
	doc, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return doc
}

func TestSexpDocument(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty",
			in:   "",
			want: "(document [-1, -1]\n)\n",
		},
		{
			name: "entries",
			in:   "name Alice\nt @x(a)\nu @\n",
			want: `(document [-1, -1]
  (entry
    (scalar [0, 4] bare "name")
    (scalar [5, 10] bare "Alice"))
  (entry
    (scalar [11, 12] bare "t")
    (tag [13, 18] "x"
      (sequence [15, 18]
        (scalar [16, 17] bare "a"))))
  (entry
    (scalar [19, 20] bare "u")
    (unit [21, 22]))
)
`,
		},
		{
			name: "nested",
			in:   "o {k \"a\\\"b\\n\"}\ns ()\ne {}\nt @ok",
			want: `(document [-1, -1]
  (entry
    (scalar [0, 1] bare "o")
    (object [2, 14]
      (entry
        (scalar [3, 4] bare "k")
        (scalar [5, 13] quoted "a\"b\n"))
    ))
  (entry
    (scalar [15, 16] bare "s")
    (sequence [17, 19]))
  (entry
    (scalar [20, 21] bare "e")
    (object [22, 24]))
  (entry
    (scalar [25, 26] bare "t")
    (tag [27, 30] "ok"))
)
`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustParse(t, tc.in)
			buf := &bytes.Buffer{}
			if err := EncodeDocument(doc, buf); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestSexpWire(t *testing.T) {
	doc := mustParse(t, "name Alice\nl (a @)")
	v, _ := doc.Get("name")
	if got := MustString(v); got != `(scalar [5, 10] bare "Alice")` {
		t.Errorf("got %s", got)
	}
	v, _ = doc.Get("l")
	if got := MustString(v); got != `(sequence [13, 18] (scalar [14, 15] bare "a") (unit [16, 17]))` {
		t.Errorf("got %s", got)
	}
}

const jsonSample = "name Alice\ntags (a b)\nt @int\"5\"\nok @ok\nu @\nempty {}\nh \"<a&b>\"\n"

func TestJSON(t *testing.T) {
	doc := mustParse(t, jsonSample)
	buf := &bytes.Buffer{}
	err := EncodeDocument(doc, buf, EncodeFormat(format.JSONFormat), EncodeWire(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"Alice","tags":["a","b"],"t":{"$tag":"int","$payload":"5"},` +
		`"ok":{"$tag":"ok","$payload":null},"u":null,"empty":{},"h":"<a&b>"}` + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	buf.Reset()
	v, _ := doc.Get("tags")
	if err := Encode(v, buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("[\n  \"a\",\n  \"b\"\n]\n", buf.String()); diff != "" {
		t.Errorf("indented (-want +got):\n%s", diff)
	}
}

func TestYAML(t *testing.T) {
	doc := mustParse(t, "name Alice\nage 30\ntags (a b)\nt @int\"5\"\nu @\n")
	buf := &bytes.Buffer{}
	if err := EncodeDocument(doc, buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	var got map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("%v\n%s", err, out)
	}
	want := map[string]any{
		"name": "Alice",
		"age":  "30",
		"tags": []any{"a", "b"},
		"t":    map[string]any{"$tag": "int", "$payload": "5"},
		"u":    nil,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s\n%s", diff, out)
	}
	last := -1
	for _, k := range []string{"name:", "age:", "tags:", "t:", "u:"} {
		i := strings.Index(out, "\n"+k)
		if k == "name:" {
			i = strings.Index(out, k)
		}
		if i <= last {
			t.Errorf("%s out of order in\n%s", k, out)
		}
		last = i
	}
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	doc := mustParse(t, "k @t{a \"50%\"}\n")
	plain, colored := &bytes.Buffer{}, &bytes.Buffer{}
	if err := EncodeDocument(doc, plain); err != nil {
		t.Fatal(err)
	}
	if err := EncodeDocument(doc, colored, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("no escapes in %q", colored.String())
	}
	if got := ansi.ReplaceAllString(colored.String(), ""); got != plain.String() {
		t.Errorf("colored text differs:\n%s\n%s", got, plain.String())
	}

	colored.Reset()
	err := EncodeDocument(doc, colored, EncodeFormat(format.JSONFormat), EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("json output colored")
	}
}

func TestEncodeErrors(t *testing.T) {
	if err := Encode(ir.Value{}, &bytes.Buffer{}); !errors.Is(err, ErrEncoding) {
		t.Errorf("absent: %v", err)
	}
	doc := mustParse(t, "a 1")
	doc.Release()
	if err := EncodeDocument(doc, &bytes.Buffer{}); !errors.Is(err, ErrEncoding) {
		t.Errorf("released: %v", err)
	}
	if err := Encode(ir.Value{}, &bytes.Buffer{}, EncodeFormat(format.Format(9))); !errors.Is(err, ErrEncoding) {
		t.Errorf("bad format: %v", err)
	}
}

func TestFormatFromOpts(t *testing.T) {
	if f := FormatFromOpts(Indent(4), EncodeFormat(format.YAMLFormat)); f != format.YAMLFormat {
		t.Errorf("got %s", f)
	}
	if f := FormatFromOpts(); f != format.SexpFormat {
		t.Errorf("default %s", f)
	}
}
