package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/styx-format/go-styx/parse"
)

func TestFlags(t *testing.T) {
	t.Setenv("STYX_DEBUG_PARSE", "true")
	t.Setenv("STYX_DEBUG_EVAL", "nope")
	t.Setenv("STYX_DEBUG_LSP", "")
	Reload()
	defer Reload()
	if !Parse() {
		t.Errorf("parse flag off")
	}
	if Eval() || LSP() || Lex() {
		t.Errorf("unexpected flags on")
	}
}

func TestLogf(t *testing.T) {
	buf := &bytes.Buffer{}
	saved := Output
	Output = buf
	defer func() { Output = saved }()

	doc, err := parse.ParseString("a (x y)")
	if err != nil {
		t.Fatal(err)
	}
	v, _ := doc.Get("a")
	Logf("value %v map %s n %d\n", v, map[string]any{"k": "v"}, 3)
	got := buf.String()
	for _, want := range []string{
		`value (sequence [2, 7] (scalar [3, 4] bare "x") (scalar [5, 6] bare "y"))`,
		`"k": "v"`,
		"n 3\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}
