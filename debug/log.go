package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/styx-format/go-styx/encode"
	"github.com/signadot/styx-format/go-styx/ir"
)

// Output receives log lines.
var Output io.Writer = os.Stderr

// Logf formats like fmt.Printf.  Values and plain data arguments are
// rendered structurally: ir.Value as a one line s-expression, maps and
// slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case ir.Value:
			if !x.Exists() {
				args[i] = "(absent)"
				continue
			}
			args[i] = encode.MustString(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(Output, msg, args...)
}
