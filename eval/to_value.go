package eval

import (
	"fmt"

	"github.com/signadot/styx-format/go-styx/ir"
	"github.com/signadot/styx-format/go-styx/parse"
)

// ToValue parses its argument as a Styx document and returns the root
// as plain data.
func ToValue() Symbol {
	return Symbol{
		Name: "tovalue",
		Fn: func(params ...any) (any, error) {
			doc, err := parse.ParseString(params[0].(string))
			if err != nil {
				return nil, fmt.Errorf("tovalue: %w", err)
			}
			defer doc.Release()
			return ir.ToMap(doc.Root()), nil
		},
		Types: []any{new(func(string) map[string]any)},
	}
}
