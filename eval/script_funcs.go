package eval

import (
	"maps"
	"slices"

	"github.com/signadot/styx-format/go-styx/ir"

	"github.com/expr-lang/expr"
)

var docFuncs = map[string]bool{
	"get": true, "has": true, "tag": true, "unit": true, "kind": true, "keys": true,
}

// DocFuncs returns the names of the functions bound to the document an
// expression is compiled against.
func DocFuncs() []string {
	return slices.Sorted(maps.Keys(docFuncs))
}

// exprOpts binds the path functions to root.
func exprOpts(root ir.Value) []expr.Option {
	resolve := func(params []any) (ir.Value, bool) {
		return ir.Resolve(root, params[0].(string))
	}
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			v, ok := resolve(params)
			if !ok {
				return nil, nil
			}
			return ToAny(v), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			_, ok := resolve(params)
			return ok, nil
		},
			new(func(string) bool)),
		expr.Function("tag", func(params ...any) (any, error) {
			v, _ := resolve(params)
			t, _ := v.Tag()
			return t, nil
		},
			new(func(string) string)),
		expr.Function("unit", func(params ...any) (any, error) {
			v, _ := resolve(params)
			return v.IsUnit(), nil
		},
			new(func(string) bool)),
		expr.Function("kind", func(params ...any) (any, error) {
			v, ok := resolve(params)
			if !ok {
				return "", nil
			}
			return v.Kind().String(), nil
		},
			new(func(string) string)),
		expr.Function("keys", func(params ...any) (any, error) {
			v, _ := resolve(params)
			o, ok := v.Object()
			if !ok {
				return []any{}, nil
			}
			keys := o.Keys()
			res := make([]any, len(keys))
			for i, k := range keys {
				res[i] = k
			}
			return res, nil
		},
			new(func(string) []any)),
	}
}
