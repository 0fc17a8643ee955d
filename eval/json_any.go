package eval

import "github.com/signadot/styx-format/go-styx/ir"

// ToAny converts v to the plain data seen by expressions.  Tags are
// dropped and objects keep the first of duplicate keys.
func ToAny(v ir.Value) any {
	return ir.ToPlain(v)
}
