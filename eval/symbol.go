package eval

import "github.com/expr-lang/expr"

// Symbol is a function available to every expression.  Types lists the
// signatures checked at compile time, as for expr.Function.
type Symbol struct {
	Name  string
	Fn    func(params ...any) (any, error)
	Types []any
}

func (s Symbol) String() string {
	return s.Name
}

func (s Symbol) option() expr.Option {
	return expr.Function(s.Name, s.Fn, s.Types...)
}
