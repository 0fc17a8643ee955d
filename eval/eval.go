package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/styx-format/go-styx/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrEval = errors.New("eval error")

type Env map[string]any

// Program is an expression compiled against one document.
type Program struct {
	prg *vm.Program
	env Env
}

// NewEnv returns the environment of root: its entries as plain data.
func NewEnv(root ir.Object) Env {
	return Env(ir.ToMap(root))
}

// Compile compiles input with the entries of doc as environment.
func Compile(doc *ir.Document, input string) (*Program, error) {
	if doc.Released() {
		return nil, fmt.Errorf("%w: document released", ErrEval)
	}
	env := NewEnv(doc.Root())
	for name := range docFuncs {
		delete(env, name)
	}
	opts := []expr.Option{expr.Env(map[string]any(env))}
	for _, s := range Symbols() {
		if _, shadowed := env[s.Name]; shadowed {
			continue
		}
		opts = append(opts, s.option())
	}
	opts = append(opts, exprOpts(doc.RootValue())...)
	prg, err := expr.Compile(input, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, input, err)
	}
	return &Program{prg: prg, env: env}, nil
}

func (p *Program) Run() (any, error) {
	res, err := vm.Run(p.prg, map[string]any(p.env))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return res, nil
}

// Eval compiles and runs input against doc.
func Eval(doc *ir.Document, input string) (any, error) {
	p, err := Compile(doc, input)
	if err != nil {
		return nil, err
	}
	return p.Run()
}
