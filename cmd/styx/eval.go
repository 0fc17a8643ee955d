package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/styx-format/go-styx/debug"
	"github.com/signadot/styx-format/go-styx/eval"

	"github.com/scott-cotton/cli"
)

func styxEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Tags {
		listSymbols(cc.Out)
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	input := args[0]
	ins, err := readInputs(cc.In, args[1:])
	if err != nil {
		return err
	}
	for _, in := range ins {
		if err := evalInput(cfg.MainConfig, cc.Out, in, input); err != nil {
			return err
		}
	}
	return nil
}

func listSymbols(w io.Writer) {
	fmt.Fprintf(w, "document functions:\n")
	for _, s := range eval.DocFuncs() {
		fmt.Fprintf(w, "\t- %s\n", s)
	}
	fmt.Fprintf(w, "registered functions:\n")
	for _, s := range eval.Symbols() {
		fmt.Fprintf(w, "\t- %s\n", s)
	}
}

func evalInput(cfg *MainConfig, w io.Writer, in input, expr string) error {
	doc, err := cfg.parseInput(in)
	if err != nil {
		return err
	}
	defer doc.Release()
	res, err := eval.Eval(doc, expr)
	if err != nil {
		return fmt.Errorf("error evaluating %s: %w", in.name, err)
	}
	if debug.Eval() {
		debug.Logf("%s: %q => %T\n", in.name, expr, res)
	}
	return writeResult(w, res)
}

// writeResult writes strings as is and anything else as JSON.
func writeResult(w io.Writer, res any) error {
	if s, ok := res.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	d, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", d)
	return err
}
