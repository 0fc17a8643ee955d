package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/styx-format/go-styx/debug"
	"github.com/signadot/styx-format/go-styx/ir"
	"github.com/signadot/styx-format/go-styx/parse"
	"github.com/signadot/styx-format/go-styx/token"
)

type input struct {
	name string
	data []byte
}

// readInputs reads each file argument, "-" meaning in.  No arguments
// reads in once.
func readInputs(in io.Reader, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	res := make([]input, 0, len(args))
	for _, arg := range args {
		d, err := readArg(in, arg)
		if err != nil {
			return nil, err
		}
		name := arg
		if arg == "-" {
			name = "<stdin>"
		}
		res = append(res, input{name: name, data: d})
	}
	return res, nil
}

func readArg(in io.Reader, arg string) ([]byte, error) {
	if arg == "-" {
		d, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", arg, err)
	}
	return d, nil
}

func (cfg *MainConfig) parseInput(in input) (*ir.Document, error) {
	if debug.Lex() {
		if toks, err := token.Tokenize(in.data, token.KeepComments()); err == nil {
			token.PrintTokens(debug.Output, toks, in.name)
		}
	}
	doc, err := parse.Parse(in.data, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", in.name, err)
	}
	if debug.Parse() {
		debug.Logf("parsed %s: %d nodes\n", in.name, doc.NodeCount())
	}
	return doc, nil
}
