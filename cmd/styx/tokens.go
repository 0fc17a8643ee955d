package main

import (
	"fmt"
	"io"

	"github.com/signadot/styx-format/go-styx/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		cfg.Tokens.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	ins, err := readInputs(cc.In, args)
	if err != nil {
		return err
	}
	for _, in := range ins {
		if err := tokensInput(cc.Out, in); err != nil {
			return err
		}
	}
	return nil
}

func tokensInput(w io.Writer, in input) error {
	toks, err := token.Tokenize(in.data, token.KeepComments())
	if err != nil {
		return fmt.Errorf("error lexing %s: %w", in.name, err)
	}
	token.PrintTokens(w, toks, in.name)
	return nil
}
