package main

import (
	"fmt"
	"io"

	"github.com/signadot/styx-format/go-styx/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	ins, err := readInputs(cc.In, args)
	if err != nil {
		return err
	}
	if checkInputs(cfg, cc.Out, ins) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkInputs parses each input, writes one line per failure to w and
// returns the number of failures.  Positions are printed 1-based.
func checkInputs(cfg *CheckConfig, w io.Writer, ins []input) int {
	n := 0
	for _, in := range ins {
		doc, err := parse.Parse(in.data, cfg.parseOpts()...)
		if err == nil {
			doc.Release()
			continue
		}
		n++
		if cfg.Quiet {
			continue
		}
		if pos, ok := parse.Position(err); ok {
			fmt.Fprintf(w, "%s:%d:%d: %v\n", in.name, pos.Line+1, pos.Col+1, err)
			continue
		}
		fmt.Fprintf(w, "%s: %v\n", in.name, err)
	}
	return n
}
