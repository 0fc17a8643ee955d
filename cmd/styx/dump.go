package main

import (
	"fmt"
	"io"

	"github.com/signadot/styx-format/go-styx/encode"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	ins, err := readInputs(cc.In, args)
	if err != nil {
		return err
	}
	for _, in := range ins {
		if err := dumpInput(cfg.MainConfig, cc.Out, in); err != nil {
			return err
		}
	}
	return nil
}

func dumpInput(cfg *MainConfig, w io.Writer, in input) error {
	doc, err := cfg.parseInput(in)
	if err != nil {
		return err
	}
	defer doc.Release()
	if err := encode.EncodeDocument(doc, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", in.name, err)
	}
	return nil
}
