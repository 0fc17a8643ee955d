package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/styx-format/go-styx/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	ins, err := readInputs(cc.In, args[1:])
	if err != nil {
		return err
	}
	missing := false
	for _, in := range ins {
		found, err := getInput(cfg.MainConfig, cc.Out, in, path)
		if err != nil {
			return err
		}
		if !found {
			fmt.Fprintf(os.Stderr, "%s: %q not found\n", in.name, path)
			missing = true
		}
	}
	if missing {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// getInput writes the value at path in the document of in.
func getInput(cfg *MainConfig, w io.Writer, in input, path string) (bool, error) {
	doc, err := cfg.parseInput(in)
	if err != nil {
		return false, err
	}
	defer doc.Release()
	v, ok := doc.Get(path)
	if !ok {
		return false, nil
	}
	if err := encode.Encode(v, w, cfg.encOpts(w)...); err != nil {
		return false, fmt.Errorf("error encoding %s of %s: %w", path, in.name, err)
	}
	return true, nil
}
