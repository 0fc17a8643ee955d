package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/styx-format/go-styx/debug"
	"github.com/signadot/styx-format/go-styx/encode"
	"github.com/signadot/styx-format/go-styx/format"
	"github.com/signadot/styx-format/go-styx/ir"
	"github.com/signadot/styx-format/go-styx/libdiff"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	ins, err := readInputs(cc.In, args)
	if err != nil {
		return err
	}
	a, err := cfg.parseInput(ins[0])
	if err != nil {
		return err
	}
	defer a.Release()
	b, err := cfg.parseInput(ins[1])
	if err != nil {
		return err
	}
	defer b.Release()
	differs, err := diffInputs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffInputs writes the differences from a to b and reports whether
// there are any.
func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Document) (bool, error) {
	if cfg.Reverse {
		a, b = b, a
	}
	changes := libdiff.DiffDocuments(a, b)
	if debug.Diff() {
		debug.Logf("%d changes\n", len(changes))
	}
	if cfg.MergePatch {
		patch, err := mergePatch(a, b)
		if err != nil {
			return false, err
		}
		if _, err := w.Write(append(patch, '\n')); err != nil {
			return false, err
		}
		return len(changes) != 0, nil
	}
	if len(changes) == 0 {
		return false, nil
	}
	if err := libdiff.Print(w, changes, cfg.colors(w)); err != nil {
		return false, err
	}
	return true, nil
}

// mergePatch returns the JSON merge patch taking the JSON export of a to
// that of b.
func mergePatch(a, b *ir.Document) ([]byte, error) {
	ja, err := jsonExport(a)
	if err != nil {
		return nil, err
	}
	jb, err := jsonExport(b)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(ja, jb)
	if err != nil {
		return nil, fmt.Errorf("error creating merge patch: %w", err)
	}
	return patch, nil
}

func jsonExport(doc *ir.Document) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := encode.EncodeDocument(doc, buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
