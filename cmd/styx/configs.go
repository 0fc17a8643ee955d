package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/styx-format/go-styx/encode"
	"github.com/signadot/styx-format/go-styx/format"
	"github.com/signadot/styx-format/go-styx/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	MaxDepth    int  `cli:"name=max-depth desc='maximum nesting of objects and sequences'"`
	Strict      bool `cli:"name=strict desc='reject duplicate keys'"`
	LiteralKeys bool `cli:"name=literal-keys desc='do not expand dotted keys'"`
	Color       bool `cli:"name=color desc='encode with color'"`
	WireOut     bool `cli:"name=wire desc='output in compact format'"`
	Indent      int  `cli:"name=indent desc='indentation width (default 2)'"`

	ConfigFile string `cli:"name=config desc='TOML file with option defaults'"`

	OutFormat *format.Format
	FileColor *bool

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// optSet reports whether the main option name was given on the command
// line.
func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{parse.MaxDepth(cfg.MaxDepth)}
	if cfg.Strict {
		res = append(res, parse.StrictKeys())
	}
	if cfg.LiteralKeys {
		res = append(res, parse.LiteralKeys())
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.SexpFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colors decides coloring: the -color option, then the config file, then
// whether w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.optSet("color") {
		return false
	}
	if cfg.FileColor != nil {
		return *cfg.FileColor
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='only set the exit code'"`

	Check *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse    bool `cli:"name=r desc='reverse the diff'"`
	MergePatch bool `cli:"name=merge-patch desc='print a JSON merge patch (RFC 7396) instead'"`

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Tags bool `cli:"name=tags desc='show available functions'"`

	Eval *cli.Command
}

type TokensConfig struct {
	*MainConfig

	Tokens *cli.Command
}
