package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/styx-format/go-styx/debug"

	"github.com/scott-cotton/cli"
)

func styxMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.loadFileConfig(); err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// loadFileConfig applies the config file, if any, to options not given
// on the command line.
func (cfg *MainConfig) loadFileConfig() error {
	path, explicit := cfg.ConfigFile, cfg.ConfigFile != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if path == "" {
		return nil
	}
	fc, err := LoadFileConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if debug.Config() {
		debug.Logf("config %s: %+v\n", path, *fc)
	}
	cfg.apply(fc)
	return nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}
