package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/styx-format/go-styx/format"

	"github.com/BurntSushi/toml"
)

// FileConfig holds defaults read from a TOML file.  Command line options
// take precedence.
//
//	max_depth = 64
//	strict = true
//	literal_keys = false
//	color = false
//	format = "json"
//	indent = 4
type FileConfig struct {
	MaxDepth    int            `toml:"max_depth"`
	Strict      bool           `toml:"strict"`
	LiteralKeys bool           `toml:"literal_keys"`
	Color       *bool          `toml:"color"`
	Format      *format.Format `toml:"format"`
	Indent      *int           `toml:"indent"`
}

var ErrConfig = errors.New("config error")

// DefaultConfigPath returns $STYX_CONFIG if set and otherwise
// styx/config.toml under the user config directory.
func DefaultConfigPath() string {
	if p := os.Getenv("STYX_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "styx", "config.toml")
}

func LoadFileConfig(path string) (*FileConfig, error) {
	fc := &FileConfig{}
	md, err := toml.DecodeFile(path, fc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("%w: %s: unknown key %q", ErrConfig, path, undecoded[0].String())
	}
	if fc.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: %s: negative max_depth", ErrConfig, path)
	}
	if fc.Indent != nil && *fc.Indent < 0 {
		return nil, fmt.Errorf("%w: %s: negative indent", ErrConfig, path)
	}
	return fc, nil
}

func (cfg *MainConfig) apply(fc *FileConfig) {
	if fc.MaxDepth != 0 && !cfg.optSet("max-depth") {
		cfg.MaxDepth = fc.MaxDepth
	}
	if fc.Strict && !cfg.optSet("strict") {
		cfg.Strict = true
	}
	if fc.LiteralKeys && !cfg.optSet("literal-keys") {
		cfg.LiteralKeys = true
	}
	if fc.Color != nil && !cfg.optSet("color") {
		cfg.FileColor = fc.Color
	}
	if fc.Format != nil && cfg.OutFormat == nil {
		cfg.OutFormat = fc.Format
	}
	if fc.Indent != nil && !cfg.optSet("indent") {
		cfg.Indent = *fc.Indent
	}
}
