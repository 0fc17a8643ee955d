package main

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/styx-format/go-styx/format"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadFileConfig(t *testing.T) {
	p := writeFile(t, "config.toml", `
max_depth = 64
strict = true
color = false
format = "json"
indent = 4
`)
	fc, err := LoadFileConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	no, four, f := false, 4, format.JSONFormat
	want := &FileConfig{MaxDepth: 64, Strict: true, Color: &no, Format: &f, Indent: &four}
	if diff := cmp.Diff(want, fc); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadFileConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown key", content: "colour = true\n"},
		{name: "bad format", content: "format = \"xml\"\n"},
		{name: "negative depth", content: "max_depth = -1\n"},
		{name: "negative indent", content: "indent = -2\n"},
		{name: "syntax", content: "strict = \n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFileConfig(writeFile(t, "c.toml", tc.content))
			if !errors.Is(err, ErrConfig) {
				t.Errorf("got %v", err)
			}
		})
	}
	_, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing: %v", err)
	}
}

func TestApply(t *testing.T) {
	yes, two, y := true, 2, format.YAMLFormat
	cfg := &MainConfig{}
	cfg.apply(&FileConfig{MaxDepth: 10, LiteralKeys: true, Color: &yes, Format: &y, Indent: &two})
	if cfg.MaxDepth != 10 || !cfg.LiteralKeys || cfg.Strict || cfg.Indent != 2 {
		t.Errorf("got %+v", cfg)
	}
	if cfg.outFormat() != format.YAMLFormat {
		t.Errorf("format %s", cfg.outFormat())
	}
	if !cfg.colors(nil) {
		t.Errorf("file color ignored")
	}

	j := format.JSONFormat
	cfg = &MainConfig{OutFormat: &j}
	cfg.apply(&FileConfig{Format: &y})
	if cfg.outFormat() != format.JSONFormat {
		t.Errorf("option overridden by file: %s", cfg.outFormat())
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("STYX_CONFIG", "/etc/styx.toml")
	if got := DefaultConfigPath(); got != "/etc/styx.toml" {
		t.Errorf("got %s", got)
	}
	if runtime.GOOS != "linux" {
		return
	}
	t.Setenv("STYX_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/home/u/.config")
	if got := DefaultConfigPath(); got != "/home/u/.config/styx/config.toml" {
		t.Errorf("got %s", got)
	}
}

func TestLoadFileConfigOptional(t *testing.T) {
	t.Setenv("STYX_CONFIG", filepath.Join(t.TempDir(), "none.toml"))
	cfg := &MainConfig{}
	if err := cfg.loadFileConfig(); err != nil {
		t.Errorf("missing default config: %v", err)
	}
	cfg = &MainConfig{ConfigFile: filepath.Join(t.TempDir(), "none.toml")}
	if err := cfg.loadFileConfig(); err == nil {
		t.Errorf("missing explicit config accepted")
	}
	cfg = &MainConfig{ConfigFile: writeFile(t, "c.toml", "strict = true\n")}
	if err := cfg.loadFileConfig(); err != nil || !cfg.Strict {
		t.Errorf("got %v %+v", err, cfg)
	}
}
