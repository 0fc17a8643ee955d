// Package debug gates diagnostic logging of the styx binaries on
// environment variables.  A flag is on when its variable parses as a true
// boolean, for example STYX_DEBUG_PARSE=1.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Lex    bool
	Parse  bool
	LSP    bool
	Eval   bool
	Diff   bool
	Config bool
}

var d *debug

func init() {
	Reload()
}

// Reload re-reads the environment.
func Reload() {
	d = &debug{}
	d.Lex = boolEnv("STYX_DEBUG_LEX")
	d.Parse = boolEnv("STYX_DEBUG_PARSE")
	d.LSP = boolEnv("STYX_DEBUG_LSP")
	d.Eval = boolEnv("STYX_DEBUG_EVAL")
	d.Diff = boolEnv("STYX_DEBUG_DIFF")
	d.Config = boolEnv("STYX_DEBUG_CONFIG")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func LSP() bool {
	return d.LSP
}
func Eval() bool {
	return d.Eval
}
func Diff() bool {
	return d.Diff
}
func Config() bool {
	return d.Config
}
