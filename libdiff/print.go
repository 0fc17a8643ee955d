package libdiff

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/styx-format/go-styx/encode"
	"github.com/signadot/styx-format/go-styx/format"
	"github.com/signadot/styx-format/go-styx/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func tagString(t string) string {
	if t == "" {
		return "(none)"
	}
	return "@" + t
}

// valueString renders v as one line of JSON.
func valueString(v ir.Value) string {
	if !v.Exists() {
		return "(absent)"
	}
	return encode.MustString(v, encode.EncodeFormat(format.JSONFormat))
}

// textString renders text edits inline, [-deleted-]{+inserted+}.
func textString(diffs []diffpatch.Diff) string {
	b := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return strconv.Quote(b.String())
}

func colorFor(op Op) *color.Color {
	var c *color.Color
	switch op {
	case Delete:
		c = color.New(color.FgRed)
	case Insert:
		c = color.New(color.FgGreen)
	case Retag:
		c = color.New(color.FgCyan)
	default:
		c = color.New(color.FgYellow)
	}
	c.EnableColor()
	return c
}

// Print writes one line per change.  With colors, text edits are shown
// with go-diff's pretty printer.
func Print(w io.Writer, changes []Change, colors bool) error {
	diffCfg := diffpatch.New()
	for _, c := range changes {
		line := c.String()
		if colors {
			if c.Op == Text {
				path := c.Path.String()
				if path == "" {
					path = "."
				}
				line = colorFor(c.Op).Sprint(c.Op.Symbol()+" "+path+":") + " " + diffCfg.DiffPrettyText(c.Diffs)
			} else {
				line = colorFor(c.Op).Sprint(line)
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
