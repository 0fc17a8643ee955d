// Package format names the output formats of the styx tools.
package format

import (
	"errors"
	"fmt"
)

// Format selects how documents are written out.
type Format int

const (
	// SexpFormat is the span-annotated s-expression tree.
	SexpFormat Format = iota
	// JSONFormat and YAMLFormat export the document data.
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

// names holds the canonical name of each format first, then its
// abbreviations.
var names = [...][]string{
	SexpFormat: {"sexp", "s"},
	JSONFormat: {"json", "j"},
	YAMLFormat: {"yaml", "y"},
}

// AllFormats lists the formats, the default first.
func AllFormats() []Format {
	res := make([]Format, len(names))
	for i := range names {
		res[i] = Format(i)
	}
	return res
}

func ParseFormat(v string) (Format, error) {
	for i, ns := range names {
		for _, n := range ns {
			if n == v {
				return Format(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(names)
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return names[f][0]
}

func (f Format) IsSexp() bool { return f == SexpFormat }

// MarshalText and UnmarshalText let a Format be read from config files.
func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}
