package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/styx-format/go-styx/ir"
)

// MustString encodes v on one line, panicking on error.
func MustString(v ir.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	opts = append(opts, EncodeWire(true))
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
