package encode

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/signadot/styx-format/go-styx/ir"
)

const (
	TagKey     = "$tag"
	PayloadKey = "$payload"
)

func encodeJSON(v ir.Value, w io.Writer, es *EncState) error {
	buf := &bytes.Buffer{}
	if err := writeJSON(buf, v); err != nil {
		return err
	}
	out := buf
	if !es.wire && es.indent > 0 {
		out = &bytes.Buffer{}
		if err := json.Indent(out, buf.Bytes(), "", strings.Repeat(" ", es.indent)); err != nil {
			return err
		}
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}

// writeJSON writes v compactly, keeping object entries in source order.
func writeJSON(buf *bytes.Buffer, v ir.Value) error {
	if tag, ok := v.Tag(); ok {
		buf.WriteByte('{')
		if err := writeJSONString(buf, TagKey); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeJSONString(buf, tag); err != nil {
			return err
		}
		buf.WriteByte(',')
		if err := writeJSONString(buf, PayloadKey); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeJSONPayload(buf, v); err != nil {
			return err
		}
		buf.WriteByte('}')
		return nil
	}
	return writeJSONPayload(buf, v)
}

func writeJSONPayload(buf *bytes.Buffer, v ir.Value) error {
	switch v.Kind() {
	case ir.ScalarPayload:
		s, _ := v.Scalar()
		return writeJSONString(buf, s)
	case ir.SequencePayload:
		seq, _ := v.Sequence()
		buf.WriteByte('[')
		for i, item := range seq.All() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ir.ObjectPayload:
		o, _ := v.Object()
		buf.WriteByte('{')
		i := 0
		for k, val := range o.All() {
			if i > 0 {
				buf.WriteByte(',')
			}
			i++
			ks, _ := k.Scalar()
			if err := writeJSONString(buf, ks); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, val); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
