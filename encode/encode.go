package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/styx-format/go-styx/format"
	"github.com/signadot/styx-format/go-styx/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	wire          bool

	format format.Format

	Color func(ir.PayloadKind, ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent < 0 {
		es.indent = 0
	}
	if !es.format.IsSexp() {
		es.Color = nil
	}
	return es
}

// Encode writes v followed by a newline.
func Encode(v ir.Value, w io.Writer, opts ...EncodeOption) error {
	if !v.Exists() {
		return fmt.Errorf("%w: absent value", ErrEncoding)
	}
	es := newState(opts)
	switch es.format {
	case format.SexpFormat:
		sw := &sexpWriter{w: w, es: es}
		sw.value(v)
		sw.str("\n")
		return sw.err
	case format.JSONFormat:
		return encodeJSON(v, w, es)
	case format.YAMLFormat:
		return encodeYAML(v, w, es)
	default:
		return fmt.Errorf("%w: unknown format %s", ErrEncoding, es.format)
	}
}

// EncodeDocument writes the document.  In s-expression format the root
// entries are wrapped in a document form; other formats encode the root
// object.
func EncodeDocument(d *ir.Document, w io.Writer, opts ...EncodeOption) error {
	if d.Released() {
		return fmt.Errorf("%w: document released", ErrEncoding)
	}
	if !FormatFromOpts(opts...).IsSexp() {
		return Encode(d.RootValue(), w, opts...)
	}
	sw := &sexpWriter{w: w, es: newState(opts)}
	sw.document(d.Root())
	sw.str("\n")
	return sw.err
}

// sexpWriter writes the s-expression tree.  Errors are sticky.
type sexpWriter struct {
	w   io.Writer
	es  *EncState
	err error
}

func (sw *sexpWriter) str(s string) {
	if sw.err != nil {
		return
	}
	_, sw.err = io.WriteString(sw.w, s)
}

func (sw *sexpWriter) color(k ir.PayloadKind, a ColorAttr, s string) string {
	if sw.es.Color == nil {
		return s
	}
	return sw.es.Color(k, a, s)
}

// nl starts a new line at depth plus extra levels.
func (sw *sexpWriter) nl(extra int) {
	if sw.es.wire {
		sw.str(" ")
		return
	}
	sw.str("\n" + strings.Repeat(" ", sw.es.indent*(sw.es.depth+extra)))
}

func (sw *sexpWriter) open(k ir.PayloadKind, head string, s ir.Span) {
	sw.str(sw.color(k, ParenColor, "("))
	sw.str(sw.color(k, HeadColor, head))
	sw.str(" ")
	sw.str(sw.color(k, SpanColor, s.String()))
}

func (sw *sexpWriter) close(k ir.PayloadKind) {
	sw.str(sw.color(k, ParenColor, ")"))
}

func (sw *sexpWriter) document(root ir.Object) {
	sw.str(sw.color(ir.ObjectPayload, ParenColor, "("))
	sw.str(sw.color(ir.ObjectPayload, HeadColor, "document"))
	sw.str(" ")
	sw.str(sw.color(ir.ObjectPayload, SpanColor, "[-1, -1]"))
	sw.es.depth++
	sw.entries(root)
	sw.es.depth--
	sw.nl(0)
	sw.close(ir.ObjectPayload)
}

func (sw *sexpWriter) entries(o ir.Object) {
	for k, v := range o.All() {
		sw.nl(0)
		sw.str(sw.color(ir.ObjectPayload, ParenColor, "("))
		sw.str(sw.color(ir.ObjectPayload, HeadColor, "entry"))
		sw.es.depth++
		sw.nl(0)
		sw.value(k)
		sw.nl(0)
		sw.value(v)
		sw.es.depth--
		sw.close(ir.ObjectPayload)
	}
}

func (sw *sexpWriter) value(v ir.Value) {
	tag, tagged := v.Tag()
	kind := v.Kind()
	if !tagged {
		if kind == ir.NonePayload {
			sw.open(kind, "unit", v.Span())
			sw.close(kind)
			return
		}
		sw.payload(v, v.Span())
		return
	}
	sw.open(kind, "tag", v.Span())
	sw.str(" " + sw.color(kind, TagColor, strconv.Quote(tag)))
	if kind != ir.NonePayload {
		ts, _ := v.TagSpan()
		sw.es.depth++
		sw.nl(0)
		sw.payload(v, ir.Span{Start: ts.End, End: v.Span().End})
		sw.es.depth--
	}
	sw.close(kind)
}

// payload writes the untagged part of v, which covers span.
func (sw *sexpWriter) payload(v ir.Value, span ir.Span) {
	kind := v.Kind()
	switch kind {
	case ir.ScalarPayload:
		s, _ := v.Scalar()
		sw.open(kind, "scalar", span)
		sw.str(" " + sw.color(kind, KindColor, v.ScalarKind().String()))
		sw.str(" " + sw.color(kind, ValueColor, `"`+escape(s)+`"`))
		sw.close(kind)
	case ir.SequencePayload:
		seq, _ := v.Sequence()
		sw.open(kind, "sequence", span)
		sw.es.depth++
		for _, item := range seq.All() {
			sw.nl(0)
			sw.value(item)
		}
		sw.es.depth--
		sw.close(kind)
	case ir.ObjectPayload:
		o, _ := v.Object()
		sw.open(kind, "object", span)
		if o.Len() > 0 {
			sw.es.depth++
			sw.entries(o)
			sw.es.depth--
			sw.nl(0)
		}
		sw.close(kind)
	}
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escape(s string) string {
	return escaper.Replace(s)
}
