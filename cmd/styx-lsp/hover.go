package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/styx-format/go-styx/ir"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	var res *protocol.Hover
	s.docs.view(string(params.TextDocument.URI), func(d *document) {
		if d == nil || d.doc == nil {
			return
		}
		text, span, ok := d.hover(d.offset(params.Position))
		if !ok {
			return
		}
		r := d.rangeOf(span.Start, span.End)
		res = &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.Markdown,
				Value: text,
			},
			Range: &r,
		}
	})
	return res, nil
}

// hover describes the innermost value at off: its path, kind, tag and
// scalar text.
func (d *document) hover(off int) (string, ir.Span, bool) {
	steps := d.doc.Locate(off)
	if len(steps) == 0 {
		return "", ir.Span{}, false
	}
	v := steps[len(steps)-1].Child
	parts := []string{"`" + ir.JoinSegments(steps).String() + "`"}
	if tag, ok := v.Tag(); ok {
		parts = append(parts, "tag `@"+tag+"`")
	}
	switch v.Kind() {
	case ir.NonePayload:
		if v.IsUnit() {
			parts = append(parts, "unit")
		} else {
			parts = append(parts, "no payload")
		}
	case ir.ScalarPayload:
		s, _ := v.Scalar()
		parts = append(parts, fmt.Sprintf("%s scalar\n```\n%s\n```", v.ScalarKind(), s))
	case ir.SequencePayload:
		seq, _ := v.Sequence()
		parts = append(parts, fmt.Sprintf("sequence of %d", seq.Len()))
	case ir.ObjectPayload:
		o, _ := v.Object()
		parts = append(parts, fmt.Sprintf("object with %d entries", o.Len()))
	}
	return strings.Join(parts, "\n\n"), v.Span(), true
}
