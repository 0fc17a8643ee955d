package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/signadot/styx-format/go-styx/ir"

	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	res := []interface{}{}
	s.docs.view(string(params.TextDocument.URI), func(d *document) {
		if d == nil || d.doc == nil {
			return
		}
		for _, sym := range d.symbols(d.doc.RootValue()) {
			res = append(res, sym)
		}
	})
	return res, nil
}

// symbols mirrors the entries and items of v.
func (d *document) symbols(v ir.Value) []protocol.DocumentSymbol {
	if v.Kind().IsLeaf() {
		return nil
	}
	var res []protocol.DocumentSymbol
	if o, ok := v.Object(); ok {
		for k, val := range o.All() {
			name, _ := k.Scalar()
			if name == "" {
				name = `""`
			}
			ks, vs := k.Span(), val.Span()
			res = append(res, protocol.DocumentSymbol{
				Name:           name,
				Detail:         detail(val),
				Kind:           symbolKind(val),
				Range:          d.rangeOf(min(ks.Start, vs.Start), max(ks.End, vs.End)),
				SelectionRange: d.rangeOf(ks.Start, ks.End),
				Children:       d.symbols(val),
			})
		}
		return res
	}
	if seq, ok := v.Sequence(); ok {
		for i, item := range seq.All() {
			r := d.rangeOf(item.Span().Start, item.Span().End)
			res = append(res, protocol.DocumentSymbol{
				Name:           fmt.Sprintf("[%d]", i),
				Detail:         detail(item),
				Kind:           symbolKind(item),
				Range:          r,
				SelectionRange: r,
				Children:       d.symbols(item),
			})
		}
	}
	return res
}

func detail(v ir.Value) string {
	res := ""
	if tag, ok := v.Tag(); ok {
		res = "@" + tag + " "
	}
	if v.Kind() == ir.ScalarPayload {
		return res + v.ScalarKind().String()
	}
	if v.IsUnit() {
		return "unit"
	}
	return res + v.Kind().String()
}

func symbolKind(v ir.Value) protocol.SymbolKind {
	switch v.Kind() {
	case ir.ObjectPayload:
		return protocol.SymbolKindObject
	case ir.SequencePayload:
		return protocol.SymbolKindArray
	case ir.ScalarPayload:
		s, _ := v.Scalar()
		if v.ScalarKind() == ir.BareScalar {
			if _, err := strconv.ParseFloat(s, 64); err == nil {
				return protocol.SymbolKindNumber
			}
		}
		return protocol.SymbolKindString
	}
	if v.IsUnit() {
		return protocol.SymbolKindNull
	}
	return protocol.SymbolKindConstant
}
