package main

import (
	"context"
	"strconv"

	"github.com/signadot/styx-format/go-styx/ir"
	"github.com/signadot/styx-format/go-styx/token"

	"go.lsp.dev/protocol"
)

// These must match the order used in the encoded data.
var (
	tokenTypes = []protocol.SemanticTokenTypes{
		protocol.SemanticTokenComment,
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
	}
	tokenModifiers = []protocol.SemanticTokenModifiers{
		protocol.SemanticTokenModifierDefinition,
	}
)

const (
	semComment uint32 = iota
	semKeyword
	semString
	semNumber
	semOperator
	semProperty
)

const modDefinition uint32 = 1 << 0

type semToken struct {
	line, char, length uint32
	typ, mods          uint32
}

// semanticTokens classifies the lexemes of d in source order.  Keys are
// known only when d parsed; otherwise they are reported as strings.
// Tokens spanning lines are split at line ends.
func (d *document) semanticTokens() []semToken {
	keys := map[int]bool{}
	if d.doc != nil {
		collectKeys(d.doc.RootValue(), keys)
	}
	var res []semToken
	lx := token.NewLexer([]byte(d.content), token.KeepComments())
	for {
		t, err := lx.Next()
		if err != nil || t.Type == token.TEOF {
			break
		}
		typ, mods, ok := classify(&t, keys)
		if !ok {
			continue
		}
		res = d.appendSplit(res, t.Pos.Offset, t.End, typ, mods)
	}
	return res
}

func classify(t *token.Token, keys map[int]bool) (uint32, uint32, bool) {
	switch t.Type {
	case token.TComment:
		return semComment, 0, true
	case token.TTag:
		return semKeyword, modDefinition, true
	case token.TAt:
		return semKeyword, 0, true
	case token.TGT:
		return semOperator, 0, true
	case token.TWord, token.TQuoted, token.TRaw, token.THeredoc:
		if keys[t.Pos.Offset] {
			return semProperty, 0, true
		}
		if t.Type == token.TWord {
			if _, err := strconv.ParseFloat(t.Text, 64); err == nil {
				return semNumber, 0, true
			}
		}
		return semString, 0, true
	}
	return 0, 0, false
}

func collectKeys(v ir.Value, keys map[int]bool) {
	if o, ok := v.Object(); ok {
		for k, val := range o.All() {
			keys[k.Span().Start] = true
			collectKeys(val, keys)
		}
		return
	}
	if seq, ok := v.Sequence(); ok {
		for _, item := range seq.All() {
			collectKeys(item, keys)
		}
	}
}

func (d *document) appendSplit(res []semToken, start, end int, typ, mods uint32) []semToken {
	for start < end {
		p := d.position(start)
		lineEnd := d.pos.Offset(int(p.Line), len(d.content))
		segEnd := min(end, lineEnd)
		if n := utf16Len(d.content[start:segEnd]); n > 0 {
			res = append(res, semToken{line: p.Line, char: p.Character, length: uint32(n), typ: typ, mods: mods})
		}
		if segEnd == lineEnd && lineEnd < end {
			segEnd++
		}
		if segEnd <= start {
			break
		}
		start = segEnd
	}
	return res
}

// encodeSemanticTokens produces the relative encoding of LSP.
func encodeSemanticTokens(toks []semToken) []uint32 {
	data := make([]uint32, 0, 5*len(toks))
	var prevLine, prevChar uint32
	for _, t := range toks {
		deltaLine := t.line - prevLine
		deltaChar := t.char
		if deltaLine == 0 {
			deltaChar = t.char - prevChar
		}
		data = append(data, deltaLine, deltaChar, t.length, t.typ, t.mods)
		prevLine, prevChar = t.line, t.char
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	res := &protocol.SemanticTokens{Data: []uint32{}}
	s.docs.view(string(params.TextDocument.URI), func(d *document) {
		if d == nil {
			return
		}
		res.Data = encodeSemanticTokens(d.semanticTokens())
	})
	return res, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	res := &protocol.SemanticTokens{Data: []uint32{}}
	s.docs.view(string(params.TextDocument.URI), func(d *document) {
		if d == nil {
			return
		}
		var in []semToken
		for _, t := range d.semanticTokens() {
			if t.line >= params.Range.Start.Line && t.line <= params.Range.End.Line {
				in = append(in, t)
			}
		}
		res.Data = encodeSemanticTokens(in)
	})
	return res, nil
}
