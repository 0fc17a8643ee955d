// Package parse provides Styx parsing support.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/styx-format/go-styx/ir"
	"github.com/signadot/styx-format/go-styx/token"
)

// Parse parses d into a document.  Exactly one of the results is non-nil.
// Lexical errors are returned as *token.LexError, structural ones as
// *ParseError.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	lex := token.NewLexer(d)
	p := &parser{
		lex:  lex,
		b:    ir.NewBuilder(lex.Source()),
		opts: getOpts(opts),
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	root, err := p.document()
	if err != nil {
		return nil, err
	}
	return p.b.Finish(root), nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Document, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	lex   *token.Lexer
	b     *ir.Builder
	opts  *parseOpts
	tok   token.Token
	ahead []token.Token
	depth int
}

func (p *parser) advance() error {
	if len(p.ahead) > 0 {
		p.tok = p.ahead[0]
		p.ahead = p.ahead[1:]
		return nil
	}
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) peek() (*token.Token, error) {
	if len(p.ahead) == 0 {
		t, err := p.lex.Next()
		if err != nil {
			return nil, err
		}
		p.ahead = append(p.ahead, t)
	}
	return &p.ahead[0], nil
}

func (p *parser) skipNewlines() error {
	for p.tok.Type == token.TNewline {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

func span(t *token.Token) ir.Span {
	return ir.Span{Start: t.Pos.Offset, End: t.End}
}

// ends reports whether tt may directly follow a complete value.
func ends(tt token.TokenType) bool {
	switch tt {
	case token.TNewline, token.TEOF, token.TRCurl, token.TRParen, token.TComma:
		return true
	}
	return false
}

func (p *parser) enter(t *token.Token) error {
	return p.descend(t, 1)
}

// descend adds n levels of nesting starting at t.
func (p *parser) descend(t *token.Token, n int) error {
	p.depth += n
	if p.depth > p.opts.maxDepth {
		return &ParseError{
			Err:   ErrDepthExceeded,
			Pos:   t.Pos,
			Found: fmt.Sprintf("nesting deeper than %d", p.opts.maxDepth),
		}
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) document() (ir.Ref, error) {
	if err := p.skipNewlines(); err != nil {
		return 0, err
	}
	if p.tok.Type == token.TLCurl {
		root, err := p.object()
		if err != nil {
			return 0, err
		}
		if err := p.skipNewlines(); err != nil {
			return 0, err
		}
		if p.tok.Type != token.TEOF {
			return 0, unexpected(&p.tok, "end of input")
		}
		return root, nil
	}
	f := p.newFrame()
	sep, err := p.entries(f, nil)
	if err != nil {
		return 0, err
	}
	n := len(p.lex.Source())
	return p.b.Object(f.commit(p.b), sep, ir.Span{Start: 0, End: n}), nil
}

// entries parses object entries up to the closing brace of open, or up
// to the end of input when open is nil.  Inside braces a newline, including
// one right after the brace, selects newline separators and a comma selects
// comma separators; seeing both is an error.
func (p *parser) entries(f *objFrame, open *token.Token) (ir.Separator, error) {
	closer := token.TEOF
	expected := `newline or ","`
	sep, hasSep := ir.NewlineSeparator, false
	if open != nil {
		closer = token.TRCurl
		expected = `newline, "," or "}"`
		sep = ir.CommaSeparator
	}
	mixed := func(t *token.Token) error {
		return &ParseError{
			Err:   ErrMixedSeparators,
			Pos:   t.Pos,
			Found: "both commas and newlines separating entries",
		}
	}
	newlines := func() error {
		if open == nil {
			if err := p.skipNewlines(); err != nil {
				return err
			}
			if p.tok.Type != token.TEOF && p.tok.Type != token.TComma {
				sep = ir.NewlineSeparator
			}
			return nil
		}
		if hasSep && sep == ir.CommaSeparator {
			return mixed(&p.tok)
		}
		sep, hasSep = ir.NewlineSeparator, true
		return p.skipNewlines()
	}
	if p.tok.Type == token.TNewline {
		if err := newlines(); err != nil {
			return 0, err
		}
	}
	for {
		switch p.tok.Type {
		case closer:
			return sep, nil
		case token.TEOF:
			return 0, &ParseError{Err: ErrUnclosed, Pos: open.Pos, Expected: `"}"`, Found: "end of input"}
		case token.TComma:
			if open != nil && hasSep && sep == ir.NewlineSeparator {
				return 0, mixed(&p.tok)
			}
			return 0, unexpected(&p.tok, "key")
		}
		if err := p.entry(f); err != nil {
			return 0, err
		}
		switch p.tok.Type {
		case token.TComma:
			if open != nil && hasSep && sep == ir.NewlineSeparator {
				return 0, mixed(&p.tok)
			}
			sep, hasSep = ir.CommaSeparator, true
			if err := p.advance(); err != nil {
				return 0, err
			}
			if p.tok.Type == token.TNewline {
				if err := newlines(); err != nil {
					return 0, err
				}
			}
		case token.TNewline:
			if err := newlines(); err != nil {
				return 0, err
			}
		case closer, token.TEOF:
		default:
			return 0, unexpected(&p.tok, expected)
		}
	}
}

func (p *parser) entry(f *objFrame) error {
	t := p.tok
	if t.Type == token.TWord && !p.opts.literalKeys && strings.Contains(t.Text, ".") {
		if attr, err := p.isAttr(); err != nil {
			return err
		} else if attr {
			return &ParseError{Err: ErrInvalidKey, Pos: t.Pos, Found: "attribute object"}
		}
		if err := p.advance(); err != nil {
			return err
		}
		// each segment after the first opens an object
		n := strings.Count(t.Text, ".")
		if err := p.descend(&t, n); err != nil {
			return err
		}
		val, err := p.entryValue(span(&t))
		if err != nil {
			return err
		}
		p.depth -= n
		return p.addDotted(f, &t, val)
	}
	key, name, err := p.key()
	if err != nil {
		return err
	}
	val, err := p.entryValue(p.b.Span(key))
	if err != nil {
		return err
	}
	return p.add(f, key, name, t.Pos, val)
}

// entryValue parses the value of an entry, which is the unit value when
// the entry ends right after its key.
func (p *parser) entryValue(keySpan ir.Span) (ir.Ref, error) {
	switch p.tok.Type {
	case token.TNewline, token.TComma, token.TRCurl, token.TEOF:
		return p.b.Unit(keySpan), nil
	}
	return p.value()
}

func (p *parser) key() (ir.Ref, string, error) {
	t := p.tok
	invalid := func(what string) (ir.Ref, string, error) {
		return 0, "", &ParseError{Err: ErrInvalidKey, Pos: t.Pos, Found: what}
	}
	switch t.Type {
	case token.TWord:
		attr, err := p.isAttr()
		if err != nil {
			return 0, "", err
		}
		if attr {
			return invalid("attribute object")
		}
		fallthrough
	case token.TQuoted, token.TRaw:
		ref, err := p.scalar()
		if err != nil {
			return 0, "", err
		}
		return ref, t.Text, nil
	case token.TTag:
		ref, err := p.tagged()
		if err != nil {
			return 0, "", err
		}
		name, kind, ok := p.b.ScalarOf(ref)
		if !ok {
			return invalid("tag without scalar payload")
		}
		if kind == ir.HeredocScalar {
			return invalid("heredoc")
		}
		return ref, name, nil
	case token.THeredoc:
		return invalid("heredoc")
	case token.TAt:
		return invalid("unit")
	case token.TLCurl:
		return invalid("object")
	case token.TLParen:
		return invalid("sequence")
	}
	return 0, "", unexpected(&t, "key")
}

func (p *parser) isAttr() (bool, error) {
	if p.tok.Type != token.TWord {
		return false, nil
	}
	nt, err := p.peek()
	if err != nil {
		return false, err
	}
	return nt.Type == token.TGT && !nt.SpaceBefore, nil
}

func (p *parser) value() (ir.Ref, error) {
	t := p.tok
	switch t.Type {
	case token.TAt:
		if err := p.advance(); err != nil {
			return 0, err
		}
		if err := p.unitEnd(); err != nil {
			return 0, err
		}
		return p.b.Unit(span(&t)), nil
	case token.TTag:
		return p.tagged()
	case token.TLCurl:
		return p.object()
	case token.TLParen:
		return p.sequence()
	case token.TWord:
		attr, err := p.isAttr()
		if err != nil {
			return 0, err
		}
		if attr {
			return p.attributes()
		}
		return p.scalar()
	case token.TQuoted, token.TRaw, token.THeredoc:
		return p.scalar()
	}
	return 0, unexpected(&t, "value")
}

// unitEnd checks that a '@' just consumed is not glued to what follows.
func (p *parser) unitEnd() error {
	if p.tok.SpaceBefore || ends(p.tok.Type) {
		return nil
	}
	return &ParseError{Err: ErrInvalidTag, Pos: p.tok.Pos, Found: found(&p.tok)}
}

func (p *parser) scalar() (ir.Ref, error) {
	t := p.tok
	var kind ir.ScalarKind
	switch t.Type {
	case token.TWord:
		kind = ir.BareScalar
	case token.TQuoted:
		kind = ir.QuotedScalar
	case token.TRaw:
		kind = ir.RawScalar
	case token.THeredoc:
		kind = ir.HeredocScalar
	default:
		return 0, unexpected(&t, "scalar")
	}
	if err := p.advance(); err != nil {
		return 0, err
	}
	return p.b.Scalar(t.Text, kind, span(&t)), nil
}

func (p *parser) tagged() (ir.Ref, error) {
	t := p.tok
	if err := p.advance(); err != nil {
		return 0, err
	}
	var (
		ref ir.Ref
		err error
	)
	nt := p.tok
	switch {
	case nt.SpaceBefore:
		ref = p.b.Unit(span(&t))
	case nt.Type == token.TLCurl:
		ref, err = p.object()
	case nt.Type == token.TLParen:
		ref, err = p.sequence()
	case nt.Type == token.TQuoted, nt.Type == token.TRaw, nt.Type == token.THeredoc:
		ref, err = p.scalar()
	case nt.Type == token.TAt:
		if err = p.advance(); err == nil {
			err = p.unitEnd()
		}
		ref = p.b.Unit(span(&nt))
	case nt.Type == token.TWord, nt.Type == token.TTag:
		return 0, &ParseError{
			Err:   ErrInvalidTag,
			Pos:   t.Pos,
			Found: strconv.Quote(p.lex.Source()[t.Pos.Offset:nt.End]),
		}
	default:
		ref = p.b.Unit(span(&t))
	}
	if err != nil {
		return 0, err
	}
	p.b.Tag(ref, t.Text, span(&t))
	return ref, nil
}

func (p *parser) object() (ir.Ref, error) {
	open := p.tok
	if err := p.enter(&open); err != nil {
		return 0, err
	}
	defer p.leave()
	if err := p.advance(); err != nil {
		return 0, err
	}
	f := p.newFrame()
	sep, err := p.entries(f, &open)
	if err != nil {
		return 0, err
	}
	end := p.tok.End
	if err := p.advance(); err != nil {
		return 0, err
	}
	return p.b.Object(f.commit(p.b), sep, ir.Span{Start: open.Pos.Offset, End: end}), nil
}

func (p *parser) sequence() (ir.Ref, error) {
	open := p.tok
	if err := p.enter(&open); err != nil {
		return 0, err
	}
	defer p.leave()
	if err := p.advance(); err != nil {
		return 0, err
	}
	var items []ir.Ref
	for {
		if err := p.skipNewlines(); err != nil {
			return 0, err
		}
		switch p.tok.Type {
		case token.TRParen:
			end := p.tok.End
			if err := p.advance(); err != nil {
				return 0, err
			}
			return p.b.Sequence(items, ir.Span{Start: open.Pos.Offset, End: end}), nil
		case token.TEOF:
			return 0, &ParseError{Err: ErrUnclosed, Pos: open.Pos, Expected: `")"`, Found: "end of input"}
		case token.TComma:
			return 0, unexpected(&p.tok, "whitespace between sequence items")
		}
		item, err := p.value()
		if err != nil {
			return 0, err
		}
		items = append(items, item)
	}
}

// attributes parses k1>v1 k2>v2 ... into an object.
func (p *parser) attributes() (ir.Ref, error) {
	start := p.tok.Pos.Offset
	end := start
	f := p.newFrame()
	for {
		kt := p.tok
		key := p.b.Scalar(kt.Text, ir.BareScalar, span(&kt))
		if err := p.advance(); err != nil {
			return 0, err
		}
		gt := p.tok
		if err := p.advance(); err != nil {
			return 0, err
		}
		if p.tok.SpaceBefore || ends(p.tok.Type) {
			return 0, &ParseError{Err: ErrUnexpected, Pos: gt.Pos, Expected: `value after ">"`, Found: found(&p.tok)}
		}
		var (
			val ir.Ref
			err error
		)
		if p.tok.Type == token.TWord {
			val, err = p.scalar()
		} else {
			val, err = p.value()
		}
		if err != nil {
			return 0, err
		}
		if err := p.add(f, key, kt.Text, kt.Pos, val); err != nil {
			return 0, err
		}
		end = p.b.Span(val).End
		attr, err := p.isAttr()
		if err != nil {
			return 0, err
		}
		if !attr {
			break
		}
	}
	return p.b.Object(f.commit(p.b), ir.CommaSeparator, ir.Span{Start: start, End: end}), nil
}
