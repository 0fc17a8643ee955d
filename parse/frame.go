package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/styx-format/go-styx/ir"
	"github.com/signadot/styx-format/go-styx/token"
)

// objFrame collects the entries of an object being parsed.  Objects
// introduced by dotted keys stay open in sub frames so that consecutive
// dotted keys sharing a prefix land in the same object.
type objFrame struct {
	ents []*pendingEntry
	// keys is non-nil with StrictKeys.
	keys map[string]struct{}
}

type pendingEntry struct {
	key  ir.Ref
	name string
	val  ir.Ref
	sub  *objFrame
	span ir.Span
}

func (p *parser) newFrame() *objFrame {
	f := &objFrame{}
	if p.opts.strict {
		f.keys = map[string]struct{}{}
	}
	return f
}

func (f *objFrame) checkDup(name string, pos token.Pos) error {
	if f.keys == nil {
		return nil
	}
	if _, ok := f.keys[name]; ok {
		return &ParseError{Err: ErrDuplicateKey, Pos: pos, Found: strconv.Quote(name)}
	}
	f.keys[name] = struct{}{}
	return nil
}

func (p *parser) add(f *objFrame, key ir.Ref, name string, pos token.Pos, val ir.Ref) error {
	if err := f.checkDup(name, pos); err != nil {
		return err
	}
	f.ents = append(f.ents, &pendingEntry{key: key, name: name, val: val})
	return nil
}

// addDotted adds the entry a.b.c val as a {b {c val}}, merging into the
// object opened by the previous entry when it was a dotted key with the
// same leading segments.
func (p *parser) addDotted(f *objFrame, t *token.Token, val ir.Ref) error {
	segs := strings.Split(t.Text, ".")
	spans := make([]ir.Span, len(segs))
	off := t.Pos.Offset
	for i, s := range segs {
		if s == "" {
			return &ParseError{
				Err:   ErrInvalidKey,
				Pos:   t.Pos,
				Found: fmt.Sprintf("empty segment in %q", t.Text),
			}
		}
		spans[i] = ir.Span{Start: off, End: off + len(s)}
		off += len(s) + 1
	}
	pd := p.lex.PosDoc()
	valEnd := p.b.Span(val).End
	last := len(segs) - 1
	for i, seg := range segs[:last] {
		if n := len(f.ents); n > 0 {
			if pe := f.ents[n-1]; pe.sub != nil && pe.name == seg {
				pe.span.End = max(pe.span.End, valEnd)
				f = pe.sub
				continue
			}
		}
		if err := f.checkDup(seg, pd.Pos(spans[i].Start)); err != nil {
			return err
		}
		pe := &pendingEntry{
			key:  p.b.Scalar(seg, ir.BareScalar, spans[i]),
			name: seg,
			sub:  p.newFrame(),
			span: ir.Span{Start: spans[i+1].Start, End: valEnd},
		}
		f.ents = append(f.ents, pe)
		f = pe.sub
	}
	key := p.b.Scalar(segs[last], ir.BareScalar, spans[last])
	return p.add(f, key, segs[last], pd.Pos(spans[last].Start), val)
}

// commit builds the objects of dotted sub frames and returns the entries
// of f in order.
func (f *objFrame) commit(b *ir.Builder) []ir.EntryRef {
	res := make([]ir.EntryRef, len(f.ents))
	for i, pe := range f.ents {
		val := pe.val
		if pe.sub != nil {
			val = b.Object(pe.sub.commit(b), ir.NewlineSeparator, pe.span)
		}
		res[i] = ir.EntryRef{Key: pe.key, Value: val}
	}
	return res
}
