package kpath

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/styx-format/go-styx/token"
)

var ErrSyntax = errors.New("path syntax")

// KPath is a parsed path.  Each segment is either a key (Field) or a
// sequence index (Index); Next links to the following segment.
type KPath struct {
	Field *string // Object key
	Index *int    // Sequence index
	Next  *KPath  // Next segment in path (nil for leaf)
}

func Field(name string) *KPath {
	return &KPath{Field: &name}
}

func Index(i int) *KPath {
	return &KPath{Index: &i}
}

// String returns the path in the syntax accepted by Parse.
//
//	KPath{Field: &"a", Next: &KPath{Index: &0}} → "a[0]"
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(quoteField(*x.Field))
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// SegmentString returns the string representation of this single segment.
func (p *KPath) SegmentString() string {
	if p == nil {
		return ""
	}
	if p.Field != nil {
		return quoteField(*p.Field)
	}
	if p.Index != nil {
		return "[" + strconv.Itoa(*p.Index) + "]"
	}
	return ""
}

func quoteField(f string) string {
	if f == "" || strings.ContainsAny(f, `.[]"`) || !token.IsBare(f) {
		return token.Quote(f)
	}
	return f
}

// Parse parses a path.  The empty path yields a nil *KPath, which
// addresses the starting value.
func Parse(kpath string) (*KPath, error) {
	if kpath == "" {
		return nil, nil
	}
	if kpath[0] == '.' {
		return nil, fmt.Errorf("%w: leading '.' in %q", ErrSyntax, kpath)
	}
	root := &KPath{}
	if err := parseKFrag(kpath, root); err != nil {
		return nil, fmt.Errorf("%w: %w in %q", ErrSyntax, err, kpath)
	}
	return root, nil
}

// MustParse is like Parse but panics on error.
func MustParse(kpath string) *KPath {
	kp, err := Parse(kpath)
	if err != nil {
		panic(err)
	}
	return kp
}

func parseKFrag(frag string, parent *KPath) error {
	switch frag[0] {
	case '.':
		if len(frag) == 1 {
			return errors.New("trailing '.'")
		}
		if frag[1] == '.' {
			return errors.New("empty segment")
		}
		return parseKFrag(frag[1:], parent)
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return errors.New("expected '[' <index> ']'")
		}
		index, err := parseKIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.Index = &index
		rest := frag[i+2:]
		if len(rest) == 0 {
			return nil
		}
		if rest[0] != '.' && rest[0] != '[' {
			return fmt.Errorf("unexpected %q after index", rest[0])
		}
		next := &KPath{}
		if err := parseKFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case ']':
		return errors.New("unbalanced ']'")
	default:
		field, rest, err := parseKField(frag)
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &KPath{}
		if err := parseKFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	}
}

func parseKIndex(is string) (int, error) {
	u64, err := strconv.ParseUint(is, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", is)
	}
	return int(u64), nil
}

func parseKField(frag string) (field, rest string, err error) {
	if frag[0] == '"' {
		return parseQuotedField(frag)
	}
	i := strings.IndexAny(frag, `.[]"`)
	if i == -1 {
		return frag, "", nil
	}
	if frag[i] == ']' || frag[i] == '"' {
		return "", "", fmt.Errorf("unexpected %q in key", frag[i])
	}
	return frag[:i], frag[i:], nil
}

func parseQuotedField(frag string) (field, rest string, err error) {
	b := &strings.Builder{}
	for i := 1; i < len(frag); i++ {
		switch c := frag[i]; c {
		case '"':
			rest = frag[i+1:]
			if rest != "" && rest[0] != '.' && rest[0] != '[' {
				return "", "", fmt.Errorf("unexpected %q after quoted key", rest[0])
			}
			return b.String(), rest, nil
		case '\\':
			if i+1 == len(frag) {
				return "", "", errors.New("unterminated quoted key")
			}
			i++
			switch frag[i] {
			case '"', '\\':
				b.WriteByte(frag[i])
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				return "", "", fmt.Errorf("bad escape \\%c in quoted key", frag[i])
			}
		default:
			b.WriteByte(c)
		}
	}
	return "", "", errors.New("unterminated quoted key")
}

// Len returns the number of segments.
func (p *KPath) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Append returns a new path consisting of p followed by q.  Neither
// argument is modified.
func (p *KPath) Append(q *KPath) *KPath {
	if p == nil {
		return q.clone(nil)
	}
	return p.clone(q.clone(nil))
}

// Parent returns the path without its last segment, or nil when p has at
// most one segment.
func (p *KPath) Parent() *KPath {
	if p == nil || p.Next == nil {
		return nil
	}
	parent := &KPath{Field: p.Field, Index: p.Index}
	cur := parent
	for x := p.Next; x.Next != nil; x = x.Next {
		cur.Next = &KPath{Field: x.Field, Index: x.Index}
		cur = cur.Next
	}
	return parent
}

// LastSegment returns a copy of the final segment.
func (p *KPath) LastSegment() *KPath {
	if p == nil {
		return nil
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return &KPath{Field: x.Field, Index: x.Index}
}

func (p *KPath) clone(tail *KPath) *KPath {
	if p == nil {
		return tail
	}
	res := &KPath{}
	cur := res
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			f := *x.Field
			cur.Field = &f
		}
		if x.Index != nil {
			i := *x.Index
			cur.Index = &i
		}
		if x.Next != nil {
			cur.Next = &KPath{}
			cur = cur.Next
		}
	}
	cur.Next = tail
	return res
}

// Compare orders paths segment by segment; indexes sort before keys.
func (p *KPath) Compare(other *KPath) int {
	pa, pb := p, other
	for pa != nil && pb != nil {
		if c := compareSegment(pa, pb); c != 0 {
			return c
		}
		pa, pb = pa.Next, pb.Next
	}
	switch {
	case pa == nil && pb == nil:
		return 0
	case pa == nil:
		return -1
	default:
		return 1
	}
}

func compareSegment(a, b *KPath) int {
	switch {
	case a.Index != nil && b.Index != nil:
		return *a.Index - *b.Index
	case a.Index != nil:
		return -1
	case b.Index != nil:
		return 1
	case a.Field != nil && b.Field != nil:
		return strings.Compare(*a.Field, *b.Field)
	}
	return 0
}

func (kp *KPath) MarshalText() ([]byte, error) {
	return []byte(kp.String()), nil
}

func (kp *KPath) UnmarshalText(d []byte) error {
	res, err := Parse(string(d))
	if err != nil {
		return err
	}
	if res == nil {
		*kp = KPath{}
		return nil
	}
	*kp = *res
	return nil
}
