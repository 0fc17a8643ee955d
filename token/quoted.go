package token

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

func (l *Lexer) quoted() (Token, error) {
	src := l.src
	start := l.i
	j := start + 1
	var b *strings.Builder
	lit := j
	for j < len(src) {
		c := src[j]
		switch c {
		case '"':
			var text string
			if b == nil {
				text = src[start+1 : j]
			} else {
				b.WriteString(src[lit:j])
				text = b.String()
			}
			l.i = j + 1
			return l.tok(TQuoted, start, l.i, text), nil
		case '\n', '\r':
			return Token{}, NewLexError(ErrUnterminated, l.doc.Pos(start), "quoted string")
		case '\\':
			if b == nil {
				b = &strings.Builder{}
			}
			b.WriteString(src[lit:j])
			n, err := l.escape(b, j)
			if err != nil {
				return Token{}, err
			}
			j += n
			lit = j
		default:
			j++
		}
	}
	return Token{}, NewLexError(ErrUnterminated, l.doc.Pos(start), "quoted string")
}

// escape decodes the escape sequence at src[i] (a backslash) into b and
// returns its length in bytes.
func (l *Lexer) escape(b *strings.Builder, i int) (int, error) {
	src := l.src
	if i+1 >= len(src) {
		return 0, NewLexError(ErrUnterminated, l.doc.Pos(i), "escape")
	}
	switch c := src[i+1]; c {
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case '0':
		b.WriteByte(0)
	case '\\', '"':
		b.WriteByte(c)
	case 'u':
		r, n, ok := unicodeEscape(src[i+2:])
		if !ok {
			return 0, NewLexError(ErrBadUnicode, l.doc.Pos(i), "")
		}
		b.WriteRune(r)
		return 2 + n, nil
	default:
		_, n := utf8.DecodeRuneInString(src[i+1:])
		return 0, NewLexError(ErrBadEscape, l.doc.Pos(i), strconv.Quote(src[i:i+1+n]))
	}
	return 2, nil
}

// unicodeEscape decodes the hex part of \uXXXX or \u{X...} from the start
// of s.
func unicodeEscape(s string) (rune, int, bool) {
	var hex string
	var n int
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 || end > 7 {
			return 0, 0, false
		}
		hex = s[1:end]
		n = end + 1
	} else {
		if len(s) < 4 {
			return 0, 0, false
		}
		hex = s[:4]
		n = 4
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, false
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, 0, false
	}
	return r, n, true
}

// Quote returns s as a Styx quoted string.
func Quote(s string) string {
	b := &strings.Builder{}
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if r < 0x20 || r == 0x7f {
				b.WriteString(`\u{` + strconv.FormatInt(int64(r), 16) + `}`)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
