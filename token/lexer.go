package token

import (
	"strings"
	"unicode/utf8"
)

type tokenOpts struct {
	comments bool
}

type TokenOpt func(*tokenOpts)

// KeepComments makes the lexer emit TComment tokens instead of skipping
// comments.
func KeepComments() TokenOpt {
	return func(o *tokenOpts) { o.comments = true }
}

// Lexer produces tokens from a document one at a time.  A Lexer cannot be
// rewound; create a new one to start over.
type Lexer struct {
	src   string
	doc   *PosDoc
	opts  tokenOpts
	i     int
	space bool
	err   error
	done  bool
}

func NewLexer(d []byte, opts ...TokenOpt) *Lexer {
	l := &Lexer{
		src: string(d),
		doc: NewPosDoc(d),
	}
	for _, o := range opts {
		o(&l.opts)
	}
	if off := invalidUTF8(l.src); off >= 0 {
		l.err = NewLexError(ErrBadUTF8, l.doc.Pos(off), "")
	}
	return l
}

// Tokenize lexes all of d, ending with a TEOF token.
func Tokenize(d []byte, opts ...TokenOpt) ([]Token, error) {
	l := NewLexer(d, opts...)
	var res []Token
	for {
		t, err := l.Next()
		if err != nil {
			return nil, err
		}
		res = append(res, t)
		if t.Type == TEOF {
			return res, nil
		}
	}
}

// Source returns the lexer input as a string.  Token texts of bare words
// and raw strings are substrings of it.
func (l *Lexer) Source() string {
	return l.src
}

func (l *Lexer) PosDoc() *PosDoc {
	return l.doc
}

// Next returns the next token.  Once an error or TEOF has been returned,
// every further call returns the same.
func (l *Lexer) Next() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}
	if l.done {
		return l.tok(TEOF, len(l.src), len(l.src), ""), nil
	}
	t, err := l.next()
	if err != nil {
		l.err = err
		return Token{}, err
	}
	if t.Type == TEOF {
		l.done = true
	}
	return t, nil
}

func (l *Lexer) next() (Token, error) {
	if nl := l.skipSpace(); nl >= 0 {
		t := l.tok(TNewline, nl, nl+1, "\n")
		l.space = true
		return t, nil
	}
	src := l.src
	start := l.i
	if start >= len(src) {
		return l.tok(TEOF, start, start, ""), nil
	}
	c := src[start]
	switch c {
	case '{':
		return l.single(TLCurl), nil
	case '}':
		return l.single(TRCurl), nil
	case '(':
		return l.single(TLParen), nil
	case ')':
		return l.single(TRParen), nil
	case ',':
		return l.single(TComma), nil
	case '>':
		return l.single(TGT), nil
	case '@':
		j := start + 1
		if j < len(src) && isTagStart(src[j]) {
			j++
			for j < len(src) && isTagChar(src[j]) {
				j++
			}
			l.i = j
			return l.tok(TTag, start, j, src[start+1:j]), nil
		}
		return l.single(TAt), nil
	case '"':
		return l.quoted()
	case '/':
		if strings.HasPrefix(src[start:], "//") {
			return l.comment(), nil
		}
	case 'r':
		if t, ok, err := l.raw(); ok || err != nil {
			return t, err
		}
	case '<':
		if strings.HasPrefix(src[start:], "<<") {
			return l.heredoc()
		}
	}
	return l.word(), nil
}

// skipSpace skips whitespace and, unless they are kept, comments.  It
// returns the offset of the first newline skipped, or -1.
func (l *Lexer) skipSpace() int {
	nl := -1
	src := l.src
	for l.i < len(src) {
		switch src[l.i] {
		case ' ', '\t', '\r':
			l.i++
		case '\n':
			if nl < 0 {
				nl = l.i
			}
			l.i++
		case '/':
			if l.opts.comments || !strings.HasPrefix(src[l.i:], "//") {
				return nl
			}
			l.skipLine()
		default:
			return nl
		}
		l.space = true
	}
	return nl
}

func (l *Lexer) skipLine() {
	j := strings.IndexByte(l.src[l.i:], '\n')
	if j < 0 {
		l.i = len(l.src)
		return
	}
	l.i += j
}

func (l *Lexer) tok(tt TokenType, start, end int, text string) Token {
	t := Token{
		Type:        tt,
		Pos:         l.doc.Pos(start),
		End:         end,
		Text:        text,
		SpaceBefore: l.space,
	}
	l.space = false
	return t
}

func (l *Lexer) single(tt TokenType) Token {
	start := l.i
	l.i++
	return l.tok(tt, start, l.i, l.src[start:l.i])
}

func (l *Lexer) comment() Token {
	start := l.i
	l.skipLine()
	t := l.tok(TComment, start, l.i, strings.TrimRight(l.src[start:l.i], "\r"))
	l.space = true
	return t
}

func (l *Lexer) word() Token {
	start := l.i
	j := start
	for j < len(l.src) && !isSpecial(l.src[j]) {
		j++
	}
	l.i = j
	return l.tok(TWord, start, j, l.src[start:j])
}

// raw lexes r"..." and r#"..."#.  ok is false when the input at the
// current position is an ordinary bare word starting with 'r'.
func (l *Lexer) raw() (Token, bool, error) {
	src := l.src
	start := l.i
	j := start + 1
	for j < len(src) && src[j] == '#' {
		j++
	}
	if j >= len(src) || src[j] != '"' {
		return Token{}, false, nil
	}
	hashes := j - start - 1
	body := j + 1
	closing := "\"" + strings.Repeat("#", hashes)
	k := strings.Index(src[body:], closing)
	if k < 0 {
		return Token{}, true, NewLexError(ErrUnterminated, l.doc.Pos(start), "raw string")
	}
	end := body + k + len(closing)
	l.i = end
	return l.tok(TRaw, start, end, src[body:body+k]), true, nil
}

func (l *Lexer) heredoc() (Token, error) {
	src := l.src
	start := l.i
	j := start + 2
	if j >= len(src) || src[j] < 'A' || src[j] > 'Z' {
		return Token{}, NewLexError(ErrHeredoc, l.doc.Pos(start), "expected delimiter after <<")
	}
	for j < len(src) && isDelimChar(src[j]) {
		j++
	}
	delim := src[start+2 : j]
	lang := ""
	if j < len(src) && src[j] == ',' {
		k := j + 1
		for k < len(src) && isLangChar(src[k]) {
			k++
		}
		if k == j+1 {
			return Token{}, NewLexError(ErrHeredoc, l.doc.Pos(j), "expected language after ,")
		}
		lang = src[j+1 : k]
		j = k
	}
	for j < len(src) && (src[j] == ' ' || src[j] == '\t' || src[j] == '\r') {
		j++
	}
	if j < len(src) && src[j] != '\n' {
		return Token{}, NewLexError(ErrHeredoc, l.doc.Pos(j), "expected newline after delimiter")
	}
	if j >= len(src) {
		return Token{}, NewLexError(ErrUnterminated, l.doc.Pos(start), "heredoc "+delim)
	}
	lineStart := j + 1
	var lines []string
	for lineStart <= len(src) {
		lineEnd := strings.IndexByte(src[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(src)
		} else {
			lineEnd += lineStart
		}
		line := strings.TrimRight(src[lineStart:lineEnd], "\r")
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == delim {
			l.i = lineEnd
			t := l.tok(THeredoc, start, lineEnd, dedent(lines, len(line)-len(trimmed)))
			t.Lang = lang
			return t, nil
		}
		lines = append(lines, line)
		if lineEnd == len(src) {
			break
		}
		lineStart = lineEnd + 1
	}
	return Token{}, NewLexError(ErrUnterminated, l.doc.Pos(start), "heredoc "+delim)
}

// dedent joins lines, removing up to n leading blanks from each.
func dedent(lines []string, n int) string {
	b := &strings.Builder{}
	for _, line := range lines {
		k := 0
		for k < n && k < len(line) && (line[k] == ' ' || line[k] == '\t') {
			k++
		}
		b.WriteString(line[k:])
		b.WriteByte('\n')
	}
	return b.String()
}

func isTagStart(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_'
}

func isTagChar(c byte) bool {
	return isTagStart(c) || (c >= '0' && c <= '9') || c == '-'
}

func isDelimChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

func isLangChar(c byte) bool {
	return isTagChar(c) || c == '.' || c == '+'
}

func isSpecial(c byte) bool {
	switch c {
	case '{', '}', '(', ')', ',', '"', '>', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// IsBare reports whether s lexes as a single bare word.
func IsBare(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i]) {
			return false
		}
	}
	switch {
	case s[0] == '@', strings.HasPrefix(s, "//"), strings.HasPrefix(s, "<<"):
		return false
	case s[0] == 'r' && len(s) > 1 && (s[1] == '"' || s[1] == '#'):
		return false
	}
	return true
}

func invalidUTF8(s string) int {
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && n == 1 {
			return i
		}
		i += n
	}
	return -1
}
