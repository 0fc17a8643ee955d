package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tt struct {
	Type TokenType
	Text string
}

func types(toks []Token) []tt {
	res := make([]tt, len(toks))
	for i := range toks {
		res[i] = tt{toks[i].Type, toks[i].Text}
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []TokenOpt
		want []tt
	}{
		{
			name: "entries",
			in:   "name Alice\nage 30\n",
			want: []tt{
				{TWord, "name"}, {TWord, "Alice"}, {TNewline, "\n"},
				{TWord, "age"}, {TWord, "30"}, {TNewline, "\n"},
				{TEOF, ""},
			},
		},
		{
			name: "newline runs collapse",
			in:   "a\n\n  \n\tb",
			want: []tt{{TWord, "a"}, {TNewline, "\n"}, {TWord, "b"}, {TEOF, ""}},
		},
		{
			name: "structure",
			in:   "x {a 1, b (c d)}",
			want: []tt{
				{TWord, "x"}, {TLCurl, "{"}, {TWord, "a"}, {TWord, "1"},
				{TComma, ","}, {TWord, "b"}, {TLParen, "("}, {TWord, "c"},
				{TWord, "d"}, {TRParen, ")"}, {TRCurl, "}"}, {TEOF, ""},
			},
		},
		{
			name: "tags and units",
			in:   "a @ b @int(1) c @x@",
			want: []tt{
				{TWord, "a"}, {TAt, "@"}, {TWord, "b"}, {TTag, "int"},
				{TLParen, "("}, {TWord, "1"}, {TRParen, ")"}, {TWord, "c"},
				{TTag, "x"}, {TAt, "@"}, {TEOF, ""},
			},
		},
		{
			name: "tag name characters",
			in:   "@a_b-c9/d",
			want: []tt{{TTag, "a_b-c9"}, {TWord, "/d"}, {TEOF, ""}},
		},
		{
			name: "comments skipped",
			in:   "// head\na 1 // tail\n/// doc\nb http://x/y",
			want: []tt{
				{TNewline, "\n"}, {TWord, "a"}, {TWord, "1"}, {TNewline, "\n"},
				{TWord, "b"}, {TWord, "http://x/y"}, {TEOF, ""},
			},
		},
		{
			name: "comments kept",
			in:   "a // tail\nb",
			opts: []TokenOpt{KeepComments()},
			want: []tt{
				{TWord, "a"}, {TComment, "// tail"}, {TNewline, "\n"},
				{TWord, "b"}, {TEOF, ""},
			},
		},
		{
			name: "quoted escapes",
			in:   `"a\"b\\c\n\t\r\0" "A\u{1F600}" "plain"`,
			want: []tt{
				{TQuoted, "a\"b\\c\n\t\r\x00"}, {TQuoted, "A\U0001F600"},
				{TQuoted, "plain"}, {TEOF, ""},
			},
		},
		{
			name: "raw strings",
			in:   `r"a\n" r#"say "hi""# rust`,
			want: []tt{
				{TRaw, `a\n`}, {TRaw, `say "hi"`}, {TWord, "rust"}, {TEOF, ""},
			},
		},
		{
			name: "attributes",
			in:   "opts a>1 b>x",
			want: []tt{
				{TWord, "opts"}, {TWord, "a"}, {TGT, ">"}, {TWord, "1"},
				{TWord, "b"}, {TGT, ">"}, {TWord, "x"}, {TEOF, ""},
			},
		},
		{
			name: "heredoc",
			in:   "s <<EOF\nline 1\n  line 2\nEOF\nt 1",
			want: []tt{
				{TWord, "s"}, {THeredoc, "line 1\n  line 2\n"}, {TNewline, "\n"},
				{TWord, "t"}, {TWord, "1"}, {TEOF, ""},
			},
		},
		{
			name: "heredoc dedent",
			in:   "s <<SQL,sql\n    select 1\n      from t\n    SQL\n",
			want: []tt{
				{TWord, "s"}, {THeredoc, "select 1\n  from t\n"}, {TNewline, "\n"},
				{TEOF, ""},
			},
		},
		{
			name: "empty",
			in:   "",
			want: []tt{{TEOF, ""}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize([]byte(tc.in), tc.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, types(toks)); diff != "" {
				t.Errorf("tokens (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
		line    int
		col     int
	}{
		{"unterminated quote", "a \"abc", ErrUnterminated, 0, 2},
		{"newline in quote", "a\nb \"abc\nd\"", ErrUnterminated, 1, 2},
		{"bad escape", `"a\qb"`, ErrBadEscape, 0, 2},
		{"bad unicode", `"\u12"`, ErrBadUnicode, 0, 1},
		{"surrogate", `"\u{D800}"`, ErrBadUnicode, 0, 1},
		{"unterminated raw", `r#"abc"`, ErrUnterminated, 0, 0},
		{"unterminated heredoc", "x <<EOF\nabc\n", ErrUnterminated, 0, 2},
		{"heredoc delimiter", "x <<eof\n", ErrHeredoc, 0, 2},
		{"bad utf8", "a \xff", ErrBadUTF8, 0, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Tokenize([]byte(tc.in))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v want %v", err, tc.wantErr)
			}
			var le *LexError
			if !errors.As(err, &le) {
				t.Fatalf("%v is not a *LexError", err)
			}
			if le.Pos.Line != tc.line || le.Pos.Col != tc.col {
				t.Errorf("position: got %d:%d want %d:%d", le.Pos.Line, le.Pos.Col, tc.line, tc.col)
			}
		})
	}
}

func TestLexerSticky(t *testing.T) {
	l := NewLexer([]byte(`a "b`))
	if tok, err := l.Next(); err != nil || tok.Type != TWord {
		t.Fatalf("got %v %v", tok.Type, err)
	}
	_, err1 := l.Next()
	_, err2 := l.Next()
	if err1 == nil || err1 != err2 {
		t.Errorf("errors not sticky: %v %v", err1, err2)
	}

	l = NewLexer([]byte("a"))
	l.Next()
	for range 2 {
		tok, err := l.Next()
		if err != nil || tok.Type != TEOF {
			t.Fatalf("got %v %v", tok.Type, err)
		}
	}
}

func TestSpaceBefore(t *testing.T) {
	toks, err := Tokenize([]byte("@t{} @t {}\n@"))
	if err != nil {
		t.Fatal(err)
	}
	var got []bool
	for _, tok := range toks {
		got = append(got, tok.SpaceBefore)
	}
	want := []bool{false, false, false, true, true, false, true, true, false}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestPosDoc(t *testing.T) {
	d := []byte("ab\ncd\n\nef")
	p := NewPosDoc(d)
	for _, off := range []int{0, 1, 2, 3, 5, 6, 7, 8, 9} {
		l, c := p.LineCol(off)
		if got := p.Offset(l, c); got != off {
			t.Errorf("offset %d -> %d:%d -> %d", off, l, c, got)
		}
	}
	if got := p.Pos(4); got != (Pos{Offset: 4, Line: 1, Col: 1}) {
		t.Errorf("got %v", got)
	}
	if got := p.Offset(1, 99); got != 5 {
		t.Errorf("clamp: got %d", got)
	}
}

func TestQuote(t *testing.T) {
	for _, s := range []string{"", "a b", `"\`, "x\ny\t\x00\x01", "é🙂"} {
		toks, err := Tokenize([]byte(Quote(s)))
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if toks[0].Type != TQuoted || toks[0].Text != s {
			t.Errorf("%q: got %v %q", s, toks[0].Type, toks[0].Text)
		}
	}
}

func TestIsBare(t *testing.T) {
	for s, want := range map[string]bool{
		"abc":  true,
		"a.b":  true,
		"x@y":  true,
		"":     false,
		"a b":  false,
		"@a":   false,
		"//x":  false,
		"r#x":  false,
		"<<A":  false,
		"a}":   false,
		"rust": true,
	} {
		if got := IsBare(s); got != want {
			t.Errorf("IsBare(%q) = %v", s, got)
		}
	}
}
