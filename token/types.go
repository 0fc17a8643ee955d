package token

import (
	"fmt"
)

type TokenType int

const (
	TWord TokenType = iota
	TQuoted
	TRaw
	THeredoc
	TAt
	TTag
	TLCurl
	TRCurl
	TLParen
	TRParen
	TComma
	TGT
	TNewline
	TComment
	TEOF
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TWord:    "TWord",
		TQuoted:  "TQuoted",
		TRaw:     "TRaw",
		THeredoc: "THeredoc",
		TAt:      "TAt",
		TTag:     "TTag",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TComma:   "TComma",
		TGT:      "TGT",
		TNewline: "TNewline",
		TComment: "TComment",
		TEOF:     "TEOF",
	}[t]
	if ok {
		return s
	}
	return "<unknown token>"
}

// Describe gives a short human readable name for t as used in parse
// errors, e.g. `"}"` or "end of input".
func (t TokenType) Describe() string {
	switch t {
	case TWord:
		return "bare scalar"
	case TQuoted:
		return "quoted string"
	case TRaw:
		return "raw string"
	case THeredoc:
		return "heredoc"
	case TAt:
		return `"@"`
	case TTag:
		return "tag"
	case TLCurl:
		return `"{"`
	case TRCurl:
		return `"}"`
	case TLParen:
		return `"("`
	case TRParen:
		return `")"`
	case TComma:
		return `","`
	case TGT:
		return `">"`
	case TNewline:
		return "newline"
	case TComment:
		return "comment"
	case TEOF:
		return "end of input"
	default:
		return t.String()
	}
}

// IsScalar reports whether t carries scalar text.
func (t TokenType) IsScalar() bool {
	switch t {
	case TWord, TQuoted, TRaw, THeredoc:
		return true
	default:
		return false
	}
}

// Token is a single lexeme.
//
// Text holds the decoded content: the word for TWord, the unescaped string
// for TQuoted, the body for TRaw and THeredoc, the name (without '@') for
// TTag and the source bytes otherwise.
type Token struct {
	Type TokenType
	Pos  Pos
	// End is the byte offset just past the token in the source.
	End  int
	Text string
	// Lang is the optional language hint of a heredoc, as in <<EOF,json.
	Lang string
	// SpaceBefore is set when whitespace, a newline or a comment
	// immediately precedes the token.
	SpaceBefore bool
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return t.Text
}
