package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode")
	ErrHeredoc      = errors.New("malformed heredoc")
)

// LexError reports a malformed token.
type LexError struct {
	Err    error
	Pos    Pos
	Detail string
}

func (e *LexError) Unwrap() error {
	return e.Err
}

func (e *LexError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
	}
	return fmt.Sprintf("%s: %s at %s", e.Err.Error(), e.Detail, e.Pos.String())
}

func NewLexError(e error, p Pos, detail string) *LexError {
	return &LexError{Err: e, Pos: p, Detail: detail}
}
