package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/styx-format/go-styx/token"
)

var (
	ErrParse           = errors.New("parse error")
	ErrUnexpected      = fmt.Errorf("%w: unexpected token", ErrParse)
	ErrUnclosed        = fmt.Errorf("%w: unclosed", ErrParse)
	ErrInvalidKey      = fmt.Errorf("%w: invalid key", ErrParse)
	ErrInvalidTag      = fmt.Errorf("%w: invalid tag", ErrParse)
	ErrMixedSeparators = fmt.Errorf("%w: mixed separators", ErrParse)
	ErrDuplicateKey    = fmt.Errorf("%w: duplicate key", ErrParse)
	ErrDepthExceeded   = fmt.Errorf("%w: depth exceeded", ErrParse)
)

// ParseError reports a structural error.  Err is one of the sentinel
// errors of this package.
type ParseError struct {
	Err      error
	Pos      token.Pos
	Expected string
	Found    string
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	switch {
	case e.Expected != "" && e.Found != "":
		return fmt.Sprintf("%s: expected %s, found %s at %s", e.Err, e.Expected, e.Found, e.Pos)
	case e.Found != "":
		return fmt.Sprintf("%s: %s at %s", e.Err, e.Found, e.Pos)
	case e.Expected != "":
		return fmt.Sprintf("%s: expected %s at %s", e.Err, e.Expected, e.Pos)
	}
	return fmt.Sprintf("%s at %s", e.Err, e.Pos)
}

func unexpected(t *token.Token, expected string) *ParseError {
	return &ParseError{Err: ErrUnexpected, Pos: t.Pos, Expected: expected, Found: found(t)}
}

func found(t *token.Token) string {
	switch t.Type {
	case token.TWord:
		return fmt.Sprintf("%q", t.Text)
	case token.TTag:
		return "tag @" + t.Text
	default:
		return t.Type.Describe()
	}
}

// Position returns the position carried by a *ParseError or
// *token.LexError.
func Position(err error) (token.Pos, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Pos, true
	}
	var le *token.LexError
	if errors.As(err, &le) {
		return le.Pos, true
	}
	return token.Pos{}, false
}
