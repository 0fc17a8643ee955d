package eval

import (
	"os"
	"strings"
)

func OSEnv() Symbol {
	return Symbol{
		Name: "getenv",
		Fn: func(params ...any) (any, error) {
			return os.Getenv(strings.TrimSpace(params[0].(string))), nil
		},
		Types: []any{new(func(string) string)},
	}
}
