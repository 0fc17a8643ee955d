package eval

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

func ToInt() Symbol {
	return Symbol{
		Name: "toint",
		Fn: func(params ...any) (any, error) {
			s := strings.TrimSpace(params[0].(string))
			i, err := strconv.ParseInt(s, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("toint: %w", err)
			}
			return int(i), nil
		},
		Types: []any{new(func(string) int)},
	}
}

func B64Enc() Symbol {
	return Symbol{
		Name: "b64enc",
		Fn: func(params ...any) (any, error) {
			return base64.StdEncoding.EncodeToString([]byte(params[0].(string))), nil
		},
		Types: []any{new(func(string) string)},
	}
}
