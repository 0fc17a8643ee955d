package eval

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	mu sync.RWMutex
	d  = map[string]Symbol{}
)

var ErrSymbolExists = errors.New("symbol exists")

func Register(s Symbol) error {
	mu.Lock()
	defer mu.Unlock()
	if _, present := d[s.Name]; present || docFuncs[s.Name] {
		return fmt.Errorf("%s: %w", s, ErrSymbolExists)
	}
	d[s.Name] = s
	return nil
}

func init() {
	Register(OSEnv())
	Register(ToInt())
	Register(B64Enc())
	Register(ToValue())
}

func Lookup(s string) (Symbol, bool) {
	mu.RLock()
	defer mu.RUnlock()
	sym, ok := d[s]
	return sym, ok
}

// Symbols returns the registered symbols sorted by name.
func Symbols() []Symbol {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Symbol, 0, len(d))
	for _, s := range d {
		res = append(res, s)
	}
	slices.SortFunc(res, func(a, b Symbol) int { return strings.Compare(a.Name, b.Name) })
	return res
}
