package parse

// DefaultMaxDepth bounds the nesting of objects and sequences.
const DefaultMaxDepth = 256

type parseOpts struct {
	maxDepth    int
	strict      bool
	literalKeys bool
}

type ParseOption func(*parseOpts)

// MaxDepth sets the maximum nesting of objects and sequences.  Values
// below 1 select DefaultMaxDepth.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// StrictKeys rejects objects with duplicate keys.  By default duplicates
// are kept and lookups return the first.
func StrictKeys() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}

// LiteralKeys turns off dotted key expansion: a.b 1 is then an entry
// with key "a.b".
func LiteralKeys() ParseOption {
	return func(o *parseOpts) { o.literalKeys = true }
}

func getOpts(opts []ParseOption) *parseOpts {
	res := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(res)
	}
	if res.maxDepth < 1 {
		res.maxDepth = DefaultMaxDepth
	}
	return res
}
