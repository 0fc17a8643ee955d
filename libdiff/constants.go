package libdiff

// Op is the kind of a Change.
type Op int

const (
	Delete Op = iota
	Insert
	Replace
	Retag
	Text
)

func (o Op) String() string {
	s, ok := map[Op]string{
		Delete:  "delete",
		Insert:  "insert",
		Replace: "replace",
		Retag:   "retag",
		Text:    "text",
	}[o]
	if ok {
		return s
	}
	return "<unknown op>"
}

// Symbol is the one character marker used when printing changes.
func (o Op) Symbol() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	case Retag:
		return "@"
	default:
		return "~"
	}
}
