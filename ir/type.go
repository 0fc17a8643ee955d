package ir

import "fmt"

// PayloadKind classifies the payload of a Value.
type PayloadKind int

const (
	NonePayload PayloadKind = iota
	ScalarPayload
	SequencePayload
	ObjectPayload
)

func (k PayloadKind) String() string {
	s, ok := map[PayloadKind]string{
		NonePayload:     "None",
		ScalarPayload:   "Scalar",
		SequencePayload: "Sequence",
		ObjectPayload:   "Object",
	}[k]
	if ok {
		return s
	}
	return "<unknown payload>"
}

func (k PayloadKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *PayloadKind) UnmarshalText(d []byte) error {
	kk, ok := map[string]PayloadKind{
		"None":     NonePayload,
		"Scalar":   ScalarPayload,
		"Sequence": SequencePayload,
		"Object":   ObjectPayload,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized payload kind %q", d)
	}
	*k = kk
	return nil
}

// IsLeaf reports whether values of kind k have no children.
func (k PayloadKind) IsLeaf() bool {
	switch k {
	case SequencePayload, ObjectPayload:
		return false
	default:
		return true
	}
}

// ScalarKind records how a scalar was written.
type ScalarKind int

const (
	BareScalar ScalarKind = iota
	QuotedScalar
	RawScalar
	HeredocScalar
)

func (k ScalarKind) String() string {
	s, ok := map[ScalarKind]string{
		BareScalar:    "bare",
		QuotedScalar:  "quoted",
		RawScalar:     "raw",
		HeredocScalar: "heredoc",
	}[k]
	if ok {
		return s
	}
	return "<unknown scalar>"
}

func (k ScalarKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Separator records how the entries of an object were separated.
type Separator int

const (
	NewlineSeparator Separator = iota
	CommaSeparator
)

func (s Separator) String() string {
	if s == CommaSeparator {
		return "comma"
	}
	return "newline"
}

func (s Separator) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Span is a half open byte range [Start, End) of the source.
type Span struct {
	Start int
	End   int
}

func (s Span) Contains(off int) bool {
	return s.Start <= off && off < s.End
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d, %d]", s.Start, s.End)
}
