package encode

import (
	"strings"

	"github.com/signadot/styx-format/go-styx/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind ir.PayloadKind
	Attr ColorAttr
}

type ColorAttr int

const (
	HeadColor ColorAttr = iota
	SpanColor
	TagColor
	ValueColor
	KindColor
	ParenColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	kinds := []ir.PayloadKind{ir.NonePayload, ir.ScalarPayload, ir.SequencePayload, ir.ObjectPayload}
	for _, k := range kinds {
		able := Colorable{Kind: k, Attr: SpanColor}
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
		able.Attr = TagColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = ParenColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: HeadColor}

	able.Kind = ir.NonePayload
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = ir.ObjectPayload
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	able.Kind = ir.SequencePayload
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Kind = ir.ScalarPayload
	colors.Map[able] = color.CyanString
	able.Attr = ValueColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Attr = KindColor
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ir.PayloadKind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k ir.PayloadKind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
