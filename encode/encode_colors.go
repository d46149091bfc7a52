package encode

import (
	"strings"

	"github.com/ares-editor/valtree/value"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind value.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	KindColor ColorAttr = iota
	FieldColor
	ValueColor
	SepColor
	InsertColor
	DeleteColor
	ReplaceColor
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
	for _, k := range value.Kinds() {
		able := Colorable{
			Kind: k,
			Attr: KindColor,
		}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = InsertColor
		colors.Map[able] = color.GreenString
		able.Attr = DeleteColor
		colors.Map[able] = color.RedString
		able.Attr = ReplaceColor
		colors.Map[able] = color.YellowString
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = value.LongKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = value.FloatKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = value.NoneKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = value.BoolKind
	colors.Map[able] = color.CyanString

	able.Kind = value.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = value.CompositeKind
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k value.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k value.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
