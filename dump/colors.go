package dump

import (
	"github.com/sable-lang/sable/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	KindColor ColorAttr = iota
	PosColor
	TextColor
	NameColor
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
	for _, k := range ir.Kinds() {
		able := Colorable{Kind: k, Attr: PosColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = KindColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	}
	colors.Map[Colorable{Kind: ir.KindToken, Attr: TextColor}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Kind: ir.KindToken, Attr: KindColor}] = color.CyanString
	colors.Map[Colorable{Kind: ir.KindExtension, Attr: KindColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Kind: ir.KindChecksum, Attr: KindColor}] = color.BlueString
	colors.Map[Colorable{Kind: ir.KindUsingDirective, Attr: KindColor}] = color.BlueString
	for _, k := range []ir.Kind{ir.KindHtmlAttribute, ir.KindHtmlAttributeValue} {
		colors.Map[Colorable{Kind: k, Attr: NameColor}] = color.RGB(196, 168, 128).SprintfFunc()
	}
	return colors
}

func colorDefault(f string, args ...any) string {
	return color.WhiteString(f, args...)
}

func (c *Colors) Color(k ir.Kind, attr ColorAttr, v string) string {
	f, ok := c.Map[Colorable{Kind: k, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f("%s", v)
}
