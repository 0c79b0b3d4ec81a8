package encode

import (
	"github.com/signadot/scl-format/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	KeywordColor
	FieldColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// NewColors returns the terminal palette used by -color.  Keys are bold,
// type keywords are dim and each scalar type has its own value color.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	comment := sprint(color.New(color.FgHiBlack, color.Italic))
	keyword := sprint(color.New(color.FgMagenta, color.Faint))
	sep := sprint(color.New(color.FgHiBlack))
	field := sprint(color.New(color.FgHiWhite, color.Bold))
	for _, t := range ir.Types() {
		colors.Map[Colorable{Type: t, Attr: CommentColor}] = comment
		colors.Map[Colorable{Type: t, Attr: KeywordColor}] = keyword
		colors.Map[Colorable{Type: t, Attr: SepColor}] = sep
		colors.Map[Colorable{Type: t, Attr: FieldColor}] = field
	}
	colors.Map[Colorable{Type: ir.ClassType, Attr: FieldColor}] = sprint(color.New(color.FgHiBlue, color.Bold))
	colors.Map[Colorable{Type: ir.ListType, Attr: FieldColor}] = sprint(color.New(color.FgBlue, color.Bold))

	values := map[ir.Type]*color.Color{
		ir.NullType:     color.New(color.FgRed, color.Faint),
		ir.BoolType:     color.New(color.FgHiMagenta),
		ir.IntType:      color.New(color.FgHiCyan),
		ir.FloatType:    color.New(color.FgCyan),
		ir.StringType:   color.New(color.FgGreen),
		ir.MLStringType: color.New(color.FgHiGreen),
	}
	for t, c := range values {
		colors.Map[Colorable{Type: t, Attr: ValueColor}] = sprint(c)
	}
	return colors
}

func sprint(c *color.Color) func(string, ...any) string {
	return func(v string, _ ...any) string { return c.Sprint(v) }
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	if f := c.Map[Colorable{Type: t, Attr: a}]; f != nil {
		return f
	}
	return c.Default
}
