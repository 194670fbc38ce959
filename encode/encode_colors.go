package encode

import (
	"fmt"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	HeaderColor ColorAttr = iota
	ExprColor
	SepColor
	TrueColor
	FalseColor
	ValueColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[HeaderColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[ExprColor] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[SepColor] = color.RGB(96, 96, 96).SprintfFunc()
	colors.Map[TrueColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[FalseColor] = color.RGB(196, 32, 32).SprintfFunc()
	colors.Map[ValueColor] = color.CyanString
	return colors
}

func (c *Colors) Color(attr ColorAttr, s string) string {
	f, ok := c.Map[attr]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}

func colorDefault(msg string, args ...any) string {
	return fmt.Sprintf(msg, args...)
}
