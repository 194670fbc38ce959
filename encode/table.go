package encode

import (
	"strings"
	"unicode/utf8"
)

// DefaultPadding is the number of spaces added to each column's
// maximum cell width.
const DefaultPadding = 4

type EncState struct {
	pad    int
	colors *Colors
}

type EncodeOption func(*EncState)

func Padding(n int) EncodeOption {
	return func(es *EncState) {
		if n >= 0 {
			es.pad = n
		}
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// Table renders rows as a column-aligned text block. Row 0 is the
// header and is underlined with a dashed separator line. Every column
// is as wide as its widest cell plus the padding; cells are centered
// in their column. All rows must have the same number of cells.
func Table(rows [][]string, opts ...EncodeOption) string {
	es := &EncState{pad: DefaultPadding}
	for _, opt := range opts {
		opt(es)
	}
	if len(rows) == 0 {
		return ""
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		widths[i] += es.pad
	}

	var sb strings.Builder
	last := len(rows[0]) - 1
	for ri, row := range rows {
		if ri > 0 {
			sb.WriteByte('\n')
		}
		for i, cell := range row {
			es.cell(&sb, cell, widths[i], cellAttr(ri, i, last, cell))
		}
		if ri == 0 {
			sb.WriteByte('\n')
			for _, w := range widths {
				es.cell(&sb, strings.Repeat("-", w-es.pad), w, SepColor)
			}
		}
	}
	return sb.String()
}

// cell writes text centered in width columns, extra slack to the
// right.
func (es *EncState) cell(sb *strings.Builder, text string, width int, attr ColorAttr) {
	slack := width - utf8.RuneCountInString(text)
	if slack < 0 {
		slack = 0
	}
	left := slack / 2
	if es.colors != nil {
		text = es.colors.Color(attr, text)
	}
	sb.WriteString(strings.Repeat(" ", left))
	sb.WriteString(text)
	sb.WriteString(strings.Repeat(" ", slack-left))
}

func cellAttr(row, col, last int, cell string) ColorAttr {
	if row == 0 {
		if col == last {
			return ExprColor
		}
		return HeaderColor
	}
	switch cell {
	case "true":
		return TrueColor
	case "false":
		return FalseColor
	}
	return ValueColor
}
