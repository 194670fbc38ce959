// Package encode renders ir nodes and truth-table rows as text.
package encode

import (
	"strings"

	"github.com/clj/truth-table/ir"
)

// String returns the canonical text of node. Nodes built by the parse
// package carry their text already; nodes built programmatically are
// composed from their operands, parenthesizing where Go precedence
// requires it.
func String(node *ir.Node) string {
	if node == nil {
		return ""
	}
	if node.Src != "" {
		return node.Src
	}
	switch node.Kind {
	case ir.BoolOpKind:
		parts := make([]string, 0, len(node.Operands))
		for _, v := range node.Operands {
			s := String(v)
			// || binds looser than &&
			if node.Op == ir.AndOp && v.Kind == ir.BoolOpKind && v.Op == ir.OrOp {
				s = "(" + s + ")"
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, " "+node.Op.String()+" ")
	case ir.NotKind:
		if len(node.Operands) != 1 {
			return "!()"
		}
		s := String(node.Operands[0])
		if isIdent(s) {
			return "!" + s
		}
		return "!(" + s + ")"
	}
	return node.Src
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
		case i > 0 && '0' <= r && r <= '9':
		default:
			return false
		}
	}
	return true
}
