package truthtab

import (
	"github.com/clj/truth-table/encode"
	"github.com/clj/truth-table/ir"
)

// Extract returns the ordered, de-duplicated atomic operands of expr.
// Nested && / || structure is flattened into one flat operand list,
// and ! is transparent: `!a` contributes the operand `a`, with the
// negation re-applied during evaluation. Repeated occurrences of the
// same canonical text collapse into one operand whose node set keeps
// every occurrence.
func Extract(expr *ir.Node) *Operands {
	ops := newOperands()
	extract(expr, ops)
	return ops
}

func extract(n *ir.Node, ops *Operands) {
	switch n.Kind {
	case ir.BoolOpKind:
		for _, v := range n.Operands {
			if v.Kind == ir.BoolOpKind || v.Kind == ir.NotKind {
				extract(v, ops)
				continue
			}
			ops.add(encode.String(v), v)
		}
	case ir.NotKind:
		for _, v := range n.Operands {
			extract(v, ops)
		}
	default:
		ops.add(encode.String(n), n)
	}
}
