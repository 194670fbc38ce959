package truthtab

import "github.com/clj/truth-table/ir"

// Candidate reports whether expr is worth tabulating: an && / ||
// expression none of whose operands is a literal. Nested boolean
// operands must recursively satisfy the same test. The filter does
// not look through !, so `x && !"lit"` is still a candidate.
//
// Literal-only expressions are compile-time constant; pruning them
// here avoids full constant folding.
func Candidate(expr *ir.Node) bool {
	if expr == nil || expr.Kind != ir.BoolOpKind {
		return false
	}
	for _, v := range expr.Operands {
		switch v.Kind {
		case ir.BoolOpKind:
			if !Candidate(v) {
				return false
			}
		case ir.LiteralKind:
			return false
		}
	}
	return true
}
