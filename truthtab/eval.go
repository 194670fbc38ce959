package truthtab

import (
	"fmt"

	"github.com/clj/truth-table/debug"
	"github.com/clj/truth-table/encode"
	"github.com/clj/truth-table/ir"
)

// Eval computes the value of expr under the given truth assignment,
// one value per operand in collection order. Operand sub-expressions
// are matched by node identity; anything unmatched is evaluated
// recursively, and an atom that was never registered is an
// ErrOperandLookup, never a silent default.
//
// The assignment length must equal ops.Len(); a mismatch is a caller
// bug and panics.
func Eval(expr *ir.Node, ops *Operands, assignment []bool) (bool, error) {
	if ops.Len() != len(assignment) {
		panic(fmt.Sprintf("truthtab: %d operands, %d assignment values", ops.Len(), len(assignment)))
	}
	if debug.Eval() {
		debug.Logf("eval: %s under %v\n", encode.String(expr), assignment)
	}
	return eval(expr, ops, assignment)
}

func eval(n *ir.Node, ops *Operands, assignment []bool) (bool, error) {
	switch n.Kind {
	case ir.BoolOpKind:
		vals := make([]bool, 0, len(n.Operands))
		for _, v := range n.Operands {
			if i, ok := ops.Index(v); ok {
				vals = append(vals, assignment[i])
				continue
			}
			b, err := eval(v, ops, assignment)
			if err != nil {
				return false, err
			}
			vals = append(vals, b)
		}
		switch n.Op {
		case ir.AndOp:
			return allOf(vals), nil
		case ir.OrOp:
			return anyOf(vals), nil
		default:
			return false, fmt.Errorf("%w: boolean operator %s", ErrUnsupportedOperator, n.Op)
		}
	case ir.NotKind:
		if len(n.Operands) != 1 {
			return false, fmt.Errorf("%w: negation with %d operands", ErrMalformedTree, len(n.Operands))
		}
		b, err := eval(n.Operands[0], ops, assignment)
		if err != nil {
			return false, err
		}
		return !b, nil
	default:
		i, ok := ops.Index(n)
		if !ok {
			return false, fmt.Errorf("%w: %s", ErrOperandLookup, encode.String(n))
		}
		return assignment[i], nil
	}
}

func allOf(vs []bool) bool {
	for _, v := range vs {
		if !v {
			return false
		}
	}
	return true
}

func anyOf(vs []bool) bool {
	for _, v := range vs {
		if v {
			return true
		}
	}
	return false
}
