package encode

import (
	"testing"

	"github.com/clj/truth-table/ir"
)

func TestStringComposed(t *testing.T) {
	a, b, c := ir.Atom("a"), ir.Atom("b"), ir.Atom("c")
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"and", ir.And(ir.Atom("a"), ir.Atom("b")), "a && b"},
		{"or", ir.Or(ir.Atom("a"), ir.Atom("b")), "a || b"},
		{"nary", ir.And(ir.Atom("a"), ir.Atom("b"), ir.Atom("c")), "a && b && c"},
		{"or under and", ir.And(a, ir.Or(b, c)), "a && (b || c)"},
		{"and under or", ir.Or(ir.Atom("a"), ir.And(ir.Atom("b"), ir.Atom("c"))), "a || b && c"},
		{"not ident", ir.Not(ir.Atom("x")), "!x"},
		{"not compound", ir.Not(ir.And(ir.Atom("a"), ir.Atom("b"))), "!(a && b)"},
		{"not non-ident atom", ir.Not(ir.Atom("a + b")), "!(a + b)"},
		{"src wins", &ir.Node{Kind: ir.OtherKind, Src: "fn(x)"}, "fn(x)"},
		{"nil", nil, ""},
	}
	for _, tc := range tests {
		if got := String(tc.node); got != tc.want {
			t.Errorf("%s: String = %q, want %q", tc.name, got, tc.want)
		}
	}
}
