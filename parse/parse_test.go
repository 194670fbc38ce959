package parse

import (
	"errors"
	"testing"

	"github.com/clj/truth-table/ir"
)

func mustExpr(t *testing.T, src string) *ir.Node {
	t.Helper()
	n, err := Expr(src)
	if err != nil {
		t.Fatalf("Expr(%q): %v", src, err)
	}
	return n
}

func TestExprShapes(t *testing.T) {
	tests := []struct {
		in       string
		kind     ir.Kind
		op       ir.Op
		operands int
	}{
		{`a && b`, ir.BoolOpKind, ir.AndOp, 2},
		{`a && b && c`, ir.BoolOpKind, ir.AndOp, 3},
		{`a && (b && c)`, ir.BoolOpKind, ir.AndOp, 2},
		{`a || b && c`, ir.BoolOpKind, ir.OrOp, 2},
		{`((a || b))`, ir.BoolOpKind, ir.OrOp, 2},
		{`!a`, ir.NotKind, ir.NoOp, 1},
		{`-a`, ir.OtherKind, ir.NoOp, 1},
		{`fn(x, y)`, ir.OtherKind, ir.NoOp, 3},
		{`a`, ir.OtherKind, ir.NoOp, 0},
	}
	for _, tc := range tests {
		n := mustExpr(t, tc.in)
		if n.Kind != tc.kind || n.Op != tc.op || len(n.Operands) != tc.operands {
			t.Errorf("%s: got %s/%s with %d operands, want %s/%s with %d",
				tc.in, n.Kind, n.Op, len(n.Operands), tc.kind, tc.op, tc.operands)
		}
	}
}

func TestExprLiterals(t *testing.T) {
	tests := []struct {
		in  string
		lit ir.LitKind
	}{
		{`"s"`, ir.StringLit},
		{"`raw`", ir.StringLit},
		{`42`, ir.NumberLit},
		{`3.14`, ir.NumberLit},
		{`'c'`, ir.NumberLit},
		{`[]int{1, 2}`, ir.ListLit},
		{`map[string]int{"k": 1}`, ir.MapLit},
	}
	for _, tc := range tests {
		n := mustExpr(t, tc.in)
		if n.Kind != ir.LiteralKind || n.Lit != tc.lit {
			t.Errorf("%s: got %s/%s, want Literal/%s", tc.in, n.Kind, n.Lit, tc.lit)
		}
	}
}

func TestExprCanonicalText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`a  &&  b`, `a && b`},
		{`fn( x )`, `fn(x)`},
		{`a && (b || c)`, `a && (b || c)`},
		{`(a + b)`, `a + b`},
		{`!(a && b)`, `!(a && b)`},
	}
	for _, tc := range tests {
		if got := mustExpr(t, tc.in).Src; got != tc.want {
			t.Errorf("Src of %q = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// Structurally equal expressions must render identically no matter
// how the source was laid out; operand merging depends on it.
func TestExprTextLayoutIndependent(t *testing.T) {
	a := mustExpr(t, "fn(x) &&\n\tfn(x)")
	if len(a.Operands) != 2 {
		t.Fatalf("operands = %d", len(a.Operands))
	}
	if a.Operands[0].Src != a.Operands[1].Src {
		t.Errorf("labels differ: %q vs %q", a.Operands[0].Src, a.Operands[1].Src)
	}
}

func TestParseFile(t *testing.T) {
	src := `package p

func f(a, b bool) bool {
	return a && b
}
`
	root, err := Parse([]byte(src), ParseName("p.go"))
	if err != nil {
		t.Fatal(err)
	}
	var boolOp *ir.Node
	root.Walk(func(n *ir.Node) bool {
		if boolOp == nil && n.Kind == ir.BoolOpKind {
			boolOp = n
		}
		return true
	})
	if boolOp == nil {
		t.Fatal("no boolean expression found")
	}
	if boolOp.Line != 4 {
		t.Errorf("line = %d, want 4", boolOp.Line)
	}
	if boolOp.Src != "a && b" {
		t.Errorf("src = %q", boolOp.Src)
	}
}

func TestParseParents(t *testing.T) {
	n := mustExpr(t, `a || b || c`)
	for i, v := range n.Operands {
		if v.Parent != n || v.ParentIndex != i {
			t.Errorf("operand %d not wired to parent", i)
		}
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("package"), ParseName("bad.go")); !errors.Is(err, ErrParse) {
		t.Errorf("Parse: got %v, want ErrParse", err)
	}
	if _, err := Expr("a &&"); !errors.Is(err, ErrParse) {
		t.Errorf("Expr: got %v, want ErrParse", err)
	}
}
