package truthtab

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/clj/truth-table/encode"
	"github.com/clj/truth-table/parse"
)

func TestCollectDocumentOrder(t *testing.T) {
	src := `package p

func f(a, b, c, d bool) {
	if a && b {
		_ = c || (a && d)
	}
	_ = "x" && "y"
	_ = !a
}
`
	root, err := parse.Parse([]byte(src), parse.ParseName("p.go"))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range Collect(root) {
		got = append(got, encode.String(e))
	}
	// pre-order: a nested candidate is reported after its enclosing
	// one; the literal-only expression is filtered out
	want := []string{"a && b", "c || (a && d)", "a && d"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("collected (-want +got):\n%s", d)
	}
}

func TestCollectInsideCallAndLiteral(t *testing.T) {
	src := `package p

func f(a, b bool) {
	fn(a && b)
	_ = []bool{a || b}
}

func fn(bool) {}
`
	root, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range Collect(root) {
		got = append(got, encode.String(e))
	}
	want := []string{"a && b", "a || b"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("collected (-want +got):\n%s", d)
	}
}

func TestCollectLines(t *testing.T) {
	src := `package p

var x = a && b
var y = c || d
`
	root, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	exprs := Collect(root)
	if len(exprs) != 2 {
		t.Fatalf("collected %d expressions, want 2", len(exprs))
	}
	if exprs[0].Line != 3 || exprs[1].Line != 4 {
		t.Errorf("lines = %d, %d; want 3, 4", exprs[0].Line, exprs[1].Line)
	}
}
