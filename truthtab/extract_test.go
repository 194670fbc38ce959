package truthtab

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractLabels(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{`a && b`, []string{"a", "b"}},
		// duplicates collapse, order is first occurrence
		{`a && b && a`, []string{"a", "b"}},
		{`b && a && a`, []string{"b", "a"}},
		// nested boolean structure flattens
		{`a && (b || c)`, []string{"a", "b", "c"}},
		{`a && b || a`, []string{"a", "b"}},
		// ! is transparent for enumeration
		{`a && !a`, []string{"a"}},
		{`!(a && b) || c`, []string{"a", "b", "c"}},
		// non-boolean compounds are atoms
		{`fn(x) && a`, []string{"fn(x)", "a"}},
		{`-x && a`, []string{"-x", "a"}},
		{`a+b && c`, []string{"a + b", "c"}},
	}
	for _, tc := range tests {
		got := Extract(mustExpr(t, tc.in)).Labels()
		if d := cmp.Diff(tc.want, got); d != "" {
			t.Errorf("Extract(%s) labels (-want +got):\n%s", tc.in, d)
		}
	}
}

func TestExtractIdempotent(t *testing.T) {
	e := mustExpr(t, `a && (b || !a) && fn(x)`)
	first := Extract(e).Labels()
	second := Extract(e).Labels()
	if d := cmp.Diff(first, second); d != "" {
		t.Errorf("extraction not idempotent (-first +second):\n%s", d)
	}
}

func TestExtractMergesNodes(t *testing.T) {
	e := mustExpr(t, `a && b && a`)
	ops := Extract(e)
	if ops.Len() != 2 {
		t.Fatalf("len = %d, want 2", ops.Len())
	}
	a := ops.At(0)
	if a.Label != "a" {
		t.Fatalf("first operand = %q", a.Label)
	}
	// both occurrences of a registered under one operand
	if len(a.Nodes) != 2 {
		t.Errorf("node set size = %d, want 2", len(a.Nodes))
	}
	for n := range a.Nodes {
		i, ok := ops.Index(n)
		if !ok || i != 0 {
			t.Errorf("node lookup = %d, %v; want 0, true", i, ok)
		}
	}
}

func TestExtractLookupByLabel(t *testing.T) {
	ops := Extract(mustExpr(t, `x || y`))
	if i, ok := ops.IndexLabel("y"); !ok || i != 1 {
		t.Errorf("IndexLabel(y) = %d, %v", i, ok)
	}
	if _, ok := ops.IndexLabel("z"); ok {
		t.Error("IndexLabel(z) found")
	}
}

func TestExtractAtom(t *testing.T) {
	ops := Extract(mustExpr(t, `a`))
	if d := cmp.Diff([]string{"a"}, ops.Labels()); d != "" {
		t.Errorf("labels (-want +got):\n%s", d)
	}
}
