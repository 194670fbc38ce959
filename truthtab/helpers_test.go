package truthtab

import (
	"testing"

	"github.com/clj/truth-table/ir"
	"github.com/clj/truth-table/parse"
)

func mustExpr(t *testing.T, src string) *ir.Node {
	t.Helper()
	n, err := parse.Expr(src)
	if err != nil {
		t.Fatalf("parse.Expr(%q): %v", src, err)
	}
	return n
}
