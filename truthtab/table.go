package truthtab

import (
	"fmt"
	"strconv"

	"github.com/clj/truth-table/debug"
	"github.com/clj/truth-table/encode"
	"github.com/clj/truth-table/ir"
)

// Table is the exhaustive truth table of one expression.
type Table struct {
	Expr     *ir.Node
	Operands *Operands
	Header   []string // operand labels, then the expression's text
	Rows     []Row
}

// Row is one truth assignment and the expression's value under it.
type Row struct {
	Assignment []bool
	Result     bool
}

type buildOpts struct {
	limit int
}

type BuildOption func(*buildOpts)

// Limit rejects expressions with more than n operands; 0 means
// unlimited.
func Limit(n int) BuildOption {
	return func(o *buildOpts) { o.limit = n }
}

// Build extracts the operands of expr and evaluates it under all 2^n
// truth assignments. Assignments are enumerated in binary counting
// order with the leftmost operand as the most significant bit and
// false before true, so for operands (a, b) the order is
// (f,f), (f,t), (t,f), (t,t).
func Build(expr *ir.Node, opts ...BuildOption) (*Table, error) {
	bo := &buildOpts{}
	for _, opt := range opts {
		opt(bo)
	}
	ops := Extract(expr)
	n := ops.Len()
	if bo.limit > 0 && n > bo.limit {
		return nil, fmt.Errorf("%w: %d operands (limit %d)", ErrOperandLimit, n, bo.limit)
	}
	// 1<<n must fit in an int; anything near that would never
	// enumerate anyway.
	if n > 32 {
		return nil, fmt.Errorf("%w: %d operands", ErrOperandLimit, n)
	}
	if debug.Table() {
		debug.Logf("table: %d operands for %s\n", n, encode.String(expr))
	}
	t := &Table{
		Expr:     expr,
		Operands: ops,
		Header:   append(ops.Labels(), encode.String(expr)),
	}
	for i := 0; i < 1<<n; i++ {
		assignment := make([]bool, n)
		for j := 0; j < n; j++ {
			assignment[j] = i&(1<<(n-1-j)) != 0
		}
		res, err := Eval(expr, ops, assignment)
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, Row{Assignment: assignment, Result: res})
	}
	return t, nil
}

// Strings returns the table as rows of text, header first, booleans
// rendered true/false.
func (t *Table) Strings() [][]string {
	rows := make([][]string, 0, len(t.Rows)+1)
	rows = append(rows, t.Header)
	for _, r := range t.Rows {
		row := make([]string, 0, len(r.Assignment)+1)
		for _, b := range r.Assignment {
			row = append(row, strconv.FormatBool(b))
		}
		rows = append(rows, append(row, strconv.FormatBool(r.Result)))
	}
	return rows
}
