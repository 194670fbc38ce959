// Package parse converts Go source into ir trees.
package parse

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"

	"github.com/clj/truth-table/ir"
)

// Parse parses a whole Go source file and returns its ir tree.
func Parse(src []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := defaultOpts()
	for _, f := range opts {
		f(pOpts)
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, pOpts.name, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	c := newConverter(fset)
	return c.node(file), nil
}

// Expr parses a single Go expression and returns its ir tree.
func Expr(src string, opts ...ParseOption) (*ir.Node, error) {
	pOpts := defaultOpts()
	for _, f := range opts {
		f(pOpts)
	}
	fset := token.NewFileSet()
	x, err := parser.ParseExprFrom(fset, pOpts.name, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	c := newConverter(fset)
	return c.node(x), nil
}

type converter struct {
	fset *token.FileSet
	// print is empty on purpose: rendering against a file set that
	// knows no positions keeps the output on one line, so two
	// structurally equal expressions always render identically no
	// matter how the source was laid out.
	print *token.FileSet
}

func newConverter(fset *token.FileSet) *converter {
	return &converter{fset: fset, print: token.NewFileSet()}
}

func (c *converter) node(n ast.Node) *ir.Node {
	switch x := n.(type) {
	case *ast.ParenExpr:
		return c.node(x.X)
	case *ast.BinaryExpr:
		if x.Op == token.LAND || x.Op == token.LOR {
			return c.boolOp(x)
		}
	case *ast.UnaryExpr:
		if x.Op == token.NOT {
			return c.finish(ir.Not(c.node(x.X)), x)
		}
	case *ast.BasicLit:
		return c.finish(ir.Lit(litKind(x.Kind), ""), x)
	case *ast.CompositeLit:
		kind := ir.ListLit
		if _, ok := x.Type.(*ast.MapType); ok {
			kind = ir.MapLit
		}
		return c.finish(ir.Lit(kind, "", c.nodes(directChildren(x))...), x)
	}
	return c.finish(ir.Group(c.nodes(directChildren(n))...), n)
}

func (c *converter) boolOp(x *ast.BinaryExpr) *ir.Node {
	op := ir.AndOp
	if x.Op == token.LOR {
		op = ir.OrOp
	}
	operands := c.flatten(x, x.Op)
	n := &ir.Node{Kind: ir.BoolOpKind, Op: op}
	for i, v := range operands {
		v.Parent = n
		v.ParentIndex = i
	}
	n.Operands = operands
	return c.finish(n, x)
}

// flatten collapses a left-associated chain of the same operator into
// one operand list, so `a && b && c` becomes a single three-operand
// node. Parenthesized sub-expressions stop the chain and nest.
func (c *converter) flatten(e ast.Expr, op token.Token) []*ir.Node {
	if b, ok := e.(*ast.BinaryExpr); ok && b.Op == op {
		return append(c.flatten(b.X, op), c.node(b.Y))
	}
	return []*ir.Node{c.node(e)}
}

func (c *converter) nodes(ns []ast.Node) []*ir.Node {
	res := make([]*ir.Node, 0, len(ns))
	for _, n := range ns {
		res = append(res, c.node(n))
	}
	return res
}

// finish records position and, for expressions, canonical text.
func (c *converter) finish(w *ir.Node, n ast.Node) *ir.Node {
	w.Line = c.fset.Position(n.Pos()).Line
	if x, ok := n.(ast.Expr); ok {
		var buf bytes.Buffer
		if err := printer.Fprint(&buf, c.print, x); err == nil {
			w.Src = buf.String()
		}
	}
	return w
}

func litKind(t token.Token) ir.LitKind {
	switch t {
	case token.STRING:
		return ir.StringLit
	default:
		// INT, FLOAT, IMAG and CHAR are all numeric.
		return ir.NumberLit
	}
}

// directChildren returns the immediate child nodes of n, in source
// order.
func directChildren(n ast.Node) []ast.Node {
	var kids []ast.Node
	self := true
	ast.Inspect(n, func(m ast.Node) bool {
		if m == nil {
			return true
		}
		if self {
			self = false
			return true
		}
		kids = append(kids, m)
		return false
	})
	return kids
}
