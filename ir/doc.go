// Package ir provides the expression tree the analysis pipeline
// operates on.
//
// The tree is a closed tagged union over four node kinds:
//
//   - BoolOpKind: an && / || expression with an ordered, possibly
//     n-ary operand list (same-operator chains are flattened by the
//     front end, so `a && b && c` is one node with three operands)
//   - NotKind: a ! expression with exactly one operand
//   - LiteralKind: a literal value (string, number, list or map),
//     carrying its element sub-expressions as children
//   - OtherKind: any other construct, carrying its sub-expressions
//     as children
//
// Values are placed in fields depending on the node kind: Op is
// meaningful only for BoolOpKind, Lit only for LiteralKind. Every
// node records its parent, its index in the parent's operand list,
// its source line, and its canonical source text.
//
// Nodes are built either by the parse package from go/ast, or
// programmatically with the constructors (And, Or, Not, Atom, Lit,
// Group), which wire parent links. The analysis packages only read
// the tree; they never mutate it.
package ir
