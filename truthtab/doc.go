// Package truthtab finds boolean expressions worth analyzing in an ir
// tree and produces exhaustive truth tables for them.
//
// The pipeline is Collect → Extract → Eval → Build:
//
//	root := parse.Parse(src)
//	for _, expr := range truthtab.Collect(root) {
//		t, err := truthtab.Build(expr)
//		...
//		fmt.Println(encode.Table(t.Strings()))
//	}
//
// Collect reports every candidate && / || expression in document
// order. Extract flattens an expression's nested and/or/not structure
// into its ordered, de-duplicated atomic operands. Build enumerates
// all 2^n truth assignments, evaluates the expression under each, and
// returns the rows; memory and time are O(2^n), which Limit can
// guard.
package truthtab
