package truthtab

import (
	"github.com/clj/truth-table/debug"
	"github.com/clj/truth-table/encode"
	"github.com/clj/truth-table/ir"
)

// Collect returns every candidate boolean expression at or under root
// in document order. A candidate nested inside another candidate is
// reported separately; the supplied tree must be acyclic.
func Collect(root *ir.Node) []*ir.Node {
	var res []*ir.Node
	root.Walk(func(n *ir.Node) bool {
		if Candidate(n) {
			if debug.Collect() {
				debug.Logf("collect: line %d: %s\n", n.Line, encode.String(n))
			}
			res = append(res, n)
		}
		return true
	})
	return res
}
