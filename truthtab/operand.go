package truthtab

import (
	"github.com/clj/truth-table/ir"
	"github.com/clj/truth-table/oset"
)

// Operand is one logical variable of an expression: a canonical label
// together with every tree node that rendered to it. Two occurrences
// of the same text anywhere in the expression are the same operand.
type Operand struct {
	Label string
	Nodes map[*ir.Node]struct{}
}

// Operands is the insertion-ordered, label-deduplicated operand
// collection of a single expression. Lookup works by label or by node
// identity.
type Operands struct {
	order   *oset.Set[string]
	byLabel map[string]*Operand
	byNode  map[*ir.Node]string
}

func newOperands() *Operands {
	return &Operands{
		order:   oset.New[string](),
		byLabel: map[string]*Operand{},
		byNode:  map[*ir.Node]string{},
	}
}

// add registers node under label. A label seen before keeps its
// position and its node set grows; it is never replaced.
func (os *Operands) add(label string, node *ir.Node) {
	op, ok := os.byLabel[label]
	if !ok {
		op = &Operand{Label: label, Nodes: map[*ir.Node]struct{}{}}
		os.byLabel[label] = op
		os.order.Add(label)
	}
	op.Nodes[node] = struct{}{}
	os.byNode[node] = label
}

func (os *Operands) Len() int {
	return os.order.Len()
}

// Labels returns the operand labels in first-occurrence order.
func (os *Operands) Labels() []string {
	return os.order.Values()
}

// Index returns the position of the operand that node registered
// under, looking up by node identity.
func (os *Operands) Index(node *ir.Node) (int, bool) {
	label, ok := os.byNode[node]
	if !ok {
		return 0, false
	}
	return os.order.Index(label), true
}

// IndexLabel returns the position of the operand with the given
// label.
func (os *Operands) IndexLabel(label string) (int, bool) {
	i := os.order.Index(label)
	return i, i >= 0
}

// At returns the i'th operand in first-occurrence order.
func (os *Operands) At(i int) *Operand {
	return os.byLabel[os.order.Values()[i]]
}
