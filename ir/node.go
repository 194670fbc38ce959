package ir

type Node struct {
	Kind Kind
	Op   Op      // BoolOpKind only
	Lit  LitKind // LiteralKind only

	// Operands holds the ordered operand list of a BoolOp, the single
	// operand of a Not, and the child sub-expressions of Literal and
	// Other nodes.
	Operands []*Node

	Parent      *Node
	ParentIndex int

	Line int    // 1-based source line, 0 when unknown
	Src  string // canonical source text, "" for composed nodes
}

// adopt wires vs as the children of n.
func (n *Node) adopt(vs []*Node) *Node {
	n.Operands = vs
	for i, v := range vs {
		v.Parent = n
		v.ParentIndex = i
	}
	return n
}

func And(operands ...*Node) *Node {
	return (&Node{Kind: BoolOpKind, Op: AndOp}).adopt(operands)
}

func Or(operands ...*Node) *Node {
	return (&Node{Kind: BoolOpKind, Op: OrOp}).adopt(operands)
}

func Not(operand *Node) *Node {
	return (&Node{Kind: NotKind}).adopt([]*Node{operand})
}

// Atom returns an OtherKind leaf with the given canonical text.
func Atom(src string) *Node {
	return &Node{Kind: OtherKind, Src: src}
}

// Lit returns a LiteralKind node with the given canonical text and
// element sub-expressions.
func Lit(kind LitKind, src string, elems ...*Node) *Node {
	n := &Node{Kind: LiteralKind, Lit: kind, Src: src}
	return n.adopt(elems)
}

// Group returns an OtherKind node wrapping the given sub-expressions.
func Group(children ...*Node) *Node {
	return (&Node{Kind: OtherKind}).adopt(children)
}

// Walk visits n and its descendants in pre-order, depth first. If f
// returns false the children of the visited node are skipped.
func (n *Node) Walk(f func(*Node) bool) {
	if n == nil {
		return
	}
	if !f(n) {
		return
	}
	for _, v := range n.Operands {
		v.Walk(f)
	}
}
