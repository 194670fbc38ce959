package ir

// Op discriminates boolean operators on BoolOpKind nodes. The zero
// value NoOp is not a valid operator and is rejected by evaluation.
type Op int

const (
	NoOp Op = iota
	AndOp
	OrOp
)

func (o Op) String() string {
	switch o {
	case AndOp:
		return "&&"
	case OrOp:
		return "||"
	}
	return "<no op>"
}

// LitKind discriminates literal flavors on LiteralKind nodes.
type LitKind int

const (
	StringLit LitKind = iota
	NumberLit
	ListLit
	MapLit
)

func (l LitKind) String() string {
	s, ok := map[LitKind]string{
		StringLit: "String",
		NumberLit: "Number",
		ListLit:   "List",
		MapLit:    "Map",
	}[l]
	if ok {
		return s
	}
	return "<unknown literal>"
}
