package ir

import "fmt"

type Kind int

const (
	OtherKind Kind = iota
	LiteralKind
	NotKind
	BoolOpKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		OtherKind:   "Other",
		LiteralKind: "Literal",
		NotKind:     "Not",
		BoolOpKind:  "BoolOp",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Other":   OtherKind,
		"Literal": LiteralKind,
		"Not":     NotKind,
		"BoolOp":  BoolOpKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		OtherKind,
		LiteralKind,
		NotKind,
		BoolOpKind,
	}
}
