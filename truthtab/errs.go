package truthtab

import "errors"

var (
	ErrUnsupportedOperator = errors.New("unsupported operator")
	ErrOperandLookup       = errors.New("operand not registered")
	ErrMalformedTree       = errors.New("malformed expression tree")
	ErrOperandLimit        = errors.New("operand limit exceeded")
)
