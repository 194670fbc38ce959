package parse

type parseOpts struct {
	name string
}

func defaultOpts() *parseOpts {
	return &parseOpts{name: "src.go"}
}

type ParseOption func(*parseOpts)

// ParseName sets the input name used in positions and parse errors.
func ParseName(name string) ParseOption {
	return func(o *parseOpts) { o.name = name }
}
