package pool

import "github.com/wildfunctions/symbolic_regression/pkg/expr"

func init() {
	Register("arithmetic", func() Pool { return &ArithmeticPool{} })
}

// ArithmeticPool drops the transcendental functions.
type ArithmeticPool struct{}

func (p *ArithmeticPool) Name() string { return "arithmetic" }

func (p *ArithmeticPool) Alphabet() Alphabet {
	return NewAlphabet([]string{"+", "-", "*", "/"}, []string{expr.SymVar, expr.SymConst})
}
