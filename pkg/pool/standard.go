package pool

import "github.com/wildfunctions/symbolic_regression/pkg/expr"

func init() {
	Register("standard", func() Pool { return &StandardPool{} })
}

// StandardPool is the full function set: arithmetic, sin, cos and exp
// (power), over x and random integer constants 1-10.
type StandardPool struct{}

func (p *StandardPool) Name() string { return "standard" }

var (
	standardFunctions = []string{"+", "-", "*", "/", "sin", "cos", "exp"}
	standardTerminals = []string{expr.SymVar, expr.SymConst}
)

func (p *StandardPool) Alphabet() Alphabet {
	return NewAlphabet(standardFunctions, standardTerminals)
}
