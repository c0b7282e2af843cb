package pool

import "github.com/wildfunctions/symbolic_regression/pkg/expr"

func init() {
	Register("terminal", func() Pool { return &TerminalPool{} })
}

// TerminalPool has no functions, so every generated tree is a single leaf.
// Useful for constant fits and as a baseline.
type TerminalPool struct{}

func (p *TerminalPool) Name() string { return "terminal" }

func (p *TerminalPool) Alphabet() Alphabet {
	return NewAlphabet(nil, []string{expr.SymVar, expr.SymConst})
}
