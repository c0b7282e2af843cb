package pool

import (
	"math"

	"github.com/wildfunctions/symbolic_regression/pkg/expr"
)

// Generate builds a random tree top-down with depth budget limit.
//
// With grow set the root is drawn from the function set (when there is
// one); children are never forced to grow. Once the budget is down to 1
// only terminals are drawn, otherwise symbols come from the combined set.
func Generate(a Alphabet, limit int, grow bool, rng Rand) expr.ExprNode {
	symbols := a.Combined
	switch {
	case grow && len(a.Functions) > 0:
		symbols = a.Functions
	case limit <= 1:
		symbols = a.Terminals
	}

	sym := symbols[Index(rng, len(symbols))]
	switch sym {
	case expr.SymConst:
		return &expr.ConstNode{Val: math.Ceil(rng.Float64() * 10)}
	case expr.SymVar:
		return &expr.VarNode{}
	}

	op, _ := expr.ParseOp(sym)
	return &expr.FuncNode{
		Op:   op,
		Arg1: Generate(a, limit-1, false, rng),
		Arg2: Generate(a, limit-1, false, rng),
	}
}

// RampedHalfAndHalf reports whether the i-th member of a population of
// size popSize is generated with a forced function root.
func RampedHalfAndHalf(i, popSize int) bool {
	return i > popSize/2
}
