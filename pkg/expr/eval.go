package expr

import "math"

// Eval for VarNode returns x.
func (v *VarNode) Eval(x float64) float64 {
	return x
}

// Eval for ConstNode returns the literal.
func (c *ConstNode) Eval(x float64) float64 {
	return c.Val
}

// Eval for FuncNode dispatches on op. Non-finite intermediate values are
// propagated; callers decide what a NaN result is worth.
func (f *FuncNode) Eval(x float64) float64 {
	a1, a2, ok := args(f)
	if !ok {
		return Sentinel
	}

	switch f.Op {
	case OpAdd:
		return a1.Eval(x) + a2.Eval(x)
	case OpSub:
		return a1.Eval(x) - a2.Eval(x)
	case OpMul:
		return a1.Eval(x) * a2.Eval(x)
	case OpDiv:
		return a1.Eval(x) / a2.Eval(x)
	case OpSin:
		return math.Sin(a1.Eval(x))
	case OpCos:
		return math.Cos(a1.Eval(x))
	case OpExp:
		return math.Pow(a1.Eval(x), a2.Eval(x))
	default:
		return Sentinel
	}
}
