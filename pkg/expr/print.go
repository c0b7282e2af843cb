package expr

import (
	"fmt"
	"strconv"
)

func formatConst(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// String methods

func (v *VarNode) String() string {
	return SymVar
}

func (c *ConstNode) String() string {
	return formatConst(c.Val)
}

func (f *FuncNode) String() string {
	a1, a2, ok := args(f)
	if !ok {
		return "(error)"
	}
	switch f.Op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return fmt.Sprintf("(%s %s %s)", a1.String(), f.Op.Symbol(), a2.String())
	case OpSin, OpCos:
		return fmt.Sprintf("%s(%s)", f.Op.Symbol(), a1.String())
	case OpExp:
		return fmt.Sprintf("exp(%s, %s)", a1.String(), a2.String())
	default:
		return ""
	}
}

// LaTeX methods

func (v *VarNode) LaTeX() string {
	return SymVar
}

func (c *ConstNode) LaTeX() string {
	return formatConst(c.Val)
}

func (f *FuncNode) LaTeX() string {
	a1, a2, ok := args(f)
	if !ok {
		return "\\text{error}"
	}
	left := a1.LaTeX()
	switch f.Op {
	case OpAdd:
		return fmt.Sprintf("{%s} + {%s}", left, a2.LaTeX())
	case OpSub:
		return fmt.Sprintf("{%s} - {%s}", left, a2.LaTeX())
	case OpMul:
		return fmt.Sprintf("{%s} \\cdot {%s}", left, a2.LaTeX())
	case OpDiv:
		return fmt.Sprintf("\\frac{%s}{%s}", left, a2.LaTeX())
	case OpSin:
		return fmt.Sprintf("\\sin{(%s)}", left)
	case OpCos:
		return fmt.Sprintf("\\cos{(%s)}", left)
	case OpExp:
		return fmt.Sprintf("{(%s)}^{%s}", left, a2.LaTeX())
	default:
		return ""
	}
}
