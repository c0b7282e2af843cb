package expr

// Sentinel is the value produced for nodes that cannot be evaluated: a
// function node missing a child or carrying an unknown operator.
const Sentinel = 9999999.0

// ExprNode is the interface for all expression tree nodes.
type ExprNode interface {
	Eval(x float64) float64
	String() string
	LaTeX() string
	MarshalJSON() ([]byte, error)
	Clone() ExprNode
	NodeCount() int
	Depth() int
}

// Op identifies a function node's operator. Every operator owns two
// children; sin and cos only read the first.
type Op int

const (
	OpUnknown Op = -1
	OpAdd     Op = iota - 1
	OpSub
	OpMul
	OpDiv
	OpSin
	OpCos
	OpExp // arg1 raised to arg2, not e^x
)

var opSymbols = map[Op]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpSin: "sin",
	OpCos: "cos",
	OpExp: "exp",
}

// ParseOp maps an alphabet symbol to its operator.
func ParseOp(sym string) (Op, bool) {
	for op, s := range opSymbols {
		if s == sym {
			return op, true
		}
	}
	return OpUnknown, false
}

// Symbol returns the alphabet symbol of op, or "" for unknown operators.
func (op Op) Symbol() string {
	return opSymbols[op]
}

// Unary reports whether op reads only its first argument.
func (op Op) Unary() bool {
	return op == OpSin || op == OpCos
}

// Alphabet symbols for the two leaf kinds.
const (
	SymVar   = "x"
	SymConst = "R"
)

// VarNode represents the variable x.
type VarNode struct{}

// ConstNode represents a literal terminal.
type ConstNode struct {
	Val float64
}

// FuncNode applies an operator to two child expressions.
type FuncNode struct {
	Op         Op
	Arg1, Arg2 ExprNode
}

// args returns both children of a well-formed function node.
func args(n ExprNode) (ExprNode, ExprNode, bool) {
	f, ok := n.(*FuncNode)
	if !ok || f.Arg1 == nil || f.Arg2 == nil {
		return nil, nil, false
	}
	return f.Arg1, f.Arg2, true
}
