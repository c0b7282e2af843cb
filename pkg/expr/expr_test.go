package expr

import (
	"encoding/json"
	"math"
	"testing"
)

func assertEval(t *testing.T, node ExprNode, x float64, expected float64, tol float64) {
	t.Helper()
	got := node.Eval(x)
	if math.Abs(got-expected) > tol {
		t.Errorf("Eval(x=%v) = %v, want %v (tol=%v)", x, got, expected, tol)
	}
}

func fn(op Op, a1, a2 ExprNode) *FuncNode {
	return &FuncNode{Op: op, Arg1: a1, Arg2: a2}
}

func num(v float64) *ConstNode { return &ConstNode{Val: v} }

func TestVarNode(t *testing.T) {
	v := &VarNode{}
	assertEval(t, v, 5, 5, 0)
	assertEval(t, v, 0, 0, 0)

	if v.String() != "x" {
		t.Errorf("VarNode.String() = %q, want \"x\"", v.String())
	}
	if v.NodeCount() != 1 {
		t.Errorf("VarNode.NodeCount() = %d, want 1", v.NodeCount())
	}
}

func TestConstNode(t *testing.T) {
	c := num(7)
	assertEval(t, c, 99, 7, 0)

	if c.String() != "7" {
		t.Errorf("ConstNode.String() = %q, want \"7\"", c.String())
	}
	if s := num(2.5).String(); s != "2.5" {
		t.Errorf("ConstNode.String() = %q, want \"2.5\"", s)
	}
}

func TestBinaryOps(t *testing.T) {
	x := &VarNode{}
	two := num(2)

	assertEval(t, fn(OpAdd, x, two), 3, 5, 0)
	assertEval(t, fn(OpSub, x, two), 5, 3, 0)
	assertEval(t, fn(OpMul, x, two), 4, 8, 0)
	assertEval(t, fn(OpDiv, x, two), 10, 5, 0)
}

func TestExpIsPower(t *testing.T) {
	// exp(2, 3) = 8, not e^2
	assertEval(t, fn(OpExp, num(2), num(3)), 0, 8, 0)
	assertEval(t, fn(OpExp, &VarNode{}, num(2)), 3, 9, 0)
}

func TestUnaryOpsIgnoreArg2(t *testing.T) {
	poison := fn(OpDiv, &VarNode{}, fn(OpSub, &VarNode{}, &VarNode{}))

	assertEval(t, fn(OpSin, &VarNode{}, poison), math.Pi/2, 1, 1e-12)
	assertEval(t, fn(OpCos, &VarNode{}, poison), 0, 1, 0)
}

func TestDivisionByZero(t *testing.T) {
	// x / (x - x) at x=0 is 0/0
	node := fn(OpDiv, &VarNode{}, fn(OpSub, &VarNode{}, &VarNode{}))
	if v := node.Eval(0); !math.IsNaN(v) {
		t.Errorf("x/(x-x) at 0 = %v, want NaN", v)
	}

	node = fn(OpDiv, num(1), num(0))
	if v := node.Eval(0); !math.IsInf(v, 1) {
		t.Errorf("1/0 = %v, want +Inf", v)
	}
}

func TestMalformedNodes(t *testing.T) {
	missing := &FuncNode{Op: OpAdd, Arg1: &VarNode{}}
	if v := missing.Eval(1); v != Sentinel {
		t.Errorf("missing child Eval = %v, want %v", v, Sentinel)
	}
	if missing.String() != "(error)" {
		t.Errorf("missing child String = %q", missing.String())
	}
	if missing.NodeCount() != 1 || missing.Depth() != 1 {
		t.Errorf("missing child counts as leaf: count=%d depth=%d", missing.NodeCount(), missing.Depth())
	}

	unknown := fn(Op(42), &VarNode{}, &VarNode{})
	if v := unknown.Eval(1); v != Sentinel {
		t.Errorf("unknown op Eval = %v, want %v", v, Sentinel)
	}
	b, err := json.Marshal(unknown)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "null" {
		t.Errorf("unknown op JSON = %s, want null", b)
	}
}

func TestEvalDeterministic(t *testing.T) {
	tree := fn(OpAdd, fn(OpSin, &VarNode{}, num(3)), fn(OpExp, &VarNode{}, num(2)))
	for _, x := range []float64{-2, 0, 0.5, 7} {
		a, b := tree.Eval(x), tree.Eval(x)
		if a != b {
			t.Errorf("Eval(%v) not deterministic: %v vs %v", x, a, b)
		}
	}
}

func TestClone(t *testing.T) {
	original := fn(OpAdd, &VarNode{}, fn(OpMul, num(3), &VarNode{}))

	cloned := original.Clone()
	if cloned.String() != original.String() {
		t.Errorf("Clone mismatch: %q vs %q", cloned.String(), original.String())
	}

	cloned.(*FuncNode).Arg2.(*FuncNode).Arg1 = num(99)
	if original.String() == cloned.String() {
		t.Error("Clone is not a deep copy")
	}
}

func TestComplexity(t *testing.T) {
	tree := fn(OpAdd, &VarNode{}, fn(OpMul, num(2), &VarNode{}))
	if tree.NodeCount() != 5 {
		t.Errorf("tree.NodeCount() = %d, want 5", tree.NodeCount())
	}
	if tree.Depth() != 3 {
		t.Errorf("tree.Depth() = %d, want 3", tree.Depth())
	}
	if got := 1 + tree.Arg1.NodeCount() + tree.Arg2.NodeCount(); got != tree.NodeCount() {
		t.Errorf("NodeCount recurrence broken: %d vs %d", got, tree.NodeCount())
	}

	// sin still owns two children
	s := fn(OpSin, &VarNode{}, num(1))
	if s.NodeCount() != 3 || s.Depth() != 2 {
		t.Errorf("sin count=%d depth=%d, want 3 and 2", s.NodeCount(), s.Depth())
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		node ExprNode
		want string
	}{
		{fn(OpDiv, num(1), &VarNode{}), "(1 / x)"},
		{fn(OpSin, &VarNode{}, num(4)), "sin(x)"},
		{fn(OpCos, fn(OpAdd, &VarNode{}, num(1)), &VarNode{}), "cos((x + 1))"},
		{fn(OpExp, &VarNode{}, num(2)), "exp(x, 2)"},
	}
	for _, tc := range tests {
		if s := tc.node.String(); s != tc.want {
			t.Errorf("String() = %q, want %q", s, tc.want)
		}
	}
}

func TestLaTeX(t *testing.T) {
	tree := fn(OpDiv, num(1), fn(OpExp, &VarNode{}, num(2)))
	s := tree.LaTeX()
	if s != "\\frac{1}{{(x)}^{2}}" {
		t.Errorf("LaTeX() = %q", s)
	}
}

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		node ExprNode
		want string
	}{
		{"terminal", num(5), `{"action":5}`},
		{"variable", &VarNode{}, `{"action":"x"}`},
		{"binary", fn(OpAdd, &VarNode{}, num(3)), `{"action":"+","arg1":{"action":"x"},"arg2":{"action":3}}`},
		{"sin drops arg2", fn(OpSin, &VarNode{}, num(3)), `{"action":"sin","arg1":{"action":"x"}}`},
		{"cos drops arg2", fn(OpCos, num(1), &VarNode{}), `{"action":"cos","arg1":{"action":1}}`},
		{"exp keeps arg2", fn(OpExp, &VarNode{}, num(2)), `{"action":"exp","arg1":{"action":"x"},"arg2":{"action":2}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.node)
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tc.want {
				t.Errorf("json = %s, want %s", b, tc.want)
			}
		})
	}
}

func TestParseOp(t *testing.T) {
	for _, sym := range []string{"+", "-", "*", "/", "sin", "cos", "exp"} {
		op, ok := ParseOp(sym)
		if !ok {
			t.Errorf("ParseOp(%q) failed", sym)
			continue
		}
		if op.Symbol() != sym {
			t.Errorf("ParseOp(%q).Symbol() = %q", sym, op.Symbol())
		}
	}
	if _, ok := ParseOp("tan"); ok {
		t.Error("ParseOp(tan) should fail")
	}
}
