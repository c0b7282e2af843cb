package expr

import "encoding/json"

// jsonNode is the wire shape {action, arg1?, arg2?}. Terminals carry a
// numeric action, everything else a string symbol.
type jsonNode struct {
	Action any      `json:"action"`
	Arg1   ExprNode `json:"arg1,omitempty"`
	Arg2   ExprNode `json:"arg2,omitempty"`
}

func (v *VarNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonNode{Action: SymVar})
}

func (c *ConstNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonNode{Action: c.Val})
}

// MarshalJSON omits arg2 for sin and cos even though the node still owns
// it. Malformed nodes encode as null.
func (f *FuncNode) MarshalJSON() ([]byte, error) {
	a1, a2, ok := args(f)
	sym := f.Op.Symbol()
	if !ok || sym == "" {
		return []byte("null"), nil
	}
	n := jsonNode{Action: sym, Arg1: a1}
	if !f.Op.Unary() {
		n.Arg2 = a2
	}
	return json.Marshal(n)
}
