package expr

// Clone returns a new variable node.
func (v *VarNode) Clone() ExprNode {
	return &VarNode{}
}

// Clone returns a copy of the constant.
func (c *ConstNode) Clone() ExprNode {
	return &ConstNode{Val: c.Val}
}

// Clone deep-copies the subtree; missing children stay missing.
func (f *FuncNode) Clone() ExprNode {
	out := &FuncNode{Op: f.Op}
	if f.Arg1 != nil {
		out.Arg1 = f.Arg1.Clone()
	}
	if f.Arg2 != nil {
		out.Arg2 = f.Arg2.Clone()
	}
	return out
}
