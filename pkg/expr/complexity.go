package expr

// NodeCount is 1 for a leaf.
func (v *VarNode) NodeCount() int { return 1 }

// NodeCount is 1 for a leaf.
func (c *ConstNode) NodeCount() int { return 1 }

// NodeCount counts a function node missing either child as a leaf.
func (f *FuncNode) NodeCount() int {
	a1, a2, ok := args(f)
	if !ok {
		return 1
	}
	return 1 + a1.NodeCount() + a2.NodeCount()
}

// Depth is 1 for a leaf.
func (v *VarNode) Depth() int { return 1 }

// Depth is 1 for a leaf.
func (c *ConstNode) Depth() int { return 1 }

// Depth is the longest root-to-leaf path; a malformed node is a leaf.
func (f *FuncNode) Depth() int {
	a1, a2, ok := args(f)
	if !ok {
		return 1
	}
	ld := a1.Depth()
	rd := a2.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}
