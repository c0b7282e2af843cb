package expr

// Nodes are addressed by pre-order index: the node itself is 0, then its
// arg1 subtree, then its arg2 subtree. Descent stops at leaves and at
// function nodes missing a child.

// Pick returns a clone of the subtree at pre-order index k, or nil when k
// is out of range.
func Pick(root ExprNode, k int) ExprNode {
	n, _ := traverse(root, k)
	if n == nil {
		return nil
	}
	return n.Clone()
}

func traverse(node ExprNode, counter int) (ExprNode, int) {
	if counter == 0 {
		return node, 0
	}
	a1, a2, ok := args(node)
	if !ok {
		return nil, counter
	}
	found, counter := traverse(a1, counter-1)
	if found != nil {
		return found, counter
	}
	return traverse(a2, counter-1)
}

// Replace overwrites the node at pre-order index k with sub and returns
// the (possibly new) root. sub is attached as is; pass a clone if the
// caller keeps a reference. Out-of-range indices leave the tree unchanged.
func Replace(root ExprNode, k int, sub ExprNode) ExprNode {
	update(&root, sub, k)
	return root
}

func update(slot *ExprNode, sub ExprNode, counter int) int {
	if counter == 0 {
		*slot = sub
		return 0
	}
	f, ok := (*slot).(*FuncNode)
	if !ok || f.Arg1 == nil || f.Arg2 == nil {
		return counter
	}
	counter = update(&f.Arg1, sub, counter-1)
	if counter == 0 {
		return 0
	}
	return update(&f.Arg2, sub, counter-1)
}
