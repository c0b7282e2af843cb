package strategy

import (
	"github.com/wildfunctions/symbolic_regression/pkg/expr"
	"github.com/wildfunctions/symbolic_regression/pkg/fitness"
	"github.com/wildfunctions/symbolic_regression/pkg/pool"
)

// Crossover grafts a random subtree of parent2 onto a random point of a
// copy of parent1. Offspring deeper than depthLimit are discarded in favor
// of an unchanged copy of parent1. Neither parent is modified.
func Crossover(parent1, parent2 expr.ExprNode, depthLimit int, rng pool.Rand) expr.ExprNode {
	picked := expr.Pick(parent2, pool.Index(rng, parent2.NodeCount()))
	if picked == nil {
		picked = parent2.Clone()
	}

	child := parent1.Clone()
	child = expr.Replace(child, pool.Index(rng, child.NodeCount()), picked)

	if child.Depth() > depthLimit {
		return parent1.Clone()
	}
	return child
}

// Survivors sorts the four members of a crossover event and pops two off
// the tail, returning them in pop order. The comparator keeps the best at
// the tail, so these are the two best of the four.
func Survivors(parent1, parent2, child1, child2 fitness.Member, order fitness.Order) (fitness.Member, fitness.Member) {
	candidates := fitness.Population{parent1, parent2, child1, child2}
	candidates.Sort(order)
	return candidates[3], candidates[2]
}
