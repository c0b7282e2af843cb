package fitness

import (
	"golang.org/x/exp/slices"

	"github.com/wildfunctions/symbolic_regression/pkg/expr"
)

// Member is a scored chromosome.
type Member struct {
	Chromosome expr.ExprNode
	Fitness    float64
}

// Clone returns a deep copy of the member.
func (m Member) Clone() Member {
	return Member{Chromosome: m.Chromosome.Clone(), Fitness: m.Fitness}
}

// Population is an ordered set of members.
type Population []Member

// Sort orders members worst-first so the best member is last. The sort is
// stable: ties keep their insertion order.
func (p Population) Sort(o Order) {
	slices.SortStableFunc(p, func(a, b Member) int {
		return o.Compare(a.Fitness, b.Fitness)
	})
}

// Best returns the last member, which is the best one after Sort.
func (p Population) Best() (Member, bool) {
	if len(p) == 0 {
		return Member{}, false
	}
	return p[len(p)-1], true
}

// Fitnesses returns the members' fitness values in order.
func (p Population) Fitnesses() []float64 {
	out := make([]float64, len(p))
	for i, m := range p {
		out[i] = m.Fitness
	}
	return out
}
