package strategy

import (
	"github.com/wildfunctions/symbolic_regression/pkg/expr"
	"github.com/wildfunctions/symbolic_regression/pkg/fitness"
	"github.com/wildfunctions/symbolic_regression/pkg/pool"
)

// Draws above this threshold reproduce a parent unchanged (10%); the rest
// go to crossover.
const reproductionThreshold = 0.9

// Breeder builds the initial population and each following generation.
type Breeder struct {
	Alphabet     pool.Alphabet
	Selector     Selector
	Evaluator    *fitness.Evaluator
	InitialDepth int
	RunningDepth int
	Rng          pool.Rand
}

func (b *Breeder) order() fitness.Order {
	return b.Evaluator.Order()
}

// Initialize generates and scores popSize members, ramped half-and-half.
// Every generated member is accepted. The result is not sorted.
func (b *Breeder) Initialize(popSize int) fitness.Population {
	pop := make(fitness.Population, 0, popSize)
	for i := 0; i < popSize; i++ {
		tree := pool.Generate(b.Alphabet, b.InitialDepth, pool.RampedHalfAndHalf(i, popSize), b.Rng)
		pop = append(pop, b.score(tree))
	}
	return pop
}

// Evolve builds a sorted generation the same size as pop. Each step either
// copies one selected parent or crosses two parents twice and keeps the
// two best of the four.
func (b *Breeder) Evolve(pop fitness.Population) fitness.Population {
	n := len(pop)
	next := make(fitness.Population, 0, n)
	order := b.order()

	for len(next) < n {
		r := b.Rng.Float64()
		p1 := b.Selector.Select(pop, order, b.Rng)
		if r > reproductionThreshold {
			next = append(next, p1)
			continue
		}

		p2 := b.Selector.Select(pop, order, b.Rng)
		c1 := b.score(Crossover(p1.Chromosome, p2.Chromosome, b.RunningDepth, b.Rng))
		c2 := b.score(Crossover(p1.Chromosome, p2.Chromosome, b.RunningDepth, b.Rng))

		first, second := Survivors(p1, p2, c1, c2, order)
		next = append(next, first)
		if len(next) < n {
			next = append(next, second)
		}
	}

	// Backfill from the front of the previous generation if short.
	for i := 0; len(next) < n; i++ {
		next = append(next, pop[i])
	}

	next.Sort(order)
	return next
}

func (b *Breeder) score(tree expr.ExprNode) fitness.Member {
	return fitness.Member{Chromosome: tree, Fitness: b.Evaluator.Evaluate(tree)}
}
