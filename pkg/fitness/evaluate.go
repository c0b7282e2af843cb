package fitness

import (
	"math"

	"github.com/wildfunctions/symbolic_regression/pkg/expr"
)

// Evaluator scores chromosomes against a dataset and counts how many
// evaluations it has performed.
type Evaluator struct {
	data  Dataset
	order Order
	evals int
}

// NewEvaluator returns an evaluator for d under order o.
func NewEvaluator(d Dataset, o Order) *Evaluator {
	return &Evaluator{data: d, order: o}
}

// Evaluate returns the sum of absolute errors of tree over the dataset.
// A NaN total becomes the order's sentinel; infinities are kept.
func (e *Evaluator) Evaluate(tree expr.ExprNode) float64 {
	e.evals++
	var total float64
	for _, s := range e.data {
		total += math.Abs(s.Y - tree.Eval(s.X))
	}
	if math.IsNaN(total) {
		return e.order.Sentinel()
	}
	return total
}

// Evaluations returns the number of Evaluate calls so far.
func (e *Evaluator) Evaluations() int { return e.evals }

// Order returns the evaluator's fitness order.
func (e *Evaluator) Order() Order { return e.order }
