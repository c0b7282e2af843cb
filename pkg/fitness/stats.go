package fitness

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the fitness distribution of a population. Only viable
// members (finite fitness, not the NaN sentinel) contribute to the moments.
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Viable int     `json:"viable"`
	Size   int     `json:"size"`
}

// Summarize computes a Summary for p under order o.
func Summarize(p Population, o Order) Summary {
	s := Summary{Size: len(p)}
	viable := make([]float64, 0, len(p))
	sentinel := o.Sentinel()
	for _, m := range p {
		if math.IsInf(m.Fitness, 0) || m.Fitness == sentinel {
			continue
		}
		viable = append(viable, m.Fitness)
	}
	s.Viable = len(viable)
	switch len(viable) {
	case 0:
	case 1:
		s.Mean = viable[0]
	default:
		s.Mean, s.StdDev = stat.MeanStdDev(viable, nil)
	}
	return s
}
