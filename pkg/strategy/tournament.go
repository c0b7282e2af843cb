package strategy

import (
	"github.com/wildfunctions/symbolic_regression/pkg/fitness"
	"github.com/wildfunctions/symbolic_regression/pkg/pool"
)

const (
	tournamentSize = 6
	randomPickRate = 0.5 // chance of returning a random entrant instead of the winner
)

func init() {
	Register("tournament", func() Selector { return &TournamentSelector{} })
}

// TournamentSelector draws six entrants with replacement. Half the time it
// returns one of them at random, otherwise the best of the six.
type TournamentSelector struct{}

func (s *TournamentSelector) Name() string { return "tournament" }

func (s *TournamentSelector) Select(pop fitness.Population, order fitness.Order, rng pool.Rand) fitness.Member {
	if len(pop) == 0 {
		return fitness.Member{}
	}

	entrants := make(fitness.Population, tournamentSize)
	for i := range entrants {
		entrants[i] = pop[pool.Index(rng, len(pop))]
	}

	if rng.Float64() < randomPickRate {
		return entrants[pool.Index(rng, len(entrants))].Clone()
	}

	entrants.Sort(order)
	best, _ := entrants.Best()
	return best.Clone()
}
