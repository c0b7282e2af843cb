package strategy

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/wildfunctions/symbolic_regression/pkg/fitness"
	"github.com/wildfunctions/symbolic_regression/pkg/pool"
)

// Selector picks a parent from a sorted population. The returned member is
// a deep copy.
type Selector interface {
	Name() string
	Select(pop fitness.Population, order fitness.Order, rng pool.Rand) fitness.Member
}

var registry = map[string]func() Selector{}

// Register adds a selector constructor to the registry.
func Register(name string, constructor func() Selector) {
	registry[name] = constructor
}

// Get returns a selector by name.
func Get(name string) (Selector, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown selection: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered selector names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
