package pool

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"github.com/wildfunctions/symbolic_regression/pkg/expr"
)

// Rand is the random source every operator draws from. *rand.Rand
// satisfies it; tests inject seeded or scripted sources.
type Rand interface {
	Float64() float64
}

// Index draws floor(u * n) for u uniform in [0, 1).
func Index(rng Rand, n int) int {
	i := int(math.Floor(rng.Float64() * float64(n)))
	if i >= n {
		i = n - 1
	}
	return i
}

// Alphabet holds the symbols trees are built from.
type Alphabet struct {
	Functions []string
	Terminals []string
	Combined  []string
}

// NewAlphabet builds an alphabet whose combined set is functions followed
// by terminals.
func NewAlphabet(functions, terminals []string) Alphabet {
	return Alphabet{
		Functions: slices.Clone(functions),
		Terminals: slices.Clone(terminals),
		Combined:  append(slices.Clone(functions), terminals...),
	}
}

// Validate checks that every symbol is known and that leaves can always be
// drawn.
func (a Alphabet) Validate() error {
	if len(a.Terminals) == 0 {
		return fmt.Errorf("alphabet has no terminals")
	}
	if len(a.Combined) == 0 {
		return fmt.Errorf("alphabet has an empty combined set")
	}
	for _, sym := range a.Functions {
		if _, ok := expr.ParseOp(sym); !ok {
			return fmt.Errorf("unknown function symbol: %q", sym)
		}
	}
	for _, sym := range a.Terminals {
		if sym != expr.SymVar && sym != expr.SymConst {
			return fmt.Errorf("unknown terminal symbol: %q", sym)
		}
	}
	for _, sym := range a.Combined {
		if _, ok := expr.ParseOp(sym); !ok && sym != expr.SymVar && sym != expr.SymConst {
			return fmt.Errorf("unknown symbol in combined set: %q", sym)
		}
	}
	return nil
}

// Pool is a named alphabet.
type Pool interface {
	Name() string
	Alphabet() Alphabet
}

var registry = map[string]func() Pool{}

// Register adds a pool constructor to the registry.
func Register(name string, constructor func() Pool) {
	registry[name] = constructor
}

// Get returns a pool by name.
func Get(name string) (Pool, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown pool: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered pool names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
