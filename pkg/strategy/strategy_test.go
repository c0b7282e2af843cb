package strategy

import (
	"math/rand"
	"testing"

	"github.com/wildfunctions/symbolic_regression/pkg/expr"
	"github.com/wildfunctions/symbolic_regression/pkg/fitness"
	"github.com/wildfunctions/symbolic_regression/pkg/pool"
)

// scripted replays fixed draws, then repeats the last one.
type scripted struct {
	draws []float64
	i     int
}

func (s *scripted) Float64() float64 {
	v := s.draws[len(s.draws)-1]
	if s.i < len(s.draws) {
		v = s.draws[s.i]
	}
	s.i++
	return v
}

func member(f float64) fitness.Member {
	return fitness.Member{Chromosome: &expr.ConstNode{Val: f}, Fitness: f}
}

func TestSurvivorsDesc(t *testing.T) {
	// desc sorts 5, 3, 1, 0.5 and pops 0.5 then 1
	a, b := Survivors(member(5), member(1), member(3), member(0.5), fitness.Desc)
	if a.Fitness != 0.5 || b.Fitness != 1 {
		t.Errorf("desc survivors = %v, %v; want 0.5, 1", a.Fitness, b.Fitness)
	}
}

func TestSurvivorsAsc(t *testing.T) {
	// asc sorts 0.5, 1, 3, 5 and pops 5 then 3
	a, b := Survivors(member(5), member(1), member(3), member(0.5), fitness.Asc)
	if a.Fitness != 5 || b.Fitness != 3 {
		t.Errorf("asc survivors = %v, %v; want 5, 3", a.Fitness, b.Fitness)
	}
}

func TestSurvivorsSentinelLoses(t *testing.T) {
	a, b := Survivors(member(9999999), member(2), member(9999999), member(4), fitness.Desc)
	if a.Fitness != 2 || b.Fitness != 4 {
		t.Errorf("survivors = %v, %v; want 2, 4", a.Fitness, b.Fitness)
	}
}

// chain builds a left-leaning tree of the given depth.
func chain(depth int) expr.ExprNode {
	if depth <= 1 {
		return &expr.VarNode{}
	}
	return &expr.FuncNode{Op: expr.OpAdd, Arg1: chain(depth - 1), Arg2: &expr.ConstNode{Val: 1}}
}

func TestCrossoverDepthRejection(t *testing.T) {
	p1 := chain(5)
	p2 := chain(5)
	// pick parent2's root (k=0); insert at parent1's deepest leaf x (k=4)
	// giving depth 9, which exceeds the limit of 6.
	rng := &scripted{draws: []float64{0, 4.5 / 9}}
	got := Crossover(p1, p2, 6, rng)
	if got.String() != p1.String() {
		t.Errorf("Crossover = %s, want parent1 %s", got, p1)
	}
	if got == p1 {
		t.Error("Crossover returned parent1 itself instead of a copy")
	}
}

func TestCrossoverGraft(t *testing.T) {
	// parent1 (x + 1), parent2 (2 * x)
	p1 := &expr.FuncNode{Op: expr.OpAdd, Arg1: &expr.VarNode{}, Arg2: &expr.ConstNode{Val: 1}}
	p2 := &expr.FuncNode{Op: expr.OpMul, Arg1: &expr.ConstNode{Val: 2}, Arg2: &expr.VarNode{}}
	// pick parent2 node 1 (the 2); replace parent1 node 2 (the 1)
	rng := &scripted{draws: []float64{0.4, 0.7}}
	got := Crossover(p1, p2, 17, rng)
	if got.String() != "(x + 2)" {
		t.Errorf("Crossover = %s, want (x + 2)", got)
	}
	if p1.String() != "(x + 1)" || p2.String() != "(2 * x)" {
		t.Errorf("parents modified: %s, %s", p1, p2)
	}
}

func TestCrossoverNeverExceedsLimit(t *testing.T) {
	a := pool.NewAlphabet([]string{"+", "-", "*", "/", "sin", "cos", "exp"}, []string{"x", "R"})
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		p1 := pool.Generate(a, 6, true, rng)
		p2 := pool.Generate(a, 6, true, rng)
		if c := Crossover(p1, p2, 7, rng); c.Depth() > 7 {
			t.Fatalf("offspring depth %d > 7: %s", c.Depth(), c)
		}
	}
}

func TestTournamentBestOfSix(t *testing.T) {
	pop := fitness.Population{member(9), member(7), member(5), member(3), member(1), member(0.5)}
	pop.Sort(fitness.Desc)
	// six entrants at indices 0..5, then 0.9 skips the random pick
	rng := &scripted{draws: []float64{0.05, 0.2, 0.4, 0.55, 0.7, 0.9, 0.9}}
	s, _ := Get("tournament")
	got := s.Select(pop, fitness.Desc, rng)
	if got.Fitness != 0.5 {
		t.Errorf("Select = %v, want 0.5", got.Fitness)
	}
}

func TestTournamentRandomPick(t *testing.T) {
	pop := fitness.Population{member(9), member(7), member(5), member(3), member(1), member(0.5)}
	// all entrants are index 0 (fitness 9); 0.1 takes the random branch
	rng := &scripted{draws: []float64{0, 0, 0, 0, 0, 0, 0.1, 0.5}}
	got := (&TournamentSelector{}).Select(pop, fitness.Desc, rng)
	if got.Fitness != 9 {
		t.Errorf("Select = %v, want 9", got.Fitness)
	}
}

func TestTournamentReturnsCopy(t *testing.T) {
	tree := &expr.FuncNode{Op: expr.OpAdd, Arg1: &expr.VarNode{}, Arg2: &expr.VarNode{}}
	pop := fitness.Population{{Chromosome: tree, Fitness: 1}}
	got := (&TournamentSelector{}).Select(pop, fitness.Desc, rand.New(rand.NewSource(1)))
	got.Chromosome.(*expr.FuncNode).Arg1 = &expr.ConstNode{Val: 4}
	if tree.String() != "(x + x)" {
		t.Errorf("Select aliased the population: %s", tree)
	}
}

func newBreeder(data []float64, seed int64) *Breeder {
	sel, _ := Get("tournament")
	p, _ := pool.Get("standard")
	return &Breeder{
		Alphabet:     p.Alphabet(),
		Selector:     sel,
		Evaluator:    fitness.NewEvaluator(fitness.NewDataset(data), fitness.Desc),
		InitialDepth: 6,
		RunningDepth: 17,
		Rng:          rand.New(rand.NewSource(seed)),
	}
}

func TestBreederInitialize(t *testing.T) {
	b := newBreeder([]float64{0, 0, 1, 1, 2, 2}, 42)
	pop := b.Initialize(25)
	if len(pop) != 25 {
		t.Fatalf("len = %d, want 25", len(pop))
	}
	if b.Evaluator.Evaluations() != 25 {
		t.Errorf("evaluations = %d, want 25", b.Evaluator.Evaluations())
	}
	for i, m := range pop {
		if m.Chromosome.Depth() > 6 {
			t.Errorf("member %d depth %d > 6", i, m.Chromosome.Depth())
		}
	}
}

func TestBreederEvolveKeepsSizeAndOrder(t *testing.T) {
	for _, size := range []int{1, 2, 7, 30} {
		b := newBreeder([]float64{0, 1, 1, 3, 2, 5}, int64(size))
		pop := b.Initialize(size)
		pop.Sort(fitness.Desc)
		for gen := 0; gen < 5; gen++ {
			pop = b.Evolve(pop)
			if len(pop) != size {
				t.Fatalf("size %d: generation %d has %d members", size, gen, len(pop))
			}
			best, _ := pop.Best()
			for _, m := range pop {
				if fitness.Desc.Better(m.Fitness, best.Fitness) {
					t.Fatalf("size %d: %v better than last %v", size, m.Fitness, best.Fitness)
				}
				if m.Chromosome.Depth() > 17 {
					t.Fatalf("depth %d > 17", m.Chromosome.Depth())
				}
			}
		}
	}
}

func TestStrategyRegistry(t *testing.T) {
	names := Names()
	if len(names) < 1 {
		t.Fatalf("Expected at least 1 selector, got %d", len(names))
	}

	for _, name := range names {
		s, err := Get(name)
		if err != nil {
			t.Errorf("Get(%q) failed: %v", name, err)
			continue
		}
		if s.Name() != name {
			t.Errorf("Selector name mismatch: %q vs %q", s.Name(), name)
		}
	}
	if _, err := Get("roulette"); err == nil {
		t.Error("Expected error for unknown selection")
	}
}
