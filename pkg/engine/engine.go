package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"

	"github.com/wildfunctions/symbolic_regression/pkg/fitness"
	"github.com/wildfunctions/symbolic_regression/pkg/logx"
	"github.com/wildfunctions/symbolic_regression/pkg/strategy"
)

// terminationFitness stops a run once the best member's error drops below it.
const terminationFitness = 0.001

// State is the engine's lifecycle stage.
type State int

const (
	Uninitialized State = iota
	Running
	Done
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Engine runs the evolutionary search one generation at a time.
type Engine struct {
	id      uuid.UUID
	cfg     Config
	seed    int64
	data    fitness.Dataset
	order   fitness.Order
	eval    *fitness.Evaluator
	breeder *strategy.Breeder
	log     *logx.Logger

	state      State
	gen        int
	population fitness.Population
	final      Result
	reports    []GenerationReport
}

// New creates an engine from cfg and a flat x0, y0, x1, y1, ... sample
// slice. A trailing unpaired value is dropped.
func New(cfg Config, samples []float64) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sel, err := strategy.Get(cfg.Selection)
	if err != nil {
		return nil, err
	}
	order, err := fitness.ParseOrder(cfg.FitnessOrder)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	log := logx.Discard()
	if cfg.Verbose {
		log = logx.New(os.Stderr)
	}

	data := fitness.NewDataset(samples)
	if len(data) == 0 {
		return nil, fmt.Errorf("no samples: need at least one x,y pair")
	}
	eval := fitness.NewEvaluator(data, order)

	return &Engine{
		id:    uuid.New(),
		cfg:   cfg,
		seed:  seed,
		data:  data,
		order: order,
		eval:  eval,
		breeder: &strategy.Breeder{
			Alphabet:     cfg.Alphabet(),
			Selector:     sel,
			Evaluator:    eval,
			InitialDepth: cfg.TreeLimitInitial,
			RunningDepth: cfg.TreeLimitRunning,
			Rng:          rand.New(rand.NewSource(seed)),
		},
		log: log,
	}, nil
}

// SetLogger replaces the engine's logger.
func (e *Engine) SetLogger(l *logx.Logger) {
	e.log = l
}

// Init builds and scores the first population. Calling it again restarts
// the run with a fresh population.
func (e *Engine) Init() {
	e.log.Printf(logx.Init, "run %s: %d samples, population %d, %d generations, order %s, seed %d",
		e.id, len(e.data), e.cfg.PopSize, e.cfg.MaxGenerations, e.order, e.seed)

	e.population = e.breeder.Initialize(e.cfg.PopSize)
	e.population.Sort(e.order)
	e.gen = 0
	e.reports = nil
	e.final = Result{}
	e.state = Running

	best, _ := e.population.Best()
	e.log.Printf(logx.Init, "initial best %g | %s", best.Fitness, best.Chromosome)
}

// Advance evolves one generation and reports the best member. Once the run
// is done further calls repeat the final result unchanged.
func (e *Engine) Advance() Result {
	switch e.state {
	case Done:
		return e.final
	case Uninitialized:
		e.Init()
	}

	e.gen++
	best, _ := e.population.Best()
	if e.gen >= e.cfg.MaxGenerations || best.Fitness < terminationFitness {
		return e.finish()
	}

	e.population = e.breeder.Evolve(e.population)

	report := e.report()
	e.reports = append(e.reports, report)
	e.log.Printf(logx.Gen, "%d | best %g | mean %.4g sd %.4g | viable %d/%d | %s",
		report.Generation, report.BestFitness, report.Summary.Mean, report.Summary.StdDev,
		report.Summary.Viable, report.Summary.Size, report.BestCandidate)

	return e.result(false)
}

// Run initializes if needed and advances until the run is done.
func (e *Engine) Run() FinalReport {
	if e.state == Uninitialized {
		e.Init()
	}
	var res Result
	for !res.Done {
		res = e.Advance()
	}

	final := FinalReport{
		RunID:       e.id.String(),
		Seed:        e.seed,
		Config:      e.cfg,
		Evaluations: e.eval.Evaluations(),
		Result:      res,
	}
	if best, ok := e.population.Best(); ok {
		final.BestLaTeX = best.Chromosome.LaTeX()
	}
	if e.cfg.Verbose {
		final.Generations = e.reports
	}
	return final
}

func (e *Engine) finish() Result {
	e.state = Done
	e.final = e.result(true)
	e.log.Printf(logx.Done, "%s after %d generations, %s fitness evaluations",
		e.log.Highlight("run completed"), e.gen, logx.Count(e.eval.Evaluations()))
	e.log.Printf(logx.Done, "best %g | %s", e.final.Fitness, e.final.Best)
	return e.final
}

func (e *Engine) result(done bool) Result {
	res := Result{Done: done, Gen: e.gen, Chromosome: json.RawMessage("null")}
	best, ok := e.population.Best()
	if !ok {
		return res
	}
	res.Fitness = Fitness(best.Fitness)
	res.Best = best.Chromosome.String()
	if b, err := json.Marshal(best.Chromosome); err == nil {
		res.Chromosome = b
	} else {
		e.log.Printf(logx.Warn, "encode chromosome: %v", err)
	}
	return res
}

func (e *Engine) report() GenerationReport {
	best, _ := e.population.Best()
	return GenerationReport{
		Generation:    e.gen,
		BestFitness:   Fitness(best.Fitness),
		BestCandidate: best.Chromosome.String(),
		Summary:       fitness.Summarize(e.population, e.order),
	}
}

// ID returns the run identifier.
func (e *Engine) ID() string { return e.id.String() }

// Seed returns the seed the engine's random source was built from.
func (e *Engine) Seed() int64 { return e.seed }

// State returns the lifecycle stage.
func (e *Engine) State() State { return e.state }

// Generation returns the generation counter.
func (e *Engine) Generation() int { return e.gen }

// Evaluations returns the number of fitness evaluations so far.
func (e *Engine) Evaluations() int { return e.eval.Evaluations() }

// Population returns a copy of the current population slice. Members
// share chromosomes with the engine and must not be modified.
func (e *Engine) Population() fitness.Population {
	return append(fitness.Population(nil), e.population...)
}

// Dataset returns the samples the engine scores against.
func (e *Engine) Dataset() fitness.Dataset { return e.data }
