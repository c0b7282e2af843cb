package engine

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/slices"

	"github.com/wildfunctions/symbolic_regression/pkg/fitness"
	"github.com/wildfunctions/symbolic_regression/pkg/pool"
	"github.com/wildfunctions/symbolic_regression/pkg/strategy"
)

// Config holds all parameters for an evolutionary run. It is read once at
// construction and never changed by the engine.
type Config struct {
	PopSize        int     `toml:"pop_size" json:"pop_size"`
	MaxGenerations int     `toml:"max_generations" json:"max_generations"`
	MutateProb     float64 `toml:"mutate_prob" json:"mutate_prob"` // carried, not applied
	Selection      string  `toml:"selection" json:"selection"`
	FitnessOrder   string  `toml:"fitness_order" json:"fitness_order"` // "desc" or "asc"

	Pool      string   `toml:"pool" json:"pool"`
	Functions []string `toml:"chromosome_function" json:"chromosome_function"`
	Terminals []string `toml:"chromosome_terminal" json:"chromosome_terminal"`
	Combined  []string `toml:"chromosome_combined" json:"chromosome_combined"`

	MaxFitnessEvals  int `toml:"max_fitness_evals" json:"max_fitness_evals"` // carried, not enforced
	TreeLimitInitial int `toml:"tree_limit_initial" json:"tree_limit_initial"`
	TreeLimitRunning int `toml:"tree_limit_running" json:"tree_limit_running"`

	Seed    int64  `toml:"seed" json:"seed"`
	Format  string `toml:"format" json:"format"` // "text" or "json"
	Verbose bool   `toml:"verbose" json:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	cfg := Config{
		PopSize:          4000,
		MaxGenerations:   51,
		MutateProb:       0.02,
		Selection:        "tournament",
		FitnessOrder:     "desc",
		MaxFitnessEvals:  20000,
		TreeLimitInitial: 6,
		TreeLimitRunning: 17,
		Seed:             0, // 0 = random
		Format:           "text",
	}
	if err := cfg.UsePool("standard"); err != nil {
		panic(err)
	}
	return cfg
}

// UsePool replaces the alphabets with those of the named pool.
func (c *Config) UsePool(name string) error {
	p, err := pool.Get(name)
	if err != nil {
		return err
	}
	a := p.Alphabet()
	c.Pool = name
	c.Functions = a.Functions
	c.Terminals = a.Terminals
	c.Combined = a.Combined
	return nil
}

// Alphabet returns the configured alphabet. An empty combined set is
// derived from the function and terminal sets.
func (c Config) Alphabet() pool.Alphabet {
	if len(c.Combined) == 0 {
		return pool.NewAlphabet(c.Functions, c.Terminals)
	}
	return pool.Alphabet{Functions: c.Functions, Terminals: c.Terminals, Combined: c.Combined}
}

// Validate reports the first problem that would stop a run.
func (c Config) Validate() error {
	if c.PopSize < 1 {
		return fmt.Errorf("pop_size must be at least 1, got %d", c.PopSize)
	}
	if c.MaxGenerations < 1 {
		return fmt.Errorf("max_generations must be at least 1, got %d", c.MaxGenerations)
	}
	if c.TreeLimitInitial < 1 || c.TreeLimitRunning < 1 {
		return fmt.Errorf("tree depth limits must be at least 1, got initial %d running %d",
			c.TreeLimitInitial, c.TreeLimitRunning)
	}
	if c.TreeLimitRunning < c.TreeLimitInitial {
		return fmt.Errorf("tree_limit_running (%d) must not be below tree_limit_initial (%d)",
			c.TreeLimitRunning, c.TreeLimitInitial)
	}
	if _, err := strategy.Get(c.Selection); err != nil {
		return fmt.Errorf("%w (available: %v)", err, strategy.Names())
	}
	if _, err := fitness.ParseOrder(c.FitnessOrder); err != nil {
		return err
	}
	if err := c.Alphabet().Validate(); err != nil {
		return err
	}
	switch c.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown format: %s (want text or json)", c.Format)
	}
	return nil
}

// LoadConfig overlays the TOML file at path onto base. Setting pool
// without explicit alphabets selects that pool's alphabets; setting the
// function or terminal set without a combined set re-derives it.
func LoadConfig(path string, base Config) (Config, error) {
	cfg := base
	// the decoder reuses slice backing arrays; keep base's untouched
	cfg.Functions = slices.Clone(base.Functions)
	cfg.Terminals = slices.Clone(base.Terminals)
	cfg.Combined = slices.Clone(base.Combined)

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return base, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return base, fmt.Errorf("load config %s: unknown keys %v", path, undecoded)
	}

	explicitAlphabet := md.IsDefined("chromosome_function") || md.IsDefined("chromosome_terminal")
	if md.IsDefined("pool") && !explicitAlphabet {
		if err := cfg.UsePool(cfg.Pool); err != nil {
			return base, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if explicitAlphabet && !md.IsDefined("chromosome_combined") {
		cfg.Combined = nil
	}
	return cfg, nil
}
