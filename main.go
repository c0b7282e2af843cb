package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wildfunctions/symbolic_regression/pkg/engine"
	"github.com/wildfunctions/symbolic_regression/pkg/fitness"
	"github.com/wildfunctions/symbolic_regression/pkg/pool"
	"github.com/wildfunctions/symbolic_regression/pkg/strategy"
)

type options struct {
	configPath string
	dataPath   string
	points     string
	poolName   string
}

// bindFlags registers every command-line flag on a new flag set, using the
// current values of cfg and opts as defaults.
func bindFlags(cfg *engine.Config, opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("symbolic_regression", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", opts.configPath, "TOML config file (flags override it)")
	fs.StringVar(&opts.dataPath, "data", opts.dataPath, "file of x,y samples, one per line")
	fs.StringVar(&opts.points, "points", opts.points, "inline samples x0,y0,x1,y1,...")
	fs.StringVar(&opts.poolName, "pool", opts.poolName, "symbol pool ("+strings.Join(pool.Names(), ", ")+")")
	fs.StringVar(&cfg.Selection, "selection", cfg.Selection, "selection ("+strings.Join(strategy.Names(), ", ")+")")
	fs.StringVar(&cfg.FitnessOrder, "order", cfg.FitnessOrder, "fitness order (desc, asc)")
	fs.IntVar(&cfg.PopSize, "population", cfg.PopSize, "population size")
	fs.IntVar(&cfg.MaxGenerations, "generations", cfg.MaxGenerations, "max generations")
	fs.IntVar(&cfg.TreeLimitInitial, "depth", cfg.TreeLimitInitial, "initial tree depth limit")
	fs.IntVar(&cfg.TreeLimitRunning, "maxdepth", cfg.TreeLimitRunning, "tree depth limit after crossover")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = random)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format (text, json)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every generation to stderr")
	return fs
}

// parseArgs builds the run config. When -config names a file, the flags are
// parsed a second time on top of the loaded config so explicit flags win.
func parseArgs(args []string) (engine.Config, options, error) {
	cfg := engine.DefaultConfig()
	opts := options{poolName: cfg.Pool}
	fs := bindFlags(&cfg, &opts)
	if err := fs.Parse(args); err != nil {
		return cfg, opts, err
	}

	if opts.configPath != "" {
		loaded, err := engine.LoadConfig(opts.configPath, engine.DefaultConfig())
		if err != nil {
			return cfg, opts, err
		}
		cfg = loaded
		fs = bindFlags(&cfg, &opts)
		if err := fs.Parse(args); err != nil {
			return cfg, opts, err
		}
	}

	poolSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "pool" {
			poolSet = true
		}
	})
	if poolSet {
		if err := cfg.UsePool(opts.poolName); err != nil {
			return cfg, opts, err
		}
	}
	return cfg, opts, nil
}

func main() {
	cfg, opts, err := parseArgs(os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	samples, err := loadSamples(opts.dataPath, opts.points)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	e, err := engine.New(cfg, samples)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	report := e.Run()

	switch cfg.Format {
	case "json":
		if err := engine.WriteJSONFinal(os.Stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "error writing JSON: %v\n", err)
			os.Exit(1)
		}
	default:
		engine.WriteTextFinal(os.Stdout, report)
	}
}

func loadSamples(dataPath, points string) ([]float64, error) {
	switch {
	case dataPath != "" && points != "":
		return nil, fmt.Errorf("use either -data or -points, not both")
	case points != "":
		return fitness.ParsePoints(points)
	case dataPath != "":
		f, err := os.Open(dataPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		samples, err := fitness.ReadSamples(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", dataPath, err)
		}
		return samples, nil
	default:
		return nil, fmt.Errorf("no samples: pass -data or -points")
	}
}
