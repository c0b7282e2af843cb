package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/wildfunctions/symbolic_regression/pkg/fitness"
	"github.com/wildfunctions/symbolic_regression/pkg/logx"
)

// Fitness is a reported fitness value. Infinite and NaN values encode as
// the JSON strings "+Inf", "-Inf" and "NaN".
type Fitness float64

func (f Fitness) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return []byte(strconv.Quote(strconv.FormatFloat(v, 'g', -1, 64))), nil
	}
	return json.Marshal(v)
}

func (f *Fitness) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("fitness %q: %w", s, err)
		}
		*f = Fitness(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Fitness(v)
	return nil
}

// Result is what Advance reports: the best member of the current
// population in infix and tree form.
type Result struct {
	Done       bool            `json:"done"`
	Fitness    Fitness         `json:"fitness"`
	Best       string          `json:"best"`
	Gen        int             `json:"gen"`
	Chromosome json.RawMessage `json:"chromosome"`
}

// JSON renders the result as a single JSON object.
func (r Result) JSON() ([]byte, error) {
	return json.Marshal(r)
}

// GenerationReport summarizes one generation.
type GenerationReport struct {
	Generation    int             `json:"generation"`
	BestFitness   Fitness         `json:"best_fitness"`
	BestCandidate string          `json:"best_candidate"`
	Summary       fitness.Summary `json:"summary"`
}

// FinalReport summarizes the entire run.
type FinalReport struct {
	RunID       string             `json:"run_id"`
	Seed        int64              `json:"seed"`
	Config      Config             `json:"config"`
	Evaluations int                `json:"evaluations"`
	Result      Result             `json:"result"`
	BestLaTeX   string             `json:"best_latex"`
	Generations []GenerationReport `json:"generations,omitempty"`
}

// WriteTextReport writes a generation report in human-readable format.
func WriteTextReport(w io.Writer, r GenerationReport) {
	fmt.Fprintf(w, "Gen %4d | Best: %.6g | Mean: %.4g | SD: %.4g | Viable: %d/%d | %s\n",
		r.Generation, r.BestFitness, r.Summary.Mean, r.Summary.StdDev,
		r.Summary.Viable, r.Summary.Size, r.BestCandidate)
}

// WriteTextFinal writes the final report in human-readable format.
func WriteTextFinal(w io.Writer, r FinalReport) {
	for _, g := range r.Generations {
		WriteTextReport(w, g)
	}
	fmt.Fprintln(w, "\n========== FINAL RESULT ==========")
	fmt.Fprintf(w, "Run:         %s\n", r.RunID)
	fmt.Fprintf(w, "Seed:        %d\n", r.Seed)
	fmt.Fprintf(w, "Population:  %d\n", r.Config.PopSize)
	fmt.Fprintf(w, "Generations: %d/%d\n", r.Result.Gen, r.Config.MaxGenerations)
	fmt.Fprintf(w, "Evaluations: %s\n", logx.Count(r.Evaluations))
	fmt.Fprintf(w, "Best:        %s\n", r.Result.Best)
	fmt.Fprintf(w, "LaTeX:       %s\n", r.BestLaTeX)
	fmt.Fprintf(w, "Fitness:     %g\n", r.Result.Fitness)
	fmt.Fprintln(w, "==================================")
}

// WriteJSONFinal writes the final report as JSON.
func WriteJSONFinal(w io.Writer, r FinalReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
