package algorithm

import (
	"context"
	"fmt"

	"github.com/tdq45gj/mlrose-gj/internal/problem"
	"github.com/tdq45gj/mlrose-gj/pkg/utils"
)

// Func is the algorithm signature the experiment harness sweeps over.
type Func func(ctx context.Context, prob problem.Problem, opts Options) (*Result, error)

// ProgressFunc receives the search state after each iteration: the
// cumulative iteration index, the best raw fitness so far, and the
// cumulative number of fitness evaluations.
type ProgressFunc func(iteration int, bestFitness float64, fitnessEvals int)

// Options configures a single algorithm invocation.
type Options struct {
	// MaxAttempts is the number of consecutive non-improving iterations
	// tolerated before a search (or restart) stops.
	MaxAttempts int

	// MaxIters caps the iterations of each independent search.
	MaxIters int

	// Curve enables recording of the best-fitness trajectory.
	Curve bool

	// RNG is the random source for the run. Required.
	RNG *utils.RandSource

	// InitState optionally fixes the starting state of the first search.
	InitState []int

	// Params carries named hyperparameter values bound by the sweep
	// harness, e.g. "Restarts".
	Params map[string]int

	// Progress, when set, is invoked after every iteration.
	Progress ProgressFunc
}

// WithParam returns a copy of the options with the named parameter set.
func (o Options) WithParam(name string, value int) Options {
	params := make(map[string]int, len(o.Params)+1)
	for k, v := range o.Params {
		params[k] = v
	}
	params[name] = value
	o.Params = params
	return o
}

// Param returns the named parameter value, or def when unset.
func (o Options) Param(name string, def int) int {
	if v, ok := o.Params[name]; ok {
		return v
	}
	return def
}

// CurvePoint is one point of a best-fitness trajectory.
type CurvePoint struct {
	Iteration    int
	Fitness      float64
	FitnessEvals int
}

// Result contains the outcome of an algorithm invocation.
type Result struct {
	BestState    []int
	BestFitness  float64 // raw fitness, in the problem's own direction
	BestRestart  int     // index of the search that found the best state
	Iterations   int     // cumulative iterations across all searches
	FitnessEvals int     // cumulative fitness evaluations
	Curve        []CurvePoint
}

// validateOptions checks the invariants shared by all algorithms.
func validateOptions(prob problem.Problem, opts *Options) error {
	if prob == nil {
		return fmt.Errorf("problem is required")
	}
	if opts.MaxAttempts <= 0 {
		return fmt.Errorf("max attempts must be positive, got %d", opts.MaxAttempts)
	}
	if opts.MaxIters <= 0 {
		return fmt.Errorf("max iters must be positive, got %d", opts.MaxIters)
	}
	if opts.RNG == nil {
		opts.RNG = utils.NewRandSource(0)
	}
	if opts.InitState != nil && len(opts.InitState) != prob.Length() {
		return fmt.Errorf("init state length %d does not match problem length %d", len(opts.InitState), prob.Length())
	}
	return nil
}

// adjusted maps a raw fitness to the internal always-maximize scale.
func adjusted(prob problem.Problem, fitness float64) float64 {
	if prob.Maximize() {
		return fitness
	}
	return -fitness
}
