package runner

import (
	"context"
	"fmt"

	"github.com/tdq45gj/mlrose-gj/internal/algorithm"
	"github.com/tdq45gj/mlrose-gj/internal/problem"
)

// AlgorithmRHC is the algorithm name recorded for random hill climbing runs.
const AlgorithmRHC = "rhc"

// RHCRunner sweeps the restart count of random hill climbing over a problem.
// Each value in the restart list becomes one grid point, so a list of n
// values produces n independent searches with shared iteration checkpoints.
type RHCRunner struct {
	base        *Base
	restartList []int
}

// NewRHCRunner creates a restart-sweep runner for random hill climbing.
func NewRHCRunner(prob problem.Problem, experimentName string, seed int64, iterationList, restartList []int, maxAttempts int, generateCurves bool) (*RHCRunner, error) {
	if len(restartList) == 0 {
		return nil, fmt.Errorf("restart list must have at least one value")
	}
	for i, restarts := range restartList {
		if restarts < 0 {
			return nil, fmt.Errorf("restart list value %d cannot be negative, got %d", i, restarts)
		}
	}
	base, err := NewBase(prob, experimentName, seed, iterationList, maxAttempts, generateCurves)
	if err != nil {
		return nil, err
	}
	return &RHCRunner{
		base:        base,
		restartList: append([]int(nil), restartList...),
	}, nil
}

// WithOutputDir enables CSV output under the given directory.
func (r *RHCRunner) WithOutputDir(dir string) *RHCRunner {
	r.base.WithOutputDir(dir)
	return r
}

// WithMaxParallel bounds concurrent restart-sweep runs.
func (r *RHCRunner) WithMaxParallel(n int) *RHCRunner {
	r.base.WithMaxParallel(n)
	return r
}

// Base returns the underlying experiment harness.
func (r *RHCRunner) Base() *Base {
	return r.base
}

// Store returns the run store tracking the sweep's grid points.
func (r *RHCRunner) Store() *Store {
	return r.base.Store()
}

// Run performs the restart sweep with a background context.
func (r *RHCRunner) Run() (*RunStats, *RunCurves, error) {
	return r.RunContext(context.Background())
}

// RunContext performs the restart sweep, running random hill climbing once
// per restart value and collecting the statistics and curve tables.
func (r *RHCRunner) RunContext(ctx context.Context) (*RunStats, *RunCurves, error) {
	return r.base.RunExperiment(ctx, AlgorithmRHC, algorithm.RandomHillClimb,
		ParamList{Name: algorithm.ParamRestarts, Values: r.restartList})
}
