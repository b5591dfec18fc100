package algorithm

import (
	"context"
	"fmt"
	"math"

	"github.com/tdq45gj/mlrose-gj/internal/problem"
)

// ParamRestarts is the hyperparameter name the restart sweep binds.
const ParamRestarts = "Restarts"

// RandomHillClimb runs random hill climbing with restarts.
//
// Each search starts from a random state (the first search honors
// Options.InitState when set) and repeatedly draws a random neighbor,
// moving only when the neighbor is strictly better. An equal-fitness
// neighbor is rejected and counts against the attempt budget, so plateaus
// are never crossed. A search ends after MaxAttempts consecutive
// non-improving moves or MaxIters iterations.
// The number of additional searches beyond the first is taken from the
// "Restarts" parameter, so Restarts=n runs n+1 independent searches.
func RandomHillClimb(ctx context.Context, prob problem.Problem, opts Options) (*Result, error) {
	if err := validateOptions(prob, &opts); err != nil {
		return nil, err
	}
	restarts := opts.Param(ParamRestarts, 0)
	if restarts < 0 {
		return nil, fmt.Errorf("restarts cannot be negative, got %d", restarts)
	}

	result := &Result{
		BestFitness: math.Inf(-1),
	}
	bestAdj := math.Inf(-1)

	for restart := 0; restart <= restarts; restart++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var state []int
		if restart == 0 && opts.InitState != nil {
			state = append([]int(nil), opts.InitState...)
		} else {
			state = prob.RandomState(opts.RNG)
		}

		fitness, err := prob.Evaluate(state)
		if err != nil {
			return nil, err
		}
		result.FitnessEvals++
		adj := adjusted(prob, fitness)
		if adj > bestAdj {
			bestAdj = adj
			result.BestFitness = fitness
			result.BestState = append([]int(nil), state...)
			result.BestRestart = restart
		}

		attempts := 0
		for iters := 0; attempts < opts.MaxAttempts && iters < opts.MaxIters; iters++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			neighbor := prob.RandomNeighbor(state, opts.RNG)
			neighborFitness, err := prob.Evaluate(neighbor)
			if err != nil {
				return nil, err
			}
			result.FitnessEvals++
			result.Iterations++

			if adjusted(prob, neighborFitness) > adj {
				state = neighbor
				fitness = neighborFitness
				adj = adjusted(prob, fitness)
				attempts = 0
			} else {
				attempts++
			}

			if adj > bestAdj {
				bestAdj = adj
				result.BestFitness = fitness
				result.BestState = append([]int(nil), state...)
				result.BestRestart = restart
			}

			if opts.Curve {
				result.Curve = append(result.Curve, CurvePoint{
					Iteration:    result.Iterations,
					Fitness:      result.BestFitness,
					FitnessEvals: result.FitnessEvals,
				})
			}
			if opts.Progress != nil {
				opts.Progress(result.Iterations, result.BestFitness, result.FitnessEvals)
			}
		}
	}

	return result, nil
}
