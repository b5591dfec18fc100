package algorithm

import (
	"context"
	"fmt"
	"math"

	"github.com/tdq45gj/mlrose-gj/internal/problem"
)

// HillClimb runs deterministic best-neighbor hill climbing with restarts.
//
// Each search moves to the best state in the full neighborhood of the
// current state and stops at the first iteration with no improving
// neighbor, so MaxAttempts does not apply. The problem must implement
// problem.NeighborEnumerator.
func HillClimb(ctx context.Context, prob problem.Problem, opts Options) (*Result, error) {
	if err := validateOptions(prob, &opts); err != nil {
		return nil, err
	}
	enumerator, ok := prob.(problem.NeighborEnumerator)
	if !ok {
		return nil, fmt.Errorf("problem %s does not support neighborhood enumeration", prob.Name())
	}
	restarts := opts.Param(ParamRestarts, 0)
	if restarts < 0 {
		return nil, fmt.Errorf("restarts cannot be negative, got %d", restarts)
	}

	result := &Result{
		BestFitness: math.Inf(-1),
	}
	bestAdj := math.Inf(-1)

	recordBest := func(restart int, state []int, fitness, adj float64) {
		if adj > bestAdj {
			bestAdj = adj
			result.BestFitness = fitness
			result.BestState = append([]int(nil), state...)
			result.BestRestart = restart
		}
	}

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
		recordBest(restart, state, fitness, adj)

		for iters := 0; iters < opts.MaxIters; iters++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			// Evaluate the full neighborhood and take the best move.
			bestNeighbor := []int(nil)
			bestNeighborAdj := math.Inf(-1)
			var bestNeighborFitness float64
			for _, neighbor := range enumerator.Neighbors(state) {
				neighborFitness, err := prob.Evaluate(neighbor)
				if err != nil {
					return nil, err
				}
				result.FitnessEvals++
				if a := adjusted(prob, neighborFitness); a > bestNeighborAdj {
					bestNeighborAdj = a
					bestNeighborFitness = neighborFitness
					bestNeighbor = neighbor
				}
			}
			result.Iterations++

			improved := bestNeighbor != nil && bestNeighborAdj > adj
			if improved {
				state = bestNeighbor
				fitness = bestNeighborFitness
				adj = bestNeighborAdj
				recordBest(restart, state, fitness, adj)
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

			if !improved {
				break // local optimum
			}
		}
	}

	return result, nil
}
