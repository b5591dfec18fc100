package problem

import (
	"fmt"

	"github.com/tdq45gj/mlrose-gj/pkg/config"
	"github.com/tdq45gj/mlrose-gj/pkg/utils"
)

// Problem is the optimization problem abstraction consumed by the search
// algorithms. Implementations must be safe for concurrent read access;
// per-run mutable state (random draws, evaluation counts) lives with the
// caller, not the problem.
type Problem interface {
	// Name returns the name of the underlying fitness function.
	Name() string

	// Length returns the number of positions in a state vector.
	Length() int

	// Maximize reports whether higher fitness is better.
	Maximize() bool

	// RandomState draws a fresh random state from the problem's space.
	RandomState(rng *utils.RandSource) []int

	// RandomNeighbor returns a copy of state with one position changed.
	RandomNeighbor(state []int, rng *utils.RandSource) []int

	// Evaluate computes the raw fitness of a state.
	Evaluate(state []int) (float64, error)
}

// DiscreteProblem is a discrete-state optimization problem: a fitness
// function over vectors of a fixed length whose positions each take one of
// maxVal values.
type DiscreteProblem struct {
	fitness  Fitness
	length   int
	maxVal   int
	maximize bool
}

// NewDiscreteProblem creates a discrete problem over the given fitness function.
func NewDiscreteProblem(fitness Fitness, length, maxVal int, maximize bool) (*DiscreteProblem, error) {
	if fitness == nil {
		return nil, fmt.Errorf("fitness function is required")
	}
	if length <= 0 {
		return nil, fmt.Errorf("length must be positive, got %d", length)
	}
	if maxVal < 2 {
		maxVal = 2
	}
	return &DiscreteProblem{
		fitness:  fitness,
		length:   length,
		maxVal:   maxVal,
		maximize: maximize,
	}, nil
}

func (p *DiscreteProblem) Name() string {
	return p.fitness.Name()
}

func (p *DiscreteProblem) Length() int {
	return p.length
}

func (p *DiscreteProblem) Maximize() bool {
	return p.maximize
}

// MaxVal returns the number of values each position can take.
func (p *DiscreteProblem) MaxVal() int {
	return p.maxVal
}

// RandomState draws a uniform random state vector.
func (p *DiscreteProblem) RandomState(rng *utils.RandSource) []int {
	return rng.IntVector(p.length, p.maxVal)
}

// RandomNeighbor returns a copy of state with a single random position set
// to a different random value.
func (p *DiscreteProblem) RandomNeighbor(state []int, rng *utils.RandSource) []int {
	neighbor := make([]int, len(state))
	copy(neighbor, state)

	pos := rng.Intn(len(neighbor))
	// Offset by 1..maxVal-1 so the value always changes.
	neighbor[pos] = (neighbor[pos] + 1 + rng.Intn(p.maxVal-1)) % p.maxVal
	return neighbor
}

// Evaluate computes the raw fitness of a state.
func (p *DiscreteProblem) Evaluate(state []int) (float64, error) {
	if len(state) != p.length {
		return 0, &InvalidStateError{Reason: fmt.Sprintf("state length %d does not match problem length %d", len(state), p.length)}
	}
	return p.fitness.Evaluate(state)
}

// FromSpec builds a problem from an experiment problem specification.
func FromSpec(spec *config.ProblemSpec) (Problem, error) {
	if spec == nil {
		return nil, fmt.Errorf("problem spec is required")
	}

	switch spec.Type {
	case string(FitnessQueens):
		if spec.Maximize != nil || spec.MaxVal != 0 || spec.Threshold != 0 {
			return nil, fmt.Errorf("queens fixes maximize, max_val, and threshold; remove the overrides")
		}
		return NewQueensProblem(spec.Length)
	default:
		fitness, err := NewFitness(spec.Type, spec.Threshold)
		if err != nil {
			return nil, err
		}
		return NewDiscreteProblem(fitness, spec.Length, spec.GetMaxVal(), spec.GetMaximize())
	}
}

// NewQueensProblem creates the n-queens problem: n columns, n rows per
// column, minimizing attacking pairs.
func NewQueensProblem(n int) (*DiscreteProblem, error) {
	return NewDiscreteProblem(&QueensFitness{}, n, n, false)
}
