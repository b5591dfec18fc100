package problem

import (
	"fmt"
	"math"
)

// Fitness evaluates the fitness of a candidate state vector.
type Fitness interface {
	// Evaluate computes the fitness value for a state.
	// Returns the value and an error if the state is not evaluable.
	Evaluate(state []int) (float64, error)

	// Name returns the name of the fitness function.
	Name() string
}

// FitnessType represents the type of a built-in fitness function
type FitnessType string

const (
	// FitnessOneMax counts ones in the state vector
	FitnessOneMax FitnessType = "one_max"
	// FitnessFlipFlop counts consecutive positions with differing values
	FitnessFlipFlop FitnessType = "flip_flop"
	// FitnessFourPeaks rewards long head-of-ones or tail-of-zeros runs
	FitnessFourPeaks FitnessType = "four_peaks"
	// FitnessQueens counts attacking queen pairs (minimization)
	FitnessQueens FitnessType = "queens"
)

// OneMaxFitness counts the number of non-zero positions.
type OneMaxFitness struct{}

func (f *OneMaxFitness) Name() string {
	return string(FitnessOneMax)
}

func (f *OneMaxFitness) Evaluate(state []int) (float64, error) {
	if len(state) == 0 {
		return 0, &InvalidStateError{Reason: "state is empty"}
	}
	total := 0.0
	for _, v := range state {
		total += float64(v)
	}
	return total, nil
}

// FlipFlopFitness counts consecutive pairs with differing values.
type FlipFlopFitness struct{}

func (f *FlipFlopFitness) Name() string {
	return string(FitnessFlipFlop)
}

func (f *FlipFlopFitness) Evaluate(state []int) (float64, error) {
	if len(state) == 0 {
		return 0, &InvalidStateError{Reason: "state is empty"}
	}
	flips := 0.0
	for i := 1; i < len(state); i++ {
		if state[i] != state[i-1] {
			flips++
		}
	}
	return flips, nil
}

// FourPeaksFitness rewards either a long head of ones or a long tail of
// zeros, with a bonus of n when both exceed the threshold.
type FourPeaksFitness struct {
	// Threshold is the fraction of the state length both runs must exceed
	// for the bonus. Defaults to 0.1 when zero.
	Threshold float64
}

func (f *FourPeaksFitness) Name() string {
	return string(FitnessFourPeaks)
}

func (f *FourPeaksFitness) Evaluate(state []int) (float64, error) {
	n := len(state)
	if n == 0 {
		return 0, &InvalidStateError{Reason: "state is empty"}
	}

	threshold := f.Threshold
	if threshold <= 0 {
		threshold = 0.1
	}
	t := math.Ceil(threshold * float64(n))

	head := 0
	for _, v := range state {
		if v != 1 {
			break
		}
		head++
	}

	tail := 0
	for i := n - 1; i >= 0; i-- {
		if state[i] != 0 {
			break
		}
		tail++
	}

	bonus := 0.0
	if float64(head) > t && float64(tail) > t {
		bonus = float64(n)
	}

	return math.Max(float64(head), float64(tail)) + bonus, nil
}

// QueensFitness counts pairs of queens attacking each other.
// State position i holds the row of the queen in column i.
// Lower is better; use it with a minimization problem.
type QueensFitness struct{}

func (f *QueensFitness) Name() string {
	return string(FitnessQueens)
}

func (f *QueensFitness) Evaluate(state []int) (float64, error) {
	n := len(state)
	if n == 0 {
		return 0, &InvalidStateError{Reason: "state is empty"}
	}

	attacks := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if state[i] == state[j] {
				attacks++ // same row
				continue
			}
			if abs(state[i]-state[j]) == j-i {
				attacks++ // same diagonal
			}
		}
	}
	return attacks, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// NewFitness creates a built-in fitness function from a type string
func NewFitness(fitnessType string, threshold float64) (Fitness, error) {
	switch FitnessType(fitnessType) {
	case FitnessOneMax:
		return &OneMaxFitness{}, nil
	case FitnessFlipFlop:
		return &FlipFlopFitness{}, nil
	case FitnessFourPeaks:
		return &FourPeaksFitness{Threshold: threshold}, nil
	case FitnessQueens:
		return &QueensFitness{}, nil
	default:
		return nil, &UnknownFitnessError{FitnessType: fitnessType}
	}
}

// UnknownFitnessError indicates an unknown fitness function type
type UnknownFitnessError struct {
	FitnessType string
}

func (e *UnknownFitnessError) Error() string {
	return "unknown fitness type: " + e.FitnessType
}

// InvalidStateError indicates a state that cannot be evaluated
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s", e.Reason)
}
