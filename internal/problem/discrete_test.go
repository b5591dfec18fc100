package problem

import (
	"errors"
	"testing"

	"github.com/tdq45gj/mlrose-gj/pkg/config"
	"github.com/tdq45gj/mlrose-gj/pkg/utils"
)

func TestNewDiscreteProblem(t *testing.T) {
	p, err := NewDiscreteProblem(&OneMaxFitness{}, 10, 2, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Length() != 10 {
		t.Fatalf("expected length 10, got %d", p.Length())
	}
	if !p.Maximize() {
		t.Fatalf("expected maximization problem")
	}
	if p.Name() != "one_max" {
		t.Fatalf("expected name one_max, got %q", p.Name())
	}

	if _, err := NewDiscreteProblem(nil, 10, 2, true); err == nil {
		t.Fatalf("expected error for nil fitness")
	}
	if _, err := NewDiscreteProblem(&OneMaxFitness{}, 0, 2, true); err == nil {
		t.Fatalf("expected error for zero length")
	}

	// maxVal below 2 is bumped to 2
	p2, err := NewDiscreteProblem(&OneMaxFitness{}, 5, 0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p2.MaxVal() != 2 {
		t.Fatalf("expected maxVal 2, got %d", p2.MaxVal())
	}
}

func TestRandomState(t *testing.T) {
	p, _ := NewDiscreteProblem(&OneMaxFitness{}, 50, 4, true)
	rng := utils.NewRandSource(13)

	state := p.RandomState(rng)
	if len(state) != 50 {
		t.Fatalf("expected state length 50, got %d", len(state))
	}
	for i, v := range state {
		if v < 0 || v >= 4 {
			t.Fatalf("position %d out of range: %d", i, v)
		}
	}
}

func TestRandomNeighbor(t *testing.T) {
	p, _ := NewDiscreteProblem(&OneMaxFitness{}, 20, 2, true)
	rng := utils.NewRandSource(13)
	state := p.RandomState(rng)

	for i := 0; i < 100; i++ {
		neighbor := p.RandomNeighbor(state, rng)
		if len(neighbor) != len(state) {
			t.Fatalf("neighbor length changed: %d", len(neighbor))
		}

		changed := 0
		for j := range state {
			if neighbor[j] != state[j] {
				changed++
				if neighbor[j] < 0 || neighbor[j] >= 2 {
					t.Fatalf("neighbor value out of range: %d", neighbor[j])
				}
			}
		}
		if changed != 1 {
			t.Fatalf("expected exactly one changed position, got %d", changed)
		}
	}
}

func TestEvaluateLengthMismatch(t *testing.T) {
	p, _ := NewDiscreteProblem(&OneMaxFitness{}, 10, 2, true)

	_, err := p.Evaluate([]int{1, 0, 1})
	var invalidErr *InvalidStateError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}
}

func TestFromSpec(t *testing.T) {
	tests := []struct {
		name     string
		spec     config.ProblemSpec
		maximize bool
	}{
		{"OneMax", config.ProblemSpec{Type: "one_max", Length: 10}, true},
		{"FourPeaks", config.ProblemSpec{Type: "four_peaks", Length: 30, Threshold: 0.1}, true},
		{"Queens", config.ProblemSpec{Type: "queens", Length: 8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := FromSpec(&tt.spec)
			if err != nil {
				t.Fatalf("FromSpec failed: %v", err)
			}
			if p.Length() != tt.spec.Length {
				t.Fatalf("expected length %d, got %d", tt.spec.Length, p.Length())
			}
			if p.Maximize() != tt.maximize {
				t.Fatalf("expected maximize=%v", tt.maximize)
			}
		})
	}

	if _, err := FromSpec(nil); err == nil {
		t.Fatalf("expected error for nil spec")
	}
	if _, err := FromSpec(&config.ProblemSpec{Type: "unknown", Length: 5}); err == nil {
		t.Fatalf("expected error for unknown type")
	}
}

func TestFromSpecQueensRejectsOverrides(t *testing.T) {
	maximize := true
	specs := []config.ProblemSpec{
		{Type: "queens", Length: 8, Maximize: &maximize},
		{Type: "queens", Length: 8, MaxVal: 4},
		{Type: "queens", Length: 8, Threshold: 0.2},
	}
	for i, spec := range specs {
		if _, err := FromSpec(&spec); err == nil {
			t.Fatalf("spec %d: expected queens to reject the override", i)
		}
	}
}

func TestNewQueensProblem(t *testing.T) {
	p, err := NewQueensProblem(8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.MaxVal() != 8 {
		t.Fatalf("expected 8 rows per column, got %d", p.MaxVal())
	}
	if p.Maximize() {
		t.Fatalf("queens should be a minimization problem")
	}

	rng := utils.NewRandSource(5)
	state := p.RandomState(rng)
	for _, v := range state {
		if v < 0 || v >= 8 {
			t.Fatalf("row out of range: %d", v)
		}
	}
}
