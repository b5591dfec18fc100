package config

import (
	"fmt"
	"os"
)

// LoadExperiment loads and parses an experiment file
func LoadExperiment(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read experiment file %s: %w", path, err)
	}
	exp, err := ParseExperimentYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse experiment file %s: %w", path, err)
	}
	return exp, nil
}

// validateExperiment performs validation on the experiment configuration
func validateExperiment(exp *Experiment) error {
	if exp.Name == "" {
		return fmt.Errorf("experiment name cannot be empty")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[exp.GetLogLevel()] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", exp.LogLevel)
	}

	// Validate iteration checkpoints
	if len(exp.IterationList) == 0 {
		return fmt.Errorf("iteration_list must have at least one checkpoint")
	}
	prev := 0
	for i, iter := range exp.IterationList {
		if iter <= 0 {
			return fmt.Errorf("iteration_list[%d]: checkpoints must be positive, got %d", i, iter)
		}
		if iter <= prev {
			return fmt.Errorf("iteration_list[%d]: checkpoints must be strictly ascending, got %d after %d", i, iter, prev)
		}
		prev = iter
	}

	if exp.MaxAttempts < 0 {
		return fmt.Errorf("max_attempts cannot be negative, got %d", exp.MaxAttempts)
	}
	if exp.MaxParallel < 0 {
		return fmt.Errorf("max_parallel cannot be negative, got %d", exp.MaxParallel)
	}

	if err := validateProblem(&exp.Problem); err != nil {
		return fmt.Errorf("problem validation failed: %w", err)
	}

	if exp.RHC != nil {
		if err := validateRHC(exp.RHC); err != nil {
			return fmt.Errorf("rhc validation failed: %w", err)
		}
	}

	return nil
}

// validateProblem validates the problem specification
func validateProblem(p *ProblemSpec) error {
	validTypes := map[string]bool{
		"one_max":    true,
		"flip_flop":  true,
		"four_peaks": true,
		"queens":     true,
	}
	if !validTypes[p.Type] {
		return fmt.Errorf("invalid problem type: %s (must be one_max, flip_flop, four_peaks, or queens)", p.Type)
	}

	if p.Length <= 0 {
		return fmt.Errorf("length must be positive, got %d", p.Length)
	}
	if p.MaxVal < 0 {
		return fmt.Errorf("max_val cannot be negative, got %d", p.MaxVal)
	}
	if p.Threshold < 0 || p.Threshold >= 1 {
		return fmt.Errorf("threshold must be in [0, 1), got %f", p.Threshold)
	}

	// Queens fixes its own direction and value range (minimize attacking
	// pairs over n board rows), so overrides are rejected rather than
	// silently ignored.
	if p.Type == "queens" {
		if p.Maximize != nil {
			return fmt.Errorf("maximize cannot be set for the queens problem (always minimizes)")
		}
		if p.MaxVal != 0 {
			return fmt.Errorf("max_val cannot be set for the queens problem (fixed to the board size)")
		}
		if p.Threshold != 0 {
			return fmt.Errorf("threshold does not apply to the queens problem")
		}
	}

	return nil
}

// validateRHC validates the restart sweep parameters
func validateRHC(r *RHCSpec) error {
	if len(r.RestartList) == 0 {
		return fmt.Errorf("restart_list must have at least one value")
	}
	for i, restarts := range r.RestartList {
		if restarts < 0 {
			return fmt.Errorf("restart_list[%d]: restarts cannot be negative, got %d", i, restarts)
		}
	}
	return nil
}
