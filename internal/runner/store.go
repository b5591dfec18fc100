package runner

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/tdq45gj/mlrose-gj/pkg/utils"
)

// RunStatus represents the lifecycle state of a grid point's run
type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// RunRecord tracks one grid point's run through the sweep.
type RunRecord struct {
	ID           string
	Experiment   string
	Algorithm    string
	GridIndex    int
	Params       map[string]int
	Status       RunStatus
	Error        string
	BestFitness  float64
	BestState    []int
	Iterations   int
	FitnessEvals int

	CreatedAtUnixMs int64
	StartedAtUnixMs int64
	EndedAtUnixMs   int64
}

// Store keeps run records for a sweep, one per grid point.
type Store struct {
	mu   sync.RWMutex
	runs map[string]*RunRecord
}

// NewStore creates an empty run store.
func NewStore() *Store {
	return &Store{
		runs: make(map[string]*RunRecord),
	}
}

func nowUnixMs() int64 {
	return time.Now().UTC().UnixMilli()
}

// Create registers a new pending run for a grid point.
func (s *Store) Create(experiment, algorithm string, gridIndex int, params map[string]int) (*RunRecord, error) {
	if experiment == "" {
		return nil, fmt.Errorf("experiment name cannot be empty")
	}
	if algorithm == "" {
		return nil, fmt.Errorf("algorithm name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	runID := utils.GenerateRunID()
	if _, exists := s.runs[runID]; exists {
		return nil, fmt.Errorf("run already exists: %s", runID)
	}

	paramsCopy := make(map[string]int, len(params))
	for k, v := range params {
		paramsCopy[k] = v
	}

	rec := &RunRecord{
		ID:              runID,
		Experiment:      experiment,
		Algorithm:       algorithm,
		GridIndex:       gridIndex,
		Params:          paramsCopy,
		Status:          RunStatusPending,
		CreatedAtUnixMs: nowUnixMs(),
	}
	s.runs[runID] = rec
	return rec, nil
}

// Get returns the record for a run ID.
func (s *Store) Get(runID string) (*RunRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.runs[runID]
	return rec, ok
}

// List returns all records ordered by grid index.
func (s *Store) List() []*RunRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*RunRecord, 0, len(s.runs))
	for _, rec := range s.runs {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GridIndex < out[j].GridIndex
	})
	return out
}

// SetStatus transitions a run and stamps the transition time.
func (s *Store) SetStatus(runID string, status RunStatus, errMsg string) (*RunRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.runs[runID]
	if !ok {
		return nil, fmt.Errorf("run not found: %s", runID)
	}

	rec.Status = status
	if errMsg != "" {
		rec.Error = errMsg
	}

	switch status {
	case RunStatusRunning:
		if rec.StartedAtUnixMs == 0 {
			rec.StartedAtUnixMs = nowUnixMs()
		}
	case RunStatusCompleted, RunStatusFailed:
		rec.EndedAtUnixMs = nowUnixMs()
	}

	return rec, nil
}

// SetResult records the outcome of a completed run.
func (s *Store) SetResult(runID string, bestFitness float64, bestState []int, iterations, fitnessEvals int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.runs[runID]
	if !ok {
		return fmt.Errorf("run not found: %s", runID)
	}
	rec.BestFitness = bestFitness
	rec.BestState = append([]int(nil), bestState...)
	rec.Iterations = iterations
	rec.FitnessEvals = fitnessEvals
	return nil
}

// CountByStatus returns how many runs are in the given state.
func (s *Store) CountByStatus(status RunStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, rec := range s.runs {
		if rec.Status == status {
			count++
		}
	}
	return count
}
