package runner

import (
	"testing"
)

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore()

	rec, err := store.Create("test-exp", AlgorithmRHC, 0, map[string]int{"Restarts": 5})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if rec.ID == "" {
		t.Error("expected a generated run ID")
	}
	if rec.Status != RunStatusPending {
		t.Errorf("expected status %s, got %s", RunStatusPending, rec.Status)
	}
	if rec.CreatedAtUnixMs == 0 {
		t.Error("expected creation timestamp to be set")
	}

	got, ok := store.Get(rec.ID)
	if !ok {
		t.Fatalf("expected to find run %s", rec.ID)
	}
	if got.Experiment != "test-exp" || got.Algorithm != AlgorithmRHC {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.Params["Restarts"] != 5 {
		t.Errorf("expected Restarts=5, got %v", got.Params)
	}
}

func TestStoreCreateValidation(t *testing.T) {
	store := NewStore()
	if _, err := store.Create("", AlgorithmRHC, 0, nil); err == nil {
		t.Error("expected error for empty experiment name")
	}
	if _, err := store.Create("exp", "", 0, nil); err == nil {
		t.Error("expected error for empty algorithm name")
	}
}

func TestStoreStatusLifecycle(t *testing.T) {
	store := NewStore()
	rec, err := store.Create("exp", AlgorithmRHC, 0, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := store.SetStatus(rec.ID, RunStatusRunning, "")
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if updated.StartedAtUnixMs == 0 {
		t.Error("expected start timestamp when entering running state")
	}

	updated, err = store.SetStatus(rec.ID, RunStatusCompleted, "")
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if updated.EndedAtUnixMs == 0 {
		t.Error("expected end timestamp when completing")
	}

	if _, err := store.SetStatus("missing", RunStatusFailed, "boom"); err == nil {
		t.Error("expected error for unknown run ID")
	}
}

func TestStoreSetResult(t *testing.T) {
	store := NewStore()
	rec, err := store.Create("exp", AlgorithmRHC, 0, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.SetResult(rec.ID, 8.0, []int{1, 1, 1}, 42, 120); err != nil {
		t.Fatalf("SetResult failed: %v", err)
	}
	got, _ := store.Get(rec.ID)
	if got.BestFitness != 8.0 || got.Iterations != 42 || got.FitnessEvals != 120 {
		t.Errorf("unexpected result fields: %+v", got)
	}
	if len(got.BestState) != 3 {
		t.Errorf("expected best state of length 3, got %v", got.BestState)
	}

	if err := store.SetResult("missing", 0, nil, 0, 0); err == nil {
		t.Error("expected error for unknown run ID")
	}
}

func TestStoreListOrderedByGridIndex(t *testing.T) {
	store := NewStore()
	for _, idx := range []int{2, 0, 1} {
		if _, err := store.Create("exp", AlgorithmRHC, idx, nil); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	records := store.List()
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, rec := range records {
		if rec.GridIndex != i {
			t.Errorf("position %d: expected grid index %d, got %d", i, i, rec.GridIndex)
		}
	}
}

func TestStoreCountByStatus(t *testing.T) {
	store := NewStore()
	a, _ := store.Create("exp", AlgorithmRHC, 0, nil)
	b, _ := store.Create("exp", AlgorithmRHC, 1, nil)
	store.SetStatus(a.ID, RunStatusCompleted, "")
	store.SetStatus(b.ID, RunStatusFailed, "boom")

	if n := store.CountByStatus(RunStatusCompleted); n != 1 {
		t.Errorf("expected 1 completed run, got %d", n)
	}
	if n := store.CountByStatus(RunStatusFailed); n != 1 {
		t.Errorf("expected 1 failed run, got %d", n)
	}
	if n := store.CountByStatus(RunStatusPending); n != 0 {
		t.Errorf("expected 0 pending runs, got %d", n)
	}
}
