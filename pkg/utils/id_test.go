package utils

import (
	"strings"
	"testing"
)

func TestGenerateRunID(t *testing.T) {
	id1 := GenerateRunID()
	id2 := GenerateRunID()

	if !strings.HasPrefix(id1, "run-") {
		t.Fatalf("expected run- prefix, got %s", id1)
	}
	if id1 == id2 {
		t.Fatalf("expected distinct run IDs, got %s twice", id1)
	}

	// run-YYYYMMDD-HHMMSS-xxxxxxxx
	parts := strings.Split(id1, "-")
	if len(parts) != 4 {
		t.Fatalf("expected 4 dash-separated parts, got %d (%s)", len(parts), id1)
	}
	if len(parts[3]) != 8 {
		t.Fatalf("expected 8-character suffix, got %q", parts[3])
	}
}

func TestGenerateExperimentID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateExperimentID()
		if id == "" {
			t.Fatalf("expected non-empty experiment ID")
		}
		if seen[id] {
			t.Fatalf("duplicate experiment ID: %s", id)
		}
		seen[id] = true
	}
}
