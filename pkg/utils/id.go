package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateRunID generates a run ID with a timestamp prefix and a short
// random suffix, e.g. "run-20260829-153012-4f2a1c9e".
func GenerateRunID() string {
	timestamp := time.Now().Format("20060102-150405")
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("run-%s-%s", timestamp, suffix)
}

// GenerateExperimentID generates a full unique identifier for an experiment.
func GenerateExperimentID() string {
	return uuid.NewString()
}
