package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadExperiment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "experiment.yaml")

	yamlText := `
name: file_experiment
seed: 1
iteration_list: [10, 100]
problem:
  type: flip_flop
  length: 12
rhc:
  restart_list: [5]
`
	if err := os.WriteFile(path, []byte(yamlText), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	exp, err := LoadExperiment(path)
	if err != nil {
		t.Fatalf("LoadExperiment failed: %v", err)
	}
	if exp.Name != "file_experiment" {
		t.Fatalf("expected name file_experiment, got %q", exp.Name)
	}
}

func TestLoadExperimentMissingFile(t *testing.T) {
	if _, err := LoadExperiment(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadExperimentInvalidContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("name: bad\niteration_list: []\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := LoadExperiment(path); err == nil {
		t.Fatalf("expected validation error")
	}
}
