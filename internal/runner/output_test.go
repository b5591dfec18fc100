package runner

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return records
}

func TestWriteTables(t *testing.T) {
	dir := t.TempDir()
	stats := &RunStats{
		ParamNames: []string{"Restarts"},
		Rows: []StatRow{
			{Iteration: 10, Fitness: 4.5, FitnessEvals: 20, Time: 0.001, Params: map[string]int{"Restarts": 0}},
			{Iteration: 50, Fitness: 7, FitnessEvals: 90, Time: 0.004, Params: map[string]int{"Restarts": 0}},
		},
	}
	curves := &RunCurves{
		ParamNames: []string{"Restarts"},
		Rows: []CurveRow{
			{Iteration: 1, Fitness: 2, FitnessEvals: 2, Params: map[string]int{"Restarts": 0}},
		},
	}

	if err := WriteTables(dir, "my-exp", AlgorithmRHC, stats, curves); err != nil {
		t.Fatalf("WriteTables failed: %v", err)
	}

	statsRecords := readCSV(t, filepath.Join(dir, "my-exp", "rhc_run_stats.csv"))
	if len(statsRecords) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d records", len(statsRecords))
	}
	header := statsRecords[0]
	want := []string{"Iteration", "Fitness", "FitnessEvals", "Time", "Restarts"}
	for i, col := range want {
		if header[i] != col {
			t.Errorf("header column %d: expected %q, got %q", i, col, header[i])
		}
	}
	if statsRecords[1][0] != "10" || statsRecords[1][1] != "4.5" || statsRecords[1][4] != "0" {
		t.Errorf("unexpected first stats row: %v", statsRecords[1])
	}

	curveRecords := readCSV(t, filepath.Join(dir, "my-exp", "rhc_run_curves.csv"))
	if len(curveRecords) != 2 {
		t.Fatalf("expected header plus 1 row, got %d records", len(curveRecords))
	}
}

func TestWriteTablesSkipsEmptyCurves(t *testing.T) {
	dir := t.TempDir()
	stats := &RunStats{ParamNames: []string{"Restarts"}}

	if err := WriteTables(dir, "no-curves", AlgorithmRHC, stats, &RunCurves{}); err != nil {
		t.Fatalf("WriteTables failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "no-curves", "rhc_run_stats.csv")); err != nil {
		t.Errorf("expected stats file to exist: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "no-curves", "rhc_run_curves.csv")); !os.IsNotExist(err) {
		t.Error("expected no curves file for an empty curves table")
	}
}
