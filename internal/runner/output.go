package runner

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// WriteTables writes the run statistics and curve tables as CSV files under
// dir/experimentName. The curves file is only written when curve rows exist.
func WriteTables(dir, experimentName, algoName string, stats *RunStats, curves *RunCurves) error {
	target := filepath.Join(dir, experimentName)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", target, err)
	}

	if stats != nil {
		path := filepath.Join(target, fmt.Sprintf("%s_run_stats.csv", algoName))
		if err := writeStatsCSV(path, stats); err != nil {
			return err
		}
	}
	if curves != nil && len(curves.Rows) > 0 {
		path := filepath.Join(target, fmt.Sprintf("%s_run_curves.csv", algoName))
		if err := writeCurvesCSV(path, curves); err != nil {
			return err
		}
	}
	return nil
}

func writeStatsCSV(path string, stats *RunStats) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	header := append([]string{"Iteration", "Fitness", "FitnessEvals", "Time"}, stats.ParamNames...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range stats.Rows {
		record := []string{
			strconv.Itoa(row.Iteration),
			formatFloat(row.Fitness),
			strconv.Itoa(row.FitnessEvals),
			formatFloat(row.Time),
		}
		for _, name := range stats.ParamNames {
			record = append(record, strconv.Itoa(row.Params[name]))
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

func writeCurvesCSV(path string, curves *RunCurves) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	header := append([]string{"Iteration", "Fitness", "FitnessEvals"}, curves.ParamNames...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range curves.Rows {
		record := []string{
			strconv.Itoa(row.Iteration),
			formatFloat(row.Fitness),
			strconv.Itoa(row.FitnessEvals),
		}
		for _, name := range curves.ParamNames {
			record = append(record, strconv.Itoa(row.Params[name]))
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
