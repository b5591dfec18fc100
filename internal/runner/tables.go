package runner

// ParamList is a named hyperparameter binding: the parameter name and the
// candidate values the sweep tries for it.
type ParamList struct {
	Name   string
	Values []int
}

// StatRow is one run-statistics snapshot: the state of a grid point's
// search at an iteration checkpoint.
type StatRow struct {
	Iteration    int
	Fitness      float64
	FitnessEvals int
	Time         float64 // seconds since the grid point started
	Params       map[string]int
}

// CurveRow is one per-iteration trace point for a grid point's search.
type CurveRow struct {
	Iteration    int
	Fitness      float64
	FitnessEvals int
	Params       map[string]int
}

// RunStats is the run-statistics table of a sweep: one row per iteration
// checkpoint per grid point.
type RunStats struct {
	ParamNames []string
	Rows       []StatRow
}

// RunCurves is the curve table of a sweep: one row per iteration per grid
// point, present only when curve generation is enabled.
type RunCurves struct {
	ParamNames []string
	Rows       []CurveRow
}

// FitnessByParam extracts (param value, fitness) observations for the named
// parameter from the stats table.
func (s *RunStats) FitnessByParam(name string) []ParamObservation {
	if s == nil {
		return nil
	}
	out := make([]ParamObservation, 0, len(s.Rows))
	for _, row := range s.Rows {
		value, ok := row.Params[name]
		if !ok {
			continue
		}
		out = append(out, ParamObservation{Param: value, Fitness: row.Fitness})
	}
	return out
}

// ParamObservation pairs a hyperparameter value with an observed fitness.
type ParamObservation struct {
	Param   int
	Fitness float64
}
