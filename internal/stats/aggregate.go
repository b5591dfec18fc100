package stats

import (
	"sort"

	"github.com/tdq45gj/mlrose-gj/pkg/utils"
)

// Aggregation holds summary statistics for a series of values
type Aggregation struct {
	Count  int64
	Sum    float64
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	P50    float64
	P95    float64
	P99    float64
}

// Aggregate calculates summary statistics for a series of values.
// Returns nil for an empty series.
func Aggregate(values []float64) *Aggregation {
	if len(values) == 0 {
		return nil
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return &Aggregation{
		Count:  int64(len(sorted)),
		Sum:    utils.Sum(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   utils.Mean(sorted),
		StdDev: utils.StdDev(sorted),
		P50:    utils.Percentile(sorted, 50),
		P95:    utils.Percentile(sorted, 95),
		P99:    utils.Percentile(sorted, 99),
	}
}

// GroupedValue is one (group key, value) observation.
type GroupedValue struct {
	Key   int
	Value float64
}

// GroupAggregate aggregates observations per group key. Keys in the
// returned map match the distinct keys of the input.
func GroupAggregate(observations []GroupedValue) map[int]*Aggregation {
	grouped := make(map[int][]float64)
	for _, obs := range observations {
		grouped[obs.Key] = append(grouped[obs.Key], obs.Value)
	}

	result := make(map[int]*Aggregation, len(grouped))
	for key, values := range grouped {
		result[key] = Aggregate(values)
	}
	return result
}

// BestPerGroup returns the best value per group key. When maximize is
// false the best value is the smallest.
func BestPerGroup(observations []GroupedValue, maximize bool) map[int]float64 {
	best := make(map[int]float64)
	for _, obs := range observations {
		current, seen := best[obs.Key]
		if !seen {
			best[obs.Key] = obs.Value
			continue
		}
		if maximize && obs.Value > current {
			best[obs.Key] = obs.Value
		}
		if !maximize && obs.Value < current {
			best[obs.Key] = obs.Value
		}
	}
	return best
}
