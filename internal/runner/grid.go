package runner

import "fmt"

// GridPoint is one combination of hyperparameter values in a sweep.
type GridPoint struct {
	Index  int
	Params map[string]int
}

// buildGrid computes the cartesian product of the given parameter lists,
// varying the last list fastest. No lists yields a single empty point; any
// list with no values yields an empty grid.
func buildGrid(params []ParamList) ([]GridPoint, error) {
	names := make(map[string]bool, len(params))
	for _, list := range params {
		if list.Name == "" {
			return nil, fmt.Errorf("parameter list name cannot be empty")
		}
		if names[list.Name] {
			return nil, fmt.Errorf("duplicate parameter list: %s", list.Name)
		}
		names[list.Name] = true
	}

	for _, list := range params {
		if len(list.Values) == 0 {
			return nil, nil
		}
	}

	grid := []GridPoint{{Params: map[string]int{}}}
	for _, list := range params {
		next := make([]GridPoint, 0, len(grid)*len(list.Values))
		for _, point := range grid {
			for _, value := range list.Values {
				combined := make(map[string]int, len(point.Params)+1)
				for k, v := range point.Params {
					combined[k] = v
				}
				combined[list.Name] = value
				next = append(next, GridPoint{Params: combined})
			}
		}
		grid = next
	}

	for i := range grid {
		grid[i].Index = i
	}
	return grid, nil
}

// paramNames returns the parameter names in declaration order.
func paramNames(params []ParamList) []string {
	names := make([]string, len(params))
	for i, list := range params {
		names[i] = list.Name
	}
	return names
}
