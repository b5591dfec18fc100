package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseExperimentYAML parses an Experiment from YAML bytes and validates it.
// This is used when the experiment is provided as a payload (not via filesystem).
func ParseExperimentYAML(data []byte) (*Experiment, error) {
	var exp Experiment
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("failed to parse experiment yaml: %w", err)
	}

	if err := validateExperiment(&exp); err != nil {
		return nil, fmt.Errorf("invalid experiment: %w", err)
	}

	return &exp, nil
}

// ParseExperimentYAMLString parses an Experiment from a YAML string and validates it.
func ParseExperimentYAMLString(yamlText string) (*Experiment, error) {
	return ParseExperimentYAML([]byte(yamlText))
}

// MarshalExperimentYAML serializes an Experiment back to YAML.
func MarshalExperimentYAML(exp *Experiment) ([]byte, error) {
	data, err := yaml.Marshal(exp)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal experiment: %w", err)
	}
	return data, nil
}
