package config

// Experiment represents a complete experiment configuration
type Experiment struct {
	Name           string      `yaml:"name"`
	Seed           int64       `yaml:"seed"`
	LogLevel       string      `yaml:"log_level,omitempty"`
	OutputDir      string      `yaml:"output_dir,omitempty"`
	IterationList  []int       `yaml:"iteration_list"`
	MaxAttempts    int         `yaml:"max_attempts,omitempty"` // defaults to 500
	GenerateCurves *bool       `yaml:"generate_curves,omitempty"`
	MaxParallel    int         `yaml:"max_parallel,omitempty"` // 0 means sequential
	Problem        ProblemSpec `yaml:"problem"`
	RHC            *RHCSpec    `yaml:"rhc,omitempty"`
}

// ProblemSpec describes the optimization problem to build
type ProblemSpec struct {
	Type      string  `yaml:"type"` // one_max, flip_flop, four_peaks, queens
	Length    int     `yaml:"length"`
	MaxVal    int     `yaml:"max_val,omitempty"`    // values per position (defaults to 2)
	Maximize  *bool   `yaml:"maximize,omitempty"`   // defaults to true
	Threshold float64 `yaml:"threshold,omitempty"`  // four_peaks threshold fraction
}

// RHCSpec holds random hill climbing sweep parameters
type RHCSpec struct {
	RestartList []int `yaml:"restart_list"`
}

const (
	// DefaultMaxAttempts is the attempt budget used when none is configured
	DefaultMaxAttempts = 500
	// DefaultMaxVal is the per-position value count used when none is configured
	DefaultMaxVal = 2
)

// GetMaxAttempts returns the configured attempt budget or the default
func (e *Experiment) GetMaxAttempts() int {
	if e.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return e.MaxAttempts
}

// GetGenerateCurves reports whether curve recording is enabled (default true)
func (e *Experiment) GetGenerateCurves() bool {
	if e.GenerateCurves == nil {
		return true
	}
	return *e.GenerateCurves
}

// GetLogLevel returns the configured log level or "info"
func (e *Experiment) GetLogLevel() string {
	if e.LogLevel == "" {
		return "info"
	}
	return e.LogLevel
}

// GetMaxVal returns the configured value count per position or the default
func (p *ProblemSpec) GetMaxVal() int {
	if p.MaxVal <= 0 {
		return DefaultMaxVal
	}
	return p.MaxVal
}

// GetMaximize reports whether fitness is maximized (default true)
func (p *ProblemSpec) GetMaximize() bool {
	if p.Maximize == nil {
		return true
	}
	return *p.Maximize
}
