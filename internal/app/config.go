package app

import (
	"errors"
	"fmt"
	"strings"
)

// Output modes for a run.
const (
	OutputPlan  = "plan"
	OutputOrder = "order"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Paths []string // descriptor files or directories

	Output  string // OutputPlan or OutputOrder
	Format  string // json or yaml, for OutputPlan
	OutPath string // empty writes to the App's writer

	LogFormat   string
	LogLevel    string
	WorkerCount int

	MaxModules int
	MaxEdges   int

	MetricsFile string
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("at least one descriptor path is required")
	}
	for i, p := range cfg.Paths {
		if strings.TrimSpace(p) == "" {
			return nil, fmt.Errorf("descriptor path #%d is empty", i+1)
		}
	}

	if cfg.Output == "" {
		cfg.Output = OutputPlan
	}
	if cfg.Output != OutputPlan && cfg.Output != OutputOrder {
		return nil, fmt.Errorf("invalid output %q: must be %q or %q", cfg.Output, OutputPlan, OutputOrder)
	}

	cfg.Format = strings.ToLower(cfg.Format)
	switch cfg.Format {
	case "":
		cfg.Format = "json"
	case "json", "yaml", "yml":
	default:
		return nil, fmt.Errorf("invalid format %q: must be 'json' or 'yaml'", cfg.Format)
	}

	if _, err := parseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	logFormat, err := parseLogFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	cfg.LogFormat = logFormat

	if cfg.MaxModules < 0 || cfg.MaxEdges < 0 {
		return nil, errors.New("graph limits must not be negative")
	}
	if cfg.WorkerCount < 0 {
		return nil, errors.New("worker count must not be negative")
	}

	return &cfg, nil
}
