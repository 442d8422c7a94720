package model

import (
	"fmt"
	"os"

	"github.com/uyouii/percolation/common"
	"gopkg.in/yaml.v3"
)

// Site is a 1-indexed grid coordinate.
type Site struct {
	Row int
	Col int
}

func (s Site) String() string {
	return fmt.Sprintf("(%d, %d)", s.Row, s.Col)
}

type ReportFormat string

const (
	TextReport ReportFormat = "text"
	YamlReport ReportFormat = "yaml"
)

// Summary is the aggregate of one estimator run.
type Summary struct {
	GridSize     int     `json:"grid_size" yaml:"grid_size"`
	Trials       int     `json:"trials" yaml:"trials"`
	Mean         float64 `json:"mean" yaml:"mean"`
	StdDev       float64 `json:"stddev" yaml:"stddev"`
	ConfidenceLo float64 `json:"confidence_lo" yaml:"confidence_lo"`
	ConfidenceHi float64 `json:"confidence_hi" yaml:"confidence_hi"`
	Min          float64 `json:"min" yaml:"min"`
	Max          float64 `json:"max" yaml:"max"`
}

func (s *Summary) DebugString() string {
	return fmt.Sprintf("n: %v, trials: %v, mean: %v, stddev: %v", s.GridSize, s.Trials, s.Mean, s.StdDev)
}

// Config holds the run parameters of the command line tool.
// Zero values mean "use the default".
type Config struct {
	GridSize     int          `yaml:"grid_size"`
	Trials       int          `yaml:"trials"`
	Seed         uint64       `yaml:"seed"`
	Workers      int          `yaml:"workers"`
	BackwashFree bool         `yaml:"backwash_free"`
	Format       ReportFormat `yaml:"format"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("%w: grid size must be > 0, got %d", common.ErrorInvalidArgument, c.GridSize)
	}
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trials must be > 0, got %d", common.ErrorInvalidArgument, c.Trials)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", common.ErrorInvalidArgument, c.Workers)
	}
	switch c.Format {
	case "", TextReport, YamlReport:
	default:
		return fmt.Errorf("%w: unknown report format %q", common.ErrorInvalidValue, c.Format)
	}
	return nil
}
