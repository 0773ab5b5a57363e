// Package config loads benchmark run settings.
//
// Priority: environment variables > config file > defaults. Files may be
// YAML or JSON. The defaults reproduce the classic evaluation: four
// datasets, sizes 100 to 10000, five trials, every metric and axis.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dataset kinds.
const (
	KindUniform  = "uniform"
	KindDiscrete = "discrete"
	KindCSV      = "csv"
	KindParquet  = "parquet"
)

// Axis names.
const (
	AxisSize       = "size"
	AxisSortedness = "sortedness"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full run configuration.
type Config struct {
	// Trials is the repetitions averaged per algorithm per point.
	Trials int `json:"trials" yaml:"trials"`

	// Sizes are the input lengths measured, in x-axis order.
	Sizes []int `json:"sizes" yaml:"sizes"`

	// Seed seeds the synthetic generators. Zero seeds from the clock.
	Seed int64 `json:"seed" yaml:"seed"`

	// Datasets are the data sources, in chart numbering order.
	Datasets []DatasetConfig `json:"datasets" yaml:"datasets"`

	// Scenarios filters the scenario matrix.
	Scenarios ScenarioConfig `json:"scenarios" yaml:"scenarios"`

	// Memory contains memory metric settings.
	Memory MemoryConfig `json:"memory" yaml:"memory"`

	// Output contains report settings.
	Output OutputConfig `json:"output" yaml:"output"`

	// S3 tunes downloads of s3:// datasets.
	S3 S3Config `json:"s3" yaml:"s3"`

	// MetricsFile, if set, receives the Prometheus text exposition after
	// the run.
	MetricsFile string `json:"metrics_file" yaml:"metrics_file"`

	// Debug enables debug logging.
	Debug bool `json:"debug" yaml:"debug"`
}

// DatasetConfig describes one data source.
type DatasetConfig struct {
	Name  string `json:"name" yaml:"name"`
	Kind  string `json:"kind" yaml:"kind"`
	Title string `json:"title" yaml:"title"`

	// Path, Column, ColumnName and Header apply to csv and parquet.
	Path       string `json:"path,omitempty" yaml:"path,omitempty"`
	Column     int    `json:"column,omitempty" yaml:"column,omitempty"`
	ColumnName string `json:"column_name,omitempty" yaml:"column_name,omitempty"`
	Header     bool   `json:"header,omitempty" yaml:"header,omitempty"`

	// Values and Weights override the default discrete distribution.
	Values  []int     `json:"values,omitempty" yaml:"values,omitempty"`
	Weights []float64 `json:"weights,omitempty" yaml:"weights,omitempty"`
}

// ScenarioConfig selects which scenarios run. Empty lists mean all.
type ScenarioConfig struct {
	Metrics  []string `json:"metrics" yaml:"metrics"`
	Axes     []string `json:"axes" yaml:"axes"`
	Datasets []string `json:"datasets" yaml:"datasets"`
}

// MemoryConfig contains memory metric settings.
type MemoryConfig struct {
	// GCBeforeTrial forces a collection before every memory trial.
	GCBeforeTrial bool `json:"gc_before_trial" yaml:"gc_before_trial"`
}

// OutputConfig contains report settings.
type OutputConfig struct {
	Dir     string   `json:"dir" yaml:"dir"`
	Formats []string `json:"formats" yaml:"formats"`
}

// S3Config tunes the S3 download manager.
type S3Config struct {
	Concurrency int   `json:"concurrency" yaml:"concurrency"`
	PartSize    int64 `json:"part_size" yaml:"part_size"`
}

// Default returns the classic evaluation setup.
func Default() Config {
	return Config{
		Trials: 5,
		Sizes:  []int{100, 1000, 5000, 10000},
		Datasets: []DatasetConfig{
			{
				Name:  "uniform",
				Kind:  KindUniform,
				Title: "Sorting Evaluation (Uniform Distribution)",
			},
			{
				Name:   "credit_card",
				Kind:   KindCSV,
				Title:  "Sorting Evaluation (Real-time Credit Card Data)",
				Path:   "data/CreditCardData.csv",
				Column: 9,
				Header: true,
			},
			{
				Name:  "discrete",
				Kind:  KindDiscrete,
				Title: "Sorting Evaluation (Discrete Probability Distribution)",
			},
			{
				Name:   "sales_records",
				Kind:   KindCSV,
				Title:  "Real-time Data Sorting",
				Path:   "data/SalesRecordsData.csv",
				Column: 8,
				Header: true,
			},
		},
		Scenarios: ScenarioConfig{
			Metrics: []string{"runtime", "memory"},
			Axes:    []string{AxisSize, AxisSortedness},
		},
		Memory: MemoryConfig{GCBeforeTrial: true},
		Output: OutputConfig{
			Dir:     "results",
			Formats: []string{"table"},
		},
	}
}

// Load builds a Config from defaults, the file at path (if non-empty) and
// the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}
	return nil
}

// loadEnv applies SORTEVAL_* overrides. Unlike file values, a malformed
// override is an error rather than silently ignored.
func loadEnv(cfg *Config) error {
	if v := os.Getenv("SORTEVAL_TRIALS"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SORTEVAL_TRIALS: %w", err)
		}
		cfg.Trials = i
	}
	if v := os.Getenv("SORTEVAL_SIZES"); v != "" {
		sizes, err := parseInts(v)
		if err != nil {
			return fmt.Errorf("SORTEVAL_SIZES: %w", err)
		}
		cfg.Sizes = sizes
	}
	if v := os.Getenv("SORTEVAL_SEED"); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SORTEVAL_SEED: %w", err)
		}
		cfg.Seed = i
	}
	if v := os.Getenv("SORTEVAL_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("SORTEVAL_FORMATS"); v != "" {
		cfg.Output.Formats = splitList(v)
	}
	if v := os.Getenv("SORTEVAL_METRICS_FILE"); v != "" {
		cfg.MetricsFile = v
	}
	if v := os.Getenv("SORTEVAL_GC_BEFORE_TRIAL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SORTEVAL_GC_BEFORE_TRIAL: %w", err)
		}
		cfg.Memory.GCBeforeTrial = b
	}
	if v := os.Getenv("SORTEVAL_LOG_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SORTEVAL_LOG_DEBUG: %w", err)
		}
		cfg.Debug = b
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseInts(s string) ([]int, error) {
	parts := splitList(s)
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// Dataset returns the dataset with the given name.
func (c Config) Dataset(name string) (DatasetConfig, bool) {
	for _, d := range c.Datasets {
		if d.Name == name {
			return d, true
		}
	}
	return DatasetConfig{}, false
}

// MaxSize returns the largest configured size.
func (c Config) MaxSize() int {
	m := 0
	for _, s := range c.Sizes {
		m = max(m, s)
	}
	return m
}
