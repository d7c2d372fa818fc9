package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-opcount/opcount/contrib/bench"
	"github.com/ajroetker/go-opcount/opcount/contrib/scenario"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all sortbench configuration.
type Config struct {
	// Sweep definition
	Experiment ExperimentConfig `yaml:"experiment"`

	// Report rendering
	Output OutputConfig `yaml:"output"`

	// Result history
	Store StoreConfig `yaml:"store"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ExperimentConfig configures the repetition sweep.
type ExperimentConfig struct {
	Sizes       []int    `yaml:"sizes"`
	Scenarios   []string `yaml:"scenarios"` // random, sorted, reversed
	Repetitions int      `yaml:"repetitions"`
	Workers     int      `yaml:"workers"`  // concurrent trials per cell
	Parallel    int      `yaml:"parallel"` // concurrent cells
	Seed        *uint64  `yaml:"seed,omitempty"`
	Verify      bool     `yaml:"verify"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	Format string `yaml:"format"` // table, json, csv, yaml
}

// StoreConfig configures the SQLite result history.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Formats lists the supported report formats.
var Formats = []string{"table", "json", "csv", "yaml"}

// DefaultConfig returns the default configuration: the original experiment of
// three sizes, all scenarios, five repetitions.
func DefaultConfig() *Config {
	return &Config{
		Experiment: ExperimentConfig{
			Sizes:       []int{1000, 5000, 10000},
			Scenarios:   []string{"random", "sorted", "reversed"},
			Repetitions: 5,
			Workers:     1,
			Parallel:    1,
		},
		Output: OutputConfig{
			Format: "table",
		},
		Store: StoreConfig{
			Enabled: false,
			Path:    filepath.Join("data", "sortbench.db"),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from a YAML file over the defaults, then applies
// environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies SORTBENCH_* environment variables. Malformed
// numeric values are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SORTBENCH_REPETITIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Experiment.Repetitions = n
		}
	}
	if v := os.Getenv("SORTBENCH_SEED"); v != "" {
		if s, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Experiment.Seed = &s
		}
	}
	if v := os.Getenv("SORTBENCH_DB"); v != "" {
		c.Store.Path = v
		c.Store.Enabled = true
	}
	if v := os.Getenv("SORTBENCH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if len(c.Experiment.Sizes) == 0 {
		return fmt.Errorf("%w: experiment.sizes is empty", ErrInvalidConfig)
	}
	for _, n := range c.Experiment.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: experiment.sizes contains negative size %d", ErrInvalidConfig, n)
		}
	}
	for _, s := range c.Experiment.Scenarios {
		if _, err := scenario.Parse(s); err != nil {
			return fmt.Errorf("%w: experiment.scenarios: %w", ErrInvalidConfig, err)
		}
	}
	if c.Experiment.Repetitions < 1 {
		return fmt.Errorf("%w: experiment.repetitions must be >= 1", ErrInvalidConfig)
	}
	if !isFormat(c.Output.Format) {
		return fmt.Errorf("%w: output.format %q not one of %s", ErrInvalidConfig, c.Output.Format, strings.Join(Formats, ", "))
	}
	if c.Store.Enabled && c.Store.Path == "" {
		return fmt.Errorf("%w: store.path is required when the store is enabled", ErrInvalidConfig)
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}
	return nil
}

func isFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// ZapLevel parses Level.
func (c LoggingConfig) ZapLevel() (zap.AtomicLevel, error) {
	if c.Level == "" {
		return zap.NewAtomicLevelAt(zap.InfoLevel), nil
	}
	return zap.ParseAtomicLevel(c.Level)
}

// BenchOptions converts the experiment section to bench.Options. The caller
// fills in Meter and Logger.
func (c *Config) BenchOptions() (bench.Options, error) {
	scenarios := make([]scenario.Scenario, 0, len(c.Experiment.Scenarios))
	for _, name := range c.Experiment.Scenarios {
		s, err := scenario.Parse(name)
		if err != nil {
			return bench.Options{}, err
		}
		scenarios = append(scenarios, s)
	}
	return bench.Options{
		Sizes:       c.Experiment.Sizes,
		Scenarios:   scenarios,
		Repetitions: c.Experiment.Repetitions,
		Workers:     c.Experiment.Workers,
		Parallel:    c.Experiment.Parallel,
		Seed:        c.Experiment.Seed,
		Verify:      c.Experiment.Verify,
	}, nil
}
