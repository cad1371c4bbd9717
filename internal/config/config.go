// Package config loads wordscan settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/baxromumarov/wordscan/source"
)

// Config holds all wordscan configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig tunes listing, reading and concurrency.
type SearchConfig struct {
	Suffix          string `yaml:"suffix"`           // eligible file name suffix
	Workers         int    `yaml:"workers"`          // full-scan queries, 0 = one per CPU
	IOLimit         int    `yaml:"io_limit"`         // short-circuit queries, 0 = one per file
	LineParallelism int    `yaml:"line_parallelism"` // batches of one file indexed at once
	MaxLineBytes    int    `yaml:"max_line_bytes"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Suffix:          source.DefaultSuffix,
			LineParallelism: 1,
			MaxLineBytes:    source.DefaultMaxLineBytes,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults and
// applies environment overrides. An empty path or a missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("WORDSCAN_SUFFIX"); v != "" {
		c.Search.Suffix = v
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"WORDSCAN_WORKERS", &c.Search.Workers},
		{"WORDSCAN_IO_LIMIT", &c.Search.IOLimit},
		{"WORDSCAN_LINE_PARALLELISM", &c.Search.LineParallelism},
		{"WORDSCAN_MAX_LINE_BYTES", &c.Search.MaxLineBytes},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", e.key, err)
		}
		*e.dst = n
	}
	if v := os.Getenv("WORDSCAN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("WORDSCAN_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	return nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Search.Suffix) == "" {
		errs = append(errs, errors.New("search.suffix must not be empty"))
	}
	if c.Search.Workers < 0 {
		errs = append(errs, fmt.Errorf("search.workers must be non-negative, got %d", c.Search.Workers))
	}
	if c.Search.IOLimit < 0 {
		errs = append(errs, fmt.Errorf("search.io_limit must be non-negative, got %d", c.Search.IOLimit))
	}
	if c.Search.LineParallelism < 0 {
		errs = append(errs, fmt.Errorf("search.line_parallelism must be non-negative, got %d", c.Search.LineParallelism))
	}
	if c.Search.MaxLineBytes < 0 {
		errs = append(errs, fmt.Errorf("search.max_line_bytes must be non-negative, got %d", c.Search.MaxLineBytes))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q is not one of json, console", c.Logging.Format))
	}
	return errors.Join(errs...)
}
