// Package config loads and validates netcentrality run configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-netcentrality/pkg/algorithms"
)

// ErrInvalidConfig is wrapped by every load and validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "NETCENTRALITY_"

// Config is the full run configuration.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
	Log      LogConfig      `yaml:"log"`
}

// InputConfig describes where edges come from.
type InputConfig struct {
	// Source is a path, "-" for stdin, or s3://bucket/key.
	Source string `yaml:"source"`
	// Lenient skips malformed lines instead of failing.
	Lenient  bool   `yaml:"lenient"`
	S3Region string `yaml:"s3_region"`
}

// AnalysisConfig tunes the computations.
type AnalysisConfig struct {
	// Workers <= 0 means one per CPU.
	Workers             int     `yaml:"workers" validate:"gte=0,lte=4096"`
	Normalize           bool    `yaml:"normalize"`
	TopN                int     `yaml:"top_n" validate:"gte=0,lte=100000"`
	SeparationThreshold float64 `yaml:"separation_threshold" validate:"gt=0"`
}

// OutputConfig controls result export.
type OutputConfig struct {
	// Path of the JSON result; empty writes to stdout.
	Path        string `yaml:"path"`
	Compress    bool   `yaml:"compress"`
	MetricsFile string `yaml:"metrics_file"`
	// Summary prints the styled console summary to stderr.
	Summary bool `yaml:"summary"`
}

// LogConfig sets the logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"loglevel"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Input: InputConfig{
			Source: "-",
		},
		Analysis: AnalysisConfig{
			Workers:             0,
			TopN:                10,
			SeparationThreshold: algorithms.SixDegrees,
		},
		Output: OutputConfig{
			Summary: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path on top of Default, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type lookupFunc func(string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	integer := func(name string, dst *int) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalidConfig, EnvPrefix, name, v)
		}
		*dst = n
		return nil
	}
	boolean := func(name string, dst *bool) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not a boolean", ErrInvalidConfig, EnvPrefix, name, v)
		}
		*dst = b
		return nil
	}

	str("SOURCE", &c.Input.Source)
	str("S3_REGION", &c.Input.S3Region)
	str("OUTPUT", &c.Output.Path)
	str("METRICS_FILE", &c.Output.MetricsFile)

	if err := integer("WORKERS", &c.Analysis.Workers); err != nil {
		return err
	}
	if err := integer("TOP", &c.Analysis.TopN); err != nil {
		return err
	}
	if err := boolean("NORMALIZE", &c.Analysis.Normalize); err != nil {
		return err
	}
	if err := boolean("LENIENT", &c.Input.Lenient); err != nil {
		return err
	}
	if err := boolean("COMPRESS", &c.Output.Compress); err != nil {
		return err
	}
	if v, ok := lookup(EnvPrefix + "THRESHOLD"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%w: %sTHRESHOLD=%q is not a number", ErrInvalidConfig, EnvPrefix, v)
		}
		c.Analysis.SeparationThreshold = f
	}

	// LOG_LEVEL is shared with the logging package default
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	return nil
}
