// Package config provides configuration for the precedence engine.
//
// Configuration is loaded with viper from an optional YAML file and from
// RAILOPT_-prefixed environment variables, with defaults as the lowest
// priority. All values are validated at load time.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults.
const (
	// DefaultSolveBudget is the wall-clock budget for one constraint solve.
	DefaultSolveBudget = 30 * time.Second

	// DefaultLogVerbosity is the logr verbosity level.
	DefaultLogVerbosity = 0

	envPrefix = "RAILOPT"
)

// Config holds the engine configuration.
type Config struct {
	// SolveBudget is the wall-clock budget for the precedence solve. The
	// solver must return a found assignment or a clean no-solution signal
	// within this budget.
	SolveBudget time.Duration `mapstructure:"solveBudget"`

	// LogVerbosity is the logr verbosity level (0=info, 1=debug, 2=trace).
	LogVerbosity int `mapstructure:"logVerbosity"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		SolveBudget:  DefaultSolveBudget,
		LogVerbosity: DefaultLogVerbosity,
	}
}

// Load reads configuration from the given file (optional, "" to skip) and
// the environment, applies defaults, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("solveBudget", DefaultSolveBudget)
	v.SetDefault("logVerbosity", DefaultLogVerbosity)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if c.SolveBudget <= 0 {
		return fmt.Errorf("solveBudget must be positive, got %s", c.SolveBudget)
	}
	if c.LogVerbosity < 0 {
		return fmt.Errorf("logVerbosity must be >= 0, got %d", c.LogVerbosity)
	}
	return nil
}
