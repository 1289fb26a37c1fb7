// Package config loads pennant settings from defaults, an optional YAML
// file, PENNANT_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/pennant/flow"
	"github.com/katalvlaran/pennant/logging"
)

// EnvPrefix namespaces environment overrides, e.g. PENNANT_SOLVER_ALGORITHM.
const EnvPrefix = "PENNANT"

// Input sources.
const (
	SourceText     = "text"
	SourcePostgres = "postgres"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete runtime configuration.
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Solver  SolverConfig  `mapstructure:"solver"`
	Logging LoggingConfig `mapstructure:"logging"`
	Server  ServerConfig  `mapstructure:"server"`
}

// InputConfig selects where the division comes from.
type InputConfig struct {
	// Source is "text" (Path) or "postgres" (DSN + Season).
	Source string `mapstructure:"source"`
	Path   string `mapstructure:"path"`
	// Strict requires remaining == sum of the schedule row for every team.
	Strict bool   `mapstructure:"strict"`
	DSN    string `mapstructure:"dsn"`
	Season string `mapstructure:"season"`
}

// SolverConfig picks the max-flow algorithm.
type SolverConfig struct {
	Algorithm string `mapstructure:"algorithm"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig controls `pennant serve`.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input:   InputConfig{Source: SourceText},
		Solver:  SolverConfig{Algorithm: flow.AlgorithmEdmondsKarp.String()},
		Logging: LoggingConfig{Level: strings.ToLower(logging.LevelWarn), Format: logging.FormatText},
		Server:  ServerConfig{Addr: ":8080"},
	}
}

// SetDefaults registers Default() on v and enables environment overrides.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("input.source", d.Input.Source)
	v.SetDefault("input.path", d.Input.Path)
	v.SetDefault("input.strict", d.Input.Strict)
	v.SetDefault("input.dsn", d.Input.DSN)
	v.SetDefault("input.season", d.Input.Season)
	v.SetDefault("solver.algorithm", d.Solver.Algorithm)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("server.addr", d.Server.Addr)

	v.SetEnvPrefix(EnvPrefix)
	// PENNANT_INPUT_DSN for input.dsn
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the optional config file set on v, decodes every setting
// and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Algorithm returns the configured max-flow algorithm.
func (c *Config) Algorithm() (flow.Algorithm, error) {
	return flow.ParseAlgorithm(c.Solver.Algorithm)
}
