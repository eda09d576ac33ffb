// Package config loads service configuration from a YAML file with
// environment variable overrides for deployment-specific values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variable overrides. DSNs carry credentials, so they come
// from the environment in deployed setups rather than the config file.
const (
	envHTTPAddr      = "HTTP_ADDR"
	envPostgresDSN   = "POSTGRES_DSN"
	envClickhouseDSN = "CLICKHOUSE_DSN"
)

// Config is the root service configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// StorageConfig selects and configures the persistence backends.
type StorageConfig struct {
	// UseMemory selects the in-memory stores; DSNs are ignored when set.
	UseMemory     bool   `yaml:"use_memory"`
	PostgresDSN   string `yaml:"postgres_dsn"`
	ClickhouseDSN string `yaml:"clickhouse_dsn"`
}

// SimulationConfig sets defaults for simulation requests that omit them.
type SimulationConfig struct {
	HandCount        int     `yaml:"hand_count"`
	BetUnit          float64 `yaml:"bet_unit"`
	StartingBankroll float64 `yaml:"starting_bankroll"`
	RunCount         int     `yaml:"run_count"`
	Workers          int     `yaml:"workers"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Storage: StorageConfig{
			UseMemory: true,
		},
		Simulation: SimulationConfig{
			HandCount:        70,
			BetUnit:          10,
			StartingBankroll: 1000,
			RunCount:         1000,
		},
	}
}

// Load reads the YAML file at path, applies environment overrides, and
// validates the result. An empty path loads defaults plus overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envHTTPAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(envPostgresDSN); v != "" {
		cfg.Storage.PostgresDSN = v
	}
	if v := os.Getenv(envClickhouseDSN); v != "" {
		cfg.Storage.ClickhouseDSN = v
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if !c.Storage.UseMemory && c.Storage.PostgresDSN == "" {
		return fmt.Errorf("storage.postgres_dsn required when use_memory is false")
	}
	if c.Simulation.HandCount < 0 {
		return fmt.Errorf("simulation.hand_count must not be negative")
	}
	if c.Simulation.BetUnit <= 0 {
		return fmt.Errorf("simulation.bet_unit must be positive")
	}
	if c.Simulation.StartingBankroll < 0 {
		return fmt.Errorf("simulation.starting_bankroll must not be negative")
	}
	if c.Simulation.RunCount <= 0 {
		return fmt.Errorf("simulation.run_count must be positive")
	}
	return nil
}
