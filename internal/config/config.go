// Package config loads the host settings for the tribunal CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDBPath   = "./tribunal-data"
	DefaultLogLevel = "info"
	DefaultLogType  = "console"
	DefaultAddress  = "tribunal"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	DBPath          string `yaml:"db_path"`
	InMemory        bool   `yaml:"in_memory"`
	LogLevel        string `yaml:"log_level"`
	LogType         string `yaml:"log_type"`
	ContractAddress string `yaml:"contract_address"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		DBPath:          DefaultDBPath,
		LogLevel:        DefaultLogLevel,
		LogType:         DefaultLogType,
		ContractAddress: DefaultAddress,
	}
}

// Load layers the YAML file at path (skipped when path is empty) over the
// defaults, then applies TRIBUNAL_* environment variables, which may also
// come from a .env file in the working directory.
func Load(path string) (Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	}

	overrideFromEnv(&cfg.DBPath, "TRIBUNAL_DB_PATH")
	overrideFromEnv(&cfg.LogLevel, "TRIBUNAL_LOG_LEVEL")
	overrideFromEnv(&cfg.LogType, "TRIBUNAL_LOG_TYPE")
	overrideFromEnv(&cfg.ContractAddress, "TRIBUNAL_CONTRACT_ADDRESS")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !c.InMemory && c.DBPath == "" {
		return fmt.Errorf("%w: db_path is required unless in_memory is set", ErrInvalidConfig)
	}
	if c.ContractAddress == "" {
		return fmt.Errorf("%w: contract_address is empty", ErrInvalidConfig)
	}
	return nil
}

func overrideFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
