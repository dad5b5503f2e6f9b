// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultAPIBase is the hosted backend used when no base URL is configured.
const DefaultAPIBase = "https://jobdoc-generator.onrender.com"

const (
	configDirName  = ".careercraft"
	configFileName = "config.yaml"
	dataDirName    = "data"
)

// Config is the CLI configuration, loaded from ~/.careercraft/config.yaml
// with environment variable overrides. All fields are optional.
type Config struct {
	// APIBase is the backend base URL.
	APIBase string `yaml:"api_base"`
	// DataDir holds the durable key-value store files.
	DataDir string `yaml:"data_dir"`
	// DatabaseURL switches the store to Postgres when set.
	DatabaseURL string `yaml:"database_url"`
	// GeminiAPIKey enables direct AI letter generation, bypassing the
	// backend's AI endpoint.
	GeminiAPIKey string `yaml:"gemini_api_key"`
	// RequestTimeout is the per-request timeout in seconds.
	RequestTimeout int `yaml:"request_timeout"`
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields defaults; malformed YAML is an error.
// Environment variables override file values: CAREERCRAFT_API_BASE,
// DATABASE_URL, GEMINI_API_KEY, CAREERCRAFT_TIMEOUT.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, configDirName, configFileName)
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No config file is fine; defaults and env apply.
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config YAML: %w", err)
			}
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables on the file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("CAREERCRAFT_API_BASE"); v != "" {
		cfg.APIBase = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("CAREERCRAFT_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RequestTimeout = n
		}
	}
}

// applyDefaults fills unset fields.
func applyDefaults(cfg *Config) {
	if cfg.APIBase == "" {
		cfg.APIBase = DefaultAPIBase
	}
	if cfg.DataDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.DataDir = filepath.Join(home, configDirName, dataDirName)
		}
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.APIBase == "" {
		return fmt.Errorf("config error: 'api_base' is empty")
	}
	if c.RequestTimeout < 1 {
		return fmt.Errorf("config error: 'request_timeout' must be at least 1 second")
	}
	return nil
}
