// Package common provides shared utilities for portview
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for portview
type Config struct {
	Environment string         `toml:"environment"`
	Sources     []SourceConfig `toml:"sources"`
	Server      ServerConfig   `toml:"server"`
	Storage     StorageConfig  `toml:"storage"`
	Clients     ClientsConfig  `toml:"clients"`
	Logging     LoggingConfig  `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// SourceConfig identifies one portfolio store the valuation endpoints
// aggregate over. An empty URL denotes the in-process store: this instance
// serves its own holdings at /stocks and values them locally.
type SourceConfig struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

// StorageConfig holds the path of the embedded holdings store.
type StorageConfig struct {
	Path string `toml:"path"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Price PriceConfig `toml:"price"`
}

// PriceConfig holds price oracle API configuration
type PriceConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *PriceConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Sources: []SourceConfig{
			{Name: "local"},
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		Storage: StorageConfig{
			Path: "data/holdings",
		},
		Clients: ClientsConfig{
			Price: PriceConfig{
				BaseURL:   "https://api.api-ninjas.com/v1",
				RateLimit: 10,
				Timeout:   "30s",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := validateSources(config); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("PORTVIEW_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("PORTVIEW_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("PORTVIEW_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("PORTVIEW_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("PORTVIEW_DATA_PATH"); path != "" {
		config.Storage.Path = filepath.Join(path, "holdings")
	}

	// API_KEY is the name used by the original docker-compose deployment;
	// PORTVIEW_PRICE_API_KEY takes precedence.
	if key := os.Getenv("API_KEY"); key != "" {
		config.Clients.Price.APIKey = key
	}
	if key := os.Getenv("PORTVIEW_PRICE_API_KEY"); key != "" {
		config.Clients.Price.APIKey = key
	}

	// Per-source URL overrides: a source named "stocks1" is overridden by
	// STOCKS1_URL, matching the env names the store containers are wired with.
	for i := range config.Sources {
		envName := strings.ToUpper(config.Sources[i].Name) + "_URL"
		if url := os.Getenv(envName); url != "" {
			config.Sources[i].URL = url
		}
	}
}

// validateSources rejects configurations with duplicate or unnamed sources.
func validateSources(config *Config) error {
	seen := make(map[string]bool, len(config.Sources))
	for _, src := range config.Sources {
		if src.Name == "" {
			return fmt.Errorf("source with url %q has no name", src.URL)
		}
		if seen[src.Name] {
			return fmt.Errorf("duplicate source name %q", src.Name)
		}
		seen[src.Name] = true
	}
	return nil
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// ResolvePriceAPIKey resolves the price oracle API key from environment or config.
func (c *Config) ResolvePriceAPIKey() (string, error) {
	for _, name := range []string{"PORTVIEW_PRICE_API_KEY", "API_KEY"} {
		if v := os.Getenv(name); v != "" {
			return v, nil
		}
	}
	if c.Clients.Price.APIKey != "" {
		return c.Clients.Price.APIKey, nil
	}
	return "", fmt.Errorf("price API key not set in environment or config")
}
