package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the service configuration for `tramway serve`.
type Config struct {
	// Listen is the HTTP bind address.
	Listen string `yaml:"listen"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Redis backs the transition journal when Addr is set; otherwise the
	// journal lives in memory.
	Redis RedisConfig `yaml:"redis"`

	// Journal tunes the transition trail.
	Journal JournalConfig `yaml:"journal"`

	// Fleet lists tram IDs created at boot. Trams created over the API are
	// not persisted; a restart starts over from this list.
	Fleet []string `yaml:"fleet"`
}

// RedisConfig holds the optional Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// JournalConfig tunes the transition journal.
type JournalConfig struct {
	// Cap bounds records kept per tram. Zero means the adapter default.
	Cap int `yaml:"cap"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Listen:   ":8080",
		LogLevel: "info",
	}
}

// Load reads a YAML config file. A missing file is not an error: defaults
// apply, so `tramway serve` works out of the box.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	return cfg, nil
}
